package ir

import "strings"

// BasicBlock is a label, an ordered phi list, an ordered instruction list,
// and exactly one terminator. New blocks start Hanging; a well-formed
// method never leaves a block Hanging except main's last, which is
// rewritten to `ret 0` on emission.
type BasicBlock struct {
	Label        string
	Phis         []*Phi
	Instructions []Operation
	Terminator   Terminator
}

func newBlock(label string) *BasicBlock {
	return &BasicBlock{Label: label, Terminator: &Hanging{}}
}

func (b *BasicBlock) IR() string {
	var sb strings.Builder
	sb.WriteString(b.Label)
	sb.WriteString(":\n")

	for _, phi := range b.Phis {
		sb.WriteString("\t")
		sb.WriteString(phi.IR())
		sb.WriteString("\n")
	}

	for _, inst := range b.Instructions {
		sb.WriteString("\t")
		sb.WriteString(inst.IR())
		sb.WriteString("\n")
	}

	sb.WriteString("\t")
	sb.WriteString(b.Terminator.IR())
	sb.WriteString("\n")

	return sb.String()
}
