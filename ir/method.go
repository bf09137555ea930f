package ir

import (
	"strconv"
	"strings"
)

// MethodIR is a method's (or main's) full basic-block graph. Block 0 is
// named exactly the method name; block N for N >= 1 is named
// "<method name>N".
type MethodIR struct {
	Name   string
	Params []string
	Locals []string
	Blocks []*BasicBlock

	blockCount int
}

func NewMethodIR(name string, params, locals []string) *MethodIR {
	return &MethodIR{Name: name, Params: params, Locals: locals}
}

// NewBasicBlock creates and appends a fresh block to the method, following
// the name/name1/name2/... numbering scheme.
func (m *MethodIR) NewBasicBlock() *BasicBlock {
	var label string
	if m.blockCount == 0 {
		label = m.Name
	} else {
		label = m.Name + strconv.Itoa(m.blockCount)
	}
	m.blockCount++

	b := newBlock(label)
	m.Blocks = append(m.Blocks, b)
	return b
}

func (m *MethodIR) IR() string {
	if len(m.Params) > 0 && len(m.Blocks) > 0 {
		m.Blocks[0].Label = m.Name + "(" + strings.Join(m.Params, ", ") + ")"
	}

	var sb strings.Builder
	for _, b := range m.Blocks {
		sb.WriteString(b.IR())
	}
	sb.WriteString("\n")
	return sb.String()
}
