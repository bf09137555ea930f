package ir

// FailReason enumerates the ways a dynamically-checked operation can
// abort execution.
type FailReason int

const (
	NotAPointer FailReason = iota
	NotANumber
	NoSuchField
	NoSuchMethod
)

func (r FailReason) String() string {
	switch r {
	case NotAPointer:
		return "NotAPointer"
	case NotANumber:
		return "NotANumber"
	case NoSuchField:
		return "NoSuchField"
	case NoSuchMethod:
		return "NoSuchMethod"
	default:
		return "?"
	}
}

// Terminator is the sum type over basic-block terminators. Every variant
// exposes its successor set and its use operands (for the SSA pass) and
// its textual rendering.
type Terminator interface {
	IR() string
	Successors() []*BasicBlock
	Uses() []*Local
}

type Jump struct {
	Target *BasicBlock
}

func (j *Jump) IR() string               { return "jump " + j.Target.Label }
func (j *Jump) Successors() []*BasicBlock { return []*BasicBlock{j.Target} }
func (j *Jump) Uses() []*Local             { return nil }

type Conditional struct {
	Cond                   Value
	TrueTarget, FalseTarget *BasicBlock
}

func (c *Conditional) IR() string {
	return "if " + c.Cond.IR() + " then " + c.TrueTarget.Label + " else " + c.FalseTarget.Label
}
func (c *Conditional) Successors() []*BasicBlock { return []*BasicBlock{c.TrueTarget, c.FalseTarget} }
func (c *Conditional) Uses() []*Local             { return localsOf(c.Cond) }

type Return struct {
	Val Value
}

func (r *Return) IR() string               { return "ret " + r.Val.IR() }
func (r *Return) Successors() []*BasicBlock { return nil }
func (r *Return) Uses() []*Local             { return localsOf(r.Val) }

type Fail struct {
	Reason FailReason
}

func (f *Fail) IR() string               { return "fail " + f.Reason.String() }
func (f *Fail) Successors() []*BasicBlock { return nil }
func (f *Fail) Uses() []*Local             { return nil }

// Hanging is a placeholder terminator on a freshly created block. It must
// never survive to the end of lowering except on a `main` method's last
// block, where it is rewritten to `ret 0` on emission (a method that falls
// off its end returns the raw word 0, not the tagged integer zero, which
// would render as 1).
type Hanging struct{}

func (h *Hanging) IR() string               { return "ret 0" }
func (h *Hanging) Successors() []*BasicBlock { return nil }
func (h *Hanging) Uses() []*Local             { return nil }
