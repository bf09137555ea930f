package ir

import (
	"strconv"

	"github.com/conifer0us/cnf49-compiler/report"
)

// Builder is a per-method stateful helper: it tracks the current block, a
// monotonic temporary counter, and non-owning references to the
// program-wide layout the lowerer needs to resolve field/method offsets
// and class sizes. Pinhole controls whether tag operations on the literal
// `this` parameter are elided.
type Builder struct {
	CFG     *CFG
	Method  *MethodIR
	current *BasicBlock

	tempCount int
	pinhole   bool
}

func NewBuilder(cfg *CFG, method *MethodIR, pinhole bool) *Builder {
	return &Builder{CFG: cfg, Method: method, pinhole: pinhole}
}

func (b *Builder) CreateBlock() *BasicBlock {
	return b.Method.NewBasicBlock()
}

func (b *Builder) SetCurrentBlock(blk *BasicBlock) {
	b.current = blk
}

func (b *Builder) CurrentBlock() *BasicBlock {
	return b.current
}

func (b *Builder) AddInstruction(op Operation) {
	if b.current == nil {
		report.ReportICE("instruction emitted with no current block")
	}
	b.current.Instructions = append(b.current.Instructions, op)
}

// Terminate overwrites the current block's terminator, including any
// Hanging placeholder left by CreateBlock.
func (b *Builder) Terminate(t Terminator) {
	if b.current == nil {
		report.ReportICE("terminator emitted with no current block")
	}
	b.current.Terminator = t
}

// Terminated reports whether the current block already has a non-Hanging
// terminator — used by statement lowering to decide whether a fallthrough
// jump is still needed.
func (b *Builder) Terminated() bool {
	_, hanging := b.current.Terminator.(*Hanging)
	return !hanging
}

// Abandon marks control flow as having no live continuation at this point
// in the statement list (e.g. right after a Return). Live reports the
// opposite. processBlock uses these to recognize "both arms of this `if`
// already terminated" without special-casing any one statement kind.
func (b *Builder) Abandon() { b.current = nil }
func (b *Builder) Live() bool { return b.current != nil }

// GetNextTemp returns a fresh version-0 temporary local, named `tmpNv`.
func (b *Builder) GetNextTemp() *Local {
	b.tempCount++
	return NewLocal(tempName(b.tempCount))
}

func tempName(n int) string {
	return "tmp" + strconv.Itoa(n) + "v"
}

func (b *Builder) GetClassSize(className string) int {
	meta, ok := b.CFG.Classes[className]
	if !ok {
		report.ReportICE("no such class `%s`", className)
	}
	return meta.ObjSize
}

func (b *Builder) GetFieldOffset(field string) int {
	i, ok := b.CFG.FieldOffset(field)
	if !ok {
		report.ReportICE("no such field `%s` in global field list", field)
	}
	return i
}

func (b *Builder) GetMethodOffset(method string) int {
	i, ok := b.CFG.MethodOffset(method)
	if !ok {
		report.ReportICE("no such method `%s` in global method list", method)
	}
	return i
}

// isThis reports whether v is statically the literal `this` parameter —
// the one case the pinhole optimization recognizes.
func isThis(v Value) bool {
	l, ok := v.(*Local)
	return ok && l.Name == "this"
}

// TagCheck expands to a BinInst isolating the tag bit, a Conditional
// branching on it, a fail block for the mismatched tag, and an ok block
// that becomes current. Elided entirely under the pinhole optimization
// when v is statically `this`.
func (b *Builder) TagCheck(v Value, wantPointer bool) {
	if b.pinhole && isThis(v) {
		return
	}

	bit := b.GetNextTemp()
	b.AddInstruction(&BinInst{Dest: bit, Op: BitAnd, Lhs: v, Rhs: NewRawConst(1)})

	okBlock := b.CreateBlock()
	failBlock := b.CreateBlock()

	var reason FailReason
	var trueTarget, falseTarget *BasicBlock
	if wantPointer {
		reason = NotAPointer
		// bit == 0 means pointer.
		trueTarget, falseTarget = failBlock, okBlock
	} else {
		reason = NotANumber
		trueTarget, falseTarget = okBlock, failBlock
	}

	b.Terminate(&Conditional{Cond: bit, TrueTarget: trueTarget, FalseTarget: falseTarget})

	b.SetCurrentBlock(failBlock)
	b.Terminate(&Fail{Reason: reason})

	b.SetCurrentBlock(okBlock)
}

// UntagInt strips the tag bit from an integer-tagged value, returning a
// fresh temporary holding the raw value. Only integers are ever shifted —
// pointers carry tag bit 0 by construction and need no corresponding
// operation, so there is no UntagPointer.
func (b *Builder) UntagInt(v Value) Value {
	if b.pinhole && isThis(v) {
		return v
	}

	dest := b.GetNextTemp()
	b.AddInstruction(&BinInst{Dest: dest, Op: Div, Lhs: v, Rhs: NewRawConst(2)})
	return dest
}

// TagInt re-applies the integer tag bit to a raw value, returning a fresh
// temporary.
func (b *Builder) TagInt(v Value) Value {
	if b.pinhole && isThis(v) {
		return v
	}

	shifted := b.GetNextTemp()
	b.AddInstruction(&BinInst{Dest: shifted, Op: Mul, Lhs: v, Rhs: NewRawConst(2)})

	dest := b.GetNextTemp()
	b.AddInstruction(&BinInst{Dest: dest, Op: BitOr, Lhs: shifted, Rhs: NewRawConst(1)})
	return dest
}

// FailIfZero branches to a Fail(reason) block when entry is the raw
// integer zero, otherwise continues in a fresh ok block that becomes
// current. Used at every dynamic-dispatch and field-lookup site to turn a
// missing vtable/ftable entry into the specified runtime failure.
func (b *Builder) FailIfZero(entry Value, reason FailReason) {
	isZero := b.GetNextTemp()
	b.AddInstruction(&BinInst{Dest: isZero, Op: Eq, Lhs: entry, Rhs: NewRawConst(0)})

	okBlock := b.CreateBlock()
	failBlock := b.CreateBlock()

	b.Terminate(&Conditional{Cond: isZero, TrueTarget: failBlock, FalseTarget: okBlock})

	b.SetCurrentBlock(failBlock)
	b.Terminate(&Fail{Reason: reason})

	b.SetCurrentBlock(okBlock)
}
