package lower

import (
	"github.com/conifer0us/cnf49-compiler/ast"
	"github.com/conifer0us/cnf49-compiler/common"
	"github.com/conifer0us/cnf49-compiler/ir"
	"github.com/conifer0us/cnf49-compiler/report"
)

// lowerExpr lowers e, writing its result into dest when dest is non-nil
// (emitting an Assign if unavoidable) and returning dest; with a nil dest
// it returns whichever value the node naturally produces.
func lowerExpr(b *ir.Builder, e ast.Expr, dest *ir.Local) ir.Value {
	switch v := e.(type) {
	case *ast.ThisExpr:
		return assignOrReturn(b, dest, ir.NewLocal("this"))

	case *ast.Constant:
		return assignOrReturn(b, dest, ir.NewTaggedConst(v.Value))

	case *ast.Var:
		return assignOrReturn(b, dest, ir.NewLocal(v.Name))

	case *ast.ClassRef:
		return lowerClassRef(b, v, dest)

	case *ast.Binop:
		return lowerBinop(b, v, dest)

	case *ast.FieldRead:
		return lowerFieldRead(b, v, dest)

	case *ast.MethodCall:
		return lowerMethodCall(b, v, dest)

	default:
		report.RaiseICE(e.Span(), "unhandled expression node %T", e)
		return nil
	}
}

func assignOrReturn(b *ir.Builder, dest *ir.Local, val ir.Value) ir.Value {
	if dest != nil {
		b.AddInstruction(&ir.Assign{Dest: dest, Src: val})
		return dest
	}
	return val
}

// lowerClassRef allocates an instance, wires its vtable/ftable pointers
// into slots 0 and 1, and yields the fresh object pointer. The pointer is
// tagged (tag bit 0) by construction — every slot offset is a multiple of
// the word size — so no explicit tagging step is emitted.
func lowerClassRef(b *ir.Builder, v *ast.ClassRef, dest *ir.Local) ir.Value {
	objsize := b.GetClassSize(v.ClassName)

	obj := b.GetNextTemp()
	b.AddInstruction(&ir.Alloc{Dest: obj, NumSlots: objsize})
	b.AddInstruction(&ir.Store{Addr: obj, Val: ir.VTableLabel(v.ClassName)})

	ftableSlotAddr := b.GetNextTemp()
	b.AddInstruction(&ir.BinInst{Dest: ftableSlotAddr, Op: ir.Add, Lhs: obj, Rhs: ir.NewRawConst(common.WordSize)})
	b.AddInstruction(&ir.Store{Addr: ftableSlotAddr, Val: ir.FTableLabel(v.ClassName)})

	return assignOrReturn(b, dest, obj)
}

func binOpOf(op ast.BinOp) ir.Oper {
	switch op {
	case ast.OpAdd:
		return ir.Add
	case ast.OpSub:
		return ir.Sub
	case ast.OpMul:
		return ir.Mul
	case ast.OpDiv:
		return ir.Div
	case ast.OpEq:
		return ir.Eq
	case ast.OpNe:
		return ir.Ne
	case ast.OpLt:
		return ir.Lt
	case ast.OpGt:
		return ir.Gt
	default:
		report.ReportICE("unhandled binary operator %v", op)
		return ir.Add
	}
}

// lowerBinop implements the tag discipline's two regimes: equality and
// inequality compare tagged operands directly (their tag bits agree iff
// their values do, so no untag/retag pair is needed); every other
// operator untags both operands before computing and retags the raw
// result, since the result is always a fresh integer value.
func lowerBinop(b *ir.Builder, v *ast.Binop, dest *ir.Local) ir.Value {
	lv := lowerExpr(b, v.Lhs, nil)
	rv := lowerExpr(b, v.Rhs, nil)

	var raw *ir.Local
	if v.Op == ast.OpEq || v.Op == ast.OpNe {
		raw = b.GetNextTemp()
		b.AddInstruction(&ir.BinInst{Dest: raw, Op: binOpOf(v.Op), Lhs: lv, Rhs: rv})
	} else {
		b.TagCheck(lv, false)
		ulv := b.UntagInt(lv)
		b.TagCheck(rv, false)
		urv := b.UntagInt(rv)

		raw = b.GetNextTemp()
		b.AddInstruction(&ir.BinInst{Dest: raw, Op: binOpOf(v.Op), Lhs: ulv, Rhs: urv})
	}

	tagged := b.TagInt(raw)
	return assignOrReturn(b, dest, tagged)
}

// fieldEntry computes, for a field access on baseVal, the ftable pointer
// lookup and the field's entry (raising NoSuchField if the entry is the
// sentinel zero), returning the per-instance byte offset of the field: the
// entry's word offset times the word size.
func fieldEntry(b *ir.Builder, baseVal ir.Value, fieldName string) ir.Value {
	b.TagCheck(baseVal, true)

	ftablePtrAddr := b.GetNextTemp()
	b.AddInstruction(&ir.BinInst{Dest: ftablePtrAddr, Op: ir.Add, Lhs: baseVal, Rhs: ir.NewRawConst(common.WordSize)})

	ftablePtr := b.GetNextTemp()
	b.AddInstruction(&ir.Load{Dest: ftablePtr, Addr: ftablePtrAddr})

	idx := b.GetFieldOffset(fieldName) * common.WordSize
	entry := b.GetNextTemp()
	b.AddInstruction(&ir.GetElt{Dest: entry, Array: ftablePtr, Index: ir.NewRawConst(int64(idx))})

	b.FailIfZero(entry, ir.NoSuchField)

	offset := b.GetNextTemp()
	b.AddInstruction(&ir.BinInst{Dest: offset, Op: ir.Mul, Lhs: entry, Rhs: ir.NewRawConst(common.WordSize)})

	return offset
}

func lowerFieldRead(b *ir.Builder, v *ast.FieldRead, dest *ir.Local) ir.Value {
	baseVal := lowerExpr(b, v.FieldBase, nil)
	entry := fieldEntry(b, baseVal, v.FieldName)

	addr := b.GetNextTemp()
	b.AddInstruction(&ir.BinInst{Dest: addr, Op: ir.Add, Lhs: baseVal, Rhs: entry})

	loaded := b.GetNextTemp()
	b.AddInstruction(&ir.Load{Dest: loaded, Addr: addr})

	return assignOrReturn(b, dest, loaded)
}

func lowerMethodCall(b *ir.Builder, v *ast.MethodCall, dest *ir.Local) ir.Value {
	baseVal := lowerExpr(b, v.CallBase, nil)
	b.TagCheck(baseVal, true)

	vtablePtr := b.GetNextTemp()
	b.AddInstruction(&ir.Load{Dest: vtablePtr, Addr: baseVal})

	idx := b.GetMethodOffset(v.MethodName) * common.WordSize
	entry := b.GetNextTemp()
	b.AddInstruction(&ir.GetElt{Dest: entry, Array: vtablePtr, Index: ir.NewRawConst(int64(idx))})

	b.FailIfZero(entry, ir.NoSuchMethod)

	args := []ir.Value{baseVal}
	for _, a := range v.Args {
		args = append(args, lowerExpr(b, a, nil))
	}

	callDest := dest
	if callDest == nil {
		callDest = b.GetNextTemp()
	}
	b.AddInstruction(&ir.Call{Dest: callDest, Code: entry, Args: args})

	return callDest
}
