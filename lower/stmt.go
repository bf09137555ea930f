package lower

import (
	"github.com/conifer0us/cnf49-compiler/ast"
	"github.com/conifer0us/cnf49-compiler/ir"
	"github.com/conifer0us/cnf49-compiler/report"
)

// processBlock walks stmts in order, stopping as soon as there is no live
// block left to continue into (either a Return was just lowered, or a
// nested If/While fully terminated every path). It reports whether
// control fell off the end of the list with no live continuation.
func processBlock(b *ir.Builder, stmts []ast.Stmt) bool {
	for _, s := range stmts {
		if !b.Live() {
			return true
		}
		lowerStmt(b, s)
	}
	return !b.Live()
}

func lowerStmt(b *ir.Builder, s ast.Stmt) {
	switch st := s.(type) {
	case *ast.AssignStatement:
		lowerExpr(b, st.Value, ir.NewLocal(st.Name))

	case *ast.DiscardStatement:
		lowerExpr(b, st.Value, nil)

	case *ast.FieldAssignStatement:
		lowerFieldAssign(b, st)

	case *ast.IfStatement:
		lowerIf(b, st)

	case *ast.IfOnlyStatement:
		lowerIfOnly(b, st)

	case *ast.WhileStatement:
		lowerWhile(b, st)

	case *ast.ReturnStatement:
		lowerReturn(b, st)

	case *ast.PrintStatement:
		lowerPrint(b, st)

	default:
		report.RaiseICE(s.Span(), "unhandled statement node %T", s)
	}
}

func lowerFieldAssign(b *ir.Builder, st *ast.FieldAssignStatement) {
	baseVal := lowerExpr(b, st.FieldBase, nil)
	entry := fieldEntry(b, baseVal, st.FieldName)

	addr := b.GetNextTemp()
	b.AddInstruction(&ir.BinInst{Dest: addr, Op: ir.Add, Lhs: baseVal, Rhs: entry})

	val := lowerExpr(b, st.Value, nil)
	b.AddInstruction(&ir.Store{Addr: addr, Val: val})
}

func lowerReturn(b *ir.Builder, st *ast.ReturnStatement) {
	val := lowerExpr(b, st.Value, nil)
	b.Terminate(&ir.Return{Val: val})
	b.Abandon()
}

// lowerPrint follows the Integer-consumption rule uniformly: tag-check,
// untag, emit Print on the raw value. Values are immutable in this
// lowering (UntagInt/TagInt always yield fresh temporaries), so there is
// no variable left holding a stale untagged value to retag afterward.
func lowerPrint(b *ir.Builder, st *ast.PrintStatement) {
	val := lowerExpr(b, st.Value, nil)
	b.TagCheck(val, false)
	raw := b.UntagInt(val)
	b.AddInstruction(&ir.Print{Val: raw})
}

// lowerCondition lowers a branch condition: a source-level boolean is
// just an integer (0 or 1) under the tag discipline, so it is checked and
// untagged the same way any other integer consumption is.
func lowerCondition(b *ir.Builder, e ast.Expr) ir.Value {
	val := lowerExpr(b, e, nil)
	b.TagCheck(val, false)
	return b.UntagInt(val)
}

func lowerIf(b *ir.Builder, st *ast.IfStatement) {
	cond := lowerCondition(b, st.Cond)

	thenBlk := b.CreateBlock()
	elseBlk := b.CreateBlock()
	b.Terminate(&ir.Conditional{Cond: cond, TrueTarget: thenBlk, FalseTarget: elseBlk})
	b.Abandon()

	b.SetCurrentBlock(thenBlk)
	thenDone := processBlock(b, st.ThenBranch)
	thenEnd := b.CurrentBlock()

	b.SetCurrentBlock(elseBlk)
	elseDone := processBlock(b, st.ElseBranch)
	elseEnd := b.CurrentBlock()

	if thenDone && elseDone {
		// Both arms terminated every path; there is nothing to merge
		// into, matching the "no merge block" boundary behavior.
		b.Abandon()
		return
	}

	mergeBlk := b.CreateBlock()

	if !thenDone {
		b.SetCurrentBlock(thenEnd)
		b.Terminate(&ir.Jump{Target: mergeBlk})
	}
	if !elseDone {
		b.SetCurrentBlock(elseEnd)
		b.Terminate(&ir.Jump{Target: mergeBlk})
	}

	b.SetCurrentBlock(mergeBlk)
}

// lowerIfOnly always produces a live merge block: unlike `if`, the
// "else" side is the implicit empty branch, which unconditionally
// reaches the merge block.
func lowerIfOnly(b *ir.Builder, st *ast.IfOnlyStatement) {
	cond := lowerCondition(b, st.Cond)

	thenBlk := b.CreateBlock()
	mergeBlk := b.CreateBlock()
	b.Terminate(&ir.Conditional{Cond: cond, TrueTarget: thenBlk, FalseTarget: mergeBlk})
	b.Abandon()

	b.SetCurrentBlock(thenBlk)
	thenDone := processBlock(b, st.Body)
	if !thenDone {
		b.Terminate(&ir.Jump{Target: mergeBlk})
	}

	b.SetCurrentBlock(mergeBlk)
}

func lowerWhile(b *ir.Builder, st *ast.WhileStatement) {
	condBlk := b.CreateBlock()
	b.Terminate(&ir.Jump{Target: condBlk})
	b.Abandon()

	b.SetCurrentBlock(condBlk)
	cond := lowerCondition(b, st.Cond)

	bodyBlk := b.CreateBlock()
	mergeBlk := b.CreateBlock()
	b.Terminate(&ir.Conditional{Cond: cond, TrueTarget: bodyBlk, FalseTarget: mergeBlk})
	b.Abandon()

	b.SetCurrentBlock(bodyBlk)
	bodyDone := processBlock(b, st.Body)
	if !bodyDone {
		b.Terminate(&ir.Jump{Target: condBlk})
	}

	b.SetCurrentBlock(mergeBlk)
}

// LowerMethod lowers one class method into the CFG's method map.
// className is ignored for main (isMain true); main has no receiver.
func LowerMethod(cfg *ir.CFG, className string, m *ast.Method, isMain bool, pinhole bool) {
	var irName string
	var params []string
	if isMain {
		irName = "main"
	} else {
		irName = ir.MangledMethodName(className, m.Name)
		params = append(params, m.Args...)
	}

	methodIR := ir.NewMethodIR(irName, params, m.Locals)
	cfg.MethodIRs[irName] = methodIR

	b := ir.NewBuilder(cfg, methodIR, pinhole)
	entry := b.CreateBlock()
	b.SetCurrentBlock(entry)

	for _, local := range m.Locals {
		b.AddInstruction(&ir.Assign{Dest: ir.NewLocal(local), Src: ir.NewTaggedConst(0)})
	}

	done := processBlock(b, m.Body)

	if !done && !isMain {
		report.Raise(m.Span(), "method `%s` does not return on every control-flow path", irName)
	}
	// A non-terminating `main` is fine: its last live block keeps its
	// Hanging terminator, which renders as `ret 0` on emission.
}
