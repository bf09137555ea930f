package ast

import "fmt"

// Expr is the sum type over expression nodes.
type Expr interface {
	Node
	exprNode()
}

// ThisExpr is the literal receiver parameter `this`.
type ThisExpr struct {
	Base
}

func (*ThisExpr) exprNode() {}

func (e *ThisExpr) Print(w Writer, ind int) {
	indent(w, ind)
	w.WriteString("this\n")
}

// Constant is an integer literal.
type Constant struct {
	Base
	Value int64
}

func (*Constant) exprNode() {}

func (e *Constant) Print(w Writer, ind int) {
	indent(w, ind)
	w.WriteString(fmt.Sprintf("%d\n", e.Value))
}

// ClassRef is an object-creation expression `@ClassName`.
type ClassRef struct {
	Base
	ClassName string
}

func (*ClassRef) exprNode() {}

func (e *ClassRef) Print(w Writer, ind int) {
	indent(w, ind)
	w.WriteString(fmt.Sprintf("ClassRef (%s)\n", e.ClassName))
}

// BinOp enumerates the binary operators.
type BinOp int

const (
	OpAdd BinOp = iota
	OpSub
	OpMul
	OpDiv
	OpEq
	OpNe
	OpLt
	OpGt
)

// symbol returns the operator's source-text spelling.
func (op BinOp) symbol() string {
	switch op {
	case OpAdd:
		return "+"
	case OpSub:
		return "-"
	case OpMul:
		return "*"
	case OpDiv:
		return "/"
	case OpEq:
		return "=="
	case OpNe:
		return "!="
	case OpLt:
		return "<"
	case OpGt:
		return ">"
	default:
		return "?"
	}
}

// IsComparison reports whether op is one of the comparison operators. Of
// these, only `==` and `!=` get special treatment from the lowerer's tag
// discipline (their operands are compared tagged, with no untag step);
// `<` and `>` untag their operands like arithmetic does.
func (op BinOp) IsComparison() bool {
	return op == OpEq || op == OpNe || op == OpLt || op == OpGt
}

// Binop is a parenthesized binary expression `(lhs op rhs)`.
type Binop struct {
	Base
	Lhs, Rhs Expr
	Op       BinOp
}

func (*Binop) exprNode() {}

func (e *Binop) Print(w Writer, ind int) {
	indent(w, ind)
	w.WriteString(e.Op.symbol())
	w.WriteString("\n")
	e.Lhs.Print(w, ind+2)

	indent(w, ind)
	w.WriteString("AND\n")
	e.Rhs.Print(w, ind+2)
}

// FieldRead is a field-access expression `&base.field`.
type FieldRead struct {
	Base
	FieldBase Expr
	FieldName string
}

func (*FieldRead) exprNode() {}

func (e *FieldRead) Print(w Writer, ind int) {
	indent(w, ind)
	w.WriteString("field read from:\n")
	e.FieldBase.Print(w, ind+2)

	indent(w, ind)
	w.WriteString(fmt.Sprintf("to field %s\n", e.FieldName))
}

// Var is a bare identifier reference.
type Var struct {
	Base
	Name string
}

func (*Var) exprNode() {}

func (e *Var) Print(w Writer, ind int) {
	indent(w, ind)
	w.WriteString(e.Name)
	w.WriteString("\n")
}

// MethodCall is a dynamic dispatch expression `^base.method(args)`.
type MethodCall struct {
	Base
	CallBase   Expr
	MethodName string
	Args       []Expr
}

func (*MethodCall) exprNode() {}

func (e *MethodCall) Print(w Writer, ind int) {
	indent(w, ind)
	w.WriteString("call into class:\n")
	e.CallBase.Print(w, ind+2)

	indent(w, ind)
	w.WriteString(fmt.Sprintf("method %s\n", e.MethodName))

	for _, arg := range e.Args {
		arg.Print(w, ind+2)
	}

	indent(w, ind)
	w.WriteString("END ARGS\n")
}
