package ir

import (
	"fmt"
	"strings"
)

// Oper enumerates the binary instruction opcodes.
type Oper int

const (
	Add Oper = iota
	Sub
	Mul
	Div
	BitAnd
	BitOr
	BitXor
	Eq
	Ne
	Lt
	Gt
)

func (o Oper) symbol() string {
	switch o {
	case Add:
		return "+"
	case Sub:
		return "-"
	case Mul:
		return "*"
	case Div:
		return "/"
	case BitAnd:
		return "&"
	case BitOr:
		return "|"
	case BitXor:
		return "^"
	case Eq:
		return "=="
	case Ne:
		return "!="
	case Lt:
		return "<"
	case Gt:
		return ">"
	default:
		return "?"
	}
}

// Operation is the sum type over basic-block instructions. Uses and defs
// are exposed separately so the SSA pass can rename them without a type
// switch per call site.
type Operation interface {
	IR() string
	// Defs returns the Local(s) this instruction defines, in order.
	Defs() []*Local
	// Uses returns the Local(s) this instruction reads, in order; non-Local
	// operands (Global, Const) are omitted since they carry no version.
	Uses() []*Local
}

type Assign struct {
	Dest *Local
	Src  Value
}

func (a *Assign) IR() string        { return a.Dest.IR() + " = " + a.Src.IR() }
func (a *Assign) Defs() []*Local    { return []*Local{a.Dest} }
func (a *Assign) Uses() []*Local {
	if l, ok := a.Src.(*Local); ok {
		return []*Local{l}
	}
	return nil
}

type BinInst struct {
	Dest     *Local
	Op       Oper
	Lhs, Rhs Value
}

func (b *BinInst) IR() string {
	return b.Dest.IR() + " = " + b.Lhs.IR() + " " + b.Op.symbol() + " " + b.Rhs.IR()
}
func (b *BinInst) Defs() []*Local { return []*Local{b.Dest} }
func (b *BinInst) Uses() []*Local { return localsOf(b.Lhs, b.Rhs) }

type Call struct {
	Dest *Local
	Code Value
	Args []Value
}

func (c *Call) IR() string {
	var sb strings.Builder
	sb.WriteString(c.Dest.IR())
	sb.WriteString(" = call(")
	sb.WriteString(c.Code.IR())
	for _, a := range c.Args {
		sb.WriteString(", ")
		sb.WriteString(a.IR())
	}
	sb.WriteString(")")
	return sb.String()
}
func (c *Call) Defs() []*Local { return []*Local{c.Dest} }
func (c *Call) Uses() []*Local {
	vals := append([]Value{c.Code}, c.Args...)
	return localsOf(vals...)
}

// PhiIncoming pairs a predecessor block's label with the value flowing in
// from it.
type PhiIncoming struct {
	PredLabel string
	Val       Value
}

type Phi struct {
	Dest     *Local
	Incoming []PhiIncoming
}

func (p *Phi) IR() string {
	var sb strings.Builder
	sb.WriteString(p.Dest.IR())
	sb.WriteString(" = phi(")
	for i, inc := range p.Incoming {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(inc.PredLabel)
		sb.WriteString(", ")
		sb.WriteString(inc.Val.IR())
	}
	sb.WriteString(")")
	return sb.String()
}
func (p *Phi) Defs() []*Local { return []*Local{p.Dest} }
func (p *Phi) Uses() []*Local { return nil }

type Alloc struct {
	Dest     *Local
	NumSlots int
}

func (a *Alloc) IR() string     { return fmt.Sprintf("%s = alloc(%d)", a.Dest.IR(), a.NumSlots) }
func (a *Alloc) Defs() []*Local { return []*Local{a.Dest} }
func (a *Alloc) Uses() []*Local { return nil }

type Print struct {
	Val Value
}

func (p *Print) IR() string     { return "print(" + p.Val.IR() + ")" }
func (p *Print) Defs() []*Local { return nil }
func (p *Print) Uses() []*Local { return localsOf(p.Val) }

type Load struct {
	Dest *Local
	Addr Value
}

func (l *Load) IR() string     { return l.Dest.IR() + " = load(" + l.Addr.IR() + ")" }
func (l *Load) Defs() []*Local { return []*Local{l.Dest} }
func (l *Load) Uses() []*Local { return localsOf(l.Addr) }

type Store struct {
	Addr Value
	Val  Value
}

func (s *Store) IR() string     { return "store(" + s.Addr.IR() + ", " + s.Val.IR() + ")" }
func (s *Store) Defs() []*Local { return nil }
func (s *Store) Uses() []*Local { return localsOf(s.Addr, s.Val) }

type GetElt struct {
	Dest  *Local
	Array Value
	Index Value
}

func (g *GetElt) IR() string {
	return g.Dest.IR() + " = getelt(" + g.Array.IR() + ", " + g.Index.IR() + ")"
}
func (g *GetElt) Defs() []*Local { return []*Local{g.Dest} }
func (g *GetElt) Uses() []*Local { return localsOf(g.Array, g.Index) }

type SetElt struct {
	Array Value
	Index Value
	Val   Value
}

func (s *SetElt) IR() string {
	return "setelt(" + s.Array.IR() + ", " + s.Index.IR() + ", " + s.Val.IR() + ")"
}
func (s *SetElt) Defs() []*Local { return nil }
func (s *SetElt) Uses() []*Local { return localsOf(s.Array, s.Index, s.Val) }

func localsOf(vals ...Value) []*Local {
	var out []*Local
	for _, v := range vals {
		if l, ok := v.(*Local); ok {
			out = append(out, l)
		}
	}
	return out
}
