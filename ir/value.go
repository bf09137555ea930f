// Package ir defines the block-based intermediate representation that the
// lowerer produces and the SSA pass rewrites: values, operations,
// terminators, basic blocks, per-method and program-wide containers, and
// the textual serializer.
package ir

import "fmt"

// ValKind categorizes a Value without requiring a type switch.
type ValKind int

const (
	KindVar ValKind = iota
	KindConstInt
	KindLabel
)

// Value is the sum type over SSA names, symbolic labels, and integer
// constants.
type Value interface {
	Kind() ValKind
	// String returns the bare name (no sigil) — used by callers that need
	// to key a map by variable identity, e.g. the SSA pass.
	String() string
	// IR returns the value's textual rendering, sigil included.
	IR() string
}

// Local is an SSA name: a variable or temporary at a given version. Version
// 0 means "not yet renamed by the SSA pass."
type Local struct {
	Name    string
	Version int
}

func NewLocal(name string) *Local { return &Local{Name: name} }

func (l *Local) Kind() ValKind { return KindVar }
func (l *Local) String() string { return l.Name }

func (l *Local) IR() string {
	if l.Version == 0 {
		return "%" + l.Name
	}
	return fmt.Sprintf("%%%s%d", l.Name, l.Version)
}

// Global is a symbolic label, e.g. a class's vtable or ftable.
type Global struct {
	Name string
}

func NewGlobal(name string) *Global { return &Global{Name: name} }

func (g *Global) Kind() ValKind  { return KindLabel }
func (g *Global) String() string { return g.Name }
func (g *Global) IR() string     { return "@" + g.Name }

// Const is an integer constant, optionally already tag-bit-encoded.
type Const struct {
	Value  int64
	Tagged bool
}

// NewTaggedConst returns a constant carrying the integer tag bit — the
// form every source-level literal takes once lowered.
func NewTaggedConst(v int64) *Const { return &Const{Value: v, Tagged: true} }

// NewRawConst returns a constant with no tag bit, e.g. a byte offset used
// in address arithmetic.
func NewRawConst(v int64) *Const { return &Const{Value: v} }

func (c *Const) Kind() ValKind  { return KindConstInt }
func (c *Const) String() string { return fmt.Sprintf("%d", c.Value) }

func (c *Const) IR() string {
	if c.Tagged {
		return fmt.Sprintf("%d", (c.Value<<1)|1)
	}
	return fmt.Sprintf("%d", c.Value)
}

// VTableLabel and FTableLabel name a class's two per-instance tables.
func VTableLabel(className string) *Global { return NewGlobal("vtable" + className) }
func FTableLabel(className string) *Global { return NewGlobal("ftable" + className) }
