package ir

import (
	"strings"
	"testing"
)

func TestNewBasicBlockNumbering(t *testing.T) {
	m := NewMethodIR("foo", nil, nil)

	b0 := m.NewBasicBlock()
	b1 := m.NewBasicBlock()
	b2 := m.NewBasicBlock()

	if b0.Label != "foo" {
		t.Errorf("got %q, want foo", b0.Label)
	}
	if b1.Label != "foo1" {
		t.Errorf("got %q, want foo1", b1.Label)
	}
	if b2.Label != "foo2" {
		t.Errorf("got %q, want foo2", b2.Label)
	}
}

func TestMethodIRParenthesizesArgsOnlyWhenPresent(t *testing.T) {
	withArgs := NewMethodIR("Counter_bump", []string{"this"}, nil)
	withArgs.NewBasicBlock()
	if got := withArgs.IR(); !strings.HasPrefix(got, "Counter_bump(this):\n") {
		t.Errorf("got %q, want block 0 labeled Counter_bump(this)", got)
	}

	noArgs := NewMethodIR("main", nil, nil)
	noArgs.NewBasicBlock()
	if got := noArgs.IR(); !strings.HasPrefix(got, "main:\n") {
		t.Errorf("got %q, want block 0 labeled main with no parens", got)
	}
}

func TestMethodIRTrailingBlankLine(t *testing.T) {
	m := NewMethodIR("main", nil, nil)
	blk := m.NewBasicBlock()
	blk.Terminator = &Return{Val: NewTaggedConst(0)}

	got := m.IR()
	if !strings.HasSuffix(got, "\n\n") {
		t.Errorf("got %q, want a trailing blank line after the last block", got)
	}
}
