package ast

import (
	"strings"
	"testing"
)

func TestBinOpIsComparison(t *testing.T) {
	comparisons := []BinOp{OpEq, OpNe, OpLt, OpGt}
	for _, op := range comparisons {
		if !op.IsComparison() {
			t.Errorf("op %v: IsComparison() = false, want true", op)
		}
	}

	arithmetic := []BinOp{OpAdd, OpSub, OpMul, OpDiv}
	for _, op := range arithmetic {
		if op.IsComparison() {
			t.Errorf("op %v: IsComparison() = true, want false", op)
		}
	}
}

func TestProgramPrint(t *testing.T) {
	prog := &Program{
		Main: &Method{
			Name: "main",
			Body: []Stmt{
				&PrintStatement{Value: &Constant{Value: 5}},
			},
		},
	}

	var sb strings.Builder
	prog.Print(&sb, 0)
	out := sb.String()

	if !strings.Contains(out, "Program") {
		t.Errorf("output missing Program header: %q", out)
	}
	if !strings.Contains(out, "Main Method") {
		t.Errorf("output missing Main Method section: %q", out)
	}
	if !strings.Contains(out, "Classes (0)") {
		t.Errorf("output missing class count: %q", out)
	}
}

func TestClassPrintIncludesFieldsAndMethods(t *testing.T) {
	cls := &Class{
		Name:   "Counter",
		Fields: []string{"count"},
		Methods: []*Method{
			{Name: "bump", Args: []string{"this"}},
		},
	}

	var sb strings.Builder
	cls.Print(&sb, 0)
	out := sb.String()

	if !strings.Contains(out, "Class: Counter") {
		t.Errorf("output missing class name: %q", out)
	}
	if !strings.Contains(out, "- count") {
		t.Errorf("output missing field: %q", out)
	}
	if !strings.Contains(out, "Method: bump") {
		t.Errorf("output missing method: %q", out)
	}
}
