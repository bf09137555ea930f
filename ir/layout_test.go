package ir

import (
	"testing"

	"github.com/conifer0us/cnf49-compiler/ast"
)

func TestBuildLayoutSingleClass(t *testing.T) {
	classes := []*ast.Class{
		{
			Name:   "Counter",
			Fields: []string{"count"},
			Methods: []*ast.Method{
				{Name: "bump"},
			},
		},
	}

	cfg := BuildLayout(classes)

	if len(cfg.Fields) != 1 || cfg.Fields[0] != "count" {
		t.Fatalf("got fields %v, want [count]", cfg.Fields)
	}
	if len(cfg.Methods) != 1 || cfg.Methods[0] != "bump" {
		t.Fatalf("got methods %v, want [bump]", cfg.Methods)
	}

	meta := cfg.Classes["Counter"]
	if meta.ObjSize != 3 {
		t.Errorf("got ObjSize %d, want 3 (2 reserved slots + 1 field)", meta.ObjSize)
	}
	if meta.FTable[0] != 2 {
		t.Errorf("got FTable[0]=%d, want 2 (first free slot after the reserved pair)", meta.FTable[0])
	}
	if meta.VTable[0] != "Counter_bump" {
		t.Errorf("got VTable[0]=%q, want Counter_bump", meta.VTable[0])
	}
}

func TestBuildLayoutFirstSeenOrderAcrossClasses(t *testing.T) {
	classes := []*ast.Class{
		{Name: "A", Fields: []string{"x"}, Methods: []*ast.Method{{Name: "foo"}}},
		{Name: "B", Fields: []string{"y", "x"}, Methods: []*ast.Method{{Name: "bar"}, {Name: "foo"}}},
	}

	cfg := BuildLayout(classes)

	if len(cfg.Fields) != 2 || cfg.Fields[0] != "x" || cfg.Fields[1] != "y" {
		t.Fatalf("got fields %v, want [x y] (first-seen order across classes)", cfg.Fields)
	}
	if len(cfg.Methods) != 2 || cfg.Methods[0] != "foo" || cfg.Methods[1] != "bar" {
		t.Fatalf("got methods %v, want [foo bar] (first-seen order across classes)", cfg.Methods)
	}
}

func TestBuildLayoutSentinelsForUnsharedMembers(t *testing.T) {
	classes := []*ast.Class{
		{Name: "A", Fields: []string{"x"}, Methods: []*ast.Method{{Name: "foo"}}},
		{Name: "B", Fields: []string{"y"}, Methods: []*ast.Method{{Name: "bar"}}},
	}

	cfg := BuildLayout(classes)

	metaA := cfg.Classes["A"]
	yIdx, _ := cfg.FieldOffset("y")
	if metaA.FTable[yIdx] != SentinelField {
		t.Errorf("got A's ftable entry for y = %d, want sentinel %d", metaA.FTable[yIdx], SentinelField)
	}

	barIdx, _ := cfg.MethodOffset("bar")
	if metaA.VTable[barIdx] != SentinelMethod {
		t.Errorf("got A's vtable entry for bar = %q, want sentinel %q", metaA.VTable[barIdx], SentinelMethod)
	}
}

func TestMangledMethodName(t *testing.T) {
	if got, want := MangledMethodName("Counter", "bump"), "Counter_bump"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
