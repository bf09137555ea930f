package ssa

import (
	"testing"

	"github.com/conifer0us/cnf49-compiler/ir"
	"github.com/conifer0us/cnf49-compiler/lower"
	"github.com/conifer0us/cnf49-compiler/syntax"
)

func lowerAndRun(t *testing.T, src string, methodName string) *ir.MethodIR {
	t.Helper()
	prog := syntax.Parse("test.src", src)
	cfg := lower.Program(prog, false)
	m := cfg.MethodIRs[methodName]
	if m == nil {
		t.Fatalf("method %q was not lowered", methodName)
	}
	Run(m)
	return m
}

func TestRunInsertsPhiAtMergeBlock(t *testing.T) {
	src := "main with x: { if (1 == 1): { x = 1 } else { x = 2 } print(x) }"
	m := lowerAndRun(t, src, "main")

	var sawPhi bool
	for _, blk := range m.Blocks {
		if len(blk.Phis) > 0 {
			sawPhi = true
			for _, phi := range blk.Phis {
				if len(phi.Incoming) != 2 {
					t.Errorf("got %d incoming edges on phi for %s, want 2 (one per predecessor)", len(phi.Incoming), phi.Dest.Name)
				}
			}
		}
	}
	if !sawPhi {
		t.Fatalf("expected a phi at the merge block after an if/else that both assign x")
	}
}

func TestRunRenamesEveryDefWithAFreshVersion(t *testing.T) {
	src := "main with x: { x = 1 x = (x + 1) print(x) }"
	m := lowerAndRun(t, src, "main")

	seen := map[int]bool{}
	for _, blk := range m.Blocks {
		for _, inst := range blk.Instructions {
			for _, d := range inst.Defs() {
				if d.Name != "x" {
					continue
				}
				if seen[d.Version] {
					t.Errorf("version %d of x was defined more than once", d.Version)
				}
				seen[d.Version] = true
			}
		}
	}
	if len(seen) < 2 {
		t.Errorf("got %d distinct versions of x defined, want at least 2", len(seen))
	}
}

func TestRunNeverRenamesThis(t *testing.T) {
	src := "class K [ method get(this) with locals: { return this } ] main with: { _ = 0 }"
	m := lowerAndRun(t, src, "K_get")

	for _, blk := range m.Blocks {
		for _, u := range blk.Terminator.Uses() {
			if u.Name == "this" && u.Version != 0 {
				t.Errorf("got `this` renamed to version %d, want it to stay version 0", u.Version)
			}
		}
	}
}

func TestRunOnUnreachableWhileMergeBlockDoesNotPanic(t *testing.T) {
	src := "main with x: { x = 1 while (1 == 1): { x = (x + 1) } }"
	// Must not panic even though the merge block is only reached through
	// the loop condition's false edge, which a constant-true condition
	// never takes.
	lowerAndRun(t, src, "main")
}

func TestRunHandlesEmptyMethod(t *testing.T) {
	m := ir.NewMethodIR("empty", nil, nil)
	Run(m) // no blocks at all; must be a no-op, not a panic.
	if len(m.Blocks) != 0 {
		t.Errorf("got %d blocks, want 0", len(m.Blocks))
	}
}
