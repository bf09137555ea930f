package ir

import "testing"

func TestTerminatorIR(t *testing.T) {
	target := &BasicBlock{Label: "L1"}
	jump := &Jump{Target: target}
	if got, want := jump.IR(), "jump L1"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}

	trueT, falseT := &BasicBlock{Label: "T"}, &BasicBlock{Label: "F"}
	cond := &Conditional{Cond: NewLocal("c"), TrueTarget: trueT, FalseTarget: falseT}
	if got, want := cond.IR(), "if %c then T else F"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}

	ret := &Return{Val: NewTaggedConst(0)}
	if got, want := ret.IR(), "ret 1"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}

	fail := &Fail{Reason: NoSuchField}
	if got, want := fail.IR(), "fail NoSuchField"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}

	hang := &Hanging{}
	if got, want := hang.IR(), "ret 0"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestTerminatorSuccessors(t *testing.T) {
	a, b := &BasicBlock{Label: "A"}, &BasicBlock{Label: "B"}
	cond := &Conditional{Cond: NewLocal("c"), TrueTarget: a, FalseTarget: b}

	succs := cond.Successors()
	if len(succs) != 2 || succs[0] != a || succs[1] != b {
		t.Fatalf("got successors %v, want [A B]", succs)
	}

	if ret := (&Return{}).Successors(); ret != nil {
		t.Errorf("Return.Successors() = %v, want nil", ret)
	}
	if fail := (&Fail{}).Successors(); fail != nil {
		t.Errorf("Fail.Successors() = %v, want nil", fail)
	}
}

func TestFailReasonNames(t *testing.T) {
	cases := map[FailReason]string{
		NotAPointer:  "NotAPointer",
		NotANumber:   "NotANumber",
		NoSuchField:  "NoSuchField",
		NoSuchMethod: "NoSuchMethod",
	}
	for reason, want := range cases {
		if got := reason.String(); got != want {
			t.Errorf("got %q, want %q", got, want)
		}
	}
}
