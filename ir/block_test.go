package ir

import "testing"

func TestBasicBlockIRLayout(t *testing.T) {
	blk := newBlock("L0")
	blk.Phis = append(blk.Phis, &Phi{
		Dest:     NewLocal("x"),
		Incoming: []PhiIncoming{{PredLabel: "L1", Val: NewLocal("y")}},
	})
	blk.Instructions = append(blk.Instructions, &Assign{Dest: NewLocal("z"), Src: NewRawConst(1)})
	blk.Terminator = &Return{Val: NewLocal("z")}

	got := blk.IR()
	want := "L0:\n" +
		"\t%x = phi(L1, %y)\n" +
		"\t%z = 1\n" +
		"\tret %z\n"

	if got != want {
		t.Errorf("got:\n%q\nwant:\n%q", got, want)
	}
}

func TestNewBlockDefaultsToHanging(t *testing.T) {
	blk := newBlock("L0")
	if _, ok := blk.Terminator.(*Hanging); !ok {
		t.Fatalf("got terminator %T, want *Hanging", blk.Terminator)
	}
}
