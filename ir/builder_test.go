package ir

import "testing"

func newTestBuilder(pinhole bool) (*Builder, *MethodIR) {
	cfg := NewCFG()
	cfg.Classes["Counter"] = &ClassMetadata{Name: "Counter", ObjSize: 3}
	cfg.Fields = []string{"count"}
	cfg.Methods = []string{"bump"}

	method := NewMethodIR("Counter_bump", []string{"this"}, nil)
	b := NewBuilder(cfg, method, pinhole)
	entry := b.CreateBlock()
	b.SetCurrentBlock(entry)
	return b, method
}

func TestTagCheckEmitsBitAndAndSplitsBlocks(t *testing.T) {
	b, method := newTestBuilder(false)

	v := NewLocal("x")
	b.TagCheck(v, false)

	if len(method.Blocks) != 3 {
		t.Fatalf("got %d blocks, want 3 (entry, ok, fail)", len(method.Blocks))
	}

	entry := method.Blocks[0]
	if len(entry.Instructions) != 1 {
		t.Fatalf("got %d instructions in entry, want 1 (the bit isolation)", len(entry.Instructions))
	}
	if _, ok := entry.Terminator.(*Conditional); !ok {
		t.Fatalf("got terminator %T, want *Conditional", entry.Terminator)
	}

	if b.CurrentBlock() != method.Blocks[1] {
		t.Errorf("current block after TagCheck should be the ok block")
	}
}

func TestTagCheckElidedForThisUnderPinhole(t *testing.T) {
	b, method := newTestBuilder(true)

	b.TagCheck(NewLocal("this"), true)

	if len(method.Blocks) != 1 {
		t.Fatalf("got %d blocks, want 1 (pinhole should elide the check entirely)", len(method.Blocks))
	}
}

func TestTagCheckNotElidedForThisWithoutPinhole(t *testing.T) {
	b, method := newTestBuilder(false)

	b.TagCheck(NewLocal("this"), true)

	if len(method.Blocks) == 1 {
		t.Fatalf("got 1 block, want the full check emitted since pinhole is off")
	}
}

func TestUntagIntThenTagIntRoundTrips(t *testing.T) {
	b, _ := newTestBuilder(false)

	raw := b.UntagInt(NewLocal("x"))
	if _, ok := raw.(*Local); !ok {
		t.Fatalf("UntagInt should return a fresh temporary, got %T", raw)
	}

	retagged := b.TagInt(raw)
	if _, ok := retagged.(*Local); !ok {
		t.Fatalf("TagInt should return a fresh temporary, got %T", retagged)
	}

	if raw.(*Local).Name == retagged.(*Local).Name {
		t.Errorf("UntagInt/TagInt should each allocate a distinct temporary")
	}
}

func TestGetNextTempNamesAreMonotonicAndDistinct(t *testing.T) {
	b, _ := newTestBuilder(false)

	first := b.GetNextTemp()
	second := b.GetNextTemp()

	if first.Name == second.Name {
		t.Errorf("got identical temp names %q and %q, want distinct", first.Name, second.Name)
	}
}

func TestFailIfZeroBranchesToFailBlock(t *testing.T) {
	b, method := newTestBuilder(false)

	b.FailIfZero(NewLocal("entry"), NoSuchField)

	var failBlock *BasicBlock
	for _, blk := range method.Blocks {
		if f, ok := blk.Terminator.(*Fail); ok && f.Reason == NoSuchField {
			failBlock = blk
		}
	}
	if failBlock == nil {
		t.Fatalf("no block terminates in Fail(NoSuchField)")
	}
}

func TestGetFieldAndMethodOffsetLookups(t *testing.T) {
	b, _ := newTestBuilder(false)

	if off := b.GetFieldOffset("count"); off != 0 {
		t.Errorf("got %d, want 0", off)
	}
	if off := b.GetMethodOffset("bump"); off != 0 {
		t.Errorf("got %d, want 0", off)
	}
	if size := b.GetClassSize("Counter"); size != 3 {
		t.Errorf("got %d, want 3", size)
	}
}
