package ir

import "testing"

func TestLocalIR(t *testing.T) {
	v0 := &Local{Name: "x"}
	if got := v0.IR(); got != "%x" {
		t.Errorf("got %q, want %%x", got)
	}

	v3 := &Local{Name: "x", Version: 3}
	if got := v3.IR(); got != "%x3" {
		t.Errorf("got %q, want %%x3", got)
	}
}

func TestGlobalIR(t *testing.T) {
	g := NewGlobal("vtableFoo")
	if got := g.IR(); got != "@vtableFoo" {
		t.Errorf("got %q, want @vtableFoo", got)
	}
}

func TestConstIR(t *testing.T) {
	tagged := NewTaggedConst(5)
	if got := tagged.IR(); got != "11" {
		t.Errorf("got %q, want 11 (tagged 5)", got)
	}

	raw := NewRawConst(5)
	if got := raw.IR(); got != "5" {
		t.Errorf("got %q, want 5", got)
	}

	zero := NewTaggedConst(0)
	if got := zero.IR(); got != "1" {
		t.Errorf("got %q, want 1 (tagged 0)", got)
	}
}

func TestVTableAndFTableLabels(t *testing.T) {
	if got := VTableLabel("Counter").IR(); got != "@vtableCounter" {
		t.Errorf("got %q, want @vtableCounter", got)
	}
	if got := FTableLabel("Counter").IR(); got != "@ftableCounter" {
		t.Errorf("got %q, want @ftableCounter", got)
	}
}
