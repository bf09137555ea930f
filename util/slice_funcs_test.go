package util

import "testing"

func TestContains(t *testing.T) {
	if !Contains([]string{"a", "b", "c"}, "b") {
		t.Errorf("got false, want true")
	}
	if Contains([]string{"a", "b", "c"}, "z") {
		t.Errorf("got true, want false")
	}
	if Contains(nil, "a") {
		t.Errorf("got true for nil slice, want false")
	}
}

func TestMap(t *testing.T) {
	got := Map([]int{1, 2, 3}, func(n int) int { return n * 2 })
	want := []int{2, 4, 6}

	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("index %d: got %d, want %d", i, got[i], want[i])
		}
	}
}
