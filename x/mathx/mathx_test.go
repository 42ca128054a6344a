package mathx

import "testing"

func TestClamp(t *testing.T) {
	if got := Clamp(5, 0, 3); got != 3 {
		t.Fatalf("Clamp(5,0,3)=%d want 3", got)
	}
	if got := Clamp(-1, 0, 3); got != 0 {
		t.Fatalf("Clamp(-1,0,3)=%d want 0", got)
	}
	// Swapped bounds are tolerated.
	if got := Clamp(2, 3, 0); got != 2 {
		t.Fatalf("Clamp(2,3,0)=%d want 2", got)
	}
}

func TestWrap(t *testing.T) {
	if got := Wrap(uint32(5), 16); got != 5 {
		t.Fatalf("Wrap(5,16)=%d want 5", got)
	}
	if got := Wrap(uint32(16), 16); got != 0 {
		t.Fatalf("Wrap(16,16)=%d want 0", got)
	}
	if got := Wrap(uint32(21), 16); got != 5 {
		t.Fatalf("Wrap(21,16)=%d want 5", got)
	}
}
