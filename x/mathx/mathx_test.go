package mathx

import (
	"testing"
	"time"
)

func TestClamp(t *testing.T) {
	if Clamp(5, 0, 3) != 3 || Clamp(-1, 0, 3) != 0 || Clamp(2, 0, 3) != 2 {
		t.Fatalf("int clamp failed")
	}
	if Clamp(5, 3, 0) != 3 {
		t.Fatalf("swapped bounds not handled")
	}
	if Clamp(1.5, 0.0, 1.0) != 1.0 {
		t.Fatalf("float clamp failed")
	}
}

func TestClampIndex(t *testing.T) {
	cases := []struct{ i, n, want int }{
		{-3, 7, 0},
		{0, 7, 0},
		{6, 7, 6},
		{7, 7, 6},
		{1000, 7, 6},
	}
	for _, c := range cases {
		if got := ClampIndex(c.i, c.n); got != c.want {
			t.Fatalf("ClampIndex(%d,%d)=%d want %d", c.i, c.n, got, c.want)
		}
	}
}

func TestMinMaxAbs(t *testing.T) {
	if Min(2, 3) != 2 || Max(2, 3) != 3 {
		t.Fatalf("min/max failed")
	}
	if Abs(-4) != 4 || Abs(time.Duration(-5)) != 5 {
		t.Fatalf("abs failed")
	}
}

func TestRoundSeconds(t *testing.T) {
	cases := []struct {
		d    time.Duration
		want int
	}{
		{0, 0},
		{400 * time.Millisecond, 0},
		{1400 * time.Millisecond, 1},
		{1600 * time.Millisecond, 2},
		{2500 * time.Millisecond, 2}, // half to even
		{5500 * time.Millisecond, 6},
		{-3 * time.Second, 3},
	}
	for _, c := range cases {
		if got := RoundSeconds(c.d); got != c.want {
			t.Fatalf("RoundSeconds(%v)=%d want %d", c.d, got, c.want)
		}
	}
}
