package testutil

import (
	"math"
	"testing"
)

func TestSineIntegerCyclesHasZeroMean(t *testing.T) {
	s := Sine(8, 1024, 1.0, 1024)
	if len(s) != 1024 {
		t.Fatalf("len = %d, want 1024", len(s))
	}
	sum := 0.0
	for _, v := range s {
		sum += v
	}
	if math.Abs(sum) > 1e-9 {
		t.Fatalf("sum = %v, want ~0 for integer cycle count", sum)
	}
}

func TestImpulse(t *testing.T) {
	s := Impulse(8, 3)
	for i, v := range s {
		want := 0.0
		if i == 3 {
			want = 1
		}
		if v != want {
			t.Fatalf("s[%d] = %v, want %v", i, v, want)
		}
	}
}

func TestRamp(t *testing.T) {
	s := Ramp(0, 3, 4)
	want := []float64{0, 1, 2, 3}
	for i := range want {
		if s[i] != want[i] {
			t.Fatalf("s[%d] = %v, want %v", i, s[i], want[i])
		}
	}
}
