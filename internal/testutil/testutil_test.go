package testutil

import (
	"math"
	"testing"
)

func TestDeterministicSineIsReproducible(t *testing.T) {
	a := DeterministicSine(440, 48000, 0.5, 128)
	b := DeterministicSine(440, 48000, 0.5, 128)

	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("index %d: %v != %v", i, a[i], b[i])
		}
	}
	if a[0] != 0 {
		t.Fatalf("sine must start at zero, got %v", a[0])
	}
}

func TestDeterministicNoiseSeedControlsOutput(t *testing.T) {
	a := DeterministicNoise(7, 1, 64)
	b := DeterministicNoise(7, 1, 64)
	c := DeterministicNoise(8, 1, 64)

	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("same seed diverged at %d", i)
		}
	}

	same := true
	for i := range a {
		if a[i] != c[i] {
			same = false
			break
		}
	}
	if same {
		t.Fatal("different seeds produced identical noise")
	}
}

func TestImpulsePlacement(t *testing.T) {
	imp := Impulse(8, 3)
	for i, v := range imp {
		want := 0.0
		if i == 3 {
			want = 1.0
		}
		if v != want {
			t.Fatalf("index %d: got %v, want %v", i, v, want)
		}
	}

	outOfRange := Impulse(4, 9)
	for i, v := range outOfRange {
		if v != 0 {
			t.Fatalf("index %d: expected all zeros, got %v", i, v)
		}
	}
}

func TestMaxAbsDiff(t *testing.T) {
	a := []float64{0, 1, -2}
	b := []float64{0.5, 1, -1}

	diff, err := MaxAbsDiff(a, b)
	if err != nil {
		t.Fatalf("MaxAbsDiff() error = %v", err)
	}
	if math.Abs(diff-1) > 1e-15 {
		t.Fatalf("MaxAbsDiff() = %v, want 1", diff)
	}

	if _, err := MaxAbsDiff(a, []float64{1}); err == nil {
		t.Fatal("expected length mismatch error")
	}
}

func TestOnesAndDC(t *testing.T) {
	ones := Ones(5)
	for i, v := range ones {
		if v != 1 {
			t.Fatalf("index %d: got %v, want 1", i, v)
		}
	}

	dc := DC(-0.25, 3)
	for i, v := range dc {
		if v != -0.25 {
			t.Fatalf("index %d: got %v, want -0.25", i, v)
		}
	}
}
