package fx

import (
	"math"
	"testing"
)

func TestNormaliseBringsPeakToTarget(t *testing.T) {
	left := []float64{0.1, -0.5, 0.2}
	right := []float64{0.25, 0.05, -0.1}
	buf := newTestBuffer(t, 48000, left, right)

	out, err := NewNormalise().Process(buf, 0, 3, nil)
	if err != nil {
		t.Fatalf("Process() error = %v", err)
	}

	peak := peakOf(out.Channels)
	if math.Abs(peak-0.95) > 1e-12 {
		t.Fatalf("peak after normalise = %v, want 0.95", peak)
	}

	// One factor across channels keeps the stereo balance.
	factor := 0.95 / 0.5
	if got, want := out.Channels[1][0], 0.25*factor; math.Abs(got-want) > 1e-12 {
		t.Fatalf("right channel sample 0 = %v, want %v", got, want)
	}
}

func TestNormaliseSkipsSilence(t *testing.T) {
	buf := newTestBuffer(t, 48000, make([]float64, 16))

	out, err := NewNormalise().Process(buf, 0, 16, nil)
	if err != nil {
		t.Fatalf("Process() error = %v", err)
	}
	for i, v := range out.Channels[0] {
		if v != 0 {
			t.Fatalf("sample %d = %v, want 0", i, v)
		}
	}
}

func TestNormaliseSkipsAlreadyLoudRegions(t *testing.T) {
	buf := newTestBuffer(t, 48000, []float64{0.97, -0.3, 0.1})

	out, err := NewNormalise().Process(buf, 0, 3, nil)
	if err != nil {
		t.Fatalf("Process() error = %v", err)
	}
	for i, v := range out.Channels[0] {
		if v != buf.Channels[0][i] {
			t.Fatalf("sample %d = %v, want %v", i, v, buf.Channels[0][i])
		}
	}
}

func TestNormaliseMeasuresRegionOnly(t *testing.T) {
	// The loud sample outside the region must not cap the scaling.
	buf := newTestBuffer(t, 48000, []float64{0.9, 0.1, 0.2, 0.1})

	out, err := NewNormalise().Process(buf, 1, 4, nil)
	if err != nil {
		t.Fatalf("Process() error = %v", err)
	}

	if out.Channels[0][0] != 0.9 {
		t.Fatalf("sample 0 = %v, want untouched 0.9", out.Channels[0][0])
	}
	if got, want := out.Channels[0][2], 0.2*(0.95/0.2); math.Abs(got-want) > 1e-12 {
		t.Fatalf("sample 2 = %v, want %v", got, want)
	}
}
