package fx

import (
	"testing"

	"github.com/ed-devane/soniphorm-sub000/internal/testutil"
)

func TestOverdriveStaysBounded(t *testing.T) {
	buf := newTestBuffer(t, 48000, testutil.DeterministicSine(220, 48000, 1, 4096))

	out, err := NewOverdrive().Process(buf, 0, 4096, Values{
		"drive": Num(40),
		"tone":  Num(1),
	})
	if err != nil {
		t.Fatalf("Process() error = %v", err)
	}

	// tanh keeps the shaper inside (-1, 1) and the one-pole only
	// averages, so the bound survives.
	testutil.RequirePeakAtMost(t, out.Channels[0], 1)
}

func TestOverdriveZeroDriveIsSilence(t *testing.T) {
	buf := newTestBuffer(t, 48000, testutil.DeterministicSine(220, 48000, 1, 1024))

	out, err := NewOverdrive().Process(buf, 0, 1024, Values{"drive": Num(0)})
	if err != nil {
		t.Fatalf("Process() error = %v", err)
	}

	for i, v := range out.Channels[0] {
		if v != 0 {
			t.Fatalf("sample %d = %v, want 0", i, v)
		}
	}
}

func TestOverdriveDarkToneSmoothsHarderThanBright(t *testing.T) {
	input := testutil.DeterministicSine(4000, 48000, 1, 4096)

	process := func(tone float64) *Buffer {
		buf := newTestBuffer(t, 48000, append([]float64(nil), input...))
		out, err := NewOverdrive().Process(buf, 0, 4096, Values{
			"drive": Num(20),
			"tone":  Num(tone),
		})
		if err != nil {
			t.Fatalf("Process() error = %v", err)
		}
		return out
	}

	dark := process(0)
	bright := process(1)

	darkPeak := peakOf(dark.Channels)
	brightPeak := peakOf(bright.Channels)
	if darkPeak >= brightPeak {
		t.Fatalf("dark tone peak %v not below bright tone peak %v", darkPeak, brightPeak)
	}
}
