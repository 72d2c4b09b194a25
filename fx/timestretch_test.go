package fx

import (
	"testing"

	"github.com/ed-devane/soniphorm-sub000/internal/testutil"
)

func TestTimeStretchUnityRateReconstructs(t *testing.T) {
	input := testutil.DeterministicSine(440, 48000, 0.7, 16384)
	buf := newTestBuffer(t, 48000, append([]float64(nil), input...))

	out, err := NewTimeStretch().Process(buf, 0, 16384, Values{"rate": Num(1)})
	if err != nil {
		t.Fatalf("Process() error = %v", err)
	}
	if out.Len() != 16384 {
		t.Fatalf("Process() length = %d, want 16384", out.Len())
	}

	// Away from the windowed edges, unity rate is a round trip through
	// the phase vocoder.
	testutil.RequireSliceNearlyEqual(t, out.Channels[0][2048:14336], input[2048:14336], 1e-6)
}

func TestTimeStretchRateScalesLength(t *testing.T) {
	buf := newTestBuffer(t, 48000, testutil.DeterministicSine(330, 48000, 0.5, 16384))

	// 29 frames of 2048 at hop 512; synthesis hops scale with rate.
	tests := []struct {
		name string
		rate float64
		want int
	}{
		{"half speed", 0.5, 9216},
		{"double speed", 2, 30720},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := NewTimeStretch().Process(buf, 0, 16384, Values{"rate": Num(tt.rate)})
			if err != nil {
				t.Fatalf("Process() error = %v", err)
			}
			if out.Len() != tt.want {
				t.Fatalf("Process() length = %d, want %d", out.Len(), tt.want)
			}
			testutil.RequireFinite(t, out.Channels[0])
		})
	}
}

func TestTimeStretchSplicesAroundRegion(t *testing.T) {
	input := testutil.DeterministicNoise(13, 1, 16384)
	buf := newTestBuffer(t, 48000, append([]float64(nil), input...))

	out, err := NewTimeStretch().Process(buf, 4096, 12288, Values{"rate": Num(1)})
	if err != nil {
		t.Fatalf("Process() error = %v", err)
	}

	if out.Len() != 16384 {
		t.Fatalf("Process() length = %d, want 16384", out.Len())
	}
	testutil.RequireSliceNearlyEqual(t, out.Channels[0][:4096], input[:4096], 0)
	testutil.RequireSliceNearlyEqual(t, out.Channels[0][12288:], input[12288:], 0)
}

func TestTimeStretchDropsRegionShorterThanFrame(t *testing.T) {
	buf := newTestBuffer(t, 48000, testutil.DeterministicNoise(14, 1, 4000))

	out, err := NewTimeStretch().Process(buf, 1000, 2000, Values{"rate": Num(2)})
	if err != nil {
		t.Fatalf("Process() error = %v", err)
	}

	// 1000 samples is under one analysis frame, so the region
	// resynthesizes to nothing and the splice closes over it.
	if out.Len() != 3000 {
		t.Fatalf("Process() length = %d, want 3000", out.Len())
	}
}
