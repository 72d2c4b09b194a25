package fx

import (
	"testing"

	"github.com/ed-devane/soniphorm-sub000/internal/testutil"
)

func TestBitcrushFullDepthIsNearIdentity(t *testing.T) {
	input := testutil.DeterministicSine(440, 48000, 0.9, 2048)
	buf := newTestBuffer(t, 48000, append([]float64(nil), input...))

	out, err := NewBitcrush().Process(buf, 0, 2048, Values{
		"bits":       Num(16),
		"downsample": Num(1),
	})
	if err != nil {
		t.Fatalf("Process() error = %v", err)
	}

	// 16 bits leaves at most half a quantization step of error.
	testutil.RequireSliceNearlyEqual(t, out.Channels[0], input, 1.0/32768)
}

func TestBitcrushHoldsAcrossDownsample(t *testing.T) {
	buf := newTestBuffer(t, 48000, testutil.DeterministicNoise(9, 1, 256))

	out, err := NewBitcrush().Process(buf, 0, 256, Values{
		"bits":       Num(8),
		"downsample": Num(4),
	})
	if err != nil {
		t.Fatalf("Process() error = %v", err)
	}

	for i, v := range out.Channels[0] {
		held := out.Channels[0][i-i%4]
		if v != held {
			t.Fatalf("sample %d = %v, want held value %v", i, v, held)
		}
	}
}

func TestBitcrushOneBitQuantizesToThreeLevels(t *testing.T) {
	buf := newTestBuffer(t, 48000, testutil.DeterministicSine(100, 48000, 1, 1024))

	out, err := NewBitcrush().Process(buf, 0, 1024, Values{
		"bits":       Num(1),
		"downsample": Num(1),
	})
	if err != nil {
		t.Fatalf("Process() error = %v", err)
	}

	for i, v := range out.Channels[0] {
		if v != -1 && v != 0 && v != 1 {
			t.Fatalf("sample %d = %v, want one of -1, 0, 1", i, v)
		}
	}
}
