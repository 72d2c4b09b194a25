package fx

import (
	"errors"
	"testing"

	"github.com/ed-devane/soniphorm-sub000/internal/testutil"
)

func TestReverbWithoutRendererFails(t *testing.T) {
	buf := newTestBuffer(t, 48000, testutil.Ones(64))

	_, err := NewReverb(nil, 1).Process(buf, 0, 64, nil)
	if !errors.Is(err, ErrNoRenderer) {
		t.Fatalf("Process() error = %v, want ErrNoRenderer", err)
	}
}

func TestReverbWrapsRendererFailure(t *testing.T) {
	input := testutil.DeterministicNoise(3, 1, 128)
	buf := newTestBuffer(t, 48000, append([]float64(nil), input...))

	renderer := newStubRenderer()
	renderer.fail = errors.New("boom")

	_, err := NewReverb(renderer, 1).Process(buf, 0, 128, nil)
	if !errors.Is(err, ErrRendering) {
		t.Fatalf("Process() error = %v, want ErrRendering", err)
	}
	testutil.RequireSliceNearlyEqual(t, buf.Channels[0], input, 0)
}

func TestReverbBlendsWetOverRegion(t *testing.T) {
	input := testutil.DeterministicSine(440, 8000, 0.5, 2000)
	buf := newTestBuffer(t, 8000, append([]float64(nil), input...))

	// The stub returns the dry region as wet, so the mix blend must
	// reassemble the input.
	out, err := NewReverb(newStubRenderer(), 1).Process(buf, 0, 2000, Values{"mix": Num(0.35)})
	if err != nil {
		t.Fatalf("Process() error = %v", err)
	}
	testutil.RequireSliceNearlyEqual(t, out.Channels[0], input, 1e-12)
}

func TestReverbBuildsImpulseResponseFromDecay(t *testing.T) {
	buf := newTestBuffer(t, 8000,
		testutil.DeterministicNoise(1, 1, 1000),
		testutil.DeterministicNoise(2, 1, 1000))

	renderer := newStubRenderer()
	if _, err := NewReverb(renderer, 1).Process(buf, 0, 1000, Values{"decay": Num(0.5)}); err != nil {
		t.Fatalf("Process() error = %v", err)
	}

	ir := renderer.lastIR
	if ir == nil {
		t.Fatal("renderer never received an impulse response")
	}
	if ir.Len() != 4000 {
		t.Fatalf("impulse response length = %d, want 4000", ir.Len())
	}
	if ir.NumChannels() != 2 {
		t.Fatalf("impulse response channels = %d, want 2", ir.NumChannels())
	}

	// Per-channel noise decorrelates the tail.
	if diff, err := testutil.MaxAbsDiff(ir.Channels[0], ir.Channels[1]); err != nil || diff == 0 {
		t.Fatalf("impulse response channels identical (diff %v, err %v)", diff, err)
	}
}

func TestReverbSeedReproducible(t *testing.T) {
	input := testutil.DeterministicNoise(4, 1, 1000)

	run := func(seed int64) *Buffer {
		buf := newTestBuffer(t, 8000, append([]float64(nil), input...))
		renderer := newStubRenderer()
		if _, err := NewReverb(renderer, seed).Process(buf, 0, 1000, Values{"mix": Num(1)}); err != nil {
			t.Fatalf("Process() error = %v", err)
		}
		return renderer.lastIR
	}

	first := run(21)
	second := run(21)
	testutil.RequireSliceNearlyEqual(t, first.Channels[0], second.Channels[0], 0)
}
