package fx

import (
	"testing"
)

// newTestBuffer wraps channel slices in a Buffer, failing the test on
// invalid construction.
func newTestBuffer(t *testing.T, sampleRate float64, channels ...[]float64) *Buffer {
	t.Helper()

	buf, err := FromChannels(sampleRate, channels)
	if err != nil {
		t.Fatalf("FromChannels() error = %v", err)
	}

	return buf
}

// stubRenderer satisfies Renderer without real DSP: it clones the
// input, applies a flat gain, and records what it was asked to render.
type stubRenderer struct {
	gain     float64
	fail     error
	lastIR   *Buffer
	lastSpec FilterSpec
}

func newStubRenderer() *stubRenderer {
	return &stubRenderer{gain: 1}
}

func (s *stubRenderer) RenderIR(buf, ir *Buffer) (*Buffer, error) {
	if s.fail != nil {
		return nil, s.fail
	}
	s.lastIR = ir

	out := buf.Clone()
	scaleChannels(out.Channels, s.gain)

	return out, nil
}

func (s *stubRenderer) RenderFilter(buf *Buffer, spec FilterSpec) (*Buffer, error) {
	if s.fail != nil {
		return nil, s.fail
	}
	s.lastSpec = spec

	out := buf.Clone()
	scaleChannels(out.Channels, s.gain)

	return out, nil
}

func expectPanic(t *testing.T, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()
	fn()
}

func TestValidateRegion(t *testing.T) {
	buf := newTestBuffer(t, 48000, make([]float64, 100))

	tests := []struct {
		name    string
		start   int
		end     int
		wantErr bool
	}{
		{"full buffer", 0, 100, false},
		{"interior", 10, 90, false},
		{"single sample", 50, 51, false},
		{"negative start", -1, 50, true},
		{"end past buffer", 0, 101, true},
		{"empty region", 50, 50, true},
		{"inverted region", 60, 40, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRegion(buf, tt.start, tt.end)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ValidateRegion(%d, %d) error = %v, wantErr %v", tt.start, tt.end, err, tt.wantErr)
			}
		})
	}
}

func TestValidateRegionRejectsChannellessBuffers(t *testing.T) {
	if err := ValidateRegion(nil, 0, 1); err == nil {
		t.Fatal("ValidateRegion(nil) expected error")
	}
	if err := ValidateRegion(&Buffer{SampleRate: 48000}, 0, 1); err == nil {
		t.Fatal("ValidateRegion(no channels) expected error")
	}
}
