package fx

import "testing"

func TestNewBufferAllocatesSilence(t *testing.T) {
	buf, err := NewBuffer(48000, 2, 16)
	if err != nil {
		t.Fatalf("NewBuffer() error = %v", err)
	}

	if buf.NumChannels() != 2 {
		t.Fatalf("NumChannels() = %d, want 2", buf.NumChannels())
	}
	if buf.Len() != 16 {
		t.Fatalf("Len() = %d, want 16", buf.Len())
	}
	for ch, data := range buf.Channels {
		for i, v := range data {
			if v != 0 {
				t.Fatalf("channel %d sample %d = %v, want 0", ch, i, v)
			}
		}
	}
}

func TestNewBufferRejectsBadArguments(t *testing.T) {
	tests := []struct {
		name       string
		sampleRate float64
		channels   int
		length     int
	}{
		{"zero rate", 0, 1, 16},
		{"negative rate", -48000, 1, 16},
		{"zero channels", 48000, 0, 16},
		{"negative length", 48000, 1, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewBuffer(tt.sampleRate, tt.channels, tt.length); err == nil {
				t.Fatalf("NewBuffer(%g, %d, %d) expected error", tt.sampleRate, tt.channels, tt.length)
			}
		})
	}
}

func TestFromChannelsValidates(t *testing.T) {
	if _, err := FromChannels(48000, nil); err == nil {
		t.Fatal("FromChannels(no channels) expected error")
	}
	if _, err := FromChannels(0, [][]float64{{1}}); err == nil {
		t.Fatal("FromChannels(zero rate) expected error")
	}
	if _, err := FromChannels(48000, [][]float64{{1, 2}, {1}}); err == nil {
		t.Fatal("FromChannels(mismatched lengths) expected error")
	}
}

func TestDuration(t *testing.T) {
	buf, err := NewBuffer(48000, 1, 24000)
	if err != nil {
		t.Fatalf("NewBuffer() error = %v", err)
	}
	if got := buf.Duration(); got != 0.5 {
		t.Fatalf("Duration() = %v, want 0.5", got)
	}
}

func TestCloneIsIndependent(t *testing.T) {
	buf := newTestBuffer(t, 44100, []float64{1, 2, 3}, []float64{4, 5, 6})

	clone := buf.Clone()
	if clone.SampleRate != buf.SampleRate {
		t.Fatalf("Clone() sample rate = %v, want %v", clone.SampleRate, buf.SampleRate)
	}

	clone.Channels[0][0] = 99
	clone.Channels[1][2] = 99

	if buf.Channels[0][0] != 1 || buf.Channels[1][2] != 6 {
		t.Fatal("mutating the clone changed the original")
	}
}
