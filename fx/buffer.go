package fx

import (
	"errors"
	"fmt"
)

// Buffer holds multi-channel audio as parallel float64 slices with a
// shared sample rate. Samples are nominally in [-1, 1]; effects may
// exceed that range between stages.
type Buffer struct {
	Channels   [][]float64
	SampleRate float64
}

// NewBuffer allocates a silent buffer with the given channel count and
// per-channel length.
func NewBuffer(sampleRate float64, channels, length int) (*Buffer, error) {
	if sampleRate <= 0 {
		return nil, fmt.Errorf("fx: sample rate must be positive: %g", sampleRate)
	}
	if channels < 1 {
		return nil, fmt.Errorf("fx: channel count must be >= 1: %d", channels)
	}
	if length < 0 {
		return nil, fmt.Errorf("fx: length must be >= 0: %d", length)
	}

	data := make([][]float64, channels)
	for ch := range data {
		data[ch] = make([]float64, length)
	}

	return &Buffer{Channels: data, SampleRate: sampleRate}, nil
}

// FromChannels wraps existing channel slices in a Buffer. All channels
// must share one length. The slices are used directly, not copied.
func FromChannels(sampleRate float64, channels [][]float64) (*Buffer, error) {
	if sampleRate <= 0 {
		return nil, fmt.Errorf("fx: sample rate must be positive: %g", sampleRate)
	}
	if len(channels) == 0 {
		return nil, errors.New("fx: at least one channel required")
	}

	want := len(channels[0])
	for ch, data := range channels {
		if len(data) != want {
			return nil, fmt.Errorf("fx: channel %d length %d does not match channel 0 length %d", ch, len(data), want)
		}
	}

	return &Buffer{Channels: channels, SampleRate: sampleRate}, nil
}

// NumChannels returns the channel count.
func (b *Buffer) NumChannels() int {
	return len(b.Channels)
}

// Len returns the per-channel sample count.
func (b *Buffer) Len() int {
	if len(b.Channels) == 0 {
		return 0
	}

	return len(b.Channels[0])
}

// Duration returns the buffer length in seconds.
func (b *Buffer) Duration() float64 {
	return float64(b.Len()) / b.SampleRate
}

// Clone returns a deep copy.
func (b *Buffer) Clone() *Buffer {
	channels := make([][]float64, len(b.Channels))
	for ch, data := range b.Channels {
		channels[ch] = append([]float64(nil), data...)
	}

	return &Buffer{Channels: channels, SampleRate: b.SampleRate}
}
