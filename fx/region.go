package fx

import "github.com/ed-devane/soniphorm-sub000/dsp/core"

// copyRegion returns fresh copies of each channel's [start, end) range.
func copyRegion(buf *Buffer, start, end int) [][]float64 {
	out := make([][]float64, buf.NumChannels())
	for ch, data := range buf.Channels {
		out[ch] = append([]float64(nil), data[start:end]...)
	}

	return out
}

// regionBuffer wraps copies of the region in a standalone Buffer for
// the rendering facility.
func regionBuffer(buf *Buffer, start, end int) *Buffer {
	return &Buffer{Channels: copyRegion(buf, start, end), SampleRate: buf.SampleRate}
}

// peakOf returns the largest absolute sample across channel slices.
func peakOf(channels [][]float64) float64 {
	peak := 0.0
	for _, ch := range channels {
		if p := core.Peak(ch); p > peak {
			peak = p
		}
	}

	return peak
}

// scaleChannels multiplies every channel in place.
func scaleChannels(channels [][]float64, factor float64) {
	for _, ch := range channels {
		core.Scale(ch, factor)
	}
}
