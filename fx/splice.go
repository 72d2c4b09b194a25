package fx

// Splice rebuilds a full buffer around a reprocessed region: for every
// channel the result is original[0:start] + region[ch] + original[end:].
// The region slices may have any length, including zero, so the result
// length is start + len(region[ch]) + (original.Len() - end).
func Splice(original *Buffer, region [][]float64, start, end int) *Buffer {
	channels := make([][]float64, original.NumChannels())
	for ch, data := range original.Channels {
		var processed []float64
		if ch < len(region) {
			processed = region[ch]
		}

		out := make([]float64, 0, start+len(processed)+len(data)-end)
		out = append(out, data[:start]...)
		out = append(out, processed...)
		out = append(out, data[end:]...)
		channels[ch] = out
	}

	return &Buffer{Channels: channels, SampleRate: original.SampleRate}
}
