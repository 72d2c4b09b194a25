package fx

// normaliseTarget is the headroom peak that normalise scales up to and
// the level above which it leaves the region alone.
const normaliseTarget = 0.95

// Normalise scales the region so its peak across all channels reaches
// 0.95. Regions that are silent or already at or above the target are
// left untouched. A single factor is applied to every channel so the
// stereo balance is preserved.
type Normalise struct{}

// NewNormalise returns the normalise effect.
func NewNormalise() *Normalise {
	return &Normalise{}
}

// Label implements Effect.
func (*Normalise) Label() string { return "Normalise" }

// Parameters implements Effect.
func (*Normalise) Parameters() []ParameterSpec { return nil }

// Process implements Effect.
func (*Normalise) Process(buf *Buffer, start, end int, _ Values) (*Buffer, error) {
	out := buf.Clone()

	region := make([][]float64, out.NumChannels())
	for ch, data := range out.Channels {
		region[ch] = data[start:end]
	}

	peak := peakOf(region)
	if peak == 0 || peak >= normaliseTarget {
		return out, nil
	}

	scaleChannels(region, normaliseTarget/peak)

	return out, nil
}
