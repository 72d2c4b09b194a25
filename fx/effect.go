package fx

import (
	"errors"
	"fmt"
)

// Errors shared across the effect catalog.
var (
	// ErrNoSource is returned when a cross-buffer effect runs without a
	// source buffer.
	ErrNoSource = errors.New("fx: effect requires a source buffer")

	// ErrNoRenderer is returned when an effect needs the rendering
	// facility but the catalog was built without one.
	ErrNoRenderer = errors.New("fx: effect requires a renderer")

	// ErrRendering wraps failures reported by the rendering facility.
	ErrRendering = errors.New("fx: rendering failed")
)

// Effect processes a region of a buffer and returns the full-length
// result. Implementations never mutate the input buffer.
//
// The region is the caller's responsibility: 0 <= start < end <=
// buf.Len(). Effects whose output region differs in length from
// end-start rebuild the buffer around the new region via Splice.
type Effect interface {
	// Label returns the human-readable effect name.
	Label() string

	// Parameters declares the effect's parameter specs in display
	// order. Effects without parameters return nil.
	Parameters() []ParameterSpec

	// Process applies the effect to buf over [start, end).
	Process(buf *Buffer, start, end int, values Values) (*Buffer, error)
}

// SourceEffect is implemented by effects that combine the target buffer
// with a second source buffer (convolve, ringmodbuffer, vocoder). Plain
// Process on these effects returns ErrNoSource.
type SourceEffect interface {
	Effect

	ProcessWithSource(buf, source *Buffer, start, end int, values Values) (*Buffer, error)
}

// FilterType names the biquad responses the rendering facility
// produces.
type FilterType string

const (
	FilterLowpass  FilterType = "lowpass"
	FilterHighpass FilterType = "highpass"
	FilterBandpass FilterType = "bandpass"
	FilterNotch    FilterType = "notch"
)

// FilterSpec describes a filter render request.
type FilterSpec struct {
	Type      FilterType
	Frequency float64
	Q         float64
}

// Renderer is the offline rendering facility consumed by reverb,
// filter, and convolve. Implementations return a buffer of exactly the
// input length and leave the input untouched; on error the caller's
// buffer must be unchanged.
type Renderer interface {
	RenderIR(buf, ir *Buffer) (*Buffer, error)
	RenderFilter(buf *Buffer, spec FilterSpec) (*Buffer, error)
}

// ValidateRegion checks that [start, end) selects a non-empty range
// inside buf.
func ValidateRegion(buf *Buffer, start, end int) error {
	if buf == nil || buf.NumChannels() == 0 {
		return errors.New("fx: buffer has no channels")
	}
	if start < 0 || end > buf.Len() || start >= end {
		return fmt.Errorf("fx: invalid region [%d, %d) for buffer of %d samples", start, end, buf.Len())
	}

	return nil
}
