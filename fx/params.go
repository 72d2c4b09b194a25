package fx

import (
	"math"

	"github.com/ed-devane/soniphorm-sub000/dsp/core"
)

// Scale describes how a UI should sweep a numeric parameter range.
type Scale int

const (
	// ScaleLinear sweeps the range uniformly.
	ScaleLinear Scale = iota

	// ScaleLog sweeps the range logarithmically. Used for frequencies
	// and rate ratios.
	ScaleLog
)

// ParamKind distinguishes numeric parameters from enumerated ones.
type ParamKind int

const (
	// KindNumber is a float parameter with Min/Max/Step/Default.
	KindNumber ParamKind = iota

	// KindEnum is a choice among Options with DefaultOption.
	KindEnum
)

// ParameterSpec declares one effect parameter. Numeric parameters carry
// a range, step, and default; enumerated parameters carry the option
// list instead. Step and Scale are hints for parameter sweeps; the
// engine itself only clamps.
type ParameterSpec struct {
	Key     string
	Label   string
	Unit    string
	Min     float64
	Max     float64
	Step    float64
	Default float64
	Scale   Scale

	// Options being non-empty marks an enumerated parameter.
	Options       []string
	DefaultOption string
}

// Kind reports whether the parameter is numeric or enumerated.
func (p ParameterSpec) Kind() ParamKind {
	if len(p.Options) > 0 {
		return KindEnum
	}

	return KindNumber
}

// Value is one caller-supplied parameter value, either a number or an
// option string.
type Value struct {
	num   float64
	str   string
	isStr bool
}

// Num wraps a numeric parameter value.
func Num(x float64) Value {
	return Value{num: x}
}

// Str wraps an enumerated parameter value.
func Str(s string) Value {
	return Value{str: s, isStr: true}
}

// Values maps parameter keys to caller-supplied values. Entries may be
// missing or invalid; Resolve substitutes defaults.
type Values map[string]Value

// Resolved is a complete parameter set: every declared key present,
// numerics clamped into range, defaults filled in.
type Resolved struct {
	nums map[string]float64
	strs map[string]string
}

// Num returns the resolved numeric value for key. Undeclared keys
// return 0.
func (r Resolved) Num(key string) float64 {
	return r.nums[key]
}

// Str returns the resolved option string for an enumerated key.
func (r Resolved) Str(key string) string {
	return r.strs[key]
}

// Resolve checks values against specs. Numeric entries are clamped to
// [Min, Max]; missing entries, wrong-kind values, non-finite numbers,
// and unknown options all fall back to the spec default. Resolve never
// fails, so effects always run with a usable parameter set.
func Resolve(specs []ParameterSpec, values Values) Resolved {
	r := Resolved{
		nums: make(map[string]float64, len(specs)),
		strs: make(map[string]string),
	}

	for _, spec := range specs {
		v, ok := values[spec.Key]

		if spec.Kind() == KindEnum {
			choice := spec.DefaultOption
			if ok && v.isStr && containsOption(spec.Options, v.str) {
				choice = v.str
			}
			r.strs[spec.Key] = choice

			continue
		}

		x := spec.Default
		if ok && !v.isStr && !math.IsNaN(v.num) && !math.IsInf(v.num, 0) {
			x = core.Clamp(v.num, spec.Min, spec.Max)
		}
		r.nums[spec.Key] = x
	}

	return r
}

func containsOption(options []string, s string) bool {
	for _, opt := range options {
		if opt == s {
			return true
		}
	}

	return false
}
