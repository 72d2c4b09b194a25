package fx

import (
	"math"
	"testing"
)

func TestResolveNumeric(t *testing.T) {
	specs := []ParameterSpec{
		{Key: "gain", Min: 0, Max: 10, Step: 1, Default: 4},
	}

	tests := []struct {
		name   string
		values Values
		want   float64
	}{
		{"missing uses default", nil, 4},
		{"in range passes through", Values{"gain": Num(5.5)}, 5.5},
		{"below min clamps", Values{"gain": Num(-3)}, 0},
		{"above max clamps", Values{"gain": Num(42)}, 10},
		{"nan uses default", Values{"gain": Num(math.NaN())}, 4},
		{"positive inf uses default", Values{"gain": Num(math.Inf(1))}, 4},
		{"negative inf uses default", Values{"gain": Num(math.Inf(-1))}, 4},
		{"string for numeric uses default", Values{"gain": Str("loud")}, 4},
		{"step is a hint only", Values{"gain": Num(3.7)}, 3.7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Resolve(specs, tt.values).Num("gain")
			if got != tt.want {
				t.Fatalf("Resolve() gain = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestResolveEnum(t *testing.T) {
	specs := []ParameterSpec{
		{Key: "mode", Options: []string{"soft", "hard", "wrap"}, DefaultOption: "soft"},
	}

	tests := []struct {
		name   string
		values Values
		want   string
	}{
		{"missing uses default option", nil, "soft"},
		{"valid option passes through", Values{"mode": Str("hard")}, "hard"},
		{"unknown option uses default", Values{"mode": Str("sideways")}, "soft"},
		{"number for enum uses default", Values{"mode": Num(2)}, "soft"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Resolve(specs, tt.values).Str("mode")
			if got != tt.want {
				t.Fatalf("Resolve() mode = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestResolveIgnoresUndeclaredKeys(t *testing.T) {
	specs := []ParameterSpec{{Key: "gain", Min: 0, Max: 1, Default: 0.5}}

	r := Resolve(specs, Values{"gain": Num(0.25), "bogus": Num(7)})
	if got := r.Num("gain"); got != 0.25 {
		t.Fatalf("Resolve() gain = %v, want 0.25", got)
	}
	if got := r.Num("bogus"); got != 0 {
		t.Fatalf("Resolve() bogus = %v, want 0", got)
	}
	if got := r.Str("bogus"); got != "" {
		t.Fatalf("Resolve() bogus = %q, want empty", got)
	}
}

func TestParameterSpecKind(t *testing.T) {
	numeric := ParameterSpec{Key: "freq", Min: 20, Max: 20000}
	if numeric.Kind() != KindNumber {
		t.Fatalf("Kind() = %v, want KindNumber", numeric.Kind())
	}

	enum := ParameterSpec{Key: "type", Options: []string{"a", "b"}, DefaultOption: "a"}
	if enum.Kind() != KindEnum {
		t.Fatalf("Kind() = %v, want KindEnum", enum.Kind())
	}
}
