package main

import (
	"testing"

	"github.com/ed-devane/soniphorm-sub000/fx"
)

func TestParseStepNameOnly(t *testing.T) {
	for _, step := range []string{"reverse", "reverse:", " reverse "} {
		name, values, err := parseStep(step)
		if err != nil {
			t.Fatalf("parseStep(%q) error = %v", step, err)
		}
		if name != "reverse" {
			t.Fatalf("parseStep(%q) name = %q, want %q", step, name, "reverse")
		}
		if values != nil {
			t.Fatalf("parseStep(%q) values = %v, want nil", step, values)
		}
	}
}

func TestParseStepNumericParameters(t *testing.T) {
	name, values, err := parseStep("delay:time=0.5,feedback=0.25,mix=1")
	if err != nil {
		t.Fatalf("parseStep() error = %v", err)
	}
	if name != "delay" {
		t.Fatalf("parseStep() name = %q, want %q", name, "delay")
	}
	if len(values) != 3 {
		t.Fatalf("parseStep() returned %d values, want 3", len(values))
	}

	want := map[string]fx.Value{
		"time":     fx.Num(0.5),
		"feedback": fx.Num(0.25),
		"mix":      fx.Num(1),
	}
	for key, wantValue := range want {
		if values[key] != wantValue {
			t.Errorf("parseStep() values[%q] = %v, want %v", key, values[key], wantValue)
		}
	}
}

func TestParseStepStringParameter(t *testing.T) {
	name, values, err := parseStep("filter:type=highpass,frequency=500")
	if err != nil {
		t.Fatalf("parseStep() error = %v", err)
	}
	if name != "filter" {
		t.Fatalf("parseStep() name = %q, want %q", name, "filter")
	}
	if values["type"] != fx.Str("highpass") {
		t.Errorf("parseStep() values[type] = %v, want option %q", values["type"], "highpass")
	}
	if values["frequency"] != fx.Num(500) {
		t.Errorf("parseStep() values[frequency] = %v, want 500", values["frequency"])
	}
}

func TestParseStepTrimsWhitespace(t *testing.T) {
	name, values, err := parseStep(" filter : type = notch , q = 2 ")
	if err != nil {
		t.Fatalf("parseStep() error = %v", err)
	}
	if name != "filter" {
		t.Fatalf("parseStep() name = %q, want %q", name, "filter")
	}
	if values["type"] != fx.Str("notch") {
		t.Errorf("parseStep() values[type] = %v, want option %q", values["type"], "notch")
	}
	if values["q"] != fx.Num(2) {
		t.Errorf("parseStep() values[q] = %v, want 2", values["q"])
	}
}

func TestParseStepRejectsMalformedSteps(t *testing.T) {
	steps := []string{
		"",
		":",
		":time=0.5",
		"delay:time",
		"delay:=0.5",
		"delay:time=",
		"delay:time=0.5,,mix=1",
	}

	for _, step := range steps {
		if _, _, err := parseStep(step); err == nil {
			t.Errorf("parseStep(%q) error = nil, want error", step)
		}
	}
}

func TestApplyRegionDefaultsToWholeBuffer(t *testing.T) {
	buf, err := fx.NewBuffer(8000, 1, 16000)
	if err != nil {
		t.Fatalf("NewBuffer() error = %v", err)
	}

	c := &applyCmd{}
	start, end := c.region(buf)
	if start != 0 || end != 16000 {
		t.Fatalf("region() = [%d, %d), want [0, 16000)", start, end)
	}
}

func TestApplyRegionConvertsSecondsToSamples(t *testing.T) {
	buf, err := fx.NewBuffer(8000, 1, 16000)
	if err != nil {
		t.Fatalf("NewBuffer() error = %v", err)
	}

	c := &applyCmd{Start: 0.5, End: 1.25}
	start, end := c.region(buf)
	if start != 4000 || end != 10000 {
		t.Fatalf("region() = [%d, %d), want [4000, 10000)", start, end)
	}
}

func TestApplyRegionClampsToBuffer(t *testing.T) {
	buf, err := fx.NewBuffer(8000, 1, 16000)
	if err != nil {
		t.Fatalf("NewBuffer() error = %v", err)
	}

	c := &applyCmd{Start: -1, End: 99}
	start, end := c.region(buf)
	if start != 0 || end != 16000 {
		t.Fatalf("region() = [%d, %d), want [0, 16000)", start, end)
	}
}
