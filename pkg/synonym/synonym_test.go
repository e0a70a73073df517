package synonym

import (
	"slices"
	"testing"
)

func TestResolveFormat(t *testing.T) {
	tests := []struct {
		in   string
		want Format
	}{
		{"horizontal", FormatHorizontalBar},
		{"Piano Roll", FormatHorizontalBar},
		{"bar", FormatHorizontalBar},
		{"Weighted Scatter", FormatScatterWeighted},
		{"weighted", FormatScatterWeighted},
		{"3D", Format3DBars},
		{"histo", FormatHistogram},
		{"COUNT", FormatHistogram},
		{"point", FormatScatter},
		{"windowed", FormatColorGrid},
		{"Weighted Bar", FormatHorizontalBarWeighted},
		{"colorgrid", FormatColorGrid},
		{"4D super chart", "4dsuperchart"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := ResolveFormat(tt.in); got != tt.want {
				t.Errorf("ResolveFormat(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestFormatSynonyms_CanonicalFirst(t *testing.T) {
	if len(FormatSynonyms) != len(Formats) {
		t.Fatalf("%d synonym groups for %d formats", len(FormatSynonyms), len(Formats))
	}
	for i, group := range FormatSynonyms {
		if Format(group[0]) != Formats[i] {
			t.Errorf("group %d starts with %q, want %q", i, group[0], Formats[i])
		}
		for _, s := range group {
			if got := ResolveFormat(s); got != Formats[i] {
				t.Errorf("ResolveFormat(%q) = %q, want %q", s, got, Formats[i])
			}
		}
	}
}

func TestFormat_Known(t *testing.T) {
	for _, f := range Formats {
		if !f.Known() {
			t.Errorf("%q.Known() = false", f)
		}
	}
	if ResolveFormat("4D super chart").Known() {
		t.Error("pass-through format should not be known")
	}
}

func TestResolveValues(t *testing.T) {
	got := ResolveValues([]string{"pitchSpace", "Duration"})
	want := []Value{ValuePitch, ValueQuarterLength}
	if !slices.Equal(got, want) {
		t.Errorf("ResolveValues() = %v, want %v", got, want)
	}
}

func TestResolveValue(t *testing.T) {
	tests := []struct {
		in   string
		want Value
	}{
		{"pitch", ValuePitch},
		{"PS", ValuePitch},
		{"Pitch Class", ValuePitchClass},
		{"pc", ValuePitchClass},
		{"quarter length", ValueQuarterLength},
		{"time", ValueOffset},
		{"Offset", ValueOffset},
		{"dynamic", ValueDynamics},
		{"Instrumentation", ValueInstrument},
		{"instruments", ValueInstrument},
		{"Velocity Curve", "velocitycurve"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got := ResolveValue(tt.in)
			if got != tt.want {
				t.Errorf("ResolveValue(%q) = %q, want %q", tt.in, got, tt.want)
			}
			if got.Known() != slices.Contains(Values, tt.want) {
				t.Errorf("%q.Known() = %v", got, got.Known())
			}
		})
	}
}

func TestResolveValues_PreservesLength(t *testing.T) {
	in := []string{"ps", "unknown", "ps", ""}
	got := ResolveValues(in)
	if len(got) != len(in) {
		t.Fatalf("len = %d, want %d", len(got), len(in))
	}
	want := []Value{ValuePitch, "unknown", ValuePitch, ""}
	if !slices.Equal(got, want) {
		t.Errorf("ResolveValues() = %v, want %v", got, want)
	}

	if got := ResolveValues(nil); len(got) != 0 {
		t.Errorf("ResolveValues(nil) = %v, want empty", got)
	}
}
