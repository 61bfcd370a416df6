package quant

import "testing"

func TestHumanizePrefixBuckets(t *testing.T) {
	tests := []struct {
		value      float64
		wantPrefix string
		wantScaled float64
	}{
		{0, "", 0},
		{1, "", 1},
		{2500, "k", 2.5},
		{3_500_000, "M", 3.5},
		{0.025, "m", 25},
		{0.0000025, "u", 2.5},
	}
	for _, tt := range tests {
		prefix, scaled := humanizePrefix(tt.value)
		if prefix != tt.wantPrefix || !almostEqual(scaled, tt.wantScaled) {
			t.Errorf("humanizePrefix(%v) = (%q, %v), want (%q, %v)", tt.value, prefix, scaled, tt.wantPrefix, tt.wantScaled)
		}
	}
}

func TestHumanizeNonPrefixableUnitUnchanged(t *testing.T) {
	q, err := New(2500, "ohm")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	_, units := q.Humanize()
	if units != "ohm" {
		t.Errorf("Humanize() units = %q, want ohm unchanged: it does not accept metric prefixes in this table", units)
	}
}
