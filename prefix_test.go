package quant

import "testing"

func TestMetricAndBinaryPrefixesAreDisjoint(t *testing.T) {
	for sym := range metricPrefixes {
		if _, ok := binaryPrefixes[sym]; ok {
			t.Errorf("prefix symbol %q present in both metric and binary tables", sym)
		}
	}
}

func TestMetricPrefixesAreSingleRune(t *testing.T) {
	for sym := range metricPrefixes {
		n := 0
		for range sym {
			n++
		}
		if n != 1 {
			t.Errorf("metric prefix %q is not exactly one rune", sym)
		}
	}
}

func TestBinaryPrefixesAreTwoRunes(t *testing.T) {
	for sym := range binaryPrefixes {
		n := 0
		for range sym {
			n++
		}
		if n != 2 {
			t.Errorf("binary prefix %q is not exactly two runes", sym)
		}
	}
}

func TestNoDecaPrefix(t *testing.T) {
	if _, ok := metricPrefixes["da"]; ok {
		t.Errorf("deca must not be registered: it is the only two-character metric prefix and would break one-rune lookahead")
	}
}

func TestBinaryPrefixPowersOfTwo(t *testing.T) {
	want := map[string]float64{
		"Ki": 1 << 10,
		"Mi": 1 << 20,
		"Gi": 1 << 30,
	}
	for sym, f := range want {
		if binaryPrefixes[sym] != f {
			t.Errorf("binaryPrefixes[%q] = %v, want %v", sym, binaryPrefixes[sym], f)
		}
	}
}
