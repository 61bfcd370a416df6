package quant

import "testing"

func TestUnitTableDimensionalConsistency(t *testing.T) {
	// Hand-checked derived-unit dimension vectors: each must equal the
	// product/quotient of its defining basic dimensions.
	tests := []struct {
		name string
		want Dimensions
	}{
		{"N", newDimensions(1, 1, -2, 0, 0, 0, 0, 0)},       // kg*m/s^2
		{"Pa", newDimensions(1, -1, -2, 0, 0, 0, 0, 0)},     // N/m^2
		{"J", newDimensions(1, 2, -2, 0, 0, 0, 0, 0)},       // N*m
		{"W", newDimensions(1, 2, -3, 0, 0, 0, 0, 0)},       // J/s
		{"C", newDimensions(0, 0, 1, 0, 1, 0, 0, 0)},        // A*s
		{"V", newDimensions(1, 2, -3, 0, -1, 0, 0, 0)},      // W/A
		{"F", newDimensions(-1, -2, 4, 0, 2, 0, 0, 0)},      // C/V
		{"ohm", newDimensions(1, 2, -3, 0, -2, 0, 0, 0)},    // V/A
		{"S", newDimensions(-1, -2, 3, 0, 2, 0, 0, 0)},      // 1/ohm
		{"Wb", newDimensions(1, 2, -2, 0, -1, 0, 0, 0)},     // V*s
		{"T", newDimensions(1, 0, -2, 0, -1, 0, 0, 0)},      // Wb/m^2
		{"H", newDimensions(1, 2, -2, 0, -2, 0, 0, 0)},      // Wb/A
		{"Hz", newDimensions(0, 0, -1, 0, 0, 0, 0, 0)},      // 1/s
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, ok := unitTable[tt.name]
			if !ok {
				t.Fatalf("unit %q not found in table", tt.name)
			}
			if !d.dims.EqualTo(tt.want) {
				t.Errorf("unit %q dims = %+v, want %+v", tt.name, d.dims, tt.want)
			}
		})
	}
}

func TestUnitTableOhmAndSAreInverse(t *testing.T) {
	ohm := unitTable["ohm"].dims
	siemens := unitTable["S"].dims
	product, err := combine(ohm, siemens, 1)
	if err != nil {
		t.Fatalf("combine: %v", err)
	}
	if !product.IsDimensionless() {
		t.Errorf("ohm*S should be dimensionless, got %+v", product)
	}
}

func TestAffineUnitsNotPrefixable(t *testing.T) {
	for _, name := range []string{"degC", "degF"} {
		d := unitTable[name]
		if d.prefixable || d.binaryPrefixable {
			t.Errorf("%q must not accept prefixes: it has an affine offset", name)
		}
	}
}

func TestBinaryPrefixableUnitsAreExactlyBitsAndBytes(t *testing.T) {
	for name, d := range unitTable {
		if d.binaryPrefixable && name != "b" && name != "B" {
			t.Errorf("unexpected binary-prefixable unit %q", name)
		}
	}
}
