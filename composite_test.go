package quant

import (
	"math"
	"testing"
)

func almostEqual(a, b float64) bool {
	if a == b {
		return true
	}
	return math.Abs(a-b) <= 1e-9*math.Max(math.Abs(a), math.Abs(b))
}

func TestReduceCompositeScaleAndDims(t *testing.T) {
	parsed, err := parseUnits("kg⋅m/s^2")
	if err != nil {
		t.Fatalf("parseUnits: %v", err)
	}
	c, err := reduceComposite(parsed)
	if err != nil {
		t.Fatalf("reduceComposite: %v", err)
	}
	if !almostEqual(c.scale, 1) {
		t.Errorf("scale = %v, want 1 (kg*m/s^2 is exactly one newton)", c.scale)
	}
	want := unitTable["N"].dims
	if !c.dims.EqualTo(want) {
		t.Errorf("dims = %+v, want %+v", c.dims, want)
	}
}

func TestReduceCompositeOffsetUnitMustBeSolitary(t *testing.T) {
	parsed, err := parseUnits("degC")
	if err != nil {
		t.Fatalf("parseUnits: %v", err)
	}
	c, err := reduceComposite(parsed)
	if err != nil {
		t.Fatalf("reduceComposite(degC): %v", err)
	}
	if !c.hasOffset || c.offset != 273.15 {
		t.Errorf("unexpected composite for degC: %+v", c)
	}

	if _, err := parseUnits("kdegC"); err == nil {
		t.Errorf("expected prefixed degC to be rejected at parse time")
	}

	parsedSquared, err := parseUnits("degC^2")
	if err != nil {
		t.Fatalf("parseUnits(degC^2): %v", err)
	}
	if _, err := reduceComposite(parsedSquared); err == nil {
		t.Errorf("expected degC^2 to be rejected as an invalid offset use")
	}
}

func TestToBaseFromBaseRoundTrip(t *testing.T) {
	parsed, err := parseUnits("degF")
	if err != nil {
		t.Fatalf("parseUnits: %v", err)
	}
	c, err := reduceComposite(parsed)
	if err != nil {
		t.Fatalf("reduceComposite: %v", err)
	}

	base := c.toBase(32) // 32 degF freezing point
	if !almostEqual(base, 273.15) {
		t.Errorf("32 degF in kelvin = %v, want 273.15", base)
	}
	back := c.fromBase(base)
	if !almostEqual(back, 32) {
		t.Errorf("round trip = %v, want 32", back)
	}
}

func TestReduceCompositeCustomDimension(t *testing.T) {
	parsed, err := parseUnits("pphpd")
	if err != nil {
		t.Fatalf("parseUnits: %v", err)
	}
	c, err := reduceComposite(parsed)
	if err != nil {
		t.Fatalf("reduceComposite: %v", err)
	}
	if !almostEqual(c.scale, 1.0/3600.0) {
		t.Errorf("pphpd scale = %v, want 1/3600", c.scale)
	}
	if c.dims.customIndex("dir") == -1 || c.dims.customIndex("pax") == -1 {
		t.Errorf("expected pphpd to carry dir and pax custom dimensions, got %+v", c.dims.customNames)
	}
}

func TestReduceCompositeTooManyCustomDimensionsIsInvalidDimensions(t *testing.T) {
	// Five distinct "_name" tokens, each individually valid per spec
	// §4.2's custom-unit shorthand, push the running union past the four
	// reserved custom slots (dimension.go's maxCustomDimensions).
	parsed, err := parseUnits("_a⋅_b⋅_c⋅_d⋅_e")
	if err != nil {
		t.Fatalf("parseUnits: %v", err)
	}
	if _, err := reduceComposite(parsed); err == nil {
		t.Fatalf("expected too many custom dimensions to be rejected")
	} else if qerr, ok := err.(*Error); !ok || qerr.Kind != InvalidDimensions {
		t.Errorf("reduceComposite error = %v, want InvalidDimensions", err)
	}
}

func TestReduceCompositeTooManyCustomDimensionsViaPphpd(t *testing.T) {
	// pphpd already carries two custom dimensions (dir, pax); three more
	// distinct "_name" tokens push the union to five.
	parsed, err := parseUnits("pphpd⋅_w⋅_x⋅_y")
	if err != nil {
		t.Fatalf("parseUnits: %v", err)
	}
	if _, err := reduceComposite(parsed); err == nil {
		t.Fatalf("expected too many custom dimensions to be rejected")
	} else if qerr, ok := err.(*Error); !ok || qerr.Kind != InvalidDimensions {
		t.Errorf("reduceComposite error = %v, want InvalidDimensions", err)
	}
}
