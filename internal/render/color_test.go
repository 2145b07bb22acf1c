package render

import "testing"

func TestRGB565RoundTripThroughRGB888(t *testing.T) {
	for c := 0; c < 1<<16; c += 7 { // sample; full 2^16 sweep below covers the rest
		r, g, b := RGB565ToRGB888(Color(c))
		back := RGB888ToRGB565(r, g, b)
		if back != Color(c) {
			t.Fatalf("round-trip mismatch for 0x%04X: got 0x%04X", c, back)
		}
	}
}

func TestRGB565RoundTripFullSweep(t *testing.T) {
	for c := 0; c < 1<<16; c++ {
		r, g, b := RGB565ToRGB888(Color(c))
		back := RGB888ToRGB565(r, g, b)
		if back != Color(c) {
			t.Fatalf("round-trip mismatch for 0x%04X: got 0x%04X", c, back)
		}
	}
}

func TestInterpolateColorFixedPoints(t *testing.T) {
	a := RGB(200, 50, 75)
	b := RGB(10, 240, 30)
	if got := InterpolateColor(a, a, 0.37); got != a {
		t.Fatalf("interpolate(a,a,t) = %#x, want %#x", got, a)
	}
	if got := InterpolateColor(a, b, 0); got != a {
		t.Fatalf("interpolate(a,b,0) = %#x, want %#x", got, a)
	}
	if got := InterpolateColor(a, b, 1); got != b {
		t.Fatalf("interpolate(a,b,1) = %#x, want %#x", got, b)
	}
}

func TestRGB565ToRGB666Packing(t *testing.T) {
	c := RGB(0xF8, 0xFC, 0xF8) // max in each channel's precision
	r, g, b := RGB565ToRGB666(c)
	if r != 0xF8 || g != 0xFC || b != 0xF8 {
		t.Fatalf("RGB666 packing = (%#x,%#x,%#x), want (0xF8,0xFC,0xF8)", r, g, b)
	}
}
