package mathx

import "testing"

func TestClampAndBetween(t *testing.T) {
	if got := Clamp(5, 0, 10); got != 5 {
		t.Fatalf("Clamp(5,0,10) = %d", got)
	}
	if got := Clamp(-3, 0, 10); got != 0 {
		t.Fatalf("Clamp(-3,0,10) = %d", got)
	}
	if got := Clamp(42, 0, 10); got != 10 {
		t.Fatalf("Clamp(42,0,10) = %d", got)
	}
	if got := Clamp(42, 10, 0); got != 10 {
		t.Fatalf("Clamp with swapped bounds = %d", got)
	}
	if !Between(5, 0, 10) || Between(11, 0, 10) {
		t.Fatal("Between(5,0,10) / Between(11,0,10) wrong")
	}
	if !Between(5, 10, 0) {
		t.Fatal("Between must accept swapped bounds")
	}
}

func TestAbs(t *testing.T) {
	if got := Abs(int64(-29_000)); got != 29_000 {
		t.Fatalf("Abs(-29000) = %d", got)
	}
	if got := Abs(int64(7)); got != 7 {
		t.Fatalf("Abs(7) = %d", got)
	}
	if got := Abs(0); got != 0 {
		t.Fatalf("Abs(0) = %d", got)
	}
}

func TestMapU16(t *testing.T) {
	type C struct {
		x, inMin, inMax, outMin, outMax, want uint16
	}
	for _, c := range []C{
		{0, 0, 0xFFFF, 0, 4095, 0},
		{0xFFFF, 0, 0xFFFF, 0, 4095, 4095},
		{0x8000, 0, 0xFFFF, 0, 4095, 2047},
		{50, 100, 200, 0, 10, 0},   // below range clamps
		{250, 100, 200, 0, 10, 10}, // above range clamps
		{123, 7, 7, 3, 9, 3},       // degenerate input range
	} {
		if got := MapU16(c.x, c.inMin, c.inMax, c.outMin, c.outMax); got != c.want {
			t.Fatalf("MapU16(%d,%d,%d,%d,%d) = %d, want %d",
				c.x, c.inMin, c.inMax, c.outMin, c.outMax, got, c.want)
		}
	}
}
