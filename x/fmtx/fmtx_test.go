package fmtx

import (
	"bytes"
	"math"
	"testing"
)

var verbTable = []struct {
	fmt  string
	args []any
	want string
}{
	{"hello %s", []any{"world"}, "hello world"},
	{"num %d hex %x HEX %X", []any{255, 255, 255}, "num 255 hex ff HEX FF"},
	{"bool %t %t", []any{true, false}, "bool true false"},
	{"literal %%", nil, "literal %"},
	{"q=%q", []any{"a\"b\\c"}, `q="a\"b\\c"`},
	{"v=%v", []any{123}, "v=123"},
	{"trim: %.3s", []any{"abcdef"}, "trim: abc"},
	{"t=%.1f C", []any{float32(23.4)}, "t=23.4 C"},
	{"rh=%.2f", []any{22.5}, "rh=22.50"},
	{"f=%f", []any{1.5}, "f=1.500000"},
	{"absent=%.2f", []any{math.NaN()}, "absent=NaN"},
	{"light=%d", []any{uint16(1500)}, "light=1500"},
}

func TestSprintfVerbs(t *testing.T) {
	for _, c := range verbTable {
		got := Sprintf(c.fmt, c.args...)
		if got != c.want {
			t.Fatalf("Sprintf(%q, ...) = %q, want %q", c.fmt, got, c.want)
		}
	}
}

// Drives the hand-rolled formatter directly, since Sprintf only routes
// through it on MCU builds.
func TestBuilderFormat(t *testing.T) {
	for _, c := range verbTable {
		var b builder
		b.format(c.fmt, c.args...)
		if got := string(b.buf); got != c.want {
			t.Fatalf("builder.format(%q, ...) = %q, want %q", c.fmt, got, c.want)
		}
	}
}

func TestPrintUsesDefaultOutput(t *testing.T) {
	var buf bytes.Buffer
	prev := DefaultOutput
	DefaultOutput = &buf
	t.Cleanup(func() { DefaultOutput = prev })

	// Sprint joins with spaces
	if got, want := Sprint("a", 1, true), "a 1 true"; got != want {
		t.Fatalf("Sprint = %q, want %q", got, want)
	}

	// Print writes to DefaultOutput
	n, err := Print("x", 2)
	if err != nil {
		t.Fatalf("Print error: %v", err)
	}
	if n <= 0 {
		t.Fatalf("Print wrote %d bytes, want >0", n)
	}
	if got, want := buf.String(), "x 2"; got != want {
		t.Fatalf("Print wrote %q, want %q", got, want)
	}

	// Printf formatting
	buf.Reset()
	_, _ = Printf("v=%d", 7)
	if got, want := buf.String(), "v=7"; got != want {
		t.Fatalf("Printf wrote %q, want %q", got, want)
	}
}

func TestFprintf(t *testing.T) {
	var buf bytes.Buffer
	_, err := Fprintf(&buf, "hi %s", "there")
	if err != nil {
		t.Fatalf("Fprintf error: %v", err)
	}
	if got, want := buf.String(), "hi there"; got != want {
		t.Fatalf("Fprintf wrote %q, want %q", got, want)
	}
}

func TestErrorf(t *testing.T) {
	err := Errorf("bad %s: %d", "thing", 3)
	if err == nil {
		t.Fatalf("Errorf returned nil")
	}
	if err.Error() != "bad thing: 3" {
		t.Fatalf("Errorf string = %q, want %q", err.Error(), "bad thing: 3")
	}
}
