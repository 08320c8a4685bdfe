package display

import (
	"image/color"
	"testing"
)

// Compile-time check.
var _ Surface = (*memSurface)(nil)

// memSurface records lit pixels like a framebuffer would.
type memSurface struct {
	w, h    int16
	lit     map[[2]int16]bool
	cleared int
	flushed int
}

func newMemSurface(w, h int16) *memSurface {
	return &memSurface{w: w, h: h, lit: make(map[[2]int16]bool)}
}

func (m *memSurface) Size() (int16, int16) { return m.w, m.h }

func (m *memSurface) SetPixel(x, y int16, c color.RGBA) {
	if x < 0 || y < 0 || x >= m.w || y >= m.h {
		return
	}
	if c.R != 0 || c.G != 0 || c.B != 0 {
		m.lit[[2]int16{x, y}] = true
	} else {
		delete(m.lit, [2]int16{x, y})
	}
}

func (m *memSurface) Display() error { m.flushed++; return nil }

func (m *memSurface) ClearBuffer() {
	m.cleared++
	m.lit = make(map[[2]int16]bool)
}

func (m *memSurface) yRange() (min, max int16, any bool) {
	min, max = m.h, -1
	for p := range m.lit {
		if p[1] < min {
			min = p[1]
		}
		if p[1] > max {
			max = p[1]
		}
	}
	return min, max, len(m.lit) > 0
}

func TestRowsFor128x64(t *testing.T) {
	p := NewPanel(newMemSurface(128, 64))
	if p.Rows() != 5 {
		t.Fatalf("Rows() = %d, want 5", p.Rows())
	}
}

func TestWriteLineLandsInRowBand(t *testing.T) {
	for _, row := range []int{0, 2, 4} {
		s := newMemSurface(128, 64)
		p := NewPanel(s)
		p.WriteLine(row, "ENVNODE")

		minY, maxY, any := s.yRange()
		if !any {
			t.Fatalf("row %d: no pixels lit", row)
		}
		base := int16(topBaseline + row*rowPitch)
		if minY < base-rowPitch || maxY > base+3 {
			t.Fatalf("row %d: pixels span y=[%d,%d], want within [%d,%d]",
				row, minY, maxY, base-rowPitch, base+3)
		}
	}
}

func TestWriteLineOutOfRangeDropped(t *testing.T) {
	s := newMemSurface(128, 64)
	p := NewPanel(s)
	p.WriteLine(-1, "x")
	p.WriteLine(5, "x")
	p.WriteLine(99, "x")
	if len(s.lit) != 0 {
		t.Fatalf("out-of-range rows lit %d pixels", len(s.lit))
	}
}

func TestClearAndFlush(t *testing.T) {
	s := newMemSurface(128, 64)
	p := NewPanel(s)

	p.WriteLine(0, "hi")
	p.Clear()
	if len(s.lit) != 0 {
		t.Fatalf("Clear left %d pixels", len(s.lit))
	}
	if s.cleared != 1 {
		t.Fatalf("ClearBuffer called %d times, want 1", s.cleared)
	}

	if err := p.Flush(); err != nil {
		t.Fatalf("Flush error: %v", err)
	}
	if s.flushed != 1 {
		t.Fatalf("Display called %d times, want 1", s.flushed)
	}
}
