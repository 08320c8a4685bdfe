// Package display lays fixed rows of text onto a small framebuffer panel.
// It draws through the drivers.Displayer contract so the same code runs
// against an SSD1306 on hardware and an in-memory surface in tests.
package display

import (
	"image/color"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"

	"envnode-go/x/mathx"
)

// Surface is the subset of a framebuffer display the panel draws on.
// ssd1306.Device satisfies it.
type Surface interface {
	drivers.Displayer
	ClearBuffer()
}

// Row geometry for the default font. Baselines sit at top + row*pitch;
// a 128x64 panel yields five rows.
const (
	rowPitch    = 12
	topBaseline = 10
)

// Panel owns the row layout of one Surface. Draw with Clear + WriteLine,
// then push the frame with Flush.
type Panel struct {
	s    Surface
	font tinyfont.Fonter
	ink  color.RGBA
	rows int
}

func NewPanel(s Surface) *Panel {
	_, h := s.Size()
	rows := 0
	if h >= topBaseline {
		rows = int(h-topBaseline)/rowPitch + 1
	}
	return &Panel{
		s:    s,
		font: &proggy.TinySZ8pt7b,
		ink:  color.RGBA{R: 255, G: 255, B: 255, A: 255},
		rows: rows,
	}
}

// Rows reports how many text rows fit on the surface.
func (p *Panel) Rows() int { return p.rows }

// Clear wipes the frame buffer. Nothing reaches the glass until Flush.
func (p *Panel) Clear() { p.s.ClearBuffer() }

// WriteLine draws one row of text. Rows outside the panel are dropped.
func (p *Panel) WriteLine(row int, text string) {
	if p.rows == 0 || !mathx.Between(row, 0, p.rows-1) {
		return
	}
	y := int16(topBaseline + row*rowPitch)
	tinyfont.WriteLine(p.s, p.font, 0, y, text, p.ink)
}

// Flush pushes the buffered frame to the device.
func (p *Panel) Flush() error { return p.s.Display() }
