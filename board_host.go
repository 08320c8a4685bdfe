//go:build !(rp2040 || rp2350)

package main

import (
	"bufio"
	"math"
	"os"
	"strings"
	"sync"
	"time"

	"envnode-go/errcode"
	"envnode-go/services/monitor"
	"envnode-go/x/mathx"
)

// Host build: simulated backings so the loop runs on a dev machine. Sensor
// values drift, the panel prints to the console, and each line on standard
// input acts as one button press.

func buildBoard() board {
	t0 := time.Now()
	return board{
		Sampler: monitor.NewPort(&simEnv{t0: t0}, simLight{t0: t0}),
		Alarm:   &consolePin{name: "BUZZER"},
		Button:  newStdinButton(),
		Display: &consolePanel{out: os.Stdout},
		Diag:    os.Stdout,
	}
}

// ---- sensors ----

// simEnv drifts slowly around indoor values. Every 16th read fails so the
// absent path stays visible in the sim.
type simEnv struct {
	t0 time.Time
	n  int
}

func (s *simEnv) ReadEnv() (float32, float32, error) {
	s.n++
	if s.n%16 == 0 {
		return 0, 0, &errcode.E{C: errcode.SensorTimeout, Op: "sim"}
	}
	min := time.Since(s.t0).Minutes()
	t := 22 + 3*math.Sin(min/2)
	rh := 48 + 10*math.Sin(min/5)
	return float32(t), float32(rh), nil
}

// simLight sweeps a triangle wave across the full raw range once a minute.
type simLight struct{ t0 time.Time }

func (s simLight) ReadRaw() uint16 {
	ms := time.Since(s.t0).Milliseconds() % 60_000
	rise := 30_000 - mathx.Abs(ms-30_000)
	return uint16(mathx.Clamp(rise*monitor.LightMax/30_000, 0, monitor.LightMax))
}

// ---- panel ----

// consolePanel prints each frame as a boxed block, skipping frames identical
// to the previous one.
type consolePanel struct {
	out  *os.File
	rows [5]string
	last string
}

func (p *consolePanel) Clear() { p.rows = [5]string{} }

func (p *consolePanel) WriteLine(row int, text string) {
	if row >= 0 && row < len(p.rows) {
		p.rows[row] = text
	}
}

func (p *consolePanel) Flush() error {
	var b strings.Builder
	b.WriteString("+----------------------+\n")
	for _, r := range p.rows {
		b.WriteString("| ")
		b.WriteString(pad(r, 20))
		b.WriteString(" |\n")
	}
	b.WriteString("+----------------------+\n")
	frame := b.String()
	if frame == p.last {
		return nil
	}
	p.last = frame
	_, err := p.out.WriteString(frame)
	return err
}

func pad(s string, n int) string {
	if len(s) > n {
		return s[:n]
	}
	return s + strings.Repeat(" ", n-len(s))
}

// ---- pins ----

// consolePin logs level transitions instead of driving hardware.
type consolePin struct {
	name string
	set  bool
	last bool
}

func (p *consolePin) Set(level bool) {
	if p.set && level == p.last {
		return
	}
	p.set = true
	p.last = level
	if level {
		println("[env]", p.name, "on")
	} else {
		println("[env]", p.name, "off")
	}
}

// stdinButton holds the level high for a short window after each input line.
type stdinButton struct {
	mu    sync.Mutex
	until time.Time
}

func newStdinButton() *stdinButton {
	b := &stdinButton{}
	go func() {
		sc := bufio.NewScanner(os.Stdin)
		for sc.Scan() {
			b.mu.Lock()
			b.until = time.Now().Add(200 * time.Millisecond)
			b.mu.Unlock()
		}
	}()
	return b
}

func (b *stdinButton) Get() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return time.Now().Before(b.until)
}
