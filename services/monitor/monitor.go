// Package monitor is the node's cooperative core: a single-threaded,
// non-blocking loop that interleaves sensor sampling, display refresh, and
// button debouncing, each at its own cadence. Every pass is non-suspending;
// cadence comes from comparing elapsed time against fixed intervals, never
// from sleeping. The loop object owns all mutable cross-task state, so no
// two components ever run concurrently and no locking is needed.
package monitor

import (
	"context"
	"io"
	"runtime"
	"time"

	"envnode-go/x/fmtx"
	"envnode-go/x/timex"
)

// Monitor composes the node: sensor port, threshold evaluator, alarm
// actuator, view renderer, and input debouncer, driven by one loop.
type Monitor struct {
	cfg Config

	sampler Sampler
	alarm   *Actuator
	disp    Display
	button  InputPin
	deb     Debouncer
	diag    io.Writer

	latest     ReadingSet
	alarmOn    bool
	mode       ViewMode
	lastSample time.Time
	lastRender time.Time
	cycles     uint32
}

// New wires the collaborators together. The diagnostic writer may be nil.
// The initial view is Summary; nothing is sampled or drawn until the loop
// runs.
func New(cfg Config, sampler Sampler, alarmOut OutputPin, disp Display, button InputPin, diag io.Writer) *Monitor {
	if diag == nil {
		diag = io.Discard
	}
	return &Monitor{
		cfg:     cfg,
		sampler: sampler,
		alarm:   NewActuator(alarmOut),
		disp:    disp,
		button:  button,
		deb:     NewDebouncer(cfg.Debounce),
		diag:    diag,
	}
}

// Start arms the cadence timestamps. The first sample and the first render
// fire one full interval after this instant.
func (m *Monitor) Start(now time.Time) {
	m.lastSample = now
	m.lastRender = now
}

// Tick runs one cooperative pass against the given instant. Sampling, when
// due, strictly precedes rendering, so a render due in the same pass always
// shows the just-captured set. The button is polled on every pass.
func (m *Monitor) Tick(now time.Time) {
	if now.Sub(m.lastSample) >= m.cfg.SampleEvery {
		m.latest = m.sampler.Sample()
		m.alarmOn = m.cfg.Thresholds.Evaluate(m.latest)
		m.alarm.Drive(m.alarmOn)
		m.cycles++
		m.logCycle()
		m.lastSample = now
	}

	if now.Sub(m.lastRender) >= m.cfg.RenderEvery {
		Render(m.disp, m.latest, m.alarmOn, m.mode)
		m.lastRender = now
	}

	if m.deb.Poll(m.button.Get(), now) {
		m.mode = m.mode.Next()
		fmtx.Fprintf(m.diag, "[env] view=%s\n", m.mode.String())
	}
}

// Run drives the loop with wall-clock time until ctx is done. Between passes
// it only yields to the runtime; it never sleeps for cadence.
func (m *Monitor) Run(ctx context.Context) {
	m.Start(time.Now())
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}
		m.Tick(time.Now())
		runtime.Gosched()
	}
}

// Mode reports the currently selected view.
func (m *Monitor) Mode() ViewMode { return m.mode }

// Latest reports the most recent capture.
func (m *Monitor) Latest() ReadingSet { return m.latest }

// Alarm reports the current alarm state.
func (m *Monitor) Alarm() bool { return m.alarmOn }

// logCycle emits one diagnostic record per completed sampling cycle.
// Best-effort: format and presence are not contractual.
func (m *Monitor) logCycle() {
	fmtx.Fprintf(m.diag, "[env] ms=%d n=%d t=%.2f rh=%.2f light=%d alarm=%t faults=%d\n",
		timex.NowMs(), m.cycles,
		m.latest.Temperature.OrNaN(), m.latest.Humidity.OrNaN(),
		m.latest.Light, m.alarmOn, m.sampler.Faults())
}
