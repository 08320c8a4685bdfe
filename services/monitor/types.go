package monitor

import "math"

// Reading is one optional measurement channel value. The zero value is the
// absent reading, so a channel can never be silently zero.
type Reading struct {
	val float32
	ok  bool
}

func ReadingOf(v float32) Reading { return Reading{val: v, ok: true} }
func NoReading() Reading          { return Reading{} }

// Value returns the measurement and whether it is present.
func (r Reading) Value() (float32, bool) { return r.val, r.ok }

// Valid reports whether a value is present.
func (r Reading) Valid() bool { return r.ok }

// OrNaN surfaces the value with absence spelled as IEEE NaN. The Detail view
// and the diagnostic stream use this convention verbatim.
func (r Reading) OrNaN() float32 {
	if !r.ok {
		return float32(math.NaN())
	}
	return r.val
}

// LightMax is the upper bound of the raw light range (12-bit ADC).
const LightMax = 4095

// ReadingSet is one sampling cycle's capture. Temperature and humidity may
// be absent; light is always present in [0, LightMax]. Captured fresh each
// cycle, passed by value, never mutated afterwards.
type ReadingSet struct {
	Temperature Reading
	Humidity    Reading
	Light       uint16
}

// ViewMode selects which layout the renderer draws.
type ViewMode uint8

const (
	ViewSummary ViewMode = iota
	ViewDetail
)

// Next flips between the two modes.
func (m ViewMode) Next() ViewMode {
	if m == ViewSummary {
		return ViewDetail
	}
	return ViewSummary
}

func (m ViewMode) String() string {
	if m == ViewDetail {
		return "detail"
	}
	return "summary"
}

// ---- collaborator contracts ----
// Defined here, on the consumer side; boards and tests provide the backings.

// EnvSensor is the temperature/humidity capability. One call, one bounded
// conversion; any failure arrives as an error, never as a sentinel value.
type EnvSensor interface {
	ReadEnv() (tempC, rhPct float32, err error)
}

// LightSensor is the raw analog light capability. No failure mode; the port
// clamps whatever comes back into the raw range.
type LightSensor interface {
	ReadRaw() uint16
}

// Sampler produces one fresh ReadingSet per call and counts the cycles that
// yielded no environmental reading.
type Sampler interface {
	Sample() ReadingSet
	Faults() uint32
}

// InputPin reads one raw digital input level.
type InputPin interface {
	Get() bool
}

// OutputPin drives one digital output level.
type OutputPin interface {
	Set(level bool)
}

// Display is the text panel contract the renderer draws through.
type Display interface {
	Clear()
	WriteLine(row int, text string)
	Flush() error
}
