package monitor

// Actuator drives the alarm output line. No state beyond the pin itself:
// repeating a level only holds it, so driving the same alarm state twice is
// indistinguishable from driving it once.
type Actuator struct {
	out OutputPin
}

func NewActuator(out OutputPin) *Actuator { return &Actuator{out: out} }

// Drive sets the line to the given alarm state.
func (a *Actuator) Drive(on bool) { a.out.Set(on) }
