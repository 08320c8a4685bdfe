package monitor

import (
	"envnode-go/errcode"
	"envnode-go/x/mathx"
)

// Plausible environmental envelope (AHT20 datasheet limits).
const (
	minTempC = -40
	maxTempC = 85
)

// Port adapts the two sensor capabilities into the loop's single sample
// operation. A failing environmental read never escalates: temperature and
// humidity go absent for that cycle and the next cycle is the implicit
// retry. Light has no failure path.
type Port struct {
	env   EnvSensor
	light LightSensor

	faults uint32
	last   errcode.Code
}

func NewPort(env EnvSensor, light LightSensor) *Port {
	return &Port{env: env, light: light, last: errcode.OK}
}

// Sample captures one fresh ReadingSet.
func (p *Port) Sample() ReadingSet {
	rs := ReadingSet{Light: mathx.Clamp(p.light.ReadRaw(), 0, LightMax)}

	tempC, rhPct, err := p.env.ReadEnv()
	if err != nil {
		p.faults++
		p.last = errcode.Of(err)
		return rs
	}
	// NaN from a misbehaving backend counts as out of range.
	if tempC != tempC || rhPct != rhPct ||
		tempC < minTempC || tempC > maxTempC || rhPct < 0 || rhPct > 100 {
		p.faults++
		p.last = errcode.SensorRange
		return rs
	}

	p.last = errcode.OK
	rs.Temperature = ReadingOf(tempC)
	rs.Humidity = ReadingOf(rhPct)
	return rs
}

// Faults counts sampling cycles that produced no environmental reading.
func (p *Port) Faults() uint32 { return p.faults }

// LastFault reports the most recent cycle's failure code, OK when clean.
func (p *Port) LastFault() errcode.Code { return p.last }
