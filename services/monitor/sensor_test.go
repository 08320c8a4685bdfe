package monitor

import (
	"errors"
	"math"
	"testing"

	"envnode-go/errcode"
)

// ---- fakes ----

type envStep struct {
	temp, hum float32
	err       error
}

// scriptEnv replays a fixed script, holding the last step once exhausted.
type scriptEnv struct {
	steps []envStep
	i     int
}

func (s *scriptEnv) ReadEnv() (float32, float32, error) {
	st := s.steps[s.i]
	if s.i < len(s.steps)-1 {
		s.i++
	}
	return st.temp, st.hum, st.err
}

type fixedLight struct{ raw uint16 }

func (f fixedLight) ReadRaw() uint16 { return f.raw }

var (
	_ EnvSensor   = (*scriptEnv)(nil)
	_ LightSensor = fixedLight{}
	_ Sampler     = (*Port)(nil)
)

// ---- tests ----

func TestSampleNominal(t *testing.T) {
	p := NewPort(&scriptEnv{steps: []envStep{{temp: 23.4, hum: 55}}}, fixedLight{1500})

	rs := p.Sample()
	if v, ok := rs.Temperature.Value(); !ok || v != 23.4 {
		t.Fatalf("temperature = (%v, %v), want (23.4, true)", v, ok)
	}
	if v, ok := rs.Humidity.Value(); !ok || v != 55 {
		t.Fatalf("humidity = (%v, %v), want (55, true)", v, ok)
	}
	if rs.Light != 1500 {
		t.Fatalf("light = %d, want 1500", rs.Light)
	}
	if p.Faults() != 0 {
		t.Fatalf("faults = %d, want 0", p.Faults())
	}
	if p.LastFault() != errcode.OK {
		t.Fatalf("last fault = %q, want ok", p.LastFault())
	}
}

func TestSampleEnvelopeBoundariesAccepted(t *testing.T) {
	p := NewPort(&scriptEnv{steps: []envStep{
		{temp: -40, hum: 0},
		{temp: 85, hum: 100},
	}}, fixedLight{0})

	for i := 0; i < 2; i++ {
		rs := p.Sample()
		if !rs.Temperature.Valid() || !rs.Humidity.Valid() {
			t.Fatalf("sample %d: envelope boundary rejected", i)
		}
	}
	if p.Faults() != 0 {
		t.Fatalf("faults = %d, want 0", p.Faults())
	}
}

func TestSampleEnvErrorGoesAbsent(t *testing.T) {
	fault := &errcode.E{C: errcode.SensorTimeout, Op: "read"}
	p := NewPort(&scriptEnv{steps: []envStep{{err: fault}}}, fixedLight{800})

	rs := p.Sample()
	if rs.Temperature.Valid() || rs.Humidity.Valid() {
		t.Fatal("failed read must yield absent temperature and humidity")
	}
	if rs.Light != 800 {
		t.Fatalf("light = %d, want 800; light path is independent of env faults", rs.Light)
	}
	if p.Faults() != 1 {
		t.Fatalf("faults = %d, want 1", p.Faults())
	}
	if got := p.LastFault(); got != errcode.SensorTimeout {
		t.Fatalf("last fault = %q, want %q", got, errcode.SensorTimeout)
	}
}

func TestSamplePlainErrorMapsToGenericCode(t *testing.T) {
	p := NewPort(&scriptEnv{steps: []envStep{{err: errors.New("bus wedged")}}}, fixedLight{0})

	p.Sample()
	if got := p.LastFault(); got != errcode.Error {
		t.Fatalf("last fault = %q, want %q", got, errcode.Error)
	}
}

func TestSampleRejectsImplausibleValues(t *testing.T) {
	nan := float32(math.NaN())
	cases := []struct {
		name      string
		temp, hum float32
	}{
		{"temp too high", 120, 50},
		{"temp too low", -55, 50},
		{"temp NaN", nan, 50},
		{"humidity too high", 25, 130},
		{"humidity negative", 25, -5},
		{"humidity NaN", 25, nan},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := NewPort(&scriptEnv{steps: []envStep{{temp: tc.temp, hum: tc.hum}}}, fixedLight{100})
			rs := p.Sample()
			if rs.Temperature.Valid() || rs.Humidity.Valid() {
				t.Fatalf("(%v, %v) not rejected", tc.temp, tc.hum)
			}
			if got := p.LastFault(); got != errcode.SensorRange {
				t.Fatalf("last fault = %q, want %q", got, errcode.SensorRange)
			}
			if p.Faults() != 1 {
				t.Fatalf("faults = %d, want 1", p.Faults())
			}
		})
	}
}

func TestSampleLightClamped(t *testing.T) {
	p := NewPort(&scriptEnv{steps: []envStep{{temp: 20, hum: 40}}}, fixedLight{5000})

	if rs := p.Sample(); rs.Light != LightMax {
		t.Fatalf("light = %d, want clamp to %d", rs.Light, LightMax)
	}
}

func TestSampleRecoversAfterFault(t *testing.T) {
	p := NewPort(&scriptEnv{steps: []envStep{
		{err: errcode.SensorNotReady},
		{temp: 21.5, hum: 48},
	}}, fixedLight{900})

	p.Sample()
	rs := p.Sample()
	if !rs.Temperature.Valid() || !rs.Humidity.Valid() {
		t.Fatal("reading after a faulted cycle must be present again")
	}
	if p.Faults() != 1 {
		t.Fatalf("faults = %d, want 1; recovery must not count", p.Faults())
	}
	if p.LastFault() != errcode.OK {
		t.Fatalf("last fault = %q, want ok after recovery", p.LastFault())
	}
}
