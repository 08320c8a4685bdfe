package monitor

import (
	"time"

	"github.com/andreyvit/tinyjson"

	"envnode-go/errcode"
	"envnode-go/x/mathx"
)

// Thresholds are the alarm trip points, fixed after boot.
type Thresholds struct {
	TempHighC  float32 // alarm at or above
	HumHighPct float32 // alarm at or above
	LightDark  uint16  // alarm at or below (dark trips)
}

// Config is assembled once at boot and never mutated afterwards.
type Config struct {
	SampleEvery time.Duration
	RenderEvery time.Duration
	Debounce    time.Duration
	Thresholds  Thresholds
}

// DefaultConfig returns the compiled-in configuration.
func DefaultConfig() Config {
	return Config{
		SampleEvery: 2000 * time.Millisecond,
		RenderEvery: 500 * time.Millisecond,
		Debounce:    50 * time.Millisecond,
		Thresholds: Thresholds{
			TempHighC:  35.0,
			HumHighPct: 70.0,
			LightDark:  300,
		},
	}
}

// ConfigFromJSON overlays an embedded JSON object onto the defaults. Unknown
// keys are ignored; values are clamped into their working ranges. A document
// of the wrong shape leaves the defaults untouched and reports BadConfig, so
// a bad overlay can never brick the node.
func ConfigFromJSON(raw []byte) (Config, error) {
	cfg := DefaultConfig()
	if len(raw) == 0 {
		return cfg, nil
	}

	r := tinyjson.Raw(raw)
	val := r.Value()
	r.EnsureEOF()

	m, ok := val.(map[string]any)
	if !ok {
		return cfg, &errcode.E{C: errcode.BadConfig, Op: "parse", Msg: "config is not a JSON object"}
	}

	if v, ok := asFloat(m["sample_ms"]); ok {
		cfg.SampleEvery = clampMs(v, 100, 3_600_000)
	}
	if v, ok := asFloat(m["render_ms"]); ok {
		cfg.RenderEvery = clampMs(v, 50, 60_000)
	}
	if v, ok := asFloat(m["debounce_ms"]); ok {
		cfg.Debounce = clampMs(v, 5, 1_000)
	}
	if v, ok := asFloat(m["temp_high_c"]); ok {
		cfg.Thresholds.TempHighC = float32(mathx.Clamp(v, -40, 85))
	}
	if v, ok := asFloat(m["hum_high_pct"]); ok {
		cfg.Thresholds.HumHighPct = float32(mathx.Clamp(v, 0, 100))
	}
	if v, ok := asFloat(m["light_dark"]); ok {
		cfg.Thresholds.LightDark = uint16(mathx.Clamp(int64(v), 0, LightMax))
	}
	return cfg, nil
}

func clampMs(v float64, lo, hi int64) time.Duration {
	return time.Duration(mathx.Clamp(int64(v), lo, hi)) * time.Millisecond
}

// JSON numbers usually arrive as float64, but keep the parser's options open.
func asFloat(v any) (float64, bool) {
	switch x := v.(type) {
	case float64:
		return x, true
	case float32:
		return float64(x), true
	case int:
		return float64(x), true
	case int32:
		return float64(x), true
	case int64:
		return float64(x), true
	case uint32:
		return float64(x), true
	case uint64:
		return float64(x), true
	default:
		return 0, false
	}
}
