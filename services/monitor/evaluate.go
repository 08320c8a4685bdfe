package monitor

// Evaluate is the alarm policy: trip when any present channel crosses its
// threshold. Heat and humidity trip at or above their limits; light trips at
// or below the dark limit. An absent channel cannot evaluate its condition
// and therefore never trips it.
func (t Thresholds) Evaluate(rs ReadingSet) bool {
	if v, ok := rs.Temperature.Value(); ok && v >= t.TempHighC {
		return true
	}
	if v, ok := rs.Humidity.Value(); ok && v >= t.HumHighPct {
		return true
	}
	return rs.Light <= t.LightDark
}
