package monitor

import "envnode-go/x/strconvx"

const title = "ENVNODE"

// Render draws one full frame for the selected mode: clear, five rows,
// flush. The whole frame lands within one invocation, so the display commits
// atomically as far as the loop is concerned. A failed flush is ignored; a
// dead display stays dead while the node keeps sampling and alarming.
//
// The two layouts are deliberately asymmetric about absent readings: Summary
// shows a friendly ERR marker, Detail surfaces the internal NaN convention
// verbatim.
func Render(d Display, rs ReadingSet, alarm bool, mode ViewMode) {
	d.Clear()
	switch mode {
	case ViewDetail:
		renderDetail(d, rs)
	case ViewSummary:
		renderSummary(d, rs, alarm)
	default:
		// Out-of-range modes degrade to Summary; the loop never halts.
		renderSummary(d, rs, alarm)
	}
	_ = d.Flush()
}

func renderSummary(d Display, rs ReadingSet, alarm bool) {
	d.WriteLine(0, title)
	d.WriteLine(1, "T: "+summaryValue(rs.Temperature, "C"))
	d.WriteLine(2, "H: "+summaryValue(rs.Humidity, "%"))
	d.WriteLine(3, "L: "+strconvx.Itoa(int(rs.Light))+" /"+strconvx.Itoa(LightMax))
	if alarm {
		d.WriteLine(4, "ALARM ON")
	} else {
		d.WriteLine(4, "ALARM OFF")
	}
}

func renderDetail(d Display, rs ReadingSet) {
	d.WriteLine(0, title)
	d.WriteLine(1, "T: "+detailValue(rs.Temperature)+" C")
	d.WriteLine(2, "H: "+detailValue(rs.Humidity)+" %")
	d.WriteLine(3, "L: "+strconvx.Itoa(int(rs.Light)))
	d.WriteLine(4, "BTN1: switch view")
}

// summaryValue: one decimal with unit, or the explicit error marker.
func summaryValue(r Reading, unit string) string {
	v, ok := r.Value()
	if !ok {
		return "ERR"
	}
	return strconvx.FormatFloat(float64(v), 'f', 1, 32) + " " + unit
}

// detailValue: two decimals; absence comes out as NaN.
func detailValue(r Reading) string {
	return strconvx.FormatFloat(float64(r.OrNaN()), 'f', 2, 32)
}
