package main

import (
	"context"
	"io"

	"envnode-go/services/monitor"
	"envnode-go/x/fmtx"
)

const version = "0.2.0"

// Embedded configuration overlay. Edit and reflash to retune; there is no
// runtime configuration channel.
const configJSON = `{
	"sample_ms": 2000,
	"render_ms": 500,
	"debounce_ms": 50,
	"temp_high_c": 35.0,
	"hum_high_pct": 70.0,
	"light_dark": 300
}`

// board bundles the platform backings handed to the loop. Each platform file
// provides its own buildBoard.
type board struct {
	Sampler monitor.Sampler
	Alarm   monitor.OutputPin
	Button  monitor.InputPin
	Display monitor.Display
	Diag    io.Writer
}

func main() {
	b := buildBoard()
	fmtx.Fprintf(b.Diag, "[env] envnode %s boot\n", version)

	cfg, err := monitor.ConfigFromJSON([]byte(configJSON))
	if err != nil {
		fmtx.Fprintf(b.Diag, "[env] config: %s, defaults kept\n", err.Error())
	}

	splash(b.Display)

	monitor.New(cfg, b.Sampler, b.Alarm, b.Display, b.Button, b.Diag).Run(context.Background())
}

// splash paints one static frame so a working panel is visible before the
// first sampling cycle completes.
func splash(d monitor.Display) {
	d.Clear()
	d.WriteLine(0, "ENVNODE "+version)
	d.WriteLine(2, "starting...")
	_ = d.Flush()
}
