// Package fmtx is a printf subset with fmt-compatible signatures. MCU builds
// format without pulling in fmt; host builds delegate to fmt. Both flavours
// route Print and Printf through DefaultOutput so diagnostics land on the
// same writer everywhere.
package fmtx

import "io"

// DefaultOutput is where Print and Printf write. Platform bootstrap replaces
// it (a UART writer on hardware); host builds default to stdout.
var DefaultOutput io.Writer = defaultOutput()
