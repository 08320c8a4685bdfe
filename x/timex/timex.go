package timex

import "time"

// NowMs returns Unix milliseconds as int64. Diagnostic records carry this so
// host-side log collection can line readings up without parsing durations.
func NowMs() int64 { return time.Now().UnixMilli() }
