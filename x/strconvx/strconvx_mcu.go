//go:build rp2040 || rp2350

package strconvx

// Minimal, allocation-aware formatting helpers with strconv signatures.
// Formatting only: the node renders numbers but never parses them
// (config parsing is JSON-level). Supported bases: 2..36.

func Itoa(i int) string { return FormatInt(int64(i), 10) }

func FormatInt(i int64, base int) string {
	if base < 2 || base > 36 {
		base = 10
	}
	neg := i < 0
	var u uint64
	if neg {
		u = uint64(-i)
	} else {
		u = uint64(i)
	}
	s := formatUint(u, base)
	if neg {
		return "-" + s
	}
	return s
}

func FormatUint(u uint64, base int) string {
	if base < 2 || base > 36 {
		base = 10
	}
	return formatUint(u, base)
}

func formatUint(u uint64, base int) string {
	if u == 0 {
		return "0"
	}
	const digits = "0123456789abcdefghijklmnopqrstuvwxyz"
	var buf [64]byte
	i := len(buf)
	b := uint64(base)
	for u > 0 {
		i--
		buf[i] = digits[u%b]
		u /= b
	}
	return string(buf[i:])
}

// FormatFloat renders fixed-point decimal only ('f' form, whatever fmt says).
// NaN and infinities come out spelled exactly as strconv spells them, so the
// two build flavours agree on what an absent reading looks like.
func FormatFloat(f float64, _ byte, prec, _ int) string {
	return formatDecimal(f, prec)
}
