package strconvx

import "math"

// formatDecimal is the hand-rolled fixed-point formatter used on MCU builds,
// kept untagged so host tests exercise it. Keep expectations modest: plain
// decimal with rounding, no exponent forms, values assumed to fit uint64.
func formatDecimal(f float64, prec int) string {
	if math.IsNaN(f) {
		return "NaN"
	}
	if math.IsInf(f, 1) {
		return "+Inf"
	}
	if math.IsInf(f, -1) {
		return "-Inf"
	}
	if prec < 0 {
		prec = 6
	}
	neg := false
	if f < 0 {
		neg = true
		f = -f
	}
	intp := uint64(f)
	frac := f - float64(intp)

	if prec == 0 {
		// f minus its integer part is exact, so the tie test is exact too.
		// Ties round to even, matching strconv.
		if frac > 0.5 || (frac == 0.5 && intp&1 == 1) {
			intp++
		}
		s := FormatUint(intp, 10)
		if neg {
			return "-" + s
		}
		return s
	}

	pow := 1.0
	for i := 0; i < prec; i++ {
		pow *= 10
	}
	scaled := frac * pow
	base := uint64(scaled)
	rem := scaled - float64(base)
	fracN := base
	// The product frac*pow can round onto an exact half even when the true
	// value sits to one side of it. The FMA residual recovers the true side,
	// and a zero residual is a genuine tie, which rounds to even the way
	// strconv rounds it.
	switch {
	case rem > 0.5:
		fracN++
	case rem == 0.5:
		if res := math.FMA(frac, pow, -scaled); res > 0 || (res == 0 && base&1 == 1) {
			fracN++
		}
	}
	// Rounding can spill into the integer part (e.g. 0.96 at one decimal).
	if fracN >= uint64(pow) {
		intp++
		fracN = 0
	}
	fs := FormatUint(fracN, 10)
	if len(fs) < prec {
		z := make([]byte, prec-len(fs))
		for i := range z {
			z[i] = '0'
		}
		fs = string(z) + fs
	}
	out := FormatUint(intp, 10) + "." + fs
	if neg {
		return "-" + out
	}
	return out
}
