package utils

import (
	"math"
)

// POW is an unrolled integer power, falling back to math.Pow outside [-4,4]
func POW(x float64, pp int) (y float64) {
	var (
		p       = pp
		flipped bool
	)
	if pp > 4 || pp < -4 {
		return math.Pow(x, float64(pp))
	}
	if p < 0 {
		p = -pp
		flipped = true
	}
	switch p {
	case 0:
		y = 1
	case 1:
		y = x
	case 2:
		y = x * x
	case 3:
		y = x * x * x
	case 4:
		y = x * x
		y = y * y
	}
	if flipped {
		y = 1. / y
	}
	return
}

func Clamp(x, min, max float64) float64 {
	return math.Max(min, math.Min(max, x))
}
