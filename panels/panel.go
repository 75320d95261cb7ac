package panels

import (
	"math"

	"github.com/notargets/gofoil/geometry2D"
	"github.com/notargets/gofoil/utils"
)

type Panel struct {
	PointA, PointB geometry2D.Point
	Center         geometry2D.Point
	Length         float64
	// Beta is the panel inclination in [0, 2pi), Beta <= pi is the upper surface
	Beta  float64
	Upper bool
	// Solver results, not computed here
	Sigma, Vt, Cp float64
}

func NewPanel(a, b geometry2D.Point) (p Panel) {
	p = Panel{
		PointA: a,
		PointB: b,
		Center: geometry2D.Midpoint(a, b),
		Length: geometry2D.Distance(a, b),
	}
	p.Beta = Inclination(a, b, p.Length)
	p.Upper = p.Beta <= math.Pi
	return
}

/*
Inclination of the panel a->b, measured so that a clockwise walk around the section gives a
monotone angle. Panels running toward -x (or straight up/down) use the principal arccos branch
and land in [0, pi]; panels running toward +x use the lower branch in (pi, 2pi).
A zero length panel has no direction and is given 0.
*/
func Inclination(a, b geometry2D.Point, length float64) (beta float64) {
	var (
		d      = b.Minus(a)
		dx, dy = d.X[0], d.X[1]
	)
	if length == 0 {
		return 0
	}
	if dx <= 0 {
		beta = math.Acos(utils.Clamp(dy/length, -1, 1))
	} else {
		beta = math.Pi + math.Acos(utils.Clamp(-dy/length, -1, 1))
	}
	// dy == length can survive rounding when dx is tiny
	if beta >= 2*math.Pi {
		beta -= 2 * math.Pi
	}
	return
}

// Normal is the outward unit normal for a boundary traversed in Selig order
func (p Panel) Normal() geometry2D.Point {
	return geometry2D.NewPoint(math.Cos(p.Beta), math.Sin(p.Beta))
}

// Tangent is the unit vector along the panel, perpendicular to Normal
func (p Panel) Tangent() geometry2D.Point {
	return geometry2D.NewPoint(-math.Sin(p.Beta), math.Cos(p.Beta))
}
