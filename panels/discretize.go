package panels

import (
	"fmt"
	"math"
	"strings"

	"github.com/notargets/gofoil/geometry2D"
	"github.com/notargets/gofoil/types"
	"github.com/notargets/gofoil/utils"
)

// VerticalPolicy selects what happens when a target lands on a boundary segment with no x extent
type VerticalPolicy uint8

const (
	VerticalEntry VerticalPolicy = iota // use the y of the segment point the scan entered from
	VerticalError                       // fail with a degenerate geometry error
)

var (
	VerticalNames = map[string]VerticalPolicy{
		"entry": VerticalEntry,
		"error": VerticalError,
		"fail":  VerticalError,
	}
	VerticalPrintNames = []string{"Entry", "Error"}
)

func (vp VerticalPolicy) Print() (txt string) {
	if int(vp) < len(VerticalPrintNames) {
		return VerticalPrintNames[vp]
	}
	return fmt.Sprintf("Vertical(%d)", vp)
}

func NewVerticalPolicy(label string) (vp VerticalPolicy, err error) {
	label = strings.ToLower(strings.TrimSpace(label))
	if len(label) == 0 {
		return VerticalEntry, nil
	}
	var ok bool
	if vp, ok = VerticalNames[label]; !ok {
		err = fmt.Errorf("unknown vertical segment policy [%s], choose entry or error", label)
	}
	return
}

// CircleStations projects nPanels+1 equal angular steps of the circle circumscribing [xMin, xMax]
// onto the x axis, starting and ending at xMax and passing xMin halfway.
func CircleStations(xMin, xMax float64, nPanels int) (X []float64) {
	var (
		r       = (xMax - xMin) / 2
		xCenter = (xMax + xMin) / 2
	)
	X = make([]float64, nPanels+1)
	for i := range X {
		w := float64(i) / float64(nPanels) * 2 * math.Pi
		// xCenter + r can miss xMax by one ulp
		X[i] = utils.Clamp(xCenter+r*math.Cos(w), xMin, xMax)
	}
	return
}

/*
Discretize places nPanels panels on the closed boundary with the circle method.

The boundary is walked once: the segment cursor only ever moves forward, so the stations must
traverse the boundary in the order it was sampled. For a Selig ordered section the stations go
from the trailing edge forward along the upper surface and back along the lower surface, which is
that order. A boundary that runs out before every station is placed is reported as degenerate.
The result is either the full set of panels or an error, never a partial set.
*/
func Discretize(boundary []geometry2D.Point, nPanels int) (set Set, err error) {
	return DiscretizeWithPolicy(boundary, nPanels, VerticalEntry)
}

func DiscretizeWithPolicy(boundary []geometry2D.Point, nPanels int, policy VerticalPolicy) (set Set, err error) {
	var (
		box *geometry2D.BoundingBox
	)
	if len(boundary) < 2 {
		err = types.NewGeometryError("need at least 2 boundary points, have %d", len(boundary))
		return
	}
	if nPanels <= 0 {
		err = types.NewGeometryError("panel count must be positive, have %d", nPanels)
		return
	}
	box = geometry2D.NewBoundingBox(boundary)
	if chord := box.Width(0); !(chord > 0) || utils.IsNan(chord) {
		err = types.NewGeometryError("boundary has no x extent, chord = %v", chord)
		return
	}
	var (
		X      = CircleStations(box.XMin[0], box.XMax[0], nPanels)
		ends   = make([]geometry2D.Point, nPanels+1)
		closed = make([]geometry2D.Point, len(boundary)+1)
		j      int
	)
	copy(closed, boundary)
	closed[len(boundary)] = boundary[0]

	between := func(x, x0, x1 float64) bool {
		return (x0 <= x && x <= x1) || (x1 <= x && x <= x0)
	}
	for i := 0; i < nPanels; i++ {
		x := X[i]
		for j < len(closed)-1 && !between(x, closed[j].X[0], closed[j+1].X[0]) {
			j++
		}
		if j == len(closed)-1 {
			err = types.NewGeometryError(
				"boundary exhausted placing station %d of %d at x = %v, boundary is not traversed in station order",
				i, nPanels, x)
			return
		}
		var (
			p0, p1 = closed[j], closed[j+1]
			y      float64
		)
		if p1.X[0] == p0.X[0] {
			if policy == VerticalError {
				err = types.NewGeometryError("station %d at x = %v falls on vertical boundary segment %d", i, x, j)
				return
			}
			y = p0.X[1]
		} else {
			a := (p1.X[1] - p0.X[1]) / (p1.X[0] - p0.X[0])
			b := p1.X[1] - a*p1.X[0]
			y = a*x + b
		}
		ends[i] = geometry2D.NewPoint(x, y)
	}
	// The last station coincides with the first, closing the chain
	ends[nPanels] = ends[0]

	set = make(Set, nPanels)
	for i := range set {
		set[i] = NewPanel(ends[i], ends[i+1])
	}
	return
}
