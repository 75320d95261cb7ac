package airfoil

import (
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/gonum/floats"

	"github.com/notargets/gofoil/geometry2D"
	"github.com/notargets/gofoil/readfiles"
)

/*
Airfoil owns the shape of one section. Analytic sections carry the chord line, thickness and both
surfaces sampled at the same N stations; digitized sections only carry the Boundary read from file.
Boundary is always in Selig order: trailing edge, upper surface, leading edge, lower surface.
*/
type Airfoil struct {
	Name string
	Code *NACA4 // nil for digitized sections
	// (x, yc) of the mean camber line, leading to trailing edge
	ChordLine []geometry2D.Point
	// yt, index aligned with ChordLine
	Thickness []float64
	// (xu, yu) and (xl, yl), index aligned with ChordLine
	Upper, Lower []geometry2D.Point
	Boundary     []geometry2D.Point
}

// FromCoordinates reads Selig formatted text
func FromCoordinates(raw string) (af *Airfoil, err error) {
	var (
		name string
		pts  []geometry2D.Point
	)
	if name, pts, err = readfiles.ParseSelig(strings.NewReader(raw)); err != nil {
		return
	}
	af = &Airfoil{Name: name, Boundary: pts}
	return
}

func FromFile(filename string, verbose bool) (af *Airfoil, err error) {
	var (
		name string
		pts  []geometry2D.Point
	)
	if name, pts, err = readfiles.ReadSeligFile(filename, verbose); err != nil {
		return
	}
	af = &Airfoil{Name: name, Boundary: pts}
	return
}

// AssembleBoundary joins the surfaces in Selig order, the shared leading edge point appears once
func AssembleBoundary(upper, lower []geometry2D.Point) (boundary []geometry2D.Point) {
	boundary = make([]geometry2D.Point, 0, len(upper)+len(lower))
	for i := len(upper) - 1; i >= 0; i-- {
		boundary = append(boundary, upper[i])
	}
	if len(upper) != 0 && len(lower) != 0 && lower[0].Equal(upper[0]) {
		lower = lower[1:]
	}
	return append(boundary, lower...)
}

func (af *Airfoil) IsAnalytic() bool { return af.Code != nil }

// Chord is max(x) - min(x) over the boundary
func (af *Airfoil) Chord() float64 {
	box := geometry2D.NewBoundingBox(af.Boundary)
	if box == nil {
		return 0
	}
	return box.XMax[0] - box.XMin[0]
}

func (af *Airfoil) ChordCenterX() float64 {
	box := geometry2D.NewBoundingBox(af.Boundary)
	if box == nil {
		return 0
	}
	return box.Centroid().X[0]
}

// LeadingEdge is the index of the first boundary point with minimum x
func (af *Airfoil) LeadingEdge() (index int) {
	for i, pt := range af.Boundary {
		if pt.X[0] < af.Boundary[index].X[0] {
			index = i
		}
	}
	return
}

// Surfaces returns both surfaces ordered leading to trailing edge. Digitized sections are split at
// the leading edge of the boundary, so the two surfaces may differ in length.
func (af *Airfoil) Surfaces() (upper, lower []geometry2D.Point) {
	if len(af.Upper) != 0 {
		return af.Upper, af.Lower
	}
	if len(af.Boundary) == 0 {
		return
	}
	le := af.LeadingEdge()
	upper = make([]geometry2D.Point, le+1)
	for i := 0; i <= le; i++ {
		upper[i] = af.Boundary[le-i]
	}
	lower = append([]geometry2D.Point{}, af.Boundary[le:]...)
	return
}

// Area enclosed by the closed boundary
func (af *Airfoil) Area() float64 {
	if len(af.Boundary) < 3 {
		return 0
	}
	return math.Abs(geometry2D.NewPolygon(af.Boundary).Area())
}

// Perimeter of the closed boundary, including the trailing edge closure
func (af *Airfoil) Perimeter() float64 {
	if len(af.Boundary) < 2 {
		return 0
	}
	return geometry2D.NewPolygon(af.Boundary).Perimeter()
}

// Centroid of the enclosed area, the zero point when the boundary encloses none
func (af *Airfoil) Centroid() (centroid geometry2D.Point) {
	if af.Area() == 0 {
		return
	}
	return geometry2D.NewPolygon(af.Boundary).Centroid()
}

// MaxThickness is twice the largest yt and its chord location, zero for digitized sections
func (af *Airfoil) MaxThickness() (t, x float64) {
	if len(af.Thickness) == 0 {
		return
	}
	i := floats.MaxIdx(af.Thickness)
	return 2 * af.Thickness[i], af.ChordLine[i].X[0]
}

// MaxCamber is the largest mean line ordinate and its chord location, zero for digitized sections
func (af *Airfoil) MaxCamber() (c, x float64) {
	if len(af.ChordLine) == 0 {
		return
	}
	X, Yc := geometry2D.SplitXY(af.ChordLine)
	i := floats.MaxIdx(Yc)
	return Yc[i], X[i]
}

func (af *Airfoil) Print() {
	fmt.Printf("\"%s\"\t\t= Name\n", af.Name)
	fmt.Printf("[%d]\t\t\t= Boundary Points\n", len(af.Boundary))
	fmt.Printf("%8.5f\t\t= Chord\n", af.Chord())
	fmt.Printf("%8.5f\t\t= Area\n", af.Area())
	fmt.Printf("%8.5f\t\t= Perimeter\n", af.Perimeter())
	c := af.Centroid()
	fmt.Printf("(%6.4f, %6.4f)\t= Centroid\n", c.X[0], c.X[1])
	if af.IsAnalytic() {
		t, xt := af.MaxThickness()
		c, xc := af.MaxCamber()
		fmt.Printf("[%d]\t\t\t= Stations\n", len(af.ChordLine))
		fmt.Printf("%8.5f at x = %6.4f\t= Max Thickness\n", t, xt)
		fmt.Printf("%8.5f at x = %6.4f\t= Max Camber\n", c, xc)
	}
}
