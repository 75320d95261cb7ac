package geometry2D

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

type Point struct {
	X [2]float64
}

func NewPoint(x, y float64) Point {
	return Point{X: [2]float64{x, y}}
}

func (pt Point) Vec() r2.Vec {
	return r2.Vec{X: pt.X[0], Y: pt.X[1]}
}

func (pt Point) Minus(rhs Point) (res Point) {
	return Point{X: [2]float64{
		pt.X[0] - rhs.X[0],
		pt.X[1] - rhs.X[1],
	}}
}
func (pt Point) Plus(rhs Point) (res Point) {
	return Point{X: [2]float64{
		pt.X[0] + rhs.X[0],
		pt.X[1] + rhs.X[1],
	}}
}
func (pt Point) Equal(rhs Point) bool {
	return pt.X[0] == rhs.X[0] && pt.X[1] == rhs.X[1]
}

func Midpoint(a, b Point) Point {
	sum := a.Plus(b)
	return NewPoint(sum.X[0]/2, sum.X[1]/2)
}

func Distance(a, b Point) float64 {
	return r2.Norm(r2.Sub(b.Vec(), a.Vec()))
}

// SplitXY returns the coordinate columns of pts
func SplitXY(pts []Point) (X, Y []float64) {
	X, Y = make([]float64, len(pts)), make([]float64, len(pts))
	for i, pt := range pts {
		X[i], Y[i] = pt.X[0], pt.X[1]
	}
	return
}

type BoundingBox struct {
	XMin [2]float64
	XMax [2]float64
}

func NewBoundingBox(Geometry []Point) (Box *BoundingBox) {
	if len(Geometry) == 0 {
		return nil
	}
	Box = new(BoundingBox)
	Box.XMin[0], Box.XMin[1] = Geometry[0].X[0], Geometry[0].X[1]
	Box.XMax[0], Box.XMax[1] = Geometry[0].X[0], Geometry[0].X[1]
	for _, point := range Geometry {
		for i := 0; i < 2; i++ {
			if point.X[i] < Box.XMin[i] {
				Box.XMin[i] = point.X[i]
			}
			if point.X[i] > Box.XMax[i] {
				Box.XMax[i] = point.X[i]
			}
		}
	}
	return Box
}

func (bb *BoundingBox) Width(dim int) float64 {
	return bb.XMax[dim] - bb.XMin[dim]
}

func (bb *BoundingBox) Centroid() (centroid Point) {
	return Point{X: [2]float64{
		0.5 * (bb.XMax[0] + bb.XMin[0]),
		0.5 * (bb.XMax[1] + bb.XMin[1]),
	}}
}
func (bb *BoundingBox) Scale(scale float64) (bbOut *BoundingBox) {
	bbOut = new(BoundingBox)
	for i := 0; i < 2; i++ {
		centroid := bb.XMin[i] + 0.5*bb.Width(i)
		bbOut.XMin[i] = scale*(bb.XMin[i]-centroid) + centroid
		bbOut.XMax[i] = scale*(bb.XMax[i]-centroid) + centroid
	}
	return bbOut
}
func (bb *BoundingBox) Grow(newBB *BoundingBox) {
	for i := 0; i < 2; i++ {
		bb.XMin[i] = math.Min(bb.XMin[i], newBB.XMin[i])
		bb.XMax[i] = math.Max(bb.XMax[i], newBB.XMax[i])
	}
}
func (bb *BoundingBox) PointInside(point Point) (within bool) {
	for ii := 0; ii < 2; ii++ {
		if point.X[ii] > bb.XMax[ii] || point.X[ii] < bb.XMin[ii] {
			return false
		}
	}
	return true
}

type Polygon struct {
	Box      *BoundingBox
	Geometry []Point
}

func NewPolygon(geom []Point) (poly *Polygon) {
	/*
		Close off the polygon if needed, the input slice is never modified
	*/
	closed := make([]Point, len(geom), len(geom)+1)
	copy(closed, geom)
	if len(closed) != 0 && !closed[len(closed)-1].Equal(closed[0]) {
		closed = append(closed, closed[0])
	}
	return &Polygon{
		Box:      NewBoundingBox(closed),
		Geometry: closed,
	}
}

func (pg *Polygon) Area() (area float64) {
	/*
		Algorithm: Green's theorem in the plane, positive for counterclockwise traversal
	*/
	for i := 0; i < len(pg.Geometry)-1; i++ {
		pt0 := pg.Geometry[i]
		pt1 := pg.Geometry[i+1]
		area += pt0.X[0]*pt1.X[1] - pt1.X[0]*pt0.X[1]
	}
	return 0.5 * area
}

func (pg *Polygon) CounterClockwise() bool { return pg.Area() > 0 }

func (pg *Polygon) Perimeter() (length float64) {
	for i := 0; i < len(pg.Geometry)-1; i++ {
		length += Distance(pg.Geometry[i], pg.Geometry[i+1])
	}
	return
}

func (pg *Polygon) Centroid() (centroid Point) {
	/*
		From: https://en.wikipedia.org/wiki/Centroid#Centroid_of_a_polygon
	*/
	var (
		area = pg.Area()
		ct   [2]float64
	)
	for i := 0; i < len(pg.Geometry)-1; i++ {
		x0, y0 := pg.Geometry[i].X[0], pg.Geometry[i].X[1]
		x1, y1 := pg.Geometry[i+1].X[0], pg.Geometry[i+1].X[1]
		metric := x0*y1 - y0*x1
		ct[0] += (x0 + x1) * metric
		ct[1] += (y0 + y1) * metric
	}
	for i := 0; i < 2; i++ {
		centroid.X[i] = ct[i] / (6 * area)
	}
	return centroid
}
