package geometry2D

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGeometry(t *testing.T) {
	pts := []Point{
		NewPoint(3, 4),
		NewPoint(5, 0),
		NewPoint(1, -2),
		NewPoint(8, -6),
		NewPoint(4, 2),
	}
	{ // Test bounding box
		box := NewBoundingBox(pts)
		assert.Equal(t, [2]float64{1, -6}, box.XMin)
		assert.Equal(t, [2]float64{8, 4}, box.XMax)
		assert.Equal(t, 7., box.Width(0))
		assert.Equal(t, NewPoint(4.5, -1), box.Centroid())
		assert.True(t, box.PointInside(NewPoint(1, 4)))
		assert.False(t, box.PointInside(NewPoint(8.1, 0)))
		scaled := box.Scale(2)
		assert.Equal(t, 14., scaled.Width(0))
		assert.Equal(t, box.Centroid(), scaled.Centroid())
		assert.Nil(t, NewBoundingBox(nil))
		box.Grow(&BoundingBox{XMin: [2]float64{-1, 0}, XMax: [2]float64{2, 10}})
		assert.Equal(t, [2]float64{-1, -6}, box.XMin)
		assert.Equal(t, [2]float64{8, 10}, box.XMax)
	}
	{ // Test point arithmetic
		a, b := NewPoint(1, 2), NewPoint(4, 6)
		assert.Equal(t, NewPoint(3, 4), b.Minus(a))
		assert.Equal(t, NewPoint(5, 8), a.Plus(b))
		assert.Equal(t, NewPoint(2.5, 4), Midpoint(a, b))
		assert.Equal(t, 5., Distance(a, b))
		X, Y := SplitXY(pts)
		assert.Equal(t, []float64{3, 5, 1, 8, 4}, X)
		assert.Equal(t, []float64{4, 0, -2, -6, 2}, Y)
	}
	{ // Test polygon closure and orientation
		square := []Point{NewPoint(0, 0), NewPoint(1, 0), NewPoint(1, 1), NewPoint(0, 1)}
		pg := NewPolygon(square)
		assert.Equal(t, 5, len(pg.Geometry))
		assert.Equal(t, 4, len(square))
		assert.Equal(t, 1., pg.Area())
		assert.True(t, pg.CounterClockwise())
		assert.Equal(t, 4., pg.Perimeter())
		assert.Equal(t, NewPoint(0.5, 0.5), pg.Centroid())

		reversed := []Point{square[3], square[2], square[1], square[0], square[3]}
		pg = NewPolygon(reversed)
		assert.Equal(t, 5, len(pg.Geometry))
		assert.Equal(t, -1., pg.Area())
		assert.False(t, pg.CounterClockwise())
	}
	{ // Test polygon area of a regular n-gon approaches the circle
		n := 720
		var circle []Point
		for i := 0; i < n; i++ {
			w := 2 * math.Pi * float64(i) / float64(n)
			circle = append(circle, NewPoint(math.Cos(w), math.Sin(w)))
		}
		pg := NewPolygon(circle)
		assert.InDelta(t, math.Pi, pg.Area(), 1.e-4)
		assert.InDelta(t, 2*math.Pi, pg.Perimeter(), 1.e-4)
	}
}
