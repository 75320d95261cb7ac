package panels

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Set is an ordered, closed chain of panels
type Set []Panel

func (s Set) Upper() (upper Set) {
	for _, p := range s {
		if p.Upper {
			upper = append(upper, p)
		}
	}
	return
}

func (s Set) Lower() (lower Set) {
	for _, p := range s {
		if !p.Upper {
			lower = append(lower, p)
		}
	}
	return
}

// Closed reports whether every panel starts where the previous one ended, including the wrap around
func (s Set) Closed() bool {
	for i := range s {
		if !s[i].PointB.Equal(s[(i+1)%len(s)].PointA) {
			return false
		}
	}
	return len(s) != 0
}

func (s Set) Lengths() (L []float64) {
	L = make([]float64, len(s))
	for i, p := range s {
		L[i] = p.Length
	}
	return
}

func (s Set) Perimeter() float64 {
	return floats.Sum(s.Lengths())
}

// Chord is the x extent of the panel start points
func (s Set) Chord() float64 {
	if len(s) == 0 {
		return 0
	}
	xa := make([]float64, len(s))
	for i, p := range s {
		xa[i] = p.PointA.X[0]
	}
	return math.Abs(floats.Max(xa) - floats.Min(xa))
}

const (
	ColXA = iota
	ColYA
	ColXB
	ColYB
	ColXC
	ColYC
	ColLength
	ColBeta
	ColUpper
	NumCols
)

var ColumnNames = []string{"xa", "ya", "xb", "yb", "xc", "yc", "length", "beta", "upper"}

// Matrix lays the panel geometry out one row per panel, Upper is stored as 1 or 0
func (s Set) Matrix() (M *mat.Dense) {
	if len(s) == 0 {
		return nil
	}
	M = mat.NewDense(len(s), NumCols, nil)
	for i, p := range s {
		var upper float64
		if p.Upper {
			upper = 1
		}
		M.SetRow(i, []float64{
			p.PointA.X[0], p.PointA.X[1],
			p.PointB.X[0], p.PointB.X[1],
			p.Center.X[0], p.Center.X[1],
			p.Length, p.Beta, upper,
		})
	}
	return
}

func (s Set) Print() {
	fmt.Printf("[%d]\t\t\t= Panels\n", len(s))
	fmt.Printf("[%d/%d]\t\t\t= Upper/Lower\n", len(s.Upper()), len(s.Lower()))
	fmt.Printf("%8.5f\t\t= Perimeter\n", s.Perimeter())
	fmt.Printf("%8.5f\t\t= Chord\n", s.Chord())
}
