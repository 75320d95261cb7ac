package airfoil

import (
	"fmt"
	"math"
	"strings"

	"github.com/notargets/gofoil/geometry2D"
	"github.com/notargets/gofoil/types"
	"github.com/notargets/gofoil/utils"
)

type SpacingType uint8

const (
	CosineSpacing SpacingType = iota
	UniformSpacing
)

var (
	SpacingNames = map[string]SpacingType{
		"cosine":  CosineSpacing,
		"cos":     CosineSpacing,
		"uniform": UniformSpacing,
		"linear":  UniformSpacing,
	}
	SpacingPrintNames = []string{"Cosine", "Uniform"}
)

func (st SpacingType) Print() (txt string) {
	if int(st) < len(SpacingPrintNames) {
		return SpacingPrintNames[st]
	}
	return fmt.Sprintf("Spacing(%d)", st)
}

// NewSpacingType maps a label from the command line or input file, an empty label is cosine
func NewSpacingType(label string) (st SpacingType, err error) {
	label = strings.ToLower(strings.TrimSpace(label))
	if len(label) == 0 {
		return CosineSpacing, nil
	}
	var ok bool
	if st, ok = SpacingNames[label]; !ok {
		err = fmt.Errorf("unknown spacing type [%s], choose cosine or uniform", label)
	}
	return
}

// NACA4 holds the decoded digits as chord fractions
type NACA4 struct {
	Code string
	M    float64 // maximum camber
	P    float64 // location of maximum camber
	T    float64 // maximum thickness
}

func ParseNACA4(code string) (n4 NACA4, err error) {
	if len(code) != 4 {
		err = types.NewSpecificationError(code,
			"NACA 4-digit designations must have 4 digits, found %d characters", len(code))
		return
	}
	var d [4]int
	for i := 0; i < 4; i++ {
		if code[i] < '0' || code[i] > '9' {
			err = types.NewSpecificationError(code, "character %q is not a digit", code[i])
			return
		}
		d[i] = int(code[i] - '0')
	}
	n4 = NACA4{
		Code: code,
		M:    float64(d[0]) / 100,
		P:    float64(d[1]) / 10,
		T:    float64(d[2]*10+d[3]) / 100,
	}
	return
}

func (n4 NACA4) Symmetric() bool { return n4.M == 0 || n4.P == 0 }

// Camber is the mean line ordinate at chord fraction x
func (n4 NACA4) Camber(x float64) (yc float64) {
	var (
		m, p = n4.M, n4.P
	)
	if n4.Symmetric() {
		return 0
	}
	if x < p {
		return (m / (p * p)) * (2*p*x - x*x)
	}
	return (m / utils.POW(1-p, 2)) * ((1 - 2*p) + 2*p*x - x*x)
}

// Thickness is the half thickness distribution yt at chord fraction x
func (n4 NACA4) Thickness(x float64) (yt float64) {
	return (n4.T / 0.2) * (0.2969*math.Sqrt(x) -
		0.1260*x -
		0.3516*utils.POW(x, 2) +
		0.2843*utils.POW(x, 3) -
		0.1015*utils.POW(x, 4))
}

// ChordStations returns n chord fractions starting at the leading edge
func ChordStations(n int, spacing SpacingType) (X []float64) {
	X = make([]float64, n)
	nF := float64(n)
	for i := range X {
		switch spacing {
		case UniformSpacing:
			X[i] = float64(i) / nF
		default:
			X[i] = (1 - math.Cos(math.Pi*float64(i)/nF)) / 2
		}
	}
	return
}

// GenerateNACA4 builds a cosine spaced NACA 4-digit section with n stations per surface
func GenerateNACA4(code string, n int) (af *Airfoil, err error) {
	return GenerateNACA4Spaced(code, n, CosineSpacing)
}

func GenerateNACA4Spaced(code string, n int, spacing SpacingType) (af *Airfoil, err error) {
	var (
		n4 NACA4
	)
	if n4, err = ParseNACA4(code); err != nil {
		return
	}
	if n < 2 {
		err = types.NewSpecificationError(code, "resolution must be at least 2, have %d", n)
		return
	}
	var (
		X     = ChordStations(n, spacing)
		Yc    = make([]float64, n)
		Yt    = make([]float64, n)
		theta = make([]float64, n)
	)
	for i, x := range X {
		Yc[i] = n4.Camber(x)
		Yt[i] = n4.Thickness(x)
	}
	// The last station has no forward difference, it is taken as flat
	for i := 0; i < n-1; i++ {
		theta[i] = math.Atan((Yc[i+1] - Yc[i]) / (X[i+1] - X[i]))
	}
	af = &Airfoil{
		Name:      "NACA_" + code,
		Code:      &n4,
		ChordLine: make([]geometry2D.Point, n),
		Thickness: Yt,
		Upper:     make([]geometry2D.Point, n),
		Lower:     make([]geometry2D.Point, n),
	}
	for i, x := range X {
		sinT, cosT := math.Sin(theta[i]), math.Cos(theta[i])
		af.ChordLine[i] = geometry2D.NewPoint(x, Yc[i])
		af.Upper[i] = geometry2D.NewPoint(x-Yt[i]*sinT, Yc[i]+Yt[i]*cosT)
		af.Lower[i] = geometry2D.NewPoint(x+Yt[i]*sinT, Yc[i]-Yt[i]*cosT)
	}
	af.Boundary = AssembleBoundary(af.Upper, af.Lower)
	return
}
