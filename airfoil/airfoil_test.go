package airfoil

import (
	"errors"
	"math"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notargets/gofoil/geometry2D"
	"github.com/notargets/gofoil/readfiles"
	"github.com/notargets/gofoil/types"
)

func TestParseNACA4(t *testing.T) {
	{ // Test decoding
		n4, err := ParseNACA4("0012")
		require.NoError(t, err)
		assert.Equal(t, NACA4{Code: "0012", M: 0.0, P: 0.0, T: 0.12}, n4)
		assert.True(t, n4.Symmetric())
		n4, err = ParseNACA4("2412")
		require.NoError(t, err)
		assert.Equal(t, 0.02, n4.M)
		assert.Equal(t, 0.4, n4.P)
		assert.Equal(t, 0.12, n4.T)
		assert.False(t, n4.Symmetric())
	}
	{ // Test malformed codes
		for _, code := range []string{"12345", "123", "", "24a2", "2 12", "２412"} {
			_, err := ParseNACA4(code)
			require.Error(t, err, code)
			assert.True(t, errors.Is(err, types.ErrInvalidSpecification), code)
			var se *types.SpecificationError
			require.True(t, errors.As(err, &se))
			assert.Equal(t, code, se.Code)
		}
	}
	{ // Test camber guard for sections without a camber position
		n4, err := ParseNACA4("2012")
		require.NoError(t, err)
		assert.Equal(t, 0., n4.Camber(0.3))
		assert.False(t, math.IsNaN(n4.Camber(0)))
	}
	{ // Test camber is continuous and peaks at p
		n4, _ := ParseNACA4("4415")
		assert.InDelta(t, 0.04, n4.Camber(0.4), 1.e-15)
		assert.InDelta(t, n4.Camber(0.4-1.e-9), n4.Camber(0.4), 1.e-9)
		assert.InDelta(t, 0, n4.Camber(0), 1.e-15)
		assert.InDelta(t, 0, n4.Camber(1), 1.e-15)
	}
	{ // Test thickness distribution, trailing edge is open by 0.00126 for 12%
		n4, _ := ParseNACA4("0012")
		assert.Equal(t, 0., n4.Thickness(0))
		assert.InDelta(t, 0.00126, n4.Thickness(1), 1.e-5)
		assert.InDelta(t, 0.06, n4.Thickness(0.3), 1.e-3)
	}
	{ // Test spacing labels
		st, err := NewSpacingType("")
		require.NoError(t, err)
		assert.Equal(t, CosineSpacing, st)
		st, err = NewSpacingType(" Uniform ")
		require.NoError(t, err)
		assert.Equal(t, UniformSpacing, st)
		assert.Equal(t, "Uniform", st.Print())
		_, err = NewSpacingType("chebyshev")
		assert.Error(t, err)
	}
}

func TestGenerateNACA4(t *testing.T) {
	{ // Test symmetric section
		n := 100
		af, err := GenerateNACA4("0012", n)
		require.NoError(t, err)
		assert.Equal(t, "NACA_0012", af.Name)
		assert.True(t, af.IsAnalytic())
		assert.Equal(t, n, len(af.ChordLine))
		assert.Equal(t, n, len(af.Thickness))
		assert.Equal(t, n, len(af.Upper))
		assert.Equal(t, n, len(af.Lower))
		for i := 0; i < n; i++ {
			assert.Equal(t, 0., af.ChordLine[i].X[1])
			// No camber slope, surfaces sit straight above and below the chord line
			assert.Equal(t, af.ChordLine[i].X[0], af.Upper[i].X[0])
			assert.Equal(t, af.Upper[i].X[1], -af.Lower[i].X[1])
			assert.Equal(t, af.Thickness[i], af.Upper[i].X[1])
		}
		// Cosine stations
		for i := 0; i < n; i++ {
			assert.Equal(t, (1-math.Cos(math.Pi*float64(i)/float64(n)))/2, af.ChordLine[i].X[0])
		}
		tk, xt := af.MaxThickness()
		assert.InDelta(t, 0.12, tk, 1.e-3)
		assert.InDelta(t, 0.3, xt, 0.02)
		c, _ := af.MaxCamber()
		assert.Equal(t, 0., c)
		assert.InDelta(t, 0.0822, af.Area(), 1.e-3)
		assert.Equal(t, n-1, af.LeadingEdge())
		// Symmetric sections have their area centroid on the chord line
		centroid := af.Centroid()
		assert.InDelta(t, 0., centroid.X[1], 1.e-12)
		assert.InDelta(t, 0.42, centroid.X[0], 0.02)
		assert.InDelta(t, 2.03, af.Perimeter(), 0.01)
		af.Print()
	}
	{ // Test cambered section follows the surface formulas
		n := 60
		af, err := GenerateNACA4("2412", n)
		require.NoError(t, err)
		n4 := *af.Code
		for i := 0; i < n; i++ {
			x := af.ChordLine[i].X[0]
			yc, yt := n4.Camber(x), n4.Thickness(x)
			theta := 0.
			if i < n-1 {
				xn := af.ChordLine[i+1].X[0]
				theta = math.Atan((n4.Camber(xn) - yc) / (xn - x))
			}
			assert.Equal(t, yc, af.ChordLine[i].X[1])
			assert.InDelta(t, x-yt*math.Sin(theta), af.Upper[i].X[0], 1.e-15)
			assert.InDelta(t, yc+yt*math.Cos(theta), af.Upper[i].X[1], 1.e-15)
			assert.InDelta(t, x+yt*math.Sin(theta), af.Lower[i].X[0], 1.e-15)
			assert.InDelta(t, yc-yt*math.Cos(theta), af.Lower[i].X[1], 1.e-15)
			assert.True(t, af.Upper[i].X[1] >= af.Lower[i].X[1])
		}
		// Final station is flat
		assert.Equal(t, af.Upper[n-1].X[0], af.Lower[n-1].X[0])
		c, xc := af.MaxCamber()
		assert.InDelta(t, 0.02, c, 1.e-3)
		assert.InDelta(t, 0.4, xc, 0.05)
	}
	{ // Test uniform fallback spacing
		af, err := GenerateNACA4Spaced("0012", 10, UniformSpacing)
		require.NoError(t, err)
		for i := 0; i < 10; i++ {
			assert.Equal(t, float64(i)/10, af.ChordLine[i].X[0])
		}
	}
	{ // Test invalid inputs never produce geometry
		for _, code := range []string{"12345", "123"} {
			af, err := GenerateNACA4(code, 50)
			assert.Nil(t, af)
			assert.True(t, errors.Is(err, types.ErrInvalidSpecification))
		}
		af, err := GenerateNACA4("0012", 1)
		assert.Nil(t, af)
		assert.True(t, errors.Is(err, types.ErrInvalidSpecification))
	}
	{ // Test the boundary is in Selig order
		n := 50
		af, err := GenerateNACA4("4412", n)
		require.NoError(t, err)
		assert.Equal(t, 2*n-1, len(af.Boundary))
		assert.Equal(t, af.Upper[n-1], af.Boundary[0])
		assert.Equal(t, af.Upper[0], af.Boundary[n-1])
		assert.Equal(t, af.Lower[n-1], af.Boundary[2*n-2])
		// Cambered sections sweep slightly ahead of x = 0 just behind the nose
		assert.True(t, af.Boundary[af.LeadingEdge()].X[0] <= 0)
		// Trailing edge -> upper -> leading edge -> lower is counterclockwise
		assert.True(t, geometry2D.NewPolygon(af.Boundary).CounterClockwise())
		upper, lower := af.Surfaces()
		assert.Equal(t, af.Upper, upper)
		assert.Equal(t, af.Lower, lower)
	}
}

func TestDigitizedAirfoil(t *testing.T) {
	{ // Test chord queries
		af := &Airfoil{
			Name: "Test",
			Boundary: []geometry2D.Point{
				geometry2D.NewPoint(3, 4),
				geometry2D.NewPoint(5, 0),
				geometry2D.NewPoint(1, -2),
				geometry2D.NewPoint(8, -6),
				geometry2D.NewPoint(4, 2),
			},
		}
		assert.Equal(t, 7.0, af.Chord())
		assert.Equal(t, 4.5, af.ChordCenterX())
		assert.False(t, af.IsAnalytic())
		tk, _ := af.MaxThickness()
		assert.Equal(t, 0., tk)
	}
	{ // Test degenerate chord queries
		af := &Airfoil{}
		assert.Equal(t, 0., af.Chord())
		assert.Equal(t, 0., af.ChordCenterX())
		assert.Equal(t, 0., af.Area())
		assert.Equal(t, 0., af.Perimeter())
		assert.Equal(t, geometry2D.Point{}, af.Centroid())
		upper, lower := af.Surfaces()
		assert.Nil(t, upper)
		assert.Nil(t, lower)
		af.Boundary = []geometry2D.Point{geometry2D.NewPoint(-2, 1)}
		assert.Equal(t, 0., af.Chord())
		assert.Equal(t, -2., af.ChordCenterX())
	}
	{ // Test ingestion from text
		af, err := FromCoordinates("TEST FOIL\n1 0.01\n0.5 0.05\n0 0\n0.5 -0.05\n1 -0.01\n")
		require.NoError(t, err)
		assert.Equal(t, "TESTFOIL", af.Name)
		assert.Equal(t, 5, len(af.Boundary))
		assert.Equal(t, 1., af.Chord())
		assert.Equal(t, 0.5, af.ChordCenterX())
		assert.InDelta(t, 2*math.Sqrt(0.2516)+2*math.Sqrt(0.2525)+0.02, af.Perimeter(), 1.e-14)
		centroid := af.Centroid()
		assert.InDelta(t, 0., centroid.X[1], 1.e-15)
		assert.True(t, centroid.X[0] > 0 && centroid.X[0] < 1)
		upper, lower := af.Surfaces()
		assert.Equal(t, []geometry2D.Point{
			geometry2D.NewPoint(0, 0), geometry2D.NewPoint(0.5, 0.05), geometry2D.NewPoint(1, 0.01),
		}, upper)
		assert.Equal(t, []geometry2D.Point{
			geometry2D.NewPoint(0, 0), geometry2D.NewPoint(0.5, -0.05), geometry2D.NewPoint(1, -0.01),
		}, lower)
		_, err = FromCoordinates("TEST FOIL\n1 0.01 3\n")
		assert.True(t, errors.Is(err, types.ErrParse))
	}
	{ // Test a generated section survives a Selig file round trip
		gen, err := GenerateNACA4("2412", 80)
		require.NoError(t, err)
		filename := filepath.Join(t.TempDir(), "naca2412.dat")
		require.NoError(t, readfiles.WriteSeligFile(filename, gen.Name, gen.Boundary, false))
		af, err := FromFile(filename, false)
		require.NoError(t, err)
		assert.Equal(t, gen.Name, af.Name)
		require.Equal(t, len(gen.Boundary), len(af.Boundary))
		for i := range af.Boundary {
			assert.InDelta(t, gen.Boundary[i].X[0], af.Boundary[i].X[0], 1.e-8)
			assert.InDelta(t, gen.Boundary[i].X[1], af.Boundary[i].X[1], 1.e-8)
		}
		assert.InDelta(t, gen.Area(), af.Area(), 1.e-6)
	}
}
