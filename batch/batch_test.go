package batch

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"

	"github.com/notargets/gofoil/InputParameters"
	"github.com/notargets/gofoil/airfoil"
	"github.com/notargets/gofoil/panels"
	"github.com/notargets/gofoil/readfiles"
	"github.com/notargets/gofoil/types"
)

func TestBatch(t *testing.T) {
	dir := t.TempDir()
	ref, err := airfoil.GenerateNACA4("4415", 80)
	require.NoError(t, err)
	datFile := filepath.Join(dir, "foil.dat")
	require.NoError(t, readfiles.WriteSeligFile(datFile, "NACA 4415", ref.Boundary, false))

	jobs := []Job{
		{Name: "NACA_2412", NACA: "2412", Resolution: 100, NumPanels: 40},
		{Name: "bad code", NACA: "24A2", Resolution: 100, NumPanels: 40},
		{Name: "digitized", File: datFile, NumPanels: 30},
		{Name: "missing", File: filepath.Join(dir, "missing.dat"), NumPanels: 30},
		{Name: "low resolution", NACA: "0012", Resolution: 1, NumPanels: 10},
		{Name: "NACA_0012", NACA: "0012", Resolution: 60, NumPanels: 20, Spacing: airfoil.UniformSpacing},
	}
	{ // Test results come back in job order whatever the degree
		for _, np := range []int{0, 1, 2, 16} {
			results, err := Run(jobs, np)
			require.Error(t, err)
			assert.Equal(t, 3, len(multierr.Errors(err)))
			require.Equal(t, len(jobs), len(results))
			for i, r := range results {
				assert.Equal(t, jobs[i], r.Job)
			}
			assert.True(t, results[0].OK())
			assert.Equal(t, 40, len(results[0].Panels))
			assert.True(t, results[0].Panels.Closed())
			assert.True(t, errors.Is(results[1].Err, types.ErrInvalidSpecification))
			assert.Nil(t, results[1].Airfoil)
			assert.True(t, results[2].OK())
			assert.Equal(t, "NACA4415", results[2].Airfoil.Name)
			assert.Equal(t, 30, len(results[2].Panels))
			assert.True(t, errors.Is(results[3].Err, fs.ErrNotExist))
			assert.True(t, errors.Is(results[4].Err, types.ErrInvalidSpecification))
			assert.True(t, results[5].OK())
			assert.Equal(t, 20, len(results[5].Panels))
		}
	}
	{ // Test a clean run
		results, err := Run([]Job{jobs[0], jobs[5]}, 2)
		assert.NoError(t, err)
		assert.Equal(t, 2, len(results))
		Print(results)
		results, err = Run(nil, 4)
		assert.NoError(t, err)
		assert.Nil(t, results)
	}
	{ // Test output files
		results, _ := Run(jobs, 3)
		outDir := filepath.Join(dir, "out")
		require.NoError(t, WriteResults(results, outDir, true, false))
		for _, name := range []string{"NACA_2412", "digitized", "NACA_0012"} {
			for _, ext := range []string{".dat", ".csv", ".yaml", ".png"} {
				_, err := os.Stat(filepath.Join(outDir, name+ext))
				assert.NoError(t, err, name+ext)
			}
		}
		_, err := os.Stat(filepath.Join(outDir, "bad_code.dat"))
		assert.True(t, errors.Is(err, fs.ErrNotExist))
		// Written panels read back
		data, err := os.ReadFile(filepath.Join(outDir, "NACA_2412.yaml"))
		require.NoError(t, err)
		doc, err := panels.ReadYAML(data)
		require.NoError(t, err)
		assert.Equal(t, 40, doc.NumPanels)
		af, err := airfoil.FromFile(filepath.Join(outDir, "NACA_0012.dat"), false)
		require.NoError(t, err)
		assert.Equal(t, len(results[5].Airfoil.Boundary), len(af.Boundary))
	}
	{ // Test jobs from run input
		var rp InputParameters.RunParameters
		require.NoError(t, rp.Parse([]byte(`
NumPanels: 24
Spacing: uniform
VerticalSegments: error
Airfoils:
  - NACA: "2412"
  - File: foil.dat
    NumPanels: 12
`)))
		jobs, err := JobsFromInput(&rp)
		require.NoError(t, err)
		require.Equal(t, 2, len(jobs))
		assert.Equal(t, Job{Name: "NACA_2412", NACA: "2412", Resolution: 100, NumPanels: 24,
			Spacing: airfoil.UniformSpacing, Vertical: panels.VerticalError}, jobs[0])
		assert.Equal(t, 12, jobs[1].NumPanels)
		rp.Spacing = "chebyshev"
		_, err = JobsFromInput(&rp)
		assert.Error(t, err)
	}
	{ // Test distinct names that share an output stem are rejected
		var rp InputParameters.RunParameters
		require.NoError(t, rp.Parse([]byte("Airfoils:\n  - Name: clark y\n    File: a.dat\n  - Name: clark_y\n    File: b.dat\n")))
		jobs, err := JobsFromInput(&rp)
		assert.Error(t, err)
		assert.Nil(t, jobs)
	}
	{ // Test file name stems
		assert.Equal(t, "NACA_2412", BaseName("NACA_2412"))
		assert.Equal(t, "clark_y", BaseName("clark y"))
		assert.Equal(t, "foil", BaseName("/data/foil.dat"))
	}
}
