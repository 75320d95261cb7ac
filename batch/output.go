package batch

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/multierr"

	"github.com/notargets/gofoil/panels"
	"github.com/notargets/gofoil/plotting"
	"github.com/notargets/gofoil/readfiles"
)

// BaseName turns a section name into a file name stem
func BaseName(name string) string {
	name = strings.TrimSuffix(filepath.Base(name), filepath.Ext(name))
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '/', '\\', ':':
			return '_'
		}
		return r
	}, name)
}

/*
WriteResults writes, for each successful result, the boundary as a Selig file, the panels as CSV
and YAML and optionally a PNG of the panel overlay, all named after the job. Failed results are
skipped.
*/
func WriteResults(results []Result, dir string, plot, verbose bool) (err error) {
	if len(dir) == 0 {
		dir = "."
	}
	if err = os.MkdirAll(dir, 0755); err != nil {
		return errors.Wrapf(err, "unable to create output directory %s", dir)
	}
	for _, r := range results {
		if !r.OK() {
			continue
		}
		err = multierr.Append(err, writeResult(r, filepath.Join(dir, BaseName(r.Job.Name)), plot, verbose))
	}
	return
}

func writeResult(r Result, stem string, plot, verbose bool) (err error) {
	if err = readfiles.WriteSeligFile(stem+".dat", r.Airfoil.Name, r.Airfoil.Boundary, verbose); err != nil {
		return
	}
	if err = writeFile(stem+".csv", func(f *os.File) error { return panels.WriteCSV(f, r.Panels) }); err != nil {
		return
	}
	if err = writeFile(stem+".yaml", func(f *os.File) error { return panels.WriteYAML(f, r.Airfoil.Name, r.Panels) }); err != nil {
		return
	}
	if plot {
		if err = plotting.PlotPanels(r.Airfoil, r.Panels, stem+".png", plotting.Options{}); err != nil {
			return
		}
	}
	if verbose {
		fmt.Printf("Wrote %s.[dat,csv,yaml]\n", stem)
	}
	return
}

func writeFile(filename string, write func(f *os.File) error) (err error) {
	var (
		f *os.File
	)
	if f, err = os.Create(filename); err != nil {
		return errors.Wrapf(err, "unable to create %s", filename)
	}
	defer func() {
		err = multierr.Append(err, f.Close())
	}()
	if err = write(f); err != nil {
		err = errors.Wrapf(err, "unable to write %s", filename)
	}
	return
}
