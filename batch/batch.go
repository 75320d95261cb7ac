package batch

import (
	"fmt"

	"github.com/pkg/errors"
	"go.uber.org/multierr"

	"github.com/notargets/gofoil/InputParameters"
	"github.com/notargets/gofoil/airfoil"
	"github.com/notargets/gofoil/panels"
	"github.com/notargets/gofoil/utils"
)

// Job is one independent section: generated from a NACA code or read from a Selig file
type Job struct {
	Name       string
	NACA       string
	File       string
	Resolution int
	NumPanels  int
	Spacing    airfoil.SpacingType
	Vertical   panels.VerticalPolicy
}

type Result struct {
	Job     Job
	Airfoil *airfoil.Airfoil
	Panels  panels.Set
	Err     error
}

func (r Result) OK() bool { return r.Err == nil }

// JobsFromInput resolves the run level settings into one job per listed airfoil
func JobsFromInput(rp *InputParameters.RunParameters) (jobs []Job, err error) {
	var (
		spacing  airfoil.SpacingType
		vertical panels.VerticalPolicy
	)
	if spacing, err = airfoil.NewSpacingType(rp.Spacing); err != nil {
		return
	}
	if vertical, err = panels.NewVerticalPolicy(rp.VerticalSegments); err != nil {
		return
	}
	jobs = make([]Job, len(rp.Airfoils))
	stems := make(map[string]string, len(rp.Airfoils))
	for i, ai := range rp.Airfoils {
		stem := BaseName(ai.Name)
		if prev, ok := stems[stem]; ok {
			return nil, fmt.Errorf("airfoils [%s] and [%s] write to the same output files %s.*", prev, ai.Name, stem)
		}
		stems[stem] = ai.Name
		jobs[i] = Job{
			Name:       ai.Name,
			NACA:       ai.NACA,
			File:       ai.File,
			Resolution: ai.Resolution,
			NumPanels:  ai.NumPanels,
			Spacing:    spacing,
			Vertical:   vertical,
		}
	}
	return
}

// Execute builds the section and its panels, the job is either fully done or carries an error
func (job Job) Execute() (r Result) {
	r.Job = job
	var (
		af  *airfoil.Airfoil
		err error
	)
	switch {
	case len(job.NACA) != 0:
		af, err = airfoil.GenerateNACA4Spaced(job.NACA, job.Resolution, job.Spacing)
	case len(job.File) != 0:
		af, err = airfoil.FromFile(job.File, false)
	default:
		err = fmt.Errorf("no NACA code or file given")
	}
	if err != nil {
		r.Err = errors.Wrapf(err, "job %s", job.Name)
		return
	}
	if r.Panels, err = panels.DiscretizeWithPolicy(af.Boundary, job.NumPanels, job.Vertical); err != nil {
		r.Err = errors.Wrapf(err, "job %s", job.Name)
		return
	}
	r.Airfoil = af
	return
}

/*
Run executes the jobs over parallelDegree workers, a degree below 1 uses every CPU.
Results come back in job order. Every job runs regardless of failures in the others; the returned
error combines the failures in job order and is nil when all jobs succeed.
*/
func Run(jobs []Job, parallelDegree int) (results []Result, err error) {
	if len(jobs) == 0 {
		return
	}
	var (
		pm = utils.NewPartitionMap(parallelDegree, len(jobs))
	)
	results = make([]Result, len(jobs))
	pm.Run(func(bn, k int) {
		results[k] = jobs[k].Execute()
	})
	for _, r := range results {
		err = multierr.Append(err, r.Err)
	}
	return
}

func Print(results []Result) {
	var failed int
	for i, r := range results {
		if !r.OK() {
			failed++
			fmt.Printf("[%d] %s: error: %s\n", i, r.Job.Name, r.Err.Error())
			continue
		}
		fmt.Printf("[%d] %s: %d boundary points, %d panels (%d upper, %d lower), perimeter = %8.5f\n",
			i, r.Job.Name, len(r.Airfoil.Boundary), len(r.Panels),
			len(r.Panels.Upper()), len(r.Panels.Lower()), r.Panels.Perimeter())
	}
	fmt.Printf("%d of %d jobs completed\n", len(results)-failed, len(results))
}
