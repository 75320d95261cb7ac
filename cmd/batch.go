/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/multierr"

	"github.com/notargets/gofoil/InputParameters"
	"github.com/notargets/gofoil/batch"
	"github.com/notargets/gofoil/utils"
)

const exampleInputFile = `
########################################
Title: "Test Case"
Resolution: 100
NumPanels: 40
Spacing: cosine # Can be "uniform"
VerticalSegments: entry # Can be "error"
ParallelDegree: 4
OutputDir: panels
Plot: true
Airfoils:
  - NACA: "2412"
  - NACA: "0012"
    NumPanels: 60
  - Name: clarky
    File: clarky.dat
########################################
`

type BatchRun struct {
	InputFile      string
	ParallelDegree int // overrides the input file when above zero
	Verbose        bool
}

// BatchCmd represents the batch command
var BatchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Discretize a list of airfoils in parallel",
	Long: `
Reads a YAML run input listing NACA codes and Selig files, builds and discretizes every section
in parallel and writes the boundary, the panels and optionally a plot for each one.

gofoil batch -I runs.yaml --np 8`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		br := &BatchRun{
			InputFile:      viper.GetString("inputConditionsFile"),
			ParallelDegree: viper.GetInt(CfgParallel),
			Verbose:        viper.GetBool(CfgVerbose),
		}
		_, err = RunBatch(br)
		return
	},
}

func init() {
	rootCmd.AddCommand(BatchCmd)
	BatchCmd.Flags().StringP("inputConditionsFile", "I", "", "YAML file listing the airfoils and run parameters")
	BatchCmd.Flags().Int(CfgParallel, 0, "number of parallel workers, 0 uses the input file or every CPU")
}

func processInput(br *BatchRun) (rp *InputParameters.RunParameters, err error) {
	var (
		data []byte
	)
	if len(br.InputFile) == 0 {
		fmt.Printf("Example File:%s\n", exampleInputFile)
		return nil, fmt.Errorf("must supply an input parameters file (-I, --inputConditionsFile)")
	}
	if data, err = os.ReadFile(br.InputFile); err != nil {
		return nil, errors.Wrapf(err, "unable to read input file %s", br.InputFile)
	}
	rp = &InputParameters.RunParameters{}
	if err = rp.Parse(data); err != nil {
		return nil, errors.Wrapf(err, "unable to parse input file %s", br.InputFile)
	}
	if br.ParallelDegree > 0 {
		rp.ParallelDegree = br.ParallelDegree
	}
	// Coordinate files and the output directory are relative to the input file
	dir := filepath.Dir(br.InputFile)
	for i, ai := range rp.Airfoils {
		if len(ai.File) != 0 && !filepath.IsAbs(ai.File) {
			rp.Airfoils[i].File = filepath.Join(dir, ai.File)
		}
	}
	if !filepath.IsAbs(rp.OutputDir) {
		rp.OutputDir = filepath.Join(dir, rp.OutputDir)
	}
	return
}

func RunBatch(br *BatchRun) (results []batch.Result, err error) {
	var (
		rp   *InputParameters.RunParameters
		jobs []batch.Job
	)
	if rp, err = processInput(br); err != nil {
		return
	}
	if br.Verbose {
		rp.Print()
	}
	if jobs, err = batch.JobsFromInput(rp); err != nil {
		return
	}
	// Failed jobs are reported, the rest are still written
	results, err = batch.Run(jobs, rp.ParallelDegree)
	batch.Print(results)
	if werr := batch.WriteResults(results, rp.OutputDir, rp.Plot, br.Verbose); werr != nil {
		err = multierr.Append(err, werr)
		return
	}
	if br.Verbose {
		fmt.Println(utils.GetMemUsage())
	}
	return
}
