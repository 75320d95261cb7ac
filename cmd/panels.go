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

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/notargets/gofoil/airfoil"
	"github.com/notargets/gofoil/panels"
	"github.com/notargets/gofoil/plotting"
)

type PanelsRun struct {
	NACA       string
	File       string
	Resolution int
	NumPanels  int
	Vertical   panels.VerticalPolicy
	CSVFile    string
	YAMLFile   string
	PlotFile   string
	Verbose    bool
}

// PanelsCmd represents the panels command
var PanelsCmd = &cobra.Command{
	Use:   "panels",
	Short: "Discretize an airfoil boundary into panels",
	Long: `
Places panel end points on the airfoil boundary with the circle method: equal angular steps on the
circle circumscribing the chord, projected onto the boundary. The section is either generated from
a NACA 4-digit code or read from a Selig coordinate file. Without --csv, --yaml or --plot the
panels are written to stdout as CSV.

gofoil panels --naca 2412 -p 40 --plot panels.png
gofoil panels --file clarky.dat -p 60 --csv clarky.csv --vertical error`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		pr := &PanelsRun{
			NACA:       viper.GetString("naca"),
			File:       viper.GetString("file"),
			Resolution: viper.GetInt(CfgResolution),
			NumPanels:  viper.GetInt(CfgPanels),
			CSVFile:    viper.GetString("csv"),
			YAMLFile:   viper.GetString("yaml"),
			PlotFile:   viper.GetString("plot"),
			Verbose:    viper.GetBool(CfgVerbose),
		}
		if pr.Vertical, err = panels.NewVerticalPolicy(viper.GetString(CfgVertical)); err != nil {
			return
		}
		_, err = RunPanels(pr)
		return
	},
}

func init() {
	rootCmd.AddCommand(PanelsCmd)
	PanelsCmd.Flags().String("naca", "", "NACA 4-digit code of the section")
	PanelsCmd.Flags().StringP("file", "F", "", "Selig coordinate file of the section")
	PanelsCmd.Flags().IntP(CfgResolution, "n", 100, "number of chord stations per surface for NACA sections")
	PanelsCmd.Flags().IntP(CfgPanels, "p", 40, "number of panels")
	PanelsCmd.Flags().String(CfgVertical, "entry", "vertical boundary segments: entry uses the entry point, error fails")
	PanelsCmd.Flags().String("csv", "", "write the panels to this CSV file")
	PanelsCmd.Flags().String("yaml", "", "write the panels to this YAML file")
	PanelsCmd.Flags().String("plot", "", "render the panels over the airfoil to this PNG file")
}

func loadAirfoil(naca, file string, resolution int, verbose bool) (af *airfoil.Airfoil, err error) {
	switch {
	case len(naca) != 0 && len(file) != 0:
		err = fmt.Errorf("--naca and --file are exclusive")
	case len(naca) != 0:
		af, err = airfoil.GenerateNACA4(naca, resolution)
	case len(file) != 0:
		af, err = airfoil.FromFile(file, verbose)
	default:
		err = fmt.Errorf("must supply a section, either --naca code or --file coordinates.dat")
	}
	return
}

func RunPanels(pr *PanelsRun) (set panels.Set, err error) {
	var (
		af *airfoil.Airfoil
	)
	if af, err = loadAirfoil(pr.NACA, pr.File, pr.Resolution, pr.Verbose); err != nil {
		return
	}
	if pr.Verbose {
		af.Print()
	}
	if set, err = panels.DiscretizeWithPolicy(af.Boundary, pr.NumPanels, pr.Vertical); err != nil {
		return
	}
	if pr.Verbose {
		set.Print()
	}
	if len(pr.CSVFile)+len(pr.YAMLFile)+len(pr.PlotFile) == 0 {
		err = panels.WriteCSV(os.Stdout, set)
		return
	}
	if len(pr.CSVFile) != 0 {
		if err = writeTo(pr.CSVFile, func(f *os.File) error { return panels.WriteCSV(f, set) }); err != nil {
			return
		}
	}
	if len(pr.YAMLFile) != 0 {
		if err = writeTo(pr.YAMLFile, func(f *os.File) error { return panels.WriteYAML(f, af.Name, set) }); err != nil {
			return
		}
	}
	if len(pr.PlotFile) != 0 {
		if err = plotting.PlotPanels(af, set, pr.PlotFile, plotting.Options{}); err != nil {
			return
		}
	}
	return
}

func writeTo(filename string, write func(f *os.File) error) (err error) {
	var (
		f *os.File
	)
	if f, err = os.Create(filename); err != nil {
		return errors.Wrapf(err, "unable to create %s", filename)
	}
	defer f.Close()
	if err = write(f); err != nil {
		return errors.Wrapf(err, "unable to write %s", filename)
	}
	return f.Sync()
}
