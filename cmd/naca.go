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

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/notargets/gofoil/airfoil"
	"github.com/notargets/gofoil/plotting"
	"github.com/notargets/gofoil/readfiles"
)

type NacaRun struct {
	Code       string
	Resolution int
	Spacing    airfoil.SpacingType
	PlotFile   string
	DatFile    string
	Verbose    bool
}

// NacaCmd represents the naca command
var NacaCmd = &cobra.Command{
	Use:   "naca <code>",
	Short: "Generate a NACA 4-digit airfoil",
	Long: `
Generates the camber line, thickness distribution and both surfaces of a NACA 4-digit section
with a unit chord, optionally writing the boundary as a Selig file and rendering it as a PNG.

gofoil naca 2412 -n 100 --plot naca2412.png --dat naca2412.dat`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		nr := &NacaRun{
			Code:       args[0],
			Resolution: viper.GetInt(CfgResolution),
			Spacing:    airfoil.CosineSpacing,
			PlotFile:   viper.GetString("plot"),
			DatFile:    viper.GetString("dat"),
			Verbose:    viper.GetBool(CfgVerbose),
		}
		if viper.GetBool(CfgUniform) {
			nr.Spacing = airfoil.UniformSpacing
		}
		_, err = RunNaca(nr)
		return
	},
}

func init() {
	rootCmd.AddCommand(NacaCmd)
	NacaCmd.Flags().IntP(CfgResolution, "n", 100, "number of chord stations per surface")
	NacaCmd.Flags().Bool(CfgUniform, false, "uniform chord stations instead of cosine spacing")
	NacaCmd.Flags().String("plot", "", "render the airfoil to this PNG file")
	NacaCmd.Flags().String("dat", "", "write the boundary to this Selig coordinate file")
}

func RunNaca(nr *NacaRun) (af *airfoil.Airfoil, err error) {
	if af, err = airfoil.GenerateNACA4Spaced(nr.Code, nr.Resolution, nr.Spacing); err != nil {
		return
	}
	af.Print()
	if nr.Verbose {
		fmt.Printf("[%s]\t\t= Spacing\n", nr.Spacing.Print())
	}
	if len(nr.DatFile) != 0 {
		if err = readfiles.WriteSeligFile(nr.DatFile, af.Name, af.Boundary, nr.Verbose); err != nil {
			return
		}
	}
	if len(nr.PlotFile) != 0 {
		if err = plotting.PlotAirfoil(af, nr.PlotFile, plotting.Options{ChordLine: true}); err != nil {
			return
		}
		if nr.Verbose {
			fmt.Printf("Plotted %s to %s\n", af.Name, nr.PlotFile)
		}
	}
	return
}
