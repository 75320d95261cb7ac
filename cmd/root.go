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
	"strings"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/pkg/profile"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Configuration keys, shared by flags, the config file and GOFOIL_ environment variables
const (
	CfgVerbose    = "verbose"
	CfgProfile    = "profile"
	CfgResolution = "resolution"
	CfgPanels     = "panels"
	CfgUniform    = "uniform"
	CfgVertical   = "vertical"
	CfgParallel   = "np"
)

var (
	cfgFile  string
	profiler interface{ Stop() }
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "gofoil",
	Short: "Airfoil geometry and panel discretization",
	Long: `
Generates NACA 4-digit airfoils, reads Selig coordinate files and discretizes the section
boundary into panels with the circle method, ready for a source/vortex panel solver.

gofoil naca 2412 --plot naca2412.png
gofoil panels --naca 0012 -p 40 --csv panels.csv
gofoil batch -I runs.yaml`,
	SilenceUsage:      true,
	PersistentPreRunE: preRun,
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		stopProfiler()
	},
}

// stopProfiler flushes a running profile, cobra skips the post run hooks when a command fails
func stopProfiler() {
	if profiler != nil {
		profiler.Stop()
		profiler = nil
	}
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	stopProfiler()
	if err != nil {
		fmt.Printf("error: %s\n", err.Error())
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.gofoil.yaml)")
	rootCmd.PersistentFlags().BoolP(CfgVerbose, "v", false, "print progress and summaries")
	rootCmd.PersistentFlags().String(CfgProfile, "", "write a cpu or mem profile to the current directory")
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := homedir.Dir()
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		viper.AddConfigPath(home)
		viper.SetConfigName(".gofoil")
	}
	viper.SetEnvPrefix("GOFOIL")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
	if err := viper.ReadInConfig(); err == nil {
		if viper.GetBool(CfgVerbose) {
			fmt.Println("Using config file:", viper.ConfigFileUsed())
		}
	}
}

// preRun binds the flags of the command being run, so that flag values set on the command line
// take precedence over the config file and the environment
func preRun(cmd *cobra.Command, args []string) (err error) {
	if err = viper.BindPFlags(cmd.Flags()); err != nil {
		return
	}
	switch strings.ToLower(viper.GetString(CfgProfile)) {
	case "":
	case "cpu":
		profiler = profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook)
	case "mem":
		profiler = profile.Start(profile.MemProfile, profile.ProfilePath("."), profile.NoShutdownHook)
	default:
		err = fmt.Errorf("unknown profile [%s], choose cpu or mem", viper.GetString(CfgProfile))
	}
	return
}
