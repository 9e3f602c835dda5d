/*
Copyright © 2026 the skytrans authors.
This file is part of skytrans.

skytrans is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

skytrans is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with skytrans.  If not, see <http://www.gnu.org/licenses/>.
*/

// Package skytransutil provides the configuration and command-line
// interface for the skytrans spectral transmittance model.
package skytransutil

import (
	"context"
	"fmt"
	"strings"

	"github.com/lnashier/viper"
	"github.com/sirupsen/logrus"
	"github.com/spatialmodel/skytrans"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Cfg holds configuration information.
var Cfg *viper.Viper

var logger = logrus.StandardLogger()

var options []struct {
	name, usage, shorthand string
	defaultVal             interface{}
	flagsets               []*pflag.FlagSet
}

func init() {
	// Options are the configuration options available to skytrans.
	options = []struct {
		name, usage, shorthand string
		defaultVal             interface{}
		flagsets               []*pflag.FlagSet
	}{
		{
			name: "config",
			usage: `
              config specifies the configuration file location.`,
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
		{
			name: "scenario",
			usage: `
              scenario specifies the path to a TOML file describing the
              atmospheric state and wavelength grid. Command-line state
              options override values from the scenario file.`,
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{runCmd.PersistentFlags(), sweepCmd.PersistentFlags()},
		},
		{
			name: "State.ZenithAngle",
			usage: `
              State.ZenithAngle is the apparent solar zenith angle in
              degrees, at least 0 and below 90.`,
			defaultVal: 0.0,
			flagsets:   []*pflag.FlagSet{runCmd.PersistentFlags(), sweepCmd.PersistentFlags()},
		},
		{
			name: "State.Pressure",
			usage: `
              State.Pressure is the surface atmospheric pressure in mbar.`,
			defaultVal: skytrans.StandardPressure,
			flagsets:   []*pflag.FlagSet{runCmd.PersistentFlags(), sweepCmd.PersistentFlags()},
		},
		{
			name: "State.Temperature",
			usage: `
              State.Temperature is the surface air temperature in °C.`,
			defaultVal: 15.0,
			flagsets:   []*pflag.FlagSet{runCmd.PersistentFlags(), sweepCmd.PersistentFlags()},
		},
		{
			name: "State.Ozone",
			usage: `
              State.Ozone is the total ozone column in Dobson units.`,
			defaultVal: 300.0,
			flagsets:   []*pflag.FlagSet{runCmd.PersistentFlags(), sweepCmd.PersistentFlags()},
		},
		{
			name: "State.PrecipWater",
			usage: `
              State.PrecipWater is the total-column precipitable water
              vapor in cm.`,
			defaultVal: 1.0,
			flagsets:   []*pflag.FlagSet{runCmd.PersistentFlags(), sweepCmd.PersistentFlags()},
		},
		{
			name: "State.AOD",
			usage: `
              State.AOD is the aerosol optical depth at 500 nm.`,
			defaultVal: 0.084,
			flagsets:   []*pflag.FlagSet{runCmd.PersistentFlags(), sweepCmd.PersistentFlags()},
		},
		{
			name: "State.Angstrom",
			usage: `
              State.Angstrom is the Ångström wavelength exponent of
              aerosol optical depth.`,
			defaultVal: 0.6,
			flagsets:   []*pflag.FlagSet{runCmd.PersistentFlags(), sweepCmd.PersistentFlags()},
		},
		{
			name: "State.CO2",
			usage: `
              State.CO2 is the CO2 mixing ratio in ppm.`,
			defaultVal: 395.0,
			flagsets:   []*pflag.FlagSet{runCmd.PersistentFlags(), sweepCmd.PersistentFlags()},
		},
		{
			name: "State.WithTraceGases",
			usage: `
              State.WithTraceGases specifies whether the trace gases
              (NH3, NO2, SO2) are included in the uniformly-mixed-gas
              absorber group.`,
			defaultVal: true,
			flagsets:   []*pflag.FlagSet{runCmd.PersistentFlags(), sweepCmd.PersistentFlags()},
		},
		{
			name: "Grid.Lo",
			usage: `
              Grid.Lo is the shortest output wavelength in nm.`,
			defaultVal: 300.0,
			flagsets:   []*pflag.FlagSet{runCmd.PersistentFlags(), sweepCmd.PersistentFlags()},
		},
		{
			name: "Grid.Hi",
			usage: `
              Grid.Hi is the longest output wavelength in nm.`,
			defaultVal: 1100.0,
			flagsets:   []*pflag.FlagSet{runCmd.PersistentFlags(), sweepCmd.PersistentFlags()},
		},
		{
			name: "Grid.Points",
			usage: `
              Grid.Points is the number of evenly spaced output
              wavelengths.`,
			defaultVal: 101,
			flagsets:   []*pflag.FlagSet{runCmd.PersistentFlags(), sweepCmd.PersistentFlags()},
		},
		{
			name: "TableFile",
			usage: `
              TableFile is the path to a NetCDF absorption-coefficient
              table. If empty, the reference table shipped with skytrans
              is used.`,
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{runCmd.PersistentFlags(), sweepCmd.PersistentFlags()},
		},
		{
			name: "OutputFile",
			usage: `
              OutputFile is the path the delimited text results are
              written to.`,
			defaultVal: "skytrans_results.csv",
			flagsets:   []*pflag.FlagSet{runCmd.PersistentFlags()},
		},
		{
			name: "ArchiveFile",
			usage: `
              ArchiveFile is the path the NetCDF results archive is
              written to. If empty, no archive is written.`,
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{runCmd.PersistentFlags(), sweepCmd.PersistentFlags()},
		},
		{
			name: "sweep.values",
			usage: `
              sweep.values is the list of parameter values (Dobson units
              for ozone, cm for water) or gas names to sweep over.`,
			defaultVal: []string{},
			flagsets:   []*pflag.FlagSet{sweepCmd.PersistentFlags()},
		},
	}

	Cfg = viper.New()

	// Set the prefix for configuration environment variables.
	Cfg.SetEnvPrefix("SKYTRANS")

	for _, option := range options {
		for i, set := range option.flagsets {
			if i != 0 { // We don't want to create the same flag twice.
				set.AddFlag(option.flagsets[0].Lookup(option.name))
				continue
			}
			switch v := option.defaultVal.(type) {
			case string:
				if option.shorthand == "" {
					set.String(option.name, v, option.usage)
				} else {
					set.StringP(option.name, option.shorthand, v, option.usage)
				}
			case []string:
				if option.shorthand == "" {
					set.StringSlice(option.name, v, option.usage)
				} else {
					set.StringSliceP(option.name, option.shorthand, v, option.usage)
				}
			case bool:
				if option.shorthand == "" {
					set.Bool(option.name, v, option.usage)
				} else {
					set.BoolP(option.name, option.shorthand, v, option.usage)
				}
			case int:
				if option.shorthand == "" {
					set.Int(option.name, v, option.usage)
				} else {
					set.IntP(option.name, option.shorthand, v, option.usage)
				}
			case float64:
				if option.shorthand == "" {
					set.Float64(option.name, v, option.usage)
				} else {
					set.Float64P(option.name, option.shorthand, v, option.usage)
				}
			default:
				panic("invalid argument type")
			}
			Cfg.BindPFlag(option.name, set.Lookup(option.name))
		}
	}
}

func init() {
	// Link the commands together.
	Root.AddCommand(versionCmd)
	Root.AddCommand(runCmd)
	Root.AddCommand(sweepCmd)
	Root.AddCommand(compareCmd)
}

// setConfig finds and reads in the configuration file, if there is one.
func setConfig() error {
	if cfgpath := Cfg.GetString("config"); cfgpath != "" {
		Cfg.SetConfigFile(cfgpath)
		if err := Cfg.ReadInConfig(); err != nil {
			return fmt.Errorf("skytrans: problem reading configuration file: %v", err)
		}
	}
	return nil
}

// Root is the main command.
var Root = &cobra.Command{
	Use:   "skytrans",
	Short: "A clear-sky spectral atmospheric transmittance model.",
	Long: `skytrans calculates the fraction of light transmitted through the
atmosphere as a function of wavelength, decomposed into Rayleigh
scattering, ozone absorption, water-vapor absorption, aerosol extinction,
and uniformly-mixed-gas absorption.

Configuration can be changed by using a configuration file (and providing
the path to the file using the --config flag), by using command-line
arguments, or by setting environment variables in the format
'SKYTRANS_var' where 'var' is the name of the variable to be set.`,
	DisableAutoGenTag: true,
	PersistentPreRunE: func(*cobra.Command, []string) error { return setConfig() },
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Long:  "version prints the version number of this version of skytrans.",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Printf("skytrans v%s\n", skytrans.Version)
	},
	DisableAutoGenTag: true,
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Compute the total transmittance spectrum.",
	Long: `run computes all five component transmittance spectra and their
combined total for one atmospheric state and writes the results as
delimited text and, optionally, as a NetCDF archive.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		scenario, err := ScenarioFromConfig(Cfg)
		if err != nil {
			return err
		}
		return Run(context.Background(), scenario)
	},
	DisableAutoGenTag: true,
}

var sweepCmd = &cobra.Command{
	Use:   "sweep [ozone|water|gas]",
	Short: "Compute a sensitivity sweep for one component.",
	Long: `sweep computes a component transmittance spectrum across a swept
parameter: total ozone column amounts in Dobson units, precipitable water
amounts in cm, or a list of single gases from the uniformly-mixed-gas
group. The swept spectra are written to a NetCDF archive with one variable
per value.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		scenario, err := ScenarioFromConfig(Cfg)
		if err != nil {
			return err
		}
		return Sweep(strings.ToLower(args[0]), scenario, Cfg.GetStringSlice("sweep.values"))
	},
	DisableAutoGenTag: true,
}

var compareCmd = &cobra.Command{
	Use:   "compare results_a results_b",
	Short: "Compare two result files.",
	Long: `compare reads two delimited text result files and reports
per-component mean and maximum differences, band-average transmittances,
and a linear regression between the two total transmittance spectra.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		report, err := CompareFiles(args[0], args[1])
		if err != nil {
			return err
		}
		return report.Write(cmd.OutOrStdout())
	},
	DisableAutoGenTag: true,
}

// Run computes and writes results for one scenario.
func Run(ctx context.Context, scenario *Scenario) error {
	if ctx == nil {
		ctx = context.Background()
	}
	model, err := scenario.Model()
	if err != nil {
		return err
	}
	logger.WithFields(logrus.Fields{
		"zenith":   scenario.State.ZenithAngle,
		"pressure": scenario.State.Pressure,
	}).Info("computing transmittance")
	results, err := model.Run(ctx)
	if err != nil {
		return err
	}
	if err := writeTextFile(scenario.OutputFile, results); err != nil {
		return err
	}
	if scenario.ArchiveFile != "" {
		if err := writeArchiveFile(scenario.ArchiveFile, results.Archive()); err != nil {
			return err
		}
	}
	logger.WithField("output", scenario.OutputFile).Info("done")
	return nil
}

// Sweep computes and archives a sensitivity sweep. mode is one of
// "ozone", "water", or "gas".
func Sweep(mode string, scenario *Scenario, values []string) error {
	if scenario.ArchiveFile == "" {
		return fmt.Errorf("skytrans: sweep requires ArchiveFile to be set")
	}
	archive, err := scenario.sweep(mode, values)
	if err != nil {
		return err
	}
	logger.WithFields(logrus.Fields{
		"mode":   mode,
		"fields": len(archive.Fields),
	}).Info("sweep complete")
	return writeArchiveFile(scenario.ArchiveFile, archive)
}
