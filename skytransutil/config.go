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

package skytransutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/BurntSushi/toml"
	"github.com/lnashier/viper"
	"github.com/spatialmodel/skytrans"
)

// GridConfig describes the evenly spaced output wavelength grid.
type GridConfig struct {
	// Lo and Hi are the shortest and longest output wavelengths [nm].
	Lo, Hi float64

	// Points is the number of grid points.
	Points int
}

// Scenario holds the configuration of one model run.
type Scenario struct {
	// State is the atmospheric state to compute transmittance for.
	State skytrans.AtmosphericState

	// Grid is the output wavelength grid.
	Grid GridConfig

	// TableFile is the path to a NetCDF absorption-coefficient table;
	// if empty the reference table is used.
	TableFile string

	// OutputFile is the path the delimited text results are written to.
	OutputFile string

	// ArchiveFile is the path the NetCDF archive is written to;
	// if empty no archive is written.
	ArchiveFile string
}

// ReadScenario reads a scenario from the TOML file at path.
func ReadScenario(path string) (*Scenario, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("skytrans: opening scenario file: %v", err)
	}
	defer f.Close()
	s := new(Scenario)
	if _, err := toml.DecodeReader(f, s); err != nil {
		return nil, fmt.Errorf("skytrans: reading scenario file %s: %v", path, err)
	}
	return s, nil
}

// ScenarioFromConfig builds a scenario from the configuration. If a
// scenario file is specified its values are seeded as configuration
// defaults, so explicitly set configuration values and changed
// command-line flags override the file, but unchanged flag defaults
// do not.
func ScenarioFromConfig(cfg *viper.Viper) (*Scenario, error) {
	if path := cfg.GetString("scenario"); path != "" {
		file, err := ReadScenario(os.ExpandEnv(path))
		if err != nil {
			return nil, err
		}
		cfg.SetDefault("State.ZenithAngle", file.State.ZenithAngle)
		cfg.SetDefault("State.Pressure", file.State.Pressure)
		cfg.SetDefault("State.Temperature", file.State.Temperature)
		cfg.SetDefault("State.Ozone", file.State.Ozone)
		cfg.SetDefault("State.PrecipWater", file.State.PrecipWater)
		cfg.SetDefault("State.AOD", file.State.AOD)
		cfg.SetDefault("State.Angstrom", file.State.Angstrom)
		cfg.SetDefault("State.CO2", file.State.CO2)
		cfg.SetDefault("State.WithTraceGases", file.State.WithTraceGases)
		cfg.SetDefault("Grid.Lo", file.Grid.Lo)
		cfg.SetDefault("Grid.Hi", file.Grid.Hi)
		cfg.SetDefault("Grid.Points", file.Grid.Points)
		if file.TableFile != "" {
			cfg.SetDefault("TableFile", file.TableFile)
		}
		if file.OutputFile != "" {
			cfg.SetDefault("OutputFile", file.OutputFile)
		}
		if file.ArchiveFile != "" {
			cfg.SetDefault("ArchiveFile", file.ArchiveFile)
		}
	}
	s := &Scenario{
		State: skytrans.AtmosphericState{
			ZenithAngle:    cfg.GetFloat64("State.ZenithAngle"),
			Pressure:       cfg.GetFloat64("State.Pressure"),
			Temperature:    cfg.GetFloat64("State.Temperature"),
			Ozone:          cfg.GetFloat64("State.Ozone"),
			PrecipWater:    cfg.GetFloat64("State.PrecipWater"),
			AOD:            cfg.GetFloat64("State.AOD"),
			Angstrom:       cfg.GetFloat64("State.Angstrom"),
			CO2:            cfg.GetFloat64("State.CO2"),
			WithTraceGases: cfg.GetBool("State.WithTraceGases"),
		},
		Grid: GridConfig{
			Lo:     cfg.GetFloat64("Grid.Lo"),
			Hi:     cfg.GetFloat64("Grid.Hi"),
			Points: cfg.GetInt("Grid.Points"),
		},
		TableFile:   os.ExpandEnv(cfg.GetString("TableFile")),
		OutputFile:  os.ExpandEnv(cfg.GetString("OutputFile")),
		ArchiveFile: os.ExpandEnv(cfg.GetString("ArchiveFile")),
	}
	if err := s.State.Check(); err != nil {
		return nil, err
	}
	if err := checkOutputFile(s.OutputFile); err != nil {
		return nil, err
	}
	return s, nil
}

// checkOutputFile makes sure the directory an output file would be
// written to exists.
func checkOutputFile(f string) error {
	if f == "" {
		return nil
	}
	d := filepath.Dir(f)
	if _, err := os.Stat(d); err != nil {
		return fmt.Errorf("skytrans: output directory %s does not exist", d)
	}
	return nil
}

// table loads the scenario absorption table, falling back to the
// reference table.
func (s *Scenario) table() (*skytrans.AbsorptionTable, error) {
	if s.TableFile == "" {
		return skytrans.DefaultAbsorptionTable(), nil
	}
	f, err := os.Open(s.TableFile)
	if err != nil {
		return nil, fmt.Errorf("skytrans: opening absorption table %s: %v", s.TableFile, err)
	}
	defer f.Close()
	return skytrans.ReadAbsorptionTable(f)
}

// targetGrid builds the output wavelength grid, or returns nil to use the
// table's native grid.
func (s *Scenario) targetGrid() (*skytrans.Grid, error) {
	if s.Grid.Points == 0 {
		return nil, nil
	}
	return skytrans.UniformGrid(s.Grid.Lo, s.Grid.Hi, s.Grid.Points)
}

// Model builds a transmittance model from the scenario.
func (s *Scenario) Model() (*skytrans.Model, error) {
	table, err := s.table()
	if err != nil {
		return nil, err
	}
	grid, err := s.targetGrid()
	if err != nil {
		return nil, err
	}
	return &skytrans.Model{
		State:      &s.State,
		Table:      table,
		TargetGrid: grid,
	}, nil
}

// sweep runs the sweep of the given mode over the given parameter values.
func (s *Scenario) sweep(mode string, values []string) (*skytrans.Archive, error) {
	switch mode {
	case "ozone", "water":
		amounts := make([]float64, len(values))
		for i, v := range values {
			var err error
			amounts[i], err = strconv.ParseFloat(v, 64)
			if err != nil {
				return nil, fmt.Errorf("skytrans: sweep value %q: %v", v, err)
			}
		}
		if mode == "ozone" {
			return skytrans.OzoneSweep(&s.State, amounts)
		}
		return skytrans.WaterSweep(&s.State, amounts)
	case "gas":
		gases := make([]skytrans.Species, len(values))
		for i, v := range values {
			var err error
			gases[i], err = skytrans.ParseSpecies(v)
			if err != nil {
				return nil, err
			}
		}
		return skytrans.GasSweep(&s.State, gases)
	}
	return nil, fmt.Errorf("skytrans: unknown sweep mode %q; want ozone, water, or gas", mode)
}

// writeTextFile writes results to path as delimited text.
func writeTextFile(path string, r *skytrans.Results) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("skytrans: creating results file: %v", err)
	}
	defer f.Close()
	return r.WriteText(f)
}

// writeArchiveFile writes an archive to path in NetCDF format.
func writeArchiveFile(path string, a *skytrans.Archive) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("skytrans: creating archive file: %v", err)
	}
	defer f.Close()
	return a.WriteCDF(f)
}
