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
	"testing"

	"github.com/spatialmodel/skytrans"
)

func TestReadScenario(t *testing.T) {
	s, err := ReadScenario("testdata/scenario.toml")
	if err != nil {
		t.Fatal(err)
	}
	if s.State.ZenithAngle != 48.2 {
		t.Errorf("ZenithAngle = %g; want 48.2", s.State.ZenithAngle)
	}
	if s.State.Pressure != 950 {
		t.Errorf("Pressure = %g; want 950", s.State.Pressure)
	}
	if s.State.Ozone != 340 {
		t.Errorf("Ozone = %g; want 340", s.State.Ozone)
	}
	if !s.State.WithTraceGases {
		t.Error("WithTraceGases = false; want true")
	}
	if s.Grid.Lo != 350 || s.Grid.Hi != 1050 || s.Grid.Points != 71 {
		t.Errorf("Grid = %+v", s.Grid)
	}
	if s.OutputFile != "skytrans_results.csv" {
		t.Errorf("OutputFile = %q", s.OutputFile)
	}
}

func TestReadScenarioMissing(t *testing.T) {
	if _, err := ReadScenario("testdata/no_such_file.toml"); err == nil {
		t.Error("expected error for missing scenario file")
	}
}

func TestScenarioFromConfig(t *testing.T) {
	Cfg.Set("scenario", "testdata/scenario.toml")
	Cfg.Set("OutputFile", "skytrans_results.csv")
	// An explicitly set value overrides the scenario file; unchanged
	// flag defaults do not.
	Cfg.Set("State.Ozone", 350.0)

	s, err := ScenarioFromConfig(Cfg)
	if err != nil {
		t.Fatal(err)
	}
	if s.State.Ozone != 350 {
		t.Errorf("Ozone = %g; want the overriding 350", s.State.Ozone)
	}
	if s.State.ZenithAngle != 48.2 {
		t.Errorf("ZenithAngle = %g; want 48.2 from the scenario file",
			s.State.ZenithAngle)
	}
	if s.State.Pressure != 950 {
		t.Errorf("Pressure = %g; want 950 from the scenario file", s.State.Pressure)
	}
	if s.Grid.Points != 71 {
		t.Errorf("Grid.Points = %d; want 71 from the scenario file", s.Grid.Points)
	}

	m, err := s.Model()
	if err != nil {
		t.Fatal(err)
	}
	if m.TargetGrid == nil || m.TargetGrid.Len() != 71 {
		t.Error("model target grid does not follow the scenario grid")
	}
	if m.Table != skytrans.DefaultAbsorptionTable() {
		t.Error("model does not fall back to the reference table")
	}
}

func TestScenarioFromConfigInvalid(t *testing.T) {
	Cfg.Set("scenario", "testdata/scenario.toml")
	Cfg.Set("State.Ozone", -10.0)
	defer Cfg.Set("State.Ozone", 350.0)
	if _, err := ScenarioFromConfig(Cfg); err == nil {
		t.Error("expected error for a negative ozone column")
	}
}

func TestCheckOutputFile(t *testing.T) {
	if err := checkOutputFile(""); err != nil {
		t.Errorf("empty output file should be allowed: %v", err)
	}
	if err := checkOutputFile("testdata/out.csv"); err != nil {
		t.Errorf("existing directory rejected: %v", err)
	}
	if err := checkOutputFile("testdata/no_such_dir/out.csv"); err == nil {
		t.Error("expected error for a missing output directory")
	}
}

func TestScenarioTargetGrid(t *testing.T) {
	s := new(Scenario)
	g, err := s.targetGrid()
	if err != nil {
		t.Fatal(err)
	}
	if g != nil {
		t.Error("zero grid points should select the native table grid")
	}
	s.Grid = GridConfig{Lo: 300, Hi: 1100, Points: 101}
	g, err = s.targetGrid()
	if err != nil {
		t.Fatal(err)
	}
	if g.Len() != 101 || g.Min() != 300 || g.Max() != 1100 {
		t.Errorf("got %d points on [%g, %g]", g.Len(), g.Min(), g.Max())
	}
}

func TestScenarioSweepDispatch(t *testing.T) {
	s := &Scenario{State: skytrans.AtmosphericState{
		ZenithAngle: 30, Pressure: skytrans.StandardPressure, Temperature: 15,
		Ozone: 300, PrecipWater: 1, AOD: 0.084, Angstrom: 0.6, CO2: 395,
	}}
	a, err := s.sweep("ozone", []string{"250", "350"})
	if err != nil {
		t.Fatal(err)
	}
	if len(a.Fields) != 2 {
		t.Errorf("ozone sweep produced %d fields; want 2", len(a.Fields))
	}
	a, err = s.sweep("gas", []string{"O2", "co2"})
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := a.Fields["CO2_transmission"]; !ok {
		t.Error("gas sweep is missing CO2_transmission")
	}
	if _, err := s.sweep("ozone", []string{"abc"}); err == nil {
		t.Error("expected error for a non-numeric sweep value")
	}
	if _, err := s.sweep("gas", []string{"Ar"}); err == nil {
		t.Error("expected error for an unknown gas")
	}
	if _, err := s.sweep("pressure", []string{"900"}); err == nil {
		t.Error("expected error for an unknown sweep mode")
	}
}
