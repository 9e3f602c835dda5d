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

package skytrans

import (
	"math"
	"testing"
)

func validState() *AtmosphericState {
	return &AtmosphericState{
		ZenithAngle: 30,
		Pressure:    StandardPressure,
		Temperature: 15,
		Ozone:       300,
		PrecipWater: 1,
		AOD:         0.084,
		Angstrom:    0.6,
		CO2:         415,
	}
}

func TestStateCheck(t *testing.T) {
	if err := validState().Check(); err != nil {
		t.Fatal(err)
	}
	tests := []struct {
		field  string
		mutate func(*AtmosphericState)
	}{
		{"ZenithAngle", func(s *AtmosphericState) { s.ZenithAngle = 90 }},
		{"ZenithAngle", func(s *AtmosphericState) { s.ZenithAngle = -1 }},
		{"ZenithAngle", func(s *AtmosphericState) { s.ZenithAngle = math.NaN() }},
		{"Pressure", func(s *AtmosphericState) { s.Pressure = 0 }},
		{"Pressure", func(s *AtmosphericState) { s.Pressure = -100 }},
		{"Temperature", func(s *AtmosphericState) { s.Temperature = -300 }},
		{"Ozone", func(s *AtmosphericState) { s.Ozone = -1 }},
		{"PrecipWater", func(s *AtmosphericState) { s.PrecipWater = -0.1 }},
		{"AOD", func(s *AtmosphericState) { s.AOD = -0.01 }},
		{"Angstrom", func(s *AtmosphericState) { s.Angstrom = math.NaN() }},
		{"CO2", func(s *AtmosphericState) { s.CO2 = 0 }},
	}
	for _, test := range tests {
		s := validState()
		test.mutate(s)
		err := s.Check()
		if err == nil {
			t.Errorf("%s: expected error", test.field)
			continue
		}
		serr, ok := err.(*InvalidStateError)
		if !ok {
			t.Errorf("%s: error is %T; want *InvalidStateError", test.field, err)
			continue
		}
		if serr.Field != test.field {
			t.Errorf("error names field %s; want %s", serr.Field, test.field)
		}
	}
}

func TestStateRatios(t *testing.T) {
	s := validState()
	if different(s.PressureRatio(), 1, 1e-12) {
		t.Errorf("pressure ratio at standard pressure is %g", s.PressureRatio())
	}
	if different(s.TemperatureRatio(), 288.15/273.15, 1e-12) {
		t.Errorf("temperature ratio at 15 °C is %g", s.TemperatureRatio())
	}
	if different(s.CosZenith(), math.Sqrt(3)/2, 1e-12) {
		t.Errorf("cos of 30° zenith is %g", s.CosZenith())
	}
}

func TestStateUnits(t *testing.T) {
	s := validState()
	p := s.PressureUnits()
	if different(p.Value(), 101325, 1e-12) {
		t.Errorf("standard pressure is %g Pa; want 101325", p.Value())
	}
	temp := s.TemperatureUnits()
	if different(temp.Value(), 288.15, 1e-12) {
		t.Errorf("15 °C is %g K; want 288.15", temp.Value())
	}
}
