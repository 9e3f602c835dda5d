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

import "testing"

// Column abundances at standard pressure. The expected values are fixed
// reference numbers; a change in any of them means the empirical fits
// changed.
func TestAbundanceStandardPressure(t *testing.T) {
	const testTolerance = 1e-9
	state := &AtmosphericState{
		Pressure:    StandardPressure,
		Temperature: 15,
		Ozone:       300,
		PrecipWater: 1.5,
		CO2:         415,
	}
	tests := []struct {
		s    Species
		want float64
	}{
		{O2, 1.67766e5},
		{CH4, 1.3255},
		{CO, 0.08859307483733064},
		{N2O, 0.24730},
		{CO2, 333.114275}, // 0.802685 × 415 ppm
		{N2, 3.8269},
		{O4, 1.2878423883924164e43},
		{NH3, 0.00017514436171813758},
		{NO2, 0.00020444300000000003},
		{SO2, 0.00011003556929451169},
		{O3, 0.3}, // 300 DU in atm-cm
		{H2O, 1.5},
	}
	for _, test := range tests {
		got, err := Abundance(test.s, state)
		if err != nil {
			t.Fatal(err)
		}
		if different(got, test.want, testTolerance) {
			t.Errorf("%v: got %v; want %v", test.s, got, test.want)
		}
	}
}

func TestAbundancePressureScaling(t *testing.T) {
	sea := &AtmosphericState{Pressure: StandardPressure, Temperature: 15,
		CO2: 415}
	alt := &AtmosphericState{Pressure: StandardPressure / 2, Temperature: 15,
		CO2: 415}
	// O2 and CO2 columns scale linearly with surface pressure.
	for _, s := range []Species{O2, CO2} {
		lo, err := Abundance(s, alt)
		if err != nil {
			t.Fatal(err)
		}
		hi, err := Abundance(s, sea)
		if err != nil {
			t.Fatal(err)
		}
		if different(hi/lo, 2, 1e-12) {
			t.Errorf("%v: sea/altitude ratio is %g; want 2", s, hi/lo)
		}
	}
	// Every abundance shrinks when pressure drops.
	for s := Species(0); s < numSpecies; s++ {
		if s == O3 || s == H2O {
			continue // taken directly from the state
		}
		lo, err := Abundance(s, alt)
		if err != nil {
			t.Fatal(err)
		}
		hi, err := Abundance(s, sea)
		if err != nil {
			t.Fatal(err)
		}
		if lo >= hi {
			t.Errorf("%v: abundance %g at half pressure is not below %g", s, lo, hi)
		}
	}
}

func TestAbundanceUnknownSpecies(t *testing.T) {
	state := &AtmosphericState{Pressure: StandardPressure, Temperature: 15, CO2: 400}
	if _, err := Abundance(Species(99), state); err == nil {
		t.Error("expected error for unknown species")
	} else if _, ok := err.(*UnknownSpeciesError); !ok {
		t.Errorf("error is %T; want *UnknownSpeciesError", err)
	}
}
