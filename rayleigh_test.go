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

func TestRayleighReference(t *testing.T) {
	state := validState()
	state.ZenithAngle = 0
	trans, err := NewRayleighTransmittance(state).Transmittance()
	if err != nil {
		t.Fatal(err)
	}
	got := trans.Values[wvlIndex(t, trans.Grid, 500)]
	if different(got, 0.8663473831602526, 1e-9) {
		t.Errorf("transmittance at 500 nm, vertical path: got %v", got)
	}
}

// Rayleigh scattering weakens rapidly with wavelength, so transmittance
// must increase monotonically across the grid.
func TestRayleighMonotonic(t *testing.T) {
	trans, err := NewRayleighTransmittance(validState()).Transmittance()
	if err != nil {
		t.Fatal(err)
	}
	for i := 1; i < len(trans.Values); i++ {
		if trans.Values[i] <= trans.Values[i-1] {
			t.Fatalf("transmittance at point %d (%g) is not above point %d (%g)",
				i, trans.Values[i], i-1, trans.Values[i-1])
		}
	}
	for i, v := range trans.Values {
		if !(v > 0 && v <= 1) {
			t.Fatalf("transmittance %g at point %d is outside (0, 1]", v, i)
		}
	}
}

// Rayleigh optical depth scales linearly with surface pressure.
func TestRayleighPressureScaling(t *testing.T) {
	sea := validState()
	alt := validState()
	alt.Pressure = StandardPressure / 2
	tauSea, err := (&RayleighTransmittance{State: sea}).OpticalDepth()
	if err != nil {
		t.Fatal(err)
	}
	tauAlt, err := (&RayleighTransmittance{State: alt}).OpticalDepth()
	if err != nil {
		t.Fatal(err)
	}
	for i := range tauSea.Values {
		if different(tauSea.Values[i]/tauAlt.Values[i], 2, 1e-12) {
			t.Fatalf("point %d: optical depth ratio %g; want 2",
				i, tauSea.Values[i]/tauAlt.Values[i])
		}
	}
}

func TestRayleighCustomGrid(t *testing.T) {
	g, err := UniformGrid(400, 700, 4)
	if err != nil {
		t.Fatal(err)
	}
	trans, err := (&RayleighTransmittance{State: validState(), Grid: g}).Transmittance()
	if err != nil {
		t.Fatal(err)
	}
	if !trans.Grid.Equal(g) {
		t.Error("component ignored the supplied grid")
	}
	if len(trans.Values) != 4 {
		t.Errorf("got %d values; want 4", len(trans.Values))
	}
}

func TestRayleighInvalidState(t *testing.T) {
	state := validState()
	state.Pressure = math.NaN()
	if _, err := NewRayleighTransmittance(state).Transmittance(); err == nil {
		t.Error("expected error for invalid state")
	}
}
