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

// At the 500 nm reference wavelength the vertical aerosol optical depth is
// the state AOD itself.
func TestAerosolReferenceWavelength(t *testing.T) {
	state := validState()
	state.ZenithAngle = 0
	tau, err := (&AerosolTransmittance{State: state}).OpticalDepth()
	if err != nil {
		t.Fatal(err)
	}
	got := tau.Values[wvlIndex(t, tau.Grid, 500)]
	if different(got, state.AOD, 1e-12) {
		t.Errorf("optical depth at 500 nm: got %v; want %v", got, state.AOD)
	}
}

// The Ångström law fixes the ratio of optical depths at two wavelengths to
// a power of the wavelength ratio, independent of the airmass.
func TestAerosolAngstromLaw(t *testing.T) {
	state := validState()
	tau, err := (&AerosolTransmittance{State: state}).OpticalDepth()
	if err != nil {
		t.Fatal(err)
	}
	t500 := tau.Values[wvlIndex(t, tau.Grid, 500)]
	t1000 := tau.Values[wvlIndex(t, tau.Grid, 1000)]
	want := math.Pow(2, -state.Angstrom)
	if different(t1000/t500, want, 1e-12) {
		t.Errorf("depth ratio 1000/500 nm: got %v; want %v", t1000/t500, want)
	}
}

// A positive Ångström exponent means smaller particles and stronger
// short-wavelength extinction.
func TestAerosolMonotonic(t *testing.T) {
	trans, err := NewAerosolTransmittance(validState()).Transmittance()
	if err != nil {
		t.Fatal(err)
	}
	for i := 1; i < len(trans.Values); i++ {
		if trans.Values[i] <= trans.Values[i-1] {
			t.Fatalf("transmittance at point %d (%g) is not above point %d (%g)",
				i, trans.Values[i], i-1, trans.Values[i-1])
		}
	}
}

func TestAerosolClearSky(t *testing.T) {
	state := validState()
	state.AOD = 0
	trans, err := NewAerosolTransmittance(state).Transmittance()
	if err != nil {
		t.Fatal(err)
	}
	for i, v := range trans.Values {
		if v != 1 {
			t.Fatalf("point %d: transmittance %g with no aerosol; want 1", i, v)
		}
	}
}
