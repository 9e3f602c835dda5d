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

// More precipitable water absorbs more in the 940 nm band.
func TestWaterColumnSensitivity(t *testing.T) {
	prev := 2.
	for _, pw := range []float64{0.5, 1, 2, 4} {
		state := validState()
		state.PrecipWater = pw
		trans, err := NewWaterTransmittance(state).Transmittance()
		if err != nil {
			t.Fatal(err)
		}
		band := trans.Values[wvlIndex(t, trans.Grid, 940)]
		if !(band > 0 && band < 1) {
			t.Fatalf("transmittance at 940 nm with %g cm is %g", pw, band)
		}
		if !(band < prev) {
			t.Fatalf("transmittance at 940 nm with %g cm (%g) is not below %g",
				pw, band, prev)
		}
		prev = band
	}
}

// Water vapor does not absorb in the UV; the band corrections must not
// leak absorption into wavelengths with a zero baseline coefficient.
func TestWaterUVWindow(t *testing.T) {
	trans, err := NewWaterTransmittance(validState()).Transmittance()
	if err != nil {
		t.Fatal(err)
	}
	for _, w := range []float64{300, 350, 400, 450, 500} {
		v := trans.Values[wvlIndex(t, trans.Grid, w)]
		if v != 1 {
			t.Errorf("transmittance at %g nm is %g; want 1", w, v)
		}
	}
}

func TestWaterDryAtmosphere(t *testing.T) {
	state := validState()
	state.PrecipWater = 0
	trans, err := NewWaterTransmittance(state).Transmittance()
	if err != nil {
		t.Fatal(err)
	}
	for i, v := range trans.Values {
		if v != 1 {
			t.Fatalf("point %d: transmittance %g with no water; want 1", i, v)
		}
	}
}

// Band saturation: doubling the water amount must less than double the
// in-band optical depth.
func TestWaterSaturation(t *testing.T) {
	one := validState()
	one.PrecipWater = 1
	two := validState()
	two.PrecipWater = 2
	tau1, err := (&WaterTransmittance{State: one}).OpticalDepth()
	if err != nil {
		t.Fatal(err)
	}
	tau2, err := (&WaterTransmittance{State: two}).OpticalDepth()
	if err != nil {
		t.Fatal(err)
	}
	i := wvlIndex(t, tau1.Grid, 940)
	ratio := tau2.Values[i] / tau1.Values[i]
	if !(ratio > 1 && ratio < 2) {
		t.Errorf("doubling water scaled 940 nm depth by %g; want within (1, 2)", ratio)
	}
}

func TestWaterBandLookup(t *testing.T) {
	if b := bandAt(500); b != nil {
		t.Errorf("500 nm is outside all bands but matched [%g, %g)", b.lo, b.hi)
	}
	b := bandAt(940)
	if b == nil {
		t.Fatal("940 nm did not match a band")
	}
	if b.lo != 880 || b.hi != 1000 {
		t.Errorf("940 nm matched band [%g, %g); want [880, 1000)", b.lo, b.hi)
	}
	// Band limits are half-open; the upper limit belongs to the next band.
	if b := bandAt(1000); b == nil || b.lo != 1000 {
		t.Error("1000 nm should fall in the band starting at 1000")
	}
}
