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

func TestAirmassVertical(t *testing.T) {
	// At zenith angle zero the slant path is the vertical path.
	for s := Species(0); s < numSpecies; s++ {
		am, err := Airmass(0, s)
		if err != nil {
			t.Fatal(err)
		}
		if different(am, 1, 1e-10) {
			t.Errorf("%v: airmass at zenith 0 is %g; want 1", s, am)
		}
	}
	for name, f := range map[string]func(float64) (float64, error){
		"rayleigh": RayleighAirmass, "aerosol": AerosolAirmass} {
		am, err := f(0)
		if err != nil {
			t.Fatal(err)
		}
		if different(am, 1, 1e-10) {
			t.Errorf("%s: airmass at zenith 0 is %g; want 1", name, am)
		}
	}
}

func TestAirmassMonotonic(t *testing.T) {
	for s := Species(0); s < numSpecies; s++ {
		prev := 0.
		for z := 0.; z < 90; z++ {
			am, err := Airmass(z, s)
			if err != nil {
				t.Fatal(err)
			}
			if am < 1 {
				t.Fatalf("%v: airmass at zenith %g is %g; want >= 1", s, z, am)
			}
			if am <= prev {
				t.Fatalf("%v: airmass at zenith %g is %g, not above %g",
					s, z, am, prev)
			}
			prev = am
		}
	}
}

func TestAirmassValues(t *testing.T) {
	const testTolerance = 1e-9
	ray, err := RayleighAirmass(60)
	if err != nil {
		t.Fatal(err)
	}
	if different(ray, 1.994865231596497, testTolerance) {
		t.Errorf("rayleigh airmass at 60°: got %v", ray)
	}
	o3, err := Airmass(60, O3)
	if err != nil {
		t.Fatal(err)
	}
	if different(o3, 1.9879217256754254, testTolerance) {
		t.Errorf("ozone airmass at 60°: got %v", o3)
	}
	h2o, err := Airmass(60, H2O)
	if err != nil {
		t.Fatal(err)
	}
	if different(h2o, 1.999211566250454, testTolerance) {
		t.Errorf("water airmass at 60°: got %v", h2o)
	}
}

// The O2-O2 collision complex has the same vertical profile as O2 and must
// use its slant-path fit.
func TestAirmassO4(t *testing.T) {
	for z := 0.; z < 90; z += 10 {
		o2, err := Airmass(z, O2)
		if err != nil {
			t.Fatal(err)
		}
		o4, err := Airmass(z, O4)
		if err != nil {
			t.Fatal(err)
		}
		if o2 != o4 {
			t.Errorf("zenith %g: O4 airmass %g != O2 airmass %g", z, o4, o2)
		}
	}
}

func TestAirmassDomain(t *testing.T) {
	for _, z := range []float64{90, 91, 180, -1, math.NaN()} {
		if _, err := Airmass(z, O2); err == nil {
			t.Errorf("expected error for zenith angle %g", z)
		} else if _, ok := err.(*InvalidStateError); !ok {
			t.Errorf("zenith %g: error is %T; want *InvalidStateError", z, err)
		}
		if _, err := RayleighAirmass(z); err == nil {
			t.Errorf("rayleigh: expected error for zenith angle %g", z)
		}
		if _, err := AerosolAirmass(z); err == nil {
			t.Errorf("aerosol: expected error for zenith angle %g", z)
		}
	}
	if _, err := Airmass(30, Species(99)); err == nil {
		t.Error("expected error for out-of-range species")
	}
}
