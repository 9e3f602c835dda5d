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

func TestCombineIdentity(t *testing.T) {
	g, err := NewGrid([]float64{400, 500, 600})
	if err != nil {
		t.Fatal(err)
	}
	s := &Spectrum{Grid: g, Values: []float64{0.9, 0.8, 0.7}}
	total, err := Combine(g, s)
	if err != nil {
		t.Fatal(err)
	}
	for i := range s.Values {
		if total.Values[i] != s.Values[i] {
			t.Errorf("point %d: got %g; want %g", i, total.Values[i], s.Values[i])
		}
	}

	empty, err := Combine(g)
	if err != nil {
		t.Fatal(err)
	}
	for i, v := range empty.Values {
		if v != 1 {
			t.Errorf("point %d: empty product is %g; want 1", i, v)
		}
	}
}

func TestCombineProduct(t *testing.T) {
	g, err := NewGrid([]float64{400, 500, 600})
	if err != nil {
		t.Fatal(err)
	}
	a := &Spectrum{Grid: g, Values: []float64{0.9, 0.8, 0.7}}
	b := &Spectrum{Grid: g, Values: []float64{0.5, 1.0, 0.2}}
	total, err := Combine(g, a, b)
	if err != nil {
		t.Fatal(err)
	}
	want := []float64{0.45, 0.8, 0.14}
	for i := range want {
		if absDifferent(total.Values[i], want[i], 1e-14) {
			t.Errorf("point %d: got %g; want %g", i, total.Values[i], want[i])
		}
		// Transmittances never exceed one, so the total cannot exceed
		// any component.
		if total.Values[i] > a.Values[i] || total.Values[i] > b.Values[i] {
			t.Errorf("point %d: total %g above a component", i, total.Values[i])
		}
	}
}

// Components on different native grids are reconciled by interpolation,
// with endpoint clamping beyond their range.
func TestCombineMixedGrids(t *testing.T) {
	coarse, err := NewGrid([]float64{400, 600})
	if err != nil {
		t.Fatal(err)
	}
	fine, err := NewGrid([]float64{300, 400, 500, 600, 700})
	if err != nil {
		t.Fatal(err)
	}
	a := &Spectrum{Grid: coarse, Values: []float64{0.4, 0.8}}
	b := &Spectrum{Grid: fine, Values: []float64{1, 1, 1, 1, 1}}
	total, err := Combine(fine, a, b)
	if err != nil {
		t.Fatal(err)
	}
	want := []float64{0.4, 0.4, 0.6, 0.8, 0.8}
	for i := range want {
		if absDifferent(total.Values[i], want[i], 1e-14) {
			t.Errorf("point %d: got %g; want %g", i, total.Values[i], want[i])
		}
	}
}

func TestCombineError(t *testing.T) {
	one, err := NewGrid([]float64{500})
	if err != nil {
		t.Fatal(err)
	}
	target, err := NewGrid([]float64{400, 600})
	if err != nil {
		t.Fatal(err)
	}
	s := &Spectrum{Grid: one, Values: []float64{0.5}}
	if _, err := Combine(target, s); err == nil {
		t.Error("expected error combining a 1-point component spectrum")
	}
}
