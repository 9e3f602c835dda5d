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
	"sort"

	"gonum.org/v1/gonum/floats"
)

// Grid is an ordered sequence of wavelengths [nm] over which spectra are
// evaluated. Wavelengths are strictly increasing and finite, and the
// sequence is fixed once constructed. Different components may use
// different grids; Combine reconciles them by linear interpolation.
type Grid struct {
	wvl []float64
}

// NewGrid creates a wavelength grid from the given wavelengths [nm],
// copying the input. It returns a DomainError if the sequence is empty,
// contains non-finite values, or is not strictly increasing.
func NewGrid(wavelengths []float64) (*Grid, error) {
	if len(wavelengths) == 0 {
		return nil, &DomainError{Reason: "empty wavelength grid"}
	}
	w := make([]float64, len(wavelengths))
	copy(w, wavelengths)
	for i, v := range w {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, &DomainError{Reason: "wavelength grid contains a non-finite value"}
		}
		if i > 0 && v <= w[i-1] {
			return nil, &DomainError{Reason: "wavelength grid is not strictly increasing"}
		}
	}
	return &Grid{wvl: w}, nil
}

// UniformGrid creates a grid of n evenly spaced wavelengths spanning
// [lo, hi] nm inclusive.
func UniformGrid(lo, hi float64, n int) (*Grid, error) {
	if n < 2 {
		return nil, &DomainError{Reason: "uniform grid needs at least 2 points"}
	}
	if !(lo < hi) {
		return nil, &DomainError{Reason: "uniform grid bounds are not increasing"}
	}
	return NewGrid(floats.Span(make([]float64, n), lo, hi))
}

// Len returns the number of wavelengths in the grid.
func (g *Grid) Len() int { return len(g.wvl) }

// Wavelengths returns a copy of the grid wavelengths [nm].
func (g *Grid) Wavelengths() []float64 {
	w := make([]float64, len(g.wvl))
	copy(w, g.wvl)
	return w
}

// Min and Max return the grid endpoints [nm].
func (g *Grid) Min() float64 { return g.wvl[0] }
func (g *Grid) Max() float64 { return g.wvl[len(g.wvl)-1] }

// Equal reports whether g and o hold exactly the same wavelengths.
func (g *Grid) Equal(o *Grid) bool {
	if g.Len() != o.Len() {
		return false
	}
	for i, v := range g.wvl {
		if o.wvl[i] != v {
			return false
		}
	}
	return true
}

// Interpolate linearly interpolates values, which must be aligned with g,
// onto the target grid. Outside of the native wavelength range the result
// is clamped to the nearest endpoint value; no extrapolation is performed.
// A DomainError is returned if g has fewer than 2 points or values is not
// aligned with g.
func (g *Grid) Interpolate(values []float64, target *Grid) ([]float64, error) {
	if g.Len() < 2 {
		return nil, &DomainError{Reason: "interpolation requires at least 2 native grid points"}
	}
	if len(values) != g.Len() {
		return nil, &DomainError{Reason: "spectrum is not aligned with its wavelength grid"}
	}
	out := make([]float64, target.Len())
	for i, x := range target.wvl {
		switch {
		case x <= g.wvl[0]:
			out[i] = values[0]
		case x >= g.wvl[len(g.wvl)-1]:
			out[i] = values[len(values)-1]
		default:
			// j is the first native point at or beyond x.
			j := sort.SearchFloat64s(g.wvl, x)
			if g.wvl[j] == x {
				out[i] = values[j]
				continue
			}
			x0, x1 := g.wvl[j-1], g.wvl[j]
			y0, y1 := values[j-1], values[j]
			out[i] = y0 + (y1-y0)*(x-x0)/(x1-x0)
		}
	}
	return out, nil
}

// Spectrum is an array of per-wavelength values (optical depth or
// transmittance) aligned with a wavelength grid.
type Spectrum struct {
	Grid   *Grid
	Values []float64
}

// transmittance converts an optical depth spectrum to transmittance
// via the Beer-Lambert law, elementwise.
func (s *Spectrum) transmittance() *Spectrum {
	t := make([]float64, len(s.Values))
	for i, tau := range s.Values {
		t[i] = math.Exp(-tau)
	}
	return &Spectrum{Grid: s.Grid, Values: t}
}
