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

import "gonum.org/v1/gonum/floats"

// A Component independently turns its optical-depth or band model into a
// transmittance spectrum on its own native wavelength grid.
type Component interface {
	// Name identifies the component in output files.
	Name() string

	// Transmittance returns the component transmittance spectrum on the
	// component's native grid.
	Transmittance() (*Spectrum, error)
}

// Combine interpolates each component transmittance spectrum onto the
// target grid and multiplies them elementwise into a total transmittance
// spectrum. Outside a component's native wavelength range the component is
// clamped to its nearest endpoint value; no extrapolation is performed.
// A DomainError is returned if any component spectrum has fewer than two
// points.
func Combine(target *Grid, components ...*Spectrum) (*Spectrum, error) {
	total := make([]float64, target.Len())
	for i := range total {
		total[i] = 1
	}
	for _, c := range components {
		v, err := c.Grid.Interpolate(c.Values, target)
		if err != nil {
			return nil, err
		}
		floats.Mul(total, v)
	}
	return &Spectrum{Grid: target, Values: total}, nil
}
