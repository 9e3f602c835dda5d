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

// RayleighTransmittance models molecular (Rayleigh) scattering.
type RayleighTransmittance struct {
	State *AtmosphericState

	// Grid is the native wavelength grid; if nil, the reference table
	// grid is used.
	Grid *Grid
}

// NewRayleighTransmittance creates a Rayleigh scattering component for the
// given state on the reference wavelength grid.
func NewRayleighTransmittance(state *AtmosphericState) *RayleighTransmittance {
	return &RayleighTransmittance{State: state}
}

// Name returns the component name used in output files.
func (r *RayleighTransmittance) Name() string { return "rayleigh" }

func (r *RayleighTransmittance) grid() *Grid {
	if r.Grid != nil {
		return r.Grid
	}
	return DefaultAbsorptionTable().Grid()
}

// OpticalDepth returns the Rayleigh optical depth spectrum on the native
// grid, using the SMARTS rational fit in wavelength scaled by the surface
// pressure ratio and the Rayleigh airmass.
func (r *RayleighTransmittance) OpticalDepth() (*Spectrum, error) {
	if err := r.State.Check(); err != nil {
		return nil, err
	}
	am, err := RayleighAirmass(r.State.ZenithAngle)
	if err != nil {
		return nil, err
	}
	g := r.grid()
	pp0 := r.State.PressureRatio()
	tau := make([]float64, g.Len())
	for i, w := range g.wvl {
		um := w / 1000 // nm to μm
		um2 := um * um
		tau[i] = pp0 * am /
			(117.3405*um2*um2 - 1.5107*um2 + 0.017535 - 8.7743e-4/um2)
	}
	return &Spectrum{Grid: g, Values: tau}, nil
}

// Transmittance returns the Rayleigh transmittance spectrum on the
// native grid.
func (r *RayleighTransmittance) Transmittance() (*Spectrum, error) {
	tau, err := r.OpticalDepth()
	if err != nil {
		return nil, err
	}
	return tau.transmittance(), nil
}
