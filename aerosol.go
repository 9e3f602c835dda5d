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

import "math"

// AerosolTransmittance models aerosol extinction following the Ångström
// power law: optical depth at wavelength λ is the 500 nm optical depth
// times (λ/500)^−α.
type AerosolTransmittance struct {
	State *AtmosphericState

	// Grid is the native wavelength grid; if nil, the reference table
	// grid is used.
	Grid *Grid
}

// NewAerosolTransmittance creates an aerosol extinction component for the
// given state on the reference wavelength grid.
func NewAerosolTransmittance(state *AtmosphericState) *AerosolTransmittance {
	return &AerosolTransmittance{State: state}
}

// Name returns the component name used in output files.
func (a *AerosolTransmittance) Name() string { return "aerosol" }

func (a *AerosolTransmittance) grid() *Grid {
	if a.Grid != nil {
		return a.Grid
	}
	return DefaultAbsorptionTable().Grid()
}

// OpticalDepth returns the aerosol optical depth spectrum on the
// native grid.
func (a *AerosolTransmittance) OpticalDepth() (*Spectrum, error) {
	if err := a.State.Check(); err != nil {
		return nil, err
	}
	am, err := AerosolAirmass(a.State.ZenithAngle)
	if err != nil {
		return nil, err
	}
	g := a.grid()
	tau := make([]float64, g.Len())
	for i, w := range g.wvl {
		tau[i] = a.State.AOD * math.Pow(w/aerosolReferenceWvl, -a.State.Angstrom) * am
	}
	return &Spectrum{Grid: g, Values: tau}, nil
}

// Transmittance returns the aerosol transmittance spectrum on the
// native grid.
func (a *AerosolTransmittance) Transmittance() (*Spectrum, error) {
	tau, err := a.OpticalDepth()
	if err != nil {
		return nil, err
	}
	return tau.transmittance(), nil
}
