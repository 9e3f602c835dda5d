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

// OzoneTransmittance models absorption by the total ozone column
// (Hartley-Huggins bands in the UV and the Chappuis band in the visible).
type OzoneTransmittance struct {
	State *AtmosphericState

	// Table supplies the O3 absorption coefficients; if nil, the
	// reference table is used.
	Table *AbsorptionTable
}

// NewOzoneTransmittance creates an ozone absorption component for the given
// state using the reference absorption table.
func NewOzoneTransmittance(state *AtmosphericState) *OzoneTransmittance {
	return &OzoneTransmittance{State: state}
}

// Name returns the component name used in output files.
func (o *OzoneTransmittance) Name() string { return "ozone" }

func (o *OzoneTransmittance) table() *AbsorptionTable {
	if o.Table != nil {
		return o.Table
	}
	return DefaultAbsorptionTable()
}

// OpticalDepth returns the ozone optical depth spectrum on the table's
// native grid.
func (o *OzoneTransmittance) OpticalDepth() (*Spectrum, error) {
	if err := o.State.Check(); err != nil {
		return nil, err
	}
	t := o.table()
	coeff, err := t.Coefficients(O3)
	if err != nil {
		return nil, err
	}
	abundance, err := Abundance(O3, o.State)
	if err != nil {
		return nil, err
	}
	am, err := Airmass(o.State.ZenithAngle, O3)
	if err != nil {
		return nil, err
	}
	tau := make([]float64, len(coeff))
	for i, k := range coeff {
		tau[i] = k * abundance * am
	}
	return &Spectrum{Grid: t.Grid(), Values: tau}, nil
}

// Transmittance returns the ozone transmittance spectrum on the table's
// native grid.
func (o *OzoneTransmittance) Transmittance() (*Spectrum, error) {
	tau, err := o.OpticalDepth()
	if err != nil {
		return nil, err
	}
	return tau.transmittance(), nil
}
