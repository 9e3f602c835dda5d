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

// UMGTransmittance models absorption by the uniformly mixed gases.
// The optical depth of the group is the sum over the selected species of
// coefficient × abundance × airmass, so the group depth decomposes
// additively: the depth for the full selection equals the sum of the
// single-species depths.
type UMGTransmittance struct {
	State *AtmosphericState

	// Table supplies the per-species absorption coefficients; if nil,
	// the reference table is used.
	Table *AbsorptionTable

	// Selection restricts the species summed over. If nil, all uniformly
	// mixed gases are included, plus the trace gases when
	// State.WithTraceGases is set. An explicit selection must consist of
	// uniformly mixed or trace gas species; trace gases in it are still
	// subject to State.WithTraceGases.
	Selection []Species
}

// NewUMGTransmittance creates a uniformly-mixed-gas absorption component
// for the given state, covering the default species set and using the
// reference absorption table.
func NewUMGTransmittance(state *AtmosphericState) *UMGTransmittance {
	return &UMGTransmittance{State: state}
}

// Name returns the component name used in output files.
func (u *UMGTransmittance) Name() string { return "umg" }

func (u *UMGTransmittance) table() *AbsorptionTable {
	if u.Table != nil {
		return u.Table
	}
	return DefaultAbsorptionTable()
}

// selection returns the species to sum over.
func (u *UMGTransmittance) selection() ([]Species, error) {
	sel := u.Selection
	if sel == nil {
		sel = append(sel, UMGSpecies...)
		sel = append(sel, TraceSpecies...)
	}
	out := make([]Species, 0, len(sel))
	for _, s := range sel {
		if s < 0 || s >= numSpecies || s == O3 || s == H2O {
			return nil, &UnknownSpeciesError{Name: s.String()}
		}
		if s.IsTrace() && !u.State.WithTraceGases {
			continue
		}
		out = append(out, s)
	}
	return out, nil
}

// OpticalDepth returns the summed optical depth spectrum of the selected
// species on the table's native grid.
func (u *UMGTransmittance) OpticalDepth() (*Spectrum, error) {
	if err := u.State.Check(); err != nil {
		return nil, err
	}
	sel, err := u.selection()
	if err != nil {
		return nil, err
	}
	t := u.table()
	g := t.Grid()
	tau := make([]float64, g.Len())
	for _, s := range sel {
		coeff, err := t.Coefficients(s)
		if err != nil {
			return nil, err
		}
		abundance, err := Abundance(s, u.State)
		if err != nil {
			return nil, err
		}
		am, err := Airmass(u.State.ZenithAngle, s)
		if err != nil {
			return nil, err
		}
		for i, k := range coeff {
			tau[i] += k * abundance * am
		}
	}
	return &Spectrum{Grid: g, Values: tau}, nil
}

// Transmittance returns the transmittance spectrum of the selected species
// on the table's native grid.
func (u *UMGTransmittance) Transmittance() (*Spectrum, error) {
	tau, err := u.OpticalDepth()
	if err != nil {
		return nil, err
	}
	return tau.transmittance(), nil
}
