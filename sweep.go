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
	"fmt"
	"strings"
)

// OzoneSweep computes the ozone transmittance spectrum for each of the
// given total column amounts [Dobson units], holding the rest of the state
// fixed. The returned archive has one field per amount, named
// "uo_<DU>_transmission".
func OzoneSweep(state *AtmosphericState, amounts []float64) (*Archive, error) {
	var a *Archive
	for _, uo := range amounts {
		s := *state
		s.Ozone = uo
		trans, err := (&OzoneTransmittance{State: &s}).Transmittance()
		if err != nil {
			return nil, err
		}
		if a == nil {
			a = NewArchive(trans.Grid)
		}
		name := fmt.Sprintf("uo_%.0f_transmission", uo)
		if err := a.Add(name, trans.Values); err != nil {
			return nil, err
		}
	}
	if a == nil {
		return nil, &DomainError{Reason: "ozone sweep needs at least one column amount"}
	}
	return a, nil
}

// WaterSweep computes the water-vapor transmittance spectrum for each of
// the given precipitable water amounts [cm], holding the rest of the state
// fixed. The returned archive has one field per amount, named
// "pw_<cm>_transmission" with the decimal point replaced by an underscore.
func WaterSweep(state *AtmosphericState, amounts []float64) (*Archive, error) {
	var a *Archive
	for _, pw := range amounts {
		s := *state
		s.PrecipWater = pw
		trans, err := (&WaterTransmittance{State: &s}).Transmittance()
		if err != nil {
			return nil, err
		}
		if a == nil {
			a = NewArchive(trans.Grid)
		}
		name := fmt.Sprintf("pw_%.1f_transmission", pw)
		name = strings.Replace(name, ".", "_", -1)
		if err := a.Add(name, trans.Values); err != nil {
			return nil, err
		}
	}
	if a == nil {
		return nil, &DomainError{Reason: "water sweep needs at least one amount"}
	}
	return a, nil
}

// GasSweep computes the single-species transmittance spectrum for each of
// the given uniformly mixed or trace gas species. The returned archive has
// one field per species, named "<species>_transmission". Because the
// uniformly-mixed-gas optical depth is additive over species, the product
// of the swept spectra for the full species set equals the group
// transmittance.
func GasSweep(state *AtmosphericState, gases []Species) (*Archive, error) {
	if len(gases) == 0 {
		return nil, &DomainError{Reason: "gas sweep needs at least one species"}
	}
	var a *Archive
	for _, gas := range gases {
		trans, err := (&UMGTransmittance{
			State:     state,
			Selection: []Species{gas},
		}).Transmittance()
		if err != nil {
			return nil, err
		}
		if a == nil {
			a = NewArchive(trans.Grid)
		}
		name := fmt.Sprintf("%v_transmission", gas)
		if err := a.Add(name, trans.Values); err != nil {
			return nil, err
		}
	}
	return a, nil
}
