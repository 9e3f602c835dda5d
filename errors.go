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

import "fmt"

// InvalidStateError indicates that a field of an AtmosphericState is
// outside of its physical domain. The computation it was passed to is
// rejected before it starts; values are never silently clamped.
type InvalidStateError struct {
	Field  string
	Value  float64
	Reason string
}

func (e *InvalidStateError) Error() string {
	return fmt.Sprintf("skytrans: invalid atmospheric state: %s = %g: %s",
		e.Field, e.Value, e.Reason)
}

// UnknownSpeciesError indicates a species selection that refers to an
// identifier outside of the fixed species set.
type UnknownSpeciesError struct {
	Name string
}

func (e *UnknownSpeciesError) Error() string {
	return fmt.Sprintf("skytrans: unknown species %q", e.Name)
}

// DomainError indicates a malformed wavelength grid: empty, non-increasing,
// or too short for interpolation.
type DomainError struct {
	Reason string
}

func (e *DomainError) Error() string {
	return "skytrans: " + e.Reason
}

// MissingTableError indicates that a requested species has no entry in the
// absorption-coefficient table. It is always propagated: defaulting to a
// zero coefficient would fabricate a transmittance of one and mask the
// missing data.
type MissingTableError struct {
	Species Species
}

func (e *MissingTableError) Error() string {
	return fmt.Sprintf("skytrans: no absorption coefficients for species %v", e.Species)
}
