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
	"strings"
	"testing"
)

func TestErrorMessages(t *testing.T) {
	errs := []error{
		&InvalidStateError{Field: "Pressure", Value: -1, Reason: "must be positive [mbar]"},
		&UnknownSpeciesError{Name: "Ar"},
		&DomainError{Reason: "empty wavelength grid"},
		&MissingTableError{Species: O3},
	}
	for _, err := range errs {
		msg := err.Error()
		if !strings.HasPrefix(msg, "skytrans: ") {
			t.Errorf("%T message %q lacks the package prefix", err, msg)
		}
	}
	if !strings.Contains(errs[0].Error(), "Pressure") {
		t.Error("state error does not name the field")
	}
	if !strings.Contains(errs[3].Error(), "O3") {
		t.Error("table error does not name the species")
	}
}
