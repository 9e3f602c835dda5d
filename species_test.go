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

func TestParseSpecies(t *testing.T) {
	for s := Species(0); s < numSpecies; s++ {
		got, err := ParseSpecies(s.String())
		if err != nil {
			t.Fatal(err)
		}
		if got != s {
			t.Errorf("round trip of %v gave %v", s, got)
		}
	}
	got, err := ParseSpecies("ch4")
	if err != nil {
		t.Fatal(err)
	}
	if got != CH4 {
		t.Errorf("lower-case ch4 parsed as %v", got)
	}
	if _, err := ParseSpecies("Ar"); err == nil {
		t.Error("expected error for species outside the fixed set")
	} else if _, ok := err.(*UnknownSpeciesError); !ok {
		t.Errorf("error is %T; want *UnknownSpeciesError", err)
	}
}

func TestSpeciesString(t *testing.T) {
	if O4.String() != "O4" || H2O.String() != "H2O" {
		t.Errorf("got %v and %v", O4, H2O)
	}
	if Species(-1).String() != "unknown" || Species(99).String() != "unknown" {
		t.Error("out-of-range species should stringify as unknown")
	}
}

func TestSpeciesGroups(t *testing.T) {
	for _, s := range UMGSpecies {
		if s.IsTrace() {
			t.Errorf("%v is in the default group but reports trace", s)
		}
	}
	for _, s := range TraceSpecies {
		if !s.IsTrace() {
			t.Errorf("%v is a trace gas but reports otherwise", s)
		}
	}
	if len(UMGSpecies)+len(TraceSpecies) != int(numSpecies)-2 {
		t.Error("species groups do not cover the fixed set minus O3 and H2O")
	}
}
