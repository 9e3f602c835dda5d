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

import "strings"

// Species identifies one absorbing species in the fixed species set.
type Species int

// The fixed set of absorbing species.
const (
	O2 Species = iota
	CH4
	CO
	N2O
	CO2
	N2
	O4 // O2-O2 collision complex
	NH3
	NO2
	SO2
	O3
	H2O
	numSpecies
)

var speciesNames = []string{"O2", "CH4", "CO", "N2O", "CO2", "N2", "O4",
	"NH3", "NO2", "SO2", "O3", "H2O"}

func (s Species) String() string {
	if s < 0 || s >= numSpecies {
		return "unknown"
	}
	return speciesNames[s]
}

// ParseSpecies converts a species name (case-insensitive) to a Species,
// returning an UnknownSpeciesError for names outside the fixed set.
func ParseSpecies(name string) (Species, error) {
	for i, n := range speciesNames {
		if strings.EqualFold(name, n) {
			return Species(i), nil
		}
	}
	return -1, &UnknownSpeciesError{Name: name}
}

// UMGSpecies is the default species set for the uniformly-mixed-gas
// absorber group, excluding trace gases.
var UMGSpecies = []Species{O2, CH4, CO, N2O, CO2, N2, O4}

// TraceSpecies are the trace gases added to the uniformly-mixed-gas group
// when AtmosphericState.WithTraceGases is set.
var TraceSpecies = []Species{NH3, NO2, SO2}

// IsTrace reports whether s is one of the optional trace gases.
func (s Species) IsTrace() bool {
	return s == NH3 || s == NO2 || s == SO2
}
