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

// Abundance returns the column abundance of species s [atm-cm, except as
// noted below] for the given atmospheric state. The formulas are empirical
// fits from the SMARTS model family in terms of the surface pressure ratio
// pp0 = P/1013.25 mbar; CO2 additionally depends on the mixing ratio, O4 on
// temperature, and O3 and H2O are taken directly from the state (Dobson
// units converted to atm-cm, and cm of precipitable water, respectively).
// The numeric coefficients are fixed reference values; changing any of them
// changes downstream transmittance.
func Abundance(s Species, state *AtmosphericState) (float64, error) {
	pp0 := state.PressureRatio()
	switch s {
	case O2:
		return 1.67766e5 * pp0, nil
	case CH4:
		return 1.3255 * math.Pow(pp0, 1.0574), nil
	case CO:
		return 0.29625 * math.Pow(pp0, 2.4480) *
			math.Exp(0.54669-2.4114*pp0+0.65756*pp0*pp0), nil
	case N2O:
		return 0.24730 * math.Pow(pp0, 1.0791), nil
	case CO2:
		return 0.802685 * state.CO2 * pp0, nil
	case N2:
		return 3.8269 * math.Pow(pp0, 1.8374), nil
	case O4:
		tt0 := state.TemperatureRatio()
		return 1.8171e4 * Loschmidt * Loschmidt *
			math.Pow(pp0, 1.7984) / math.Pow(tt0, 0.344), nil
	case NH3:
		l := math.Log(pp0)
		return math.Exp(-8.6499 + 2.1947*l - 2.5936*l*l -
			1.819*l*l*l - 0.65854*l*l*l*l), nil
	case NO2:
		return 1e-4 * math.Min(1.8599+0.18453*pp0, 41.771*pp0), nil
	case SO2:
		return 1e-4 * 0.11133 * math.Pow(pp0, 0.812) *
			math.Exp(0.81319+3.0557*pp0*pp0-1.578*pp0*pp0*pp0), nil
	case O3:
		// Dobson units to atm-cm.
		return state.Ozone / 1000, nil
	case H2O:
		return state.PrecipWater, nil
	}
	return 0, &UnknownSpeciesError{Name: s.String()}
}
