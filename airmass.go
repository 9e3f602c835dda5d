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

// amCoefficients holds the per-constituent coefficients of the SMARTS
// slant-path (airmass) fit AM = 1/(cos z + a·z^b·(c − z)^−d), with z the
// apparent solar zenith angle in degrees.
type amCoefficients struct {
	a, b, c, d float64
}

func (c amCoefficients) airmass(zenith float64) float64 {
	cosz := math.Cos(zenith * math.Pi / 180)
	return 1 / (cosz + c.a*math.Pow(zenith, c.b)*math.Pow(c.c-zenith, -c.d))
}

// Airmass coefficient sets from the SMARTS model family. Each constituent
// has its own vertical profile and therefore its own slant-path fit;
// a single shared airmass is not a valid substitute.
var (
	rayleighAM = amCoefficients{0.48353, 0.095846, 96.741, 1.754}
	ozoneAM    = amCoefficients{1.0651, 0.6379, 101.8, 2.2694}
	waterAM    = amCoefficients{0.10648, 0.11423, 93.781, 1.9203}
	aerosolAM  = amCoefficients{0.16851, 0.18198, 95.318, 1.9542}

	speciesAM = [numSpecies]amCoefficients{
		O2:  {0.65779, 0.064713, 96.974, 1.8084},
		CH4: {0.49381, 0.35569, 98.23, 2.1616},
		CO:  {0.505, 0.063191, 95.899, 1.917},
		N2O: {0.61696, 0.060787, 96.632, 1.8279},
		CO2: {0.65786, 0.064688, 96.974, 1.8083},
		N2:  {0.38155, 8.871e-05, 95.195, 1.8053},
		// The O4 collision complex follows the O2 profile.
		O4:  {0.65779, 0.064713, 96.974, 1.8084},
		NH3: {0.32101, 0.010793, 94.337, 2.0548},
		NO2: {1.1212, 1.6132, 111.55, 3.2629},
		SO2: {0.63454, 0.00992, 95.804, 2.0573},
		O3:  {1.0651, 0.6379, 101.8, 2.2694},
		H2O: {0.10648, 0.11423, 93.781, 1.9203},
	}
)

func checkZenith(zenith float64) error {
	if math.IsNaN(zenith) || zenith < 0 || zenith >= 90 {
		return &InvalidStateError{Field: "ZenithAngle", Value: zenith,
			Reason: "must be in [0, 90) degrees"}
	}
	return nil
}

// Airmass returns the slant-path multiplier on vertical optical depth for
// the given species at the given apparent solar zenith angle [degrees].
// The result is ≥ 1 and grows monotonically with zenith angle. An
// InvalidStateError is returned for zenith angles outside [0, 90), where
// the fit diverges.
func Airmass(zenith float64, s Species) (float64, error) {
	if err := checkZenith(zenith); err != nil {
		return 0, err
	}
	if s < 0 || s >= numSpecies {
		return 0, &UnknownSpeciesError{Name: s.String()}
	}
	return speciesAM[s].airmass(zenith), nil
}

// RayleighAirmass returns the slant-path multiplier for Rayleigh
// (molecular) scattering.
func RayleighAirmass(zenith float64) (float64, error) {
	if err := checkZenith(zenith); err != nil {
		return 0, err
	}
	return rayleighAM.airmass(zenith), nil
}

// AerosolAirmass returns the slant-path multiplier for aerosol extinction.
func AerosolAirmass(zenith float64) (float64, error) {
	if err := checkZenith(zenith); err != nil {
		return 0, err
	}
	return aerosolAM.airmass(zenith), nil
}
