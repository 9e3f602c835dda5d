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

// Reference absorption-coefficient tables on the native wavelength grid
// (165 points, 280-1100 nm at 5 nm spacing). Units are inverse column
// abundance: multiplying a coefficient by the species column abundance and
// its slant-path airmass gives optical depth. NO2 coefficients fold in the
// temperature correction term b0·(228.7-220) and, like SO2 and O3, include
// the Loschmidt-number conversion from cross section per molecule to
// per atm-cm. Do not edit by hand; these values are reference data.

var defaultGridWavelengths = []float64{
	2.800000e+02, 2.850000e+02, 2.900000e+02, 2.950000e+02, 3.000000e+02, 3.050000e+02,
	3.100000e+02, 3.150000e+02, 3.200000e+02, 3.250000e+02, 3.300000e+02, 3.350000e+02,
	3.400000e+02, 3.450000e+02, 3.500000e+02, 3.550000e+02, 3.600000e+02, 3.650000e+02,
	3.700000e+02, 3.750000e+02, 3.800000e+02, 3.850000e+02, 3.900000e+02, 3.950000e+02,
	4.000000e+02, 4.050000e+02, 4.100000e+02, 4.150000e+02, 4.200000e+02, 4.250000e+02,
	4.300000e+02, 4.350000e+02, 4.400000e+02, 4.450000e+02, 4.500000e+02, 4.550000e+02,
	4.600000e+02, 4.650000e+02, 4.700000e+02, 4.750000e+02, 4.800000e+02, 4.850000e+02,
	4.900000e+02, 4.950000e+02, 5.000000e+02, 5.050000e+02, 5.100000e+02, 5.150000e+02,
	5.200000e+02, 5.250000e+02, 5.300000e+02, 5.350000e+02, 5.400000e+02, 5.450000e+02,
	5.500000e+02, 5.550000e+02, 5.600000e+02, 5.650000e+02, 5.700000e+02, 5.750000e+02,
	5.800000e+02, 5.850000e+02, 5.900000e+02, 5.950000e+02, 6.000000e+02, 6.050000e+02,
	6.100000e+02, 6.150000e+02, 6.200000e+02, 6.250000e+02, 6.300000e+02, 6.350000e+02,
	6.400000e+02, 6.450000e+02, 6.500000e+02, 6.550000e+02, 6.600000e+02, 6.650000e+02,
	6.700000e+02, 6.750000e+02, 6.800000e+02, 6.850000e+02, 6.900000e+02, 6.950000e+02,
	7.000000e+02, 7.050000e+02, 7.100000e+02, 7.150000e+02, 7.200000e+02, 7.250000e+02,
	7.300000e+02, 7.350000e+02, 7.400000e+02, 7.450000e+02, 7.500000e+02, 7.550000e+02,
	7.600000e+02, 7.650000e+02, 7.700000e+02, 7.750000e+02, 7.800000e+02, 7.850000e+02,
	7.900000e+02, 7.950000e+02, 8.000000e+02, 8.050000e+02, 8.100000e+02, 8.150000e+02,
	8.200000e+02, 8.250000e+02, 8.300000e+02, 8.350000e+02, 8.400000e+02, 8.450000e+02,
	8.500000e+02, 8.550000e+02, 8.600000e+02, 8.650000e+02, 8.700000e+02, 8.750000e+02,
	8.800000e+02, 8.850000e+02, 8.900000e+02, 8.950000e+02, 9.000000e+02, 9.050000e+02,
	9.100000e+02, 9.150000e+02, 9.200000e+02, 9.250000e+02, 9.300000e+02, 9.350000e+02,
	9.400000e+02, 9.450000e+02, 9.500000e+02, 9.550000e+02, 9.600000e+02, 9.650000e+02,
	9.700000e+02, 9.750000e+02, 9.800000e+02, 9.850000e+02, 9.900000e+02, 9.950000e+02,
	1.000000e+03, 1.005000e+03, 1.010000e+03, 1.015000e+03, 1.020000e+03, 1.025000e+03,
	1.030000e+03, 1.035000e+03, 1.040000e+03, 1.045000e+03, 1.050000e+03, 1.055000e+03,
	1.060000e+03, 1.065000e+03, 1.070000e+03, 1.075000e+03, 1.080000e+03, 1.085000e+03,
	1.090000e+03, 1.095000e+03, 1.100000e+03,
}

var defaultAbsorption = [numSpecies][]float64{
	O2: {
	0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00,
	0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00,
	0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00,
	0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00,
	0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00,
	0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00,
	0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00,
	0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00,
	0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00,
	0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00,
	0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00,
	0.000000e+00, 8.396455e-16, 9.791854e-11, 4.414553e-08, 7.694165e-08, 5.184287e-10,
	1.350422e-14, 0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00,
	3.210456e-15, 5.173620e-11, 3.663128e-08, 1.139566e-06, 1.557602e-06, 9.354124e-08,
	2.468196e-10, 2.861448e-14, 0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00,
	0.000000e+00, 0.000000e+00, 8.031924e-18, 8.440138e-13, 3.896810e-09, 7.904942e-07,
	7.045598e-06, 2.759096e-06, 4.747287e-08, 3.588838e-11, 1.192043e-15, 0.000000e+00,
	0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00,
	0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00,
	0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00,
	0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00,
	0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00,
	0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00,
	0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00,
	0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00,
	1.216948e-15, 1.952872e-13, 1.434772e-11, 4.826135e-10, 7.432304e-09, 5.240285e-08,
	1.691585e-07, 2.500000e-07, 1.691585e-07, 5.240285e-08, 7.432304e-09, 4.826135e-10,
	1.434772e-11, 1.952872e-13, 1.216948e-15,
	},
	CH4: {
	0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00,
	0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00,
	0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00,
	0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00,
	0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00,
	0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00,
	0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00,
	0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00,
	0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00,
	0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00,
	0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00,
	0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00,
	0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00,
	0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00,
	0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00,
	0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00,
	0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00,
	0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00,
	0.000000e+00, 0.000000e+00, 1.388794e-13, 7.530086e-12, 2.885129e-10, 7.811489e-09,
	1.494534e-07, 2.020603e-06, 1.930454e-05, 1.303291e-04, 6.217652e-04, 2.096114e-03,
	4.993518e-03, 8.406237e-03, 1.000000e-02, 8.406237e-03, 4.993518e-03, 2.096114e-03,
	6.217652e-04, 1.303291e-04, 1.930454e-05, 2.020603e-06, 1.494597e-07, 7.937436e-09,
	2.314146e-09, 2.609455e-08, 2.690162e-07, 2.221376e-06, 1.468778e-05, 7.776431e-05,
	3.296815e-04, 1.119177e-03, 3.042240e-03, 6.621830e-03, 1.154125e-02, 1.610711e-02,
	1.800000e-02, 1.610711e-02, 1.154125e-02, 6.621830e-03, 3.042240e-03, 1.119177e-03,
	3.296815e-04, 7.776431e-05, 1.468778e-05, 2.221376e-06, 2.690161e-07, 2.608702e-08,
	2.025633e-09, 1.259468e-10, 6.270523e-12, 2.499830e-13, 0.000000e+00, 0.000000e+00,
	0.000000e+00, 0.000000e+00, 0.000000e+00,
	},
	CO: {
	0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00,
	0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00,
	0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00,
	0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00,
	0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00,
	0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00,
	0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00,
	0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00,
	0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00,
	0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00,
	0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00,
	0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00,
	0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00,
	0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00,
	0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00,
	0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00,
	0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00,
	0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00,
	0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00,
	0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00,
	0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00,
	0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00,
	0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00,
	0.000000e+00, 0.000000e+00, 0.000000e+00, 3.055348e-14, 3.531502e-12, 2.475774e-10,
	1.052726e-08, 2.715016e-07, 4.246999e-06, 4.029441e-05, 2.318783e-04, 8.093348e-04,
	1.713362e-03, 2.200000e-03, 1.713362e-03, 8.093348e-04, 2.318783e-04, 4.029441e-05,
	4.246999e-06, 2.715016e-07, 1.052726e-08, 2.475774e-10, 3.531502e-12, 3.055348e-14,
	0.000000e+00, 0.000000e+00, 0.000000e+00,
	},
	N2O: {
	0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00,
	0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00,
	0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00,
	0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00,
	0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00,
	0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00,
	0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00,
	0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00,
	0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00,
	0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00,
	0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00,
	0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00,
	0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00,
	0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00,
	0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00,
	0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00,
	0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00,
	0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00,
	0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00,
	0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00,
	0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00,
	0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00,
	0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00,
	0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00,
	0.000000e+00, 0.000000e+00, 0.000000e+00, 3.333107e-14, 1.807221e-12, 6.924310e-11,
	1.874757e-09, 3.586881e-08, 4.849447e-07, 4.633090e-06, 3.127898e-05, 1.492237e-04,
	5.030673e-04, 1.198444e-03, 2.017497e-03, 2.400000e-03, 2.017497e-03, 1.198444e-03,
	5.030673e-04, 1.492237e-04, 3.127898e-05,
	},
	CO2: {
	0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00,
	0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00,
	0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00,
	0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00,
	0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00,
	0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00,
	0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00,
	0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00,
	0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00,
	0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00,
	0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00,
	0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00,
	0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00,
	0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00,
	0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00,
	0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00,
	0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00,
	0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00,
	0.000000e+00, 0.000000e+00, 0.000000e+00, 8.332766e-18, 1.583051e-15, 1.622249e-13,
	8.967203e-12, 2.673706e-10, 4.300185e-09, 3.730591e-08, 1.745763e-07, 4.406662e-07,
	6.000000e-07, 4.406662e-07, 1.745763e-07, 3.730591e-08, 4.300185e-09, 2.673706e-10,
	8.967203e-12, 1.622249e-13, 1.583051e-15, 8.332766e-18, 0.000000e+00, 0.000000e+00,
	0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00,
	0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00,
	5.555178e-17, 6.420912e-15, 4.501407e-13, 1.914047e-11, 4.936392e-10, 7.721817e-09,
	7.326256e-08, 4.215969e-07, 1.471518e-06, 3.115203e-06, 4.000000e-06, 3.115203e-06,
	1.471518e-06, 4.215969e-07, 7.326256e-08, 7.721817e-09, 4.936392e-10, 1.914047e-11,
	4.501407e-13, 6.420912e-15, 5.555178e-17,
	},
	N2: {
	8.450586e-09, 8.737020e-09, 9.033162e-09, 9.339342e-09, 9.655900e-09, 9.983188e-09,
	1.032157e-08, 1.067142e-08, 1.103313e-08, 1.140710e-08, 1.179374e-08, 1.219349e-08,
	1.260679e-08, 1.303410e-08, 1.347589e-08, 1.393266e-08, 1.440491e-08, 1.489317e-08,
	1.539797e-08, 1.591989e-08, 1.645949e-08, 1.701739e-08, 1.759420e-08, 1.819055e-08,
	1.880713e-08, 1.944459e-08, 2.010367e-08, 2.078509e-08, 2.148960e-08, 2.221799e-08,
	2.297107e-08, 2.374968e-08, 2.455468e-08, 2.538696e-08, 2.624746e-08, 2.713712e-08,
	2.805693e-08, 2.900793e-08, 2.999115e-08, 3.100771e-08, 3.205872e-08, 3.314535e-08,
	3.426882e-08, 3.543036e-08, 3.663128e-08, 3.787290e-08, 3.915661e-08, 4.048382e-08,
	4.185603e-08, 4.327474e-08, 4.474154e-08, 4.625806e-08, 4.782599e-08, 4.944705e-08,
	5.112307e-08, 5.285589e-08, 5.464744e-08, 5.649973e-08, 5.841479e-08, 6.039477e-08,
	6.244185e-08, 6.455833e-08, 6.674654e-08, 6.900892e-08, 7.134799e-08, 7.376633e-08,
	7.626665e-08, 7.885172e-08, 8.152441e-08, 8.428769e-08, 8.714463e-08, 9.009840e-08,
	9.315230e-08, 9.630971e-08, 9.957414e-08, 1.029492e-07, 1.064387e-07, 1.100464e-07,
	1.137765e-07, 1.176329e-07, 1.216201e-07, 1.257425e-07, 1.300045e-07, 1.344110e-07,
	1.389669e-07, 1.436772e-07, 1.485472e-07, 1.535822e-07, 1.587879e-07, 1.641700e-07,
	1.697346e-07, 1.754877e-07, 1.814359e-07, 1.875857e-07, 1.939439e-07, 2.005177e-07,
	2.073143e-07, 2.143412e-07, 2.216063e-07, 2.291177e-07, 2.368837e-07, 2.449129e-07,
	2.532142e-07, 2.617969e-07, 2.706706e-07, 2.798450e-07, 2.893304e-07, 2.991372e-07,
	3.092765e-07, 3.197595e-07, 3.305978e-07, 3.418034e-07, 3.533889e-07, 3.653670e-07,
	3.777512e-07, 3.905551e-07, 4.037930e-07, 4.174796e-07, 4.316302e-07, 4.462603e-07,
	4.613864e-07, 4.770251e-07, 4.931939e-07, 5.099108e-07, 5.271943e-07, 5.450636e-07,
	5.635386e-07, 5.826398e-07, 6.023884e-07, 6.228064e-07, 6.439165e-07, 6.657422e-07,
	6.883076e-07, 7.116378e-07, 7.357589e-07, 7.606975e-07, 7.864814e-07, 8.131393e-07,
	8.407008e-07, 8.691964e-07, 8.986579e-07, 9.291180e-07, 9.606106e-07, 9.931706e-07,
	1.026834e-06, 1.061639e-06, 1.097623e-06, 1.134827e-06, 1.173292e-06, 1.213061e-06,
	1.254178e-06, 1.296689e-06, 1.340640e-06, 1.386081e-06, 1.433063e-06, 1.481636e-06,
	1.531857e-06, 1.583779e-06, 1.637462e-06, 1.692963e-06, 1.750347e-06, 1.809675e-06,
	1.871014e-06, 1.934432e-06, 2.000000e-06,
	},
	O4: {
	0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00,
	0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00,
	0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00,
	0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00,
	0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00, 6.112282e-54,
	9.999598e-51, 2.213975e-48, 6.633977e-47, 2.690210e-46, 1.476419e-46, 1.096664e-47,
	2.798890e-49, 9.524282e-48, 1.333154e-46, 4.653164e-46, 4.049764e-46, 8.788692e-47,
	4.755892e-48, 6.417310e-50, 2.159173e-52, 6.948214e-55, 4.637693e-52, 1.044072e-49,
	5.861004e-48, 8.204024e-47, 2.863486e-46, 2.492163e-46, 5.408426e-47, 2.926703e-48,
	3.949242e-50, 1.292295e-51, 2.610181e-49, 1.465251e-47, 2.051006e-46, 7.158715e-46,
	6.230406e-46, 1.352107e-46, 7.316758e-48, 9.872785e-50, 3.387199e-52, 1.790560e-51,
	1.766569e-49, 6.283221e-48, 8.055202e-47, 3.722313e-46, 6.200000e-46, 3.722313e-46,
	8.055202e-47, 6.283221e-48, 1.766569e-49, 1.790281e-51, 6.539646e-54, 8.610525e-57,
	0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00,
	0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00,
	0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00,
	0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00,
	0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00,
	0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00,
	0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00,
	0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00,
	0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00,
	0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00,
	0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00,
	0.000000e+00, 0.000000e+00, 6.249575e-57, 7.223526e-55, 5.064083e-53, 2.153303e-51,
	5.553441e-50, 8.687044e-49, 8.242037e-48, 4.742965e-47, 1.655457e-46, 3.504604e-46,
	4.500000e-46, 3.504604e-46, 1.655457e-46, 4.742965e-47, 8.242037e-48, 8.687044e-49,
	5.553441e-50, 2.153303e-51, 5.064083e-53,
	},
	NH3: {
	2.000000e-02, 1.692963e-02, 1.433063e-02, 1.213061e-02, 1.026834e-02, 8.691964e-03,
	7.357589e-03, 6.228064e-03, 5.271943e-03, 4.462603e-03, 3.777512e-03, 3.197595e-03,
	2.706706e-03, 2.291177e-03, 1.939439e-03, 1.641700e-03, 1.389669e-03, 1.176329e-03,
	9.957414e-04, 8.428769e-04, 7.134799e-04, 6.039477e-04, 5.112307e-04, 4.327474e-04,
	3.663128e-04, 3.100771e-04, 2.624746e-04, 2.221799e-04, 1.880713e-04, 1.591989e-04,
	1.347589e-04, 1.140710e-04, 9.655900e-05, 8.173543e-05, 6.918755e-05, 5.856599e-05,
	4.957504e-05, 4.196437e-05, 3.552207e-05, 3.006878e-05, 2.545268e-05, 2.154523e-05,
	1.823764e-05, 1.543783e-05, 1.306784e-05, 1.106169e-05, 9.363516e-06, 7.926045e-06,
	6.709253e-06, 5.679260e-06, 4.807390e-06, 4.069367e-06, 3.444645e-06, 2.915829e-06,
	2.468196e-06, 2.089283e-06, 1.768540e-06, 1.497037e-06, 1.267214e-06, 1.072674e-06,
	9.079986e-07, 7.686042e-07, 6.506094e-07, 5.507290e-07, 4.661820e-07, 3.946146e-07,
	3.340340e-07, 2.827537e-07, 2.393458e-07, 2.026019e-07, 1.714988e-07, 1.451706e-07,
	1.228842e-07, 1.040193e-07, 8.805041e-08, 7.453306e-08, 6.309088e-08, 5.340527e-08,
	4.520659e-08, 3.826655e-08, 3.239194e-08, 2.741918e-08, 2.320984e-08, 1.964670e-08,
	1.663057e-08, 1.407748e-08, 1.191633e-08, 1.008695e-08, 8.538422e-09, 7.227618e-09,
	6.118046e-09, 5.178814e-09, 4.383772e-09, 3.710783e-09, 3.141110e-09, 2.658892e-09,
	2.250703e-09, 1.905179e-09, 1.612700e-09, 1.365121e-09, 1.155550e-09, 9.781517e-10,
	8.279875e-10, 7.008763e-10, 5.932790e-10, 5.021998e-10, 4.251030e-10, 3.598419e-10,
	3.045996e-10, 2.578380e-10, 2.182551e-10, 1.847490e-10, 1.563866e-10, 1.323784e-10,
	1.120559e-10, 9.485330e-11, 8.029158e-11, 6.796536e-11, 5.753143e-11, 4.869931e-11,
	4.122307e-11, 3.489458e-11, 2.953762e-11, 2.500306e-11, 2.116463e-11, 1.791547e-11,
	1.516512e-11, 1.283700e-11, 1.086628e-11, 9.198111e-12, 7.786033e-12, 6.590734e-12,
	5.578936e-12, 4.722468e-12, 3.997482e-12, 3.383796e-12, 2.864321e-12, 2.424596e-12,
	2.052376e-12, 1.737299e-12, 1.470592e-12, 1.244829e-12, 1.053725e-12, 8.919589e-13,
	7.550269e-13, 6.391165e-13, 5.410004e-13, 4.579470e-13, 3.876437e-13, 3.281333e-13,
	2.777589e-13, 2.351178e-13, 1.990229e-13, 1.684693e-13, 1.426062e-13, 1.207135e-13,
	1.021818e-13, 8.649501e-14, 7.321645e-14, 6.197638e-14, 5.246188e-14, 4.440802e-14,
	3.759058e-14, 3.181974e-14, 2.693482e-14,
	},
	NO2: {
	7.975189e-01, 1.029489e+00, 1.311799e+00, 1.649598e+00, 2.047044e+00, 2.507049e+00,
	3.031122e+00, 3.619334e+00, 4.270373e+00, 4.981636e+00, 5.749288e+00, 6.568244e+00,
	7.432013e+00, 8.332432e+00, 9.259337e+00, 1.020025e+01, 1.114022e+01, 1.206185e+01,
	1.294561e+01, 1.377051e+01, 1.451495e+01, 1.515782e+01, 1.567961e+01, 1.606359e+01,
	1.629673e+01, 1.637053e+01, 1.628144e+01, 1.603114e+01, 1.562638e+01, 1.507859e+01,
	1.440335e+01, 1.361948e+01, 1.274820e+01, 1.181209e+01, 1.083411e+01, 9.836689e+00,
	8.840854e+00, 7.865572e+00, 6.927213e+00, 6.039217e+00, 5.211929e+00, 4.452607e+00,
	3.765570e+00, 3.152468e+00, 2.612626e+00, 2.143453e+00, 1.740866e+00, 1.399702e+00,
	1.114115e+00, 8.779193e-01, 6.848821e-01, 5.289579e-01, 4.044631e-01, 3.061955e-01,
	2.295045e-01, 1.703211e-01, 1.251538e-01, 9.106128e-02, 6.560769e-02, 4.680875e-02,
	3.307295e-02, 2.314291e-02, 1.603949e-02, 1.101092e-02, 7.487795e-03, 5.044554e-03,
	3.367264e-03, 2.227255e-03, 1.460026e-03, 9.486708e-04, 6.110960e-04, 3.903241e-04,
	2.472609e-04, 1.553822e-04, 9.688902e-05, 5.996483e-05, 3.684671e-05, 2.248647e-05,
	1.363366e-05, 8.215372e-06, 4.921809e-06, 2.932686e-06, 1.738635e-06, 1.025902e-06,
	6.027008e-07, 3.526341e-07, 2.055341e-07, 1.193628e-07, 6.907855e-08, 3.984215e-08,
	2.290217e-08, 1.311978e-08, 7.489429e-09, 4.259680e-09, 2.413380e-09, 1.361739e-09,
	7.650155e-10, 4.277950e-10, 2.380502e-10, 1.317793e-10, 7.255266e-11, 3.971672e-11,
	2.161228e-11, 0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00,
	0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00,
	0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00,
	0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00,
	0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00,
	0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00,
	0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00,
	0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00,
	0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00,
	0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00,
	0.000000e+00, 0.000000e+00, 0.000000e+00,
	},
	SO2: {
	9.381031e+00, 1.609990e+01, 2.367964e+01, 2.984738e+01, 3.224160e+01, 2.984738e+01,
	2.367964e+01, 1.609991e+01, 9.381091e+00, 4.684932e+00, 2.007959e+00, 7.526159e-01,
	3.048904e-01, 3.128248e-01, 6.955249e-01, 1.485470e+00, 2.584567e+00, 3.606451e+00,
	4.030209e+00, 3.606382e+00, 2.584085e+00, 1.482628e+00, 6.811575e-01, 2.505838e-01,
	7.381569e-02, 1.741143e-02, 3.288594e-03, 4.973662e-04, 6.023270e-05, 5.840884e-06,
	4.535393e-07, 2.819949e-08, 1.403970e-09, 5.597119e-11, 0.000000e+00, 0.000000e+00,
	0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00,
	0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00,
	0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00,
	0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00,
	0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00,
	0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00,
	0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00,
	0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00,
	0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00,
	0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00,
	0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00,
	0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00,
	0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00,
	0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00,
	0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00,
	0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00,
	0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00,
	0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00,
	0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00,
	0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00,
	0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00,
	0.000000e+00, 0.000000e+00, 0.000000e+00,
	},
	O3: {
	1.047724e+02, 6.747722e+01, 4.011659e+01, 2.201645e+01, 1.115391e+01, 5.293316e+00,
	2.307114e+00, 9.369762e-01, 3.584792e-01, 1.324169e-01, 4.969325e-02, 2.059477e-02,
	1.018752e-02, 6.025159e-03, 3.993067e-03, 2.788932e-03, 1.988896e-03, 1.432280e-03,
	1.040712e-03, 7.669766e-04, 5.796682e-04, 4.574542e-04, 3.861732e-04, 3.570450e-04,
	3.654938e-04, 4.103826e-04, 4.935417e-04, 6.195107e-04, 7.954343e-04, 1.031064e-03,
	1.338830e-03, 1.733940e-03, 2.234486e-03, 2.861512e-03, 3.639024e-03, 4.593898e-03,
	5.755663e-03, 7.156124e-03, 8.828804e-03, 1.080818e-02, 1.312868e-02, 1.582352e-02,
	1.892326e-02, 2.245422e-02, 2.643676e-02, 3.088349e-02, 3.579744e-02, 4.117039e-02,
	4.698131e-02, 5.319521e-02, 5.976226e-02, 6.661754e-02, 7.368130e-02, 8.085988e-02,
	8.804728e-02, 9.512746e-02, 1.019772e-01, 1.084694e-01, 1.144770e-01, 1.198772e-01,
	1.245552e-01, 1.284086e-01, 1.313511e-01, 1.333154e-01, 1.342561e-01, 1.341512e-01,
	1.330033e-01, 1.308390e-01, 1.277083e-01, 1.236825e-01, 1.188514e-01, 1.133202e-01,
	1.072056e-01, 1.006317e-01, 9.372584e-02, 8.661454e-02, 7.941989e-02, 7.225616e-02,
	6.522703e-02, 5.842347e-02, 5.192233e-02, 4.578551e-02, 4.005982e-02, 3.477740e-02,
	2.995658e-02, 2.560321e-02, 2.171219e-02, 1.826922e-02, 1.525258e-02, 1.263496e-02,
	1.038512e-02, 8.469468e-03, 6.853428e-03, 5.502583e-03, 4.383616e-03, 3.465017e-03,
	2.717599e-03, 2.114816e-03, 1.632927e-03, 1.251031e-03, 9.509906e-04, 7.172848e-04,
	5.368019e-04, 3.986058e-04, 2.936839e-04, 2.146960e-04, 1.557308e-04, 1.120811e-04,
	8.003821e-05, 5.671127e-05, 3.987020e-05, 2.781215e-05, 1.924987e-05, 1.321990e-05,
	9.008145e-06, 6.090456e-06, 4.085745e-06, 2.719568e-06, 1.796121e-06, 1.177005e-06,
	7.652935e-07, 4.937248e-07, 3.160450e-07, 2.007335e-07, 1.265022e-07, 7.910121e-08,
	4.907670e-08, 3.021167e-08, 1.845360e-08, 1.118393e-08, 6.725353e-09, 4.012756e-09,
	2.375622e-09, 1.395466e-09, 8.133323e-10, 4.703530e-10, 2.698901e-10, 1.536586e-10,
	0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00,
	0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00,
	0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00,
	0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00,
	0.000000e+00, 0.000000e+00, 0.000000e+00,
	},
	H2O: {
	0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00,
	0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00,
	0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00,
	0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00,
	0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00,
	0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00,
	0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00,
	0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00,
	0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00, 0.000000e+00,
	4.690726e-11, 2.975515e-09, 1.144820e-07, 2.671558e-06, 3.781334e-05, 3.246222e-04,
	1.690301e-03, 5.338297e-03, 1.022573e-02, 1.188060e-02, 8.372116e-03, 3.578372e-03,
	9.277622e-04, 1.474975e-04, 3.186248e-05, 1.400584e-04, 7.633553e-04, 2.956772e-03,
	8.093348e-03, 1.565460e-02, 2.139730e-02, 2.066709e-02, 1.410597e-02, 6.803512e-03,
	2.319389e-03, 5.641761e-04, 1.382155e-04, 2.725954e-04, 1.266100e-03, 4.907385e-03,
	1.524212e-02, 3.790844e-02, 7.549472e-02, 1.203891e-01, 1.537263e-01, 1.571807e-01,
	1.286887e-01, 8.436679e-02, 4.428869e-02, 1.861677e-02, 6.266224e-03, 1.688883e-03,
	3.645785e-04, 6.387294e-05, 1.560283e-05, 4.500542e-05, 2.317402e-04, 1.002344e-03,
	3.567506e-03, 1.044460e-02, 2.515337e-02, 4.982842e-02, 8.119606e-02, 1.088353e-01,
	1.200000e-01, 1.088353e-01, 8.119606e-02, 4.982843e-02, 2.515340e-02, 1.044476e-02,
	3.568229e-03, 1.005364e-03, 2.433508e-04, 8.577189e-05, 1.443387e-04, 4.187990e-04,
	1.173039e-03, 3.038977e-03, 7.268270e-03, 1.604694e-02, 3.270468e-02, 6.152959e-02,
	1.068599e-01, 1.713175e-01, 2.535392e-01, 3.463737e-01, 4.368187e-01, 5.085270e-01,
	5.464912e-01, 5.421368e-01, 4.964676e-01, 4.196908e-01, 3.275099e-01, 2.359260e-01,
	1.568858e-01, 9.630485e-02, 5.457200e-02, 2.854656e-02, 1.378590e-02, 6.149957e-03,
	2.545631e-03, 1.010618e-03, 4.741944e-04, 4.644417e-04, 9.019880e-04, 2.020646e-03,
	4.405328e-03, 9.116921e-03, 1.785533e-02, 3.308112e-02, 5.797856e-02, 9.612301e-02,
	1.507509e-01, 2.236480e-01, 3.138647e-01, 4.166704e-01, 5.232572e-01, 6.215991e-01,
	6.985188e-01, 7.425374e-01, 7.466741e-01,
	},
}
