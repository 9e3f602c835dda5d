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

// Package skytrans calculates clear-sky spectral atmospheric transmittance.
//
// Transmittance is decomposed into five independent components: Rayleigh
// scattering, ozone absorption, water-vapor absorption, aerosol extinction,
// and absorption by the uniformly mixed gases (O2, CH4, CO, N2O, CO2, N2,
// and the O2-O2 collision complex, optionally joined by the trace gases
// NH3, NO2, and SO2). Each component converts an optical-depth model into a
// transmittance spectrum on its native wavelength grid using the
// Beer-Lambert law, and Combine multiplies the components together on a
// common grid. Slant-path (airmass) corrections use per-constituent
// empirical fits from the SMARTS model family.
//
// All computations are pure functions of an AtmosphericState and an
// absorption-coefficient table; the package holds no mutable global state
// and never writes to the log.
package skytrans

// Version gives the version number of this version of skytrans.
const Version = "0.1.0"
