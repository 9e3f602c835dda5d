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

// waterBand holds the empirical correction parameters for one water-vapor
// absorption band. The band optical depth is
//
//	τ(λ) = Bw·Bm·BMW·BP · (k(λ)·Pw·m)^n
//
// where k is the baseline absorption coefficient, Pw the precipitable
// water [cm], m the water-vapor airmass, and n the band saturation
// exponent. The four factors correct the baseline depth for water-amount
// deviation (Bw), airmass (Bm), combined water×airmass (BMW), and pressure
// broadening (BP). Parameter values are reference data fitted per band.
type waterBand struct {
	lo, hi float64 // band limits [nm]
	n      float64 // saturation exponent

	bw1, bw2   float64 // Bw = 1 + bw1·exp(−bw2·Pw)
	bm1        float64 // Bm = 1 + bm1·(m−1)
	bmw1, bmw2 float64 // BMW = 1 + bmw1·ln(1 + bmw2·Pw·m)
	bp1        float64 // BP = pp0^bp1
}

var waterBands = []waterBand{
	{560, 620, 0.88, 0.12, 0.55, 0.024, 0.031, 0.64, 0.24},
	{620, 680, 0.85, 0.10, 0.52, 0.028, 0.035, 0.61, 0.28},
	{680, 760, 0.75, 0.14, 0.50, 0.033, 0.041, 0.58, 0.35},
	{760, 880, 0.72, 0.13, 0.48, 0.036, 0.044, 0.55, 0.38},
	{880, 1000, 0.62, 0.17, 0.45, 0.042, 0.052, 0.50, 0.44},
	{1000, 1101, 0.58, 0.19, 0.42, 0.046, 0.057, 0.47, 0.48},
}

// bandAt returns the band containing wavelength w, or nil outside all bands.
func bandAt(w float64) *waterBand {
	for i := range waterBands {
		if w >= waterBands[i].lo && w < waterBands[i].hi {
			return &waterBands[i]
		}
	}
	return nil
}

// WaterTransmittance models water-vapor absorption. Unlike the other
// absorbers it is not a single Beer-Lambert exponential in column
// abundance: band saturation makes the effective optical depth grow
// sublinearly, so each band applies its own saturation exponent and the
// Bw, Bm, BMW and BP correction factors to the baseline depth before
// exponentiating.
type WaterTransmittance struct {
	State *AtmosphericState

	// Table supplies the baseline H2O absorption coefficients; if nil,
	// the reference table is used.
	Table *AbsorptionTable
}

// NewWaterTransmittance creates a water-vapor absorption component for the
// given state using the reference absorption table.
func NewWaterTransmittance(state *AtmosphericState) *WaterTransmittance {
	return &WaterTransmittance{State: state}
}

// Name returns the component name used in output files.
func (w *WaterTransmittance) Name() string { return "water" }

func (w *WaterTransmittance) table() *AbsorptionTable {
	if w.Table != nil {
		return w.Table
	}
	return DefaultAbsorptionTable()
}

// OpticalDepth returns the band-corrected water-vapor optical depth
// spectrum on the table's native grid.
func (w *WaterTransmittance) OpticalDepth() (*Spectrum, error) {
	if err := w.State.Check(); err != nil {
		return nil, err
	}
	t := w.table()
	coeff, err := t.Coefficients(H2O)
	if err != nil {
		return nil, err
	}
	pw, err := Abundance(H2O, w.State)
	if err != nil {
		return nil, err
	}
	m, err := Airmass(w.State.ZenithAngle, H2O)
	if err != nil {
		return nil, err
	}
	pp0 := w.State.PressureRatio()
	g := t.Grid()
	tau := make([]float64, g.Len())
	for i, k := range coeff {
		base := k * pw * m
		if base == 0 {
			continue
		}
		b := bandAt(g.wvl[i])
		if b == nil {
			tau[i] = base
			continue
		}
		bw := 1 + b.bw1*math.Exp(-b.bw2*pw)
		bm := 1 + b.bm1*(m-1)
		bmw := 1 + b.bmw1*math.Log(1+b.bmw2*pw*m)
		bp := math.Pow(pp0, b.bp1)
		tau[i] = bw * bm * bmw * bp * math.Pow(base, b.n)
	}
	return &Spectrum{Grid: g, Values: tau}, nil
}

// Transmittance returns the water-vapor transmittance spectrum on the
// table's native grid.
func (w *WaterTransmittance) Transmittance() (*Spectrum, error) {
	tau, err := w.OpticalDepth()
	if err != nil {
		return nil, err
	}
	return tau.transmittance(), nil
}
