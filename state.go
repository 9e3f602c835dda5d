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
	"math"

	"github.com/ctessum/unit"
)

const (
	// StandardPressure is standard sea-level atmospheric pressure [mbar].
	StandardPressure = 1013.25

	// Loschmidt is the Loschmidt number, the number density of an ideal
	// gas at standard temperature and pressure [molecules cm-3]. It is
	// used to convert absorption cross sections [cm2 molecule-1] into
	// coefficients per atm-cm of column abundance.
	Loschmidt = 2.6868e19

	// zeroCelsius is the freezing point of water [K].
	zeroCelsius = 273.15

	// aerosolReferenceWvl is the wavelength [nm] at which aerosol optical
	// depth is specified.
	aerosolReferenceWvl = 500.
)

// AtmosphericState describes the condition of the atmosphere and the solar
// geometry for one transmittance calculation. It is a value object:
// construct it once, validate it with Check, and treat it as read-only.
type AtmosphericState struct {
	// ZenithAngle is the apparent solar zenith angle [degrees],
	// 0 ≤ ZenithAngle < 90.
	ZenithAngle float64

	// Pressure is surface atmospheric pressure [mbar].
	Pressure float64

	// Temperature is surface air temperature [°C].
	Temperature float64

	// Ozone is the total ozone column [Dobson units].
	Ozone float64

	// PrecipWater is total-column precipitable water vapor [cm].
	PrecipWater float64

	// AOD is aerosol optical depth at 500 nm.
	AOD float64

	// Angstrom is the Ångström wavelength exponent of aerosol
	// optical depth.
	Angstrom float64

	// CO2 is the CO2 mixing ratio [ppm].
	CO2 float64

	// WithTraceGases specifies whether the trace gases (NH3, NO2, SO2)
	// are included in the uniformly-mixed-gas absorber group.
	WithTraceGases bool
}

// Check validates the state, returning an InvalidStateError for the first
// field found outside its physical domain.
func (s *AtmosphericState) Check() error {
	switch {
	case math.IsNaN(s.ZenithAngle) || s.ZenithAngle < 0 || s.ZenithAngle >= 90:
		return &InvalidStateError{Field: "ZenithAngle", Value: s.ZenithAngle,
			Reason: "must be in [0, 90) degrees"}
	case math.IsNaN(s.Pressure) || s.Pressure <= 0:
		return &InvalidStateError{Field: "Pressure", Value: s.Pressure,
			Reason: "must be positive [mbar]"}
	case math.IsNaN(s.Temperature) || s.Temperature <= -zeroCelsius:
		return &InvalidStateError{Field: "Temperature", Value: s.Temperature,
			Reason: "must be above absolute zero [°C]"}
	case math.IsNaN(s.Ozone) || s.Ozone < 0:
		return &InvalidStateError{Field: "Ozone", Value: s.Ozone,
			Reason: "must be non-negative [Dobson units]"}
	case math.IsNaN(s.PrecipWater) || s.PrecipWater < 0:
		return &InvalidStateError{Field: "PrecipWater", Value: s.PrecipWater,
			Reason: "must be non-negative [cm]"}
	case math.IsNaN(s.AOD) || s.AOD < 0:
		return &InvalidStateError{Field: "AOD", Value: s.AOD,
			Reason: "must be non-negative"}
	case math.IsNaN(s.Angstrom):
		return &InvalidStateError{Field: "Angstrom", Value: s.Angstrom,
			Reason: "must be finite"}
	case math.IsNaN(s.CO2) || s.CO2 <= 0:
		return &InvalidStateError{Field: "CO2", Value: s.CO2,
			Reason: "must be positive [ppm]"}
	}
	return nil
}

// PressureRatio returns surface pressure normalized by standard pressure.
func (s *AtmosphericState) PressureRatio() float64 {
	return s.Pressure / StandardPressure
}

// TemperatureRatio returns absolute surface temperature normalized by 273.15 K.
func (s *AtmosphericState) TemperatureRatio() float64 {
	return (s.Temperature + zeroCelsius) / zeroCelsius
}

// CosZenith returns the cosine of the solar zenith angle.
func (s *AtmosphericState) CosZenith() float64 {
	return math.Cos(s.ZenithAngle * math.Pi / 180)
}

// PressureUnits returns the surface pressure as an SI unit value [Pa].
func (s *AtmosphericState) PressureUnits() *unit.Unit {
	return unit.New(s.Pressure*100, unit.Dimensions{
		unit.MassDim:   1,
		unit.LengthDim: -1,
		unit.TimeDim:   -2,
	})
}

// TemperatureUnits returns the surface temperature as an SI unit value [K].
func (s *AtmosphericState) TemperatureUnits() *unit.Unit {
	return unit.New(s.Temperature+zeroCelsius, unit.Dimensions{
		unit.TemperatureDim: 1,
	})
}
