package atmosphere

import (
	"fmt"
	"math"
)

// International Standard Atmosphere, troposphere band.
const (
	SeaLevelPressurePa   = 101325
	SeaLevelTemperatureK = 288.15
	LapseRateKPerM       = 0.0065
	UniversalGasConstant = 8.3144598 // J/(mol*K)
	GravityMS2           = 9.80665
	MolarMassAirKgPerMol = 0.0289644
	TropopauseAltitudeM  = 11000
)

type Sample struct {
	DensityKgM3  float64 `json:"density_kg_m3"`
	PressurePa   float64 `json:"pressure_pa"`
	TemperatureK float64 `json:"temperature_k"`
}

// DomainError reports an altitude outside the troposphere band the
// lapse-rate formula is valid for.
type DomainError struct {
	AltitudeM float64
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("altitude %g m outside [0, %d) m", e.AltitudeM, TropopauseAltitudeM)
}

// Compute returns air density, pressure and temperature at the given
// altitude per the ISA model. Valid for 0 <= altitude < 11000 m.
func Compute(altitudeM float64) (Sample, error) {
	if altitudeM < 0 || altitudeM >= TropopauseAltitudeM {
		return Sample{}, &DomainError{AltitudeM: altitudeM}
	}

	T := SeaLevelTemperatureK - LapseRateKPerM*altitudeM

	exponent := (GravityMS2 * MolarMassAirKgPerMol) / (UniversalGasConstant * LapseRateKPerM)
	P := SeaLevelPressurePa * math.Pow(1-(LapseRateKPerM*altitudeM)/SeaLevelTemperatureK, exponent)

	rho := (P * MolarMassAirKgPerMol) / (UniversalGasConstant * T)

	return Sample{DensityKgM3: rho, PressurePa: P, TemperatureK: T}, nil
}
