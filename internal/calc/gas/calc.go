package gas

// Gas names a lifting gas with a known specific gas constant.
type Gas string

const (
	Helium   Gas = "helium"
	Hydrogen Gas = "hydrogen"
)

// Specific gas constants, J/(kg*K).
const (
	RHelium   = 2077
	RHydrogen = 4124
)

func specificConstant(g Gas) float64 {
	switch g {
	case Hydrogen:
		return RHydrogen
	default:
		return RHelium
	}
}

// Density returns helium density at the given pressure and temperature
// via the ideal gas law. The caller guarantees P > 0 and T > 0.
func Density(pressurePa, temperatureK float64) float64 {
	return DensityOf(Helium, pressurePa, temperatureK)
}

// DensityOf is Density for an arbitrary known lifting gas.
func DensityOf(g Gas, pressurePa, temperatureK float64) float64 {
	return pressurePa / (specificConstant(g) * temperatureK)
}
