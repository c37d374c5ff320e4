package airship

import (
	"fmt"
	"math"
	"strings"

	atmosphere "Aerostat/internal/calc/atmosphere"
	gas "Aerostat/internal/calc/gas"
)

type Option string

const (
	MonocoqueShell      Option = "Monocoque Shell"
	GeodesicFramework   Option = "Geodesic Framework"
	SandwichPanel       Option = "Sandwich Panel"
	TensegrityStructure Option = "Tensegrity Structure"
	HeliumFilledAirship Option = "Helium-Filled Airship"
)

// Options lists the five construction options in menu order.
var Options = []Option{
	MonocoqueShell,
	GeodesicFramework,
	SandwichPanel,
	TensegrityStructure,
	HeliumFilledAirship,
}

// Material holds the fixed structural properties assumed for an option.
type Material struct {
	YoungsModulusPa float64
	DensityKgM3     float64
	PoissonsRatio   float64
}

// Materials maps each construction option to its assumed material.
var Materials = map[Option]Material{
	MonocoqueShell:      {YoungsModulusPa: 70e9, DensityKgM3: 1600, PoissonsRatio: 0.3},  // carbon fiber composite
	GeodesicFramework:   {YoungsModulusPa: 200e9, DensityKgM3: 7800, PoissonsRatio: 0.3}, // high-strength steel
	SandwichPanel:       {YoungsModulusPa: 50e9, DensityKgM3: 800, PoissonsRatio: 0.3},   // effective skin+core
	TensegrityStructure: {YoungsModulusPa: 70e9, DensityKgM3: 1600, PoissonsRatio: 0.3},
	HeliumFilledAirship: {YoungsModulusPa: 5e9, DensityKgM3: 1600, PoissonsRatio: 0.3},
}

const (
	safetyFactor           = 2.0
	heliumShellThicknessM  = 0.001
	sandwichSkinM          = 0.001
	sandwichCoreM          = 0.01
	geodesicMassFraction   = 0.5
	tensegrityMassFraction = 0.4
)

type Input struct {
	LengthM   float64 `json:"length_m"`
	DiameterM float64 `json:"diameter_m"`
	AltitudeM float64 `json:"altitude_m"`
	Option    Option  `json:"option"`
}

type Result struct {
	TotalVolumeM3      float64  `json:"total_volume_m3"`
	TotalSurfaceAreaM2 float64  `json:"total_surface_area_m2"`
	AirDensityKgM3     float64  `json:"air_density_kg_m3"`
	LiftingCapacityKg  float64  `json:"lifting_capacity_kg"`
	StructuralMassKg   float64  `json:"structural_mass_kg"`
	NetPayloadKg       float64  `json:"net_payload_kg"`
	RequiredThicknessM *float64 `json:"required_thickness_m"`
	Option             Option   `json:"option"`
}

// InvalidOptionError reports a construction option outside the known set.
type InvalidOptionError struct {
	Option Option
}

func (e *InvalidOptionError) Error() string {
	names := make([]string, len(Options))
	for i, opt := range Options {
		names[i] = string(opt)
	}
	return fmt.Sprintf("invalid construction option %q, choose from: %s", e.Option, strings.Join(names, ", "))
}

// GeometryError reports a hull whose cylindrical section would be negative.
type GeometryError struct {
	LengthM   float64
	DiameterM float64
}

func (e *GeometryError) Error() string {
	return fmt.Sprintf("length %g m must be at least the diameter %g m", e.LengthM, e.DiameterM)
}

// Geometry is the hull shape derived from length and diameter: a cylinder
// capped by two hemispheres.
type Geometry struct {
	RadiusM               float64
	CylinderLengthM       float64
	CylinderVolumeM3      float64
	SphereVolumeM3        float64
	TotalVolumeM3         float64
	CylinderSurfaceAreaM2 float64
	SphereSurfaceAreaM2   float64
	TotalSurfaceAreaM2    float64
}

// NewGeometry derives the hull geometry. The two hemispherical caps are
// accounted for as one full sphere of the hull radius. Only length < diameter
// is rejected; length == diameter degenerates to a pure sphere and is allowed.
func NewGeometry(lengthM, diameterM float64) (Geometry, error) {
	radius := diameterM / 2
	cylLen := lengthM - 2*radius
	if cylLen < 0 {
		return Geometry{}, &GeometryError{LengthM: lengthM, DiameterM: diameterM}
	}
	g := Geometry{
		RadiusM:         radius,
		CylinderLengthM: cylLen,
	}
	g.CylinderVolumeM3 = math.Pi * radius * radius * cylLen
	g.SphereVolumeM3 = (4.0 / 3.0) * math.Pi * math.Pow(radius, 3)
	g.TotalVolumeM3 = g.CylinderVolumeM3 + g.SphereVolumeM3
	g.CylinderSurfaceAreaM2 = 2 * math.Pi * radius * cylLen
	g.SphereSurfaceAreaM2 = 4 * math.Pi * radius * radius
	g.TotalSurfaceAreaM2 = g.CylinderSurfaceAreaM2 + g.SphereSurfaceAreaM2
	return g, nil
}

// Evaluate computes the theoretical lifting capacity, structural mass and net
// payload of a hull at altitude for one construction option.
func Evaluate(in Input) (Result, error) {
	mat, ok := Materials[in.Option]
	if !ok {
		return Result{}, &InvalidOptionError{Option: in.Option}
	}

	geom, err := NewGeometry(in.LengthM, in.DiameterM)
	if err != nil {
		return Result{}, err
	}

	air, err := atmosphere.Compute(in.AltitudeM)
	if err != nil {
		return Result{}, err
	}

	res := Result{
		TotalVolumeM3:      geom.TotalVolumeM3,
		TotalSurfaceAreaM2: geom.TotalSurfaceAreaM2,
		AirDensityKgM3:     air.DensityKgM3,
		Option:             in.Option,
	}

	switch in.Option {
	case HeliumFilledAirship:
		rhoHe := gas.Density(air.PressurePa, air.TemperatureK)
		res.LiftingCapacityKg = geom.TotalVolumeM3 * (air.DensityKgM3 - rhoHe)
		t := heliumShellThicknessM
		res.RequiredThicknessM = &t
		res.StructuralMassKg = shellMass(geom, t, mat)

	case MonocoqueShell:
		// Evacuated rigid shell: full buoyancy, thickness set by buckling
		// under the external pressure differential.
		res.LiftingCapacityKg = air.DensityKgM3 * geom.TotalVolumeM3
		tSphere := geom.RadiusM * math.Sqrt((air.PressurePa*math.Sqrt(3*(1-mat.PoissonsRatio*mat.PoissonsRatio)))/(2*mat.YoungsModulusPa))
		tCyl := cylinderBucklingThickness(geom, air.PressurePa, mat)
		t := math.Max(tSphere, tCyl) * safetyFactor
		res.RequiredThicknessM = &t
		res.StructuralMassKg = shellMass(geom, t, mat)

	case GeodesicFramework:
		res.LiftingCapacityKg = air.DensityKgM3 * geom.TotalVolumeM3
		res.StructuralMassKg = geodesicMassFraction * monocoqueReferenceMass(geom, air.PressurePa, mat)

	case SandwichPanel:
		res.LiftingCapacityKg = air.DensityKgM3 * geom.TotalVolumeM3
		t := 2*sandwichSkinM + sandwichCoreM
		res.RequiredThicknessM = &t
		res.StructuralMassKg = shellMass(geom, t, mat)

	case TensegrityStructure:
		res.LiftingCapacityKg = air.DensityKgM3 * geom.TotalVolumeM3
		res.StructuralMassKg = tensegrityMassFraction * monocoqueReferenceMass(geom, air.PressurePa, mat)
	}

	res.NetPayloadKg = res.LiftingCapacityKg - res.StructuralMassKg
	return res, nil
}

// EvaluateAll evaluates one hull against every construction option, in menu
// order.
func EvaluateAll(lengthM, diameterM, altitudeM float64) ([]Result, error) {
	out := make([]Result, 0, len(Options))
	for _, opt := range Options {
		res, err := Evaluate(Input{LengthM: lengthM, DiameterM: diameterM, AltitudeM: altitudeM, Option: opt})
		if err != nil {
			return nil, err
		}
		out = append(out, res)
	}
	return out, nil
}

func shellMass(g Geometry, thicknessM float64, mat Material) float64 {
	return g.TotalSurfaceAreaM2 * thicknessM * mat.DensityKgM3
}

func cylinderBucklingThickness(g Geometry, pressurePa float64, mat Material) float64 {
	return g.RadiusM * math.Sqrt(pressurePa/(mat.YoungsModulusPa*(1-mat.PoissonsRatio*mat.PoissonsRatio)))
}

// monocoqueReferenceMass is the mass of an equivalent monocoque shell at the
// cylindrical buckling thickness, no safety factor. Framework options take a
// fixed fraction of it.
func monocoqueReferenceMass(g Geometry, pressurePa float64, mat Material) float64 {
	return shellMass(g, cylinderBucklingThickness(g, pressurePa, mat), mat)
}
