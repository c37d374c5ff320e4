package airship

import (
	"errors"
	"math"
	"testing"

	atmosphere "Aerostat/internal/calc/atmosphere"
	gas "Aerostat/internal/calc/gas"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGeometry(t *testing.T) {
	g, err := NewGeometry(200, 40)
	require.NoError(t, err)

	assert.Equal(t, 20.0, g.RadiusM)
	assert.Equal(t, 160.0, g.CylinderLengthM)

	wantCylVol := math.Pi * 20 * 20 * 160
	wantSphVol := (4.0 / 3.0) * math.Pi * 20 * 20 * 20
	assert.InEpsilon(t, wantCylVol, g.CylinderVolumeM3, 1e-12)
	assert.InEpsilon(t, wantSphVol, g.SphereVolumeM3, 1e-12)
	assert.InEpsilon(t, wantCylVol+wantSphVol, g.TotalVolumeM3, 1e-12)

	wantCylArea := 2 * math.Pi * 20 * 160
	wantSphArea := 4 * math.Pi * 20 * 20
	assert.InEpsilon(t, wantCylArea+wantSphArea, g.TotalSurfaceAreaM2, 1e-12)
}

func TestNewGeometrySphereDegenerate(t *testing.T) {
	// length == diameter leaves a zero-length cylinder, which is allowed.
	g, err := NewGeometry(40, 40)
	require.NoError(t, err)

	assert.Equal(t, 0.0, g.CylinderLengthM)
	assert.Equal(t, 0.0, g.CylinderVolumeM3)
	assert.InEpsilon(t, (4.0/3.0)*math.Pi*20*20*20, g.TotalVolumeM3, 1e-12)
}

func TestNewGeometryRejectsShortHull(t *testing.T) {
	_, err := NewGeometry(30, 40)
	require.Error(t, err)

	var ge *GeometryError
	assert.True(t, errors.As(err, &ge))
}

func TestEvaluateInvalidOption(t *testing.T) {
	_, err := Evaluate(Input{LengthM: 200, DiameterM: 40, AltitudeM: 1000, Option: "Balsa Wood"})
	require.Error(t, err)

	var ioe *InvalidOptionError
	require.True(t, errors.As(err, &ioe))
	assert.Contains(t, err.Error(), string(MonocoqueShell))
	assert.Contains(t, err.Error(), string(HeliumFilledAirship))
}

func TestEvaluateGeometryError(t *testing.T) {
	_, err := Evaluate(Input{LengthM: 30, DiameterM: 40, AltitudeM: 1000, Option: MonocoqueShell})
	require.Error(t, err)

	var ge *GeometryError
	assert.True(t, errors.As(err, &ge))
}

func TestEvaluatePropagatesAltitudeError(t *testing.T) {
	_, err := Evaluate(Input{LengthM: 200, DiameterM: 40, AltitudeM: 11000, Option: MonocoqueShell})
	require.Error(t, err)

	var de *atmosphere.DomainError
	assert.True(t, errors.As(err, &de))
}

func TestEvaluateMonocoqueShell(t *testing.T) {
	res, err := Evaluate(Input{LengthM: 200, DiameterM: 40, AltitudeM: 1000, Option: MonocoqueShell})
	require.NoError(t, err)

	air, err := atmosphere.Compute(1000)
	require.NoError(t, err)

	geom, err := NewGeometry(200, 40)
	require.NoError(t, err)

	assert.InDelta(t, 1.1117, res.AirDensityKgM3, 1e-3)
	assert.InEpsilon(t, air.DensityKgM3*geom.TotalVolumeM3, res.LiftingCapacityKg, 1e-9)

	mat := Materials[MonocoqueShell]
	tSphere := 20 * math.Sqrt((air.PressurePa*math.Sqrt(3*(1-0.3*0.3)))/(2*mat.YoungsModulusPa))
	tCyl := 20 * math.Sqrt(air.PressurePa/(mat.YoungsModulusPa*(1-0.3*0.3)))
	wantThickness := math.Max(tSphere, tCyl) * 2

	require.NotNil(t, res.RequiredThicknessM)
	assert.InEpsilon(t, wantThickness, *res.RequiredThicknessM, 1e-6)
	assert.InEpsilon(t, geom.TotalSurfaceAreaM2*wantThickness*mat.DensityKgM3, res.StructuralMassKg, 1e-6)
	assert.Equal(t, res.LiftingCapacityKg-res.StructuralMassKg, res.NetPayloadKg)
}

func TestEvaluateHeliumFilled(t *testing.T) {
	res, err := Evaluate(Input{LengthM: 200, DiameterM: 40, AltitudeM: 1000, Option: HeliumFilledAirship})
	require.NoError(t, err)

	air, err := atmosphere.Compute(1000)
	require.NoError(t, err)

	geom, err := NewGeometry(200, 40)
	require.NoError(t, err)

	rhoHe := gas.Density(air.PressurePa, air.TemperatureK)
	assert.InEpsilon(t, geom.TotalVolumeM3*(air.DensityKgM3-rhoHe), res.LiftingCapacityKg, 1e-9)

	require.NotNil(t, res.RequiredThicknessM)
	assert.Equal(t, 0.001, *res.RequiredThicknessM)
	assert.InEpsilon(t, geom.TotalSurfaceAreaM2*0.001*1600, res.StructuralMassKg, 1e-9)
}

func TestEvaluateFrameworkOptions(t *testing.T) {
	air, err := atmosphere.Compute(1000)
	require.NoError(t, err)

	geom, err := NewGeometry(200, 40)
	require.NoError(t, err)

	cases := []struct {
		option   Option
		fraction float64
	}{
		{GeodesicFramework, 0.5},
		{TensegrityStructure, 0.4},
	}
	for _, tc := range cases {
		res, err := Evaluate(Input{LengthM: 200, DiameterM: 40, AltitudeM: 1000, Option: tc.option})
		require.NoError(t, err, tc.option)

		assert.Nil(t, res.RequiredThicknessM, "%s has no single thickness", tc.option)

		mat := Materials[tc.option]
		tCyl := 20 * math.Sqrt(air.PressurePa/(mat.YoungsModulusPa*(1-0.3*0.3)))
		wantMass := tc.fraction * geom.TotalSurfaceAreaM2 * tCyl * mat.DensityKgM3
		assert.InEpsilon(t, wantMass, res.StructuralMassKg, 1e-6, tc.option)
		assert.Equal(t, res.LiftingCapacityKg-res.StructuralMassKg, res.NetPayloadKg, tc.option)
	}
}

func TestEvaluateSandwichPanel(t *testing.T) {
	res, err := Evaluate(Input{LengthM: 200, DiameterM: 40, AltitudeM: 1000, Option: SandwichPanel})
	require.NoError(t, err)

	geom, err := NewGeometry(200, 40)
	require.NoError(t, err)

	require.NotNil(t, res.RequiredThicknessM)
	assert.InEpsilon(t, 0.012, *res.RequiredThicknessM, 1e-9)
	assert.InEpsilon(t, geom.TotalSurfaceAreaM2*0.012*800, res.StructuralMassKg, 1e-6)
}

func TestEvaluateIdempotent(t *testing.T) {
	in := Input{LengthM: 120, DiameterM: 30, AltitudeM: 2500, Option: GeodesicFramework}

	first, err := Evaluate(in)
	require.NoError(t, err)
	second, err := Evaluate(in)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestEvaluateAll(t *testing.T) {
	results, err := EvaluateAll(200, 40, 1000)
	require.NoError(t, err)

	require.Len(t, results, len(Options))
	for i, res := range results {
		assert.Equal(t, Options[i], res.Option)
		assert.Greater(t, res.TotalVolumeM3, 0.0)
		assert.Equal(t, res.LiftingCapacityKg-res.StructuralMassKg, res.NetPayloadKg)
	}
}

func TestEvaluateAllPropagatesErrors(t *testing.T) {
	_, err := EvaluateAll(30, 40, 1000)
	require.Error(t, err)
}
