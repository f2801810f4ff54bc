package testutil

import (
	"github.com/hexfront/engine/internal/game/core"
)

// CreateTestTerrain creates an all-plain terrain map with the given dimensions
func CreateTestTerrain(width, height int) *core.Map[core.Terrain] {
	return core.NewMap[core.Terrain](core.Size2{W: width, H: height})
}

// CreateTestTerrainWithTiles creates a terrain map and overrides specific tiles
func CreateTestTerrainWithTiles(width, height int, tiles map[core.MapPos]core.Terrain) *core.Map[core.Terrain] {
	terrain := CreateTestTerrain(width, height)
	for pos, t := range tiles {
		*terrain.TileMut(pos) = t
	}
	return terrain
}

// VehicleType returns a ground vehicle unit type for tests
func VehicleType(losRange, coverLosRange int) core.UnitType {
	return core.UnitType{
		Name:          "test_vehicle",
		LosRange:      losRange,
		CoverLosRange: coverLosRange,
	}
}

// InfantryType returns an infantry unit type for tests
func InfantryType(losRange, coverLosRange int) core.UnitType {
	return core.UnitType{
		Name:          "test_infantry",
		LosRange:      losRange,
		CoverLosRange: coverLosRange,
		IsInfantry:    true,
	}
}

// AirType returns an air unit type for tests
func AirType(losRange, coverLosRange int) core.UnitType {
	return core.UnitType{
		Name:          "test_air",
		LosRange:      losRange,
		CoverLosRange: coverLosRange,
		IsAir:         true,
	}
}
