// Package mapgen produces the terrain map and the static object layer
// (roads, buildings, reinforcement sectors) of a match.
package mapgen

import (
	"math/rand"

	"github.com/hexfront/engine/internal/game/core"
)

// MapConfig holds configuration for map generation
type MapConfig struct {
	Width         int
	Height        int
	TreesRatio    int // 1 trees tile per N tiles
	CityRatio     int // 1 city tile per N tiles
	WaterRatio    int // 1 water tile per N tiles
	BuildingRatio int // 1 building object per N city tiles, rounded up
	RoadLength    int // 0 disables road placement
	SectorCount   int
}

// DefaultMapConfig returns a sensible default configuration
func DefaultMapConfig(w, h int) MapConfig {
	return MapConfig{
		Width:         w,
		Height:        h,
		TreesRatio:    8,
		CityRatio:     25,
		WaterRatio:    20,
		BuildingRatio: 2,
		RoadLength:    w,
		SectorCount:   2,
	}
}

// Generator handles map generation with deterministic RNG
type Generator struct {
	config MapConfig
	rng    *rand.Rand
}

// NewGenerator creates a new map generator
func NewGenerator(config MapConfig, rng *rand.Rand) *Generator {
	return &Generator{
		config: config,
		rng:    rng,
	}
}

// GenerateTerrain creates a terrain map, mostly plains with scattered
// trees, cities and water.
func (g *Generator) GenerateTerrain() *core.Map[core.Terrain] {
	size := core.Size2{W: g.config.Width, H: g.config.Height}
	terrain := core.NewMap[core.Terrain](size)

	g.scatter(terrain, core.TerrainTrees, g.config.TreesRatio)
	g.scatter(terrain, core.TerrainCity, g.config.CityRatio)
	g.scatter(terrain, core.TerrainWater, g.config.WaterRatio)

	return terrain
}

// GenerateObjects places the static object layer for the given terrain:
// buildings on some city tiles, a road across the map, and
// reinforcement sectors. Object ids start at 0 and are dense.
func (g *Generator) GenerateObjects(terrain *core.Map[core.Terrain]) []core.Object {
	var objects []core.Object

	// Buildings go on city tiles so that built-up areas both conceal
	// and occlude.
	cityTiles := g.tilesOf(terrain, core.TerrainCity)
	want := 0
	if g.config.BuildingRatio > 0 {
		want = (len(cityTiles) + g.config.BuildingRatio - 1) / g.config.BuildingRatio
	}
	for i := 0; i < want; i++ {
		objects = append(objects, core.Object{
			ID:    core.ObjectID(len(objects)),
			Class: core.ObjectBuilding,
			Pos:   cityTiles[i],
		})
	}

	if g.config.RoadLength > 0 {
		objects = g.placeRoad(terrain, objects)
	}

	for i := 0; i < g.config.SectorCount; i++ {
		objects = append(objects, core.Object{
			ID:    core.ObjectID(len(objects)),
			Class: core.ObjectReinforcementSector,
			Pos:   g.randomTile(terrain),
		})
	}

	return objects
}

// scatter converts roughly Count/ratio plain tiles to the given terrain.
func (g *Generator) scatter(terrain *core.Map[core.Terrain], t core.Terrain, ratio int) {
	if ratio <= 0 {
		return
	}
	want := terrain.Size().Count() / ratio
	placed := 0

	// Bounded attempts so dense configs cannot loop forever.
	maxAttempts := want * 10
	for attempts := 0; placed < want && attempts < maxAttempts; attempts++ {
		pos := g.randomTile(terrain)
		tile := terrain.TileMut(pos)
		if *tile == core.TerrainPlain {
			*tile = t
			placed++
		}
	}
}

// placeRoad lays a west-to-east run of road objects along one row,
// skipping water.
func (g *Generator) placeRoad(terrain *core.Map[core.Terrain], objects []core.Object) []core.Object {
	y := g.rng.Intn(terrain.Size().H)
	length := g.config.RoadLength
	if length > terrain.Size().W {
		length = terrain.Size().W
	}
	for x := 0; x < length; x++ {
		pos := core.NewMapPos(x, y)
		if terrain.Tile(pos) == core.TerrainWater {
			continue
		}
		objects = append(objects, core.Object{
			ID:    core.ObjectID(len(objects)),
			Class: core.ObjectRoad,
			Pos:   pos,
		})
	}
	return objects
}

func (g *Generator) randomTile(terrain *core.Map[core.Terrain]) core.MapPos {
	return core.NewMapPos(g.rng.Intn(terrain.Size().W), g.rng.Intn(terrain.Size().H))
}

func (g *Generator) tilesOf(terrain *core.Map[core.Terrain], t core.Terrain) []core.MapPos {
	var result []core.MapPos
	for _, pos := range terrain.Iter() {
		if terrain.Tile(pos) == t {
			result = append(result, pos)
		}
	}
	return result
}
