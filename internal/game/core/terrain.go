package core

// Terrain classifies a map tile.
type Terrain int

const (
	TerrainPlain Terrain = iota
	TerrainTrees
	TerrainCity
	TerrainWater
)

// String returns the terrain name.
func (t Terrain) String() string {
	switch t {
	case TerrainPlain:
		return "plain"
	case TerrainTrees:
		return "trees"
	case TerrainCity:
		return "city"
	case TerrainWater:
		return "water"
	default:
		return "unknown"
	}
}

// BlocksSight reports whether this terrain occludes tiles behind it.
func (t Terrain) BlocksSight() bool {
	return t == TerrainTrees || t == TerrainCity
}

// ObjectID identifies a map object.
type ObjectID int

// ObjectClass classifies a map object.
type ObjectClass int

const (
	ObjectBuilding ObjectClass = iota
	ObjectSmoke
	ObjectRoad
	ObjectReinforcementSector
)

// String returns the object class name.
func (c ObjectClass) String() string {
	switch c {
	case ObjectBuilding:
		return "building"
	case ObjectSmoke:
		return "smoke"
	case ObjectRoad:
		return "road"
	case ObjectReinforcementSector:
		return "reinforcement_sector"
	default:
		return "unknown"
	}
}

// BlocksSight reports whether this object class occludes tiles behind it.
func (c ObjectClass) BlocksSight() bool {
	return c == ObjectBuilding || c == ObjectSmoke
}

// Object is a static or semi-static feature occupying a tile: buildings
// and smoke conceal and occlude, roads and reinforcement sectors are
// purely informational.
type Object struct {
	ID    ObjectID
	Class ObjectClass
	Pos   MapPos
}
