// Package fov provides the two field-of-view primitives consumed by the
// fog of war: a terrain-aware sweep for ground observers and an
// unobstructed disc for air observers. Both visit every in-bounds hex
// they consider visible exactly once, origin included; callers never see
// an out-of-bounds position.
package fov

import "github.com/hexfront/engine/internal/game/core"

// TerrainSource is the slice of game state the primitives read.
type TerrainSource interface {
	Map() *core.Map[core.Terrain]
	ObjectsAt(pos core.MapPos) []core.Object
}

// Visitor receives each visible position.
type Visitor func(pos core.MapPos)

// Fov enumerates the hexes a ground observer at origin can see within
// rng, culling tiles whose connecting line crosses sight-blocking
// terrain or objects. Blocking tiles are themselves visible; only tiles
// behind them are hidden.
func Fov(state TerrainSource, origin core.MapPos, rng int, visit Visitor) {
	m := state.Map()
	for _, pos := range core.PositionsInRange(origin, rng) {
		if !m.InBounds(pos) {
			continue
		}
		if lineOfSight(state, origin, pos) {
			visit(pos)
		}
	}
}

// SimpleFov enumerates every in-bounds hex within rng of origin with no
// occlusion at all.
func SimpleFov(state TerrainSource, origin core.MapPos, rng int, visit Visitor) {
	m := state.Map()
	for _, pos := range core.PositionsInRange(origin, rng) {
		if m.InBounds(pos) {
			visit(pos)
		}
	}
}

// lineOfSight checks the hexes strictly between origin and target for
// occluders. Endpoints never block themselves.
func lineOfSight(state TerrainSource, origin, target core.MapPos) bool {
	line := origin.Line(target)
	if len(line) <= 2 {
		return true
	}
	m := state.Map()
	for _, pos := range line[1 : len(line)-1] {
		if !m.InBounds(pos) {
			// Rounded line points may fall off a map edge; treat the
			// edge as open ground.
			continue
		}
		if m.Tile(pos).BlocksSight() {
			return false
		}
		if objectsBlock(state.ObjectsAt(pos)) {
			return false
		}
	}
	return true
}

func objectsBlock(objects []core.Object) bool {
	for _, obj := range objects {
		if obj.Class.BlocksSight() {
			return true
		}
	}
	return false
}
