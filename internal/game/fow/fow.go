// Package fow maintains per-player fog of war for a match. Each player
// owns one Fow; it replays the authoritative event stream and answers
// whether an enemy unit at a given position is observable.
package fow

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/hexfront/engine/internal/game/core"
	"github.com/hexfront/engine/internal/game/db"
	"github.com/hexfront/engine/internal/game/events"
	"github.com/hexfront/engine/internal/game/fov"
)

// Visibility is how well the owning player sees a tile. Values are
// totally ordered; merging contributions from multiple observers takes
// the maximum. A degraded level between None and Normal was considered
// and left out; new levels slot in between the existing constants.
type Visibility int

const (
	VisibilityNone Visibility = iota
	VisibilityNormal
	VisibilityExcellent
)

// String returns the visibility level name.
func (v Visibility) String() string {
	switch v {
	case VisibilityNone:
		return "none"
	case VisibilityNormal:
		return "normal"
	case VisibilityExcellent:
		return "excellent"
	default:
		return "unknown"
	}
}

// Join returns the larger of two visibility values.
func (v Visibility) Join(other Visibility) Visibility {
	if other > v {
		return other
	}
	return v
}

// GameState is the read-only slice of authoritative match state the fog
// of war consults. Implementations must resolve every id the event
// stream references; a dangling id is a programmer error.
type GameState interface {
	Map() *core.Map[core.Terrain]
	Units() []*core.Unit
	Unit(id core.UnitID) *core.Unit
	ObjectsAt(pos core.MapPos) []core.Object
}

// calcVisibility rates how well an observer of the given type standing
// at origin sees the target tile. Within the cover radius concealment
// is ignored entirely; beyond it, dense terrain and concealing objects
// degrade Excellent to Normal but never hide the tile outright.
func calcVisibility(state GameState, unitType core.UnitType, origin, target core.MapPos) Visibility {
	dist := core.Distance(origin, target)
	if dist > unitType.LosRange {
		return VisibilityNone
	}
	if dist <= unitType.CoverLosRange {
		return VisibilityExcellent
	}
	var vis Visibility
	switch state.Map().Tile(target) {
	case core.TerrainCity, core.TerrainTrees:
		vis = VisibilityNormal
	case core.TerrainPlain, core.TerrainWater:
		vis = VisibilityExcellent
	default:
		panic(fmt.Sprintf("unhandled terrain %v at %v", state.Map().Tile(target), target))
	}
	for _, object := range state.ObjectsAt(target) {
		switch object.Class {
		case core.ObjectBuilding, core.ObjectSmoke:
			vis = VisibilityNormal
		case core.ObjectRoad, core.ObjectReinforcementSector:
		}
	}
	return vis
}

// fovUnit sweeps one observer's field of view and merges it into fowMap
// by pointwise join. Air units sweep an unobstructed disc; ground units
// respect terrain occlusion. Tiles outside the sweep are untouched.
func fovUnit(d *db.Db, state GameState, fowMap *core.Map[Visibility], unit *core.Unit) {
	if !unit.IsAlive {
		panic(fmt.Sprintf("fov sweep for dead unit %d", unit.ID))
	}
	origin := unit.Pos.MapPos
	unitType := d.UnitType(unit.TypeID)
	sweep := fov.Fov
	if unitType.IsAir {
		sweep = fov.SimpleFov
	}
	sweep(state, origin, unitType.LosRange, func(pos core.MapPos) {
		vis := calcVisibility(state, unitType, origin, pos)
		tile := fowMap.TileMut(pos)
		*tile = tile.Join(vis)
	})
}

// Fow is one player's fog of war map. It is mutated only through
// ApplyEvent; the caller serializes events in stream order.
type Fow struct {
	vmap     *core.Map[Visibility]
	playerID core.PlayerID
	db       *db.Db
	logger   zerolog.Logger
}

// New creates a fog of war for one player, every tile unseen. The
// database handle is shared read-only and must outlive the Fow.
func New(d *db.Db, mapSize core.Size2, playerID core.PlayerID) *Fow {
	return &Fow{
		vmap:     core.NewMap[Visibility](mapSize),
		playerID: playerID,
		db:       d,
		logger: log.With().
			Str("component", "fow").
			Int("player_id", int(playerID)).
			Logger(),
	}
}

// PlayerID returns the owning player.
func (f *Fow) PlayerID() core.PlayerID { return f.playerID }

// TileVisibility returns the stored visibility at pos.
func (f *Fow) TileVisibility(pos core.MapPos) Visibility {
	return f.vmap.Tile(pos)
}

// IsTileVisible reports whether the owning player sees the tile at all,
// regardless of what kind of unit might be standing on it.
func (f *Fow) IsTileVisible(pos core.MapPos) bool {
	switch f.vmap.Tile(pos) {
	case VisibilityExcellent, VisibilityNormal:
		return true
	default:
		return false
	}
}

// checkTerrainVisibility gates on the candidate's own type: infantry
// hides in partially seen tiles, vehicles do not. It is the observed
// unit's concealability that matters here, not who is looking.
func (f *Fow) checkTerrainVisibility(unitType core.UnitType, pos core.MapPos) bool {
	switch f.vmap.Tile(pos) {
	case VisibilityExcellent:
		return true
	case VisibilityNormal:
		return !unitType.IsInfantry
	default:
		return false
	}
}

// IsVisible decides whether the given unit, standing at pos, is
// observable by the owning player. Loaded units are never observable.
// Air candidates are additionally revealed by proximity: any unit of
// any other player within its raw LOS range spots them, terrain and
// cover radius notwithstanding.
func (f *Fow) IsVisible(state GameState, unit *core.Unit, pos core.ExactPos) bool {
	if unit.IsLoaded {
		return false
	}
	unitType := f.db.UnitType(unit.TypeID)
	if unitType.IsAir {
		for _, other := range state.Units() {
			if other.PlayerID == unit.PlayerID {
				continue
			}
			otherType := f.db.UnitType(other.TypeID)
			if core.Distance(pos.MapPos, other.Pos.MapPos) <= otherType.LosRange {
				return true
			}
		}
	}
	return f.checkTerrainVisibility(unitType, pos.MapPos)
}

func (f *Fow) clear() {
	for _, pos := range f.vmap.Iter() {
		*f.vmap.TileMut(pos) = VisibilityNone
	}
}

// reset rebuilds the map from scratch: every tile forgotten, then one
// sweep per alive owned unit. Attack reveals and contributions from
// units that died or moved away do not survive it.
func (f *Fow) reset(state GameState) {
	f.clear()
	for _, unit := range state.Units() {
		if unit.PlayerID == f.playerID && unit.IsAlive {
			fovUnit(f.db, state, f.vmap, unit)
		}
	}
	f.logger.Debug().Msg("Reset fog of war from game state")
}

// ApplyEvent advances the fog of war by one core event. Events must
// arrive in exact stream order. Sweeps triggered by movement, creation,
// unloading and detaching are scoped to the owning player; the
// non-ambush attack reveal is not, every player learns the attacker's
// tile.
func (f *Fow) ApplyEvent(state GameState, event events.CoreEvent) {
	switch ev := event.(type) {
	case *events.MoveEvent:
		unit := state.Unit(ev.UnitID)
		if unit.PlayerID == f.playerID {
			fovUnit(f.db, state, f.vmap, unit)
		}
	case *events.EndTurnEvent:
		if f.playerID == ev.NewID {
			f.reset(state)
		}
	case *events.CreateUnitEvent:
		if f.playerID == ev.UnitInfo.PlayerID {
			fovUnit(f.db, state, f.vmap, state.Unit(ev.UnitInfo.UnitID))
		}
	case *events.AttackUnitEvent:
		if ev.Attack.AttackerID != nil && !ev.Attack.IsAmbush {
			pos := state.Unit(*ev.Attack.AttackerID).Pos
			// TODO: do not give away all units in this tile
			*f.vmap.TileMut(pos.MapPos) = VisibilityExcellent
		}
	case *events.UnloadUnitEvent:
		if f.playerID == ev.UnitInfo.PlayerID {
			fovUnit(f.db, state, f.vmap, state.Unit(ev.UnitInfo.UnitID))
		}
	case *events.DetachEvent:
		transporter := state.Unit(ev.TransporterID)
		if f.playerID == transporter.PlayerID {
			fovUnit(f.db, state, f.vmap, transporter)
		}
	case *events.ShowUnitEvent,
		*events.HideUnitEvent,
		*events.LoadUnitEvent,
		*events.AttachEvent,
		*events.SetReactionFireModeEvent,
		*events.SectorOwnerChangedEvent,
		*events.SmokeEvent,
		*events.RemoveSmokeEvent,
		*events.VictoryPointEvent:
		// No visibility impact.
	default:
		panic(fmt.Sprintf("unhandled core event %T", event))
	}
}
