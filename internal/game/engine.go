package game

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/hexfront/engine/internal/game/core"
	"github.com/hexfront/engine/internal/game/db"
	"github.com/hexfront/engine/internal/game/events"
	"github.com/hexfront/engine/internal/game/fow"
)

// Engine drives a match: it owns the authoritative state, one fog of
// war per player, and the observer bus. Every mutation flows through
// ApplyEvent so state and all fogs of war stay consistent with the
// same event prefix.
type Engine struct {
	matchID string
	state   *State
	db      *db.Db
	fows    []*fow.Fow
	bus     *events.EventBus
	logger  zerolog.Logger

	nextUnitID   core.UnitID
	nextObjectID core.ObjectID
}

// NewEngine creates an engine for the given number of players over an
// already populated state. Player ids are 0..players-1; player 0 moves
// first.
func NewEngine(d *db.Db, state *State, players int) *Engine {
	if players < 1 {
		panic(fmt.Sprintf("match needs at least one player, got %d", players))
	}
	matchID := uuid.New().String()
	fows := make([]*fow.Fow, players)
	for pid := range fows {
		fows[pid] = fow.New(d, state.Map().Size(), core.PlayerID(pid))
	}
	e := &Engine{
		matchID: matchID,
		state:   state,
		db:      d,
		fows:    fows,
		bus:     events.NewEventBus(),
		logger: log.With().
			Str("component", "engine").
			Str("match_id", matchID).
			Logger(),
	}
	e.logger.Info().
		Int("players", players).
		Int("map_w", state.Map().Size().W).
		Int("map_h", state.Map().Size().H).
		Msg("Match created")
	return e
}

// MatchID returns the unique id of this match.
func (e *Engine) MatchID() string { return e.matchID }

// State returns the authoritative state.
func (e *Engine) State() *State { return e.state }

// Bus returns the observer event bus.
func (e *Engine) Bus() *events.EventBus { return e.bus }

// Db returns the shared unit-type database.
func (e *Engine) Db() *db.Db { return e.db }

// Players returns the number of players.
func (e *Engine) Players() int { return len(e.fows) }

// Fow returns the fog of war of one player.
func (e *Engine) Fow(playerID core.PlayerID) *fow.Fow {
	if int(playerID) < 0 || int(playerID) >= len(e.fows) {
		panic(fmt.Sprintf("no fog of war for player %d", playerID))
	}
	return e.fows[playerID]
}

// IsVisible reports whether the viewing player currently observes the
// given unit at its present position.
func (e *Engine) IsVisible(viewer core.PlayerID, unit *core.Unit) bool {
	return e.Fow(viewer).IsVisible(e.state, unit, unit.Pos)
}

// ApplyEvent folds one event into the match: authoritative state
// first, then every player's fog of war in player order, then the
// observer bus. Callers must apply events in stream order.
func (e *Engine) ApplyEvent(event events.CoreEvent) {
	e.logger.Debug().
		Str("event_type", event.Type()).
		Msg("Applying core event")
	e.state.ApplyEvent(event)
	for _, f := range e.fows {
		f.ApplyEvent(e.state, event)
	}
	e.bus.Publish(event)
}

// CreateUnit validates and spawns a unit, returning its id.
func (e *Engine) CreateUnit(typeID core.UnitTypeID, playerID core.PlayerID, pos core.ExactPos) (core.UnitID, error) {
	if int(playerID) < 0 || int(playerID) >= len(e.fows) {
		return core.NoUnitID, fmt.Errorf("player %d: %w", playerID, core.ErrInvalidPlayer)
	}
	if int(typeID) < 0 || int(typeID) >= e.db.Len() {
		return core.NoUnitID, fmt.Errorf("type %d: %w", typeID, core.ErrUnknownUnitType)
	}
	if !e.state.Map().InBounds(pos.MapPos) {
		return core.NoUnitID, fmt.Errorf("%v: %w", pos.MapPos, core.ErrInvalidPosition)
	}
	if e.slotOccupied(pos, core.NoUnitID) {
		return core.NoUnitID, fmt.Errorf("%v: %w", pos, core.ErrOccupiedSlot)
	}
	id := e.nextUnitID
	e.nextUnitID++
	e.ApplyEvent(events.NewCreateUnitEvent(e.matchID, core.UnitInfo{
		UnitID:   id,
		TypeID:   typeID,
		PlayerID: playerID,
		Pos:      pos,
	}))
	return id, nil
}

// MoveUnit validates and moves a unit to a new exact position.
func (e *Engine) MoveUnit(unitID core.UnitID, to core.ExactPos) error {
	if !e.state.HasUnit(unitID) {
		return fmt.Errorf("unit %d: %w", unitID, core.ErrUnknownUnit)
	}
	if !e.state.Map().InBounds(to.MapPos) {
		return fmt.Errorf("%v: %w", to.MapPos, core.ErrInvalidPosition)
	}
	if e.slotOccupied(to, unitID) {
		return fmt.Errorf("%v: %w", to, core.ErrOccupiedSlot)
	}
	from := e.state.Unit(unitID).Pos
	e.ApplyEvent(events.NewMoveEvent(e.matchID, unitID, from, to))
	return nil
}

// Attack resolves an attack. A non-ambush attack reveals the
// attacker's tile to every player.
func (e *Engine) Attack(attackerID, defenderID core.UnitID, killed int, ambush bool) error {
	if !e.state.HasUnit(attackerID) {
		return fmt.Errorf("attacker %d: %w", attackerID, core.ErrUnknownUnit)
	}
	if !e.state.HasUnit(defenderID) {
		return fmt.Errorf("defender %d: %w", defenderID, core.ErrUnknownUnit)
	}
	id := attackerID
	e.ApplyEvent(events.NewAttackUnitEvent(e.matchID, events.AttackInfo{
		AttackerID: &id,
		DefenderID: defenderID,
		Killed:     killed,
		IsAmbush:   ambush,
	}))
	return nil
}

// slotOccupied reports whether an on-map unit other than ignore holds
// the exact position.
func (e *Engine) slotOccupied(pos core.ExactPos, ignore core.UnitID) bool {
	for _, u := range e.state.Units() {
		if u.ID == ignore || !u.IsAlive || u.IsLoaded {
			continue
		}
		if u.Pos == pos {
			return true
		}
	}
	return false
}

// EndTurn passes the turn to the next player in id order.
func (e *Engine) EndTurn() {
	old := e.state.CurrentPlayer()
	next := core.PlayerID((int(old) + 1) % len(e.fows))
	e.ApplyEvent(events.NewEndTurnEvent(e.matchID, old, next))
}

// LoadUnit boards a passenger onto a transporter.
func (e *Engine) LoadUnit(transporterID, passengerID core.UnitID) {
	e.ApplyEvent(events.NewLoadUnitEvent(e.matchID, transporterID, passengerID))
}

// UnloadUnit drops a passenger at the given position.
func (e *Engine) UnloadUnit(transporterID, passengerID core.UnitID, pos core.ExactPos) {
	passenger := e.state.Unit(passengerID)
	e.ApplyEvent(events.NewUnloadUnitEvent(e.matchID, transporterID, core.UnitInfo{
		UnitID:   passengerID,
		TypeID:   passenger.TypeID,
		PlayerID: passenger.PlayerID,
		Pos:      pos,
	}))
}

// PlaceSmoke puts a smoke screen on a tile and returns the object id.
func (e *Engine) PlaceSmoke(shooterID *core.UnitID, pos core.MapPos) core.ObjectID {
	id := e.nextObjectID
	e.nextObjectID++
	e.ApplyEvent(events.NewSmokeEvent(e.matchID, id, shooterID, pos))
	return id
}

// SeedObjectIDs advances the object id counter past ids already used
// by pre-placed map objects.
func (e *Engine) SeedObjectIDs(next core.ObjectID) {
	if next > e.nextObjectID {
		e.nextObjectID = next
	}
}
