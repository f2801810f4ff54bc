package game

import (
	"fmt"
	"sort"

	"github.com/hexfront/engine/internal/game/core"
	"github.com/hexfront/engine/internal/game/events"
)

// State is the authoritative match state: terrain, units, objects,
// sector ownership and scores. It mutates only through ApplyEvent so
// that it stays a pure function of the event stream prefix.
type State struct {
	terrain   *core.Map[core.Terrain]
	units     map[core.UnitID]*core.Unit
	unitOrder []core.UnitID
	objects   map[core.ObjectID]core.Object
	sectors   map[core.SectorID]core.PlayerID
	scores    map[core.PlayerID]int
	current   core.PlayerID
}

// NewState creates a state over the given terrain with no units.
func NewState(terrain *core.Map[core.Terrain]) *State {
	return &State{
		terrain: terrain,
		units:   make(map[core.UnitID]*core.Unit),
		objects: make(map[core.ObjectID]core.Object),
		sectors: make(map[core.SectorID]core.PlayerID),
		scores:  make(map[core.PlayerID]int),
	}
}

// Map returns the terrain map.
func (s *State) Map() *core.Map[core.Terrain] { return s.terrain }

// Units returns every unit in creation order. Dead units stay in the
// list; callers filter on IsAlive.
func (s *State) Units() []*core.Unit {
	result := make([]*core.Unit, 0, len(s.unitOrder))
	for _, id := range s.unitOrder {
		if u, ok := s.units[id]; ok {
			result = append(result, u)
		}
	}
	return result
}

// Unit resolves a unit id. An unknown id is a programmer error.
func (s *State) Unit(id core.UnitID) *core.Unit {
	u, ok := s.units[id]
	if !ok {
		panic(fmt.Sprintf("unknown unit id %d", id))
	}
	return u
}

// HasUnit reports whether the unit id is known.
func (s *State) HasUnit(id core.UnitID) bool {
	_, ok := s.units[id]
	return ok
}

// ObjectsAt returns the objects occupying pos.
func (s *State) ObjectsAt(pos core.MapPos) []core.Object {
	var result []core.Object
	for _, id := range sortedObjectIDs(s.objects) {
		if obj := s.objects[id]; obj.Pos.Equal(pos) {
			result = append(result, obj)
		}
	}
	return result
}

// AddObject places a static object (terrain decoration, building,
// road) before the match starts.
func (s *State) AddObject(obj core.Object) {
	s.objects[obj.ID] = obj
}

// CurrentPlayer returns whose turn it is.
func (s *State) CurrentPlayer() core.PlayerID { return s.current }

// SectorOwner returns the owner of a reinforcement sector, or false if
// the sector is unowned.
func (s *State) SectorOwner(id core.SectorID) (core.PlayerID, bool) {
	owner, ok := s.sectors[id]
	return owner, ok
}

// Score returns the victory points of a player.
func (s *State) Score(id core.PlayerID) int { return s.scores[id] }

// ApplyEvent folds one core event into the state. Events must be
// applied in exact stream order.
func (s *State) ApplyEvent(event events.CoreEvent) {
	switch ev := event.(type) {
	case *events.MoveEvent:
		s.Unit(ev.UnitID).Pos = ev.To
	case *events.EndTurnEvent:
		s.current = ev.NewID
	case *events.CreateUnitEvent:
		s.addUnit(ev.UnitInfo)
	case *events.AttackUnitEvent:
		if ev.Attack.Killed > 0 {
			s.Unit(ev.Attack.DefenderID).IsAlive = false
		}
	case *events.ShowUnitEvent:
		// Arrives on player-local mirrors when an enemy steps into
		// view; the authoritative state already knows the unit.
		if !s.HasUnit(ev.UnitInfo.UnitID) {
			s.addUnit(ev.UnitInfo)
		}
	case *events.HideUnitEvent:
		if s.HasUnit(ev.UnitID) {
			s.removeUnit(ev.UnitID)
		}
	case *events.LoadUnitEvent:
		transporter := s.Unit(ev.TransporterID)
		passenger := s.Unit(ev.PassengerID)
		passenger.IsLoaded = true
		passenger.Pos = transporter.Pos
	case *events.UnloadUnitEvent:
		unit := s.Unit(ev.UnitInfo.UnitID)
		unit.IsLoaded = false
		unit.Pos = ev.UnitInfo.Pos
	case *events.AttachEvent:
		transporter := s.Unit(ev.TransporterID)
		transporter.AttachedUnitID = ev.AttachedUnitID
		transporter.Pos = s.Unit(ev.AttachedUnitID).Pos
	case *events.DetachEvent:
		transporter := s.Unit(ev.TransporterID)
		transporter.Pos = ev.Pos
		transporter.AttachedUnitID = core.NoUnitID
	case *events.SetReactionFireModeEvent:
		s.Unit(ev.UnitID).ReactionFireMode = ev.Mode
	case *events.SectorOwnerChangedEvent:
		s.sectors[ev.SectorID] = ev.NewOwner
	case *events.SmokeEvent:
		s.objects[ev.ObjectID] = core.Object{
			ID:    ev.ObjectID,
			Class: core.ObjectSmoke,
			Pos:   ev.Pos,
		}
	case *events.RemoveSmokeEvent:
		delete(s.objects, ev.ObjectID)
	case *events.VictoryPointEvent:
		s.scores[ev.PlayerID] += ev.Count
	default:
		panic(fmt.Sprintf("unhandled core event %T", event))
	}
}

func (s *State) addUnit(info core.UnitInfo) {
	if s.HasUnit(info.UnitID) {
		panic(fmt.Sprintf("duplicate unit id %d", info.UnitID))
	}
	s.units[info.UnitID] = &core.Unit{
		ID:             info.UnitID,
		TypeID:         info.TypeID,
		PlayerID:       info.PlayerID,
		Pos:            info.Pos,
		IsAlive:        true,
		AttachedUnitID: core.NoUnitID,
	}
	s.unitOrder = append(s.unitOrder, info.UnitID)
}

func (s *State) removeUnit(id core.UnitID) {
	delete(s.units, id)
	for i, uid := range s.unitOrder {
		if uid == id {
			s.unitOrder = append(s.unitOrder[:i], s.unitOrder[i+1:]...)
			break
		}
	}
}

func sortedObjectIDs(objects map[core.ObjectID]core.Object) []core.ObjectID {
	ids := make([]core.ObjectID, 0, len(objects))
	for id := range objects {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
