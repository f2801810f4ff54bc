package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hexfront/engine/internal/game/core"
	"github.com/hexfront/engine/internal/game/events"
	"github.com/hexfront/engine/internal/testutil"
)

func newTestState() *State {
	return NewState(testutil.CreateTestTerrain(10, 10))
}

func unitInfo(id core.UnitID, player core.PlayerID, pos core.MapPos) core.UnitInfo {
	return core.UnitInfo{
		UnitID:   id,
		TypeID:   0,
		PlayerID: player,
		Pos:      core.NewExactPos(pos, 0),
	}
}

func TestStateCreateUnit(t *testing.T) {
	s := newTestState()
	s.ApplyEvent(events.NewCreateUnitEvent("test", unitInfo(0, 0, core.NewMapPos(2, 3))))

	require.True(t, s.HasUnit(0))
	u := s.Unit(0)
	assert.Equal(t, core.NewMapPos(2, 3), u.Pos.MapPos)
	assert.True(t, u.IsAlive)
	assert.False(t, u.IsLoaded)
	assert.Equal(t, core.NoUnitID, u.AttachedUnitID)
}

func TestStateDuplicateUnitPanics(t *testing.T) {
	s := newTestState()
	s.ApplyEvent(events.NewCreateUnitEvent("test", unitInfo(0, 0, core.NewMapPos(2, 3))))
	testutil.AssertPanic(t, func() {
		s.ApplyEvent(events.NewCreateUnitEvent("test", unitInfo(0, 1, core.NewMapPos(4, 4))))
	})
}

func TestStateUnknownUnitPanics(t *testing.T) {
	s := newTestState()
	testutil.AssertPanic(t, func() { s.Unit(42) })
}

func TestStateUnitsCreationOrder(t *testing.T) {
	s := newTestState()
	for _, id := range []core.UnitID{3, 1, 2} {
		s.ApplyEvent(events.NewCreateUnitEvent("test", unitInfo(id, 0, core.NewMapPos(0, 0))))
	}
	var got []core.UnitID
	for _, u := range s.Units() {
		got = append(got, u.ID)
	}
	assert.Equal(t, []core.UnitID{3, 1, 2}, got)
}

func TestStateMove(t *testing.T) {
	s := newTestState()
	s.ApplyEvent(events.NewCreateUnitEvent("test", unitInfo(0, 0, core.NewMapPos(0, 0))))
	to := core.NewExactPos(core.NewMapPos(5, 5), 1)
	s.ApplyEvent(events.NewMoveEvent("test", 0, s.Unit(0).Pos, to))
	assert.Equal(t, to, s.Unit(0).Pos)
}

func TestStateEndTurn(t *testing.T) {
	s := newTestState()
	assert.Equal(t, core.PlayerID(0), s.CurrentPlayer())
	s.ApplyEvent(events.NewEndTurnEvent("test", 0, 1))
	assert.Equal(t, core.PlayerID(1), s.CurrentPlayer())
}

func TestStateAttack(t *testing.T) {
	s := newTestState()
	s.ApplyEvent(events.NewCreateUnitEvent("test", unitInfo(0, 0, core.NewMapPos(0, 0))))
	s.ApplyEvent(events.NewCreateUnitEvent("test", unitInfo(1, 1, core.NewMapPos(1, 0))))
	attackerID := core.UnitID(0)

	s.ApplyEvent(events.NewAttackUnitEvent("test", events.AttackInfo{
		AttackerID: &attackerID, DefenderID: 1, Killed: 0,
	}))
	assert.True(t, s.Unit(1).IsAlive, "attack without kills leaves the defender alive")

	s.ApplyEvent(events.NewAttackUnitEvent("test", events.AttackInfo{
		AttackerID: &attackerID, DefenderID: 1, Killed: 1,
	}))
	assert.False(t, s.Unit(1).IsAlive)
	assert.True(t, s.HasUnit(1), "dead units stay in the roster")
}

func TestStateShowAndHide(t *testing.T) {
	s := newTestState()
	s.ApplyEvent(events.NewShowUnitEvent("test", unitInfo(7, 1, core.NewMapPos(4, 4))))
	require.True(t, s.HasUnit(7))

	// Showing a unit the state already knows is a no-op.
	s.ApplyEvent(events.NewShowUnitEvent("test", unitInfo(7, 1, core.NewMapPos(4, 4))))
	assert.Len(t, s.Units(), 1)

	s.ApplyEvent(events.NewHideUnitEvent("test", 7))
	assert.False(t, s.HasUnit(7))
	assert.Empty(t, s.Units())

	// Hiding an unknown unit is tolerated on player-local mirrors.
	s.ApplyEvent(events.NewHideUnitEvent("test", 7))
}

func TestStateLoadUnload(t *testing.T) {
	s := newTestState()
	s.ApplyEvent(events.NewCreateUnitEvent("test", unitInfo(0, 0, core.NewMapPos(3, 3))))
	s.ApplyEvent(events.NewCreateUnitEvent("test", unitInfo(1, 0, core.NewMapPos(3, 4))))

	s.ApplyEvent(events.NewLoadUnitEvent("test", 0, 1))
	passenger := s.Unit(1)
	assert.True(t, passenger.IsLoaded)
	assert.Equal(t, s.Unit(0).Pos, passenger.Pos)

	dropPos := core.NewExactPos(core.NewMapPos(2, 3), 0)
	s.ApplyEvent(events.NewUnloadUnitEvent("test", 0, core.UnitInfo{
		UnitID: 1, TypeID: 0, PlayerID: 0, Pos: dropPos,
	}))
	assert.False(t, passenger.IsLoaded)
	assert.Equal(t, dropPos, passenger.Pos)
}

func TestStateAttachDetach(t *testing.T) {
	s := newTestState()
	s.ApplyEvent(events.NewCreateUnitEvent("test", unitInfo(0, 0, core.NewMapPos(3, 3))))
	s.ApplyEvent(events.NewCreateUnitEvent("test", unitInfo(1, 0, core.NewMapPos(5, 5))))

	s.ApplyEvent(events.NewAttachEvent("test", 0, 1))
	transporter := s.Unit(0)
	assert.Equal(t, core.UnitID(1), transporter.AttachedUnitID)
	assert.Equal(t, s.Unit(1).Pos, transporter.Pos)

	dropPos := core.NewExactPos(core.NewMapPos(6, 5), 0)
	s.ApplyEvent(events.NewDetachEvent("test", 0, dropPos))
	assert.Equal(t, core.NoUnitID, transporter.AttachedUnitID)
	assert.Equal(t, dropPos, transporter.Pos)
}

func TestStateReactionFireMode(t *testing.T) {
	s := newTestState()
	s.ApplyEvent(events.NewCreateUnitEvent("test", unitInfo(0, 0, core.NewMapPos(0, 0))))
	s.ApplyEvent(events.NewSetReactionFireModeEvent("test", 0, core.ReactionFireHold))
	assert.Equal(t, core.ReactionFireHold, s.Unit(0).ReactionFireMode)
}

func TestStateSectorsAndScores(t *testing.T) {
	s := newTestState()

	_, ok := s.SectorOwner(0)
	assert.False(t, ok)

	s.ApplyEvent(events.NewSectorOwnerChangedEvent("test", 0, 1))
	owner, ok := s.SectorOwner(0)
	require.True(t, ok)
	assert.Equal(t, core.PlayerID(1), owner)

	s.ApplyEvent(events.NewVictoryPointEvent("test", 1, core.NewMapPos(0, 0), 3))
	s.ApplyEvent(events.NewVictoryPointEvent("test", 1, core.NewMapPos(0, 0), 2))
	assert.Equal(t, 5, s.Score(1))
	assert.Equal(t, 0, s.Score(0))
}

func TestStateSmoke(t *testing.T) {
	s := newTestState()
	pos := core.NewMapPos(4, 4)
	shooter := core.UnitID(0)

	s.ApplyEvent(events.NewSmokeEvent("test", 9, &shooter, pos))
	require.Len(t, s.ObjectsAt(pos), 1)
	assert.Equal(t, core.ObjectSmoke, s.ObjectsAt(pos)[0].Class)

	s.ApplyEvent(events.NewRemoveSmokeEvent("test", 9))
	assert.Empty(t, s.ObjectsAt(pos))
}

func TestStateObjectsAtDeterministicOrder(t *testing.T) {
	s := newTestState()
	pos := core.NewMapPos(2, 2)
	s.AddObject(core.Object{ID: 5, Class: core.ObjectRoad, Pos: pos})
	s.AddObject(core.Object{ID: 1, Class: core.ObjectBuilding, Pos: pos})
	s.AddObject(core.Object{ID: 3, Class: core.ObjectSmoke, Pos: core.NewMapPos(9, 9)})

	objs := s.ObjectsAt(pos)
	require.Len(t, objs, 2)
	assert.Equal(t, core.ObjectID(1), objs[0].ID)
	assert.Equal(t, core.ObjectID(5), objs[1].ID)
}
