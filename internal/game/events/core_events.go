package events

import (
	"time"

	"github.com/hexfront/engine/internal/game/core"
)

// Event type constants
const (
	TypeMove                = "unit.moved"
	TypeEndTurn             = "turn.ended"
	TypeCreateUnit          = "unit.created"
	TypeAttackUnit          = "unit.attacked"
	TypeShowUnit            = "unit.shown"
	TypeHideUnit            = "unit.hidden"
	TypeLoadUnit            = "unit.loaded"
	TypeUnloadUnit          = "unit.unloaded"
	TypeAttach              = "unit.attached"
	TypeDetach              = "unit.detached"
	TypeSetReactionFireMode = "unit.reaction_fire_mode_set"
	TypeSectorOwnerChanged  = "sector.owner_changed"
	TypeSmoke               = "smoke.placed"
	TypeRemoveSmoke         = "smoke.removed"
	TypeVictoryPoint        = "victory_point.scored"
)

// CoreEvent is the authoritative match event stream. The set of
// variants is closed: every variant lives in this package and marks
// itself with coreEvent(). Consumers dispatch with an exhaustive type
// switch whose default branch panics, so a new variant surfaces as a
// runtime gap in every consumer the moment it is first applied.
type CoreEvent interface {
	Event
	coreEvent()
}

// MoveEvent records a unit moving from one exact position to another.
type MoveEvent struct {
	BaseEvent
	UnitID core.UnitID
	From   core.ExactPos
	To     core.ExactPos
}

// NewMoveEvent creates a new MoveEvent
func NewMoveEvent(gameID string, unitID core.UnitID, from, to core.ExactPos) *MoveEvent {
	return &MoveEvent{
		BaseEvent: newBase(TypeMove, gameID),
		UnitID:    unitID,
		From:      from,
		To:        to,
	}
}

// EndTurnEvent records the turn passing from OldID to NewID.
type EndTurnEvent struct {
	BaseEvent
	OldID core.PlayerID
	NewID core.PlayerID
}

// NewEndTurnEvent creates a new EndTurnEvent
func NewEndTurnEvent(gameID string, oldID, newID core.PlayerID) *EndTurnEvent {
	return &EndTurnEvent{
		BaseEvent: newBase(TypeEndTurn, gameID),
		OldID:     oldID,
		NewID:     newID,
	}
}

// CreateUnitEvent records a new unit entering the match.
type CreateUnitEvent struct {
	BaseEvent
	UnitInfo core.UnitInfo
}

// NewCreateUnitEvent creates a new CreateUnitEvent
func NewCreateUnitEvent(gameID string, info core.UnitInfo) *CreateUnitEvent {
	return &CreateUnitEvent{
		BaseEvent: newBase(TypeCreateUnit, gameID),
		UnitInfo:  info,
	}
}

// AttackInfo describes one attack resolution. AttackerID is nil when
// the attacker is unknown to the defender (off-map artillery and the
// like); an ambush suppresses the attacker-reveal overlay.
type AttackInfo struct {
	AttackerID *core.UnitID
	DefenderID core.UnitID
	Killed     int
	IsAmbush   bool
}

// AttackUnitEvent records an attack resolution.
type AttackUnitEvent struct {
	BaseEvent
	Attack AttackInfo
}

// NewAttackUnitEvent creates a new AttackUnitEvent
func NewAttackUnitEvent(gameID string, attack AttackInfo) *AttackUnitEvent {
	return &AttackUnitEvent{
		BaseEvent: newBase(TypeAttackUnit, gameID),
		Attack:    attack,
	}
}

// ShowUnitEvent records an enemy unit becoming visible to some player.
type ShowUnitEvent struct {
	BaseEvent
	UnitInfo core.UnitInfo
}

// NewShowUnitEvent creates a new ShowUnitEvent
func NewShowUnitEvent(gameID string, info core.UnitInfo) *ShowUnitEvent {
	return &ShowUnitEvent{
		BaseEvent: newBase(TypeShowUnit, gameID),
		UnitInfo:  info,
	}
}

// HideUnitEvent records an enemy unit dropping out of sight.
type HideUnitEvent struct {
	BaseEvent
	UnitID core.UnitID
}

// NewHideUnitEvent creates a new HideUnitEvent
func NewHideUnitEvent(gameID string, unitID core.UnitID) *HideUnitEvent {
	return &HideUnitEvent{
		BaseEvent: newBase(TypeHideUnit, gameID),
		UnitID:    unitID,
	}
}

// LoadUnitEvent records a passenger boarding a transporter.
type LoadUnitEvent struct {
	BaseEvent
	TransporterID core.UnitID
	PassengerID   core.UnitID
}

// NewLoadUnitEvent creates a new LoadUnitEvent
func NewLoadUnitEvent(gameID string, transporterID, passengerID core.UnitID) *LoadUnitEvent {
	return &LoadUnitEvent{
		BaseEvent:     newBase(TypeLoadUnit, gameID),
		TransporterID: transporterID,
		PassengerID:   passengerID,
	}
}

// UnloadUnitEvent records a passenger leaving a transporter.
type UnloadUnitEvent struct {
	BaseEvent
	TransporterID core.UnitID
	UnitInfo      core.UnitInfo
}

// NewUnloadUnitEvent creates a new UnloadUnitEvent
func NewUnloadUnitEvent(gameID string, transporterID core.UnitID, info core.UnitInfo) *UnloadUnitEvent {
	return &UnloadUnitEvent{
		BaseEvent:     newBase(TypeUnloadUnit, gameID),
		TransporterID: transporterID,
		UnitInfo:      info,
	}
}

// AttachEvent records a towable unit being hooked to a transporter.
type AttachEvent struct {
	BaseEvent
	TransporterID  core.UnitID
	AttachedUnitID core.UnitID
}

// NewAttachEvent creates a new AttachEvent
func NewAttachEvent(gameID string, transporterID, attachedUnitID core.UnitID) *AttachEvent {
	return &AttachEvent{
		BaseEvent:      newBase(TypeAttach, gameID),
		TransporterID:  transporterID,
		AttachedUnitID: attachedUnitID,
	}
}

// DetachEvent records a transporter dropping its attached unit at Pos.
type DetachEvent struct {
	BaseEvent
	TransporterID core.UnitID
	Pos           core.ExactPos
}

// NewDetachEvent creates a new DetachEvent
func NewDetachEvent(gameID string, transporterID core.UnitID, pos core.ExactPos) *DetachEvent {
	return &DetachEvent{
		BaseEvent:     newBase(TypeDetach, gameID),
		TransporterID: transporterID,
		Pos:           pos,
	}
}

// SetReactionFireModeEvent records a reaction-fire toggle.
type SetReactionFireModeEvent struct {
	BaseEvent
	UnitID core.UnitID
	Mode   core.ReactionFireMode
}

// NewSetReactionFireModeEvent creates a new SetReactionFireModeEvent
func NewSetReactionFireModeEvent(gameID string, unitID core.UnitID, mode core.ReactionFireMode) *SetReactionFireModeEvent {
	return &SetReactionFireModeEvent{
		BaseEvent: newBase(TypeSetReactionFireMode, gameID),
		UnitID:    unitID,
		Mode:      mode,
	}
}

// SectorOwnerChangedEvent records a reinforcement sector changing hands.
type SectorOwnerChangedEvent struct {
	BaseEvent
	SectorID core.SectorID
	NewOwner core.PlayerID
}

// NewSectorOwnerChangedEvent creates a new SectorOwnerChangedEvent
func NewSectorOwnerChangedEvent(gameID string, sectorID core.SectorID, newOwner core.PlayerID) *SectorOwnerChangedEvent {
	return &SectorOwnerChangedEvent{
		BaseEvent: newBase(TypeSectorOwnerChanged, gameID),
		SectorID:  sectorID,
		NewOwner:  newOwner,
	}
}

// SmokeEvent records a smoke screen appearing at Pos. UnitID is the
// shooter that placed it, nil for scripted smoke.
type SmokeEvent struct {
	BaseEvent
	ObjectID core.ObjectID
	UnitID   *core.UnitID
	Pos      core.MapPos
}

// NewSmokeEvent creates a new SmokeEvent
func NewSmokeEvent(gameID string, objectID core.ObjectID, unitID *core.UnitID, pos core.MapPos) *SmokeEvent {
	return &SmokeEvent{
		BaseEvent: newBase(TypeSmoke, gameID),
		ObjectID:  objectID,
		UnitID:    unitID,
		Pos:       pos,
	}
}

// RemoveSmokeEvent records a smoke screen dissipating.
type RemoveSmokeEvent struct {
	BaseEvent
	ObjectID core.ObjectID
}

// NewRemoveSmokeEvent creates a new RemoveSmokeEvent
func NewRemoveSmokeEvent(gameID string, objectID core.ObjectID) *RemoveSmokeEvent {
	return &RemoveSmokeEvent{
		BaseEvent: newBase(TypeRemoveSmoke, gameID),
		ObjectID:  objectID,
	}
}

// VictoryPointEvent records victory points scored at Pos.
type VictoryPointEvent struct {
	BaseEvent
	PlayerID core.PlayerID
	Pos      core.MapPos
	Count    int
}

// NewVictoryPointEvent creates a new VictoryPointEvent
func NewVictoryPointEvent(gameID string, playerID core.PlayerID, pos core.MapPos, count int) *VictoryPointEvent {
	return &VictoryPointEvent{
		BaseEvent: newBase(TypeVictoryPoint, gameID),
		PlayerID:  playerID,
		Pos:       pos,
		Count:     count,
	}
}

func newBase(eventType, gameID string) BaseEvent {
	return BaseEvent{
		EventType: eventType,
		Time:      time.Now(),
		Game:      gameID,
	}
}

func (*MoveEvent) coreEvent()                {}
func (*EndTurnEvent) coreEvent()             {}
func (*CreateUnitEvent) coreEvent()          {}
func (*AttackUnitEvent) coreEvent()          {}
func (*ShowUnitEvent) coreEvent()            {}
func (*HideUnitEvent) coreEvent()            {}
func (*LoadUnitEvent) coreEvent()            {}
func (*UnloadUnitEvent) coreEvent()          {}
func (*AttachEvent) coreEvent()              {}
func (*DetachEvent) coreEvent()              {}
func (*SetReactionFireModeEvent) coreEvent() {}
func (*SectorOwnerChangedEvent) coreEvent()  {}
func (*SmokeEvent) coreEvent()               {}
func (*RemoveSmokeEvent) coreEvent()         {}
func (*VictoryPointEvent) coreEvent()        {}
