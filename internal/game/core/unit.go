package core

// PlayerID identifies a player in a match.
type PlayerID int

// UnitID identifies a unit instance.
type UnitID int

// UnitTypeID identifies an entry in the unit-type database.
type UnitTypeID int

// UnitType holds the static parameters shared by all units of one kind.
// CoverLosRange is the short radius inside which concealment is ignored;
// it never exceeds LosRange.
type UnitType struct {
	Name          string
	LosRange      int
	CoverLosRange int
	IsAir         bool
	IsInfantry    bool
	IsTransporter bool
}

// Unit is a single unit instance on the map. A loaded unit sits inside a
// transporter and is not on the map; it neither sees nor can be seen.
type Unit struct {
	ID       UnitID
	TypeID   UnitTypeID
	PlayerID PlayerID
	Pos      ExactPos
	IsAlive  bool
	IsLoaded bool

	// AttachedUnitID is set while another unit is attached to this one
	// (towed guns etc.); NoUnitID when nothing is attached.
	AttachedUnitID UnitID

	ReactionFireMode ReactionFireMode
}

// NoUnitID marks an empty unit reference.
const NoUnitID UnitID = -1

// ReactionFireMode controls whether a unit returns fire out of turn.
type ReactionFireMode int

const (
	ReactionFireNormal ReactionFireMode = iota
	ReactionFireHold
)

// SectorID identifies a reinforcement sector.
type SectorID int

// UnitInfo carries the identity fields of a unit through events that
// introduce it to the match (creation, unloading).
type UnitInfo struct {
	UnitID   UnitID
	TypeID   UnitTypeID
	PlayerID PlayerID
	Pos      ExactPos
}
