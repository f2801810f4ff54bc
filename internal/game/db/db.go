// Package db holds the static unit-type database. One Db is built at
// match start and shared read-only by every subsystem that resolves
// unit types, including every player's fog of war.
package db

import (
	"fmt"

	"github.com/hexfront/engine/internal/game/core"
)

// Db maps unit type ids to their static parameters. It is immutable
// after construction and safe to share by reference.
type Db struct {
	types []core.UnitType
	byName map[string]core.UnitTypeID
}

// New creates a database with the standard unit roster.
func New() *Db {
	d := &Db{byName: make(map[string]core.UnitTypeID)}
	for _, ut := range standardRoster {
		d.register(ut)
	}
	return d
}

// NewEmpty creates a database with no unit types. Tests register their
// own hand-built types through Register.
func NewEmpty() *Db {
	return &Db{byName: make(map[string]core.UnitTypeID)}
}

// Register adds a unit type and returns its id.
func (d *Db) Register(ut core.UnitType) core.UnitTypeID {
	return d.register(ut)
}

func (d *Db) register(ut core.UnitType) core.UnitTypeID {
	if ut.CoverLosRange > ut.LosRange {
		panic(fmt.Sprintf("unit type %q: cover LOS range %d exceeds LOS range %d",
			ut.Name, ut.CoverLosRange, ut.LosRange))
	}
	id := core.UnitTypeID(len(d.types))
	d.types = append(d.types, ut)
	d.byName[ut.Name] = id
	return id
}

// UnitType resolves a type id. Unknown ids are a programmer error.
func (d *Db) UnitType(id core.UnitTypeID) core.UnitType {
	if int(id) < 0 || int(id) >= len(d.types) {
		panic(fmt.Sprintf("unknown unit type id %d", id))
	}
	return d.types[id]
}

// UnitTypeID resolves a type by name. Unknown names are a programmer error.
func (d *Db) UnitTypeID(name string) core.UnitTypeID {
	id, ok := d.byName[name]
	if !ok {
		panic(fmt.Sprintf("unknown unit type %q", name))
	}
	return id
}

// Len returns the number of registered types.
func (d *Db) Len() int { return len(d.types) }

// standardRoster mirrors the stock unit list of the original campaign
// rules: infantry spot poorly out of cover, vehicles spot further, air
// units sweep an unobstructed disc.
var standardRoster = []core.UnitType{
	{Name: "rifleman", LosRange: 6, CoverLosRange: 1, IsInfantry: true},
	{Name: "smg", LosRange: 5, CoverLosRange: 2, IsInfantry: true},
	{Name: "scout", LosRange: 8, CoverLosRange: 2, IsInfantry: true},
	{Name: "mortar", LosRange: 5, CoverLosRange: 1, IsInfantry: true},
	{Name: "field_gun", LosRange: 5, CoverLosRange: 1},
	{Name: "jeep", LosRange: 7, CoverLosRange: 2},
	{Name: "truck", LosRange: 5, CoverLosRange: 1, IsTransporter: true},
	{Name: "light_tank", LosRange: 6, CoverLosRange: 1},
	{Name: "heavy_tank", LosRange: 5, CoverLosRange: 1},
	{Name: "helicopter", LosRange: 7, CoverLosRange: 2, IsAir: true, IsTransporter: true},
}
