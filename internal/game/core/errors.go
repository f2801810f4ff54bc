package core

import "errors"

var (
	ErrInvalidPosition = errors.New("position out of map bounds")
	ErrUnknownUnit     = errors.New("unknown unit id")
	ErrUnknownUnitType = errors.New("unknown unit type id")
	ErrInvalidPlayer   = errors.New("invalid player ID")
	ErrOccupiedSlot    = errors.New("tile slot already occupied")
)
