package common

import "github.com/hexfront/engine/internal/game/core"

// IsValidPosition checks if the given position is within the bounds of the map
func IsValidPosition(pos core.MapPos, size core.Size2) bool {
	return pos.IsValid(size)
}

// IsAdjacent checks if two hexes are exactly one step apart
func IsAdjacent(a, b core.MapPos) bool {
	return core.Distance(a, b) == 1
}

// HexDistance calculates the hex distance between two positions
func HexDistance(a, b core.MapPos) int {
	return core.Distance(a, b)
}
