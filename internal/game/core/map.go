package core

import "fmt"

// Size2 holds rectangular map dimensions in tiles.
type Size2 struct {
	W, H int
}

// Count returns the total number of tiles.
func (s Size2) Count() int { return s.W * s.H }

// Map is a rectangular grid of tiles indexed by odd-r hex positions.
// Tiles are stored row-major; every in-bounds position has exactly one
// value, zero-valued until written.
type Map[T any] struct {
	size  Size2
	tiles []T
}

// NewMap creates a map of the given size with zero-valued tiles.
func NewMap[T any](size Size2) *Map[T] {
	return &Map[T]{
		size:  size,
		tiles: make([]T, size.Count()),
	}
}

// Size returns the map dimensions.
func (m *Map[T]) Size() Size2 { return m.size }

// InBounds checks if a position is within the map.
func (m *Map[T]) InBounds(pos MapPos) bool {
	return pos.IsValid(m.size)
}

// Tile returns the value at pos. Panics on out-of-bounds access; callers
// are expected to clip positions first.
func (m *Map[T]) Tile(pos MapPos) T {
	return m.tiles[m.index(pos)]
}

// TileMut returns a pointer to the value at pos for in-place mutation.
func (m *Map[T]) TileMut(pos MapPos) *T {
	return &m.tiles[m.index(pos)]
}

// Iter returns every in-bounds position in row-major order.
func (m *Map[T]) Iter() []MapPos {
	result := make([]MapPos, 0, m.size.Count())
	for y := 0; y < m.size.H; y++ {
		for x := 0; x < m.size.W; x++ {
			result = append(result, MapPos{X: x, Y: y})
		}
	}
	return result
}

func (m *Map[T]) index(pos MapPos) int {
	if !pos.IsValid(m.size) {
		panic(fmt.Sprintf("map position %v out of bounds %dx%d", pos, m.size.W, m.size.H))
	}
	return pos.ToIndex(m.size.W)
}
