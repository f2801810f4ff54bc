package core

import "fmt"

// MapPos represents a position on the hex grid using odd-r offset
// coordinates: X is the column, Y is the row, odd rows are shifted
// half a hex to the right.
type MapPos struct {
	X, Y int
}

// NewMapPos creates a new map position with the given column and row.
func NewMapPos(x, y int) MapPos {
	return MapPos{X: x, Y: y}
}

// IsValid checks if the position is within the given map dimensions.
func (p MapPos) IsValid(size Size2) bool {
	return p.X >= 0 && p.X < size.W && p.Y >= 0 && p.Y < size.H
}

// ToIndex converts the position to a row-major array index.
func (p MapPos) ToIndex(width int) int {
	return p.Y*width + p.X
}

// Equal checks if two positions are equal.
func (p MapPos) Equal(other MapPos) bool {
	return p.X == other.X && p.Y == other.Y
}

// String returns a string representation of the position.
func (p MapPos) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// cube holds cube coordinates for hex distance and line math.
// Invariant: x + y + z == 0.
type cube struct {
	x, y, z int
}

func (p MapPos) toCube() cube {
	x := p.X - (p.Y-(p.Y&1))/2
	z := p.Y
	return cube{x: x, y: -x - z, z: z}
}

func cubeToPos(c cube) MapPos {
	return MapPos{X: c.x + (c.z-(c.z&1))/2, Y: c.z}
}

// Distance returns the hex distance between two positions.
func Distance(from, to MapPos) int {
	a := from.toCube()
	b := to.toCube()
	dx := abs(a.x - b.x)
	dy := abs(a.y - b.y)
	dz := abs(a.z - b.z)
	return max(max(dx, dy), dz)
}

// neighbor offsets in odd-r layout, indexed by row parity.
var hexNeighborOffsets = [2][6]MapPos{
	// even rows
	{{1, 0}, {0, -1}, {-1, -1}, {-1, 0}, {-1, 1}, {0, 1}},
	// odd rows
	{{1, 0}, {1, -1}, {0, -1}, {-1, 0}, {0, 1}, {1, 1}},
}

// Neighbors returns the six adjacent positions, unclipped.
func (p MapPos) Neighbors() []MapPos {
	offsets := &hexNeighborOffsets[p.Y&1]
	result := make([]MapPos, 6)
	for i, off := range offsets {
		result[i] = MapPos{X: p.X + off.X, Y: p.Y + off.Y}
	}
	return result
}

// Line returns the hexes on the straight line from p to other, inclusive
// of both endpoints. Cube-space linear interpolation with rounding.
func (p MapPos) Line(other MapPos) []MapPos {
	n := Distance(p, other)
	if n == 0 {
		return []MapPos{p}
	}
	a := p.toCube()
	b := other.toCube()
	result := make([]MapPos, 0, n+1)
	for i := 0; i <= n; i++ {
		t := float64(i) / float64(n)
		result = append(result, cubeToPos(cubeRound(
			lerp(a.x, b.x, t),
			lerp(a.y, b.y, t),
			lerp(a.z, b.z, t),
		)))
	}
	return result
}

func lerp(a, b int, t float64) float64 {
	return float64(a) + (float64(b)-float64(a))*t
}

func cubeRound(fx, fy, fz float64) cube {
	rx := roundf(fx)
	ry := roundf(fy)
	rz := roundf(fz)
	dx := absf(float64(rx) - fx)
	dy := absf(float64(ry) - fy)
	dz := absf(float64(rz) - fz)
	switch {
	case dx > dy && dx > dz:
		rx = -ry - rz
	case dy > dz:
		ry = -rx - rz
	default:
		rz = -rx - ry
	}
	return cube{x: rx, y: ry, z: rz}
}

func roundf(f float64) int {
	if f < 0 {
		return -int(-f + 0.5)
	}
	return int(f + 0.5)
}

func absf(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// PositionsInRange returns every position within r hexes of center,
// unclipped, in deterministic order. Includes center itself.
func PositionsInRange(center MapPos, r int) []MapPos {
	c := center.toCube()
	result := make([]MapPos, 0, 1+3*r*(r+1))
	for dx := -r; dx <= r; dx++ {
		lo := max(-r, -dx-r)
		hi := -dx + r
		if r < hi {
			hi = r
		}
		for dy := lo; dy <= hi; dy++ {
			dz := -dx - dy
			result = append(result, cubeToPos(cube{x: c.x + dx, y: c.y + dy, z: c.z + dz}))
		}
	}
	return result
}

// SlotID distinguishes units sharing a hex.
type SlotID int

// ExactPos is a map position plus a sub-tile slot.
type ExactPos struct {
	MapPos MapPos
	Slot   SlotID
}

// NewExactPos creates an exact position from a map position and slot.
func NewExactPos(pos MapPos, slot SlotID) ExactPos {
	return ExactPos{MapPos: pos, Slot: slot}
}

// String returns a string representation of the exact position.
func (p ExactPos) String() string {
	return fmt.Sprintf("%v[%d]", p.MapPos, p.Slot)
}
