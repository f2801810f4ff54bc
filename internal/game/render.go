package game

import (
	"fmt"
	"strings"

	"github.com/hexfront/engine/internal/game/core"
	"github.com/hexfront/engine/internal/game/fow"
)

// ANSI color codes
const (
	ColorReset  = "\033[0m"
	ColorRed    = "\033[31m"
	ColorGreen  = "\033[32m"
	ColorYellow = "\033[33m"
	ColorBlue   = "\033[34m"
	ColorPurple = "\033[35m"
	ColorCyan   = "\033[36m"
	ColorWhite  = "\033[37m"
	ColorGray   = "\033[90m"
)

var playerColors = []string{ColorRed, ColorBlue, ColorGreen, ColorYellow, ColorPurple, ColorCyan}

// RenderFow renders the map as one player sees it: unseen tiles are
// blanked out, partially seen tiles are dimmed, and enemy units show
// only where the viewer's fog of war says they are observable.
func (e *Engine) RenderFow(viewer core.PlayerID) string {
	var sb strings.Builder

	const (
		PlainSymbol   = "·"
		TreesSymbol   = "♣"
		CitySymbol    = "⌂"
		WaterSymbol   = "~"
		UnseenSymbol  = " "
		PlayerSymbols = "ABCDEFGH"
	)

	f := e.Fow(viewer)
	m := e.state.Map()

	// Column headers
	sb.WriteString("    ")
	for x := 0; x < m.Size().W; x++ {
		sb.WriteString(fmt.Sprintf("%2d", x))
	}
	sb.WriteString("\n")

	for y := 0; y < m.Size().H; y++ {
		sb.WriteString(fmt.Sprintf("%2d ", y))
		if y&1 == 1 {
			// Odd rows sit half a hex to the right.
			sb.WriteString(" ")
		}

		for x := 0; x < m.Size().W; x++ {
			pos := core.NewMapPos(x, y)
			vis := f.TileVisibility(pos)

			var symbol, color string
			switch vis {
			case fow.VisibilityNone:
				symbol = UnseenSymbol
				color = ColorGray
			default:
				switch m.Tile(pos) {
				case core.TerrainTrees:
					symbol = TreesSymbol
					color = ColorGreen
				case core.TerrainCity:
					symbol = CitySymbol
					color = ColorYellow
				case core.TerrainWater:
					symbol = WaterSymbol
					color = ColorCyan
				default:
					symbol = PlainSymbol
					color = ColorWhite
				}
				if vis == fow.VisibilityNormal {
					color = ColorGray
				}
			}

			// A visible unit on the tile takes precedence.
			if unit := e.visibleUnitAt(viewer, pos); unit != nil {
				symbol = string(PlayerSymbols[int(unit.PlayerID)%len(PlayerSymbols)])
				color = getPlayerColor(int(unit.PlayerID))
			}

			sb.WriteString(" " + color + symbol + ColorReset)
		}
		sb.WriteString("\n")
	}

	sb.WriteString("\n" + PlainSymbol + "=plain " + TreesSymbol + "=trees " +
		CitySymbol + "=city " + WaterSymbol + "=water A-H=players\n")
	return sb.String()
}

func (e *Engine) visibleUnitAt(viewer core.PlayerID, pos core.MapPos) *core.Unit {
	for _, unit := range e.state.Units() {
		if !unit.IsAlive || unit.IsLoaded || !unit.Pos.MapPos.Equal(pos) {
			continue
		}
		if unit.PlayerID == viewer || e.IsVisible(viewer, unit) {
			return unit
		}
	}
	return nil
}

func getPlayerColor(playerID int) string {
	if playerID >= 0 && playerID < len(playerColors) {
		return playerColors[playerID]
	}
	return ColorWhite
}
