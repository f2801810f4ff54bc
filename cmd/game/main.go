package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/hexfront/engine/internal/common"
	"github.com/hexfront/engine/internal/config"
	"github.com/hexfront/engine/internal/game"
	"github.com/hexfront/engine/internal/game/core"
	"github.com/hexfront/engine/internal/game/db"
	"github.com/hexfront/engine/internal/game/events"
	"github.com/hexfront/engine/internal/game/events/subscribers"
	"github.com/hexfront/engine/internal/game/mapgen"
)

func main() {
	configPath := flag.String("config", "", "path to config file")
	flag.Parse()

	if err := config.Init(*configPath); err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	cfg := config.Get()
	setupLogging(cfg)

	seed := cfg.Demo.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	log.Info().Int64("seed", seed).Msg("Starting demo match")
	rng := rand.New(rand.NewSource(seed))

	eng := newDemoMatch(cfg, rng)
	runDemo(eng, cfg, rng)
}

func setupLogging(cfg *config.Config) {
	level, err := zerolog.ParseLevel(cfg.Logging.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}
	if cfg.Development.VerboseLogging {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)
	if cfg.Logging.Format == "console" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}
}

func newDemoMatch(cfg *config.Config, rng *rand.Rand) *game.Engine {
	mc := mapgen.MapConfig{
		Width:         cfg.Game.Map.Width,
		Height:        cfg.Game.Map.Height,
		TreesRatio:    cfg.Game.Map.TreesRatio,
		CityRatio:     cfg.Game.Map.CityRatio,
		WaterRatio:    cfg.Game.Map.WaterRatio,
		BuildingRatio: cfg.Game.Map.BuildingRatio,
		RoadLength:    cfg.Game.Map.RoadLength,
		SectorCount:   cfg.Game.Map.SectorCount,
	}
	generator := mapgen.NewGenerator(mc, rng)
	terrain := generator.GenerateTerrain()
	objects := generator.GenerateObjects(terrain)

	state := game.NewState(terrain)
	for _, obj := range objects {
		state.AddObject(obj)
	}

	players := common.Clamp(cfg.Demo.Players, 1, 6)
	eng := game.NewEngine(db.New(), state, players)
	eng.SeedObjectIDs(core.ObjectID(len(objects)))

	// Log the full event stream at debug level.
	eng.Bus().Subscribe(subscribers.NewLoggerSubscriber(
		"demo_event_log", log.Logger, zerolog.DebugLevel))

	spawnStartingUnits(eng, rng, players)
	return eng
}

// eventCounter tallies the event stream by type for the end-of-demo
// summary.
type eventCounter struct {
	counts map[string]int
}

func newEventCounter() *eventCounter {
	return &eventCounter{counts: make(map[string]int)}
}

func (c *eventCounter) ID() string                 { return "demo_event_counter" }
func (c *eventCounter) InterestedIn(string) bool   { return true }
func (c *eventCounter) HandleEvent(e events.Event) { c.counts[e.Type()]++ }

// spawnStartingUnits gives every player a small mixed force on land tiles.
func spawnStartingUnits(eng *game.Engine, rng *rand.Rand, players int) {
	d := eng.Db()
	roster := []core.UnitTypeID{
		d.UnitTypeID("rifleman"),
		d.UnitTypeID("scout"),
		d.UnitTypeID("light_tank"),
		d.UnitTypeID("helicopter"),
	}
	for pid := 0; pid < players; pid++ {
		for slot, typeID := range roster {
			for {
				pos := randomLandTile(eng.State(), rng)
				_, err := eng.CreateUnit(typeID, core.PlayerID(pid),
					core.NewExactPos(pos, core.SlotID(slot)))
				if err == nil {
					break
				}
				// Occupied slot; roll another tile.
			}
		}
	}
}

func randomLandTile(state *game.State, rng *rand.Rand) core.MapPos {
	terrain := state.Map()
	for {
		pos := core.NewMapPos(rng.Intn(terrain.Size().W), rng.Intn(terrain.Size().H))
		if terrain.Tile(pos) != core.TerrainWater {
			return pos
		}
	}
}

func runDemo(eng *game.Engine, cfg *config.Config, rng *rand.Rand) {
	counter := newEventCounter()
	eng.Bus().Subscribe(counter)

	for turn := 0; turn < cfg.Demo.MaxTurns; turn++ {
		current := eng.State().CurrentPlayer()
		moveRandomUnit(eng, current, rng)
		attackIfVisible(eng, current)

		fmt.Printf("Turn %d, player %d's view:\n%s\n",
			turn+1, current, eng.RenderFow(current))
		eng.EndTurn()
	}

	log.Info().
		Str("match_id", eng.MatchID()).
		Interface("event_counts", counter.counts).
		Msg("Demo finished")
}

// moveRandomUnit walks one of the current player's ground units to a
// random adjacent land tile.
func moveRandomUnit(eng *game.Engine, player core.PlayerID, rng *rand.Rand) {
	for _, unit := range eng.State().Units() {
		if unit.PlayerID != player || !unit.IsAlive || unit.IsLoaded {
			continue
		}
		terrain := eng.State().Map()
		neighbors := unit.Pos.MapPos.Neighbors()
		for _, i := range rng.Perm(len(neighbors)) {
			to := neighbors[i]
			if !to.IsValid(terrain.Size()) || terrain.Tile(to) == core.TerrainWater {
				continue
			}
			if err := eng.MoveUnit(unit.ID, core.NewExactPos(to, unit.Pos.Slot)); err == nil {
				return
			}
		}
	}
}

// attackIfVisible fires at the first enemy unit the current player can
// actually observe.
func attackIfVisible(eng *game.Engine, player core.PlayerID) {
	var shooter *core.Unit
	for _, unit := range eng.State().Units() {
		if unit.PlayerID == player && unit.IsAlive && !unit.IsLoaded {
			shooter = unit
			break
		}
	}
	if shooter == nil {
		return
	}
	for _, target := range eng.State().Units() {
		if target.PlayerID == player || !target.IsAlive {
			continue
		}
		if eng.IsVisible(player, target) {
			if err := eng.Attack(shooter.ID, target.ID, 0, false); err != nil {
				log.Warn().Err(err).Msg("Attack rejected")
			}
			return
		}
	}
}
