// Headless driver: plays the game with a scripted monster for a few
// levels and logs what happens. Useful for balancing the scaling knobs
// without sitting through the real client.
package main

import (
	"math/rand"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"

	"github.com/chgebhardt/my-monster-game/game"
	"github.com/chgebhardt/my-monster-game/level"
	"github.com/chgebhardt/my-monster-game/model"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Debugf(".env not loaded: %v", err)
	}
	if lvl, err := log.ParseLevel(envOr("LOG_LEVEL", "info")); err == nil {
		log.SetLevel(lvl)
	}

	cfg, err := level.Load(envOr("BALANCE_FILE", "balance.yaml"))
	if err != nil {
		log.Fatalf("balance config: %v", err)
	}
	if s := os.Getenv("SIM_SEED"); s != "" {
		seed, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			log.Fatalf("SIM_SEED: %v", err)
		}
		cfg.Seed = seed
	}
	levels := envInt("SIM_LEVELS", 3)
	maxTicks := envInt("SIM_TICKS", 2000)
	retries := envInt("SIM_RETRIES", 5)

	session, err := game.NewSession(cfg)
	if err != nil {
		log.Fatalf("first level: %v", err)
	}
	log.Debugf("level 1 layout:\n%s", session.Snapshot().Grid.String())

	rng := rand.New(rand.NewSource(cfg.Seed + 1))
	ticks := 0
	for ticks < maxTicks {
		snap := session.Tick(nextMove(session.Snapshot(), rng))
		ticks++

		switch snap.Status {
		case model.Won:
			log.WithFields(log.Fields{"level": snap.Level, "ticks": ticks}).Info("level won")
			if snap.Level >= levels {
				log.Infof("all %d levels cleared in %d ticks", levels, ticks)
				return
			}
			if err := session.AdvanceLevel(); err != nil {
				log.Fatalf("advance: %v", err)
			}
			log.Debugf("level %d layout:\n%s", session.CurrentLevelDescriptor().Level, session.Snapshot().Grid.String())
		case model.Caught:
			retries--
			log.WithFields(log.Fields{"level": snap.Level, "retries": retries}).Warn("caught")
			if retries <= 0 {
				log.Error("out of retries, giving up")
				return
			}
			if err := session.ResetLevel(); err != nil {
				log.Fatalf("reset: %v", err)
			}
		}
	}
	log.Warnf("tick budget of %d spent on level %d", maxTicks, session.CurrentLevelDescriptor().Level)
}

// nextMove walks the shortest path to the nearest coin, or to the door
// once everything is carried or delivered. A pinch of randomness keeps
// retries of the same (deterministic) level from replaying the exact
// run that got the monster caught.
func nextMove(snap *model.Snapshot, rng *rand.Rand) model.Direction {
	if rng.Intn(10) == 0 {
		return randomStep(snap, rng)
	}

	target, ok := pickTarget(snap)
	if !ok {
		return model.None
	}
	path, err := game.ShortestPath(snap.Grid, snap.Player.Pos, target)
	if err != nil || len(path) < 2 {
		return model.None
	}
	// sidestep rather than walk straight into a robot
	for _, r := range snap.Robots {
		if r.Pos == path[1] {
			return randomStep(snap, rng)
		}
	}
	return towards(snap.Player.Pos, path[1])
}

func pickTarget(snap *model.Snapshot) (model.Cell, bool) {
	if len(snap.Coins) == 0 {
		if snap.Player.Carried > 0 || snap.Player.Delivered < snap.CoinTotal {
			return snap.Door, true
		}
		return model.Cell{}, false
	}
	best := snap.Coins[0]
	bestLen := -1
	for _, c := range snap.Coins {
		path, err := game.ShortestPath(snap.Grid, snap.Player.Pos, c)
		if err != nil {
			continue
		}
		if bestLen == -1 || len(path) < bestLen {
			best, bestLen = c, len(path)
		}
	}
	return best, bestLen != -1
}

func randomStep(snap *model.Snapshot, rng *rand.Rand) model.Direction {
	dirs := []model.Direction{model.Up, model.Down, model.Left, model.Right}
	rng.Shuffle(len(dirs), func(i, j int) { dirs[i], dirs[j] = dirs[j], dirs[i] })
	for _, d := range dirs {
		if snap.Grid.IsWalkable(snap.Player.Pos.Step(d)) {
			return d
		}
	}
	return model.None
}

func towards(from, to model.Cell) model.Direction {
	switch {
	case to.Row < from.Row:
		return model.Up
	case to.Row > from.Row:
		return model.Down
	case to.Col < from.Col:
		return model.Left
	case to.Col > from.Col:
		return model.Right
	}
	return model.None
}

func envOr(key, def string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return def
}

func envInt(key string, def int) int {
	v, ok := os.LookupEnv(key)
	if !ok {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Fatalf("%s: %v", key, err)
	}
	return n
}
