package game_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chgebhardt/my-monster-game/game"
	"github.com/chgebhardt/my-monster-game/level"
	"github.com/chgebhardt/my-monster-game/model"
)

func testConfig() *level.Config {
	cfg := level.DefaultConfig()
	cfg.Seed = 42
	return cfg
}

func TestSession_StartsAtLevelOne(t *testing.T) {
	s, err := game.NewSession(testConfig())
	require.NoError(t, err)

	desc := s.CurrentLevelDescriptor()
	assert.Equal(t, 1, desc.Level)
	assert.Equal(t, model.Playing, s.State().Status())
	snap := s.Snapshot()
	assert.Len(t, snap.Coins, desc.CoinCount)
	assert.Len(t, snap.Robots, desc.RobotCount)
}

func TestSession_AdvanceLevel(t *testing.T) {
	s, err := game.NewSession(testConfig())
	require.NoError(t, err)

	require.NoError(t, s.AdvanceLevel())
	assert.Equal(t, 2, s.CurrentLevelDescriptor().Level)
	assert.Equal(t, model.Playing, s.State().Status(), "advance resets the state machine")
}

// TestSession_ResetReplaysSameLevel: the retry after a catch regenerates
// the identical board, same config and number mean the same seed.
func TestSession_ResetReplaysSameLevel(t *testing.T) {
	s, err := game.NewSession(testConfig())
	require.NoError(t, err)

	before := s.Snapshot()
	s.Tick(model.Up)
	s.Tick(model.Down)

	require.NoError(t, s.ResetLevel())
	after := s.Snapshot()
	assert.Equal(t, before.Grid.String(), after.Grid.String())
	assert.Equal(t, before.Player.Pos, after.Player.Pos)
	assert.Equal(t, before.Coins, after.Coins)
	assert.Equal(t, model.Playing, after.Status)
	assert.Equal(t, 0, after.Tick)
}

func TestSession_RestartGoesBackToLevelOne(t *testing.T) {
	s, err := game.NewSession(testConfig())
	require.NoError(t, err)
	require.NoError(t, s.AdvanceLevel())
	require.NoError(t, s.AdvanceLevel())
	require.Equal(t, 3, s.CurrentLevelDescriptor().Level)

	require.NoError(t, s.Restart())
	assert.Equal(t, 1, s.CurrentLevelDescriptor().Level)
}

func TestSession_RejectsBadConfig(t *testing.T) {
	cfg := level.DefaultConfig()
	cfg.Width = 3 // no room for a board at all
	_, err := game.NewSession(cfg)
	assert.ErrorIs(t, err, level.ErrBadConfig)
}
