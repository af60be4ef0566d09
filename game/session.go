package game

import (
	"github.com/chgebhardt/my-monster-game/level"
	"github.com/chgebhardt/my-monster-game/model"
	log "github.com/sirupsen/logrus"
)

// Session is the level-progression surface for the driver loop: it owns
// the running State and replaces it on advance or retry. A failed
// generation leaves the previous state untouched, the driver never sees
// a half-built level.
type Session struct {
	cfg *level.Config
	num int
	st  *State
}

// NewSession generates level 1 and starts playing.
func NewSession(cfg *level.Config) (*Session, error) {
	s := &Session{cfg: cfg, num: 1}
	if err := s.start(); err != nil {
		return nil, err
	}
	return s, nil
}

// Tick forwards one tick to the running level.
func (s *Session) Tick(dir model.Direction) *model.Snapshot {
	return s.st.Tick(dir)
}

// Snapshot returns the current world without advancing it.
func (s *Session) Snapshot() *model.Snapshot {
	return s.st.Snapshot()
}

// State exposes the running level.
func (s *Session) State() *State { return s.st }

// CurrentLevelDescriptor returns the difficulty of the running level.
func (s *Session) CurrentLevelDescriptor() level.Descriptor {
	return s.st.Descriptor()
}

// AdvanceLevel generates the next level and resets to Playing. On
// generation failure the current level stays live and the error is
// returned to the driver.
func (s *Session) AdvanceLevel() error {
	layout, err := level.Generate(s.cfg, s.num+1)
	if err != nil {
		return err
	}
	s.num++
	s.st = NewState(layout)
	log.WithField("level", s.num).Info("level started")
	return nil
}

// ResetLevel regenerates the current level number, the retry after a
// catch. Same config and number means the same layout comes back.
func (s *Session) ResetLevel() error {
	return s.start()
}

// Restart goes back to level 1, the F2 behavior.
func (s *Session) Restart() error {
	layout, err := level.Generate(s.cfg, 1)
	if err != nil {
		return err
	}
	s.num = 1
	s.st = NewState(layout)
	log.Info("game restarted")
	return nil
}

func (s *Session) start() error {
	layout, err := level.Generate(s.cfg, s.num)
	if err != nil {
		return err
	}
	s.st = NewState(layout)
	log.WithField("level", s.num).Info("level started")
	return nil
}
