package main

import (
	"os"

	"github.com/hajimehoshi/ebiten"
	"github.com/hajimehoshi/ebiten/inpututil"

	"github.com/chgebhardt/my-monster-game/model"
)

var keymap = map[ebiten.Key]model.Direction{
	ebiten.KeyUp:    model.Up,
	ebiten.KeyDown:  model.Down,
	ebiten.KeyLeft:  model.Left,
	ebiten.KeyRight: model.Right,
}

type Input struct {
	Dir     model.Direction
	Restart bool
	Quit    bool
	AnyKey  bool
}

// pollInput reads the just-pressed keys for this frame.
func pollInput() Input {
	in := Input{Dir: model.None}
	for key, dir := range keymap {
		if inpututil.IsKeyJustPressed(key) {
			in.Dir = dir
			in.AnyKey = true
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF2) {
		in.Restart = true
		in.AnyKey = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		in.Quit = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		in.AnyKey = true
	}
	return in
}

func envOr(key, def string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return def
}
