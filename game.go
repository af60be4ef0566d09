package main

import (
	"bytes"
	"errors"
	"fmt"
	"image/color"

	"github.com/golang/freetype/truetype"
	"github.com/hajimehoshi/ebiten"
	"github.com/hajimehoshi/ebiten/ebitenutil"
	"github.com/hajimehoshi/ebiten/text"
	log "github.com/sirupsen/logrus"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"golang.org/x/image/font"

	"github.com/chgebhardt/my-monster-game/game"
	"github.com/chgebhardt/my-monster-game/level"
	"github.com/chgebhardt/my-monster-game/model"
)

const (
	size       = 50 // cell edge in px
	hudHeight  = 60
	tickFrames = 15 // engine ticks every quarter second at 60 fps
)

type ClientState int

const (
	TITLE ClientState = iota + 1
	PLAYING
	CAUGHT
)

func (s ClientState) Name() string {
	switch s {
	case TITLE:
		return "TITLE"
	case PLAYING:
		return "PLAYING"
	case CAUGHT:
		return "CAUGHT"
	default:
		return fmt.Sprintf("N/A(%d)", s)
	}
}

type Game struct {
	State   ClientState
	Session *game.Session
	Snap    *model.Snapshot

	frame   int
	pending model.Direction
	Tweens  map[*gween.Tween]Action
	sprites map[string]*Sprite // player + robots, keyed by id
	Panel   *Nine
}

var theGame *Game

var Font font.Face

// errQuit ends ebiten.Run cleanly on Esc.
var errQuit = errors.New("quit")

func loadFont() {
	dat, err := ebitenutil.OpenFile("assets/Teko-Light.ttf")
	if err != nil {
		log.Fatal(err)
	}
	buf := new(bytes.Buffer)
	if _, err = buf.ReadFrom(dat); err != nil {
		log.Fatal(err)
	}
	tt, err := truetype.Parse(buf.Bytes())
	if err != nil {
		log.Fatal(err)
	}
	Font = truetype.NewFace(tt, &truetype.Options{
		Size:    36,
		DPI:     72,
		Hinting: font.HintingFull,
	})
}

// syncSprites tweens every sprite from where it is drawn now to the cell
// the latest snapshot put it on.
func (g *Game) syncSprites(instant bool) {
	dur := float32(tickFrames) / 60
	targets := map[string]model.Cell{playerKey: g.Snap.Player.Pos}
	for _, r := range g.Snap.Robots {
		targets[r.ID.String()] = r.Pos
	}
	for key, cell := range targets {
		s, ok := g.sprites[key]
		if !ok || instant {
			g.sprites[key] = &Sprite{
				X: float64(cell.Col * size),
				Y: float64(cell.Row * size),
			}
			continue
		}
		fromX, fromY := s.X, s.Y
		toX, toY := float64(cell.Col*size), float64(cell.Row*size)
		if fromX == toX && fromY == toY {
			continue
		}
		sp := s
		act := Action{
			onChange: func(v float32) {
				sp.X = fromX + (toX-fromX)*float64(v)
				sp.Y = fromY + (toY-fromY)*float64(v)
			},
		}
		// land exactly on the cell, frame-time rounding drifts otherwise
		act.addOnFinish(func() {
			sp.X, sp.Y = toX, toY
		})
		g.Tweens[gween.New(0, 1, dur, ease.Linear)] = act
	}
	for key := range g.sprites {
		if _, live := targets[key]; !live {
			delete(g.sprites, key)
		}
	}
}

func (g *Game) startLevel() {
	g.Snap = g.Session.Snapshot()
	g.Tweens = make(map[*gween.Tween]Action)
	g.sprites = make(map[string]*Sprite)
	g.syncSprites(true)
	g.pending = model.None
	g.frame = 0
}

func (g *Game) update(screen *ebiten.Image) error {
	in := pollInput()
	if in.Quit {
		return errQuit
	}

	switch g.State {
	case TITLE:
		if in.AnyKey {
			g.State = PLAYING
			g.startLevel()
		}
	case CAUGHT:
		if in.Restart {
			if err := g.Session.Restart(); err != nil {
				return err
			}
			g.State = PLAYING
			g.startLevel()
		}
	case PLAYING:
		if in.Restart {
			if err := g.Session.Restart(); err != nil {
				return err
			}
			g.startLevel()
			break
		}
		if in.Dir != model.None {
			g.pending = in.Dir
		}
		g.frame++
		if g.frame%tickFrames == 0 {
			g.Snap = g.Session.Tick(g.pending)
			g.pending = model.None
			g.syncSprites(false)
			switch g.Snap.Status {
			case model.Caught:
				g.State = CAUGHT
			case model.Won:
				if err := g.Session.AdvanceLevel(); err != nil {
					// keep playing the finished level rather than crash
					log.WithError(err).Error("could not build next level")
					break
				}
				g.startLevel()
			}
		}
	}

	// drive tweens: advance, apply, finish, drop
	for t, a := range g.Tweens {
		curr, finished := t.Update(1.0 / 60)
		if a.onChange != nil {
			a.onChange(curr)
		}
		if finished {
			for _, onFinish := range a.onFinish {
				onFinish()
			}
			delete(g.Tweens, t)
		}
	}

	if ebiten.IsDrawingSkipped() {
		return nil
	}
	g.draw(screen)
	return nil
}

func (g *Game) draw(screen *ebiten.Image) {
	if err := screen.Fill(color.RGBA{245, 245, 245, 255}); err != nil {
		log.Printf("%v", err)
	}
	switch g.State {
	case TITLE:
		g.drawTitle(screen)
	case PLAYING:
		g.drawBoard(screen)
		g.drawHUD(screen)
	case CAUGHT:
		g.drawBoard(screen)
		g.drawHUD(screen)
		g.drawCaught(screen)
	}
	ebitenutil.DebugPrintAt(screen, g.State.Name(), 4, 0)
}

func (g *Game) drawTitle(screen *ebiten.Image) {
	screen.Fill(color.Black)
	w, _ := screen.Size()
	red := color.RGBA{220, 40, 40, 255}
	text.Draw(screen, "You are the monster!", Font, w/2-180, 150, red)
	text.Draw(screen, "Collect all coins, deliver them to the door,", Font, w/2-300, 220, color.White)
	text.Draw(screen, "and don't get caught by the robots.", Font, w/2-250, 270, color.White)
	text.Draw(screen, "Press any key to start!", Font, w/2-150, 360, color.White)
}

func (g *Game) drawCaught(screen *ebiten.Image) {
	w, h := screen.Size()
	g.Panel.SetPosition(w/2-220, h/2-90)
	g.Panel.SetSize(440, 150)
	g.Panel.Draw(screen)
	red := color.RGBA{220, 40, 40, 255}
	text.Draw(screen, "You were caught!", Font, w/2-130, h/2-20, red)
	text.Draw(screen, "F2 = new game   Esc = quit", Font, w/2-180, h/2+40, color.White)
}

func main() {
	if lvl, err := log.ParseLevel(envOr("LOG_LEVEL", "info")); err == nil {
		log.SetLevel(lvl)
	}

	cfg, err := level.Load(envOr("BALANCE_FILE", "balance.yaml"))
	if err != nil {
		log.Fatalf("balance config: %v", err)
	}
	session, err := game.NewSession(cfg)
	if err != nil {
		log.Fatalf("first level: %v", err)
	}

	loadFont()
	initBoard()

	theGame = &Game{
		State:   TITLE,
		Session: session,
		Tweens:  make(map[*gween.Tween]Action),
		sprites: make(map[string]*Sprite),
		Panel:   NewNine(),
	}
	theGame.Snap = session.Snapshot()

	screenWidth := cfg.Width * size
	screenHeight := cfg.Height*size + hudHeight
	if err := ebiten.Run(theGame.update, screenWidth, screenHeight, 1, "Monster Run"); err != nil && err != errQuit {
		log.Fatal(err)
	}
}
