package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten"
	"github.com/hajimehoshi/ebiten/text"
	log "github.com/sirupsen/logrus"

	"github.com/chgebhardt/my-monster-game/model"
)

const playerKey = "player"

func HexToF32(u uint32) GameColor {
	b := float64(0xff&u) / 255
	g := float64(0xff&(u>>8)) / 255
	r := float64(0xff&(u>>16)) / 255
	return GameColor{r, g, b}
}

type GameColor struct {
	r, g, b float64
}

var (
	COLOR_WALL    = HexToF32(0x2b2b2b)
	COLOR_FLOOR   = HexToF32(0xffffff)
	COLOR_DOOR    = HexToF32(0x8b5a2b)
	COLOR_COIN    = HexToF32(0xedbc1e)
	COLOR_MONSTER = HexToF32(0x0abd38)
	COLOR_ROBOT   = HexToF32(0xfa3636)
)

// Sprite is a pixel position animated between ticks.
type Sprite struct {
	X, Y float64
}

var baseTile *ebiten.Image

func initBoard() {
	var err error
	baseTile, err = ebiten.NewImage(size, size, ebiten.FilterDefault)
	if err != nil {
		log.Fatal(err)
	}
	if err := baseTile.Fill(color.White); err != nil {
		log.Fatal(err)
	}
}

// drawTile tints the base tile and draws it scaled at pixel (x,y).
func drawTile(screen *ebiten.Image, x, y float64, c GameColor, scale float64) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x+size*(1-scale)/2, y+size*(1-scale)/2)
	op.ColorM.Scale(c.r, c.g, c.b, 1)
	screen.DrawImage(baseTile, op)
}

func (g *Game) drawBoard(screen *ebiten.Image) {
	snap := g.Snap
	grid := snap.Grid
	for r := 0; r < grid.Height(); r++ {
		for c := 0; c < grid.Width(); c++ {
			t, err := grid.Tile(model.Cell{Row: r, Col: c})
			if err != nil {
				continue
			}
			x, y := float64(c*size), float64(r*size)
			switch t {
			case model.TileWall:
				drawTile(screen, x, y, COLOR_WALL, 1)
			case model.TileDoor:
				drawTile(screen, x, y, COLOR_FLOOR, 1)
				drawTile(screen, x, y, COLOR_DOOR, .7)
			default:
				drawTile(screen, x, y, COLOR_FLOOR, 1)
			}
		}
	}
	for _, c := range snap.Coins {
		drawTile(screen, float64(c.Col*size), float64(c.Row*size), COLOR_COIN, .4)
	}
	for _, r := range snap.Robots {
		if s, ok := g.sprites[r.ID.String()]; ok {
			drawTile(screen, s.X, s.Y, COLOR_ROBOT, .8)
		}
	}
	if s, ok := g.sprites[playerKey]; ok {
		drawTile(screen, s.X, s.Y, COLOR_MONSTER, .8)
	}
}

func (g *Game) drawHUD(screen *ebiten.Image) {
	snap := g.Snap
	_, h := screen.Size()
	y := h - hudHeight
	g.Panel.SetPosition(0, y)
	g.Panel.SetSize(snap.Grid.Width()*size, hudHeight)
	g.Panel.Draw(screen)

	baseline := y + 42
	text.Draw(screen, fmt.Sprintf("Level %d", snap.Level), Font, 20, baseline, color.White)
	text.Draw(screen, fmt.Sprintf("Carrying %d   Delivered %d/%d",
		snap.Player.Carried, snap.Player.Delivered, snap.CoinTotal),
		Font, 200, baseline, color.White)
	text.Draw(screen, "F2 = new game  Esc = quit", Font, snap.Grid.Width()*size-360, baseline, color.White)
}
