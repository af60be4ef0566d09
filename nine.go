package main

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten"
	log "github.com/sirupsen/logrus"
)

const patchCell = 8

// Nine draws a stretchable panel from a 3x3-sliced patch image: corners
// keep their size, edges and center stretch to fill.
type Nine struct {
	patch         *ebiten.Image
	alpha         float64
	R, G, B       float64
	x, y          int
	width, height int
}

func NewNine() *Nine {
	img, err := ebiten.NewImage(3*patchCell, 3*patchCell, ebiten.FilterDefault)
	if err != nil {
		log.Fatal(err)
	}
	if err := img.Fill(color.White); err != nil {
		log.Fatal(err)
	}
	return &Nine{patch: img, alpha: .85, R: .1, G: .1, B: .1}
}

func (n *Nine) SetPosition(x, y int) {
	n.x = x
	n.y = y
}

func (n *Nine) SetSize(width, height int) {
	n.width = width
	n.height = height
}

func (n *Nine) Draw(screen *ebiten.Image) {
	// source column/row starts in the patch, destination starts and spans
	srcX := [4]int{0, patchCell, 2 * patchCell, 3 * patchCell}
	dstX := [4]float64{0, patchCell, float64(n.width - patchCell), float64(n.width)}
	dstY := [4]float64{0, patchCell, float64(n.height - patchCell), float64(n.height)}

	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			sub := n.patch.SubImage(image.Rect(srcX[col], srcX[row], srcX[col+1], srcX[row+1])).(*ebiten.Image)
			op := &ebiten.DrawImageOptions{}
			op.GeoM.Scale(
				(dstX[col+1]-dstX[col])/patchCell,
				(dstY[row+1]-dstY[row])/patchCell,
			)
			op.GeoM.Translate(float64(n.x)+dstX[col], float64(n.y)+dstY[row])
			op.ColorM.Scale(n.R, n.G, n.B, n.alpha)
			screen.DrawImage(sub, op)
		}
	}
}
