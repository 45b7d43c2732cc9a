//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"lifedit/internal/core"
)

// GridPainter rasterizes live cells into a single RGBA image.
type GridPainter struct {
	layout Layout
	w, h   int
	img    *ebiten.Image
	buf    []byte
}

// NewGridPainter allocates a painter for a grid of the given size.
func NewGridPainter(size core.Size, layout Layout) *GridPainter {
	w, h := layout.CanvasSize(size)
	gp := &GridPainter{layout: layout, w: w, h: h, buf: make([]byte, 4*w*h)}
	gp.img = ebiten.NewImage(w, h)
	return gp
}

// Blit uploads the live cells into the painter image and draws it at the
// top-left of dst.
func (gp *GridPainter) Blit(dst *ebiten.Image, live []core.Cell, on, off color.Color) {
	fillDotsRGBA(gp.buf, gp.w, gp.h, gp.layout, live, on, off)
	gp.img.WritePixels(gp.buf)
	dst.DrawImage(gp.img, &ebiten.DrawImageOptions{})
}
