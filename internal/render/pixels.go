package render

import (
	"image/color"

	"lifedit/internal/core"
)

// fillDotsRGBA paints a w×h RGBA buffer: off everywhere, then one on-colored
// dot per live cell. Dots are clipped to the buffer.
func fillDotsRGBA(buf []byte, w, h int, layout Layout, live []core.Cell, on, off color.Color) {
	rOff, gOff, bOff, aOff := off.RGBA()
	for i := 0; i+3 < len(buf); i += 4 {
		buf[i+0] = uint8(rOff >> 8)
		buf[i+1] = uint8(gOff >> 8)
		buf[i+2] = uint8(bOff >> 8)
		buf[i+3] = uint8(aOff >> 8)
	}

	rOn, gOn, bOn, aOn := on.RGBA()
	for _, c := range live {
		x0, y0 := layout.DotOrigin(c)
		for y := y0; y < y0+layout.Dot && y < h; y++ {
			if y < 0 {
				continue
			}
			for x := x0; x < x0+layout.Dot && x < w; x++ {
				if x < 0 {
					continue
				}
				base := (y*w + x) * 4
				buf[base+0] = uint8(rOn >> 8)
				buf[base+1] = uint8(gOn >> 8)
				buf[base+2] = uint8(bOn >> 8)
				buf[base+3] = uint8(aOn >> 8)
			}
		}
	}
}
