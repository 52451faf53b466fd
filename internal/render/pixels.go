package render

import "image/color"

// HeightPalette returns levels+1 colours: index 0 is the dead colour and
// indices 1..levels ramp from a dim to the full alive colour.
func HeightPalette(levels int, alive, dead color.RGBA) []color.RGBA {
	if levels < 1 {
		levels = 1
	}
	palette := make([]color.RGBA, levels+1)
	palette[0] = dead
	for i := 1; i <= levels; i++ {
		// Height 1 starts at 35% brightness.
		w := 0.35 + 0.65*float64(i-1)/float64(max(1, levels-1))
		palette[i] = mix(dead, alive, w)
	}
	return palette
}

func mix(base, over color.RGBA, w float64) color.RGBA {
	inv := 1 - w
	return color.RGBA{
		R: uint8(float64(base.R)*inv + float64(over.R)*w + 0.5),
		G: uint8(float64(base.G)*inv + float64(over.G)*w + 0.5),
		B: uint8(float64(base.B)*inv + float64(over.B)*w + 0.5),
		A: uint8(float64(base.A)*inv + float64(over.A)*w + 0.5),
	}
}

// fillPaletteRGBA converts cell values into RGBA pixels using a palette. When
// the palette is empty the buffer is cleared to transparent black. Values past
// the end of the palette use its last entry.
func fillPaletteRGBA(buf []byte, cells []uint8, palette []color.RGBA) {
	if len(palette) == 0 {
		for i := range cells {
			base := i * 4
			buf[base+0] = 0
			buf[base+1] = 0
			buf[base+2] = 0
			buf[base+3] = 0
		}
		return
	}

	last := len(palette) - 1
	for i, c := range cells {
		idx := int(c)
		if idx > last {
			idx = last
		}
		base := i * 4
		col := palette[idx]
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}
