package wordcloud

import (
	"image/color"
	"sort"
)

// DefaultColormap matches the original explorer's default palette choice.
const DefaultColormap = "inferno"

// colormaps holds small samples of the matplotlib palettes the original
// explorer offered. Order within a palette runs dark to light.
var colormaps = map[string][]color.Color{
	"viridis":  hexPalette(0x440154, 0x3b528b, 0x21918c, 0x5ec962, 0xfde725),
	"plasma":   hexPalette(0x0d0887, 0x7e03a8, 0xcc4778, 0xf89540, 0xf0f921),
	"inferno":  hexPalette(0x000004, 0x57106e, 0xbc3754, 0xf98e09, 0xfcffa4),
	"magma":    hexPalette(0x000004, 0x51127c, 0xb73779, 0xfc8961, 0xfcfdbf),
	"cividis":  hexPalette(0x00224e, 0x35456c, 0x666970, 0xa69d75, 0xfee838),
	"twilight": hexPalette(0xe2d9e2, 0x8a76ab, 0x40498e, 0x633b32, 0xc3a496),
	"hsv":      hexPalette(0xff0000, 0xffff00, 0x00ff00, 0x00ffff, 0x0000ff, 0xff00ff),
	"autumn":   hexPalette(0xff0000, 0xff4000, 0xff8000, 0xffbf00, 0xffff00),
	"winter":   hexPalette(0x0000ff, 0x0040df, 0x0080bf, 0x00bf9f, 0x00ff80),
}

// Colormaps returns the available palette names, sorted.
func Colormaps() []string {
	names := make([]string, 0, len(colormaps))
	for name := range colormaps {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Palette returns the named palette rotated by seed. Unknown names fall back
// to the default palette. Rotation is the only seed-dependent input to a
// render, so output stays reproducible for a fixed seed.
func Palette(name string, seed int64) []color.Color {
	base, ok := colormaps[name]
	if !ok {
		base = colormaps[DefaultColormap]
	}

	if seed == 0 {
		return base
	}

	offset := int(seed % int64(len(base)))
	if offset < 0 {
		offset += len(base)
	}
	rotated := make([]color.Color, 0, len(base))
	rotated = append(rotated, base[offset:]...)
	rotated = append(rotated, base[:offset]...)
	return rotated
}

func hexPalette(values ...uint32) []color.Color {
	out := make([]color.Color, len(values))
	for i, v := range values {
		out[i] = color.RGBA{
			R: uint8(v >> 16),
			G: uint8(v >> 8),
			B: uint8(v),
			A: 0xff,
		}
	}
	return out
}
