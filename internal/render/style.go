package render

import (
	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/terrain"
)

// Style describes how a material is drawn into terminal cells.
type Style struct {
	Fill  rune
	Color core.Color

	// Edge runes decorate the top row of a block. One is picked per column
	// from the decoration stream. Empty means no edge decoration.
	Edge      []rune
	EdgeColor core.Color

	// Speckle is scattered over the fill with a 1-in-SpeckleChance
	// probability per cell. Zero chance disables it.
	Speckle       rune
	SpeckleColor  core.Color
	SpeckleChance int
}

var materialStyles = map[terrain.Material]Style{
	terrain.Grass: {
		Fill:          '█',
		Color:         core.ColorBrown,
		Edge:          []rune{'▀', '▀', '"', '\'', '▲'},
		EdgeColor:     core.ColorBrightGreen,
		Speckle:       '▓',
		SpeckleColor:  core.ColorDarkGreen,
		SpeckleChance: 12,
	},
	terrain.Dirt: {
		Fill:          '▓',
		Color:         core.ColorBrown,
		Speckle:       '░',
		SpeckleColor:  core.ColorOrange,
		SpeckleChance: 8,
	},
	terrain.Stone: {
		Fill:          '█',
		Color:         core.ColorSlate,
		Edge:          []rune{'▄', '▀', '█'},
		EdgeColor:     core.ColorGray,
		Speckle:       '▒',
		SpeckleColor:  core.ColorGray,
		SpeckleChance: 6,
	},
}

// StyleFor returns the style for m, falling back to dirt.
func StyleFor(m terrain.Material) Style {
	if s, ok := materialStyles[m]; ok {
		return s
	}
	return materialStyles[terrain.Dirt]
}

// Player and goal glyphs.
const (
	playerRune = '█'
	goalRune   = '▒'
	goalColor  = core.ColorBrightMagenta
)

func playerColor(onGround bool) core.Color {
	if onGround {
		return core.ColorBrightYellow
	}
	return core.ColorYellow
}
