package render

import (
	"github.com/gdamore/tcell/v2"

	"stonedelve/internal/cave"
)

// Tile is the glyph and color a terrain feature renders as.
type Tile struct {
	Glyph rune
	Color tcell.Color
}

// featureTiles maps each terrain feature to its on-screen look. Mineral
// veins with treasure share the '*' glyph and differ only by color.
var featureTiles = map[cave.Feature]Tile{
	cave.FeatNone:       {' ', tcell.ColorBlack},
	cave.FeatFloor:      {'.', tcell.ColorGray},
	cave.FeatRock:       {'#', tcell.ColorDarkSlateGray},
	cave.FeatWallInner:  {'#', tcell.ColorSilver},
	cave.FeatWallOuter:  {'#', tcell.ColorSilver},
	cave.FeatWallSolid:  {'#', tcell.ColorSilver},
	cave.FeatPerm:       {'#', tcell.ColorWhite},
	cave.FeatMagma:      {'%', tcell.ColorMaroon},
	cave.FeatQuartz:     {'%', tcell.ColorBeige},
	cave.FeatMagmaGold:  {'*', tcell.ColorYellow},
	cave.FeatQuartzGold: {'*', tcell.ColorGold},
	cave.FeatOpenDoor:   {'\'', tcell.ColorSandyBrown},
	cave.FeatBrokenDoor: {'\'', tcell.ColorSaddleBrown},
	cave.FeatClosedDoor: {'+', tcell.ColorSandyBrown},
	cave.FeatSecretDoor: {'#', tcell.ColorSilver}, // looks like wall until found
	cave.FeatStairsDown: {'>', tcell.ColorWhite},
	cave.FeatStairsUp:   {'<', tcell.ColorWhite},
	cave.FeatRubble:     {':', tcell.ColorSienna},
	cave.FeatShop:       {'1', tcell.ColorYellow},
}

// FeatureTile returns the tile for the feature at (y, x). Shops render as
// their store index digit.
func FeatureTile(c *cave.Cave, y, x int) Tile {
	f := c.FeatAt(y, x)
	t, ok := featureTiles[f]
	if !ok {
		return Tile{'?', tcell.ColorRed}
	}
	if f == cave.FeatShop {
		if n, ok := c.ShopAt(y, x); ok {
			t.Glyph = rune('1' + n)
		}
	}
	return t
}

// palette maps the spawn package's 16-color indices onto tcell colors.
var palette = [16]tcell.Color{
	tcell.ColorBlack, tcell.ColorMaroon, tcell.ColorGreen, tcell.ColorOlive,
	tcell.ColorNavy, tcell.ColorPurple, tcell.ColorTeal, tcell.ColorSilver,
	tcell.ColorGray, tcell.ColorRed, tcell.ColorLime, tcell.ColorYellow,
	tcell.ColorBlue, tcell.ColorFuchsia, tcell.ColorAqua, tcell.ColorWhite,
}

// PaletteColor converts a palette index byte to a tcell color.
func PaletteColor(idx byte) tcell.Color {
	if int(idx) < len(palette) {
		return palette[idx]
	}
	return tcell.ColorWhite
}
