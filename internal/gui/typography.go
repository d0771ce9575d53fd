package gui

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/appengine-ltd/seilespill/internal/gui/theme"
)

const fontBaseSize = 36

type typographyState struct {
	font  rl.Font
	owned bool
}

var uiType typographyState

func initTypography() {
	uiType.font = rl.GetFontDefault()
	rl.SetTextureFilter(uiType.font.Texture, rl.FilterBilinear)
	theme.SetTextRenderer(drawText, measureText)
}

// useFont swaps in the font at path. The default font stays when it cannot
// be loaded.
func useFont(path string) bool {
	if path == "" {
		return false
	}
	f := rl.LoadFontEx(path, fontBaseSize, nil, 0)
	if f.Texture.ID == 0 {
		return false
	}
	releaseFont()
	rl.SetTextureFilter(f.Texture, rl.FilterBilinear)
	uiType = typographyState{font: f, owned: true}
	return true
}

func releaseFont() {
	if uiType.owned && uiType.font.Texture.ID != 0 {
		rl.UnloadFont(uiType.font)
	}
	uiType = typographyState{font: rl.GetFontDefault()}
}

func drawText(text string, x, y, fontSize int32, clr rl.Color) {
	if uiType.font.Texture.ID == 0 {
		rl.DrawText(text, x, y, fontSize, clr)
		return
	}
	rl.DrawTextEx(uiType.font, text, rl.Vector2{X: float32(x), Y: float32(y)}, float32(fontSize), 1, clr)
}

func measureText(text string, fontSize int32) int32 {
	if uiType.font.Texture.ID == 0 {
		return int32(rl.MeasureText(text, fontSize))
	}
	return int32(math.Round(float64(rl.MeasureTextEx(uiType.font, text, float32(fontSize), 1).X)))
}
