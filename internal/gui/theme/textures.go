package theme

import (
	"os"
	"path/filepath"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Skin holds the loaded nine-slice textures. Zero-value slots fall back to
// flat fills in DrawNineSlice.
var Skin skinAssets

type skinAssets struct {
	Panel  NineSlice
	Button NineSlice
	Card   NineSlice

	loaded bool
}

// Slice insets of the generated placeholder art.
const (
	PanelSlice  = int32(8)
	ButtonSlice = int32(6)
	CardSlice   = int32(10)
)

// InitSkin loads skin textures from <root>/ui. Call after rl.InitWindow.
func InitSkin(root string) {
	if Skin.loaded {
		return
	}
	Skin.loaded = true
	dir := filepath.Join(root, "ui")
	Skin.Panel = loadNineSlice(filepath.Join(dir, "panel_9slice.png"), PanelSlice)
	Skin.Button = loadNineSlice(filepath.Join(dir, "button_9slice.png"), ButtonSlice)
	Skin.Card = loadNineSlice(filepath.Join(dir, "card_9slice.png"), CardSlice)
}

// UnloadSkin releases GPU textures. Call before rl.CloseWindow.
func UnloadSkin() {
	unloadTex(&Skin.Panel.Tex)
	unloadTex(&Skin.Button.Tex)
	unloadTex(&Skin.Card.Tex)
	Skin.loaded = false
}

func loadNineSlice(path string, inset int32) NineSlice {
	ns := NineSlice{Left: inset, Right: inset, Top: inset, Bottom: inset}
	if _, err := os.Stat(path); err != nil {
		return ns
	}
	tex := rl.LoadTexture(path)
	if tex.ID == 0 {
		return ns
	}
	rl.SetTextureFilter(tex, rl.FilterBilinear)
	ns.Tex = tex
	return ns
}

func unloadTex(t *rl.Texture2D) {
	if t != nil && t.ID != 0 {
		rl.UnloadTexture(*t)
		*t = rl.Texture2D{}
	}
}
