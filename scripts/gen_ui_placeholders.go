//go:build ignore

// gen_ui_placeholders.go writes placeholder nine-slice skins:
//
//	go run scripts/gen_ui_placeholders.go [assets-dir]
//
// Each PNG has a border band of slice pixels and a flat centre, so the
// slice guides in internal/gui/theme/textures.go are easy to check.
package main

import (
	"image"
	"image/color"
	"image/png"
	"log"
	"os"
	"path/filepath"
)

type skin struct {
	name   string
	size   int
	slice  int
	border color.RGBA
	centre color.RGBA
}

var skins = []skin{
	// Panel: deep harbour blue, steel-blue rim.
	{"panel_9slice.png", 48, 8, color.RGBA{0x3A, 0x55, 0x6B, 0xFF}, color.RGBA{0x14, 0x24, 0x33, 0xEB}},
	// Button: same family, slightly lifted.
	{"button_9slice.png", 32, 6, color.RGBA{0x4A, 0x68, 0x80, 0xFF}, color.RGBA{0x1B, 0x30, 0x44, 0xF5}},
	// Card: weathered notice board with a buoy-orange rim.
	{"card_9slice.png", 64, 10, color.RGBA{0xF2, 0x6B, 0x3A, 0xFF}, color.RGBA{0xE9, 0xDF, 0xC9, 0xFF}},
}

func main() {
	root := "assets"
	if len(os.Args) > 1 {
		root = os.Args[1]
	}
	dir := filepath.Join(root, "ui")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		log.Fatal(err)
	}
	for _, s := range skins {
		write(filepath.Join(dir, s.name), s)
	}
	log.Printf("placeholder skins written to %s", dir)
}

func write(path string, s skin) {
	img := image.NewRGBA(image.Rect(0, 0, s.size, s.size))
	for y := 0; y < s.size; y++ {
		for x := 0; x < s.size; x++ {
			c := s.centre
			if x < s.slice || y < s.slice || x >= s.size-s.slice || y >= s.size-s.slice {
				c = s.border
			}
			img.SetRGBA(x, y, c)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		log.Fatalf("create %s: %v", path, err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		log.Fatalf("encode %s: %v", path, err)
	}
	log.Printf("  wrote %s (%dx%d slice=%d)", path, s.size, s.size, s.slice)
}
