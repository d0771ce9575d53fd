package theme

import rl "github.com/gen2brain/raylib-go/raylib"

// NineSlice is a 9-patch texture. Insets are in source pixels; corners are
// drawn unscaled, edges stretch along one axis and the centre along both.
type NineSlice struct {
	Tex    rl.Texture2D
	Left   int32
	Right  int32
	Top    int32
	Bottom int32
}

// DrawNineSlice renders ns into dest. Without a texture it fills dest flat.
func DrawNineSlice(ns NineSlice, dest rl.Rectangle, tint rl.Color) {
	if ns.Tex.ID == 0 {
		rl.DrawRectangleRec(dest, rl.Fade(tint, 0.35))
		return
	}
	for _, p := range slicePatches(ns, dest) {
		if p[1].Width <= 0 || p[1].Height <= 0 {
			continue
		}
		rl.DrawTexturePro(ns.Tex, p[0], p[1], rl.Vector2{}, 0, tint)
	}
}

// slicePatches pairs each source cell with its destination cell, row by row.
func slicePatches(ns NineSlice, dest rl.Rectangle) [9][2]rl.Rectangle {
	sw, sh := float32(ns.Tex.Width), float32(ns.Tex.Height)
	l, r := float32(ns.Left), float32(ns.Right)
	t, b := float32(ns.Top), float32(ns.Bottom)

	dl, dr, dt, db := l, r, t, b
	if dl+dr > dest.Width {
		dl, dr = dest.Width/2, dest.Width/2
	}
	if dt+db > dest.Height {
		dt, db = dest.Height/2, dest.Height/2
	}

	srcX := [3][2]float32{{0, l}, {l, sw - l - r}, {sw - r, r}}
	srcY := [3][2]float32{{0, t}, {t, sh - t - b}, {sh - b, b}}
	dstX := [3][2]float32{{dest.X, dl}, {dest.X + dl, dest.Width - dl - dr}, {dest.X + dest.Width - dr, dr}}
	dstY := [3][2]float32{{dest.Y, dt}, {dest.Y + dt, dest.Height - dt - db}, {dest.Y + dest.Height - db, db}}

	var out [9][2]rl.Rectangle
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			out[row*3+col] = [2]rl.Rectangle{
				rl.NewRectangle(srcX[col][0], srcY[row][0], srcX[col][1], srcY[row][1]),
				rl.NewRectangle(dstX[col][0], dstY[row][0], dstX[col][1], dstY[row][1]),
			}
		}
	}
	return out
}
