package theme

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func TestSliderValueClampsToTrack(t *testing.T) {
	track := rl.NewRectangle(100, 0, 200, 6)
	cases := []struct {
		x    float32
		want float32
	}{
		{50, 0},
		{100, 0},
		{200, 0.15},
		{300, 0.3},
		{900, 0.3},
	}
	for _, tc := range cases {
		if got := SliderValue(track, tc.x, 0, 0.3); abs(got-tc.want) > 1e-6 {
			t.Fatalf("x=%v: expected %v, got %v", tc.x, tc.want, got)
		}
	}
}

func TestSliderFractionRoundTrips(t *testing.T) {
	track := rl.NewRectangle(0, 0, 160, 6)
	for _, v := range []float32{0, 12.5, 40, 99.9} {
		frac := SliderFraction(v, 0, 100)
		back := SliderValue(track, track.X+frac*track.Width, 0, 100)
		if abs(back-v) > 1e-3 {
			t.Fatalf("expected %v back, got %v", v, back)
		}
	}
	if SliderFraction(5, 3, 3) != 0 {
		t.Fatalf("expected empty range to map to zero")
	}
}

func TestSlicePatchesCoverDestination(t *testing.T) {
	ns := NineSlice{Tex: rl.Texture2D{Width: 32, Height: 32}, Left: 8, Right: 8, Top: 8, Bottom: 8}
	dest := rl.NewRectangle(10, 20, 100, 50)
	var area float32
	for _, p := range slicePatches(ns, dest) {
		area += p[1].Width * p[1].Height
	}
	if abs(area-dest.Width*dest.Height) > 1e-3 {
		t.Fatalf("expected patches to tile %v, got %v", dest.Width*dest.Height, area)
	}
	centre := slicePatches(ns, dest)[4]
	if centre[0].Width != 16 || centre[1].X != 18 || centre[1].Width != 84 {
		t.Fatalf("unexpected centre patch %+v", centre)
	}
}

func TestSlicePatchesShrinkCornersOnSmallDest(t *testing.T) {
	ns := NineSlice{Tex: rl.Texture2D{Width: 32, Height: 32}, Left: 10, Right: 10, Top: 10, Bottom: 10}
	p := slicePatches(ns, rl.NewRectangle(0, 0, 12, 12))
	if p[0][1].Width != 6 || p[4][1].Width != 0 {
		t.Fatalf("expected corners halved and centre collapsed, got %+v", p)
	}
}

func abs(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
