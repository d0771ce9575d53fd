package theme

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	PaddingXS = float32(6)
	PaddingS  = float32(10)
	PaddingM  = float32(14)
	PaddingL  = float32(20)

	CornerRadius   = float32(0.12)
	CornerSegments = int32(8)

	BorderWidth      = float32(1.2)
	BorderWidthFocus = float32(2.0)
	RowHeight        = float32(34)
	ButtonHeight     = float32(36)
	TrackHeight      = float32(6)
	KnobWidth        = float32(12)
	LabelWidth       = float32(120)
)

type PanelVariant int

const (
	PanelStandard PanelVariant = iota
	PanelLifted
	PanelMuted
)

type ButtonState int

const (
	ButtonNormal ButtonState = iota
	ButtonHover
	ButtonDisabled
)

func DrawPanel(rect rl.Rectangle, variant PanelVariant) {
	fill := Panel
	stroke := Border
	strokeWidth := BorderWidth
	switch variant {
	case PanelLifted:
		fill = PanelRaised
		stroke = mix(Border, AccentFoam, 0.35)
		strokeWidth = 1.4
	case PanelMuted:
		fill = DisabledPanel
		stroke = rl.Fade(Border, 0.75)
	}

	if Skin.Panel.Tex.ID != 0 {
		DrawNineSlice(Skin.Panel, rect, fill)
	} else {
		rl.DrawRectangleRounded(rect, CornerRadius, CornerSegments, fill)
	}
	rl.DrawRectangleRoundedLinesEx(rect, CornerRadius, CornerSegments, strokeWidth, stroke)
}

// DrawTitledPanel draws a panel with a header and divider and returns the
// content area below them.
func DrawTitledPanel(rect rl.Rectangle, title string, variant PanelVariant) rl.Rectangle {
	DrawPanel(rect, variant)
	if title == "" {
		return inset(rect, PaddingM)
	}
	DrawHeader(title, int32(rect.X+PaddingM), int32(rect.Y+PaddingS))
	dividerY := rect.Y + PaddingS + float32(Type.Header) + 10
	DrawDivider(rect.X+PaddingM, dividerY, rect.X+rect.Width-PaddingM, dividerY)
	top := dividerY + PaddingS
	return rl.NewRectangle(rect.X+PaddingM, top, rect.Width-2*PaddingM, rect.Y+rect.Height-top-PaddingS)
}

func DrawButton(rect rl.Rectangle, state ButtonState, text string) {
	fill := Panel
	stroke := Border
	label := TextPrimary
	strokeWidth := BorderWidth
	switch state {
	case ButtonHover:
		fill = PanelRaised
		stroke = AccentBuoy
		strokeWidth = BorderWidthFocus
	case ButtonDisabled:
		fill = DisabledPanel
		stroke = rl.Fade(Border, 0.75)
		label = DisabledText
	}

	if Skin.Button.Tex.ID != 0 {
		DrawNineSlice(Skin.Button, rect, fill)
	} else {
		rl.DrawRectangleRounded(rect, CornerRadius, CornerSegments, fill)
	}
	rl.DrawRectangleRoundedLinesEx(rect, CornerRadius, CornerSegments, strokeWidth, stroke)
	if text == "" {
		return
	}
	size := Type.Body
	w := MeasureText(text, size)
	DrawText(text, int32(rect.X+(rect.Width-float32(w))/2), int32(rect.Y+(rect.Height-float32(size))/2), size, label)
}

func DrawHeader(text string, x, y int32) {
	if text == "" {
		return
	}
	DrawText(text, x, y, Type.Header, TextPrimary)
	w := MeasureText(text, Type.Header)
	lineW := int32(float32(w) * 0.6)
	if lineW < 40 {
		lineW = 40
	}
	drawLine(float32(x), float32(y+Type.Header+5), float32(x+lineW), float32(y+Type.Header+5), 2.0, AccentBuoy)
}

func DrawDivider(x1, y1, x2, y2 float32) {
	drawLine(x1, y1, x2, y2, 1.0, rl.Fade(Divider, 0.95))
}

func DrawHintText(text string, x, y int32) {
	if text == "" {
		return
	}
	DrawText(text, x, y, Type.Small, TextMuted)
}

// SliderTrack is the bar part of a slider row laid out in row.
func SliderTrack(row rl.Rectangle) rl.Rectangle {
	x := row.X + LabelWidth
	w := row.Width - LabelWidth - 64
	if w < 20 {
		w = 20
	}
	return rl.NewRectangle(x, row.Y+(row.Height-TrackHeight)/2, w, TrackHeight)
}

// SliderValue maps a mouse x position over track to a value in [lo, hi].
func SliderValue(track rl.Rectangle, mouseX, lo, hi float32) float32 {
	if track.Width <= 0 || hi <= lo {
		return lo
	}
	t := (mouseX - track.X) / track.Width
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	return lo + t*(hi-lo)
}

// SliderFraction is the knob position of value along [lo, hi], in [0, 1].
func SliderFraction(value, lo, hi float32) float32 {
	if hi <= lo {
		return 0
	}
	t := (value - lo) / (hi - lo)
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}

// DrawSlider draws a labelled slider row with its value on the right.
func DrawSlider(row rl.Rectangle, label string, value, lo, hi float32, active bool, fill rl.Color) {
	DrawText(label, int32(row.X), int32(row.Y+(row.Height-float32(Type.Body))/2), Type.Body, TextSecondary)

	track := SliderTrack(row)
	frac := SliderFraction(value, lo, hi)
	rl.DrawRectangleRec(track, rl.Fade(SeaDeep, 0.9))
	if frac > 0 {
		rl.DrawRectangleRec(rl.NewRectangle(track.X, track.Y, track.Width*frac, track.Height), fill)
	}
	rl.DrawRectangleLinesEx(track, 1.0, rl.Fade(Border, 0.95))

	knob := rl.NewRectangle(track.X+track.Width*frac-KnobWidth/2, row.Y+4, KnobWidth, row.Height-8)
	knobColor := TextPrimary
	if active {
		knobColor = AccentBuoy
	}
	rl.DrawRectangleRounded(knob, 0.4, CornerSegments, knobColor)

	text := fmt.Sprintf("%.3g", value)
	DrawText(text, int32(track.X+track.Width+10), int32(row.Y+(row.Height-float32(Type.Small))/2), Type.Small, TextPrimary)
}

// DrawSwatch fills rect with clr and outlines it.
func DrawSwatch(rect rl.Rectangle, clr rl.Color) {
	rl.DrawRectangleRounded(rect, CornerRadius, CornerSegments, clr)
	rl.DrawRectangleRoundedLinesEx(rect, CornerRadius, CornerSegments, BorderWidth, Border)
}

// Hover reports whether the mouse is over rect.
func Hover(rect rl.Rectangle) bool {
	return rl.CheckCollisionPointRec(rl.GetMousePosition(), rect)
}

func inset(r rl.Rectangle, by float32) rl.Rectangle {
	return rl.NewRectangle(r.X+by, r.Y+by, r.Width-2*by, r.Height-2*by)
}

func drawLine(x1, y1, x2, y2, thickness float32, clr rl.Color) {
	rl.DrawLineEx(rl.NewVector2(x1, y1), rl.NewVector2(x2, y2), thickness, clr)
}

func mix(a, b rl.Color, t float32) rl.Color {
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	inv := 1.0 - t
	return rl.NewColor(
		uint8(float32(a.R)*inv+float32(b.R)*t),
		uint8(float32(a.G)*inv+float32(b.G)*t),
		uint8(float32(a.B)*inv+float32(b.B)*t),
		uint8(float32(a.A)*inv+float32(b.A)*t),
	)
}
