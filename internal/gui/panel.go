package gui

import (
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"
	"go.uber.org/zap"

	"github.com/appengine-ltd/seilespill/internal/assets"
	"github.com/appengine-ltd/seilespill/internal/gui/theme"
	"github.com/appengine-ltd/seilespill/internal/tuning"
)

const (
	panelWidth  = float32(380)
	panelMargin = float32(12)
)

var (
	channelNames  = [3]string{"r", "g", "b"}
	channelColors = [3]rl.Color{
		rl.NewColor(0xE0, 0x5A, 0x4F, 255),
		rl.NewColor(0x5C, 0xC2, 0x6E, 255),
		rl.NewColor(0x4F, 0x8F, 0xE0, 255),
	}
)

// sliderRow is one draggable row of the debug panel.
type sliderRow struct {
	key    string
	label  string
	rect   rl.Rectangle
	lo, hi float32
	field  func(*tuning.Values) *float32
	swatch func(*tuning.Values) *tuning.Color
	// channel is the RGB index for color sliders, -1 otherwise.
	channel int
}

// debugPanel edits the live tunables. Values apply to the next frame.
type debugPanel struct {
	store   *tuning.Store
	log     *zap.Logger
	visible bool
	active  string
	saveErr error
}

func newDebugPanel(store *tuning.Store, log *zap.Logger) *debugPanel {
	return &debugPanel{store: store, log: log, visible: true}
}

func (p *debugPanel) bounds(screenH int32) rl.Rectangle {
	h := float32(screenH) - 2*panelMargin
	if h > 680 {
		h = 680
	}
	return rl.NewRectangle(panelMargin, panelMargin, panelWidth, h)
}

// content is the area below the panel title.
func (p *debugPanel) content(screenH int32) rl.Rectangle {
	b := p.bounds(screenH)
	top := b.Y + theme.PaddingS + float32(theme.Type.Header) + 10 + theme.PaddingS
	return rl.NewRectangle(b.X+theme.PaddingM, top, b.Width-2*theme.PaddingM, b.Y+b.Height-top-theme.PaddingS)
}

// rows lays out one slider per scalar, then a swatch row and three channel
// sliders per color.
func (p *debugPanel) rows(content rl.Rectangle) []sliderRow {
	var out []sliderRow
	y := content.Y
	next := func() rl.Rectangle {
		r := rl.NewRectangle(content.X, y, content.Width, theme.RowHeight)
		y += theme.RowHeight
		return r
	}
	for _, sc := range tuning.Scalars() {
		out = append(out, sliderRow{key: sc.Key, label: sc.Label, rect: next(), lo: sc.Min, hi: sc.Max, field: sc.Field, channel: -1})
	}
	for _, cf := range tuning.Colors() {
		out = append(out, sliderRow{key: cf.Key, label: cf.Label, rect: next(), swatch: cf.Field, channel: -1})
		for i, ch := range channelNames {
			out = append(out, sliderRow{
				key:     cf.Key + "." + ch,
				label:   "  " + ch,
				rect:    next(),
				lo:      0,
				hi:      1,
				field:   func(v *tuning.Values) *float32 { return &cf.Field(v)[i] },
				channel: i,
			})
		}
	}
	return out
}

func (p *debugPanel) statusY(rows []sliderRow) float32 {
	if len(rows) == 0 {
		return 0
	}
	last := rows[len(rows)-1].rect
	return last.Y + last.Height + theme.PaddingS
}

func (p *debugPanel) buttons(rows []sliderRow, content rl.Rectangle) (save, revert rl.Rectangle) {
	y := p.statusY(rows) + float32(theme.Type.Body)*2 + theme.PaddingS
	w := (content.Width - theme.PaddingS) / 2
	save = rl.NewRectangle(content.X, y, w, theme.ButtonHeight)
	revert = rl.NewRectangle(content.X+w+theme.PaddingS, y, w, theme.ButtonHeight)
	return save, revert
}

// handle applies one frame of mouse input. It reports whether the pointer
// is over the panel so the caller can ignore it elsewhere.
func (p *debugPanel) handle(in pointer, screenH int32) bool {
	if !p.visible {
		p.active = ""
		return false
	}
	content := p.content(screenH)
	rows := p.rows(content)

	if !in.down {
		if p.active != "" {
			p.log.Debug("tunable edited", zap.String("key", p.active), zap.Bool("unsaved", p.store.Unsaved()))
		}
		p.active = ""
	}
	if in.pressed {
		for _, r := range rows {
			if r.field != nil && rl.CheckCollisionPointRec(in.pos, r.rect) {
				p.active = r.key
				break
			}
		}
		save, revert := p.buttons(rows, content)
		switch {
		case rl.CheckCollisionPointRec(in.pos, save):
			p.save()
		case rl.CheckCollisionPointRec(in.pos, revert) && p.store.Unsaved():
			p.store.Revert()
			p.saveErr = nil
		}
	}
	if p.active != "" && in.down {
		for _, r := range rows {
			if r.key != p.active {
				continue
			}
			v := theme.SliderValue(theme.SliderTrack(r.rect), in.pos.X, r.lo, r.hi)
			*r.field(p.store.Edit()) = v
		}
	}
	return rl.CheckCollisionPointRec(in.pos, p.bounds(screenH))
}

// save writes the tunables when they differ from the file.
func (p *debugPanel) save() {
	if !p.store.Unsaved() {
		return
	}
	p.saveErr = p.store.Save()
}

func (p *debugPanel) draw(screenH int32, state assets.State) {
	if !p.visible {
		theme.DrawHintText("F1: debug panel", int32(panelMargin), int32(panelMargin))
		return
	}
	content := theme.DrawTitledPanel(p.bounds(screenH), "Debug", theme.PanelStandard)
	rows := p.rows(content)
	vals := p.store.Values()
	for _, r := range rows {
		if r.swatch != nil {
			theme.DrawText(r.label, int32(r.rect.X), int32(r.rect.Y+(r.rect.Height-float32(theme.Type.Body))/2), theme.Type.Body, theme.TextSecondary)
			sw := rl.NewRectangle(r.rect.X+theme.LabelWidth, r.rect.Y+6, r.rect.Width-theme.LabelWidth-64, r.rect.Height-12)
			theme.DrawSwatch(sw, colorOf(*r.swatch(&vals), 1))
			continue
		}
		fill := theme.AccentFoam
		if r.channel >= 0 {
			fill = channelColors[r.channel]
		}
		theme.DrawSlider(r.rect, r.label, *r.field(&vals), r.lo, r.hi, r.key == p.active, fill)
	}

	y := p.statusY(rows)
	statusColor := theme.TextPrimary
	if state == assets.Failed {
		statusColor = theme.Danger
	}
	for i, line := range wrapText(statusLine(state), int(content.Width)/9) {
		drawText(line, int32(content.X), int32(y)+int32(i)*theme.Type.Body, theme.Type.Small, statusColor)
	}

	save, revert := p.buttons(rows, content)
	theme.DrawButton(save, buttonState(save, p.store.Unsaved()), "save config")
	theme.DrawButton(revert, buttonState(revert, p.store.Unsaved()), "revert")
	if p.saveErr != nil {
		theme.DrawHintText("save failed, see console", int32(content.X), int32(save.Y+save.Height+theme.PaddingXS))
	}
}

func buttonState(rect rl.Rectangle, enabled bool) theme.ButtonState {
	switch {
	case !enabled:
		return theme.ButtonDisabled
	case theme.Hover(rect):
		return theme.ButtonHover
	}
	return theme.ButtonNormal
}

// statusLine is the one-line hint for each asset state.
func statusLine(state assets.State) string {
	switch state {
	case assets.Loaded:
		return "press arrow keys to move the boat"
	case assets.Failed:
		return "assets failed to load for some reason, check console for detailed errors"
	}
	return "loading beautiful graphics"
}

// wrapText splits s into lines of at most width characters at spaces.
func wrapText(s string, width int) []string {
	if width < 8 {
		width = 8
	}
	var lines []string
	for len(s) > width {
		cut := width
		for cut > 0 && s[cut] != ' ' {
			cut--
		}
		if cut == 0 {
			cut = width
		}
		lines = append(lines, s[:cut])
		s = strings.TrimLeft(s[cut:], " ")
	}
	if s != "" {
		lines = append(lines, s)
	}
	return lines
}
