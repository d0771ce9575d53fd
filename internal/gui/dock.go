package gui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/appengine-ltd/seilespill/internal/assets"
	"github.com/appengine-ltd/seilespill/internal/gui/theme"
	"github.com/appengine-ltd/seilespill/internal/world"
)

const (
	cardWidth       = float32(180)
	cardHeight      = float32(110)
	cardGrow        = float32(1.2)
	dockPanelHeight = float32(200)
)

// dockPanel shows the notice board of the island the boat is docked at.
type dockPanel struct {
	layout   *assets.Layout
	island   string
	cards    []assets.Card
	selected int
	visible  bool
}

// subscribe wires the panel to the scene's dock events.
func (d *dockPanel) subscribe(s *world.Scene) {
	d.layout = s.Layout
	world.Subscribe(s.Bus, func(ev world.DockShown) { d.show(ev.Island) })
	world.Subscribe(s.Bus, func(ev world.DockHidden) { d.hide(ev.Island) })
}

func (d *dockPanel) show(island string) {
	d.island = island
	d.cards = nil
	d.selected = 0
	d.visible = true
	if d.layout == nil {
		return
	}
	if isl, ok := d.layout.Island(island); ok {
		d.cards = isl.Cards
	}
}

// hide closes the panel. A hide for another island is stale and ignored.
func (d *dockPanel) hide(island string) {
	if island != "" && island != d.island {
		return
	}
	d.visible = false
}

// next moves the selection to the following card, wrapping around.
func (d *dockPanel) next() {
	if !d.visible || len(d.cards) == 0 {
		return
	}
	d.selected = (d.selected + 1) % len(d.cards)
}

// cardRects lays the cards out centred in area; the selected card is larger.
func (d *dockPanel) cardRects(area rl.Rectangle) []rl.Rectangle {
	n := len(d.cards)
	if n == 0 {
		return nil
	}
	gap := theme.PaddingM
	total := float32(n)*cardWidth + float32(n-1)*gap + cardWidth*(cardGrow-1)
	x := area.X + (area.Width-total)/2
	out := make([]rl.Rectangle, n)
	for i := range d.cards {
		w, h := cardWidth, cardHeight
		if i == d.selected {
			w, h = cardWidth*cardGrow, cardHeight*cardGrow
		}
		out[i] = rl.NewRectangle(x, area.Y+area.Height-h, w, h)
		x += w + gap
	}
	return out
}

func (d *dockPanel) draw(screenW, screenH int32) {
	if !d.visible {
		return
	}
	bounds := rl.NewRectangle(float32(screenW)/2-380, float32(screenH)-dockPanelHeight-panelMargin, 760, dockPanelHeight)
	if bounds.X < panelWidth+2*panelMargin {
		bounds.X = panelWidth + 2*panelMargin
	}
	content := theme.DrawTitledPanel(bounds, fmt.Sprintf("Dock: %s", d.island), theme.PanelLifted)
	if len(d.cards) == 0 {
		theme.DrawHintText("nobody needs a hand here", int32(content.X), int32(content.Y))
		return
	}
	for i, r := range d.cardRects(content) {
		variant := theme.PanelStandard
		if i == d.selected {
			variant = theme.PanelLifted
		}
		if theme.Skin.Card.Tex.ID != 0 {
			theme.DrawNineSlice(theme.Skin.Card, r, theme.PanelRaised)
		} else {
			theme.DrawPanel(r, variant)
		}
		c := d.cards[i]
		size := theme.Type.Body
		if i == d.selected {
			size = theme.Type.Header
		}
		drawText(c.PersonName, int32(r.X+theme.PaddingS), int32(r.Y+theme.PaddingS), size, theme.TextPrimary)
		for j, line := range wrapText(c.Task, int(r.Width/9)) {
			drawText(line, int32(r.X+theme.PaddingS), int32(r.Y+theme.PaddingS)+size+6+int32(j)*theme.Type.Small, theme.Type.Small, theme.TextSecondary)
		}
	}
	theme.DrawHintText("Tab: next card", int32(bounds.X+bounds.Width-120), int32(bounds.Y+theme.PaddingS))
}
