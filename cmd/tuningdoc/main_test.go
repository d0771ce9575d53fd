package main

import (
	"strings"
	"testing"

	"github.com/appengine-ltd/seilespill/internal/assets"
	"github.com/appengine-ltd/seilespill/internal/tuning"
)

func TestTuningDocListsEveryKey(t *testing.T) {
	doc := generateTuningDoc(tuning.Default())
	for _, s := range tuning.Scalars() {
		if !strings.Contains(doc.Content, "`"+s.Key+"`") {
			t.Fatalf("missing %s in doc", s.Key)
		}
	}
	for _, c := range tuning.Colors() {
		if !strings.Contains(doc.Content, "`"+c.Key+"`") {
			t.Fatalf("missing %s in doc", c.Key)
		}
	}
	if !strings.Contains(doc.Content, "| `drag_c` | drag | 0 | 0.3 | 0.1 |") {
		t.Fatalf("unexpected drag row:\n%s", doc.Content)
	}
}

func TestIslandsDocEscapesCards(t *testing.T) {
	l := &assets.Layout{Islands: []assets.Island{{
		Name:  "north",
		Cards: []assets.Card{{PersonName: "Kari", Task: "nets | ropes"}},
	}}}
	doc := generateIslandsDoc(l)
	if !strings.Contains(doc.Content, `Kari: nets \| ropes`) {
		t.Fatalf("expected escaped card, got:\n%s", doc.Content)
	}
}
