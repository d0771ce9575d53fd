package tuning

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
)

func TestDefaultValuesAreValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("expected defaults to validate, got %v", err)
	}
	for _, f := range Scalars() {
		v := Default()
		x := *f.Field(&v)
		if x < f.Min || x > f.Max {
			t.Fatalf("expected default %s=%g within [%g,%g]", f.Key, x, f.Min, f.Max)
		}
	}
}

func TestDragRangeMatchesPanel(t *testing.T) {
	for _, f := range Scalars() {
		if f.Key != "drag_c" {
			continue
		}
		if f.Min != 0 || f.Max != 0.3 {
			t.Fatalf("expected drag_c range [0,0.3], got [%g,%g]", f.Min, f.Max)
		}
		return
	}
	t.Fatalf("drag_c field missing")
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	v, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	if err != nil {
		t.Fatalf("expected no error for missing file, got %v", err)
	}
	if v != Default() {
		t.Fatalf("expected defaults, got %+v", v)
	}
}

func TestLoadParseErrorKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	v, err := Load(path)
	if err == nil {
		t.Fatalf("expected parse error")
	}
	if v != Default() {
		t.Fatalf("expected defaults on parse error, got %+v", v)
	}
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	if err := os.WriteFile(path, []byte(`{"drag_c":0.2}`), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	v, err := Load(path)
	if err != nil {
		t.Fatalf("expected partial file to load, got %v", err)
	}
	want := Default()
	want.DragC = 0.2
	if v != want {
		t.Fatalf("expected defaults with drag_c 0.2, got %+v", v)
	}
}

func TestLoadClampsToPanelRange(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	if err := os.WriteFile(path, []byte(`{"drag_c":5,"floating_c":250}`), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	v, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if v.DragC != 0.3 || v.FloatingC != 100 {
		t.Fatalf("expected drag 0.3 and floating 100, got %g %g", v.DragC, v.FloatingC)
	}
}

func TestLoadRejectsOutOfRangeColor(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	body := `{"drag_c":0.1,"avg_boat_height":0.5,"floating_c":10,"drag_ang_c":1,` +
		`"light_dir_color":[2,0,0],"light_amb_color":[0,0,0],"light_dir_lum":1,"light_amb_lum":1}`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatalf("expected validation error for color channel > 1")
	}
}

func TestSaveWritesSnakeCaseKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	if err := Save(path, Default()); err != nil {
		t.Fatalf("save: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	for _, key := range []string{"drag_c", "avg_boat_height", "floating_c", "drag_ang_c", "light_dir_color", "light_amb_color", "light_dir_lum", "light_amb_lum"} {
		if !strings.Contains(string(data), `"`+key+`"`) {
			t.Fatalf("expected key %q in saved file:\n%s", key, data)
		}
	}
}

func TestStoreTracksUnsavedEdits(t *testing.T) {
	dir := t.TempDir()
	s := Open(dir, zap.NewNop())
	if s.Unsaved() {
		t.Fatalf("expected fresh store to be clean")
	}

	s.Edit().DragC = 0.25
	if !s.Unsaved() {
		t.Fatalf("expected edit to mark store unsaved")
	}

	if err := s.Save(); err != nil {
		t.Fatalf("save: %v", err)
	}
	if s.Unsaved() {
		t.Fatalf("expected save to clear unsaved state")
	}

	reopened := Open(dir, zap.NewNop())
	if reopened.Values().DragC != 0.25 {
		t.Fatalf("expected saved drag_c 0.25, got %g", reopened.Values().DragC)
	}
}

func TestStoreEditBackToSavedIsClean(t *testing.T) {
	s := Open(t.TempDir(), zap.NewNop())
	s.Edit().FloatingC = 12
	s.Edit().FloatingC = Default().FloatingC
	if s.Unsaved() {
		t.Fatalf("expected store clean after restoring saved value")
	}
}

func TestStoreSaveFailureKeepsUnsaved(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "gone")
	s := Open(dir, zap.NewNop())
	s.Edit().DragC = 0.2
	if err := s.Save(); err == nil {
		t.Fatalf("expected save into missing directory to fail")
	}
	if !s.Unsaved() {
		t.Fatalf("expected unsaved state to survive failed save")
	}
}

func TestClampedPullsIntoRange(t *testing.T) {
	v := Default()
	v.DragC = 4
	v.LightAmbColor = Color{-1, 0.5, 3}
	c := v.Clamped()
	if c.DragC != 0.3 {
		t.Fatalf("expected drag clamped to 0.3, got %g", c.DragC)
	}
	if c.LightAmbColor != (Color{0, 0.5, 1}) {
		t.Fatalf("expected color clamped, got %v", c.LightAmbColor)
	}
}
