package tuning

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	json "github.com/goccy/go-json"
	"go.uber.org/zap"
)

// FileName is the tunables file name under the asset root.
const FileName = "config.json"

// Load reads values from path. A missing file yields defaults and no error.
// Keys absent from the file keep their defaults, and values outside the
// panel ranges are clamped. On any other failure the defaults are returned
// together with the error.
func Load(path string) (Values, error) {
	v := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return v, nil
		}
		return v, fmt.Errorf("read tuning %s: %w", path, err)
	}
	parsed := Default()
	if err := json.Unmarshal(data, &parsed); err != nil {
		return v, fmt.Errorf("parse tuning %s: %w", path, err)
	}
	if err := parsed.Validate(); err != nil {
		return v, fmt.Errorf("validate tuning %s: %w", path, err)
	}
	return parsed.Clamped(), nil
}

// Save overwrites path with v.
func Save(path string, v Values) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// Store owns the live tunables and tracks whether they differ from what was
// last loaded or saved.
type Store struct {
	path  string
	log   *zap.Logger
	live  Values
	saved Values
}

// Open loads the tunables under assetsDir. Load errors are logged and the
// defaults stay in use.
func Open(assetsDir string, log *zap.Logger) *Store {
	path := filepath.Join(assetsDir, FileName)
	v, err := Load(path)
	if err != nil {
		log.Error("tuning load failed, using defaults", zap.String("path", path), zap.Error(err))
	} else {
		log.Info("tuning loaded", zap.String("path", path))
	}
	return &Store{path: path, log: log, live: v, saved: v}
}

// Values returns a copy of the live tunables.
func (s *Store) Values() Values {
	return s.live
}

// Edit exposes the live values for in-place widget edits.
func (s *Store) Edit() *Values {
	return &s.live
}

// Unsaved reports whether the live values differ from the last saved state.
func (s *Store) Unsaved() bool {
	return s.live != s.saved
}

// Revert drops unsaved edits.
func (s *Store) Revert() {
	s.live = s.saved
}

// Save writes the live values. On failure the unsaved state is kept so the
// user can retry.
func (s *Store) Save() error {
	if err := Save(s.path, s.live); err != nil {
		s.log.Error("tuning save failed", zap.String("path", s.path), zap.Error(err))
		return err
	}
	s.saved = s.live
	s.log.Info("tuning saved", zap.String("path", s.path))
	return nil
}
