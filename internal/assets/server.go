package assets

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// State is the load state of the asset bundle. It only moves forward:
// Loading to Loaded or Loading to Failed.
type State int

const (
	Loading State = iota
	Loaded
	Failed
)

func (s State) String() string {
	switch s {
	case Loading:
		return "loading"
	case Loaded:
		return "loaded"
	case Failed:
		return "failed"
	}
	return fmt.Sprintf("state(%d)", int(s))
}

var ErrNotFont = errors.New("not a TrueType/OpenType font")

// Bundle is everything the renderer needs once loading succeeds.
type Bundle struct {
	Layout    *Layout
	Boat      *Model
	Map       *Model
	BoatScene int
	MapScene  int
	Font      string // absolute path, empty when the layout names none
}

type loadResult struct {
	bundle *Bundle
	err    error
}

// Server reads and checks asset files off the frame loop. The frame loop
// calls Poll each frame; Poll never blocks.
type Server struct {
	root    string
	log     *zap.Logger
	state   State
	bundle  *Bundle
	err     error
	results chan loadResult
	started bool
}

func NewServer(root string, log *zap.Logger) *Server {
	return &Server{
		root:    root,
		log:     log,
		state:   Loading,
		results: make(chan loadResult, 1),
	}
}

// Start reads the layout file under the asset root and then every file it
// names. Only the first Start or Load has any effect.
func (s *Server) Start(ctx context.Context, layoutFile string) {
	s.run(func() (*Bundle, error) {
		l, err := LoadLayout(s.Path(layoutFile))
		if err != nil {
			return nil, err
		}
		return s.load(ctx, l)
	})
}

func (s *Server) run(fn func() (*Bundle, error)) {
	if s.started {
		return
	}
	s.started = true
	go func() {
		b, err := fn()
		s.results <- loadResult{bundle: b, err: err}
	}()
}

// Poll picks up a finished load, if any, and returns the current state.
func (s *Server) Poll() State {
	select {
	case res := <-s.results:
		if res.err != nil {
			s.err = res.err
			s.advance(Failed)
			s.log.Error("asset load failed", zap.Error(res.err))
		} else {
			s.bundle = res.bundle
			s.advance(Loaded)
			s.log.Info("assets loaded",
				zap.Int("boat_meshes", res.bundle.Boat.Meshes),
				zap.Int("map_meshes", res.bundle.Map.Meshes))
		}
	default:
	}
	return s.state
}

func (s *Server) State() State {
	return s.state
}

// Bundle is nil until the state is Loaded.
func (s *Server) Bundle() *Bundle {
	return s.bundle
}

// Err is the load failure once the state is Failed.
func (s *Server) Err() error {
	return s.err
}

// Path resolves a layout-relative file to a path under the asset root.
func (s *Server) Path(name string) string {
	return filepath.Join(s.root, filepath.FromSlash(name))
}

func (s *Server) advance(next State) {
	if s.state != Loading {
		return
	}
	s.log.Debug("asset state", zap.Stringer("from", s.state), zap.Stringer("to", next))
	s.state = next
}

func (s *Server) load(ctx context.Context, layout *Layout) (*Bundle, error) {
	b := &Bundle{Layout: layout}
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		m, idx, err := s.loadModel(ctx, layout.Models.Boat)
		b.Boat, b.BoatScene = m, idx
		return err
	})
	g.Go(func() error {
		m, idx, err := s.loadModel(ctx, layout.Models.Map)
		b.Map, b.MapScene = m, idx
		return err
	})
	if layout.Font != "" {
		g.Go(func() error {
			path, err := s.checkFont(ctx, layout.Font)
			b.Font = path
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *Server) loadModel(ctx context.Context, ref ModelRef) (*Model, int, error) {
	data, path, err := s.read(ctx, ref.File)
	if err != nil {
		return nil, -1, err
	}
	m, err := ParseGLB(data)
	if err != nil {
		return nil, -1, fmt.Errorf("model %s: %w", path, err)
	}
	m.Path = path
	if strings.TrimSpace(ref.Scene) == "" {
		return m, m.DefaultScene, nil
	}
	idx, err := m.Scene(ref.Scene)
	if err != nil {
		return nil, -1, err
	}
	return m, idx, nil
}

func (s *Server) checkFont(ctx context.Context, name string) (string, error) {
	data, path, err := s.read(ctx, name)
	if err != nil {
		return "", err
	}
	if len(data) < 4 {
		return "", fmt.Errorf("font %s: %w", path, ErrNotFont)
	}
	switch {
	case bytes.Equal(data[:4], []byte{0x00, 0x01, 0x00, 0x00}):
	case string(data[:4]) == "OTTO", string(data[:4]) == "true":
	default:
		return "", fmt.Errorf("font %s: %w", path, ErrNotFont)
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return path, nil
	}
	return abs, nil
}

func (s *Server) read(ctx context.Context, name string) ([]byte, string, error) {
	if err := ctx.Err(); err != nil {
		return nil, "", err
	}
	path := s.Path(name)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, path, fmt.Errorf("read asset %s: %w", path, err)
	}
	return data, path, nil
}
