package assets

import (
	"encoding/binary"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
	json "github.com/goccy/go-json"
)

var (
	ErrNotGLB        = errors.New("not a binary glTF file")
	ErrSceneNotFound = errors.New("scene not found")
)

const (
	glbMagic     = 0x46546C67 // "glTF"
	glbChunkJSON = 0x4E4F534A // "JSON"
	glbHeaderLen = 12
)

// Model is what the asset server learns about a binary glTF file before the
// renderer uploads it.
type Model struct {
	Path         string
	Scenes       []string
	DefaultScene int
	Meshes       int
	Nodes        int
}

type gltfDoc struct {
	Scene  *int `json:"scene"`
	Scenes []struct {
		Name string `json:"name"`
	} `json:"scenes"`
	Meshes []json.RawMessage `json:"meshes"`
	Nodes  []json.RawMessage `json:"nodes"`
}

// ParseGLB reads the header and JSON chunk of a GLB container.
func ParseGLB(data []byte) (*Model, error) {
	if len(data) < glbHeaderLen+8 {
		return nil, fmt.Errorf("%w: %d bytes", ErrNotGLB, len(data))
	}
	if binary.LittleEndian.Uint32(data[0:4]) != glbMagic {
		return nil, fmt.Errorf("%w: bad magic", ErrNotGLB)
	}
	if v := binary.LittleEndian.Uint32(data[4:8]); v != 2 {
		return nil, fmt.Errorf("unsupported glTF container version %d", v)
	}
	total := binary.LittleEndian.Uint32(data[8:12])
	if int(total) > len(data) {
		return nil, fmt.Errorf("%w: truncated, header says %d bytes, have %d", ErrNotGLB, total, len(data))
	}
	chunkLen := binary.LittleEndian.Uint32(data[12:16])
	chunkType := binary.LittleEndian.Uint32(data[16:20])
	if chunkType != glbChunkJSON {
		return nil, fmt.Errorf("%w: first chunk is not JSON", ErrNotGLB)
	}
	end := glbHeaderLen + 8 + int(chunkLen)
	if end > len(data) {
		return nil, fmt.Errorf("%w: JSON chunk overruns file", ErrNotGLB)
	}

	var doc gltfDoc
	if err := json.Unmarshal(data[glbHeaderLen+8:end], &doc); err != nil {
		return nil, fmt.Errorf("parse glTF JSON: %w", err)
	}
	m := &Model{Meshes: len(doc.Meshes), Nodes: len(doc.Nodes)}
	for _, s := range doc.Scenes {
		m.Scenes = append(m.Scenes, s.Name)
	}
	if doc.Scene != nil {
		if idx := *doc.Scene; idx < 0 || idx >= len(doc.Scenes) {
			return nil, fmt.Errorf("%w: default scene %d out of range (%d scenes)", ErrNotGLB, idx, len(doc.Scenes))
		}
		m.DefaultScene = *doc.Scene
	}
	return m, nil
}

// Scene returns the index of the named scene. An unknown name yields
// ErrSceneNotFound, naming the closest scene when one is near enough.
func (m *Model) Scene(name string) (int, error) {
	for i, s := range m.Scenes {
		if s == name {
			return i, nil
		}
	}
	if hint := closest(name, m.Scenes); hint != "" {
		return -1, fmt.Errorf("%w: %q in %s (did you mean %q?)", ErrSceneNotFound, name, m.Path, hint)
	}
	return -1, fmt.Errorf("%w: %q in %s", ErrSceneNotFound, name, m.Path)
}

// closest picks the candidate with the smallest edit distance to name,
// provided it is within a limit that grows with the candidate's length.
func closest(name string, candidates []string) string {
	needle := strings.ToLower(strings.TrimSpace(name))
	if needle == "" {
		return ""
	}
	type hit struct {
		name string
		dist int
	}
	var hits []hit
	for _, c := range candidates {
		d := levenshtein.ComputeDistance(needle, strings.ToLower(c))
		if d > distanceLimit(len(c)) {
			continue
		}
		hits = append(hits, hit{name: c, dist: d})
	}
	if len(hits) == 0 {
		return ""
	}
	sort.SliceStable(hits, func(i, j int) bool {
		if hits[i].dist == hits[j].dist {
			return hits[i].name < hits[j].name
		}
		return hits[i].dist < hits[j].dist
	})
	return hits[0].name
}

func distanceLimit(length int) int {
	switch {
	case length <= 4:
		return 1
	case length <= 8:
		return 2
	default:
		return 3
	}
}
