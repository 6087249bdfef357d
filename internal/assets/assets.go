// Package assets resolves logical resource names to loaded sprite frames
// and sound effect descriptors. Games look resources up by name and never
// touch files; the manifest is the single place that binds names to
// sources.
package assets

import (
	"embed"
	"fmt"
	"strings"
	"sync"
)

//go:embed sprites/*.txt
var spriteFS embed.FS

// Type distinguishes the two resource categories of the manifest.
type Type int

const (
	Image Type = iota
	Audio
)

// Spec is one manifest entry: a logical name bound to a source.
// Image sources are embedded sprite-sheet files; audio sources name a
// synthesizer patch understood by the audio package.
type Spec struct {
	Type Type
	Src  string
}

// Resource is a loaded, ready-to-use asset.
type Resource struct {
	Name string
	Type Type
	Src  string

	// Frames holds the parsed sprite-sheet frames for image resources.
	// Every frame has the same dimensions.
	Frames [][]string

	// W and H are the frame dimensions in cells (images only).
	W, H int
}

// Frame returns the frame for a running animation index, wrapping around
// the sheet. Safe for single-frame resources.
func (r *Resource) Frame(index int) []string {
	if len(r.Frames) == 0 {
		return nil
	}
	if index < 0 {
		index = -index
	}
	return r.Frames[index%len(r.Frames)]
}

// DefaultManifest is the resource set the game ships with.
func DefaultManifest() map[string]Spec {
	return map[string]Spec{
		"bird":    {Type: Image, Src: "sprites/bird.txt"},
		"skyline": {Type: Image, Src: "sprites/skyline.txt"},
		"wing":    {Type: Audio, Src: "synth:wing"},
		"point":   {Type: Audio, Src: "synth:point"},
		"hit":     {Type: Audio, Src: "synth:hit"},
		"swoosh":  {Type: Audio, Src: "synth:swoosh"},
	}
}

// Store holds loaded resources keyed by logical name.
type Store struct {
	mu        sync.RWMutex
	resources map[string]*Resource
}

// NewStore creates an empty resource store.
func NewStore() *Store {
	return &Store{resources: make(map[string]*Resource)}
}

// Load resolves every manifest entry. It is a one-shot operation: any
// unreadable or malformed source fails the whole load, and the caller is
// expected to abort startup.
func (s *Store) Load(manifest map[string]Spec) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for name, spec := range manifest {
		res := &Resource{Name: name, Type: spec.Type, Src: spec.Src}

		if spec.Type == Image {
			frames, w, h, err := loadSprite(spec.Src)
			if err != nil {
				return fmt.Errorf("assets: resource %q: %w", name, err)
			}
			res.Frames = frames
			res.W = w
			res.H = h
		}

		s.resources[name] = res
	}
	return nil
}

// Get returns a loaded resource by name.
func (s *Store) Get(name string) (*Resource, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	res, ok := s.resources[name]
	if !ok {
		return nil, fmt.Errorf("assets: unknown resource %q", name)
	}
	return res, nil
}

// MustGet returns a loaded resource or panics. For use after a successful
// Load with names that are part of the default manifest.
func (s *Store) MustGet(name string) *Resource {
	res, err := s.Get(name)
	if err != nil {
		panic(err)
	}
	return res
}

// loadSprite reads an embedded sprite-sheet file. Frames are separated by
// lines containing only "--"; all frames are padded to a common width so
// drawing code can treat them as rectangles.
func loadSprite(src string) ([][]string, int, int, error) {
	data, err := spriteFS.ReadFile(src)
	if err != nil {
		return nil, 0, 0, err
	}
	frames, err := ParseSheet(string(data))
	if err != nil {
		return nil, 0, 0, err
	}
	return frames, len([]rune(frames[0][0])), len(frames[0]), nil
}

// ParseSheet parses sprite-sheet text into frames.
func ParseSheet(text string) ([][]string, error) {
	var frames [][]string
	var frame []string
	width, height := 0, 0

	flush := func() {
		if len(frame) > 0 {
			frames = append(frames, frame)
			frame = nil
		}
	}

	for _, line := range strings.Split(strings.TrimRight(text, "\n"), "\n") {
		if strings.TrimSpace(line) == "--" {
			flush()
			continue
		}
		frame = append(frame, line)
		if n := len([]rune(line)); n > width {
			width = n
		}
	}
	flush()

	if len(frames) == 0 {
		return nil, fmt.Errorf("sprite sheet has no frames")
	}

	// All frames must be the same size; pad lines to the sheet width
	height = len(frames[0])
	for i, f := range frames {
		if len(f) != height {
			return nil, fmt.Errorf("frame %d has %d rows, expected %d", i, len(f), height)
		}
		for j, line := range f {
			if pad := width - len([]rune(line)); pad > 0 {
				frames[i][j] = line + strings.Repeat(" ", pad)
			}
		}
	}
	return frames, nil
}
