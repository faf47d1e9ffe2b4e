package gallery

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"corridor-gallery/engine"
)

// MappingEntry is one record of the image mapping file written by the offline
// download step.
type MappingEntry struct {
	OriginalURL string `json:"originalUrl,omitempty"`
	URL         string `json:"url,omitempty"`
	LocalPath   string `json:"localPath,omitempty"`
	Title       string `json:"title"`
	Index       int    `json:"index"`
	Success     *bool  `json:"success,omitempty"`
}

// Ref is the image reference to load: the downloaded copy when there is one, the
// remote URL otherwise.
func (e MappingEntry) Ref() string {
	if e.LocalPath != "" {
		return e.LocalPath
	}
	return e.URL
}

// Placer positions frame index out of count.
type Placer interface {
	Place(index, count int) (engine.Placement, error)
}

// LoadMapping reads the mapping file at path.
func LoadMapping(path string) ([]MappingEntry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read mapping: %w", err)
	}
	var entries []MappingEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parse mapping %s: %w", path, err)
	}
	return entries, nil
}

// BuildFrames turns mapping entries into frames. Entries without an image reference
// are skipped; the remaining ones are laid out consecutively.
func BuildFrames(entries []MappingEntry, layout Placer) []Frame {
	type item struct {
		ref, title string
	}
	items := make([]item, 0, len(entries))
	for i, e := range entries {
		ref := e.Ref()
		if ref == "" {
			log.Printf("[Gallery] skipping mapping entry %d (%q): no image path", i, e.Title)
			continue
		}
		title := e.Title
		if title == "" {
			title = fmt.Sprintf("Item %d", i+1)
		}
		items = append(items, item{ref: ref, title: title})
	}

	frames := make([]Frame, 0, len(items))
	seen := make(map[string]int)
	for i, it := range items {
		p, err := layout.Place(i, len(items))
		if err != nil {
			log.Printf("[Gallery] layout failed for %q: %v", it.title, err)
			continue
		}
		id := FrameID(it.ref)
		if n := seen[id]; n > 0 {
			id = fmt.Sprintf("%s-%d", id, n)
		}
		seen[FrameID(it.ref)]++
		frames = append(frames, Frame{
			ID:       id,
			ImageRef: it.ref,
			Title:    it.title,
			Position: p.Position,
			Rotation: p.Rotation,
		})
	}
	return frames
}

// LoadFrames reads the mapping and lays it out. On error it returns an empty,
// usable dataset together with the error.
func LoadFrames(mappingPath string, layout Placer) ([]Frame, error) {
	entries, err := LoadMapping(mappingPath)
	if err != nil {
		return []Frame{}, err
	}
	frames := BuildFrames(entries, layout)
	log.Printf("[Gallery] loaded %d frames from %s", len(frames), mappingPath)
	return frames, nil
}
