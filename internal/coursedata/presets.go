package coursedata

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Preset describes a saved course document, the direct analogue of the
// teacher's Location listing (internal/data/locations.go in the teacher).
type Preset struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	File string `json:"file"`
}

// PresetList is a collection of course presets discovered on disk.
type PresetList struct {
	UpdatedAt string   `json:"updated_at"`
	Courses   []Preset `json:"courses"`
}

// LoadPresets loads a preset index from a JSON file.
func LoadPresets(path string) (*PresetList, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read course index: %w", err)
	}
	var list PresetList
	if err := json.Unmarshal(raw, &list); err != nil {
		return nil, fmt.Errorf("failed to parse course index: %w", err)
	}
	return &list, nil
}

// DiscoverPresets scans dir for *.json course documents and builds a preset
// list by filename, used when no curated index file exists yet.
func DiscoverPresets(dir string) (*PresetList, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read course directory: %w", err)
	}
	list := &PresetList{}
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != ".json" {
			continue
		}
		id := e.Name()[:len(e.Name())-len(filepath.Ext(e.Name()))]
		list.Courses = append(list.Courses, Preset{
			ID:   id,
			Name: id,
			File: filepath.Join(dir, e.Name()),
		})
	}
	return list, nil
}

// GetDefaultCourseDir returns the default directory for course presets.
func GetDefaultCourseDir() string {
	if dir := os.Getenv("COURSE_DIR"); dir != "" {
		return dir
	}
	return "./examples/courses"
}
