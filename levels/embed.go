package levels

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed *.yaml
var LevelsFS embed.FS

// Level is a wall grid plus the objects placed in it. Grid and entity
// coordinates are in tiles.
type Level struct {
	Name     string   `yaml:"name"`
	Seed     uint64   `yaml:"seed"`
	Rows     []string `yaml:"rows"`
	Entities []Entity `yaml:"entities"`
}

type Entity struct {
	Type  string  `yaml:"type"`
	Kind  string  `yaml:"kind,omitempty"`
	X     float64 `yaml:"x"`
	Y     float64 `yaml:"y"`
	Value *int    `yaml:"value,omitempty"`
	VelX  float64 `yaml:"vel_x,omitempty"`
	VelY  float64 `yaml:"vel_y,omitempty"`
}

// ValueOr returns the entity value, or def when the level leaves it out.
func (e Entity) ValueOr(def int) int {
	if e.Value == nil {
		return def
	}
	return *e.Value
}

// Walls returns the grid cells holding a wall.
func (l *Level) Walls() [][2]int {
	var out [][2]int
	for y, row := range l.Rows {
		for x, c := range row {
			if c == '#' {
				out = append(out, [2]int{x, y})
			}
		}
	}
	return out
}

func (l *Level) Size() (w, h int) {
	for _, row := range l.Rows {
		if len(row) > w {
			w = len(row)
		}
	}
	return w, len(l.Rows)
}

// Names lists the embedded levels in play order.
func Names() []string {
	entries, err := fs.Glob(LevelsFS, "*.yaml")
	if err != nil {
		return nil
	}
	sort.Strings(entries)
	return entries
}

// LoadLevel reads a level, preferring levels/<name> on disk.
func LoadLevel(name string) (*Level, error) {
	clean := filepath.ToSlash(name)
	clean = strings.TrimPrefix(clean, "levels/")

	data, err := os.ReadFile(filepath.Join("levels", filepath.FromSlash(clean)))
	if err != nil {
		data, err = fs.ReadFile(LevelsFS, clean)
	}
	if err != nil {
		return nil, fmt.Errorf("levels: read %s: %w", clean, err)
	}
	return Parse(data)
}

func Parse(data []byte) (*Level, error) {
	var lvl Level
	if err := yaml.Unmarshal(data, &lvl); err != nil {
		return nil, fmt.Errorf("levels: unmarshal: %w", err)
	}
	if err := lvl.validate(); err != nil {
		return nil, err
	}
	return &lvl, nil
}

func (l *Level) validate() error {
	if len(l.Rows) == 0 {
		return fmt.Errorf("levels: %q has no rows", l.Name)
	}
	players := 0
	for i, e := range l.Entities {
		switch e.Type {
		case "player":
			players++
		case "block", "receiver", "teleporter", "lift":
		default:
			return fmt.Errorf("levels: %q entity %d: unknown type %q", l.Name, i, e.Type)
		}
	}
	if players != 1 {
		return fmt.Errorf("levels: %q needs exactly one player, has %d", l.Name, players)
	}
	return nil
}
