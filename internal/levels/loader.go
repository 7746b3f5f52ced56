// Package levels loads level rosters from level files.
// This package depends on world but world does not depend on levels.
package levels

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/vovakirdan/tui-cowpult/internal/levels/formats"
	"github.com/vovakirdan/tui-cowpult/internal/physics"
	"github.com/vovakirdan/tui-cowpult/internal/world"
)

//go:embed defaults/*.yaml
var defaultLevels embed.FS

// Loader loads a level roster from a file, a directory, or the embedded
// default levels when Root is empty.
type Loader struct {
	Root     string
	Defaults physics.Params // Physics used where a level omits its own
}

// NewLoader creates a new level loader.
func NewLoader(root string, defaults physics.Params) *Loader {
	return &Loader{Root: root, Defaults: defaults}
}

// Load returns the full roster sorted by level number.
// Any unreadable or malformed file fails the whole load.
func (l *Loader) Load() ([]world.Level, error) {
	var (
		levels []world.Level
		err    error
	)

	if l.Root == "" {
		levels, err = l.loadFS(defaultLevels, "defaults")
	} else {
		levels, err = l.loadPath(l.Root)
	}
	if err != nil {
		return nil, err
	}

	sort.SliceStable(levels, func(i, j int) bool {
		return levels[i].Number < levels[j].Number
	})
	return levels, nil
}

// LoadFile loads every level in a single file.
func (l *Loader) LoadFile(path string) ([]world.Level, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading file %s: %w", path, err)
	}
	return l.parse(path, data)
}

// LoadByNumber loads the roster and returns the level with the given number.
func (l *Loader) LoadByNumber(number int) (world.Level, error) {
	levels, err := l.Load()
	if err != nil {
		return world.Level{}, err
	}

	for _, lvl := range levels {
		if lvl.Number == number {
			return lvl, nil
		}
	}

	return world.Level{}, fmt.Errorf("level not found: %d", number)
}

func (l *Loader) loadPath(root string) ([]world.Level, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("reading levels %s: %w", root, err)
	}
	if !info.IsDir() {
		return l.LoadFile(root)
	}
	return l.loadFS(os.DirFS(root), ".")
}

func (l *Loader) loadFS(fsys fs.FS, root string) ([]world.Level, error) {
	var levels []world.Level

	err := fs.WalkDir(fsys, root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !isSupportedExtension(strings.ToLower(filepath.Ext(path))) {
			return nil
		}

		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return fmt.Errorf("reading file %s: %w", path, err)
		}
		parsed, err := l.parse(path, data)
		if err != nil {
			return err
		}
		levels = append(levels, parsed...)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking directory %s: %w", root, err)
	}

	return levels, nil
}

func (l *Loader) parse(path string, data []byte) ([]world.Level, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if !isSupportedExtension(ext) {
		return nil, fmt.Errorf("unsupported extension: %s", ext)
	}

	levels, err := formats.ParseYAML(data, l.Defaults)
	if err != nil {
		return nil, fmt.Errorf("parsing file %s: %w", path, err)
	}
	return levels, nil
}

// isSupportedExtension checks if extension is supported.
func isSupportedExtension(ext string) bool {
	for _, supported := range formats.FormatExtensions() {
		if ext == supported {
			return true
		}
	}
	return false
}

// Resolve picks the level location to load.
// Search order: customPath -> ~/.cowpult/levels -> ./levels -> embedded ("").
func Resolve(customPath string) string {
	if customPath != "" {
		return customPath
	}

	if home, err := os.UserHomeDir(); err == nil {
		userDir := filepath.Join(home, ".cowpult", "levels")
		if info, err := os.Stat(userDir); err == nil && info.IsDir() {
			return userDir
		}
	}

	if info, err := os.Stat("levels"); err == nil && info.IsDir() {
		return "levels"
	}

	return ""
}
