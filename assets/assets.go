package assets

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/automoto/tileplat/shared/leveldata"
)

var (
	//go:embed all:levels
	assetFS embed.FS
)

// LevelLoader reads levels from a file system, the embedded one by default.
// JSON levels load as-is; Tiled maps are converted on the way in.
type LevelLoader struct {
	fsys fs.FS
	dir  string
}

func NewLevelLoader() *LevelLoader {
	return &LevelLoader{fsys: assetFS, dir: "levels"}
}

// NewDirLoader loads levels from a directory on disk.
func NewDirLoader(fsys fs.FS) *LevelLoader {
	return &LevelLoader{fsys: fsys, dir: "."}
}

// Names lists the loadable levels by file name without extension, sorted.
func (l *LevelLoader) Names() ([]string, error) {
	entries, err := fs.ReadDir(l.fsys, l.dir)
	if err != nil {
		return nil, fmt.Errorf("list levels: %w", err)
	}
	var names []string
	for _, entry := range entries {
		if entry.IsDir() || !isLevelFile(entry.Name()) {
			continue
		}
		names = append(names, strings.TrimSuffix(entry.Name(), path.Ext(entry.Name())))
	}
	sort.Strings(names)
	return names, nil
}

// Load reads the level called name, preferring JSON over TMX.
func (l *LevelLoader) Load(name string) (*leveldata.Level, error) {
	base := path.Join(l.dir, name)
	if _, err := fs.Stat(l.fsys, base+".json"); err == nil {
		return leveldata.Load(l.fsys, base+".json")
	}
	if _, err := fs.Stat(l.fsys, base+".tmx"); err == nil {
		return leveldata.ImportTMX(l.fsys, base+".tmx")
	}
	return nil, fmt.Errorf("level %q: %w", name, fs.ErrNotExist)
}

func (l *LevelLoader) MustLoadLevel(name string) *leveldata.Level {
	level, err := l.Load(name)
	if err != nil {
		panic(err)
	}
	return level
}

func (l *LevelLoader) MustLoadLevels() []*leveldata.Level {
	names, err := l.Names()
	if err != nil {
		panic(fmt.Sprintf("Failed to read levels directory: %v", err))
	}
	if len(names) == 0 {
		panic("No level files found in levels directory")
	}

	levels := make([]*leveldata.Level, 0, len(names))
	for _, name := range names {
		levels = append(levels, l.MustLoadLevel(name))
	}
	return levels
}

func isLevelFile(name string) bool {
	ext := strings.ToLower(path.Ext(name))
	return ext == ".json" || ext == ".tmx"
}
