package leveldata

import (
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/lafriks/go-tiled"
)

// LoadLevel parses and validates a TMX file. It takes an fs.FS so callers can
// pass embed.FS (bundled levels) or os.DirFS (levels edited on disk).
func LoadLevel(fsys fs.FS, tmxPath string) (*Level, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	level := &Level{
		Name:   stem(tmxPath),
		Width:  levelMap.Width * levelMap.TileWidth,
		Height: levelMap.Height * levelMap.TileHeight,
	}

	for _, imgLayer := range levelMap.ImageLayers {
		if imgLayer.Image == nil || imgLayer.Image.Source == "" {
			continue
		}
		level.Background = stem(imgLayer.Image.Source)
		break
	}

	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case GroupPlayerSpawn:
			if len(og.Objects) > 0 {
				o := og.Objects[0]
				level.Spawn = Point{X: o.X, Y: o.Y}
				level.HasSpawn = true
			}
		case GroupRocks:
			for _, o := range og.Objects {
				level.Rocks = append(level.Rocks, Rect{X: o.X, Y: o.Y, W: o.Width, H: o.Height})
			}
		case GroupLogs:
			for _, o := range og.Objects {
				level.Logs = append(level.Logs, Rect{X: o.X, Y: o.Y, W: o.Width, H: o.Height})
			}
		case GroupCanteens:
			for _, o := range og.Objects {
				size := o.Properties.GetFloat("size")
				if size == 0 && o.Width > 0 {
					size = o.Width
				}
				level.Canteens = append(level.Canteens, CanteenSpawn{X: o.X, Y: o.Y, Size: size})
			}
		}
	}

	if err := Validate(level); err != nil {
		return nil, fmt.Errorf("level %s: %w", tmxPath, err)
	}

	return level, nil
}

// LoadAllLevels discovers all .tmx files in levelsDir within fsys and loads
// them in natural name order (level_2 before level_10).
func LoadAllLevels(fsys fs.FS, levelsDir string) ([]Level, error) {
	pattern := path.Join(levelsDir, "*.tmx")
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("no .tmx files found in %s", levelsDir)
	}

	SortNatural(matches)

	levels := make([]Level, 0, len(matches))
	for _, p := range matches {
		level, err := LoadLevel(fsys, p)
		if err != nil {
			return nil, err
		}
		levels = append(levels, *level)
	}
	return levels, nil
}

// SortNatural orders names so that embedded numbers compare by value when
// the rest of the name matches: shorter names first, then lexically.
func SortNatural(names []string) {
	sort.SliceStable(names, func(i, j int) bool {
		if len(names[i]) != len(names[j]) {
			return len(names[i]) < len(names[j])
		}
		return names[i] < names[j]
	})
}

func stem(p string) string {
	base := path.Base(p)
	return strings.TrimSuffix(base, path.Ext(base))
}
