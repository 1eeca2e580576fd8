package assets

import (
	"bytes"
	"embed"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path"
	"strings"
	"sync"

	"github.com/automoto/canteenrun/shared/leveldata"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

var (
	//go:embed levels/*.tmx
	levelFS embed.FS

	//go:embed images/*.png
	imageFS embed.FS
)

// Sprite ids. Level backgrounds use the image file stem (e.g. "level_1").
const (
	SpritePlayer  = "player"
	SpriteRock    = "rock"
	SpriteLog     = "log"
	SpriteCanteen = "canteen"
)

const levelsDir = "levels"

// Sprites maps a sprite id to its decoded image.
type Sprites map[string]*ebiten.Image

// Get returns the image for id, or nil when it is not in the table.
func (s Sprites) Get(id string) *ebiten.Image {
	return s[id]
}

var (
	spritesOnce sync.Once
	sprites     Sprites
)

// LoadSprites decodes every embedded image once and returns the shared table.
func LoadSprites() Sprites {
	spritesOnce.Do(func() {
		sprites = mustDecodeImages(imageFS, "images")
	})
	return sprites
}

func mustDecodeImages(fsys fs.FS, dir string) Sprites {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		panic(fmt.Sprintf("Failed to read images directory: %v", err))
	}

	table := make(Sprites, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || path.Ext(entry.Name()) != ".png" {
			continue
		}
		imgBytes, err := fs.ReadFile(fsys, path.Join(dir, entry.Name()))
		if err != nil {
			panic(fmt.Sprintf("Failed to read image file %s: %v", entry.Name(), err))
		}
		img, _, err := ebitenutil.NewImageFromReader(bytes.NewReader(imgBytes))
		if err != nil {
			panic(fmt.Sprintf("Failed to create image from bytes for %s: %v", entry.Name(), err))
		}
		table[strings.TrimSuffix(entry.Name(), ".png")] = img
	}
	return table
}

// MustLoadLevels loads the bundled levels and panics if any is malformed.
func MustLoadLevels() []leveldata.Level {
	levels, err := leveldata.LoadAllLevels(levelFS, levelsDir)
	if err != nil {
		panic(fmt.Sprintf("Failed to load levels: %v", err))
	}
	return levels
}

// LoadLevelsFromDir loads levels from a directory on disk.
func LoadLevelsFromDir(dir string) ([]leveldata.Level, error) {
	return leveldata.LoadAllLevels(os.DirFS(dir), ".")
}

// LoadLevels returns levels from dir when set, falling back to the bundled set.
func LoadLevels(dir string) []leveldata.Level {
	if dir == "" {
		return MustLoadLevels()
	}
	levels, err := LoadLevelsFromDir(dir)
	if err != nil {
		log.Printf("Warning: Could not load levels from %s, using bundled levels: %v", dir, err)
		return MustLoadLevels()
	}
	return levels
}
