// Package leveldata provides TMX level parsing and validation.
// It has no dependencies on ebitengine, donburi or resolv.
package leveldata

// Object group names read from a level TMX file.
const (
	GroupPlayerSpawn = "PlayerSpawn"
	GroupRocks       = "Rocks"
	GroupLogs        = "Logs"
	GroupCanteens    = "Canteens"
)

// Level is one authored, immutable level.
type Level struct {
	Name       string // File stem, e.g. "level_1"
	Background string // Sprite id of the background image ("" = none)
	Width      int    // Pixels
	Height     int    // Pixels

	Spawn    Point
	HasSpawn bool

	// Authored order is preserved; collision resolution iterates in this order.
	Rocks    []Rect
	Logs     []Rect
	Canteens []CanteenSpawn
}

// Rect is an axis-aligned rectangle with its origin at the top-left corner.
type Rect struct {
	X, Y, W, H float64
}

// Point is a position in level pixels.
type Point struct {
	X, Y float64
}

// CanteenSpawn is a collectible position. X, Y is the centre of the item.
type CanteenSpawn struct {
	X, Y float64
	Size float64 // Draw size, 0 = default
}
