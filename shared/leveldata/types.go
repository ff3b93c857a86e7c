// Package leveldata loads platformer levels from TMX files and generates
// practice levels. It has no dependencies on ebitengine, donburi, or resolv,
// pure data only. Coordinates are pixels, y down.
package leveldata

// Level holds everything the game and the simulator need from a level.
type Level struct {
	Name        string
	Solids      []SolidRect
	SpawnPoints []SpawnPoint
	FinishLines []Rect
	TileWidth   int
	TileHeight  int
	MapWidth    int
	MapHeight   int
}

// SolidRect is one solid tile. Surface comes from the tileset "surface"
// property, e.g. "stone" or "glass".
type SolidRect struct {
	X, Y, W, H float64
	Surface    string
}

// SpawnPoint is where a character's feet are placed: bottom centre.
type SpawnPoint struct {
	X, Y  float64
	Index int
}

type Rect struct {
	X, Y, W, H float64
}

// Spawn returns the first spawn point, or the top-left tile when the level
// has none.
func (l *Level) Spawn() SpawnPoint {
	if len(l.SpawnPoints) > 0 {
		return l.SpawnPoints[0]
	}
	return SpawnPoint{X: float64(l.TileWidth) / 2, Y: float64(l.TileHeight)}
}
