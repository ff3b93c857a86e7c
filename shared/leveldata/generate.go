package leveldata

import (
	"math"

	"github.com/aquilax/go-perlin"
)

// Practice level layout, in tiles.
const (
	practiceCols   = 120
	practiceRows   = 30
	practiceBase   = 22 // ground row on flat stretches
	practiceSwing  = 4  // terrain height variation
	practiceFlat   = 6  // flat tiles around spawn and finish
	pillarSpacing  = 18
	pillarHeight   = 2
	tunnelStart    = 54
	tunnelLength   = 8
	tunnelHeadroom = 1
)

// Generate builds the practice level: perlin-noise terrain with stone and
// glass wall pillars for wall jumps, and a low tunnel that can only be
// passed sliding. The same seed always gives the same level.
func Generate(seed int64, tileSize int) *Level {
	if tileSize <= 0 {
		tileSize = 16
	}
	p := perlin.NewPerlin(2, 2, 3, seed)

	ground := make([]int, practiceCols)
	for x := range ground {
		n := p.Noise1D(float64(x) / 12)
		ground[x] = practiceBase - int(math.Round(n*2*practiceSwing))
		ground[x] = max(practiceBase-practiceSwing, min(practiceBase+practiceSwing, ground[x]))
	}
	flatten := func(from, to, row int) {
		for x := max(from, 0); x < min(to, practiceCols); x++ {
			ground[x] = row
		}
	}
	flatten(0, practiceFlat, practiceBase)
	flatten(practiceCols-practiceFlat, practiceCols, practiceBase)
	flatten(tunnelStart-2, tunnelStart+tunnelLength+2, practiceBase)

	ts := float64(tileSize)
	level := &Level{
		Name:       "practice",
		TileWidth:  tileSize,
		TileHeight: tileSize,
		MapWidth:   practiceCols * tileSize,
		MapHeight:  practiceRows * tileSize,
	}
	add := func(col, row int, surface string) {
		level.Solids = append(level.Solids, SolidRect{
			X:       float64(col) * ts,
			Y:       float64(row) * ts,
			W:       ts,
			H:       ts,
			Surface: surface,
		})
	}

	for x, top := range ground {
		for y := top; y < practiceRows; y++ {
			add(x, y, DefaultSurfaceTag)
		}
	}

	// side walls keep the character inside the map
	for y := 0; y < practiceBase; y++ {
		add(0, y, DefaultSurfaceTag)
		add(practiceCols-1, y, DefaultSurfaceTag)
	}

	pillar := 0
	for x := pillarSpacing; x < practiceCols-practiceFlat; x += pillarSpacing {
		if x >= tunnelStart-2 && x < tunnelStart+tunnelLength+2 {
			continue
		}
		surface := DefaultSurfaceTag
		if pillar%2 == 1 {
			surface = "glass"
		}
		for y := ground[x] - pillarHeight; y < ground[x]; y++ {
			add(x, y, surface)
		}
		pillar++
	}

	roof := practiceBase - tunnelHeadroom - 1
	for x := tunnelStart; x < tunnelStart+tunnelLength; x++ {
		for y := roof - 2; y <= roof; y++ {
			add(x, y, DefaultSurfaceTag)
		}
	}

	level.SpawnPoints = []SpawnPoint{{
		X: 3 * ts,
		Y: float64(practiceBase) * ts,
	}}
	level.FinishLines = []Rect{{
		X: float64(practiceCols-4) * ts,
		Y: float64(practiceBase-4) * ts,
		W: 2 * ts,
		H: 4 * ts,
	}}
	return level
}

// TunnelClearance is the practice tunnel's headroom in pixels.
func TunnelClearance(tileSize int) float64 {
	return float64(tunnelHeadroom * tileSize)
}
