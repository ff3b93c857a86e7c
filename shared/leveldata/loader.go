package leveldata

import (
	"fmt"
	"io/fs"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/lafriks/go-tiled"
)

const (
	GroundLayer       = "ground"
	SurfaceProperty   = "surface"
	PlayerSpawnGroup  = "PlayerSpawn"
	FinishLineGroup   = "FinishLine"
	DefaultSurfaceTag = "stone"
)

// Load parses a TMX file. It takes an fs.FS so callers can pass embed.FS
// (game) or os.DirFS (simulator).
func Load(fsys fs.FS, tmxPath string) (*Level, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	level := &Level{
		Name:       strings.TrimSuffix(filepath.Base(tmxPath), ".tmx"),
		TileWidth:  levelMap.TileWidth,
		TileHeight: levelMap.TileHeight,
		MapWidth:   levelMap.Width * levelMap.TileWidth,
		MapHeight:  levelMap.Height * levelMap.TileHeight,
	}

	tileW := float64(levelMap.TileWidth)
	tileH := float64(levelMap.TileHeight)
	found := false
	for _, layer := range levelMap.Layers {
		if layer.Name != GroundLayer {
			continue
		}
		found = true
		for y := 0; y < levelMap.Height; y++ {
			for x := 0; x < levelMap.Width; x++ {
				tile := layer.Tiles[y*levelMap.Width+x]
				if tile.IsNil() {
					continue
				}

				surface := DefaultSurfaceTag
				if tilesetTile, err := tile.Tileset.GetTilesetTile(tile.ID); err == nil {
					if s := tilesetTile.Properties.GetString(SurfaceProperty); s != "" {
						surface = s
					}
				}

				level.Solids = append(level.Solids, SolidRect{
					X:       float64(x) * tileW,
					Y:       float64(y) * tileH,
					W:       tileW,
					H:       tileH,
					Surface: surface,
				})
			}
		}
		break
	}
	if !found {
		return nil, fmt.Errorf("load TMX %s: no %q tile layer", tmxPath, GroundLayer)
	}

	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case PlayerSpawnGroup:
			for _, o := range og.Objects {
				level.SpawnPoints = append(level.SpawnPoints, SpawnPoint{
					X:     o.X,
					Y:     o.Y,
					Index: o.Properties.GetInt("spawnIndex"),
				})
			}
		case FinishLineGroup:
			for _, o := range og.Objects {
				level.FinishLines = append(level.FinishLines, Rect{
					X: o.X,
					Y: o.Y,
					W: o.Width,
					H: o.Height,
				})
			}
		}
	}

	sort.SliceStable(level.SpawnPoints, func(i, j int) bool {
		return level.SpawnPoints[i].Index < level.SpawnPoints[j].Index
	})

	return level, nil
}

// LoadAllLevels discovers all .tmx files in levelsDir within fsys, loads
// each, and returns a map keyed by stem name plus a sorted list of names.
func LoadAllLevels(fsys fs.FS, levelsDir string) (map[string]*Level, []string, error) {
	pattern := path.Join(levelsDir, "*.tmx")
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, nil, fmt.Errorf("no .tmx files found in %s", levelsDir)
	}

	levels := make(map[string]*Level, len(matches))
	names := make([]string, 0, len(matches))

	for _, match := range matches {
		level, err := Load(fsys, match)
		if err != nil {
			return nil, nil, fmt.Errorf("load %s: %w", match, err)
		}
		levels[level.Name] = level
		names = append(names, level.Name)
	}

	sort.Strings(names)
	return levels, names, nil
}
