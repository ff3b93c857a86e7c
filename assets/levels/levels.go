// Package levels embeds the authored TMX levels. It has no engine
// dependencies so the headless simulator can load the same levels as the
// game.
package levels

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"

	"github.com/automoto/wallkick/shared/leveldata"
)

//go:embed *.tmx
var files embed.FS

// Practice is the name of the generated level.
const Practice = "practice"

// PracticeSeed fixes the layout of the generated practice level.
const PracticeSeed = 20240611

const tileSize = 16

// FS exposes the embedded TMX files.
func FS() fs.FS {
	return files
}

// All returns the authored levels in name order followed by the practice
// level.
func All() ([]*leveldata.Level, error) {
	byName, names, err := leveldata.LoadAllLevels(files, ".")
	if err != nil {
		return nil, err
	}
	out := make([]*leveldata.Level, 0, len(names)+1)
	for _, name := range names {
		out = append(out, byName[name])
	}
	return append(out, leveldata.Generate(PracticeSeed, tileSize)), nil
}

// ByName loads one embedded level, or generates the practice level.
func ByName(name string) (*leveldata.Level, error) {
	if name == Practice {
		return leveldata.Generate(PracticeSeed, tileSize), nil
	}
	path := strings.TrimSuffix(name, ".tmx") + ".tmx"
	if _, err := fs.Stat(files, path); err != nil {
		return nil, fmt.Errorf("unknown level %q", name)
	}
	return leveldata.Load(files, path)
}
