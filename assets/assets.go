package assets

import (
	_ "embed"
	"log"
	"sync"

	"github.com/automoto/wallkick/assets/levels"
	"github.com/automoto/wallkick/shared/leveldata"
)

//go:embed tuning/default.yaml
var DefaultTuningYAML []byte

var (
	levelsOnce sync.Once
	loaded     []*leveldata.Level
)

// MustLoadLevels returns the authored levels in name order followed by the
// generated practice level. Embedded levels are part of the binary, so a
// broken one is a build problem and panics.
func MustLoadLevels() []*leveldata.Level {
	levelsOnce.Do(func() {
		all, err := levels.All()
		if err != nil {
			panic("failed to load embedded levels: " + err.Error())
		}
		loaded = all
		log.Printf("Loaded %d levels", len(loaded))
	})
	return loaded
}
