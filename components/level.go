package components

import (
	"github.com/automoto/wallkick/shared/leveldata"
	"github.com/yohamta/donburi"
)

type LevelData struct {
	CurrentLevel *leveldata.Level
	LevelIndex   int
	Levels       []*leveldata.Level // authored levels in order, practice level last
}

// IsLast reports whether the current level is the final one.
func (l *LevelData) IsLast() bool {
	return l.LevelIndex >= len(l.Levels)-1
}

var Level = donburi.NewComponentType[LevelData]()
