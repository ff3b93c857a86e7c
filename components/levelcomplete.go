package components

import "github.com/yohamta/donburi"

// LevelCompleteData stores the state of the win sign
type LevelCompleteData struct {
	IsComplete bool
	IsLast     bool // no next level; continuing returns to the menu
	Continue   bool // the player dismissed the sign
}

var LevelComplete = donburi.NewComponentType[LevelCompleteData]()
