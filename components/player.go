package components

import (
	"github.com/yohamta/donburi"
)

type PlayerData struct {
	SpawnX, SpawnY float64 // feet position in pixels
	Spawns         int     // spawns so far, shown on the HUD
}

var Player = donburi.NewComponentType[PlayerData]()
