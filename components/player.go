package components

import (
	"github.com/automoto/tileplat/config"
	"github.com/yohamta/donburi"
)

type PlayerData struct {
	AirTime   int
	Jumps     int
	WallSlide bool
	WallSide  int // -1 wall on the left, 1 on the right, 0 none
	DashTimer int
	Dead      bool
	Moving    bool // horizontal input held this tick
}

// IsDashing reports the active part of a dash. The same window suppresses
// the sprite, lets the player kill enemies and ignores projectiles.
func (p *PlayerData) IsDashing() bool {
	return p.DashTimer > config.Player.DashActiveThreshold
}

var Player = donburi.NewComponentType[PlayerData]()
