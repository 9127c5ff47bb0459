package components

import "github.com/yohamta/donburi"

type EnemyData struct {
	PatrolTimer int // ticks of patrol left, 0 when idle
}

func (e *EnemyData) Patrolling() bool {
	return e.PatrolTimer > 0
}

var Enemy = donburi.NewComponentType[EnemyData]()
