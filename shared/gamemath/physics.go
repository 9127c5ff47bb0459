package gamemath

import "github.com/yohamta/donburi/features/math"

// Vec2 is the position/velocity type shared by every simulation package.
type Vec2 = math.Vec2

// ApplyFriction reduces speed toward zero by friction amount.
func ApplyFriction(speedX, friction float64) float64 {
	if speedX > friction {
		return speedX - friction
	}
	if speedX < -friction {
		return speedX + friction
	}
	return 0
}

// ApplyGravity accelerates a vertical speed and caps it at terminal velocity.
func ApplyGravity(speedY, gravity, terminal float64) float64 {
	speedY += gravity
	if speedY > terminal {
		return terminal
	}
	return speedY
}

// ClampFall caps downward speed, leaving upward speed untouched.
func ClampFall(speedY, max float64) float64 {
	if speedY > max {
		return max
	}
	return speedY
}

// Direction returns -1 when flipped left, 1 otherwise.
func Direction(flip bool) float64 {
	if flip {
		return -1
	}
	return 1
}
