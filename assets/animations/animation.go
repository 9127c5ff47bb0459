package animations

// Animation is a frame cursor. Each of Frames images is shown for Duration
// ticks. Looping animations wrap; one-shot animations stop on the last tick
// and report Done.
type Animation struct {
	Frames   int
	Duration int
	Loop     bool
	cursor   int
	done     bool
}

func (a *Animation) length() int {
	return a.Frames * a.Duration
}

func (a *Animation) Update() {
	n := a.length()
	if n <= 0 {
		a.done = !a.Loop
		return
	}
	if a.Loop {
		a.cursor = (a.cursor + 1) % n
		return
	}
	a.cursor = min(a.cursor+1, n-1)
	if a.cursor >= n-1 {
		a.done = true
	}
}

// Frame is the index of the image to draw.
func (a *Animation) Frame() int {
	if a.Duration <= 0 {
		return 0
	}
	return a.cursor / a.Duration
}

// Cursor is the tick position within the animation.
func (a *Animation) Cursor() int {
	return a.cursor
}

// Seek moves the cursor, clamped to the animation. Particles use it to start
// part-way through.
func (a *Animation) Seek(cursor int) {
	a.cursor = max(0, min(cursor, a.length()-1))
}

func (a *Animation) Done() bool {
	return a.done
}

func (a *Animation) Restart() {
	a.cursor = 0
	a.done = false
}

func NewAnimation(frames, duration int, loop bool) Animation {
	return Animation{
		Frames:   frames,
		Duration: duration,
		Loop:     loop,
	}
}
