package systems

import "math"

// Pointer tracks the press-and-hold gesture that drives dispersal.
// A press that lands on the interface is captured: it neither disperses
// the swarm nor rotates the camera until it is released.
type Pointer struct {
	held     bool
	captured bool
}

// Press starts a gesture. onUI reports whether it hit an interface element.
func (p *Pointer) Press(onUI bool) {
	if onUI {
		p.captured = true
		return
	}
	p.held = true
}

// Release ends the gesture.
func (p *Pointer) Release() {
	p.held = false
	p.captured = false
}

// Leave is the safety release for a pointer exiting the window mid-hold.
func (p *Pointer) Leave() {
	p.held = false
}

// Held reports the dispersal intent.
func (p *Pointer) Held() bool {
	return p.held
}

// Captured reports whether the interface owns the current gesture.
func (p *Pointer) Captured() bool {
	return p.captured
}

// Pulse is a scripted intent for headless runs: held for HoldSec, released for HoldSec.
type Pulse struct {
	HoldSec float64
}

// Held returns the scripted intent at elapsed seconds. A non-positive HoldSec never holds.
func (p Pulse) Held(elapsed float64) bool {
	if p.HoldSec <= 0 || elapsed < 0 {
		return false
	}
	return math.Mod(elapsed, 2*p.HoldSec) < p.HoldSec
}
