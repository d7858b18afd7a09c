package sim

// Trick names shown to the player.
const (
	TrickFlip = "360 FLIP"
	TrickGrab = "SURF GRAB"
)

// trickState tracks the trick in progress, if any.
type trickState struct {
	active bool
	name   string
	scored bool
}

// handleEdges applies the jump and trick-start key presses of this tick.
func (e *Engine) handleEdges(in inputState) {
	p := &e.player

	if in.Pressed(KeyJump) && !p.Jumping && !p.Grinding {
		p.VY = e.params.JumpForce
		p.Jumping = true
	}

	if !p.Jumping || p.Grinding || e.trick.active {
		return
	}
	switch {
	case in.Pressed(KeyTrickA):
		e.startTrick(TrickFlip, e.params.FlipDuration)
	case in.Pressed(KeyTrickB):
		e.startTrick(TrickGrab, e.params.GrabDuration)
	}
}

func (e *Engine) startTrick(name string, duration int64) {
	e.trick = trickState{active: true, name: name}
	e.player.State = StateTrick
	e.player.TrickStart = e.now
	e.player.TrickDuration = duration
	e.player.TrickFrame = 0
}

// trickElapsed returns how long the current trick has been running.
func (e *Engine) trickElapsed() int64 {
	elapsed := e.now - e.player.TrickStart
	if elapsed < 0 {
		return 0
	}
	return elapsed
}

// scoreTrick awards the trick's points unless they were already awarded.
func (e *Engine) scoreTrick() {
	if e.trick.scored {
		return
	}
	e.trick.scored = true
	e.score.AddTrick(e.params.TrickPoints)
}

// updateTrickTimer scores a trick whose duration has run out while the
// player is still in the air. The pose stays until landing.
func (e *Engine) updateTrickTimer() {
	if !e.trick.active {
		return
	}
	if e.trickElapsed() >= e.player.TrickDuration && e.player.Jumping {
		e.scoreTrick()
	}
}

// landTrick finishes a trick in progress on touchdown, scoring it if the
// timer has not already done so.
func (e *Engine) landTrick() {
	if !e.trick.active {
		return
	}
	e.scoreTrick()
	e.trick.active = false
	if e.player.State == StateTrick {
		e.player.State = StateNormal
	}
}

// resolveLanding ends the trick pose once the player is no longer airborne
// and advances the trick animation otherwise.
func (e *Engine) resolveLanding() {
	p := &e.player
	if p.State == StateTrick && !p.Jumping {
		e.landTrick()
		p.State = StateNormal
	}

	if p.State == StateTrick && p.TrickDuration > 0 {
		frames := e.params.TrickFrames
		frame := int(int64(frames) * e.trickElapsed() / p.TrickDuration)
		if frame > frames-1 {
			frame = frames - 1
		}
		p.TrickFrame = frame
	}
}

// trickProgress returns the completed fraction of the current trick.
func (e *Engine) trickProgress() float64 {
	if !e.trick.active || e.player.TrickDuration <= 0 {
		return 0
	}
	progress := float64(e.trickElapsed()) / float64(e.player.TrickDuration)
	if progress > 1 {
		return 1
	}
	return progress
}
