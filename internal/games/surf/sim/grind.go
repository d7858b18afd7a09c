package sim

// updateWaveField advances the waves, then resolves grind entry, riding and
// exit against each remaining wave.
func (e *Engine) updateWaveField(in inputState) {
	e.waves = advanceWaves(e.waves)

	if e.player.Grinding && findWave(e.waves, e.grindWave) < 0 {
		e.endGrind()
	}

	tol := e.params.Waves.GrindTolerance
	for i := range e.waves {
		w := e.waves[i]
		p := &e.player

		if !(p.rising() && w.ID == e.leftWave) && touchesWave(p.box(), w) {
			top := SurfaceY(w, p.CenterX())
			if p.Bottom() <= top+tol {
				e.enterGrind(w, top)
			}
		}

		if e.grindWave != w.ID {
			continue
		}

		p.Y = SurfaceY(w, p.CenterX()) - p.H + e.params.Waves.GrindLift
		e.score.AddGrind(e.params.GrindPoints)

		if in.Pressed(KeyJump) {
			e.jumpOffGrind()
		} else if p.X+p.W < w.X || p.X > w.Right() {
			e.endGrind()
		}
	}
}

// enterGrind puts the player on the crest of w. A trick still in the air
// lands as the board touches the wave.
func (e *Engine) enterGrind(w Wave, surfaceY float64) {
	p := &e.player
	if p.Jumping {
		p.Jumping = false
		e.landTrick()
	}
	p.Grinding = true
	p.State = StateGrind
	p.VY = 0
	p.Y = surfaceY - p.H + e.params.Waves.GrindLift
	e.grindWave = w.ID
	e.leftWave = 0
}

// endGrind drops the player off the wave with no bonus.
func (e *Engine) endGrind() {
	p := &e.player
	p.Grinding = false
	if p.State == StateGrind {
		p.State = StateNormal
	}
	e.grindWave = 0
}

// jumpOffGrind launches the player from the crest with a momentum bonus.
// The crest it leaves cannot catch the board again until it starts falling.
func (e *Engine) jumpOffGrind() {
	e.leftWave = e.grindWave
	e.endGrind()
	p := &e.player
	p.VY = e.params.JumpForce
	p.Jumping = true
	p.State = StateNormal
	p.Momentum += e.params.JumpOffBonus
	if p.Momentum > e.params.MomentumMax {
		p.Momentum = e.params.MomentumMax
	}
}
