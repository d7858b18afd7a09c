package sim

import "testing"

// launch settles the player, jumps and starts the trick bound to k.
func launch(t *testing.T, h *harness, k Key) Snapshot {
	t.Helper()
	h.settle()
	h.tap(KeyJump)
	s := h.tap(k)
	if !s.Trick.Active || s.Player.State != StateTrick {
		t.Fatalf("trick did not start: %+v", s.Trick)
	}
	return s
}

func TestTrickScoredOnceByTimer(t *testing.T) {
	h := newQuietHarness(t)
	h.step = 100 // long ticks so the timer expires mid-air

	s := launch(t, h, KeyTrickA)
	if s.Trick.Name != TrickFlip {
		t.Errorf("trick name = %q, want %q", s.Trick.Name, TrickFlip)
	}

	scoredInAir := false
	for i := 0; i < 200 && (s.Player.Jumping || i == 0); i++ {
		s = h.tick()
		if s.Player.Jumping && s.Trick.Scored {
			scoredInAir = true
			if s.Player.State != StateTrick {
				t.Errorf("pose left trick state before landing")
			}
		}
	}
	if !scoredInAir {
		t.Fatal("timer never scored the trick while airborne")
	}

	s = h.run(30)
	if s.Score != 100 {
		t.Errorf("score = %d, want 100", s.Score)
	}
	if s.Trick.Active || s.Player.State != StateNormal {
		t.Errorf("after landing: active=%v state=%v", s.Trick.Active, s.Player.State)
	}
	if s.Stats.TricksLanded != 1 {
		t.Errorf("TricksLanded = %d, want 1", s.Stats.TricksLanded)
	}
}

func TestTrickScoredOnceOnLanding(t *testing.T) {
	h := newQuietHarness(t)

	s := launch(t, h, KeyTrickB)
	if s.Trick.Name != TrickGrab {
		t.Errorf("trick name = %q, want %q", s.Trick.Name, TrickGrab)
	}

	for s.Player.Jumping {
		if s.Score != 0 {
			t.Fatalf("score = %d before landing, want 0", s.Score)
		}
		s = h.tick()
	}

	if s.Score != 100 {
		t.Errorf("score on landing = %d, want 100", s.Score)
	}
	if s = h.run(100); s.Score != 100 {
		t.Errorf("score later = %d, want 100", s.Score)
	}
}

func TestTrickNeedsAirAndNoActiveTrick(t *testing.T) {
	h := newQuietHarness(t)
	h.settle()

	if s := h.tap(KeyTrickA); s.Trick.Active {
		t.Fatal("trick started on the ground")
	}

	h.tap(KeyJump)
	first := h.tap(KeyTrickA)
	second := h.tap(KeyTrickB)
	if second.Trick.Name != first.Trick.Name || second.Player.TrickStart != first.Player.TrickStart {
		t.Errorf("second trick key replaced the active trick: %q -> %q", first.Trick.Name, second.Trick.Name)
	}
}

func TestTrickAnimationFrames(t *testing.T) {
	h := newQuietHarness(t)
	h.step = 10

	s := launch(t, h, KeyTrickA)
	if s.Player.TrickFrame != 0 {
		t.Fatalf("first frame = %d, want 0", s.Player.TrickFrame)
	}

	prev := 0
	for s.Player.State == StateTrick {
		if f := s.Player.TrickFrame; f < prev || f > 19 {
			t.Fatalf("frame %d after %d", f, prev)
		}
		prev = s.Player.TrickFrame
		if s.Trick.Progress < 0 || s.Trick.Progress > 1 {
			t.Fatalf("progress %v out of [0,1]", s.Trick.Progress)
		}
		s = h.tick()
	}
	if prev == 0 {
		t.Error("animation never advanced")
	}
}

func TestJumpIsEdgeTriggered(t *testing.T) {
	h := newQuietHarness(t)
	h.settle()

	h.e.SetInput(KeyJump, true)
	jumps := 0
	wasJumping := false
	for i := 0; i < 200; i++ {
		s := h.tick()
		if s.Player.Jumping && !wasJumping {
			jumps++
		}
		wasJumping = s.Player.Jumping
	}
	if jumps != 1 {
		t.Errorf("holding jump produced %d jumps, want 1", jumps)
	}

	// A tap between ticks is not lost.
	h.e.SetInput(KeyJump, false)
	h.e.SetInput(KeyJump, true)
	h.e.SetInput(KeyJump, false)
	if s := h.tick(); !s.Player.Jumping {
		t.Error("tap released before the tick did not jump")
	}
}
