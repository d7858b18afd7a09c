package sim

import "sync"

// Key is a logical input the engine understands.
type Key int

const (
	KeyMoveLeft Key = iota
	KeyMoveRight
	KeyMoveUp
	KeyMoveDown
	KeyJump
	KeyTrickA // 360 FLIP
	KeyTrickB // SURF GRAB
	keyCount
)

var keyNames = [keyCount]string{
	"MoveLeft", "MoveRight", "MoveUp", "MoveDown", "Jump", "TrickA", "TrickB",
}

// String returns the key's name.
func (k Key) String() string {
	if k < 0 || k >= keyCount {
		return "Unknown"
	}
	return keyNames[k]
}

// inputState is the per-tick view of the keyboard: which keys are held and
// which went down since the previous tick.
type inputState struct {
	held    [keyCount]bool
	pressed [keyCount]bool
}

// Held reports whether k is currently down.
func (s inputState) Held(k Key) bool { return s.held[k] }

// Pressed reports whether k transitioned to down since the last tick.
func (s inputState) Pressed(k Key) bool { return s.pressed[k] }

// inputLatch collects key events between ticks. Presses are latched so a key
// tapped and released before the next tick still produces an edge.
// SetInput and take may run on different goroutines.
type inputLatch struct {
	mu      sync.Mutex
	held    [keyCount]bool
	pressed [keyCount]bool
	started bool
}

func (l *inputLatch) set(k Key, down bool) {
	if k < 0 || k >= keyCount {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()

	if down {
		if !l.held[k] {
			l.pressed[k] = true
		}
		l.started = true
	}
	l.held[k] = down
}

// take returns the state for this tick and clears the latched edges.
func (l *inputLatch) take() (inputState, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	s := inputState{held: l.held, pressed: l.pressed}
	l.pressed = [keyCount]bool{}
	return s, l.started
}

func (l *inputLatch) start() {
	l.mu.Lock()
	l.started = true
	l.mu.Unlock()
}

func (l *inputLatch) reset() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.held = [keyCount]bool{}
	l.pressed = [keyCount]bool{}
	l.started = false
}
