package core

// Key identifies a discrete key press understood by the engine.
// The platform translates its own key events into these values.
type Key int

const (
	KeyNone  Key = iota
	KeyEnter     // Start or restart a game
	KeyP         // Pause toggle
	KeySpace     // Pause toggle
	KeyLeft      // Move paddle left
	KeyRight     // Move paddle right
)

// String returns a human-readable name for the key.
func (k Key) String() string {
	switch k {
	case KeyNone:
		return "None"
	case KeyEnter:
		return "Enter"
	case KeyP:
		return "P"
	case KeySpace:
		return "Space"
	case KeyLeft:
		return "Left"
	case KeyRight:
		return "Right"
	default:
		return "Unknown"
	}
}

// InputSource is the capability the engine driver uses to read key presses.
// Drain returns the keys pressed since the previous call, oldest first.
type InputSource interface {
	Drain() []Key
}

// KeyBuffer is an InputSource fed by the platform's key events.
type KeyBuffer struct {
	keys []Key
}

// NewKeyBuffer creates an empty key buffer.
func NewKeyBuffer() *KeyBuffer {
	return &KeyBuffer{keys: make([]Key, 0, 4)}
}

// Push records a key press. KeyNone is ignored.
func (b *KeyBuffer) Push(k Key) {
	if k == KeyNone {
		return
	}
	b.keys = append(b.keys, k)
}

// Drain returns all pending keys and empties the buffer.
func (b *KeyBuffer) Drain() []Key {
	if len(b.keys) == 0 {
		return nil
	}
	out := make([]Key, len(b.keys))
	copy(out, b.keys)
	b.keys = b.keys[:0]
	return out
}

// Len returns the number of pending keys.
func (b *KeyBuffer) Len() int {
	return len(b.keys)
}
