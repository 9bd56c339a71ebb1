package study

// Key is a keyboard input the study view reacts to.
type Key int

const (
	KeyOther Key = iota
	KeySpace
	KeyLeft
	KeyRight
)

// ParseKey maps key names from browsers ("ArrowLeft", " ") and terminals
// ("left", "space") to a Key. Anything else is KeyOther.
func ParseKey(name string) Key {
	switch name {
	case " ", "space", "Space":
		return KeySpace
	case "left", "ArrowLeft":
		return KeyLeft
	case "right", "ArrowRight":
		return KeyRight
	default:
		return KeyOther
	}
}

// HandleKey applies the transition bound to k: space flips, left goes to the
// previous card, right to the next one. handled is true when k is bound,
// which tells the caller to suppress the key's default behaviour. Unbound keys
// and Empty sessions return s unchanged with handled false.
func (s Session[T]) HandleKey(k Key) (next Session[T], handled bool) {
	if s.Empty() {
		return s, false
	}
	switch k {
	case KeySpace:
		return s.Flip(), true
	case KeyLeft:
		return s.Previous(), true
	case KeyRight:
		return s.Next(), true
	default:
		return s, false
	}
}
