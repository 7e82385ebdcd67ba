package keymap

// KeyType classifies a key event.
type KeyType int

const (
	KeyRune KeyType = iota
	KeyEnter
	KeyEscape
	KeyBackspace
	KeyOther // arrows, function keys and anything else without a rune
)

// Key is a single key press as delivered by the terminal backend.
type Key struct {
	Type KeyType
	Rune rune // set for KeyRune
}

// Rune returns a printable key event for r.
func Rune(r rune) Key {
	return Key{Type: KeyRune, Rune: r}
}

// Runes returns one key event per rune of s.
func Runes(s string) []Key {
	keys := make([]Key, 0, len(s))
	for _, r := range s {
		keys = append(keys, Rune(r))
	}
	return keys
}

var (
	Enter     = Key{Type: KeyEnter}
	Escape    = Key{Type: KeyEscape}
	Backspace = Key{Type: KeyBackspace}
)
