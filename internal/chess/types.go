// Package chess provides the movetext model: moves, variations and the
// id-linked variation map that owns them.
package chess

import "fmt"

// Colour represents the side that played a move.
type Colour int

const (
	Black Colour = iota
	White
)

// String returns the lowercase name of a colour.
func (c Colour) String() string {
	if c == White {
		return "white"
	}
	return "black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// MarshalText implements encoding.TextMarshaler.
func (c Colour) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Colour) UnmarshalText(text []byte) error {
	switch string(text) {
	case "white":
		*c = White
	case "black":
		*c = Black
	default:
		return fmt.Errorf("unknown colour %q", text)
	}
	return nil
}

// NextPly returns the number and colour of the ply after one played by
// colour c at move number n. Numbers advance on the black to white wrap.
func NextPly(n int, c Colour) (int, Colour) {
	if c == Black {
		return n + 1, White
	}
	return n, Black
}
