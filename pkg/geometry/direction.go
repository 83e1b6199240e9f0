package geometry

// Direction names the side from which a candidate position is approached.
type Direction int

const (
	None Direction = iota
	Left
	Right
	Up
	Down
)

// Directions lists the four concrete directions in index order.
var Directions = [...]Direction{Left, Right, Up, Down}

// Valid reports whether d is one of Left, Right, Up or Down.
func (d Direction) Valid() bool { return d >= Left && d <= Down }

// Horizontal reports whether d is Left or Right.
func (d Direction) Horizontal() bool { return d == Left || d == Right }

func (d Direction) String() string {
	switch d {
	case None:
		return "none"
	case Left:
		return "left"
	case Right:
		return "right"
	case Up:
		return "up"
	case Down:
		return "down"
	}
	return "unknown"
}
