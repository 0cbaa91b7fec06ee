package types

// Grid represents a square grid addressed by row-major cell indices.
type Grid struct {
	Width int
}

// Size returns the number of cells in the grid.
func (g Grid) Size() int {
	return g.Width * g.Width
}

// Row returns the row of a cell index.
func (g Grid) Row(idx int) int {
	return idx / g.Width
}

// Col returns the column of a cell index.
func (g Grid) Col(idx int) int {
	return idx % g.Width
}

// Contains reports whether idx is a valid cell of the grid.
func (g Grid) Contains(idx int) bool {
	return idx >= 0 && idx < g.Size()
}

// Game constants
const (
	InitialSnakeLength = 3
	PointsPerReward    = 1
)

// Direction is the facing of the snake head.
type Direction int

const (
	Up Direction = iota
	Right
	Down
	Left
)

// Directions lists every direction in declaration order.
var Directions = [4]Direction{Up, Right, Down, Left}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Right:
		return "right"
	case Down:
		return "down"
	case Left:
		return "left"
	default:
		return "unknown"
	}
}

// Valid reports whether d is one of the four directions.
func (d Direction) Valid() bool {
	return d >= Up && d <= Left
}

// Opposite returns the direction pointing the other way.
func (d Direction) Opposite() Direction {
	return (d + 2) % 4
}

// GameStatus is the lifecycle of a single game.
// NotStarted -> Playing -> Won | Lost; Won and Lost are terminal.
type GameStatus int

const (
	NotStarted GameStatus = iota
	Playing
	Won
	Lost
)

// String returns the text shown to the player for the status.
func (s GameStatus) String() string {
	switch s {
	case Playing:
		return "Playing!"
	case Won:
		return "You have won!"
	case Lost:
		return "You have lost!"
	default:
		return "No Status"
	}
}

// IsTerminal reports whether no further step can change the game.
func (s GameStatus) IsTerminal() bool {
	return s == Won || s == Lost
}
