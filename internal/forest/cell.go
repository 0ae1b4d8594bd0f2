package forest

// Cell enumerates the state of a single grid position.
type Cell uint8

const (
	Empty Cell = iota
	Tree
	Burning
	// Water is static terrain. It never changes and blocks growth and spread.
	Water
)

// NumCells is the number of distinct cell states.
const NumCells = 4

func (c Cell) String() string {
	switch c {
	case Empty:
		return "empty"
	case Tree:
		return "tree"
	case Burning:
		return "burning"
	case Water:
		return "water"
	default:
		return "unknown"
	}
}

// Valid reports whether c is one of the defined states.
func (c Cell) Valid() bool { return c < NumCells }
