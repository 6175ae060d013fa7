// Package schematic scans an engine schematic: a character grid in which
// numbers touching a symbol are part numbers and symbols touching exactly two
// part numbers are gears.
package schematic

// CellKind classifies a single grid character.
type CellKind int

// Available CellKind values.
const (
	Empty CellKind = iota
	Digit
	Symbol
)

const emptyCell = '.'

func (k CellKind) String() string {
	switch k {
	case Empty:
		return "empty"
	case Digit:
		return "digit"
	case Symbol:
		return "symbol"
	default:
		return "unknown"
	}
}

// Classify reports the kind of r. Only ASCII 0-9 are digits and only '.' is
// empty; every other character is a symbol.
func Classify(r rune) CellKind {
	switch {
	case r >= '0' && r <= '9':
		return Digit
	case r == emptyCell:
		return Empty
	default:
		return Symbol
	}
}

// Coord addresses a cell by zero-based row and column.
type Coord struct {
	Row int
	Col int
}

// Grid is an immutable view over the schematic rows. Rows may differ in
// length; cells outside a row are absent.
type Grid struct {
	rows [][]rune
}

// NewGrid builds a Grid from text lines. The lines are copied, so later
// changes to the caller's slice do not affect the grid.
func NewGrid(lines []string) Grid {
	rows := make([][]rune, len(lines))
	for i, line := range lines {
		rows[i] = []rune(line)
	}

	return Grid{rows: rows}
}

// Rows returns the number of rows, empty ones included.
func (g Grid) Rows() int {
	return len(g.rows)
}

// Width returns the number of cells in row, or 0 when row is out of range.
func (g Grid) Width(row int) int {
	if row < 0 || row >= len(g.rows) {
		return 0
	}

	return len(g.rows[row])
}

// At returns the character at (row, col). ok is false when the cell is absent.
func (g Grid) At(row, col int) (r rune, ok bool) {
	if col < 0 || col >= g.Width(row) {
		return 0, false
	}

	return g.rows[row][col], true
}

func (g Grid) isSymbol(c Coord) bool {
	r, ok := g.At(c.Row, c.Col)

	return ok && Classify(r) == Symbol
}

// neighbors returns the symbol cells in the Moore neighbourhood of c, in
// row-major order.
func (g Grid) neighbors(c Coord) []Coord {
	var found []Coord

	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}

			n := Coord{Row: c.Row + dr, Col: c.Col + dc}
			if g.isSymbol(n) {
				found = append(found, n)
			}
		}
	}

	return found
}
