package grid

// PeerCount is the number of peers of any cell: 8 in its row, 8 in its
// column, and 4 more in its box that share neither row nor column.
const PeerCount = 20

// Precomputed geometry tables. Grid geometry is fixed for classic Sudoku
// (box index = (row/3)*3 + col/3), so these are derived once at process
// startup and read-only afterward.
var (
	posToRow [CellCount]int
	posToCol [CellCount]int
	posToBox [CellCount]int

	// Cell positions of each unit, in ascending order.
	rowCells [9][9]int
	colCells [9][9]int
	boxCells [9][9]int

	// peers[pos] holds the positions sharing a row, column, or box with pos.
	peers [CellCount][PeerCount]int
)

// MakePos transforms a row and column into a linear position.
// Returns InvalidCell if row and/or col are invalid.
func MakePos(row, col int) int {
	if row < 0 || row >= 9 || col < 0 || col >= 9 {
		return InvalidCell
	}
	return 9*row + col
}

// Peers returns the 20 positions sharing a row, column, or box with pos.
// The returned slice aliases the precomputed table and must not be modified.
func Peers(pos int) []int {
	return peers[pos][:]
}

// RowCells returns the 9 cell positions of the given row.
func RowCells(row int) [9]int { return rowCells[row] }

// ColCells returns the 9 cell positions of the given column.
func ColCells(col int) [9]int { return colCells[col] }

// BoxCells returns the 9 cell positions of the given box.
func BoxCells(box int) [9]int { return boxCells[box] }

// init fills the geometry lookup tables.
func init() {
	var boxCounts [9]int

	for pos := 0; pos < CellCount; pos++ {
		row, col := pos/9, pos%9
		box := 3*(row/3) + col/3

		posToRow[pos] = row
		posToCol[pos] = col
		posToBox[pos] = box

		rowCells[row][col] = pos
		colCells[col][row] = pos
		boxCells[box][boxCounts[box]] = pos
		boxCounts[box]++
	}

	for pos := 0; pos < CellCount; pos++ {
		row, col, box := posToRow[pos], posToCol[pos], posToBox[pos]
		n := 0

		for _, other := range rowCells[row] {
			if other != pos {
				peers[pos][n] = other
				n++
			}
		}
		for _, other := range colCells[col] {
			if other != pos {
				peers[pos][n] = other
				n++
			}
		}
		for _, other := range boxCells[box] {
			if other != pos && posToRow[other] != row && posToCol[other] != col {
				peers[pos][n] = other
				n++
			}
		}
	}
}
