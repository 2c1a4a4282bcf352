package main

// CellOutOfBounds marks window positions that fall outside the grid. It is
// deliberately distinct from CellEmpty: a wall never extends a shape.
const CellOutOfBounds Cell = -1

// Tokens of the mover-frame alphabet used for pattern matching.
const (
	tokenMover    int8 = 1
	tokenOpponent int8 = -1
	tokenFree     int8 = 0
	tokenOOB      int8 = -2
)

// ScanLine returns the cells of a fixed-length window starting at (x, y) and
// stepping by (dx, dy), with CellOutOfBounds past the edge. Pure.
func ScanLine(board Board, x, y, dx, dy, length int) []Cell {
	return scanLineInto(board, x, y, dx, dy, length, make([]Cell, 0, length))
}

func scanLineInto(board Board, x, y, dx, dy, length int, buf []Cell) []Cell {
	buf = buf[:0]
	for i := 0; i < length; i++ {
		cx := x + dx*i
		cy := y + dy*i
		if board.InBounds(cx, cy) {
			buf = append(buf, board.At(cx, cy))
		} else {
			buf = append(buf, CellOutOfBounds)
		}
	}
	return buf
}

// recodeLineInto rewrites a scanned window into the mover's frame.
func recodeLineInto(line []Cell, player PlayerColor, buf []int8) []int8 {
	buf = buf[:0]
	own := CellFromPlayer(player)
	for _, cell := range line {
		switch cell {
		case CellEmpty:
			buf = append(buf, tokenFree)
		case CellOutOfBounds:
			buf = append(buf, tokenOOB)
		case own:
			buf = append(buf, tokenMover)
		default:
			buf = append(buf, tokenOpponent)
		}
	}
	return buf
}
