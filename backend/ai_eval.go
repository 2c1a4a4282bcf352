package main

// Window length for positional scanning. Long enough to hold the widest
// catalog shape plus one cell of context on each side of a four.
const evalWindow = 6

// Defensive matches are discounted so the engine leans slightly toward
// offense instead of trading blocks forever.
const defenseDiscount = 0.9

// EvaluateBoard scores the whole position from the mover's perspective.
// Every cell spawns one window per axis generator, and every window is tested
// against the full catalog twice: in the mover frame (add) and the opponent
// frame (subtract, discounted). A strong shape that spans several overlapping
// windows is counted once per window; the inflation is proportional to shape
// strength and is part of the calibration, not an accident.
func EvaluateBoard(board Board, player PlayerColor) float64 {
	size := board.Size()
	score := 0.0
	var cellBuf [evalWindow]Cell
	var tokenBuf [evalWindow]int8
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			for i := 0; i < 4; i++ {
				dx := directions[i][0]
				dy := directions[i][1]
				line := scanLineInto(board, x, y, dx, dy, evalWindow, cellBuf[:0])
				tokens := recodeLineInto(line, player, tokenBuf[:0])
				for p := range attackPatterns {
					if matchShape(tokens, attackPatterns[p].shape) {
						score += attackPatterns[p].score
					}
					if matchShape(tokens, defensePatterns[p].shape) {
						score -= defensePatterns[p].score * defenseDiscount
					}
				}
			}
		}
	}
	return score
}
