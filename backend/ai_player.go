package main

import (
	"math/rand"
	"sort"
	"strings"
	"time"
)

type Difficulty int

const (
	DifficultyEasy Difficulty = iota + 1
	DifficultyMedium
	DifficultyHard
)

func (d Difficulty) String() string {
	switch d {
	case DifficultyEasy:
		return "Easy"
	case DifficultyHard:
		return "Hard"
	default:
		return "Medium"
	}
}

func ParseDifficulty(value string) (Difficulty, bool) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "easy", "1":
		return DifficultyEasy, true
	case "medium", "2":
		return DifficultyMedium, true
	case "hard", "3":
		return DifficultyHard, true
	}
	return DifficultyMedium, false
}

func ClampDifficulty(d Difficulty) Difficulty {
	if d < DifficultyEasy {
		return DifficultyEasy
	}
	if d > DifficultyHard {
		return DifficultyHard
	}
	return d
}

// Noise bands and top-k sampling per difficulty. Medium is noisy enough to
// blunder; Hard stays close to the greedy choice without being a pure argmax.
const (
	mediumNoise        = 1000
	hardNoise          = 100
	mediumBestChance   = 0.7
	hardBestChance     = 0.95
	mediumSampleWindow = 5
	hardSampleWindow   = 3
)

// proximityRadius bounds candidate generation to the Chebyshev neighborhood
// of played stones.
const proximityRadius = 2

// evaluateFn is swappable in tests to count or fake evaluator calls.
var evaluateFn = EvaluateBoard

type scoredMove struct {
	move  Move
	score float64
}

type AIPlayer struct {
	difficulty Difficulty
	rng        *rand.Rand
}

func NewAIPlayer(difficulty Difficulty, rng *rand.Rand) *AIPlayer {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &AIPlayer{difficulty: ClampDifficulty(difficulty), rng: rng}
}

func (a *AIPlayer) IsHuman() bool {
	return false
}

func (a *AIPlayer) Difficulty() Difficulty {
	return a.difficulty
}

// ChooseMove picks one move for the side to move, or reports false when no
// legal cell remains (the driver treats that as a draw). The input state is
// never mutated; all probing happens on a scratch clone that is restored
// with Place/UndoLast pairs.
func (a *AIPlayer) ChooseMove(state GameState, rules Rules) (Move, bool) {
	candidates := candidateMoves(state)
	if len(candidates) == 0 {
		return Move{}, false
	}

	if a.difficulty == DifficultyEasy {
		return candidates[a.rng.Intn(len(candidates))], true
	}

	scratch := state.Clone()
	mover := state.ToMove
	opponent := otherPlayer(mover)

	// Win-in-1 pass. The first winning candidate short-circuits everything;
	// no candidate gets scored when a win exists.
	for _, move := range candidates {
		if err := scratch.Place(move, mover); err != nil {
			continue
		}
		win := rules.IsWin(scratch.Board, move)
		_ = scratch.UndoLast()
		if win {
			return move, true
		}
	}

	// Mandatory-block pass: cells where the opponent would complete five.
	// When any exist, only candidates occupying one of them stay scorable.
	blocks := opponentWinningCells(&scratch, rules, opponent, candidates)

	scored := make([]scoredMove, 0, len(candidates))
	for _, move := range candidates {
		if len(blocks) > 0 && !containsMove(blocks, move) {
			continue
		}
		if err := scratch.Place(move, mover); err != nil {
			continue
		}
		score := evaluateFn(scratch.Board, mover)
		switch a.difficulty {
		case DifficultyMedium:
			score += float64(a.rng.Intn(2*mediumNoise+1) - mediumNoise)
		case DifficultyHard:
			score += float64(a.rng.Intn(2*hardNoise+1) - hardNoise)
		}
		scored = append(scored, scoredMove{move: move, score: score})
		_ = scratch.UndoLast()
	}

	if len(scored) == 0 {
		return candidates[a.rng.Intn(len(candidates))], true
	}

	sort.Slice(scored, func(i, j int) bool {
		return scored[i].score > scored[j].score
	})

	switch a.difficulty {
	case DifficultyMedium:
		if a.rng.Float64() < mediumBestChance {
			return scored[0].move, true
		}
		return a.sampleTop(scored, mediumSampleWindow), true
	default:
		if a.rng.Float64() < hardBestChance {
			return scored[0].move, true
		}
		return a.sampleTop(scored, hardSampleWindow), true
	}
}

func (a *AIPlayer) sampleTop(scored []scoredMove, window int) Move {
	if window > len(scored) {
		window = len(scored)
	}
	return scored[a.rng.Intn(window)].move
}

// opponentWinningCells probes each candidate with an opponent stone and
// collects every cell that would complete the opponent's five.
func opponentWinningCells(scratch *GameState, rules Rules, opponent PlayerColor, candidates []Move) []Move {
	var wins []Move
	for _, move := range candidates {
		if err := scratch.Place(move, opponent); err != nil {
			continue
		}
		win := rules.IsWin(scratch.Board, move)
		_ = scratch.UndoLast()
		if win {
			wins = append(wins, move)
		}
	}
	return wins
}

func containsMove(moves []Move, target Move) bool {
	for _, m := range moves {
		if m.Equals(target) {
			return true
		}
	}
	return false
}

// candidateMoves enumerates empty cells within the proximity radius of any
// played stone, walking the history in order so the result order is stable
// for a fixed position. An empty board yields the exact center.
func candidateMoves(state GameState) []Move {
	size := state.Board.Size()
	if state.History.Size() == 0 {
		center := size / 2
		if state.Board.IsEmpty(center, center) {
			return []Move{{X: center, Y: center}}
		}
	}

	moves := []Move{}
	seen := make([]bool, size*size)
	for _, entry := range state.History.All() {
		for dy := -proximityRadius; dy <= proximityRadius; dy++ {
			for dx := -proximityRadius; dx <= proximityRadius; dx++ {
				x := entry.Move.X + dx
				y := entry.Move.Y + dy
				if !state.Board.IsEmpty(x, y) {
					continue
				}
				idx := y*size + x
				if seen[idx] {
					continue
				}
				seen[idx] = true
				moves = append(moves, Move{X: x, Y: y})
			}
		}
	}
	if len(moves) > 0 {
		return moves
	}

	// Degenerate fallback: every empty cell, row-major.
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			if state.Board.IsEmpty(x, y) {
				moves = append(moves, Move{X: x, Y: y})
			}
		}
	}
	return moves
}
