package main

import (
	"math/rand"
	"testing"
)

func TestParseDifficulty(t *testing.T) {
	cases := []struct {
		in   string
		want Difficulty
		ok   bool
	}{
		{"easy", DifficultyEasy, true},
		{"Medium", DifficultyMedium, true},
		{"HARD", DifficultyHard, true},
		{"3", DifficultyHard, true},
		{" hard ", DifficultyHard, true},
		{"expert", DifficultyMedium, false},
	}
	for _, tc := range cases {
		got, ok := ParseDifficulty(tc.in)
		if got != tc.want || ok != tc.ok {
			t.Fatalf("ParseDifficulty(%q) = %v,%v want %v,%v", tc.in, got, ok, tc.want, tc.ok)
		}
	}
}

func TestFirstMoveIsCenter(t *testing.T) {
	settings := DefaultGameSettings()
	rules := NewRules(settings)
	state := DefaultGameState(settings)
	state.Status = StatusRunning

	for _, difficulty := range []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard} {
		player := NewAIPlayer(difficulty, rand.New(rand.NewSource(1)))
		move, ok := player.ChooseMove(state.Clone(), rules)
		if !ok {
			t.Fatalf("%v: expected a move on the empty board", difficulty)
		}
		if move.X != 7 || move.Y != 7 {
			t.Fatalf("%v: expected center (7,7), got (%d,%d)", difficulty, move.X, move.Y)
		}
	}
}

func TestCandidateNeighborhoodOrder(t *testing.T) {
	state := testState(9)
	if err := state.Place(Move{X: 4, Y: 4}, PlayerBlack); err != nil {
		t.Fatalf("setup placement: %v", err)
	}

	candidates := candidateMoves(state)
	if len(candidates) != 24 {
		t.Fatalf("expected 24 neighbors of a lone stone, got %d", len(candidates))
	}
	if candidates[0] != (Move{X: 2, Y: 2}) {
		t.Fatalf("expected first candidate (2,2), got %+v", candidates[0])
	}
	if candidates[len(candidates)-1] != (Move{X: 6, Y: 6}) {
		t.Fatalf("expected last candidate (6,6), got %+v", candidates[len(candidates)-1])
	}
	for _, c := range candidates {
		if c.X == 4 && c.Y == 4 {
			t.Fatalf("occupied cell must not be a candidate")
		}
	}
}

func TestCandidateNeighborhoodClampsAtEdge(t *testing.T) {
	state := testState(9)
	if err := state.Place(Move{X: 0, Y: 0}, PlayerBlack); err != nil {
		t.Fatalf("setup placement: %v", err)
	}
	candidates := candidateMoves(state)
	if len(candidates) != 8 {
		t.Fatalf("expected 8 in-bounds neighbors of a corner stone, got %d", len(candidates))
	}
	if candidates[0] != (Move{X: 1, Y: 0}) {
		t.Fatalf("expected first candidate (1,0), got %+v", candidates[0])
	}
}

func TestCandidatesDeduplicateAcrossStones(t *testing.T) {
	state := testState(9)
	if err := state.Place(Move{X: 4, Y: 4}, PlayerBlack); err != nil {
		t.Fatalf("setup placement: %v", err)
	}
	if err := state.Place(Move{X: 5, Y: 4}, PlayerWhite); err != nil {
		t.Fatalf("setup placement: %v", err)
	}
	candidates := candidateMoves(state)
	seen := map[Move]bool{}
	for _, c := range candidates {
		if seen[c] {
			t.Fatalf("duplicate candidate %+v", c)
		}
		seen[c] = true
	}
}

func TestWinningMoveShortCircuitsScoring(t *testing.T) {
	settings := DefaultGameSettings()
	rules := NewRules(settings)

	for _, difficulty := range []Difficulty{DifficultyMedium, DifficultyHard} {
		state := DefaultGameState(settings)
		state.Status = StatusRunning
		for x := 6; x <= 9; x++ {
			if err := state.Place(Move{X: x, Y: 7}, PlayerBlack); err != nil {
				t.Fatalf("setup placement: %v", err)
			}
		}

		calls := 0
		prev := evaluateFn
		evaluateFn = func(board Board, player PlayerColor) float64 {
			calls++
			return EvaluateBoard(board, player)
		}

		player := NewAIPlayer(difficulty, rand.New(rand.NewSource(3)))
		move, ok := player.ChooseMove(state, rules)
		evaluateFn = prev

		if !ok {
			t.Fatalf("%v: expected a move", difficulty)
		}
		if move != (Move{X: 5, Y: 7}) {
			t.Fatalf("%v: expected winning completion (5,7), got (%d,%d)", difficulty, move.X, move.Y)
		}
		if calls != 0 {
			t.Fatalf("%v: win in one must skip scoring, evaluator ran %d times", difficulty, calls)
		}
	}
}

func TestMandatoryBlockIsForced(t *testing.T) {
	settings := DefaultGameSettings()
	settings.BoardSize = 9
	rules := NewRules(settings)

	for _, difficulty := range []Difficulty{DifficultyMedium, DifficultyHard} {
		for seed := int64(1); seed <= 5; seed++ {
			state := DefaultGameState(settings)
			state.Status = StatusRunning
			// White four against the edge; (4,5) is the only completion.
			for x := 0; x <= 3; x++ {
				if err := state.Place(Move{X: x, Y: 5}, PlayerWhite); err != nil {
					t.Fatalf("setup placement: %v", err)
				}
			}

			player := NewAIPlayer(difficulty, rand.New(rand.NewSource(seed)))
			move, ok := player.ChooseMove(state, rules)
			if !ok {
				t.Fatalf("%v seed %d: expected a move", difficulty, seed)
			}
			if move != (Move{X: 4, Y: 5}) {
				t.Fatalf("%v seed %d: expected forced block (4,5), got (%d,%d)", difficulty, seed, move.X, move.Y)
			}
		}
	}
}

func TestOpenFourBlockPicksAnEnd(t *testing.T) {
	settings := DefaultGameSettings()
	settings.BoardSize = 9
	rules := NewRules(settings)

	state := DefaultGameState(settings)
	state.Status = StatusRunning
	for x := 3; x <= 6; x++ {
		if err := state.Place(Move{X: x, Y: 5}, PlayerWhite); err != nil {
			t.Fatalf("setup placement: %v", err)
		}
	}

	for seed := int64(1); seed <= 5; seed++ {
		player := NewAIPlayer(DifficultyHard, rand.New(rand.NewSource(seed)))
		move, ok := player.ChooseMove(state.Clone(), rules)
		if !ok {
			t.Fatalf("seed %d: expected a move", seed)
		}
		if move != (Move{X: 2, Y: 5}) && move != (Move{X: 7, Y: 5}) {
			t.Fatalf("seed %d: expected an end of the open four, got (%d,%d)", seed, move.X, move.Y)
		}
	}
}

func TestEasyPlaysRandomNearbyCell(t *testing.T) {
	settings := DefaultGameSettings()
	rules := NewRules(settings)
	state := DefaultGameState(settings)
	state.Status = StatusRunning
	stones := []Move{{X: 7, Y: 7}, {X: 8, Y: 8}, {X: 6, Y: 7}}
	players := []PlayerColor{PlayerBlack, PlayerWhite, PlayerBlack}
	for i, stone := range stones {
		if err := state.Place(stone, players[i]); err != nil {
			t.Fatalf("setup placement: %v", err)
		}
	}

	distinct := map[Move]bool{}
	for seed := int64(0); seed < 40; seed++ {
		player := NewAIPlayer(DifficultyEasy, rand.New(rand.NewSource(seed)))
		move, ok := player.ChooseMove(state.Clone(), rules)
		if !ok {
			t.Fatalf("seed %d: expected a move", seed)
		}
		if !state.Board.IsEmpty(move.X, move.Y) {
			t.Fatalf("seed %d: move on occupied or out-of-range cell (%d,%d)", seed, move.X, move.Y)
		}
		near := false
		for _, stone := range stones {
			if abs(move.X-stone.X) <= proximityRadius && abs(move.Y-stone.Y) <= proximityRadius {
				near = true
				break
			}
		}
		if !near {
			t.Fatalf("seed %d: move (%d,%d) outside the candidate neighborhood", seed, move.X, move.Y)
		}
		distinct[move] = true
	}
	if len(distinct) < 3 {
		t.Fatalf("expected varied easy moves across seeds, got %d distinct", len(distinct))
	}
}

func TestChooseMoveDoesNotMutateInput(t *testing.T) {
	settings := DefaultGameSettings()
	settings.BoardSize = 9
	rules := NewRules(settings)
	state := DefaultGameState(settings)
	state.Status = StatusRunning
	if err := state.Place(Move{X: 4, Y: 4}, PlayerBlack); err != nil {
		t.Fatalf("setup placement: %v", err)
	}
	if err := state.Place(Move{X: 5, Y: 5}, PlayerWhite); err != nil {
		t.Fatalf("setup placement: %v", err)
	}
	snapshot := state.Clone()

	player := NewAIPlayer(DifficultyMedium, rand.New(rand.NewSource(11)))
	if _, ok := player.ChooseMove(state, rules); !ok {
		t.Fatalf("expected a move")
	}

	if !state.Board.Equals(snapshot.Board) {
		t.Fatalf("selection mutated the caller's board")
	}
	if state.History.Size() != snapshot.History.Size() {
		t.Fatalf("selection mutated the caller's history: %d != %d", state.History.Size(), snapshot.History.Size())
	}
}

func TestNoMoveOnFullBoard(t *testing.T) {
	settings := DefaultGameSettings()
	settings.BoardSize = 9
	rules := NewRules(settings)
	state := DefaultGameState(settings)
	state.Status = StatusRunning
	for y := 0; y < 9; y++ {
		for x := 0; x < 9; x++ {
			state.Board.Set(x, y, CellBlack)
		}
	}

	player := NewAIPlayer(DifficultyMedium, rand.New(rand.NewSource(1)))
	if _, ok := player.ChooseMove(state, rules); ok {
		t.Fatalf("full board must yield no move")
	}
}

func TestSeededSelectionIsReproducible(t *testing.T) {
	settings := DefaultGameSettings()
	rules := NewRules(settings)
	state := DefaultGameState(settings)
	state.Status = StatusRunning
	if err := state.Place(Move{X: 7, Y: 7}, PlayerBlack); err != nil {
		t.Fatalf("setup placement: %v", err)
	}
	if err := state.Place(Move{X: 8, Y: 8}, PlayerWhite); err != nil {
		t.Fatalf("setup placement: %v", err)
	}
	if err := state.Place(Move{X: 6, Y: 6}, PlayerBlack); err != nil {
		t.Fatalf("setup placement: %v", err)
	}
	state.ToMove = PlayerWhite

	first := NewAIPlayer(DifficultyMedium, rand.New(rand.NewSource(99)))
	second := NewAIPlayer(DifficultyMedium, rand.New(rand.NewSource(99)))

	moveA, okA := first.ChooseMove(state.Clone(), rules)
	moveB, okB := second.ChooseMove(state.Clone(), rules)
	if !okA || !okB {
		t.Fatalf("expected moves from both players")
	}
	if moveA != moveB {
		t.Fatalf("same seed must give same move: (%d,%d) != (%d,%d)", moveA.X, moveA.Y, moveB.X, moveB.Y)
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
