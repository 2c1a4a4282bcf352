package main

import "errors"

type PlayerColor int

type GameStatus int

const (
	PlayerBlack PlayerColor = iota
	PlayerWhite
)

const (
	StatusNotStarted GameStatus = iota
	StatusRunning
	StatusBlackWon
	StatusWhiteWon
	StatusDraw
)

// Placement on an occupied or out-of-range cell. The selector only ever
// offers legal candidates, so seeing this outside a probe is a caller bug.
var ErrIllegalMove = errors.New("illegal move")

var ErrEmptyHistory = errors.New("no move to undo")

type GameState struct {
	Board       Board
	ToMove      PlayerColor
	Status      GameStatus
	HasLastMove bool
	LastMove    Move
	History     MoveHistory
	LastMessage string
	WinningLine []Move
}

func DefaultGameState(settings GameSettings) GameState {
	state := GameState{}
	state.Reset(settings)
	return state
}

func (s *GameState) Reset(settings GameSettings) {
	s.Board = NewBoard(settings.BoardSize)
	if settings.BlackStarts {
		s.ToMove = PlayerBlack
	} else {
		s.ToMove = PlayerWhite
	}
	s.Status = StatusNotStarted
	s.HasLastMove = false
	s.LastMove = Move{X: -1, Y: -1}
	s.History.Clear()
	s.LastMessage = ""
	s.WinningLine = nil
}

func (s GameState) Clone() GameState {
	clone := s
	clone.Board = s.Board.Clone()
	clone.History = s.History.Clone()
	clone.WinningLine = append([]Move(nil), s.WinningLine...)
	return clone
}

// Place puts a stone and appends to history. It is also the probe primitive
// the selector pairs with UndoLast, so it must not touch ToMove or Status.
func (s *GameState) Place(move Move, player PlayerColor) error {
	if !s.Board.IsEmpty(move.X, move.Y) {
		return ErrIllegalMove
	}
	s.Board.Set(move.X, move.Y, CellFromPlayer(player))
	s.History.Push(HistoryEntry{Move: move, Player: player})
	return nil
}

func (s *GameState) UndoLast() error {
	entry, ok := s.History.PopLast()
	if !ok {
		return ErrEmptyHistory
	}
	s.Board.Remove(entry.Move.X, entry.Move.Y)
	return nil
}

func otherPlayer(player PlayerColor) PlayerColor {
	if player == PlayerBlack {
		return PlayerWhite
	}
	return PlayerBlack
}
