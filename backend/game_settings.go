package main

type PlayerType int

const (
	PlayerAI PlayerType = iota
	PlayerHuman
)

const (
	MinBoardSize = 9
	MaxBoardSize = 19
)

type GameSettings struct {
	BoardSize         int        `json:"board_size"`
	WinLength         int        `json:"win_length"`
	BlackType         PlayerType `json:"-"`
	WhiteType         PlayerType `json:"-"`
	BlackDifficulty   Difficulty `json:"black_difficulty"`
	WhiteDifficulty   Difficulty `json:"white_difficulty"`
	BlackStarts       bool       `json:"black_starts"`
	HighlightLastMove bool       `json:"highlight_last_move"`
}

func DefaultGameSettings() GameSettings {
	return GameSettings{
		BoardSize:         15,
		WinLength:         5,
		BlackType:         PlayerAI,
		WhiteType:         PlayerAI,
		BlackDifficulty:   DifficultyMedium,
		WhiteDifficulty:   DifficultyMedium,
		BlackStarts:       true,
		HighlightLastMove: true,
	}
}

func ClampBoardSize(size int) int {
	if size < MinBoardSize {
		return MinBoardSize
	}
	if size > MaxBoardSize {
		return MaxBoardSize
	}
	return size
}

func (s GameSettings) Normalized() GameSettings {
	s.BoardSize = ClampBoardSize(s.BoardSize)
	if s.WinLength <= 0 {
		s.WinLength = 5
	}
	return s
}
