package main

import "sync"

// SessionStats counts finished games for the current process. Nothing here
// survives a restart.
type SessionStats struct {
	mu         sync.Mutex
	blackWins  int
	whiteWins  int
	draws      int
	totalGames int
}

type StatsSnapshot struct {
	BlackWins    int     `json:"black_wins"`
	WhiteWins    int     `json:"white_wins"`
	Draws        int     `json:"draws"`
	TotalGames   int     `json:"total_games"`
	BlackWinRate float64 `json:"black_win_rate"`
	WhiteWinRate float64 `json:"white_win_rate"`
	DrawRate     float64 `json:"draw_rate"`
}

func NewSessionStats() *SessionStats {
	return &SessionStats{}
}

func (s *SessionStats) RecordResult(status GameStatus) {
	s.mu.Lock()
	defer s.mu.Unlock()
	switch status {
	case StatusBlackWon:
		s.blackWins++
	case StatusWhiteWon:
		s.whiteWins++
	case StatusDraw:
		s.draws++
	default:
		return
	}
	s.totalGames++
}

func (s *SessionStats) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.blackWins = 0
	s.whiteWins = 0
	s.draws = 0
	s.totalGames = 0
}

func (s *SessionStats) Snapshot() StatsSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	snap := StatsSnapshot{
		BlackWins:  s.blackWins,
		WhiteWins:  s.whiteWins,
		Draws:      s.draws,
		TotalGames: s.totalGames,
	}
	if s.totalGames > 0 {
		total := float64(s.totalGames)
		snap.BlackWinRate = float64(s.blackWins) / total
		snap.WhiteWinRate = float64(s.whiteWins) / total
		snap.DrawRate = float64(s.draws) / total
	}
	return snap
}
