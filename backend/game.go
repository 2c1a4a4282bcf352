package main

import (
	"math/rand"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Game struct {
	settings    GameSettings
	rules       Rules
	state       GameState
	matchID     string
	blackPlayer IPlayer
	whitePlayer IPlayer
	stats       *SessionStats
	logger      *zap.SugaredLogger
	rng         *rand.Rand
	turnStart   time.Time
}

func NewGame(settings GameSettings) Game {
	g := Game{stats: NewSessionStats()}
	g.Reset(settings)
	return g
}

// SetLogger installs the driver's logger. The engine itself never logs; all
// output happens here in the game loop.
func (g *Game) SetLogger(logger *zap.SugaredLogger) {
	g.logger = logger
}

// SetRandSource pins the rng used to seed AI players, for reproducible runs.
func (g *Game) SetRandSource(rng *rand.Rand) {
	g.rng = rng
	g.createPlayers()
}

func (g *Game) Reset(settings GameSettings) {
	g.settings = settings.Normalized()
	g.rules = NewRules(g.settings)
	g.state.Reset(g.settings)
	g.matchID = uuid.NewString()
	g.createPlayers()
	g.turnStart = time.Now()
}

func (g *Game) Start() {
	if g.state.Status == StatusNotStarted {
		g.state.Status = StatusRunning
		g.turnStart = time.Now()
		g.logMatchup()
	}
}

func (g *Game) State() GameState {
	return g.state.Clone()
}

func (g *Game) Settings() GameSettings {
	return g.settings
}

func (g *Game) MatchID() string {
	return g.matchID
}

func (g *Game) Stats() *SessionStats {
	return g.stats
}

func (g *Game) History() MoveHistory {
	return g.state.History.Clone()
}

func (g *Game) TurnStartedAtMs() int64 {
	if g.turnStart.IsZero() {
		return 0
	}
	return g.turnStart.UnixMilli()
}

// TryApplyMove commits one move for the side to move: place, win check on
// the placed stone, draw check, then alternate. Terminal states feed the
// session statistics.
func (g *Game) TryApplyMove(move Move) (bool, string) {
	if g.state.Status != StatusRunning {
		return false, "game not running"
	}
	if ok, reason := g.rules.IsLegal(g.state, move); !ok {
		g.state.LastMessage = "Illegal move: " + reason
		return false, g.state.LastMessage
	}
	mover := g.state.ToMove
	elapsedMs := float64(time.Since(g.turnStart).Milliseconds())
	if err := g.state.Place(move, mover); err != nil {
		g.state.LastMessage = "Illegal move: " + err.Error()
		return false, g.state.LastMessage
	}
	g.state.History.AmendLastElapsed(elapsedMs)
	g.state.LastMove = move
	g.state.HasLastMove = true
	g.state.LastMessage = ""
	g.logMovePlayed(move, mover, elapsedMs)

	if g.rules.IsWin(g.state.Board, move) {
		if line, ok := g.rules.FindAlignmentLine(g.state.Board, move); ok {
			g.state.WinningLine = line
		}
		if mover == PlayerBlack {
			g.state.Status = StatusBlackWon
		} else {
			g.state.Status = StatusWhiteWon
		}
		g.stats.RecordResult(g.state.Status)
		g.logWin(mover)
		return true, ""
	}
	if g.rules.IsDraw(g.state.Board) {
		g.state.Status = StatusDraw
		g.stats.RecordResult(StatusDraw)
		g.logDraw("board full")
		return true, ""
	}

	g.state.ToMove = otherPlayer(mover)
	g.turnStart = time.Now()
	return true, ""
}

// Tick advances the game by at most one move. Pacing between ticks belongs
// to the caller.
func (g *Game) Tick() bool {
	if g.state.Status != StatusRunning {
		return false
	}
	player := g.currentPlayer()
	if player == nil {
		return false
	}
	if player.IsHuman() {
		human, ok := player.(*HumanPlayer)
		if ok && human.HasPendingMove() {
			applied, _ := g.TryApplyMove(human.TakePendingMove())
			return applied
		}
		return false
	}
	move, ok := player.ChooseMove(g.state.Clone(), g.rules)
	if !ok {
		// No candidate survived: terminal draw, not an error.
		g.state.Status = StatusDraw
		g.stats.RecordResult(StatusDraw)
		g.logDraw("no moves available")
		return true
	}
	applied, _ := g.TryApplyMove(move)
	return applied
}

func (g *Game) SubmitHumanMove(move Move) bool {
	player := g.currentPlayer()
	if player == nil || !player.IsHuman() {
		return false
	}
	human, ok := player.(*HumanPlayer)
	if !ok {
		return false
	}
	human.SetPendingMove(move)
	return true
}

func (g *Game) CurrentPlayerIsHuman() bool {
	player := g.currentPlayer()
	return player != nil && player.IsHuman()
}

func (g *Game) currentPlayer() IPlayer {
	return g.playerForColor(g.state.ToMove)
}

func (g *Game) playerForColor(color PlayerColor) IPlayer {
	if color == PlayerBlack {
		return g.blackPlayer
	}
	return g.whitePlayer
}

func (g *Game) createPlayers() {
	rng := g.rng
	if g.settings.BlackType == PlayerHuman {
		g.blackPlayer = NewHumanPlayer()
	} else {
		g.blackPlayer = NewAIPlayer(g.settings.BlackDifficulty, rng)
	}
	if g.settings.WhiteType == PlayerHuman {
		g.whitePlayer = NewHumanPlayer()
	} else {
		g.whitePlayer = NewAIPlayer(g.settings.WhiteDifficulty, rng)
	}
}

func (g *Game) logMatchup() {
	if g.logger == nil {
		return
	}
	label := func(t PlayerType, d Difficulty) string {
		if t == PlayerHuman {
			return "Human"
		}
		return "AI/" + d.String()
	}
	g.logger.Infow("match started",
		"match_id", g.matchID,
		"board_size", g.settings.BoardSize,
		"black", label(g.settings.BlackType, g.settings.BlackDifficulty),
		"white", label(g.settings.WhiteType, g.settings.WhiteDifficulty),
	)
}

func (g *Game) logMovePlayed(move Move, player PlayerColor, elapsedMs float64) {
	if g.logger == nil {
		return
	}
	g.logger.Infow("move played",
		"match_id", g.matchID,
		"player", CellFromPlayer(player).String(),
		"x", move.X,
		"y", move.Y,
		"move_number", g.state.History.Size(),
		"elapsed_ms", elapsedMs,
	)
}

func (g *Game) logWin(player PlayerColor) {
	if g.logger == nil {
		return
	}
	g.logger.Infow("five in a row",
		"match_id", g.matchID,
		"winner", CellFromPlayer(player).String(),
		"moves", g.state.History.Size(),
	)
}

func (g *Game) logDraw(reason string) {
	if g.logger == nil {
		return
	}
	g.logger.Infow("draw",
		"match_id", g.matchID,
		"reason", reason,
		"moves", g.state.History.Size(),
	)
}
