package main

import (
	"context"
	"encoding/json"
	"errors"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

type StatusResponse struct {
	MatchID         string            `json:"match_id"`
	Settings        GameSettingsDTO   `json:"settings"`
	Config          Config            `json:"config"`
	NextPlayer      int               `json:"next_player"`
	Winner          int               `json:"winner"`
	BoardSize       int               `json:"board_size"`
	Status          string            `json:"status"`
	Board           [][]int           `json:"board"`
	History         []historyEntryDTO `json:"history"`
	WinningLine     []Move            `json:"winning_line"`
	Stats           StatsSnapshot     `json:"stats"`
	TurnStartedAtMs int64             `json:"turn_started_at_ms"`
}

type GameSettingsDTO struct {
	Mode              string `json:"mode"`
	HumanPlayer       int    `json:"human_player"`
	BoardSize         int    `json:"board_size"`
	BlackDifficulty   string `json:"black_difficulty"`
	WhiteDifficulty   string `json:"white_difficulty"`
	HighlightLastMove bool   `json:"highlight_last_move"`
}

type apiMove struct {
	X int `json:"x"`
	Y int `json:"y"`
}

type historyEntryDTO struct {
	X         int     `json:"x"`
	Y         int     `json:"y"`
	Player    int     `json:"player"`
	ElapsedMs float64 `json:"elapsed_ms"`
}

func main() {
	logger := newLogger()
	defer logger.Sync()

	cfg, err := LoadConfig(".env")
	if err != nil {
		logger.Fatalw("failed to load configuration", zap.Error(err))
	}
	configStore.Update(cfg)

	controller := NewGameController(cfg.GameSettings())
	if cfg.LogMoves {
		controller.SetLogger(logger)
	}
	if cfg.RngSeed != 0 {
		controller.SetRandSource(rand.New(rand.NewSource(cfg.RngSeed)))
	}

	hub := NewHub()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go hub.Run(ctx.Done())
	go runGameLoop(ctx, controller, hub)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	r.Get("/api/ping", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
	})

	r.Get("/api/status", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, controllerStatus(controller))
	})

	r.Post("/api/start", func(w http.ResponseWriter, r *http.Request) {
		var payload struct {
			Settings GameSettingsDTO `json:"settings"`
		}
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid payload"})
			return
		}
		settings := settingsFromDTO(payload.Settings, controller.Settings())
		controller.StartGame(settings)
		writeJSON(w, http.StatusOK, controllerStatus(controller))
		hub.broadcastReset <- resetPayload{MatchID: controller.MatchID(), BoardSize: settings.BoardSize}
	})

	r.Post("/api/stop", func(w http.ResponseWriter, r *http.Request) {
		controller.Reset(controller.Settings())
		writeJSON(w, http.StatusOK, controllerStatus(controller))
		hub.broadcastReset <- resetPayload{MatchID: controller.MatchID(), BoardSize: controller.Settings().BoardSize}
	})

	r.Post("/api/settings", func(w http.ResponseWriter, r *http.Request) {
		var payload struct {
			Settings *GameSettingsDTO `json:"settings"`
			Config   *Config          `json:"config"`
		}
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid payload"})
			return
		}
		if payload.Config != nil {
			configStore.Update(*payload.Config)
		}
		if payload.Settings != nil {
			controller.UpdateSettings(settingsFromDTO(*payload.Settings, controller.Settings()), false)
		}
		writeJSON(w, http.StatusOK, controllerStatus(controller))
	})

	r.Get("/api/config", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, GetConfig())
	})

	r.Get("/api/stats", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, controller.StatsSnapshot())
	})

	r.Post("/api/stats/reset", func(w http.ResponseWriter, r *http.Request) {
		controller.ResetStats()
		writeJSON(w, http.StatusOK, controller.StatsSnapshot())
	})

	r.Post("/api/move", func(w http.ResponseWriter, r *http.Request) {
		var payload apiMove
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid payload"})
			return
		}
		applied, errMsg := controller.ApplyHumanMove(Move{X: payload.X, Y: payload.Y})
		if !applied {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": errMsg})
			return
		}
		hub.broadcastStatus <- controllerStatus(controller)
		writeJSON(w, http.StatusOK, controllerStatus(controller))
	})

	r.Get("/ws/", func(w http.ResponseWriter, r *http.Request) {
		serveWS(hub, controller, w, r)
	})

	server := &http.Server{
		Addr:    cfg.ServerPort,
		Handler: r,
	}
	serverErrCh := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErrCh <- err
		}
		close(serverErrCh)
	}()

	sigCtx, stopSignals := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stopSignals()

	logger.Infow("backend listening", "addr", cfg.ServerPort)
	select {
	case <-sigCtx.Done():
		logger.Infow("shutdown signal received")
	case err, ok := <-serverErrCh:
		if ok {
			logger.Errorw("server error", zap.Error(err))
		}
	}

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()
	if err := server.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Errorw("graceful shutdown failed", zap.Error(err))
		if closeErr := server.Close(); closeErr != nil && !errors.Is(closeErr, http.ErrServerClosed) {
			logger.Errorw("forced close failed", zap.Error(closeErr))
		}
	}
	cancel()
}

func newLogger() *zap.SugaredLogger {
	logger, err := zap.NewProduction()
	if err != nil {
		panic("failed to initialize logger: " + err.Error())
	}
	return logger.Sugar()
}

// runGameLoop ticks the match forward. The tick interval is the pacing delay
// between displayed moves; the engine itself computes synchronously inside
// Tick and never sleeps.
func runGameLoop(ctx context.Context, controller *GameController, hub *Hub) {
	for {
		paceMs := GetConfig().PaceMs
		if paceMs < 10 {
			paceMs = 10
		}
		select {
		case <-ctx.Done():
			return
		case <-time.After(time.Duration(paceMs) * time.Millisecond):
			if controller.Tick() {
				hub.broadcastBoard <- boardFromController(controller)
				hub.broadcastStatus <- controllerStatus(controller)
			}
		}
	}
}

func controllerStatus(controller *GameController) StatusResponse {
	state := controller.State()
	settings := controller.Settings()
	return StatusResponse{
		MatchID:         controller.MatchID(),
		Settings:        controllerSettingsDTO(settings),
		Config:          GetConfig(),
		NextPlayer:      playerToInt(state.ToMove),
		Winner:          winnerFromStatus(state.Status),
		BoardSize:       state.Board.Size(),
		Status:          statusToString(state.Status),
		Board:           boardToSlice(state.Board),
		History:         historyToDTO(state.History),
		WinningLine:     append([]Move(nil), state.WinningLine...),
		Stats:           controller.StatsSnapshot(),
		TurnStartedAtMs: controller.CurrentTurnStartedAtMs(),
	}
}

func boardFromController(controller *GameController) boardPayload {
	state := controller.State()
	payload := boardPayload{
		Board:      boardToSlice(state.Board),
		NextPlayer: playerToInt(state.ToMove),
		Winner:     winnerFromStatus(state.Status),
		MoveCount:  state.History.Size(),
		Status:     statusToString(state.Status),
	}
	if state.HasLastMove && controller.Settings().HighlightLastMove {
		last := state.LastMove
		payload.LastMove = &last
	}
	return payload
}

func settingsFromDTO(dto GameSettingsDTO, base GameSettings) GameSettings {
	settings := base
	switch dto.Mode {
	case "ai_vs_ai":
		settings.BlackType = PlayerAI
		settings.WhiteType = PlayerAI
	case "human_vs_human":
		settings.BlackType = PlayerHuman
		settings.WhiteType = PlayerHuman
	case "ai_vs_human":
		if dto.HumanPlayer == 2 {
			settings.BlackType = PlayerAI
			settings.WhiteType = PlayerHuman
		} else {
			settings.BlackType = PlayerHuman
			settings.WhiteType = PlayerAI
		}
	}
	if dto.BoardSize != 0 {
		settings.BoardSize = ClampBoardSize(dto.BoardSize)
	}
	if d, ok := ParseDifficulty(dto.BlackDifficulty); ok {
		settings.BlackDifficulty = d
	}
	if d, ok := ParseDifficulty(dto.WhiteDifficulty); ok {
		settings.WhiteDifficulty = d
	}
	settings.HighlightLastMove = dto.HighlightLastMove
	return settings
}

func controllerSettingsDTO(settings GameSettings) GameSettingsDTO {
	mode := "ai_vs_human"
	if settings.BlackType == PlayerAI && settings.WhiteType == PlayerAI {
		mode = "ai_vs_ai"
	} else if settings.BlackType == PlayerHuman && settings.WhiteType == PlayerHuman {
		mode = "human_vs_human"
	}
	humanPlayer := 0
	if settings.BlackType == PlayerHuman {
		humanPlayer = 1
	} else if settings.WhiteType == PlayerHuman {
		humanPlayer = 2
	}
	return GameSettingsDTO{
		Mode:              mode,
		HumanPlayer:       humanPlayer,
		BoardSize:         settings.BoardSize,
		BlackDifficulty:   settings.BlackDifficulty.String(),
		WhiteDifficulty:   settings.WhiteDifficulty.String(),
		HighlightLastMove: settings.HighlightLastMove,
	}
}

func historyToDTO(history MoveHistory) []historyEntryDTO {
	entries := history.All()
	out := make([]historyEntryDTO, 0, len(entries))
	for _, entry := range entries {
		out = append(out, historyEntryDTO{
			X:         entry.Move.X,
			Y:         entry.Move.Y,
			Player:    playerToInt(entry.Player),
			ElapsedMs: entry.ElapsedMs,
		})
	}
	return out
}

func boardToSlice(board Board) [][]int {
	size := board.Size()
	rows := make([][]int, size)
	for y := 0; y < size; y++ {
		rows[y] = make([]int, size)
		for x := 0; x < size; x++ {
			rows[y][x] = cellToInt(board.At(x, y))
		}
	}
	return rows
}

func cellToInt(cell Cell) int {
	switch cell {
	case CellBlack:
		return 1
	case CellWhite:
		return 2
	default:
		return 0
	}
}

func playerToInt(player PlayerColor) int {
	if player == PlayerBlack {
		return 1
	}
	return 2
}

func statusToString(status GameStatus) string {
	switch status {
	case StatusRunning:
		return "running"
	case StatusBlackWon:
		return "black_won"
	case StatusWhiteWon:
		return "white_won"
	case StatusDraw:
		return "draw"
	default:
		return "not_started"
	}
}

func winnerFromStatus(status GameStatus) int {
	switch status {
	case StatusBlackWon:
		return 1
	case StatusWhiteWon:
		return 2
	default:
		return 0
	}
}

func writeJSON(w http.ResponseWriter, statusCode int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(payload)
}

func mustMarshal(payload any) json.RawMessage {
	data, err := json.Marshal(payload)
	if err != nil {
		return json.RawMessage("{}")
	}
	return data
}
