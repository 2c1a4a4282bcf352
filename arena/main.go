package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"
	"time"
)

type arena struct {
	client       *http.Client
	baseURL      string
	pollInterval time.Duration
	logger       *log.Logger
	renderFinal  bool
}

type statusResponse struct {
	MatchID   string      `json:"match_id"`
	Status    string      `json:"status"`
	Winner    int         `json:"winner"`
	BoardSize int         `json:"board_size"`
	Board     [][]int     `json:"board"`
	History   []moveEntry `json:"history"`
}

type moveEntry struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Player int `json:"player"`
}

type startRequest struct {
	Settings settingsDTO `json:"settings"`
}

type settingsDTO struct {
	Mode              string `json:"mode"`
	BoardSize         int    `json:"board_size"`
	BlackDifficulty   string `json:"black_difficulty"`
	WhiteDifficulty   string `json:"white_difficulty"`
	HighlightLastMove bool   `json:"highlight_last_move"`
}

func main() {
	baseURL := flag.String("addr", "http://localhost:8080", "backend base URL")
	games := flag.Int("games", 10, "number of games to play")
	size := flag.Int("size", 15, "board size (9-19)")
	black := flag.String("black", "medium", "black difficulty (easy|medium|hard)")
	white := flag.String("white", "medium", "white difficulty (easy|medium|hard)")
	poll := flag.Duration("poll", 200*time.Millisecond, "status poll interval")
	render := flag.Bool("render", false, "render the final board of each game")
	flag.Parse()

	a := &arena{
		client:       &http.Client{Timeout: 10 * time.Second},
		baseURL:      strings.TrimRight(*baseURL, "/"),
		pollInterval: *poll,
		logger:       log.New(os.Stdout, "[arena] ", log.LstdFlags),
		renderFinal:  *render,
	}

	settings := settingsDTO{
		Mode:            "ai_vs_ai",
		BoardSize:       *size,
		BlackDifficulty: *black,
		WhiteDifficulty: *white,
	}

	blackWins, whiteWins, draws := 0, 0, 0
	for i := 0; i < *games; i++ {
		a.logger.Printf("game %d/%d starting (black=%s white=%s size=%d)", i+1, *games, *black, *white, *size)
		final, err := a.runGame(settings)
		if err != nil {
			a.logger.Printf("game %d aborted: %v", i+1, err)
			os.Exit(1)
		}
		switch final.Winner {
		case 1:
			blackWins++
			a.logger.Printf("game %d: black wins in %d moves", i+1, len(final.History))
		case 2:
			whiteWins++
			a.logger.Printf("game %d: white wins in %d moves", i+1, len(final.History))
		default:
			draws++
			a.logger.Printf("game %d: draw after %d moves", i+1, len(final.History))
		}
		if a.renderFinal {
			fmt.Print(renderBoard(final.Board))
		}
	}

	total := blackWins + whiteWins + draws
	a.logger.Printf("finished %d games: black=%d white=%d draws=%d", total, blackWins, whiteWins, draws)
	if total > 0 {
		a.logger.Printf("rates: black=%.1f%% white=%.1f%% draw=%.1f%%",
			pct(blackWins, total), pct(whiteWins, total), pct(draws, total))
	}
}

func (a *arena) runGame(settings settingsDTO) (statusResponse, error) {
	body, err := json.Marshal(startRequest{Settings: settings})
	if err != nil {
		return statusResponse{}, err
	}
	resp, err := a.client.Post(a.baseURL+"/api/start", "application/json", bytes.NewReader(body))
	if err != nil {
		return statusResponse{}, err
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return statusResponse{}, fmt.Errorf("start returned %s", resp.Status)
	}

	for {
		time.Sleep(a.pollInterval)
		status, err := a.fetchStatus()
		if err != nil {
			return statusResponse{}, err
		}
		if status.Status != "running" {
			return status, nil
		}
	}
}

func (a *arena) fetchStatus() (statusResponse, error) {
	resp, err := a.client.Get(a.baseURL + "/api/status")
	if err != nil {
		return statusResponse{}, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return statusResponse{}, fmt.Errorf("status returned %s", resp.Status)
	}
	var status statusResponse
	if err := json.NewDecoder(resp.Body).Decode(&status); err != nil {
		return statusResponse{}, err
	}
	return status, nil
}

func renderBoard(board [][]int) string {
	var sb strings.Builder
	sb.WriteString("    ")
	for x := range board {
		fmt.Fprintf(&sb, "%2d ", x)
	}
	sb.WriteString("\n")
	for y, row := range board {
		fmt.Fprintf(&sb, "%2d ", y)
		for _, cell := range row {
			switch cell {
			case 1:
				sb.WriteString(" X ")
			case 2:
				sb.WriteString(" O ")
			default:
				sb.WriteString(" . ")
			}
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

func pct(part, total int) float64 {
	return float64(part) * 100.0 / float64(total)
}
