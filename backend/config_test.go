package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigMissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "absent.env"))
	if err != nil {
		t.Fatalf("missing file must not be an error: %v", err)
	}
	defaults := DefaultConfig()
	if cfg.ServerPort != defaults.ServerPort || cfg.BoardSize != defaults.BoardSize {
		t.Fatalf("expected defaults, got %+v", cfg)
	}
}

func TestLoadConfigReadsEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	content := "BOARD_SIZE=11\nBLACK_DIFFICULTY=hard\nPACE_MS=50\nLOG_MOVES=false\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write env file: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.BoardSize != 11 {
		t.Fatalf("expected board size 11, got %d", cfg.BoardSize)
	}
	if cfg.BlackDifficulty != "hard" {
		t.Fatalf("expected black difficulty hard, got %q", cfg.BlackDifficulty)
	}
	if cfg.PaceMs != 50 {
		t.Fatalf("expected pace 50, got %d", cfg.PaceMs)
	}
	if cfg.LogMoves {
		t.Fatalf("expected move logging disabled")
	}
	if cfg.ServerPort != DefaultConfig().ServerPort {
		t.Fatalf("unset keys must keep defaults, got %q", cfg.ServerPort)
	}
}

func TestConfigGameSettingsTranslation(t *testing.T) {
	cfg := DefaultConfig()
	cfg.BoardSize = 25
	cfg.BlackDifficulty = "hard"
	cfg.WhiteDifficulty = "easy"
	cfg.HighlightLastMove = false

	settings := cfg.GameSettings()
	if settings.BoardSize != MaxBoardSize {
		t.Fatalf("expected clamped board size %d, got %d", MaxBoardSize, settings.BoardSize)
	}
	if settings.BlackDifficulty != DifficultyHard || settings.WhiteDifficulty != DifficultyEasy {
		t.Fatalf("difficulties not translated: %+v", settings)
	}
	if settings.HighlightLastMove {
		t.Fatalf("highlight flag not carried over")
	}

	cfg.BlackDifficulty = "bogus"
	if got := cfg.GameSettings().BlackDifficulty; got != DifficultyMedium {
		t.Fatalf("unknown difficulty must fall back to medium, got %v", got)
	}
}

func TestConfigStoreUpdate(t *testing.T) {
	prev := GetConfig()
	defer configStore.Update(prev)

	cfg := prev
	cfg.PaceMs = 77
	configStore.Update(cfg)
	if got := GetConfig().PaceMs; got != 77 {
		t.Fatalf("expected updated pace 77, got %d", got)
	}
}
