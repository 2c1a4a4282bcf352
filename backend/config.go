package main

import (
	"os"
	"sync"

	"github.com/spf13/viper"
)

type Config struct {
	ServerPort        string `json:"server_port" mapstructure:"SERVER_PORT"`
	PaceMs            int    `json:"pace_ms" mapstructure:"PACE_MS"`
	RngSeed           int64  `json:"rng_seed" mapstructure:"RNG_SEED"`
	BoardSize         int    `json:"board_size" mapstructure:"BOARD_SIZE"`
	BlackDifficulty   string `json:"black_difficulty" mapstructure:"BLACK_DIFFICULTY"`
	WhiteDifficulty   string `json:"white_difficulty" mapstructure:"WHITE_DIFFICULTY"`
	HighlightLastMove bool   `json:"highlight_last_move" mapstructure:"HIGHLIGHT_LAST_MOVE"`
	LogMoves          bool   `json:"log_moves" mapstructure:"LOG_MOVES"`
}

func DefaultConfig() Config {
	return Config{
		ServerPort: ":8080",
		// Pacing is display-only; the engine itself never sleeps.
		PaceMs:            300,
		RngSeed:           0, // 0 seeds from the clock
		BoardSize:         15,
		BlackDifficulty:   DifficultyMedium.String(),
		WhiteDifficulty:   DifficultyMedium.String(),
		HighlightLastMove: true,
		LogMoves:          true,
	}
}

// LoadConfig reads an optional env-style file and the process environment on
// top of the defaults. A missing file is not an error.
func LoadConfig(cfgPath string) (Config, error) {
	defaults := DefaultConfig()
	v := viper.New()
	v.SetDefault("SERVER_PORT", defaults.ServerPort)
	v.SetDefault("PACE_MS", defaults.PaceMs)
	v.SetDefault("RNG_SEED", defaults.RngSeed)
	v.SetDefault("BOARD_SIZE", defaults.BoardSize)
	v.SetDefault("BLACK_DIFFICULTY", defaults.BlackDifficulty)
	v.SetDefault("WHITE_DIFFICULTY", defaults.WhiteDifficulty)
	v.SetDefault("HIGHLIGHT_LAST_MOVE", defaults.HighlightLastMove)
	v.SetDefault("LOG_MOVES", defaults.LogMoves)
	v.AutomaticEnv()
	if cfgPath != "" {
		if _, err := os.Stat(cfgPath); err == nil {
			v.SetConfigFile(cfgPath)
			v.SetConfigType("env")
			if err := v.ReadInConfig(); err != nil {
				return defaults, err
			}
		}
	}
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return defaults, err
	}
	return cfg, nil
}

// GameSettings translates the static config into initial game settings.
func (c Config) GameSettings() GameSettings {
	settings := DefaultGameSettings()
	settings.BoardSize = ClampBoardSize(c.BoardSize)
	if d, ok := ParseDifficulty(c.BlackDifficulty); ok {
		settings.BlackDifficulty = d
	}
	if d, ok := ParseDifficulty(c.WhiteDifficulty); ok {
		settings.WhiteDifficulty = d
	}
	settings.HighlightLastMove = c.HighlightLastMove
	return settings
}

type ConfigStore struct {
	mu     sync.RWMutex
	config Config
}

var configStore = &ConfigStore{config: DefaultConfig()}

func GetConfig() Config {
	return configStore.Get()
}

func (c *ConfigStore) Get() Config {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.config
}

func (c *ConfigStore) Update(newConfig Config) {
	c.mu.Lock()
	c.config = newConfig
	c.mu.Unlock()
}
