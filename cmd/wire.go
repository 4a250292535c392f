package cmd

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/viper"

	"github.com/bnema/bounty-board-cli/internal/adapters/analyzer/gemini"
	boardadapter "github.com/bnema/bounty-board-cli/internal/adapters/render/board"
	"github.com/bnema/bounty-board-cli/internal/adapters/repo/memory"
	"github.com/bnema/bounty-board-cli/internal/adapters/wallet/simulated"
	"github.com/bnema/bounty-board-cli/internal/application"
	"github.com/bnema/bounty-board-cli/internal/domain"
	"github.com/bnema/bounty-board-cli/internal/ports"
)

const (
	configName = "config"
	configType = "toml"
	configDir  = "bountyboard"
)

type app struct {
	service       *application.Service
	boardRenderer func([]domain.Bounty, boardadapter.RenderOptions) (string, error)
	now           func() time.Time
}

func wireApp() (*app, error) {
	cfg, err := loadConfig(viper.New())
	if err != nil {
		return nil, err
	}

	clock := ports.SystemClock{}
	repo := memory.NewSeededRepository(clock)

	balance, err := decimal.NewFromString(cfg.GetString("wallet.balance_usdc"))
	if err != nil {
		return nil, fmt.Errorf("parse wallet balance: %w", err)
	}

	delay, err := connectDelay(cfg)
	if err != nil {
		return nil, err
	}

	wallet := simulated.NewProvider(cfg.GetString("wallet.address"), balance, delay)

	analyzer := gemini.NewClient(
		http.DefaultClient,
		envOrDefault("BB_GEMINI_BASE_URL", cfg.GetString("gemini.base_url")),
		envOrDefault("BB_GEMINI_MODEL", cfg.GetString("gemini.model")),
		envOrDefault("GEMINI_API_KEY", cfg.GetString("gemini.api_key")),
	)

	return &app{
		service:       application.NewService(repo, wallet, analyzer, clock),
		boardRenderer: boardadapter.Render,
		now:           time.Now,
	}, nil
}

func loadConfig(cfg *viper.Viper) (*viper.Viper, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("resolve home directory: %w", err)
	}

	cfg.SetConfigName(configName)
	cfg.SetConfigType(configType)
	cfg.AddConfigPath(filepath.Join(homeDir, ".config", configDir))

	cfg.SetDefault("gemini.base_url", gemini.DefaultBaseURL)
	cfg.SetDefault("gemini.model", gemini.DefaultModel)
	cfg.SetDefault("gemini.api_key", "")
	cfg.SetDefault("wallet.address", simulated.DefaultAddress)
	cfg.SetDefault("wallet.balance_usdc", simulated.DefaultBalanceUSDC.String())
	cfg.SetDefault("wallet.connect_delay_ms", int(simulated.DefaultDelay/time.Millisecond))

	if err := cfg.ReadInConfig(); err != nil {
		var configNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configNotFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	return cfg, nil
}

func connectDelay(cfg *viper.Viper) (time.Duration, error) {
	raw := envOrDefault("BB_CONNECT_DELAY_MS", strconv.Itoa(cfg.GetInt("wallet.connect_delay_ms")))
	ms, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("parse wallet connect delay %q: %w", raw, err)
	}

	return time.Duration(ms) * time.Millisecond, nil
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
