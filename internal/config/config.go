package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds the configuration for the application.
type Config struct {
	MealCount     int
	MealsPerBatch int
	PeoplePerMeal int
	MaxTries      int

	// Seed drives the random source when HasSeed is true.
	Seed    uint64
	HasSeed bool

	// Month is 1-12; zero means the current month.
	Month       int
	CatalogPath string

	// Telegram Config (optional, enables report delivery)
	TelegramBotToken string
	TelegramChatID   int64
}

// NewFromEnv creates a new Config object from environment variables.
func NewFromEnv() (*Config, error) {
	cfg := &Config{
		MealCount:     3,
		MealsPerBatch: 2,
		PeoplePerMeal: 4,
	}

	var err error
	if cfg.MealCount, err = intFromEnv("MEAL_COUNT", cfg.MealCount); err != nil {
		return nil, err
	}
	if cfg.MealsPerBatch, err = intFromEnv("MEALS_PER_BATCH", cfg.MealsPerBatch); err != nil {
		return nil, err
	}
	if cfg.PeoplePerMeal, err = intFromEnv("PEOPLE_PER_MEAL", cfg.PeoplePerMeal); err != nil {
		return nil, err
	}
	if cfg.MaxTries, err = intFromEnv("MAX_TRIES", 0); err != nil {
		return nil, err
	}
	if cfg.Month, err = intFromEnv("PLANNER_MONTH", 0); err != nil {
		return nil, err
	}

	if seed := os.Getenv("PLANNER_SEED"); seed != "" {
		v, err := strconv.ParseUint(seed, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("PLANNER_SEED must be an unsigned integer: %w", err)
		}
		cfg.Seed = v
		cfg.HasSeed = true
	}

	cfg.CatalogPath = os.Getenv("CATALOG_PATH")

	// Telegram Config (Optional)
	cfg.TelegramBotToken = os.Getenv("TELEGRAM_BOT_TOKEN")
	if chatID := os.Getenv("TELEGRAM_CHAT_ID"); chatID != "" {
		v, err := strconv.ParseInt(chatID, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("TELEGRAM_CHAT_ID must be an integer: %w", err)
		}
		cfg.TelegramChatID = v
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the ranges of every numeric setting.
func (c *Config) Validate() error {
	if c.MealCount < 0 {
		return fmt.Errorf("meal count must not be negative, got %d", c.MealCount)
	}
	if c.MealsPerBatch <= 0 {
		return fmt.Errorf("meals per batch must be positive, got %d", c.MealsPerBatch)
	}
	if c.PeoplePerMeal <= 0 {
		return fmt.Errorf("people per meal must be positive, got %d", c.PeoplePerMeal)
	}
	if c.MaxTries < 0 {
		return fmt.Errorf("max tries must not be negative, got %d", c.MaxTries)
	}
	if c.Month < 0 || c.Month > 12 {
		return fmt.Errorf("month must be between 1 and 12, got %d", c.Month)
	}
	if c.TelegramBotToken != "" && c.TelegramChatID == 0 {
		return fmt.Errorf("TELEGRAM_CHAT_ID environment variable not set")
	}
	return nil
}

// TelegramEnabled reports whether the report should also go to Telegram.
func (c *Config) TelegramEnabled() bool {
	return c.TelegramBotToken != "" && c.TelegramChatID != 0
}

func intFromEnv(key string, def int) (int, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer: %w", key, err)
	}
	return v, nil
}
