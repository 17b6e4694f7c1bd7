package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand/v2"
	"os"
	"os/signal"
	"syscall"
	"time"

	"seasonal-meal-planner/internal/app"
	"seasonal-meal-planner/internal/catalog"
	"seasonal-meal-planner/internal/config"
	"seasonal-meal-planner/internal/planner"
	"seasonal-meal-planner/internal/sampler"
	"seasonal-meal-planner/internal/telegram"

	"github.com/joho/godotenv"
)

func main() {
	// A missing .env is fine; the environment may already be set.
	_ = godotenv.Load()

	cfg, err := config.NewFromEnv()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	switch os.Args[1] {
	case "plan":
		planCmd := flag.NewFlagSet("plan", flag.ExitOnError)
		meals := planCmd.Int("meals", cfg.MealCount, "Number of meals to plan")
		month := planCmd.Int("month", cfg.Month, "Month (1-12) used for seasonal weights, 0 for the current month")
		seed := planCmd.Uint64("seed", cfg.Seed, "Seed for a reproducible plan")
		maxTries := planCmd.Int("max-tries", cfg.MaxTries, "Attempts allowed per meal, 0 for no limit")
		notify := planCmd.Bool("notify", cfg.TelegramEnabled(), "Send the plan to the configured Telegram chat")
		planCmd.Parse(os.Args[2:])

		cfg.MealCount = *meals
		cfg.Month = *month
		cfg.MaxTries = *maxTries
		planCmd.Visit(func(f *flag.Flag) {
			if f.Name == "seed" {
				cfg.HasSeed = true
			}
		})
		cfg.Seed = *seed
		if err := cfg.Validate(); err != nil {
			log.Fatalf("Invalid arguments: %v", err)
		}

		application, err := buildApp(cfg, *notify)
		if err != nil {
			log.Fatalf("Failed to initialize: %v", err)
		}
		if err := application.GenerateMealPlan(ctx); err != nil {
			log.Fatalf("Planning failed: %v", err)
		}
	case "catalog":
		catalogCmd := flag.NewFlagSet("catalog", flag.ExitOnError)
		month := catalogCmd.Int("month", cfg.Month, "Month (1-12) used for seasonal weights, 0 for the current month")
		catalogCmd.Parse(os.Args[2:])

		cfg.Month = *month
		if err := cfg.Validate(); err != nil {
			log.Fatalf("Invalid arguments: %v", err)
		}

		application, err := buildApp(cfg, false)
		if err != nil {
			log.Fatalf("Failed to initialize: %v", err)
		}
		if err := application.PrintCatalog(); err != nil {
			log.Fatalf("Failed to print catalog: %v", err)
		}
	default:
		fmt.Printf("Unknown command: %s\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
}

func buildApp(cfg *config.Config, notify bool) (*app.App, error) {
	month := cfg.Month
	if month == 0 {
		month = int(time.Now().Month())
	}

	spec := catalog.Default()
	if cfg.CatalogPath != "" {
		var err error
		if spec, err = catalog.LoadSpec(cfg.CatalogPath); err != nil {
			return nil, err
		}
	}
	cat, err := catalog.Build(spec, month)
	if err != nil {
		return nil, err
	}

	seed := cfg.Seed
	if !cfg.HasSeed {
		seed = rand.Uint64()
	}
	log.Printf("Using seed %d", seed)

	mealPlanner, err := planner.NewPlanner(cat, sampler.NewSeeded(seed), planner.Options{
		MealsPerBatch: cfg.MealsPerBatch,
		PeoplePerMeal: cfg.PeoplePerMeal,
		MaxTries:      cfg.MaxTries,
	})
	if err != nil {
		return nil, err
	}

	var notifier app.PlanNotifier
	if notify {
		if !cfg.TelegramEnabled() {
			return nil, fmt.Errorf("-notify needs TELEGRAM_BOT_TOKEN and TELEGRAM_CHAT_ID")
		}
		n, err := telegram.NewNotifier(cfg)
		if err != nil {
			return nil, err
		}
		notifier = n
	}

	return app.NewApp(cfg, cat, mealPlanner, notifier, os.Stdout), nil
}

func printUsage() {
	fmt.Println("Usage: meal-planner <command> [arguments]")
	fmt.Println("\nCommands:")
	fmt.Println("  plan       Plan meals and print the grocery list")
	fmt.Println("  catalog    Show the catalog's seasonal weights")
}
