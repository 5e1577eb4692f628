package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"
	"github.com/mkowalczyk/briefdesk/internal/assist"
	"github.com/mkowalczyk/briefdesk/internal/catalog"
	"github.com/mkowalczyk/briefdesk/internal/cli"
	"github.com/mkowalczyk/briefdesk/internal/db"
	"github.com/mkowalczyk/briefdesk/internal/pricing"
	"github.com/mkowalczyk/briefdesk/internal/repository"
	"github.com/mkowalczyk/briefdesk/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Determine DB path: env var or default ~/.briefdesk/briefdesk.db
	dbPath := os.Getenv("BRIEFDESK_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".briefdesk", "briefdesk.db")
	}

	// Determine catalog directory
	catalogDir := os.Getenv("BRIEFDESK_CATALOG")
	if catalogDir == "" {
		// Check for ./catalog in current directory first (development)
		if stat, err := os.Stat("./catalog"); err == nil && stat.IsDir() {
			catalogDir = "./catalog"
		} else {
			// Fall back to ~/.briefdesk/catalog (production)
			home, err := os.UserHomeDir()
			if err != nil {
				return fmt.Errorf("finding home directory: %w", err)
			}
			catalogDir = filepath.Join(home, ".briefdesk", "catalog")
		}
	}

	cat, err := catalog.LoadDir(catalogDir)
	if err != nil {
		return fmt.Errorf("loading catalog from %s: %w", catalogDir, err)
	}

	// Open database
	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	briefRepo := repository.NewSQLiteBriefRepo(database)

	var useCaseObservers []service.UseCaseObserver
	if os.Getenv("BRIEFDESK_DEBUG") != "" {
		useCaseObservers = append(useCaseObservers, service.NewLogUseCaseObserver(os.Stderr))
	}
	briefSvc := service.NewBriefService(briefRepo, cat, useCaseObservers...)

	assistCfg := assist.LoadConfig()
	var assistObserver assist.Observer = assist.NoopObserver{}
	if assistCfg.LogCalls {
		assistObserver = assist.NewLogObserver(os.Stderr)
	}

	app := &cli.App{
		Briefs:  briefSvc,
		Catalog: cat,
		Pricing: pricing.LoadConfig(),
		Assist:  assist.ClientFor(assistCfg, assistObserver),

		Interactive: isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd()),
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
