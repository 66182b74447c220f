// backend/cmd/seed/main.go
//
// Catalog verifier and daily-cache warmer. Checks the compiled-in content
// catalogs for integrity and optionally precomputes the next N days of
// daily selections into Redis so the first morning request of each day is
// a cache hit.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/tinysprout/garbha/backend/internal/catalog"
	"github.com/tinysprout/garbha/backend/internal/config"
	"github.com/tinysprout/garbha/backend/internal/database"
	"github.com/tinysprout/garbha/backend/internal/services"
	"github.com/tinysprout/garbha/backend/pkg/utils"
)

var (
	dryRun  = flag.Bool("dry-run", false, "Verify catalogs and print selections without touching Redis")
	verbose = flag.Bool("verbose", false, "Enable verbose logging")
	days    = flag.Int("days", 7, "Number of days of daily selections to pre-warm")
)

func main() {
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file found: %v", err)
	}

	logger := utils.GetLogger()
	if *verbose {
		logger.SetLevel(logrus.DebugLevel)
	}

	logger.Info("Verifying content catalogs...")

	for _, cat := range catalog.All() {
		for _, it := range cat.Items() {
			if it.Title == "" {
				logger.WithFields(logrus.Fields{
					"kind": cat.Kind(),
					"id":   it.ID,
				}).Fatal("Catalog item missing title")
			}
		}
		logger.WithFields(logrus.Fields{
			"kind":  cat.Kind(),
			"items": cat.Len(),
		}).Info("Catalog verified")
	}

	var dailyService *services.DailyService

	if *dryRun {
		dailyService = services.NewDailyService(nil, logger)
	} else {
		cfg, err := config.Load()
		if err != nil {
			logger.WithError(err).Fatal("Failed to load configuration")
		}

		dbConfig := &database.Config{
			DatabaseURL: cfg.Database.URL,
			RedisURL:    cfg.Redis.URL,
			LogLevel:    os.Getenv("LOG_LEVEL"),
		}
		dbManager, err := database.NewManager(dbConfig, logger)
		if err != nil {
			logger.WithError(err).Fatal("Failed to initialize database manager")
		}
		defer dbManager.Close()

		dailyService = services.NewDailyService(database.NewCache(dbManager.Redis, logger), logger)
	}

	ctx := context.Background()
	kinds := []catalog.Kind{
		catalog.KindWord,
		catalog.KindPuzzle,
		catalog.KindFact,
		catalog.KindTeaser,
		catalog.KindMindfulness,
	}

	for d := 0; d < *days; d++ {
		date := time.Now().AddDate(0, 0, d)
		for _, kind := range kinds {
			selection, err := dailyService.Selection(ctx, kind, date, 0)
			if err != nil {
				logger.WithError(err).WithField("kind", kind).Fatal("Daily selection failed")
			}

			ids := make([]string, 0, len(selection.Items))
			for _, it := range selection.Items {
				ids = append(ids, it.ID)
			}
			logger.WithFields(logrus.Fields{
				"date":  selection.Date,
				"kind":  kind,
				"items": ids,
			}).Debug("Selection computed")
		}
		logger.WithField("date", date.Format("2006-01-02")).Info("Day pre-warmed")
	}

	logger.Info("Seeding completed successfully!")
}
