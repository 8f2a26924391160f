package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Soneshaps/musicgpt-clone/cache"
	"github.com/Soneshaps/musicgpt-clone/db"
	"github.com/Soneshaps/musicgpt-clone/utils"
)

var (
	seedReset bool

	seedCmd = &cobra.Command{
		Use:   "seed",
		Short: "Load the stock voice catalog",
		RunE:  runSeed,
	}
)

func init() {
	seedCmd.Flags().BoolVar(&seedReset, "reset", false, "delete existing voices before seeding")
}

func runSeed(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	database, err := openDatabase(cmd.Context(), cfg, logger)
	if err != nil {
		return err
	}
	defer database.Close()

	if _, err := db.NewSchemaMigrator(database.GetDB()).Up(); err != nil {
		return err
	}

	backend, err := cache.New(cfg)
	if err != nil {
		printWarning(fmt.Sprintf("Failed to connect to cache: %v (cached pages expire on their own)", err))
		backend = cache.NopCache{}
	}
	defer backend.Close()

	printStep("seed", "Seeding voices...")
	result, err := seedCatalog(utils.WithLogger(cmd.Context(), logger), database.GetDB(), backend, seedReset)
	if err != nil {
		return err
	}
	if result.Skipped {
		printWarning("Voices already present, skipping (use --reset to replace them)")
		return nil
	}
	printSuccess(fmt.Sprintf("Seeded %d voices", result.Inserted))
	return nil
}

// seedCatalog seeds voices and drops cached lookups when rows were inserted,
// since cached pages may reference voices a reset removed.
func seedCatalog(ctx context.Context, gdb *gorm.DB, c cache.Cache, reset bool) (db.SeedResult, error) {
	result, err := db.SeedVoices(ctx, gdb, reset)
	if err != nil || result.Inserted == 0 {
		return result, err
	}
	if err := c.FlushAll(ctx); err != nil {
		utils.FromContext(ctx).Warn("cache flush after seed failed", zap.Error(err))
	}
	return result, nil
}
