package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Soneshaps/musicgpt-clone/db"
)

var (
	migrateStatus bool
	migrateDownTo string

	migrateCmd = &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending schema migrations",
		RunE:  runMigrate,
	}
)

func init() {
	migrateCmd.Flags().BoolVar(&migrateStatus, "status", false, "list migrations and whether they are applied")
	migrateCmd.Flags().StringVar(&migrateDownTo, "down-to", "", "roll back migrations newer than this version")
}

func runMigrate(cmd *cobra.Command, _ []string) error {
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

	migrator := db.NewSchemaMigrator(database.GetDB())

	switch {
	case migrateStatus:
		statuses, err := migrator.Status()
		if err != nil {
			return err
		}
		for _, s := range statuses {
			mark := " "
			if s.Applied {
				mark = "x"
			}
			fmt.Printf("[%s] %s %s\n", mark, s.Version, s.Name)
		}
		return nil

	case migrateDownTo != "":
		if err := migrator.Down(migrateDownTo); err != nil {
			return err
		}
		printSuccess(fmt.Sprintf("Rolled back to %s", migrateDownTo))
		return nil
	}

	applied, err := migrator.Up()
	if err != nil {
		return err
	}
	if len(applied) == 0 {
		printInfo("Schema already up to date")
		return nil
	}
	for _, v := range applied {
		printSuccess("Applied " + v)
	}
	return nil
}
