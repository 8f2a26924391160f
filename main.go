package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Soneshaps/musicgpt-clone/config"
	dbsetup "github.com/Soneshaps/musicgpt-clone/config/db"
	"github.com/Soneshaps/musicgpt-clone/utils"
)

const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorBlue   = "\033[34m"
	colorPurple = "\033[35m"
	colorCyan   = "\033[36m"
	colorBold   = "\033[1m"
)

var (
	// Version is set at build time.
	Version = "dev"

	configFile string

	rootCmd = &cobra.Command{
		Use:           "musicgpt",
		Short:         "MusicGPT voice catalog and generation request API",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       Version,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			if configFile != "" {
				_ = os.Setenv("CONFIG_FILE", configFile)
			}
		},
		RunE: runServe,
	}
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "path to a JSON config file (default config/config.json)")
	rootCmd.AddCommand(serveCmd, migrateCmd, seedCmd)
}

func printBanner() {
	fmt.Printf("%s%s", colorCyan, colorBold)
	fmt.Println("╔══════════════════════════════════════════════════════════════╗")
	fmt.Println("║                                                              ║")
	fmt.Println("║  🎵 MusicGPT API                                             ║")
	fmt.Println("║                                                              ║")
	fmt.Println("║  Voice catalog and generation requests                       ║")
	fmt.Println("║                                                              ║")
	fmt.Println("╚══════════════════════════════════════════════════════════════╝")
	fmt.Printf("%s", colorReset)
}

func printStep(step, message string) {
	fmt.Printf("%s[%s]%s %s%s%s\n", colorBlue, step, colorReset, colorBold, message, colorReset)
}

func printSuccess(message string) {
	fmt.Printf("%s✓%s %s\n", colorGreen, colorReset, message)
}

func printWarning(message string) {
	fmt.Printf("%s⚠%s %s\n", colorYellow, colorReset, message)
}

func printError(message string) {
	fmt.Printf("%s✗%s %s\n", colorRed, colorReset, message)
}

func printInfo(message string) {
	fmt.Printf("%sℹ%s %s\n", colorCyan, colorReset, message)
}

// loadConfig loads and validates configuration.
func loadConfig() (*config.Config, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return cfg, nil
}

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	logger, err := utils.NewLogger(utils.LogConfig{
		Level:      cfg.Logging.Level,
		Format:     cfg.Logging.Format,
		Dir:        cfg.Logging.Dir,
		MaxSizeMB:  cfg.Logging.MaxSizeMB,
		MaxBackups: cfg.Logging.MaxBackups,
		MaxAgeDays: cfg.Logging.MaxAgeDays,
		Compress:   true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}
	utils.SetDefault(logger)
	return logger, nil
}

func openDatabase(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*dbsetup.DB, error) {
	return dbsetup.CreateDB(ctx, dbsetup.Options{
		Driver:       cfg.Database.Driver,
		PrimaryDSN:   cfg.GetDatabaseURL(),
		ReplicaDSNs:  cfg.Database.ReplicaDSNs,
		MaxOpenConns: cfg.Database.MaxOpenConns,
		MaxIdleConns: cfg.Database.MaxIdleConns,
		MaxLifetime:  cfg.Database.MaxLifetime.Std(),
		MaxIdleTime:  cfg.Database.MaxIdleTime.Std(),
		LogQueries:   cfg.Database.LogQueries,
	}, logger)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		printError(err.Error())
		os.Exit(1)
	}
}
