package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/ukaji3/ratings-go/internal/config"
	"github.com/ukaji3/ratings-go/internal/logging"
	"github.com/ukaji3/ratings-go/pkg/ratings"
	"github.com/ukaji3/ratings-go/pkg/ratings/output"
	"go.uber.org/zap"
)

func runConvert(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if outputPath != "" {
		cfg.Data.Output = outputPath
	}

	logger, err := logging.New(cfg.AppEnv, cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer logger.Sync()

	opts := cfg.Options()
	opts.Logger = logger

	doc, err := ratings.Convert(cfg.Data.RegistryPath(), cfg.Data.WorkbookPath(), opts)
	if err != nil {
		logger.Error("conversion failed", zap.Error(err))
		return fmt.Errorf("conversion failed: %w", err)
	}

	dest := cfg.Data.OutputPath()
	if err := output.WriteFile(dest, doc, pretty); err != nil {
		err = ratings.NewConversionError(ratings.StageOutput, dest, err)
		logger.Error("write failed", zap.Error(err))
		return fmt.Errorf("failed to write output: %w", err)
	}

	color.Green("Wrote %d months for year %d to %s", len(doc.Months), doc.Year, dest)
	return nil
}

// loadConfig reads the configuration and applies command line overrides.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	if dataDir != "" {
		cfg.Data.Dir = dataDir
	}
	if year != 0 {
		cfg.Year = year
	}
	return cfg, nil
}
