package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/ukaji3/ratings-go/internal/config"
	"github.com/ukaji3/ratings-go/internal/logging"
	"github.com/ukaji3/ratings-go/pkg/ratings"
	"github.com/ukaji3/ratings-go/pkg/ratings/models"
	"github.com/ukaji3/ratings-go/pkg/ratings/output"
	"github.com/ukaji3/ratings-go/pkg/ratings/rank"
	"go.uber.org/zap"
)

var (
	rankMonth    int
	rankCategory string
	rankQuery    string
	rankLimit    int
)

func newRankCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rank",
		Short: "Print the institutions of one month ranked by a score",
		Long: `rank reads the generated rating document (or converts the workbook when
the document is missing) and prints one month ordered by the chosen score.`,
		Args: cobra.NoArgs,
		RunE: runRank,
	}

	cmd.Flags().IntVar(&rankMonth, "month", 1, "Month number (1-12)")
	cmd.Flags().StringVar(&rankCategory, "category", models.CategoryConsolidated, "Score category: consolidated, smi, social, vk, tg, ok, rt, site, agenda")
	cmd.Flags().StringVar(&rankQuery, "query", "", "Only institutions whose name contains this text")
	cmd.Flags().IntVar(&rankLimit, "limit", 0, "Maximum number of rows (0: all)")

	return cmd
}

func runRank(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, err := logging.New(cfg.AppEnv, cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer logger.Sync()

	doc, err := loadDocument(cfg, logger)
	if err != nil {
		return err
	}

	month, ok := doc.Month(rankMonth)
	if !ok {
		return fmt.Errorf("month %d not found (must be 1-12)", rankMonth)
	}

	result, err := rank.Rank(month.Items, rank.Query{
		Category: rankCategory,
		Name:     rankQuery,
		Limit:    rankLimit,
	})
	if err != nil {
		return err
	}

	color.Yellow("\n%s %d: %s", month.Name, doc.Year, rankCategory)
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"#", "Вуз", "Балл"})
	for _, e := range result.Entries {
		table.Append([]string{fmt.Sprintf("%d", e.Position), e.Name, rank.FormatScore(e.Score)})
	}
	table.Render()
	color.Cyan("%d / %d", len(result.Entries), result.Total)

	return nil
}

// loadDocument prefers the generated JSON and falls back to converting the
// workbook in memory.
func loadDocument(cfg *config.Config, logger *zap.Logger) (*models.RatingDocument, error) {
	doc, err := output.ReadFile(cfg.Data.OutputPath())
	if err == nil {
		return doc, nil
	}
	logger.Debug("rating document unavailable, converting workbook", zap.Error(err))

	opts := cfg.Options()
	opts.Logger = logger
	doc, err = ratings.Convert(cfg.Data.RegistryPath(), cfg.Data.WorkbookPath(), opts)
	if err != nil {
		return nil, fmt.Errorf("conversion failed: %w", err)
	}
	return doc, nil
}
