// Package main provides the CLI entry point for ratings-go.
package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	configPath string
	dataDir    string
	year       int
	outputPath string
	pretty     bool
)

func main() {
	_ = godotenv.Load(".env")

	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "ratings",
		Short: "Convert the university media-rating workbook to JSON",
		Long: `ratings reads the institution registry and the monthly ratings workbook
and writes a single JSON document with twelve months of scores per institution.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE:         runConvert,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configPath, "config", "", "YAML config file (default: $RATINGS_CONFIG)")
	flags.StringVar(&dataDir, "data-dir", "", "Directory holding the registry, workbook and output")
	flags.IntVar(&year, "year", 0, "Target year written to the document")

	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: <data-dir>/ratings-<year>.json)")
	rootCmd.Flags().BoolVar(&pretty, "pretty", true, "Pretty-print JSON output")

	rootCmd.AddCommand(newRankCmd())

	return rootCmd
}
