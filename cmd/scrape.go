package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"quotes-lake/feature/quotes"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	scrapePages int
	scrapeNoDB  bool
)

// scrapeCmd represents the scrape command
var scrapeCmd = &cobra.Command{
	Use:   "scrape",
	Short: "Run the quotes pipeline once",
	Long: `Scrapes the quotes site, saves the raw quotes into the database and places the
JSONL batch into the configured bucket and space.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := bootstrap()
		if err != nil {
			return err
		}
		defer rt.logger.Sync()

		if !scrapeNoDB {
			if err := rt.connectDatabase(cmd.Context(), true, true); err != nil {
				return err
			}
		}

		scraper, err := quotes.NewScraper(rt.cfg.Scraper, rt.logger)
		if err != nil {
			return err
		}

		var repo *quotes.Repository
		if rt.db != nil {
			repo = quotes.NewRepository(rt.db)
		}

		report, err := newPipeline(rt, scraper, repo).Run(cmd.Context(), scrapePages)
		if err != nil {
			return err
		}
		if report.Partial != "" {
			rt.logger.Warn("Crawl ended early", zap.String("reason", report.Partial))
		}

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(report); err != nil {
			return fmt.Errorf("failed to print report: %w", err)
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(scrapeCmd)
	scrapeCmd.Flags().IntVar(&scrapePages, "pages", 0, "Maximum pages to crawl (0 uses SCRAPER_MAX_PAGES)")
	scrapeCmd.Flags().BoolVar(&scrapeNoDB, "no-db", false, "Skip the database and only place the artifact")
}
