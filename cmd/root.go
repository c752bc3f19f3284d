package cmd

import (
	"fmt"
	"os"

	"quotes-lake/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "quotes-lake",
	Short: "Quotes ETL and object store lake",
	Long: `Quotes Lake scrapes quotes.toscrape.com, stores the raw quotes in a relational
database and places every batch into a MinIO bucket/space layout with timestamped backups.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

var configPath string

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		// "debug" level selects the development encoder (ISO8601 timestamps) for CLI output
		cfg := &logger.Config{
			Level:   "debug",
			Format:  "console",
			Console: true,
		}

		l, logErr := logger.New(cfg)
		if logErr == nil {
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			fmt.Println(err)
		}
		os.Exit(1)
	}
}

func init() {
	RootCmd.PersistentFlags().StringVar(&configPath, "config", ".", "Directory holding the .env file")
}
