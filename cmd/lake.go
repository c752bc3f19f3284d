package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	lakeRemoteName string
	lakeBackup     bool
	lakeYes        bool
	lakePrefix     string
)

// lakeCmd groups the object store commands.
var lakeCmd = &cobra.Command{
	Use:   "lake",
	Short: "Manage the object store layout and its objects",
}

var lakeLayoutCmd = &cobra.Command{
	Use:   "layout",
	Short: "Print the configured buckets and spaces",
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := bootstrap()
		if err != nil {
			return err
		}
		l := rt.store.Layout()
		if err := l.WriteSummary(cmd.OutOrStdout()); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "\nBacked up: %d space(s), not backed up: %d space(s)\n",
			len(l.BackedUpSpaces()), len(l.NotBackedUpSpaces()))
		return nil
	},
}

var lakeInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create missing buckets and space folders",
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := bootstrap()
		if err != nil {
			return err
		}
		if err := rt.store.EnsureLayout(cmd.Context()); err != nil {
			return err
		}
		rt.logger.Info("Object store initialized", zap.Strings("buckets", rt.store.Layout().BucketNames()))
		return nil
	},
}

var lakeStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Report buckets and folders missing from the object store",
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := bootstrap()
		if err != nil {
			return err
		}
		report, err := rt.store.Status(cmd.Context())
		if err != nil {
			return err
		}
		if report.OK() {
			rt.logger.Info("Object store matches the layout.")
			return nil
		}
		rt.logger.Warn("Object store is missing structure",
			zap.Strings("buckets", report.MissingBuckets),
			zap.Strings("folders", report.MissingFolders))
		rt.logger.Info("Run 'quotes-lake lake init' to create them.")
		return nil
	},
}

var lakeLsCmd = &cobra.Command{
	Use:   "ls <bucket>",
	Short: "List objects of a bucket",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := bootstrap()
		if err != nil {
			return err
		}
		entries, err := rt.store.List(cmd.Context(), args[0], lakePrefix)
		if err != nil {
			return err
		}
		for _, e := range entries {
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%d\t%s\n", e.Modified.Format("2006-01-02 15:04:05"), e.Size, e.Name)
		}
		return nil
	},
}

var lakePutCmd = &cobra.Command{
	Use:   "put <bucket> <space> <local-name>",
	Short: "Upload a staged file into a space",
	Long: `Uploads <local-dir>/<local-name> into the flow folder of the space and, when the
space is backed up, a timestamped copy into its backup folder.`,
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := bootstrap()
		if err != nil {
			return err
		}
		result, err := rt.store.Put(cmd.Context(), args[0], args[1], args[2], lakeRemoteName)
		if err != nil {
			return err
		}
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	},
}

var lakePullCmd = &cobra.Command{
	Use:   "pull <bucket> <space> <name>",
	Short: "Download a flow (or --backup) object into the staging folder",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := bootstrap()
		if err != nil {
			return err
		}
		pull := rt.store.PullFlow
		if lakeBackup {
			pull = rt.store.PullBackup
		}
		path, err := pull(cmd.Context(), args[0], args[1], args[2])
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), path)
		return nil
	},
}

var lakeRmCmd = &cobra.Command{
	Use:   "rm <bucket> <space> <name>",
	Short: "Delete a flow (or --backup) object",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := bootstrap()
		if err != nil {
			return err
		}
		remove := rt.store.DeleteFlow
		if lakeBackup {
			remove = rt.store.DeleteBackup
		}
		return remove(cmd.Context(), args[0], args[1], args[2])
	},
}

var lakeResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete every object and bucket on the server",
	Long:  `Irreversibly deletes all objects of all buckets, then the buckets themselves. Requires --yes.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !lakeYes {
			return errors.New("refusing to reset without --yes")
		}
		rt, err := bootstrap()
		if err != nil {
			return err
		}
		report, err := rt.store.Reset(cmd.Context())
		if err != nil {
			return err
		}
		rt.logger.Info("Reset finished",
			zap.Strings("buckets", report.Buckets),
			zap.Int("objects", report.ObjectsRemoved),
			zap.Int("failures", report.Failures))
		if report.Failures > 0 {
			fmt.Fprintf(os.Stderr, "%d object(s) could not be deleted\n", report.Failures)
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(lakeCmd)
	lakeCmd.AddCommand(lakeLayoutCmd, lakeInitCmd, lakeStatusCmd, lakeLsCmd, lakePutCmd, lakePullCmd, lakeRmCmd, lakeResetCmd)

	lakeLsCmd.Flags().StringVar(&lakePrefix, "prefix", "", "Only list keys under this prefix")
	lakePutCmd.Flags().StringVar(&lakeRemoteName, "as", "", "Object name in the flow folder (defaults to the local name)")
	lakePullCmd.Flags().BoolVar(&lakeBackup, "backup", false, "Target the backup folder")
	lakeRmCmd.Flags().BoolVar(&lakeBackup, "backup", false, "Target the backup folder")
	lakeResetCmd.Flags().BoolVar(&lakeYes, "yes", false, "Confirm the irreversible reset")
}
