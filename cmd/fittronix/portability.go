package fittronix

import (
	"fmt"
	"os"

	"github.com/Bharu-A/fittronix-cli/internal/tracker"
	"github.com/spf13/cobra"
)

var (
	exportOut     string
	importIn      string
	importReplace bool
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export profile, food log, and water intake as JSON",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withTracker(func(t *tracker.Tracker) error {
			if exportOut == "" {
				return t.Export(cmd.OutOrStdout())
			}
			f, err := os.Create(exportOut)
			if err != nil {
				return fmt.Errorf("create %s: %w", exportOut, err)
			}
			defer f.Close()

			if err := t.Export(f); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exported to %s\n", exportOut)
			return nil
		})
	},
}

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Import a JSON archive (merge by default, --replace to overwrite)",
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := os.Open(importIn)
		if err != nil {
			return fmt.Errorf("open %s: %w", importIn, err)
		}
		defer f.Close()

		return withTracker(func(t *tracker.Tracker) error {
			summary, err := t.Import(f, importReplace)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Imported entries: %d (skipped %d)\n", summary.ImportedEntries, summary.SkippedEntries)
			if summary.ProfileImported {
				fmt.Fprintln(cmd.OutOrStdout(), "Profile imported")
			}
			if summary.WaterImported {
				fmt.Fprintln(cmd.OutOrStdout(), "Water intake imported")
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(exportCmd, importCmd)

	exportCmd.Flags().StringVar(&exportOut, "out", "", "Output file (default stdout)")
	importCmd.Flags().StringVar(&importIn, "in", "", "Archive file to import")
	importCmd.Flags().BoolVar(&importReplace, "replace", false, "Overwrite existing records instead of merging")
	_ = importCmd.MarkFlagRequired("in")
}
