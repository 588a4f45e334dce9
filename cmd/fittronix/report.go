package fittronix

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/Bharu-A/fittronix-cli/internal/export"
	"github.com/Bharu-A/fittronix-cli/internal/model"
	"github.com/Bharu-A/fittronix-cli/internal/tracker"
	"github.com/spf13/cobra"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Assemble and render health reports",
}

var (
	reportFormat string
	reportOut    string
)

var reportDailyCmd = &cobra.Command{
	Use:   "daily",
	Short: "Render the daily report",
	RunE: func(cmd *cobra.Command, args []string) error {
		return renderReport(cmd, model.ReportDaily)
	},
}

var reportWeeklyCmd = &cobra.Command{
	Use:   "weekly",
	Short: "Render the weekly report (profile, analysis, and plan)",
	RunE: func(cmd *cobra.Command, args []string) error {
		return renderReport(cmd, model.ReportWeekly)
	},
}

func renderReport(cmd *cobra.Command, typ model.ReportType) error {
	return withTracker(func(t *tracker.Tracker) error {
		report, err := t.Report(typ)
		if err != nil {
			return err
		}
		switch strings.ToLower(strings.TrimSpace(reportFormat)) {
		case "", "json":
			if reportOut == "" {
				return export.WriteJSON(report, cmd.OutOrStdout())
			}
			return writeJSONFile(cmd, report, reportOut)
		case "xlsx":
			out := reportOut
			if out == "" {
				dir, _ := t.Setting(tracker.SettingReportDir)
				out = filepath.Join(dir, fmt.Sprintf("fittronix-%s-%s.xlsx", typ, time.Now().Format("2006-01-02")))
			}
			if err := export.WriteWorkbook(report, out); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", out)
			return nil
		default:
			return fmt.Errorf("invalid format %q (use json or xlsx)", reportFormat)
		}
	})
}

func writeJSONFile(cmd *cobra.Command, report *model.Report, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	if err := export.WriteJSON(report, f); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
	return nil
}

func init() {
	rootCmd.AddCommand(reportCmd)
	reportCmd.AddCommand(reportDailyCmd, reportWeeklyCmd)

	reportCmd.PersistentFlags().StringVar(&reportFormat, "format", "json", "Output format (json or xlsx)")
	reportCmd.PersistentFlags().StringVar(&reportOut, "out", "", "Output file (default stdout for json)")
}
