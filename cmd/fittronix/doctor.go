package fittronix

import (
	"fmt"
	"strings"

	"github.com/Bharu-A/fittronix-cli/internal/store"
	"github.com/Bharu-A/fittronix-cli/internal/tracker"
	"github.com/spf13/cobra"
)

var doctorFix bool

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Run integrity checks on the persisted records",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(s *store.RecordStore) error {
			report, err := tracker.RunDoctor(s, doctorFix)
			if err != nil {
				return err
			}
			if len(report.MalformedRecords) > 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "Malformed records: %s\n", strings.Join(report.MalformedRecords, ", "))
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Profile issues: %d\n", report.ProfileIssues)
			fmt.Fprintf(cmd.OutOrStdout(), "Invalid entries: %d\n", report.InvalidEntries)
			fmt.Fprintf(cmd.OutOrStdout(), "Duplicate entry ids: %d\n", report.DuplicateEntryIDs)
			fmt.Fprintf(cmd.OutOrStdout(), "Water out of range: %v\n", report.WaterOutOfRange)
			if doctorFix {
				fmt.Fprintf(cmd.OutOrStdout(), "Fixed issues: %d\n", report.FixedIssues)
				// Re-check after fixes so exit status reflects final state.
				report, err = tracker.RunDoctor(s, false)
				if err != nil {
					return err
				}
			}
			if !report.Clean() {
				return fmt.Errorf("doctor found integrity issues")
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(doctorCmd)
	doctorCmd.Flags().BoolVar(&doctorFix, "fix", false, "Attempt safe auto-fixes")
}
