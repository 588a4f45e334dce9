package fittronix

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Bharu-A/fittronix-cli/internal/tracker"
	"github.com/spf13/cobra"
)

var waterCmd = &cobra.Command{
	Use:   "water",
	Short: "Track daily water intake in glasses",
}

var waterAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add one glass",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withTracker(func(t *tracker.Tracker) error {
			glasses := t.AddGlass()
			fmt.Fprintf(cmd.OutOrStdout(), "Water: %d/%d glasses\n", glasses, tracker.WaterGoalGlasses)
			return nil
		})
	},
}

var waterSetCmd = &cobra.Command{
	Use:   "set <glasses>",
	Short: "Set the glass count directly",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		n, err := strconv.Atoi(strings.TrimSpace(args[0]))
		if err != nil {
			return fmt.Errorf("invalid glass count %q", args[0])
		}
		return withTracker(func(t *tracker.Tracker) error {
			if err := t.SetGlasses(n); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Water: %d/%d glasses\n", t.Glasses(), tracker.WaterGoalGlasses)
			return nil
		})
	},
}

var waterResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reset the glass count to zero",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withTracker(func(t *tracker.Tracker) error {
			t.ResetWater()
			fmt.Fprintln(cmd.OutOrStdout(), "Water intake reset")
			return nil
		})
	},
}

var waterStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show today's water intake",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withTracker(func(t *tracker.Tracker) error {
			snap := t.Progress()
			fmt.Fprintf(cmd.OutOrStdout(), "Water: %d/%d glasses (%d%%)\n", snap.WaterGlasses, tracker.WaterGoalGlasses, snap.WaterPct)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(waterCmd)
	waterCmd.AddCommand(waterAddCmd, waterSetCmd, waterResetCmd, waterStatusCmd)
}
