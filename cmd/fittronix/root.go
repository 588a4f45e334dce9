package fittronix

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var storePath string

var rootCmd = &cobra.Command{
	Use:   "fittronix",
	Short: "fittronix tracks health metrics, nutrition, and hydration from your terminal",
	Long:  "fittronix is a local-first health and nutrition tracker: BMI/BMR/TDEE analysis, macro planning, food logging, water intake, and structured reports.",
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&storePath, "store", "", "Path to SQLite record store")
}
