package fittronix

import (
	"fmt"

	"github.com/Bharu-A/fittronix-cli/internal/app"
	"github.com/Bharu-A/fittronix-cli/internal/store"
	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the local fittronix record store",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := resolveStorePath()
		if err != nil {
			return err
		}
		if err := app.EnsureStoreDir(path); err != nil {
			return err
		}

		s, err := store.Open(path)
		if err != nil {
			return err
		}
		defer s.Close()

		if err := s.Migrate(); err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Initialized fittronix store at %s\n", path)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
