package fittronix

import (
	"fmt"

	"github.com/Bharu-A/fittronix-cli/internal/store"
	"github.com/spf13/cobra"
)

var backupOut string

var backupCmd = &cobra.Command{
	Use:   "backup",
	Short: "Back up the record store",
}

var backupCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Copy the store file and write a checksum sidecar",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := resolveStorePath()
		if err != nil {
			return err
		}
		info, err := store.CreateBackup(path, backupOut)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Backup: %s\nChecksum: %s\nSize: %d bytes\n", info.Path, info.Checksum, info.SizeBytes)
		return nil
	},
}

var backupVerifyCmd = &cobra.Command{
	Use:   "verify <backup-file>",
	Short: "Verify a backup against its checksum",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := store.VerifyBackup(args[0]); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Backup %s verified\n", args[0])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(backupCmd)
	backupCmd.AddCommand(backupCreateCmd, backupVerifyCmd)

	backupCreateCmd.Flags().StringVar(&backupOut, "out", "", "Backup output path")
	_ = backupCreateCmd.MarkFlagRequired("out")
}
