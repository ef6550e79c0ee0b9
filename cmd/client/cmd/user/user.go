package user

import "github.com/spf13/cobra"

// Cmd groups the account management commands.
var Cmd = &cobra.Command{
	Use:   "user",
	Short: "Manage your account",
}

func init() {
	Cmd.AddCommand(updateCmd)
	Cmd.AddCommand(deleteCmd)
}
