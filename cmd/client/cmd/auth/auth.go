package auth

import "github.com/spf13/cobra"

// Cmd groups the authentication commands.
var Cmd = &cobra.Command{
	Use:   "auth",
	Short: "Account authentication",
}

func init() {
	Cmd.AddCommand(loginCmd)
	Cmd.AddCommand(registerCmd)
	Cmd.AddCommand(logoutCmd)
	Cmd.AddCommand(whoamiCmd)
}
