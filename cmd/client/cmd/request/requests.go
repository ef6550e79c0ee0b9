package request

import "github.com/spf13/cobra"

// Cmd groups the connection request commands.
var Cmd = &cobra.Command{
	Use:   "request",
	Short: "Manage connection requests",
}

func init() {
	Cmd.AddCommand(incomingCmd)
	Cmd.AddCommand(outgoingCmd)
	Cmd.AddCommand(sendCmd)
	Cmd.AddCommand(acceptCmd)
	Cmd.AddCommand(declineCmd)
	Cmd.AddCommand(cancelCmd)
	Cmd.AddCommand(unfriendCmd)
}
