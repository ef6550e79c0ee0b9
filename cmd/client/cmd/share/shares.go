package share

import "github.com/spf13/cobra"

// Cmd groups the note sharing commands.
var Cmd = &cobra.Command{
	Use:   "share",
	Short: "Share notes with your connections",
}

func init() {
	Cmd.AddCommand(sendCmd)
	Cmd.AddCommand(sentCmd)
	Cmd.AddCommand(receivedCmd)
}
