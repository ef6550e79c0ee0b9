package note

import "github.com/spf13/cobra"

// Cmd groups the note commands.
var Cmd = &cobra.Command{
	Use:   "note",
	Short: "Manage your notes",
}

func init() {
	Cmd.AddCommand(createCmd)
	Cmd.AddCommand(listCmd)
	Cmd.AddCommand(getCmd)
	Cmd.AddCommand(updateCmd)
	Cmd.AddCommand(deleteCmd)
	Cmd.AddCommand(exportCmd)
}
