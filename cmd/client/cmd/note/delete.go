package note

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"sharenotes/cmd/client/cmd/types"
	"sharenotes/internal/app/client"
)

var deleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a note",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, ok := cmd.Context().Value(types.ClientAppKey).(*client.App)
		if !ok {
			return fmt.Errorf("application not initialized")
		}

		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid note id %q", args[0])
		}

		if err := app.Notes.Delete(cmd.Context(), id); err != nil {
			return err
		}

		fmt.Printf("%s note %d deleted\n", color.GreenString("✓"), id)
		return nil
	},
}
