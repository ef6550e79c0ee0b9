package note

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"sharenotes/cmd/client/cmd/types"
	"sharenotes/internal/app/client"
)

var getCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show one note",
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

		n, err := app.Notes.Get(cmd.Context(), id)
		if err != nil {
			return err
		}

		fmt.Printf("Title: %s\nDate:  %s\nGrade: %s\n\n%s\n", n.Title, n.Date, n.Grade, n.Text)
		return nil
	},
}
