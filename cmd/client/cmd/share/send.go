package share

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"sharenotes/cmd/client/cmd/types"
	"sharenotes/internal/app/client"
)

var sendCmd = &cobra.Command{
	Use:   "send <note-id> <email>",
	Short: "Share a note with a connection",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, ok := cmd.Context().Value(types.ClientAppKey).(*client.App)
		if !ok {
			return fmt.Errorf("application not initialized")
		}

		noteID, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid note id %q", args[0])
		}

		shared, err := app.Shares.Share(cmd.Context(), noteID, args[1])
		if err != nil {
			return err
		}

		fmt.Printf("%s note %q shared with %s\n", color.GreenString("✓"), shared.Note.Title, shared.Receiver.Email)
		return nil
	},
}
