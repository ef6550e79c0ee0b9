package request

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"sharenotes/cmd/client/cmd/types"
	"sharenotes/internal/app/client"
)

var sendCmd = &cobra.Command{
	Use:   "send <email>",
	Short: "Send a connection request",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, ok := cmd.Context().Value(types.ClientAppKey).(*client.App)
		if !ok {
			return fmt.Errorf("application not initialized")
		}

		sent, err := app.Requests.Send(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		fmt.Printf("%s request %d sent to %s\n", color.GreenString("✓"), sent.ID, sent.Receiver.Email)
		return nil
	},
}
