package request

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"sharenotes/cmd/client/cmd/types"
	"sharenotes/internal/app/client"
)

var acceptCmd = &cobra.Command{
	Use:   "accept <id>",
	Short: "Accept an incoming request",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, id, err := appAndID(cmd, args[0])
		if err != nil {
			return err
		}

		if err := app.Requests.Accept(cmd.Context(), id); err != nil {
			return err
		}

		fmt.Printf("%s request %d accepted\n", color.GreenString("✓"), id)
		return nil
	},
}

var declineCmd = &cobra.Command{
	Use:   "decline <id>",
	Short: "Decline an incoming request",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, id, err := appAndID(cmd, args[0])
		if err != nil {
			return err
		}

		if err := app.Requests.Decline(cmd.Context(), id); err != nil {
			return err
		}

		fmt.Printf("%s request %d declined\n", color.GreenString("✓"), id)
		return nil
	},
}

var cancelCmd = &cobra.Command{
	Use:   "cancel <id>",
	Short: "Cancel a pending request you sent",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, id, err := appAndID(cmd, args[0])
		if err != nil {
			return err
		}

		if err := app.Requests.Cancel(cmd.Context(), id); err != nil {
			return err
		}

		fmt.Printf("%s request %d cancelled\n", color.GreenString("✓"), id)
		return nil
	},
}

var unfriendCmd = &cobra.Command{
	Use:   "unfriend <user-id>",
	Short: "Remove an established connection",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, id, err := appAndID(cmd, args[0])
		if err != nil {
			return err
		}

		if err := app.Requests.RemoveFriend(cmd.Context(), id); err != nil {
			return err
		}

		fmt.Printf("%s connection removed\n", color.GreenString("✓"))
		return nil
	},
}

func appAndID(cmd *cobra.Command, arg string) (*client.App, int64, error) {
	app, ok := cmd.Context().Value(types.ClientAppKey).(*client.App)
	if !ok {
		return nil, 0, fmt.Errorf("application not initialized")
	}

	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return nil, 0, fmt.Errorf("invalid id %q", arg)
	}

	return app, id, nil
}
