package auth

import (
	"fmt"

	"github.com/spf13/cobra"

	"sharenotes/cmd/client/cmd/types"
	"sharenotes/internal/app/client"
)

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the active session",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, ok := cmd.Context().Value(types.ClientAppKey).(*client.App)
		if !ok {
			return fmt.Errorf("application not initialized")
		}

		sess, active := app.Session.Current()
		if !active {
			fmt.Println("not logged in")
			return nil
		}

		fmt.Printf("%s (user id %d)\n", sess.Email, sess.UserID)
		return nil
	},
}
