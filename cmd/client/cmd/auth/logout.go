package auth

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"sharenotes/cmd/client/cmd/types"
	"sharenotes/internal/app/client"
)

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Log out and forget the stored session",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, ok := cmd.Context().Value(types.ClientAppKey).(*client.App)
		if !ok {
			return fmt.Errorf("application not initialized")
		}

		if err := app.Logout(); err != nil {
			return err
		}

		fmt.Printf("%s logged out\n", color.GreenString("✓"))
		return nil
	},
}
