package user

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"sharenotes/cmd/client/cmd/types"
	"sharenotes/internal/app/client"
)

var (
	updateFirstName string
	updateLastName  string
)

var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update your name",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, ok := cmd.Context().Value(types.ClientAppKey).(*client.App)
		if !ok {
			return fmt.Errorf("application not initialized")
		}

		updated, err := app.UpdateProfile(cmd.Context(), updateFirstName, updateLastName)
		if err != nil {
			return err
		}

		fmt.Printf("%s profile updated: %s\n", color.GreenString("✓"), updated.FullName())
		return nil
	},
}

func init() {
	updateCmd.Flags().StringVar(&updateFirstName, "first-name", "", "first name")
	updateCmd.Flags().StringVar(&updateLastName, "last-name", "", "last name")
	_ = updateCmd.MarkFlagRequired("first-name")
	_ = updateCmd.MarkFlagRequired("last-name")
}
