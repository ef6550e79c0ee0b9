package user

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"sharenotes/cmd/client/cmd/types"
	"sharenotes/internal/app/client"
)

var deleteYes bool

var deleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "Delete your account",
	Long:  `Delete your account and everything attached to it. This cannot be undone.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, ok := cmd.Context().Value(types.ClientAppKey).(*client.App)
		if !ok {
			return fmt.Errorf("application not initialized")
		}

		if !deleteYes {
			fmt.Print("Delete your account permanently? Type 'yes' to confirm: ")
			var answer string
			_, _ = fmt.Scanln(&answer)
			if strings.ToLower(strings.TrimSpace(answer)) != "yes" {
				fmt.Println("aborted")
				return nil
			}
		}

		if err := app.DeleteAccount(cmd.Context()); err != nil {
			return err
		}

		fmt.Printf("%s account deleted\n", color.GreenString("✓"))
		return nil
	},
}

func init() {
	deleteCmd.Flags().BoolVarP(&deleteYes, "yes", "y", false, "skip the confirmation prompt")
}
