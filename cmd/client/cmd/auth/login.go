package auth

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"sharenotes/cmd/client/cmd/types"
	"sharenotes/internal/app/client"
)

var loginEmail string

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in to the service",
	Long: `Authenticate against the service.

On success the session token is stored locally and reused by every
subsequent command until you log out.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, ok := cmd.Context().Value(types.ClientAppKey).(*client.App)
		if !ok {
			return fmt.Errorf("application not initialized")
		}

		email := loginEmail
		if email == "" {
			fmt.Print("Email: ")
			if _, err := fmt.Scanln(&email); err != nil {
				return fmt.Errorf("could not read email: %w", err)
			}
		}

		fmt.Print("Password: ")
		password, err := term.ReadPassword(int(os.Stdin.Fd()))
		if err != nil {
			return fmt.Errorf("could not read password: %w", err)
		}
		fmt.Println()

		sess, err := app.Login(cmd.Context(), email, string(password))
		if err != nil {
			return err
		}

		fmt.Printf("%s logged in as %s\n", color.GreenString("✓"), sess.Email)
		return nil
	},
}

func init() {
	loginCmd.Flags().StringVarP(&loginEmail, "email", "e", "", "account email")
}
