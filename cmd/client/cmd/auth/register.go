package auth

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"sharenotes/cmd/client/cmd/types"
	"sharenotes/internal/app/client"
	"sharenotes/internal/domain/user"
)

var (
	regFirstName string
	regLastName  string
	regEmail     string
)

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Create a new account",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, ok := cmd.Context().Value(types.ClientAppKey).(*client.App)
		if !ok {
			return fmt.Errorf("application not initialized")
		}

		fmt.Print("Password: ")
		password, err := term.ReadPassword(int(os.Stdin.Fd()))
		if err != nil {
			return fmt.Errorf("could not read password: %w", err)
		}
		fmt.Println()

		created, err := app.Register(cmd.Context(), user.RegisterRequest{
			FirstName: regFirstName,
			LastName:  regLastName,
			Email:     regEmail,
			Password:  string(password),
		})
		if err != nil {
			return err
		}

		fmt.Printf("%s account created for %s\n", color.GreenString("✓"), created.Email)
		fmt.Println("Run 'sharenotes auth login' to log in.")
		return nil
	},
}

func init() {
	registerCmd.Flags().StringVar(&regFirstName, "first-name", "", "first name")
	registerCmd.Flags().StringVar(&regLastName, "last-name", "", "last name")
	registerCmd.Flags().StringVarP(&regEmail, "email", "e", "", "account email")
	_ = registerCmd.MarkFlagRequired("email")
}
