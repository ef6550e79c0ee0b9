package share

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"sharenotes/cmd/client/cmd/types"
	"sharenotes/internal/app/client"
	"sharenotes/internal/domain/share"
)

var counterpartEmail string

var sentCmd = &cobra.Command{
	Use:   "sent",
	Short: "List notes you shared",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, ok := cmd.Context().Value(types.ClientAppKey).(*client.App)
		if !ok {
			return fmt.Errorf("application not initialized")
		}

		shares, err := app.Shares.Sent(cmd.Context(), counterpartEmail)
		if err != nil {
			return err
		}

		return printShares(shares, true)
	},
}

var receivedCmd = &cobra.Command{
	Use:   "received",
	Short: "List notes shared with you",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, ok := cmd.Context().Value(types.ClientAppKey).(*client.App)
		if !ok {
			return fmt.Errorf("application not initialized")
		}

		shares, err := app.Shares.Received(cmd.Context(), counterpartEmail)
		if err != nil {
			return err
		}

		return printShares(shares, false)
	},
}

func printShares(shares []share.Share, sent bool) error {
	if len(shares) == 0 {
		fmt.Println("No shared notes")
		return nil
	}

	counterpart := "To"
	if !sent {
		counterpart = "From"
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "ID\tNote\t%s\tSent\t\n", counterpart)
	for _, s := range shares {
		other := s.Receiver
		if !sent {
			other = s.Sender
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t\n", s.ID, s.Note.Title, other.Email, s.SentAt)
	}
	return w.Flush()
}

func init() {
	sentCmd.Flags().StringVarP(&counterpartEmail, "email", "e", "", "narrow to one counterpart email")
	receivedCmd.Flags().StringVarP(&counterpartEmail, "email", "e", "", "narrow to one counterpart email")
}
