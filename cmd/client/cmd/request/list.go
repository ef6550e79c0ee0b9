package request

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"sharenotes/cmd/client/cmd/types"
	"sharenotes/internal/app/client"
	"sharenotes/internal/domain/request"
)

var incomingCmd = &cobra.Command{
	Use:   "incoming",
	Short: "List pending requests sent to you",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, ok := cmd.Context().Value(types.ClientAppKey).(*client.App)
		if !ok {
			return fmt.Errorf("application not initialized")
		}

		requests, err := app.Requests.Incoming(cmd.Context())
		if err != nil {
			return err
		}

		return printRequests(requests, true)
	},
}

var outgoingCmd = &cobra.Command{
	Use:   "outgoing",
	Short: "List pending requests you sent",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, ok := cmd.Context().Value(types.ClientAppKey).(*client.App)
		if !ok {
			return fmt.Errorf("application not initialized")
		}

		requests, err := app.Requests.Outgoing(cmd.Context())
		if err != nil {
			return err
		}

		return printRequests(requests, false)
	},
}

func printRequests(requests []request.Request, incoming bool) error {
	if len(requests) == 0 {
		fmt.Println("No pending requests")
		return nil
	}

	counterpart := "From"
	if !incoming {
		counterpart = "To"
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "ID\t%s\tEmail\tStatus\tSent\t\n", counterpart)
	for _, r := range requests {
		other := r.Sender
		if !incoming {
			other = r.Receiver
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t\n", r.ID, other.FullName(), other.Email, r.Status, r.SentAt)
	}
	return w.Flush()
}
