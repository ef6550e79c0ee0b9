package note

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"sharenotes/cmd/client/cmd/types"
	"sharenotes/internal/app/client"
)

var (
	listSearch string
	listPage   int
	listFormat string
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List your notes",
	Long: `List your notes, optionally filtered by a title fragment.

Results are paginated client-side; use --page to move through them.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, ok := cmd.Context().Value(types.ClientAppKey).(*client.App)
		if !ok {
			return fmt.Errorf("application not initialized")
		}

		page, err := app.Notes.List(cmd.Context(), listSearch, listPage)
		if err != nil {
			return err
		}

		switch listFormat {
		case "json":
			return printPageJSON(page)
		case "table":
			return printPageTable(page)
		default:
			return printPageSimple(page)
		}
	},
}

func printPageSimple(page client.NotePage) error {
	if page.Total == 0 {
		fmt.Println("No notes found")
		return nil
	}

	for _, n := range page.Items {
		fmt.Printf("%d. %s (%s) grade: %s\n", n.ID, n.Title, n.Date, n.Grade)
	}
	fmt.Printf("\nPage %d of %d, %d notes total\n", page.Page, page.PageCount, page.Total)
	return nil
}

func printPageTable(page client.NotePage) error {
	if page.Total == 0 {
		fmt.Println("No notes found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "ID\tTitle\tDate\tGrade\t\n")
	fmt.Fprintf(w, "---\t---\t---\t---\t\n")
	for _, n := range page.Items {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t\n", n.ID, truncate(n.Title, 40), n.Date, n.Grade)
	}
	w.Flush()

	fmt.Printf("\nPage %d of %d, %d notes total\n", page.Page, page.PageCount, page.Total)
	return nil
}

func printPageJSON(page client.NotePage) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(page)
}

func truncate(s string, length int) string {
	if len(s) <= length {
		return s
	}
	return s[:length-3] + "..."
}

func init() {
	listCmd.Flags().StringVarP(&listSearch, "search", "s", "", "filter by title fragment")
	listCmd.Flags().IntVarP(&listPage, "page", "p", 1, "page number")
	listCmd.Flags().StringVarP(&listFormat, "format", "f", "simple", "output format (simple, table, json)")
}
