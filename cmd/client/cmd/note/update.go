package note

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"sharenotes/cmd/client/cmd/types"
	"sharenotes/internal/app/client"
	"sharenotes/internal/domain/note"
)

var (
	updateTitle string
	updateText  string
	updateDate  string
	updateGrade string
)

var updateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a note",
	Long: `Update a note. The current record is re-fetched first and fields you
do not pass keep their present values; the service receives the complete
record.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, ok := cmd.Context().Value(types.ClientAppKey).(*client.App)
		if !ok {
			return fmt.Errorf("application not initialized")
		}

		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid note id %q", args[0])
		}

		// Never edit from the local cache: fetch the authoritative record.
		current, err := app.Notes.Get(cmd.Context(), id)
		if err != nil {
			return err
		}

		req := note.Request{
			Title: current.Title,
			Text:  current.Text,
			Date:  current.Date,
			Grade: current.Grade,
		}
		if cmd.Flags().Changed("title") {
			req.Title = updateTitle
		}
		if cmd.Flags().Changed("text") {
			req.Text = updateText
		}
		if cmd.Flags().Changed("date") {
			req.Date = updateDate
		}
		if cmd.Flags().Changed("grade") {
			req.Grade = updateGrade
		}

		updated, err := app.Notes.Update(cmd.Context(), id, req)
		if err != nil {
			return err
		}

		fmt.Printf("%s note %d updated\n", color.GreenString("✓"), updated.ID)
		return nil
	},
}

func init() {
	updateCmd.Flags().StringVarP(&updateTitle, "title", "t", "", "note title")
	updateCmd.Flags().StringVar(&updateText, "text", "", "note text")
	updateCmd.Flags().StringVarP(&updateDate, "date", "d", "", "note date (YYYY-MM-DD)")
	updateCmd.Flags().StringVarP(&updateGrade, "grade", "g", "", "note grade")
}
