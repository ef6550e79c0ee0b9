package note

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"sharenotes/cmd/client/cmd/types"
	"sharenotes/internal/app/client"
	"sharenotes/internal/domain/note"
)

var (
	createTitle string
	createText  string
	createDate  string
	createGrade string
)

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a note",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, ok := cmd.Context().Value(types.ClientAppKey).(*client.App)
		if !ok {
			return fmt.Errorf("application not initialized")
		}

		date := createDate
		if date == "" {
			date = time.Now().Format("2006-01-02")
		}

		created, err := app.Notes.Create(cmd.Context(), note.Request{
			Title: createTitle,
			Text:  createText,
			Date:  date,
			Grade: createGrade,
		})
		if err != nil {
			return err
		}

		fmt.Printf("%s note %d created: %s\n", color.GreenString("✓"), created.ID, created.Title)
		return nil
	},
}

func init() {
	createCmd.Flags().StringVarP(&createTitle, "title", "t", "", "note title")
	createCmd.Flags().StringVar(&createText, "text", "", "note text")
	createCmd.Flags().StringVarP(&createDate, "date", "d", "", "note date (YYYY-MM-DD, defaults to today)")
	createCmd.Flags().StringVarP(&createGrade, "grade", "g", "", "note grade")
}
