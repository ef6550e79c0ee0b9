package note

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"sharenotes/cmd/client/cmd/types"
	"sharenotes/internal/app/client"
)

var exportFormat string

var exportCmd = &cobra.Command{
	Use:   "export <id>",
	Short: "Export a note to a file",
	Long: `Download a note rendered as pdf, docx or txt and save it under the
filename the service suggests.`,
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

		path, err := app.Export.Export(cmd.Context(), id, exportFormat)
		if err != nil {
			return err
		}

		fmt.Printf("%s saved %s\n", color.GreenString("✓"), path)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "pdf", "export format (pdf, docx, txt)")
}
