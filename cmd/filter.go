package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"invoicekeeper/internal/model"
)

var filterCmd = &cobra.Command{
	Use:   "filter <All|Draft|Pending|Paid>",
	Short: "Toggle a status label in the active filter set",
	Long: `Toggle a status label in the filter set used by list. Selecting All
clears every other label; removing the last specific label falls back to
All. The filter set is stored alongside the invoices and is shared by every
user of the same storage.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd.Context())
		if err != nil {
			return err
		}
		defer a.close()

		a.store.ToggleFilter(cmd.Context(), model.Status(args[0]))
		fmt.Printf("Filters: %v\n", a.store.GetFilters())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(filterCmd)
}
