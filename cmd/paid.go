package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var paidCmd = &cobra.Command{
	Use:   "paid <id>",
	Short: "Toggle an invoice between paid and pending",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireUser(); err != nil {
			return err
		}
		a, err := newApp(cmd.Context())
		if err != nil {
			return err
		}
		defer a.close()

		if err := a.store.TogglePaid(cmd.Context(), args[0]); err != nil {
			return err
		}
		for _, inv := range a.store.GetUserInvoices() {
			if inv.ID == args[0] {
				fmt.Printf("Invoice %s is now %s\n", inv.ID, inv.Status)
				break
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(paidCmd)
}
