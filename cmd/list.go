package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"invoicekeeper/internal/model"
	"invoicekeeper/internal/money"
)

var listAll bool

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the signed-in user's invoices",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireUser(); err != nil {
			return err
		}
		a, err := newApp(cmd.Context())
		if err != nil {
			return err
		}
		defer a.close()

		var invoices []model.Invoice
		if listAll {
			invoices = a.store.GetUserInvoices()
		} else {
			invoices = a.store.GetVisibleInvoices()
		}

		if len(invoices) == 0 {
			fmt.Println("No invoices.")
			return nil
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tDUE\tCLIENT\tTOTAL\tSTATUS")
		for _, inv := range invoices {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
				inv.ID, inv.PaymentDue, inv.ClientName, money.FormatUSD(inv.Total), inv.Status)
		}
		if err := w.Flush(); err != nil {
			return err
		}

		if !listAll {
			fmt.Printf("Filters: %v\n", a.store.GetFilters())
		}
		return nil
	},
}

func init() {
	listCmd.Flags().BoolVar(&listAll, "all", false, "ignore the active filter set")
	rootCmd.AddCommand(listCmd)
}
