package cmd

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"invoicekeeper/internal/model"
)

var (
	addDescription string
	addClientName  string
	addClientEmail string
	addTerms       int
	addDate        string
	addDraft       bool
	addItems       []string
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Create an invoice for the signed-in user",
	Long: `Create an invoice. Line items are passed as repeated --item flags in
"name:quantity:price" form; item and invoice totals are always recomputed
from quantity and price, whatever the caller supplies.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireUser(); err != nil {
			return err
		}

		createdAt := model.DateOf(time.Now())
		if addDate != "" {
			parsed, err := model.ParseDate(addDate)
			if err != nil {
				return err
			}
			createdAt = parsed
		}

		items, err := parseItems(addItems)
		if err != nil {
			return err
		}

		status := model.StatusPending
		if addDraft {
			status = model.StatusDraft
		}

		inv := model.Invoice{
			ID:           model.NewInvoiceID(),
			CreatedAt:    createdAt,
			PaymentDue:   model.PaymentDueFrom(createdAt, addTerms),
			PaymentTerms: addTerms,
			Description:  addDescription,
			ClientName:   addClientName,
			ClientEmail:  addClientEmail,
			Status:       status,
			Items:        items,
		}

		a, err := newApp(cmd.Context())
		if err != nil {
			return err
		}
		defer a.close()

		if err := a.store.AddInvoice(cmd.Context(), inv); err != nil {
			return err
		}
		fmt.Printf("Created invoice %s\n", inv.ID)
		return nil
	},
}

// parseItems decodes repeated "name:quantity:price" flags.
func parseItems(raw []string) ([]model.LineItem, error) {
	items := make([]model.LineItem, 0, len(raw))
	for _, r := range raw {
		parts := strings.Split(r, ":")
		if len(parts) != 3 {
			return nil, fmt.Errorf("invalid item %q, expected name:quantity:price", r)
		}
		quantity, err := strconv.ParseFloat(parts[1], 64)
		if err != nil {
			return nil, fmt.Errorf("invalid quantity in item %q: %w", r, err)
		}
		price, err := strconv.ParseFloat(parts[2], 64)
		if err != nil {
			return nil, fmt.Errorf("invalid price in item %q: %w", r, err)
		}
		items = append(items, model.LineItem{Name: parts[0], Quantity: quantity, Price: price})
	}
	return items, nil
}

func init() {
	addCmd.Flags().StringVar(&addDescription, "description", "", "project description")
	addCmd.Flags().StringVar(&addClientName, "client", "", "client name")
	addCmd.Flags().StringVar(&addClientEmail, "email", "", "client email")
	addCmd.Flags().IntVar(&addTerms, "terms", 30, "payment terms in net days")
	addCmd.Flags().StringVar(&addDate, "date", "", "invoice date (YYYY-MM-DD, default today)")
	addCmd.Flags().BoolVar(&addDraft, "draft", false, "create as draft instead of pending")
	addCmd.Flags().StringArrayVar(&addItems, "item", nil, "line item as name:quantity:price (repeatable)")
	rootCmd.AddCommand(addCmd)
}
