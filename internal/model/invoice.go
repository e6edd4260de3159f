package model

import (
	"github.com/google/uuid"

	"invoicekeeper/internal/money"
)

// Status enumerates invoice payment states.
type Status string

const (
	// StatusDraft is an invoice not yet sent to the client.
	StatusDraft Status = "Draft"
	// StatusPending is a sent invoice awaiting payment.
	StatusPending Status = "Pending"
	// StatusPaid is a settled invoice.
	StatusPaid Status = "Paid"
)

// Address represents a structured postal address. All fields are free text.
type Address struct {
	Street   string `json:"street"`
	City     string `json:"city"`
	PostCode string `json:"postCode"`
	Country  string `json:"country"`
}

// LineItem is one billable row of an invoice. Total is derived from
// Quantity and Price on write paths and is never validated on read.
type LineItem struct {
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity"`
	Price    float64 `json:"price"`
	Total    float64 `json:"total"`
}

// Invoice represents one billable transaction.
//
// ID is an opaque display identifier; it is only unique within a single
// user's invoice set by convention, so the same ID may appear under two
// different users. UserID is set by the store on creation, never by callers.
type Invoice struct {
	ID            string     `json:"id"`
	UserID        string     `json:"userId"`
	CreatedAt     Date       `json:"createdAt"`
	PaymentDue    Date       `json:"paymentDue"`
	PaymentTerms  int        `json:"paymentTerms"`
	Description   string     `json:"description"`
	ClientName    string     `json:"clientName"`
	ClientEmail   string     `json:"clientEmail"`
	SenderAddress Address    `json:"senderAddress"`
	ClientAddress Address    `json:"clientAddress"`
	Status        Status     `json:"status"`
	Items         []LineItem `json:"items"`
	Total         float64    `json:"total"`
}

// RecalculateTotals recomputes every line-item total and the invoice total
// from raw quantities and prices. Called on every write path that accepts
// items so creation and edit cannot drift apart.
func (inv *Invoice) RecalculateTotals() {
	var total float64
	for i := range inv.Items {
		inv.Items[i].Total = money.LineSubtotal(inv.Items[i].Quantity, inv.Items[i].Price)
		total += inv.Items[i].Total
	}
	inv.Total = money.RoundCents(total)
}

// PaymentDueFrom derives the due date from the creation date and net-days
// payment terms.
func PaymentDueFrom(createdAt Date, termsDays int) Date {
	return createdAt.AddDays(termsDays)
}

const idDigits = "0123456789"
const idLetters = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// NewInvoiceID generates a short display identifier, two uppercase letters
// followed by four digits. Collisions across users are acceptable; ids are
// only unique within one user's set by convention.
func NewInvoiceID() string {
	u := uuid.New()
	b := make([]byte, 6)
	b[0] = idLetters[int(u[0])%len(idLetters)]
	b[1] = idLetters[int(u[1])%len(idLetters)]
	for i := 2; i < 6; i++ {
		b[i] = idDigits[int(u[i])%len(idDigits)]
	}
	return string(b)
}
