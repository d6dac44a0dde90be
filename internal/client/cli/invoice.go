package cli

import (
	"context"
	"flag"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/224solutions/offline-sync/internal/models"
)

// RunInvoice записывает счёт в очередь событий
func (c *Cli) RunInvoice(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("invoice", flag.ContinueOnError)
	number := fs.String("number", "", "Invoice number")
	amountStr := fs.String("amount", "", "Invoice amount")
	currency := fs.String("currency", "GNF", "Currency code")
	customer := fs.String("customer", "", "Customer name")
	phone := fs.String("phone", "", "Customer phone (optional)")
	due := fs.String("due", "", "Due date, YYYY-MM-DD (optional)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	amount, err := decimal.NewFromString(*amountStr)
	if err != nil {
		return fmt.Errorf("invalid amount %q: %w", *amountStr, err)
	}

	invoice := &models.InvoicePayload{
		InvoiceNumber: *number,
		CustomerName:  *customer,
		CustomerPhone: *phone,
		Currency:      *currency,
		Amount:        amount,
	}
	if *due != "" {
		dueAt, err := time.Parse("2006-01-02", *due)
		if err != nil {
			return fmt.Errorf("invalid due date %q: %w", *due, err)
		}
		invoice.DueAt = dueAt
	}

	result, err := c.recorder.RecordInvoice(ctx, invoice)
	if err != nil {
		return fmt.Errorf("failed to record invoice: %w", err)
	}

	c.printf("Invoice %s recorded: %s %s for %s\n",
		invoice.InvoiceNumber, invoice.Amount, invoice.Currency, invoice.CustomerName)
	c.printEventOutcome(result)
	return nil
}
