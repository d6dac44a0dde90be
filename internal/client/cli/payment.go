package cli

import (
	"context"
	"flag"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/224solutions/offline-sync/internal/models"
)

// RunPayment записывает входящий платёж в очередь событий
func (c *Cli) RunPayment(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("payment", flag.ContinueOnError)
	reference := fs.String("ref", "", "Payment reference")
	invoiceNumber := fs.String("invoice", "", "Invoice number being paid (optional)")
	amountStr := fs.String("amount", "", "Payment amount")
	method := fs.String("method", "cash", "Payment method: cash, card, mobile_money, wallet, bank_transfer")
	currency := fs.String("currency", "GNF", "Currency code")
	if err := fs.Parse(args); err != nil {
		return err
	}

	amount, err := decimal.NewFromString(*amountStr)
	if err != nil {
		return fmt.Errorf("invalid amount %q: %w", *amountStr, err)
	}

	payment := &models.PaymentPayload{
		Reference:     *reference,
		InvoiceNumber: *invoiceNumber,
		PaymentMethod: *method,
		Currency:      *currency,
		Amount:        amount,
	}

	result, err := c.recorder.RecordPayment(ctx, payment)
	if err != nil {
		return fmt.Errorf("failed to record payment: %w", err)
	}

	c.printf("Payment %s recorded: %s %s via %s\n",
		payment.Reference, payment.Amount, payment.Currency, payment.PaymentMethod)
	c.printEventOutcome(result)
	return nil
}
