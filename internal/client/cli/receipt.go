package cli

import (
	"context"
	"flag"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/224solutions/offline-sync/internal/models"
)

// RunReceipt записывает квитанцию в очередь событий
func (c *Cli) RunReceipt(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("receipt", flag.ContinueOnError)
	number := fs.String("number", "", "Receipt number")
	amountStr := fs.String("amount", "", "Receipt amount")
	currency := fs.String("currency", "GNF", "Currency code")
	customer := fs.String("customer", "", "Customer name (optional)")
	saleEventID := fs.String("sale", "", "Client event ID of the related sale (optional)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	amount, err := decimal.NewFromString(*amountStr)
	if err != nil {
		return fmt.Errorf("invalid amount %q: %w", *amountStr, err)
	}

	receipt := &models.ReceiptPayload{
		ReceiptNumber: *number,
		SaleEventID:   *saleEventID,
		CustomerName:  *customer,
		Currency:      *currency,
		Amount:        amount,
	}

	result, err := c.recorder.RecordReceipt(ctx, receipt)
	if err != nil {
		return fmt.Errorf("failed to record receipt: %w", err)
	}

	c.printf("Receipt %s recorded: %s %s\n", receipt.ReceiptNumber, receipt.Amount, receipt.Currency)
	c.printEventOutcome(result)
	return nil
}
