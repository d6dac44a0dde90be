package cli

import (
	"context"
	"flag"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/224solutions/offline-sync/internal/models"
)

// RunSale записывает продажу. При живом соединении продажа уходит
// на сервер сразу, иначе попадает в локальную очередь.
func (c *Cli) RunSale(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("sale", flag.ContinueOnError)
	productID := fs.String("product", "", "Product ID")
	productName := fs.String("name", "", "Product name (optional)")
	quantity := fs.Int64("qty", 1, "Quantity sold")
	price := fs.String("price", "", "Unit price")
	method := fs.String("method", "cash", "Payment method: cash, card, mobile_money, wallet, bank_transfer")
	currency := fs.String("currency", "GNF", "Currency code")
	customer := fs.String("customer", "", "Customer name (optional)")
	phone := fs.String("phone", "", "Customer phone (optional)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	unitPrice, err := decimal.NewFromString(*price)
	if err != nil {
		return fmt.Errorf("invalid price %q: %w", *price, err)
	}

	sale := &models.SalePayload{
		ProductID:     *productID,
		ProductName:   *productName,
		CustomerName:  *customer,
		CustomerPhone: *phone,
		PaymentMethod: *method,
		Currency:      *currency,
		UnitPrice:     unitPrice,
		Quantity:      *quantity,
	}

	result, err := c.recorder.RecordSale(ctx, sale)
	if err != nil {
		return fmt.Errorf("failed to record sale: %w", err)
	}

	c.printf("Sale recorded: %s %s x%d = %s %s\n",
		sale.ProductID, sale.UnitPrice, sale.Quantity, sale.Amount, sale.Currency)
	c.printEventOutcome(result)
	return nil
}
