package ledger

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/muskieco/retail-backend/pkg/enums"
)

// CreateTransactionInput carries the header fields for a new purchase or
// return event. TotalPrice is the cashier's estimate; ComputeTotal replaces
// it with the derived value.
type CreateTransactionInput struct {
	StoreID      int64                 `json:"store_id" validate:"required,gt=0"`
	CustomerID   int64                 `json:"customer_id" validate:"required,gt=0"`
	CashierID    int64                 `json:"cashier_id" validate:"required,gt=0"`
	PurchaseDate time.Time             `json:"purchase_date" validate:"required"`
	TotalPrice   decimal.Decimal       `json:"total_price"`
	Type         enums.TransactionType `json:"type" validate:"required"`
}

// ItemInput is one line of an AddItems batch.
type ItemInput struct {
	ProductID       int64           `json:"product_id" validate:"required,gt=0"`
	Quantity        int             `json:"quantity" validate:"required,gt=0"`
	DiscountPercent decimal.Decimal `json:"discount_percent"`
}
