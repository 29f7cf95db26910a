package domain

import "github.com/shopspring/decimal"

const (
	CheckoutStatusRequiresPayment = "requires_payment"
	CheckoutProviderMock          = "mock"
	MockPaymentURL                = "https://example.com/pay"
)

type CheckoutRequest struct {
	Items []OrderItem `json:"items" validate:"required,dive"`
}

func (c CheckoutRequest) Validate() error { return validateStruct(c) }

type CheckoutResponse struct {
	Status     string  `json:"status"`
	Provider   string  `json:"provider"`
	Total      float64 `json:"total"`
	PaymentURL string  `json:"payment_url"`
}

// OrderTotal sums price*quantity over items in decimal and rounds to cents,
// half to even on the decimal value: 2.675 -> 2.68, 8.345 -> 8.34.
func OrderTotal(items []OrderItem) float64 {
	total := decimal.Zero
	for _, item := range items {
		if item.Price == nil {
			continue
		}
		line := decimal.NewFromFloat(*item.Price).Mul(decimal.NewFromInt(int64(item.Quantity)))
		total = total.Add(line)
	}
	return total.RoundBank(2).InexactFloat64()
}

func RoundCents(v float64) float64 {
	return decimal.NewFromFloat(v).RoundBank(2).InexactFloat64()
}
