package service

import (
	"brew-haven/cafe-svc/internal/domain"
)

type CheckoutService struct {
	qr QRGenerator
}

func NewCheckoutService(qr QRGenerator) *CheckoutService {
	return &CheckoutService{qr: qr}
}

func (s *CheckoutService) Checkout(req domain.CheckoutRequest) (domain.CheckoutResponse, error) {
	if err := req.Validate(); err != nil {
		return domain.CheckoutResponse{}, err
	}

	return domain.CheckoutResponse{
		Status:     domain.CheckoutStatusRequiresPayment,
		Provider:   domain.CheckoutProviderMock,
		Total:      domain.OrderTotal(req.Items),
		PaymentURL: domain.MockPaymentURL,
	}, nil
}

func (s *CheckoutService) PaymentQRCode() ([]byte, error) {
	return s.qr.Generate(domain.MockPaymentURL)
}
