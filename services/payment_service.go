package services

import (
	"context"
	"fmt"
	"log"

	mpconfig "github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
	"github.com/shopspring/decimal"
)

// IPaymentService defines the interface for the payment provider.
type IPaymentService interface {
	CreatePaymentOrder(amount decimal.Decimal, description, method string, installments int,
		email, identificationType, cpf string) (int64, error)
}

// MercadoPagoService implements IPaymentService against the Mercado Pago API.
type MercadoPagoService struct {
	client payment.Client
}

// NewMercadoPagoService creates a payment service authenticated with the
// given access token.
func NewMercadoPagoService(accessToken string) (IPaymentService, error) {
	cfg, err := mpconfig.New(accessToken)
	if err != nil {
		return nil, fmt.Errorf("failed to configure Mercado Pago client: %w", err)
	}
	return &MercadoPagoService{client: payment.NewClient(cfg)}, nil
}

// CreatePaymentOrder requests a payment authorization and returns the
// provider's payment id. Payer email and identification are only sent
// when present (guest orders carry neither).
func (s *MercadoPagoService) CreatePaymentOrder(amount decimal.Decimal, description, method string, installments int,
	email, identificationType, cpf string) (int64, error) {
	// The SDK request takes float64 amounts.
	amt, _ := amount.Float64()

	request := payment.Request{
		TransactionAmount: amt,
		Description:       description,
		PaymentMethodID:   method,
		Installments:      installments,
	}
	if email != "" || cpf != "" {
		payer := &payment.PayerRequest{Email: email}
		if cpf != "" {
			payer.Identification = &payment.IdentificationRequest{
				Type:   identificationType,
				Number: cpf,
			}
		}
		request.Payer = payer
	}

	resource, err := s.client.Create(context.Background(), request)
	if err != nil {
		return 0, fmt.Errorf("payment provider rejected the request: %w", err)
	}

	log.Printf("Payment order created: paymentId=%d status=%s amount=%.2f", resource.ID, resource.Status, amt)
	return int64(resource.ID), nil
}
