package payment

import (
	"context"

	"hoteldesk/internal/domain"
)

type PaymentRepository interface {
	GetByPaymentID(ctx context.Context, paymentID string) (*domain.Payment, error)
	GetAll(ctx context.Context) ([]domain.Payment, error)
	Update(ctx context.Context, p *domain.Payment) error
}
