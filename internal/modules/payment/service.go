package payment

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"hoteldesk/internal/domain"
)

type Service struct {
	payments PaymentRepository
}

func NewService(payments PaymentRepository) *Service {
	return &Service{payments: payments}
}

func (s *Service) ListPayments(ctx context.Context) ([]domain.Payment, error) {
	return s.payments.GetAll(ctx)
}

func (s *Service) GetPayment(ctx context.Context, paymentID string) (*domain.Payment, error) {
	p, err := s.payments.GetByPaymentID(ctx, paymentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

// UpdatePayment records a settlement against the bill. The paid amount
// can never exceed the bill, and marking a payment paid with an amount
// still outstanding downgrades the status to partial_paid.
func (s *Service) UpdatePayment(ctx context.Context, paymentID string, req UpdatePaymentRequest) (*domain.Payment, error) {
	p, err := s.payments.GetByPaymentID(ctx, paymentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if req.BillPaidAmount != nil {
		if *req.BillPaidAmount < 0 {
			return nil, ErrValidation
		}
		if *req.BillPaidAmount > p.BillAmount {
			return nil, ErrOverpaid
		}
		p.BillPaidAmount = *req.BillPaidAmount
	}
	if req.Method != nil {
		p.Method = domain.PaymentMethod(*req.Method)
	}
	if req.Status != nil {
		p.Status = domain.PaymentStatus(*req.Status)
	}

	if p.Status == domain.PaymentPaid && p.BillPaidAmount < p.BillAmount {
		p.Status = domain.PaymentPartialPaid
	}
	if p.BillPaidAmount >= p.BillAmount && p.BillAmount > 0 {
		p.Status = domain.PaymentPaid
	}

	if err := s.payments.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}
