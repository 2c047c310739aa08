package payment

type UpdatePaymentRequest struct {
	BillPaidAmount *float64 `json:"bill_paid_amount"`
	Method         *string  `json:"method" binding:"omitempty,oneof=online partial offline"`
	Status         *string  `json:"status" binding:"omitempty,oneof=pending paid partial_paid"`
}
