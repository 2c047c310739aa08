package domain

import "time"

type PaymentMethod string

const (
	PaymentOnline  PaymentMethod = "online"
	PaymentPartial PaymentMethod = "partial"
	PaymentOffline PaymentMethod = "offline"
)

type PaymentStatus string

const (
	PaymentPending     PaymentStatus = "pending"
	PaymentPaid        PaymentStatus = "paid"
	PaymentPartialPaid PaymentStatus = "partial_paid"
)

type Payment struct {
	ID             int64         `json:"-" gorm:"primaryKey"`
	PaymentID      string        `json:"payment_id" gorm:"column:payment_id;uniqueIndex"`
	UserID         int64         `json:"user_id"`
	BookingID      string        `json:"booking_id"`
	Method         PaymentMethod `json:"method"`
	Status         PaymentStatus `json:"status"`
	Currency       string        `json:"currency"`
	BillAmount     float64       `json:"bill_amount"`
	BillPaidAmount float64       `json:"bill_paid_amount"`
	CreatedAt      time.Time     `json:"created_at"`
	UpdatedAt      time.Time     `json:"updated_at"`

	User    *User    `json:"users,omitempty" gorm:"foreignKey:UserID"`
	Booking *Booking `json:"bookings,omitempty" gorm:"foreignKey:BookingID;references:BookingID"`
}

func (Payment) TableName() string { return "payments" }
