package domain

import "time"

// Offer is a discounted nightly rate for a room. Open-ended offers
// (missing start or end date) apply to any stay.
type Offer struct {
	ID              int64      `json:"offer_id" gorm:"column:offer_id;primaryKey"`
	RoomID          int64      `json:"room_id"`
	Title           string     `json:"title"`
	DiscountPercent float64    `json:"discount_percent"`
	OfferPrice      *string    `json:"offer_price"` // decimal as string, nil when the offer carries no override
	StartDate       *string    `json:"start_date"`  // "YYYY-MM-DD"
	EndDate         *string    `json:"end_date"`
	IsActive        bool       `json:"is_active"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`

	Room *Room `json:"rooms,omitempty" gorm:"foreignKey:RoomID"`
}

func (Offer) TableName() string { return "offers" }
