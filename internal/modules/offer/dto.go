package offer

type CreateOfferRequest struct {
	RoomID          int64   `json:"room_id" binding:"required"`
	Title           string  `json:"title"`
	DiscountPercent float64 `json:"discount_percent"`
	OfferPrice      *string `json:"offer_price"`
	StartDate       *string `json:"start_date"`
	EndDate         *string `json:"end_date"`
	IsActive        *bool   `json:"is_active"`
}

type UpdateOfferRequest struct {
	Title           *string  `json:"title"`
	DiscountPercent *float64 `json:"discount_percent"`
	OfferPrice      *string  `json:"offer_price"`
	StartDate       *string  `json:"start_date"`
	EndDate         *string  `json:"end_date"`
	IsActive        *bool    `json:"is_active"`
}
