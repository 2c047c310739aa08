package booking

type CreateBookingRequest struct {
	RoomID         int64  `json:"room_id" binding:"required"`
	CheckIn        string `json:"check_in" binding:"required"`
	CheckOut       string `json:"check_out" binding:"required"`
	UserID         *int64 `json:"user_id"`
	GuestName      string `json:"guest_name" binding:"required"`
	GuestEmail     string `json:"guest_email"`
	WhatsappNumber string `json:"whatsapp_number" binding:"required"`
	Adults         int    `json:"adults" binding:"required"`
	Children       int    `json:"children"`
	PaymentMethod  string `json:"payment_method" binding:"required,oneof=online partial offline"`
}

type RescheduleBookingRequest struct {
	RoomID         int64  `json:"room_id" binding:"required"`
	CheckIn        string `json:"check_in" binding:"required"`
	CheckOut       string `json:"check_out" binding:"required"`
	GuestName      string `json:"guest_name" binding:"required"`
	GuestEmail     string `json:"guest_email"`
	WhatsappNumber string `json:"whatsapp_number" binding:"required"`
	Adults         int    `json:"adults" binding:"required"`
	Children       int    `json:"children"`
	PaymentMethod  string `json:"payment_method" binding:"required,oneof=online partial offline"`
}

type CheckAvailabilityRequest struct {
	RoomID   int64  `json:"room_id" binding:"required"`
	CheckIn  string `json:"check_in" binding:"required"`
	CheckOut string `json:"check_out" binding:"required"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=booked checked_in checked_out cancelled"`
}
