package domain

import "time"

type BookingStatus string

const (
	BookingBooked     BookingStatus = "booked"
	BookingCheckedIn  BookingStatus = "checked_in"
	BookingCheckedOut BookingStatus = "checked_out"
	BookingCancelled  BookingStatus = "cancelled"
)

type Booking struct {
	ID          int64         `json:"-" gorm:"primaryKey"`
	BookingID   string        `json:"booking_id" gorm:"column:booking_id;uniqueIndex"`
	RoomID      int64         `json:"room_id" validate:"required"`
	UserID      int64         `json:"user_id" validate:"required"`
	CheckIn     time.Time     `json:"check_in" validate:"required"`
	CheckOut    time.Time     `json:"check_out" validate:"required"`
	Adults      int           `json:"adults"`
	Children    int           `json:"children"`
	GuestsTotal int           `json:"guests_total"`
	TotalPrice  float64       `json:"total_price"`
	Status      BookingStatus `json:"status"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
	CancelledAt *time.Time    `json:"cancelled_at,omitempty"`

	User *User `json:"users,omitempty" gorm:"foreignKey:UserID"`
	Room *Room `json:"rooms,omitempty" gorm:"foreignKey:RoomID;references:ID"`
}

func (Booking) TableName() string { return "bookings" }
