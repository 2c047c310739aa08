package domain

import "time"

type Room struct {
	ID          int64     `json:"room_id" gorm:"column:room_id;primaryKey"`
	RoomName    string    `json:"room_name"`
	RoomType    string    `json:"room_type"`
	RoomNumber  int       `json:"room_number"`
	TotalRooms  int       `json:"total_rooms"`
	Price       string    `json:"price"` // decimal stored as string
	RoomSize    string    `json:"room_size,omitempty"`
	Guests      int       `json:"guests"`
	Description string    `json:"description,omitempty" gorm:"type:text"`
	ImageURLs   []string  `json:"image_urls,omitempty" gorm:"serializer:json"`
	Amenities   []string  `json:"amenities,omitempty" gorm:"serializer:json"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (Room) TableName() string { return "rooms" }
