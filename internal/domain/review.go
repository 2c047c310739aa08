package domain

import "time"

type Review struct {
	ID        int64     `json:"id" gorm:"primaryKey"`
	UserID    int64     `json:"user_id"`
	RoomID    int64     `json:"room_id"`
	Rating    int       `json:"rating" validate:"required,min=1,max=5"`
	Comment   *string   `json:"comment" gorm:"type:text"`
	CreatedAt time.Time `json:"created_at"`

	User *User `json:"users,omitempty" gorm:"foreignKey:UserID"`
	Room *Room `json:"rooms,omitempty" gorm:"foreignKey:RoomID"`
}

func (Review) TableName() string { return "reviews" }
