package domain

import "time"

// User is a hotel guest from the guest directory. Guests never log in;
// staff accounts live in Admin.
type User struct {
	ID             int64     `json:"user_id" gorm:"column:user_id;primaryKey"`
	Name           string    `json:"name" validate:"required,min=2"`
	Email          string    `json:"email,omitempty" validate:"omitempty,email"`
	WhatsappNumber string    `json:"whatsapp_number" validate:"required,min=10"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func (User) TableName() string { return "users" }

type AdminRole string

const (
	RoleManager AdminRole = "manager"
	RoleAdmin   AdminRole = "admin"
)

// Admin is a console staff account.
type Admin struct {
	ID           int64     `json:"id" gorm:"primaryKey"`
	Email        string    `json:"email" validate:"required,email"`
	PasswordHash string    `json:"-"`
	Name         string    `json:"name"`
	Role         AdminRole `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (Admin) TableName() string { return "admins" }
