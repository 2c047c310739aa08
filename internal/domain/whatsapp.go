package domain

import "time"

type SenderType string

const (
	SenderAI   SenderType = "ai"
	SenderUser SenderType = "user"
)

// WhatsappMessage is one message in a guest conversation. The bot side
// is stored as sender_type "ai", the guest as "user".
type WhatsappMessage struct {
	ID         int64      `json:"id" gorm:"primaryKey"`
	Phone      string     `json:"phone" gorm:"index"`
	Message    string     `json:"message" gorm:"type:text"`
	SenderType SenderType `json:"sender_type"`
	CreatedAt  time.Time  `json:"created_at"`
}

func (WhatsappMessage) TableName() string { return "whatsapp_messages" }
