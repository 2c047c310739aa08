package repository

import (
	"context"
	"time"

	"hoteldesk/internal/domain"

	"gorm.io/gorm"
)

type WhatsappRepository struct {
	db *gorm.DB
}

func NewWhatsappRepository(db *gorm.DB) *WhatsappRepository {
	return &WhatsappRepository{db: db}
}

// Conversation is one row in the viewer's sidebar: a phone number with
// its latest message.
type Conversation struct {
	Phone         string    `json:"phone"`
	Name          string    `json:"name"`
	LastMessage   string    `json:"last_message"`
	LastMessageAt time.Time `json:"last_message_at"`
}

func (r *WhatsappRepository) Create(ctx context.Context, m *domain.WhatsappMessage) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *WhatsappRepository) GetByPhone(ctx context.Context, phone string) ([]domain.WhatsappMessage, error) {
	var msgs []domain.WhatsappMessage
	err := r.db.WithContext(ctx).
		Where("phone = ?", phone).
		Order("created_at ASC").
		Find(&msgs).Error
	return msgs, err
}

// GetConversations lists distinct phone numbers with their most recent
// message, joined against the guest directory for a display name.
func (r *WhatsappRepository) GetConversations(ctx context.Context) ([]Conversation, error) {
	var rows []Conversation
	q := `
SELECT m.phone,
       COALESCE(u.name, '') AS name,
       m.message            AS last_message,
       m.created_at         AS last_message_at
FROM whatsapp_messages m
JOIN (
    SELECT phone, MAX(created_at) AS max_created
    FROM whatsapp_messages
    GROUP BY phone
) latest ON latest.phone = m.phone AND latest.max_created = m.created_at
LEFT JOIN users u ON u.whatsapp_number = m.phone
ORDER BY m.created_at DESC
`
	err := r.db.WithContext(ctx).Raw(q).Scan(&rows).Error
	return rows, err
}
