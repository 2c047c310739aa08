package whatsapp

import (
	"context"
	"strings"

	"hoteldesk/internal/domain"
	"hoteldesk/internal/repository"
)

type MessageRepository interface {
	Create(ctx context.Context, m *domain.WhatsappMessage) error
	GetByPhone(ctx context.Context, phone string) ([]domain.WhatsappMessage, error)
	GetConversations(ctx context.Context) ([]repository.Conversation, error)
}

type Service struct {
	messages MessageRepository
	hub      *Hub
}

func NewService(messages MessageRepository, hub *Hub) *Service {
	return &Service{messages: messages, hub: hub}
}

func (s *Service) ListConversations(ctx context.Context) ([]repository.Conversation, error) {
	return s.messages.GetConversations(ctx)
}

func (s *Service) GetMessages(ctx context.Context, phone string) ([]domain.WhatsappMessage, error) {
	return s.messages.GetByPhone(ctx, strings.TrimSpace(phone))
}

// RecordMessage stores an inbound bot-webhook message and pushes it to
// every connected viewer.
func (s *Service) RecordMessage(ctx context.Context, phone, text string, sender domain.SenderType) (*domain.WhatsappMessage, error) {
	m := &domain.WhatsappMessage{
		Phone:      strings.TrimSpace(phone),
		Message:    text,
		SenderType: sender,
	}
	if err := s.messages.Create(ctx, m); err != nil {
		return nil, err
	}

	s.hub.Broadcast(event{Type: "whatsapp_message", Data: m})
	return m, nil
}

type event struct {
	Type string      `json:"type"`
	Data interface{} `json:"data"`
}
