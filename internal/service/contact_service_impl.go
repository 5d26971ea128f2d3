package service

import (
	"context"
	"strings"

	"github.com/devfolio/backend/internal/model"
	"github.com/devfolio/backend/internal/repository"
)

// contactServiceImpl is the production implementation of ContactService.
type contactServiceImpl struct {
	store repository.ContactRepository
}

// NewContactService creates a ContactService backed by the given store or
// notifier.
func NewContactService(store repository.ContactRepository) ContactService {
	return &contactServiceImpl{store: store}
}

// Submit normalizes the message in place and hands it to the configured
// store. Name, subject and message are trimmed; the email is trimmed and
// lowercased.
func (s *contactServiceImpl) Submit(ctx context.Context, msg *model.ContactMessage) error {
	msg.Name = strings.TrimSpace(msg.Name)
	msg.Email = strings.ToLower(strings.TrimSpace(msg.Email))
	msg.Subject = strings.TrimSpace(msg.Subject)
	msg.Message = strings.TrimSpace(msg.Message)
	return s.store.Save(ctx, msg)
}
