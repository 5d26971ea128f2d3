package service

import (
	"context"

	"github.com/devfolio/backend/internal/model"
)

// ContactService defines the business logic for contact form submissions.
type ContactService interface {
	// Submit normalizes and then stores or forwards an already-validated
	// message. Persisting stores populate msg.ID and msg.Timestamp.
	Submit(ctx context.Context, msg *model.ContactMessage) error
}
