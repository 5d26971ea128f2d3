package repository

import (
	"context"

	"github.com/devfolio/backend/internal/model"
)

// ContactRepository is the store/notifier capability for validated contact
// messages: an implementation either durably records the message or
// forwards it (e.g. over SMTP). Invalid input must never reach Save; the
// handler validates first.
//
// Defined here (in repository) to avoid an import cycle with service.
type ContactRepository interface {
	// Save records or forwards the message. Persisting implementations
	// populate msg.ID and msg.Timestamp; forwarding implementations
	// leave them empty.
	Save(ctx context.Context, msg *model.ContactMessage) error
}

// ContactLister is implemented by contact stores that can enumerate what
// they persisted. The SMTP notifier cannot; the admin listing endpoint is
// only wired when the configured store implements this.
type ContactLister interface {
	// List returns stored messages, newest first.
	List(ctx context.Context, opts model.ContactListOptions) ([]*model.ContactMessage, error)
}
