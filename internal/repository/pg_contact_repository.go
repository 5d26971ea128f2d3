package repository

import (
	"context"
	"time"

	"github.com/devfolio/backend/internal/model"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgContactRepository is the PostgreSQL implementation of the contact
// store. Unlike the file log it is safe under concurrent writers.
type PgContactRepository struct {
	pool *pgxpool.Pool
}

// NewPgContactRepository creates a PgContactRepository backed by the given pool.
func NewPgContactRepository(pool *pgxpool.Pool) *PgContactRepository {
	return &PgContactRepository{pool: pool}
}

var _ ContactRepository = (*PgContactRepository)(nil)
var _ ContactLister = (*PgContactRepository)(nil)

// Save inserts a new contact_messages row and populates msg.ID and
// msg.Timestamp from the database RETURNING clause.
func (r *PgContactRepository) Save(ctx context.Context, msg *model.ContactMessage) error {
	var createdAt time.Time
	err := r.pool.QueryRow(ctx,
		`INSERT INTO contact_messages (name, email, subject, message)
		 VALUES ($1, $2, NULLIF($3, ''), $4)
		 RETURNING id, created_at`,
		msg.Name, msg.Email, msg.Subject, msg.Message,
	).Scan(&msg.ID, &createdAt)
	if err != nil {
		return err
	}
	msg.Timestamp = createdAt.UTC().Format(time.RFC3339)
	return nil
}

// List returns stored messages newest first, paginated by limit/offset.
// A limit of 0 returns all rows.
func (r *PgContactRepository) List(ctx context.Context, opts model.ContactListOptions) ([]*model.ContactMessage, error) {
	limit := opts.Limit
	if limit <= 0 {
		limit = -1 // LIMIT ALL
	}

	rows, err := r.pool.Query(ctx,
		`SELECT id, name, email, COALESCE(subject, ''), message, created_at
		 FROM contact_messages
		 ORDER BY created_at DESC, id DESC
		 LIMIT NULLIF($1, -1) OFFSET $2`,
		limit, opts.Offset,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var messages []*model.ContactMessage
	for rows.Next() {
		var m model.ContactMessage
		var createdAt time.Time
		if err := rows.Scan(&m.ID, &m.Name, &m.Email, &m.Subject, &m.Message, &createdAt); err != nil {
			return nil, err
		}
		m.Timestamp = createdAt.UTC().Format(time.RFC3339)
		messages = append(messages, &m)
	}
	return messages, rows.Err()
}
