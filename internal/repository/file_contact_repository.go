package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"time"

	"github.com/devfolio/backend/internal/model"
)

// FileContactRepository persists contact messages as an append-only JSON
// array on disk. An absent file is treated as an empty log, not an error.
//
// Writers within this process are serialized by an internal mutex; the
// read-modify-write cycle is still not safe across multiple processes
// sharing the same file. Single-instance deployments only.
type FileContactRepository struct {
	path string

	mu     sync.Mutex
	lastID int64 // last assigned id, to keep ids unique within a millisecond
}

// NewFileContactRepository creates a file-backed store writing to path.
// The file is created on first Save if absent.
func NewFileContactRepository(path string) *FileContactRepository {
	return &FileContactRepository{path: path}
}

var _ ContactRepository = (*FileContactRepository)(nil)
var _ ContactLister = (*FileContactRepository)(nil)

// Save assigns msg.ID and msg.Timestamp, appends the message to the log
// and writes the full array back.
func (r *FileContactRepository) Save(_ context.Context, msg *model.ContactMessage) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	messages, err := r.load()
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	id := now.UnixMilli()
	if id <= r.lastID {
		id = r.lastID + 1
	}
	r.lastID = id

	msg.ID = strconv.FormatInt(id, 10)
	msg.Timestamp = now.Format(time.RFC3339)

	messages = append(messages, msg)
	return r.write(messages)
}

// List returns stored messages newest first, honoring opts.Limit/Offset.
func (r *FileContactRepository) List(_ context.Context, opts model.ContactListOptions) ([]*model.ContactMessage, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	messages, err := r.load()
	if err != nil {
		return nil, err
	}

	// Stored in append order; reverse for newest-first.
	out := make([]*model.ContactMessage, 0, len(messages))
	for i := len(messages) - 1; i >= 0; i-- {
		out = append(out, messages[i])
	}

	if opts.Offset > 0 {
		if opts.Offset >= len(out) {
			return []*model.ContactMessage{}, nil
		}
		out = out[opts.Offset:]
	}
	if opts.Limit > 0 && opts.Limit < len(out) {
		out = out[:opts.Limit]
	}
	return out, nil
}

// load reads the current log. Caller must hold r.mu.
func (r *FileContactRepository) load() ([]*model.ContactMessage, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("contact log: read: %w", err)
	}

	var messages []*model.ContactMessage
	if err := json.Unmarshal(data, &messages); err != nil {
		return nil, fmt.Errorf("contact log: parse: %w", err)
	}
	return messages, nil
}

// write replaces the log file. Caller must hold r.mu.
func (r *FileContactRepository) write(messages []*model.ContactMessage) error {
	if dir := filepath.Dir(r.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("contact log: mkdir: %w", err)
		}
	}

	data, err := json.MarshalIndent(messages, "", "  ")
	if err != nil {
		return fmt.Errorf("contact log: marshal: %w", err)
	}
	if err := os.WriteFile(r.path, data, 0o644); err != nil {
		return fmt.Errorf("contact log: write: %w", err)
	}
	return nil
}
