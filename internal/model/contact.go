package model

// ContactMessage represents a message submitted via the contact form.
// ID and Timestamp are assigned by the store at persistence time and are
// never supplied by the caller.
type ContactMessage struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Subject   string `json:"subject,omitempty"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"` // RFC 3339 / ISO-8601, UTC
}

// ContactListOptions carries pagination parameters for listing stored
// contact messages. A Limit of 0 means no limit.
type ContactListOptions struct {
	Limit  int
	Offset int
}
