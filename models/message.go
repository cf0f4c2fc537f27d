package models

import "time"

// Message is a contact-form submission as seen by the admin inbox.
type Message struct {
	ID        int64      `json:"id"`
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	Subject   string     `json:"subject"`
	Body      string     `json:"body"`
	Read      bool       `json:"read"`
	CreatedAt *time.Time `json:"createdAt,omitempty"`
}

// ContactMessage is the public contact submission.
type ContactMessage struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

// MessageQuery filters the admin inbox. A nil Read means "any".
type MessageQuery struct {
	Page   int
	Size   int
	Search string
	Read   *bool
}
