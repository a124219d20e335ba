package message

import "time"

type Message struct {
	ID        string    `json:"id"`
	Nom       string    `json:"nom"`
	Email     string    `json:"email"`
	Sujet     string    `json:"sujet"`
	Message   string    `json:"message"`
	Telephone string    `json:"telephone"`
	Voiture   *string   `json:"voiture"`
	Lu        bool      `json:"lu"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Input is a contact form submission.
type Input struct {
	Nom       string
	Email     string
	Sujet     string
	Message   string
	Telephone string
	Voiture   string
}

// Inbox is the admin view of all messages, newest first.
type Inbox struct {
	Messages []Message
	NonLus   int
}
