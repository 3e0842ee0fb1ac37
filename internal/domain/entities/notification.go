package entities

import "time"

// Notification is an inbox entry. Either RecipientID or RecipientRole is set;
// a role recipient fans out to every user of that role.
type Notification struct {
	ID            string    `json:"id"`
	RecipientID   string    `json:"recipient_id,omitempty"`
	RecipientRole Role      `json:"recipient_role,omitempty"`
	ProjectID     string    `json:"project_id,omitempty"`
	Kind          string    `json:"kind"`
	Title         string    `json:"title"`
	Body          string    `json:"body"`
	Read          bool      `json:"read"`
	CreatedAt     time.Time `json:"created_at"`
}

// Message is a chat line in a project conversation.
type Message struct {
	ID             string    `json:"id"`
	ConversationID string    `json:"conversation_id"`
	ProjectID      string    `json:"project_id"`
	SenderID       string    `json:"sender_id,omitempty"`
	System         bool      `json:"system"`
	Body           string    `json:"body"`
	CreatedAt      time.Time `json:"created_at"`
}

// Conversation is the chat thread of one project.
type Conversation struct {
	ID        string    `json:"id"`
	ProjectID string    `json:"project_id"`
	ClientID  string    `json:"client_id"`
	WorkerID  string    `json:"worker_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
