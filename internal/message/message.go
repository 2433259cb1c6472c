package message

import "time"

// Role distinguishes who authored a chat message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is one entry in a user's chat transcript.
type Message struct {
	ID        int64
	UserID    int64
	Content   string
	Type      Role
	CreatedAt time.Time
}
