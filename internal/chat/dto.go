package chat

import (
	"time"

	"github.com/google/uuid"
)

// MessageView is a message as one particular reader sees it: content
// already tombstoned when deleted for everyone, rows the sender hid from
// themself already dropped.
type MessageView struct {
	ID             uuid.UUID `json:"id"`
	ConversationID uuid.UUID `json:"conversationId"`
	SenderID       uuid.UUID `json:"senderId"`
	Content        string    `json:"content"`
	MessageType    string    `json:"messageType"`
	CreatedAt      time.Time `json:"createdAt"`
	Deleted        bool      `json:"deleted"`
}

// ChatListEntry is the newest message of one conversation the user is
// active in, for the conversation overview screen.
type ChatListEntry struct {
	ConversationID uuid.UUID `json:"conversationId"`
	MessageID      uuid.UUID `json:"messageId"`
	SenderID       uuid.UUID `json:"senderId"`
	Content        string    `json:"content"`
	MessageType    string    `json:"messageType"`
	CreatedAt      time.Time `json:"createdAt"`
}

type UnreadCount struct {
	ConversationID uuid.UUID `json:"conversationId"`
	Count          int       `json:"count"`
}
