package realtime

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Wire event types. Client-to-server: send, join, markRead. Server-to-
// client: ack, new, error, read.
const (
	EventMessageSend  = "message:send"
	EventMessageAck   = "message:ack"
	EventMessageNew   = "message:new"
	EventMessageError = "message:error"

	EventConversationJoin     = "conversation:join"
	EventConversationMarkRead = "conversation:markRead"
	EventConversationRead     = "conversation:read"
)

type Event struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data,omitempty"`
}

func NewEvent(eventType string, payload any) (Event, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return Event{}, err
	}
	return Event{Type: eventType, Data: data}, nil
}

type SendPayload struct {
	ConversationID uuid.UUID `json:"conversationId"`
	Content        string    `json:"content"`
	MessageType    string    `json:"messageType"`

	// CorrelationID ties the ack or error back to this send; it never
	// leaves the origin connection.
	CorrelationID string `json:"correlationId"`
}

type AckPayload struct {
	CorrelationID string    `json:"correlationId"`
	MessageID     uuid.UUID `json:"messageId"`
}

type ErrorPayload struct {
	CorrelationID string `json:"correlationId,omitempty"`
	Reason        string `json:"reason"`
}

type NewMessagePayload struct {
	ID             uuid.UUID `json:"id"`
	ConversationID uuid.UUID `json:"conversationId"`
	SenderID       uuid.UUID `json:"senderId"`
	Content        string    `json:"content"`
	MessageType    string    `json:"messageType"`
	CreatedAt      time.Time `json:"createdAt"`
}

type JoinPayload struct {
	ConversationID uuid.UUID `json:"conversationId"`
}

type MarkReadPayload struct {
	ConversationID uuid.UUID `json:"conversationId"`
}

type ReadPayload struct {
	ConversationID uuid.UUID `json:"conversationId"`
	UserID         uuid.UUID `json:"userId"`
	ReadAt         time.Time `json:"readAt"`
}

// Channel names.
func UserChannel(userID uuid.UUID) string {
	return "user:" + userID.String()
}

func ConversationChannel(conversationID uuid.UUID) string {
	return "conversation:" + conversationID.String()
}
