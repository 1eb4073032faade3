package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

const (
	StatusSent      = "sent"
	StatusDelivered = "delivered"
	StatusRead      = "read"
)

// MessageStatus is the per-recipient delivery state, fanned out at
// message-creation time: one row per active participant, the sender's
// row born read, everyone else's born sent. Status only ever moves
// forward sent -> delivered -> read.
type MessageStatus struct {
	bun.BaseModel `bun:"table:message_status,alias:ms"`

	MessageID uuid.UUID `bun:",pk,type:uuid"`
	Message   *Message  `bun:"rel:belongs-to,join:message_id=id"`

	UserID uuid.UUID `bun:",pk,type:uuid"`

	Status string `bun:",notnull,default:'sent'"`

	UpdatedAt time.Time `bun:",nullzero,notnull,default:current_timestamp"`
}
