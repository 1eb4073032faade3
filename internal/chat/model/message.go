package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Tombstone shown to every reader of a message deleted for everyone.
const DeletedMessageTombstone = "This message was deleted"

type Message struct {
	bun.BaseModel `bun:"table:messages,alias:m"`

	ID             uuid.UUID `bun:",pk,type:uuid,default:gen_random_uuid()"`
	ConversationID uuid.UUID `bun:",notnull,type:uuid"`

	SenderID uuid.UUID `bun:",notnull,type:uuid"`

	Content     string `bun:",notnull"`
	MessageType string `bun:",notnull,default:'text'"`

	CreatedAt time.Time `bun:",nullzero,notnull,default:current_timestamp"`

	// Independent tombstone flags, both sender-only operations.
	DeletedForSender   bool `bun:",notnull,default:false"`
	DeletedForEveryone bool `bun:",notnull,default:false"`
}
