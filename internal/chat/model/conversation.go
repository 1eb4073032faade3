package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

type Conversation struct {
	bun.BaseModel `bun:"table:conversations,alias:c"`

	ID uuid.UUID `bun:",pk,type:uuid,default:gen_random_uuid()"`

	// Direct chats are created lazily when the first message between two
	// users is sent; groups are created explicitly.
	IsGroup bool `bun:",notnull,default:false"`

	CreatedAt time.Time `bun:",nullzero,notnull,default:current_timestamp"`
}
