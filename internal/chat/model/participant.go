package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

const (
	RoleAdmin  = "admin"
	RoleMember = "member"
)

// Participant is one user's membership in one conversation. Removal is a
// soft delete so message history stays attributable; a group must keep at
// least one row with role=admin and a null RemovedAt at all times.
type Participant struct {
	bun.BaseModel `bun:"table:conversation_participants,alias:cp"`

	ConversationID uuid.UUID     `bun:",pk,type:uuid"`
	Conversation   *Conversation `bun:"rel:belongs-to,join:conversation_id=id"`

	UserID uuid.UUID `bun:",pk,type:uuid"`

	Role string `bun:",notnull,default:'member'"`

	JoinedAt  time.Time  `bun:",nullzero,notnull,default:current_timestamp"`
	RemovedAt *time.Time `bun:",nullzero"`
}

func (p *Participant) Active() bool {
	return p.RemovedAt == nil
}
