package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

type User struct {
	bun.BaseModel `bun:"table:users,alias:u"`

	ID uuid.UUID `bun:",pk,type:uuid,default:gen_random_uuid()"`

	// Email is the login identity; username is the public handle shown
	// in chats.
	Email    string `bun:",unique,notnull"`
	Username string `bun:",notnull"`

	PasswordHash string `bun:",notnull" json:"-"`

	IsVerified bool `bun:",notnull,default:false"`

	CreatedAt time.Time `bun:",nullzero,notnull,default:current_timestamp"`
	UpdatedAt time.Time `bun:",nullzero,notnull,default:current_timestamp"`
}
