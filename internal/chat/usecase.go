package chat

import (
	"context"

	"github.com/google/uuid"

	"github.com/Ankit-Silwal/yapify-backend/internal/chat/model"
)

// MembershipUsecase owns conversation and participant records and the
// role invariants on them. Every operation requires the acting user to be
// an active participant; Kick, RemoveMember and Promote additionally
// require the admin role.
type MembershipUsecase interface {
	CreateGroup(ctx context.Context, creatorID uuid.UUID, memberIDs []uuid.UUID) (uuid.UUID, error)

	AddMember(ctx context.Context, actorID, conversationID, targetID uuid.UUID) error
	RemoveMember(ctx context.Context, actorID, conversationID, targetID uuid.UUID) error
	Kick(ctx context.Context, actorID, conversationID, targetID uuid.UUID) error
	Leave(ctx context.Context, actorID, conversationID uuid.UUID) error
	Promote(ctx context.Context, actorID, conversationID, targetID uuid.UUID) error

	IsActiveParticipant(ctx context.Context, conversationID, userID uuid.UUID) (bool, error)
	ListActiveConversationIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)
	GetOrCreateDirectConversation(ctx context.Context, userA, userB uuid.UUID) (uuid.UUID, error)
}

// MessageUsecase creates messages with their status fan-out and applies
// the per-reader visibility rules.
type MessageUsecase interface {
	Send(ctx context.Context, senderID, conversationID uuid.UUID, content, messageType string) (*model.Message, error)
	MarkRead(ctx context.Context, userID, conversationID uuid.UUID) error

	DeleteForMe(ctx context.Context, senderID, messageID uuid.UUID) error
	DeleteForEveryone(ctx context.Context, senderID, messageID uuid.UUID) error

	ListMessages(ctx context.Context, readerID, conversationID uuid.UUID) ([]MessageView, error)
	ChatList(ctx context.Context, userID uuid.UUID) ([]ChatListEntry, error)
	UnreadCounts(ctx context.Context, userID uuid.UUID) ([]UnreadCount, error)
}
