package chat

import (
	"context"

	"github.com/google/uuid"

	"github.com/Ankit-Silwal/yapify-backend/internal/chat/model"
)

// ChatRepository owns conversation, participant, message and status
// persistence. Compound operations (group creation, message fan-out,
// removals with invariant checks) run in a single transaction; the role
// invariant is evaluated inside that transaction and violations reject
// the mutation rather than being repaired afterwards.
type ChatRepository interface {
	// Conversations & membership
	CreateGroup(ctx context.Context, creatorID uuid.UUID, memberIDs []uuid.UUID) (uuid.UUID, error)
	GetConversation(ctx context.Context, conversationID uuid.UUID) (*model.Conversation, error)
	GetOrCreateDirectConversation(ctx context.Context, userA, userB uuid.UUID) (uuid.UUID, error)

	GetParticipant(ctx context.Context, conversationID, userID uuid.UUID) (*model.Participant, error)
	IsActiveParticipant(ctx context.Context, conversationID, userID uuid.UUID) (bool, error)
	ListActiveParticipants(ctx context.Context, conversationID uuid.UUID) ([]model.Participant, error)
	ListActiveConversationIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)

	// ReadmitOrInsertMember re-activates a soft-removed row or inserts a
	// fresh member row, never duplicating the (conversation, user) pair.
	ReadmitOrInsertMember(ctx context.Context, conversationID, userID uuid.UUID) error

	// KickParticipant soft-removes an active non-admin target.
	KickParticipant(ctx context.Context, conversationID, targetID uuid.UUID) error

	// LeaveConversation soft-removes the caller unless they are the last
	// active admin of the conversation.
	LeaveConversation(ctx context.Context, conversationID, userID uuid.UUID) error

	PromoteToAdmin(ctx context.Context, conversationID, targetID uuid.UUID) error

	// Messages
	CreateMessageWithStatuses(ctx context.Context, msg *model.Message) error
	ListMessages(ctx context.Context, conversationID uuid.UUID) ([]model.Message, error)
	MarkConversationRead(ctx context.Context, conversationID, userID uuid.UUID) (int64, error)
	SetMessageDeleted(ctx context.Context, messageID, senderID uuid.UUID, forEveryone bool) error
	LatestMessages(ctx context.Context, userID uuid.UUID) ([]ChatListEntry, error)
	UnreadCounts(ctx context.Context, userID uuid.UUID) ([]UnreadCount, error)
}
