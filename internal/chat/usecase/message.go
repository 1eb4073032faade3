package usecase

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/Ankit-Silwal/yapify-backend/internal/chat"
	"github.com/Ankit-Silwal/yapify-backend/internal/chat/model"
	appErrors "github.com/Ankit-Silwal/yapify-backend/pkg/errors"
	"github.com/Ankit-Silwal/yapify-backend/pkg/logger"
)

type MessageUsecase struct {
	repo   chat.ChatRepository
	logger *logger.Logger
}

func NewMessageUsecase(repo chat.ChatRepository, logger *logger.Logger) *MessageUsecase {
	return &MessageUsecase{repo: repo, logger: logger}
}

// Send persists the message together with its full status fan-out, or
// not at all. A rolled-back storage failure comes back retryable; the
// caller decides whether to try again.
func (uc *MessageUsecase) Send(ctx context.Context, senderID, conversationID uuid.UUID, content, messageType string) (*model.Message, error) {
	if content == "" {
		return nil, appErrors.InvalidArg("message content is required")
	}
	if messageType == "" {
		messageType = "text"
	}

	msg := &model.Message{
		ConversationID: conversationID,
		SenderID:       senderID,
		Content:        content,
		MessageType:    messageType,
	}

	if err := uc.repo.CreateMessageWithStatuses(ctx, msg); err != nil {
		if errors.Is(err, appErrors.ErrNotAParticipant) {
			return nil, appErrors.ErrNotAParticipant
		}
		uc.logger.Error("message fan-out failed, transaction rolled back",
			"conversationId", conversationID, "senderId", senderID, "err", err)
		return nil, appErrors.ErrStorageFailure(err)
	}
	return msg, nil
}

func (uc *MessageUsecase) MarkRead(ctx context.Context, userID, conversationID uuid.UUID) error {
	_, err := uc.repo.MarkConversationRead(ctx, conversationID, userID)
	if err != nil {
		uc.logger.Error("mark read failed", "conversationId", conversationID, "userId", userID, "err", err)
		return appErrors.ErrStorageFailure(err)
	}
	return nil
}

func (uc *MessageUsecase) DeleteForMe(ctx context.Context, senderID, messageID uuid.UUID) error {
	return uc.repo.SetMessageDeleted(ctx, messageID, senderID, false)
}

func (uc *MessageUsecase) DeleteForEveryone(ctx context.Context, senderID, messageID uuid.UUID) error {
	return uc.repo.SetMessageDeleted(ctx, messageID, senderID, true)
}

// ListMessages returns the conversation as readerID is allowed to see
// it: deleted-for-everyone content is replaced with the tombstone, and
// messages the sender hid from themself are dropped for that sender only.
func (uc *MessageUsecase) ListMessages(ctx context.Context, readerID, conversationID uuid.UUID) ([]chat.MessageView, error) {
	active, err := uc.repo.IsActiveParticipant(ctx, conversationID, readerID)
	if err != nil {
		return nil, appErrors.ErrStorageFailure(err)
	}
	if !active {
		return nil, appErrors.ErrNotAParticipant
	}

	messages, err := uc.repo.ListMessages(ctx, conversationID)
	if err != nil {
		return nil, appErrors.ErrStorageFailure(err)
	}

	views := make([]chat.MessageView, 0, len(messages))
	for _, m := range messages {
		if m.DeletedForSender && m.SenderID == readerID {
			continue
		}
		view := chat.MessageView{
			ID:             m.ID,
			ConversationID: m.ConversationID,
			SenderID:       m.SenderID,
			Content:        m.Content,
			MessageType:    m.MessageType,
			CreatedAt:      m.CreatedAt,
		}
		if m.DeletedForEveryone {
			view.Content = model.DeletedMessageTombstone
			view.Deleted = true
		}
		views = append(views, view)
	}
	return views, nil
}

func (uc *MessageUsecase) ChatList(ctx context.Context, userID uuid.UUID) ([]chat.ChatListEntry, error) {
	entries, err := uc.repo.LatestMessages(ctx, userID)
	if err != nil {
		return nil, appErrors.ErrStorageFailure(err)
	}
	return entries, nil
}

func (uc *MessageUsecase) UnreadCounts(ctx context.Context, userID uuid.UUID) ([]chat.UnreadCount, error) {
	counts, err := uc.repo.UnreadCounts(ctx, userID)
	if err != nil {
		return nil, appErrors.ErrStorageFailure(err)
	}
	return counts, nil
}
