package usecase

import (
	"context"
	"testing"

	pkgerrors "github.com/pkg/errors"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ankit-Silwal/yapify-backend/internal/chat/mocks"
	"github.com/Ankit-Silwal/yapify-backend/internal/chat/model"
	appErrors "github.com/Ankit-Silwal/yapify-backend/pkg/errors"
)

func TestMessageUsecase_Send(t *testing.T) {
	convID := uuid.New()
	senderID := uuid.New()

	t.Run("happy path - message persisted with fan-out", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockRepo := mocks.NewMockChatRepository(ctrl)
		uc := NewMessageUsecase(mockRepo, nil)

		mockRepo.EXPECT().
			CreateMessageWithStatuses(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, msg *model.Message) error {
				msg.ID = uuid.New()
				return nil
			})

		msg, err := uc.Send(context.Background(), senderID, convID, "hello", "")
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, msg.ID)
		assert.Equal(t, senderID, msg.SenderID)
		assert.Equal(t, convID, msg.ConversationID)
		assert.Equal(t, "hello", msg.Content)
		assert.Equal(t, "text", msg.MessageType)
	})

	t.Run("sad path - empty content", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockRepo := mocks.NewMockChatRepository(ctrl)
		uc := NewMessageUsecase(mockRepo, nil)

		_, err := uc.Send(context.Background(), senderID, convID, "", "text")
		require.Error(t, err)
		assert.Equal(t, appErrors.CodeInvalidArgument, appErrors.CodeOf(err))
	})

	t.Run("sad path - sender not active in conversation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockRepo := mocks.NewMockChatRepository(ctrl)
		uc := NewMessageUsecase(mockRepo, nil)

		mockRepo.EXPECT().
			CreateMessageWithStatuses(gomock.Any(), gomock.Any()).
			Return(appErrors.ErrNotAParticipant)

		_, err := uc.Send(context.Background(), senderID, convID, "hello", "text")
		assert.ErrorIs(t, err, appErrors.ErrNotAParticipant)
	})

	t.Run("sad path - rolled-back failure is retryable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockRepo := mocks.NewMockChatRepository(ctrl)
		uc := NewMessageUsecase(mockRepo, nil)

		mockRepo.EXPECT().
			CreateMessageWithStatuses(gomock.Any(), gomock.Any()).
			Return(pkgerrors.New("connection reset"))

		_, err := uc.Send(context.Background(), senderID, convID, "hello", "text")
		require.Error(t, err)
		assert.True(t, appErrors.Retryable(err))
	})
}

func TestMessageUsecase_ListMessages(t *testing.T) {
	convID := uuid.New()
	readerID := uuid.New()
	otherID := uuid.New()

	plain := model.Message{ID: uuid.New(), ConversationID: convID, SenderID: otherID, Content: "hi", MessageType: "text"}
	wiped := model.Message{ID: uuid.New(), ConversationID: convID, SenderID: otherID, Content: "secret", MessageType: "text", DeletedForEveryone: true}
	hiddenByReader := model.Message{ID: uuid.New(), ConversationID: convID, SenderID: readerID, Content: "regret", MessageType: "text", DeletedForSender: true}
	hiddenByOther := model.Message{ID: uuid.New(), ConversationID: convID, SenderID: otherID, Content: "still visible", MessageType: "text", DeletedForSender: true}

	t.Run("happy path - per-reader visibility", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockRepo := mocks.NewMockChatRepository(ctrl)
		uc := NewMessageUsecase(mockRepo, nil)

		g := mockRepo.EXPECT()
		g.IsActiveParticipant(gomock.Any(), convID, readerID).Return(true, nil)
		g.ListMessages(gomock.Any(), convID).
			Return([]model.Message{plain, wiped, hiddenByReader, hiddenByOther}, nil)

		views, err := uc.ListMessages(context.Background(), readerID, convID)
		require.NoError(t, err)
		require.Len(t, views, 3)

		assert.Equal(t, "hi", views[0].Content)
		assert.False(t, views[0].Deleted)

		assert.Equal(t, model.DeletedMessageTombstone, views[1].Content)
		assert.True(t, views[1].Deleted)

		// delete-for-me only hides the row from its own sender
		assert.Equal(t, "still visible", views[2].Content)
	})

	t.Run("sad path - reader not a participant", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockRepo := mocks.NewMockChatRepository(ctrl)
		uc := NewMessageUsecase(mockRepo, nil)

		mockRepo.EXPECT().
			IsActiveParticipant(gomock.Any(), convID, readerID).Return(false, nil)

		_, err := uc.ListMessages(context.Background(), readerID, convID)
		assert.ErrorIs(t, err, appErrors.ErrNotAParticipant)
	})
}

func TestMessageUsecase_MarkRead(t *testing.T) {
	convID := uuid.New()
	userID := uuid.New()

	t.Run("happy path", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockRepo := mocks.NewMockChatRepository(ctrl)
		uc := NewMessageUsecase(mockRepo, nil)

		mockRepo.EXPECT().
			MarkConversationRead(gomock.Any(), convID, userID).
			Return(int64(4), nil)

		require.NoError(t, uc.MarkRead(context.Background(), userID, convID))
	})

	t.Run("sad path - storage failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockRepo := mocks.NewMockChatRepository(ctrl)
		uc := NewMessageUsecase(mockRepo, nil)

		mockRepo.EXPECT().
			MarkConversationRead(gomock.Any(), convID, userID).
			Return(int64(0), pkgerrors.New("connection reset"))

		err := uc.MarkRead(context.Background(), userID, convID)
		require.Error(t, err)
		assert.True(t, appErrors.Retryable(err))
	})
}

func TestMessageUsecase_Delete(t *testing.T) {
	senderID := uuid.New()
	messageID := uuid.New()

	t.Run("delete for me flips the sender-only flag", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockRepo := mocks.NewMockChatRepository(ctrl)
		uc := NewMessageUsecase(mockRepo, nil)

		mockRepo.EXPECT().
			SetMessageDeleted(gomock.Any(), messageID, senderID, false).
			Return(nil)

		require.NoError(t, uc.DeleteForMe(context.Background(), senderID, messageID))
	})

	t.Run("delete for everyone flips the global flag", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockRepo := mocks.NewMockChatRepository(ctrl)
		uc := NewMessageUsecase(mockRepo, nil)

		mockRepo.EXPECT().
			SetMessageDeleted(gomock.Any(), messageID, senderID, true).
			Return(nil)

		require.NoError(t, uc.DeleteForEveryone(context.Background(), senderID, messageID))
	})

	t.Run("someone else's message cannot be deleted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockRepo := mocks.NewMockChatRepository(ctrl)
		uc := NewMessageUsecase(mockRepo, nil)

		mockRepo.EXPECT().
			SetMessageDeleted(gomock.Any(), messageID, senderID, true).
			Return(appErrors.ErrMessageNotFound)

		err := uc.DeleteForEveryone(context.Background(), senderID, messageID)
		assert.ErrorIs(t, err, appErrors.ErrMessageNotFound)
	})
}
