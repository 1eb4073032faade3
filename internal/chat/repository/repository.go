package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/uptrace/bun"

	"github.com/Ankit-Silwal/yapify-backend/internal/chat"
	"github.com/Ankit-Silwal/yapify-backend/internal/chat/model"
	appErrors "github.com/Ankit-Silwal/yapify-backend/pkg/errors"
	"github.com/Ankit-Silwal/yapify-backend/pkg/logger"
)

type ChatRepository struct {
	db     *bun.DB
	logger *logger.Logger
}

func NewChatRepository(db *bun.DB, logger *logger.Logger) *ChatRepository {
	return &ChatRepository{db: db, logger: logger}
}

func (r *ChatRepository) CreateGroup(ctx context.Context, creatorID uuid.UUID, memberIDs []uuid.UUID) (uuid.UUID, error) {
	conv := &model.Conversation{IsGroup: true}

	err := r.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		if _, err := tx.NewInsert().Model(conv).Returning("*").Exec(ctx); err != nil {
			return errors.Wrap(err, "chatRepo.CreateGroup.InsertConversation")
		}

		seen := map[uuid.UUID]bool{creatorID: true}
		participants := []model.Participant{{
			ConversationID: conv.ID,
			UserID:         creatorID,
			Role:           model.RoleAdmin,
		}}
		for _, id := range memberIDs {
			if seen[id] {
				continue
			}
			seen[id] = true
			participants = append(participants, model.Participant{
				ConversationID: conv.ID,
				UserID:         id,
				Role:           model.RoleMember,
			})
		}

		if _, err := tx.NewInsert().Model(&participants).Exec(ctx); err != nil {
			return errors.Wrap(err, "chatRepo.CreateGroup.InsertParticipants")
		}
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}
	return conv.ID, nil
}

func (r *ChatRepository) GetConversation(ctx context.Context, conversationID uuid.UUID) (*model.Conversation, error) {
	conv := new(model.Conversation)
	err := r.db.NewSelect().Model(conv).Where("c.id = ?", conversationID).Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, appErrors.ErrConversationNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "chatRepo.GetConversation.Scan")
	}
	return conv, nil
}

func (r *ChatRepository) GetOrCreateDirectConversation(ctx context.Context, userA, userB uuid.UUID) (uuid.UUID, error) {
	var convID uuid.UUID

	err := r.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		err := tx.NewSelect().
			Model((*model.Conversation)(nil)).
			Column("c.id").
			Join("JOIN conversation_participants AS cp1 ON cp1.conversation_id = c.id").
			Join("JOIN conversation_participants AS cp2 ON cp2.conversation_id = c.id").
			Where("cp1.user_id = ?", userA).
			Where("cp2.user_id = ?", userB).
			Where("c.is_group = false").
			Limit(1).
			Scan(ctx, &convID)
		if err == nil {
			return nil
		}
		if !errors.Is(err, sql.ErrNoRows) {
			return errors.Wrap(err, "chatRepo.GetOrCreateDirectConversation.Select")
		}

		conv := &model.Conversation{IsGroup: false}
		if _, err := tx.NewInsert().Model(conv).Returning("*").Exec(ctx); err != nil {
			return errors.Wrap(err, "chatRepo.GetOrCreateDirectConversation.Insert")
		}

		participants := []model.Participant{
			{ConversationID: conv.ID, UserID: userA, Role: model.RoleMember},
			{ConversationID: conv.ID, UserID: userB, Role: model.RoleMember},
		}
		if _, err := tx.NewInsert().Model(&participants).Exec(ctx); err != nil {
			return errors.Wrap(err, "chatRepo.GetOrCreateDirectConversation.InsertParticipants")
		}
		convID = conv.ID
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}
	return convID, nil
}

func (r *ChatRepository) GetParticipant(ctx context.Context, conversationID, userID uuid.UUID) (*model.Participant, error) {
	p := new(model.Participant)
	err := r.db.NewSelect().
		Model(p).
		Where("cp.conversation_id = ? AND cp.user_id = ?", conversationID, userID).
		Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, appErrors.ErrParticipantNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "chatRepo.GetParticipant.Scan")
	}
	return p, nil
}

func (r *ChatRepository) IsActiveParticipant(ctx context.Context, conversationID, userID uuid.UUID) (bool, error) {
	exists, err := r.db.NewSelect().
		Model((*model.Participant)(nil)).
		Where("cp.conversation_id = ? AND cp.user_id = ? AND cp.removed_at IS NULL", conversationID, userID).
		Exists(ctx)
	if err != nil {
		return false, errors.Wrap(err, "chatRepo.IsActiveParticipant.Exists")
	}
	return exists, nil
}

func (r *ChatRepository) ListActiveParticipants(ctx context.Context, conversationID uuid.UUID) ([]model.Participant, error) {
	var participants []model.Participant
	err := r.db.NewSelect().
		Model(&participants).
		Where("cp.conversation_id = ? AND cp.removed_at IS NULL", conversationID).
		Scan(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "chatRepo.ListActiveParticipants.Scan")
	}
	return participants, nil
}

func (r *ChatRepository) ListActiveConversationIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := r.db.NewSelect().
		Model((*model.Participant)(nil)).
		Column("cp.conversation_id").
		Where("cp.user_id = ? AND cp.removed_at IS NULL", userID).
		Scan(ctx, &ids)
	if err != nil {
		return nil, errors.Wrap(err, "chatRepo.ListActiveConversationIDs.Scan")
	}
	return ids, nil
}

func (r *ChatRepository) ReadmitOrInsertMember(ctx context.Context, conversationID, userID uuid.UUID) error {
	p := &model.Participant{
		ConversationID: conversationID,
		UserID:         userID,
		Role:           model.RoleMember,
	}
	// Re-admission reuses the soft-removed row; readmitted users come
	// back as members regardless of their previous role. The conflict
	// update only touches soft-removed rows, so adding someone who is
	// already active is a no-op and cannot change their role.
	_, err := r.db.NewInsert().
		Model(p).
		On("CONFLICT (conversation_id, user_id) DO UPDATE").
		Set("removed_at = NULL").
		Set("role = EXCLUDED.role").
		Where("cp.removed_at IS NOT NULL").
		Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "chatRepo.ReadmitOrInsertMember.Exec")
	}
	return nil
}

func (r *ChatRepository) KickParticipant(ctx context.Context, conversationID, targetID uuid.UUID) error {
	return r.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		target := new(model.Participant)
		err := tx.NewSelect().
			Model(target).
			Where("cp.conversation_id = ? AND cp.user_id = ?", conversationID, targetID).
			For("UPDATE").
			Scan(ctx)
		if errors.Is(err, sql.ErrNoRows) {
			return appErrors.ErrParticipantNotFound
		}
		if err != nil {
			return errors.Wrap(err, "chatRepo.KickParticipant.Select")
		}
		if !target.Active() {
			return appErrors.ErrParticipantNotFound
		}
		if target.Role == model.RoleAdmin {
			return appErrors.ErrAdminKickImmune
		}

		_, err = tx.NewUpdate().
			Model((*model.Participant)(nil)).
			Set("removed_at = ?", time.Now().UTC()).
			Where("conversation_id = ? AND user_id = ?", conversationID, targetID).
			Exec(ctx)
		if err != nil {
			return errors.Wrap(err, "chatRepo.KickParticipant.Update")
		}
		return nil
	})
}

func (r *ChatRepository) LeaveConversation(ctx context.Context, conversationID, userID uuid.UUID) error {
	return r.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		actor := new(model.Participant)
		err := tx.NewSelect().
			Model(actor).
			Where("cp.conversation_id = ? AND cp.user_id = ?", conversationID, userID).
			For("UPDATE").
			Scan(ctx)
		if errors.Is(err, sql.ErrNoRows) {
			return appErrors.ErrNotAParticipant
		}
		if err != nil {
			return errors.Wrap(err, "chatRepo.LeaveConversation.Select")
		}
		if !actor.Active() {
			return appErrors.ErrNotAParticipant
		}

		// The admin invariant is checked here, inside the same
		// transaction as the removal, never repaired afterwards.
		if actor.Role == model.RoleAdmin {
			others, err := tx.NewSelect().
				Model((*model.Participant)(nil)).
				Where("cp.conversation_id = ?", conversationID).
				Where("cp.role = ?", model.RoleAdmin).
				Where("cp.removed_at IS NULL").
				Where("cp.user_id != ?", userID).
				Count(ctx)
			if err != nil {
				return errors.Wrap(err, "chatRepo.LeaveConversation.CountAdmins")
			}
			if others == 0 {
				return appErrors.ErrLastAdmin
			}
		}

		_, err = tx.NewUpdate().
			Model((*model.Participant)(nil)).
			Set("removed_at = ?", time.Now().UTC()).
			Where("conversation_id = ? AND user_id = ?", conversationID, userID).
			Exec(ctx)
		if err != nil {
			return errors.Wrap(err, "chatRepo.LeaveConversation.Update")
		}
		return nil
	})
}

func (r *ChatRepository) PromoteToAdmin(ctx context.Context, conversationID, targetID uuid.UUID) error {
	res, err := r.db.NewUpdate().
		Model((*model.Participant)(nil)).
		Set("role = ?", model.RoleAdmin).
		Where("conversation_id = ? AND user_id = ? AND removed_at IS NULL", conversationID, targetID).
		Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "chatRepo.PromoteToAdmin.Update")
	}
	if rows, _ := res.RowsAffected(); rows == 0 {
		return appErrors.ErrParticipantNotFound
	}
	return nil
}

// CreateMessageWithStatuses inserts the message and its full status
// fan-out in one transaction: one row per active participant, the
// sender's row read, the rest sent. Any failure rolls back everything so
// a message can never exist without its complete fan-out.
func (r *ChatRepository) CreateMessageWithStatuses(ctx context.Context, msg *model.Message) error {
	return r.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		active, err := tx.NewSelect().
			Model((*model.Participant)(nil)).
			Where("cp.conversation_id = ? AND cp.user_id = ? AND cp.removed_at IS NULL", msg.ConversationID, msg.SenderID).
			Exists(ctx)
		if err != nil {
			return errors.Wrap(err, "chatRepo.CreateMessageWithStatuses.SenderCheck")
		}
		if !active {
			return appErrors.ErrNotAParticipant
		}

		if _, err := tx.NewInsert().Model(msg).Returning("*").Exec(ctx); err != nil {
			return errors.Wrap(err, "chatRepo.CreateMessageWithStatuses.InsertMessage")
		}

		var participants []model.Participant
		err = tx.NewSelect().
			Model(&participants).
			Where("cp.conversation_id = ? AND cp.removed_at IS NULL", msg.ConversationID).
			Scan(ctx)
		if err != nil {
			return errors.Wrap(err, "chatRepo.CreateMessageWithStatuses.SelectParticipants")
		}

		statuses := make([]model.MessageStatus, 0, len(participants))
		for _, p := range participants {
			status := model.StatusSent
			if p.UserID == msg.SenderID {
				status = model.StatusRead
			}
			statuses = append(statuses, model.MessageStatus{
				MessageID: msg.ID,
				UserID:    p.UserID,
				Status:    status,
			})
		}

		if _, err := tx.NewInsert().Model(&statuses).Exec(ctx); err != nil {
			return errors.Wrap(err, "chatRepo.CreateMessageWithStatuses.InsertStatuses")
		}
		return nil
	})
}

func (r *ChatRepository) ListMessages(ctx context.Context, conversationID uuid.UUID) ([]model.Message, error) {
	var messages []model.Message
	err := r.db.NewSelect().
		Model(&messages).
		Where("m.conversation_id = ?", conversationID).
		Order("m.created_at ASC").
		Scan(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "chatRepo.ListMessages.Scan")
	}
	return messages, nil
}

// MarkConversationRead flips the user's non-read rows on other senders'
// messages to read. Already-read rows are excluded by the predicate, so
// the transition is forward-only by construction.
func (r *ChatRepository) MarkConversationRead(ctx context.Context, conversationID, userID uuid.UUID) (int64, error) {
	res, err := r.db.NewUpdate().
		Model((*model.MessageStatus)(nil)).
		TableExpr("messages AS m").
		Set("status = ?", model.StatusRead).
		Set("updated_at = now()").
		Where("ms.message_id = m.id").
		Where("m.conversation_id = ?", conversationID).
		Where("ms.user_id = ?", userID).
		Where("ms.status != ?", model.StatusRead).
		Where("m.sender_id != ?", userID).
		Exec(ctx)
	if err != nil {
		return 0, errors.Wrap(err, "chatRepo.MarkConversationRead.Update")
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return 0, errors.Wrap(err, "chatRepo.MarkConversationRead.RowsAffected")
	}
	return rows, nil
}

func (r *ChatRepository) SetMessageDeleted(ctx context.Context, messageID, senderID uuid.UUID, forEveryone bool) error {
	column := "deleted_for_sender"
	if forEveryone {
		column = "deleted_for_everyone"
	}

	res, err := r.db.NewUpdate().
		Model((*model.Message)(nil)).
		Set(column+" = TRUE").
		Where("id = ? AND sender_id = ?", messageID, senderID).
		Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "chatRepo.SetMessageDeleted.Update")
	}
	if rows, _ := res.RowsAffected(); rows == 0 {
		return appErrors.ErrMessageNotFound
	}
	return nil
}

func (r *ChatRepository) LatestMessages(ctx context.Context, userID uuid.UUID) ([]chat.ChatListEntry, error) {
	var entries []chat.ChatListEntry
	err := r.db.NewSelect().
		ColumnExpr("t.*").
		TableExpr(`(
			SELECT DISTINCT ON (m.conversation_id)
				m.conversation_id,
				m.id AS message_id,
				m.sender_id,
				CASE WHEN m.deleted_for_everyone THEN ? ELSE m.content END AS content,
				m.message_type,
				m.created_at
			FROM messages m
			JOIN conversation_participants cp ON cp.conversation_id = m.conversation_id
			WHERE cp.user_id = ? AND cp.removed_at IS NULL
			ORDER BY m.conversation_id, m.created_at DESC
		) AS t`, model.DeletedMessageTombstone, userID).
		OrderExpr("t.created_at DESC").
		Scan(ctx, &entries)
	if err != nil {
		return nil, errors.Wrap(err, "chatRepo.LatestMessages.Scan")
	}
	return entries, nil
}

func (r *ChatRepository) UnreadCounts(ctx context.Context, userID uuid.UUID) ([]chat.UnreadCount, error) {
	var counts []chat.UnreadCount
	err := r.db.NewSelect().
		Model((*model.MessageStatus)(nil)).
		ColumnExpr("m.conversation_id AS conversation_id").
		ColumnExpr("count(*) AS count").
		Join("JOIN messages AS m ON m.id = ms.message_id").
		Where("ms.user_id = ?", userID).
		Where("ms.status != ?", model.StatusRead).
		Where("m.sender_id != ?", userID).
		GroupExpr("m.conversation_id").
		Scan(ctx, &counts)
	if err != nil {
		return nil, errors.Wrap(err, "chatRepo.UnreadCounts.Scan")
	}
	return counts, nil
}
