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

type MembershipUsecase struct {
	repo   chat.ChatRepository
	logger *logger.Logger
}

func NewMembershipUsecase(repo chat.ChatRepository, logger *logger.Logger) *MembershipUsecase {
	return &MembershipUsecase{repo: repo, logger: logger}
}

func (uc *MembershipUsecase) CreateGroup(ctx context.Context, creatorID uuid.UUID, memberIDs []uuid.UUID) (uuid.UUID, error) {
	if len(memberIDs) == 0 {
		return uuid.Nil, appErrors.InvalidArg("a group needs at least one member besides the creator")
	}

	convID, err := uc.repo.CreateGroup(ctx, creatorID, memberIDs)
	if err != nil {
		uc.logger.Error("group creation failed", "creatorId", creatorID, "err", err)
		return uuid.Nil, appErrors.ErrStorageFailure(err)
	}
	return convID, nil
}

// requireActive loads the actor's row and rejects removed or unknown
// participants before any membership mutation runs.
func (uc *MembershipUsecase) requireActive(ctx context.Context, conversationID, actorID uuid.UUID) (role string, err error) {
	p, err := uc.repo.GetParticipant(ctx, conversationID, actorID)
	if err != nil {
		if errors.Is(err, appErrors.ErrParticipantNotFound) {
			return "", appErrors.ErrNotAParticipant
		}
		return "", appErrors.ErrStorageFailure(err)
	}
	if !p.Active() {
		return "", appErrors.ErrNotAParticipant
	}
	return p.Role, nil
}

func (uc *MembershipUsecase) requireActiveAdmin(ctx context.Context, conversationID, actorID uuid.UUID) error {
	role, err := uc.requireActive(ctx, conversationID, actorID)
	if err != nil {
		return err
	}
	if role != model.RoleAdmin {
		return appErrors.ErrRoleViolation
	}
	return nil
}

// AddMember lets any active participant bring a user in; a soft-removed
// user is re-admitted on their existing row.
func (uc *MembershipUsecase) AddMember(ctx context.Context, actorID, conversationID, targetID uuid.UUID) error {
	if _, err := uc.requireActive(ctx, conversationID, actorID); err != nil {
		return err
	}
	if err := uc.repo.ReadmitOrInsertMember(ctx, conversationID, targetID); err != nil {
		uc.logger.Error("add member failed", "conversationId", conversationID, "targetId", targetID, "err", err)
		return appErrors.ErrStorageFailure(err)
	}
	return nil
}

func (uc *MembershipUsecase) RemoveMember(ctx context.Context, actorID, conversationID, targetID uuid.UUID) error {
	return uc.Kick(ctx, actorID, conversationID, targetID)
}

// Kick soft-removes an active member. Active admins are kick-immune; the
// target has to lose the role first.
func (uc *MembershipUsecase) Kick(ctx context.Context, actorID, conversationID, targetID uuid.UUID) error {
	if err := uc.requireActiveAdmin(ctx, conversationID, actorID); err != nil {
		return err
	}
	return uc.repo.KickParticipant(ctx, conversationID, targetID)
}

// Leave delegates both checks to the repository: the actor's active row
// and the last-admin count must be read under the same row lock as the
// removal, or a concurrent leave could strip the final admin.
func (uc *MembershipUsecase) Leave(ctx context.Context, actorID, conversationID uuid.UUID) error {
	return uc.repo.LeaveConversation(ctx, conversationID, actorID)
}

func (uc *MembershipUsecase) Promote(ctx context.Context, actorID, conversationID, targetID uuid.UUID) error {
	if err := uc.requireActiveAdmin(ctx, conversationID, actorID); err != nil {
		return err
	}
	return uc.repo.PromoteToAdmin(ctx, conversationID, targetID)
}

func (uc *MembershipUsecase) IsActiveParticipant(ctx context.Context, conversationID, userID uuid.UUID) (bool, error) {
	return uc.repo.IsActiveParticipant(ctx, conversationID, userID)
}

func (uc *MembershipUsecase) ListActiveConversationIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	return uc.repo.ListActiveConversationIDs(ctx, userID)
}

func (uc *MembershipUsecase) GetOrCreateDirectConversation(ctx context.Context, userA, userB uuid.UUID) (uuid.UUID, error) {
	if userA == userB {
		return uuid.Nil, appErrors.InvalidArg("cannot open a direct conversation with yourself")
	}
	convID, err := uc.repo.GetOrCreateDirectConversation(ctx, userA, userB)
	if err != nil {
		uc.logger.Error("direct conversation lookup failed", "err", err)
		return uuid.Nil, appErrors.ErrStorageFailure(err)
	}
	return convID, nil
}
