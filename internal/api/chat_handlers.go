package api

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/Ankit-Silwal/yapify-backend/internal/chat"
	appErrors "github.com/Ankit-Silwal/yapify-backend/pkg/errors"
)

type ChatHandler struct {
	membership chat.MembershipUsecase
	messages   chat.MessageUsecase
}

func NewChatHandler(membership chat.MembershipUsecase, messages chat.MessageUsecase) *ChatHandler {
	return &ChatHandler{membership: membership, messages: messages}
}

func (h *ChatHandler) CreateGroup(w http.ResponseWriter, r *http.Request) {
	var body struct {
		MemberIDs []uuid.UUID `json:"memberIds"`
	}
	if err := decodeBody(r, &body); err != nil {
		respondError(w, err)
		return
	}

	convID, err := h.membership.CreateGroup(r.Context(), userIDFrom(r), body.MemberIDs)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, "group created", map[string]any{"conversationId": convID})
}

type memberBody struct {
	ConversationID uuid.UUID `json:"conversationId"`
	UserID         uuid.UUID `json:"userId"`
}

func (h *ChatHandler) AddMember(w http.ResponseWriter, r *http.Request) {
	var body memberBody
	if err := decodeBody(r, &body); err != nil {
		respondError(w, err)
		return
	}
	if err := h.membership.AddMember(r.Context(), userIDFrom(r), body.ConversationID, body.UserID); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, "member added", nil)
}

func (h *ChatHandler) RemoveFromGroup(w http.ResponseWriter, r *http.Request) {
	var body memberBody
	if err := decodeBody(r, &body); err != nil {
		respondError(w, err)
		return
	}
	if err := h.membership.RemoveMember(r.Context(), userIDFrom(r), body.ConversationID, body.UserID); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, "member removed", nil)
}

func (h *ChatHandler) KickFromGroup(w http.ResponseWriter, r *http.Request) {
	var body memberBody
	if err := decodeBody(r, &body); err != nil {
		respondError(w, err)
		return
	}
	if err := h.membership.Kick(r.Context(), userIDFrom(r), body.ConversationID, body.UserID); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, "member kicked", nil)
}

func (h *ChatHandler) GiveAdmin(w http.ResponseWriter, r *http.Request) {
	var body memberBody
	if err := decodeBody(r, &body); err != nil {
		respondError(w, err)
		return
	}
	if err := h.membership.Promote(r.Context(), userIDFrom(r), body.ConversationID, body.UserID); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, "admin role granted", nil)
}

func (h *ChatHandler) LeaveGroup(w http.ResponseWriter, r *http.Request) {
	var body struct {
		ConversationID uuid.UUID `json:"conversationId"`
	}
	if err := decodeBody(r, &body); err != nil {
		respondError(w, err)
		return
	}
	if err := h.membership.Leave(r.Context(), userIDFrom(r), body.ConversationID); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, "left the conversation", nil)
}

// SendMessage accepts either an existing conversationId or a receiverId;
// the latter resolves (or lazily creates) the direct conversation first.
func (h *ChatHandler) SendMessage(w http.ResponseWriter, r *http.Request) {
	var body struct {
		ConversationID uuid.UUID `json:"conversationId"`
		ReceiverID     uuid.UUID `json:"receiverId"`
		Content        string    `json:"content"`
		MessageType    string    `json:"messageType"`
	}
	if err := decodeBody(r, &body); err != nil {
		respondError(w, err)
		return
	}

	senderID := userIDFrom(r)
	convID := body.ConversationID
	if convID == uuid.Nil {
		if body.ReceiverID == uuid.Nil {
			respondError(w, appErrors.InvalidArg("conversationId or receiverId is required"))
			return
		}
		var err error
		convID, err = h.membership.GetOrCreateDirectConversation(r.Context(), senderID, body.ReceiverID)
		if err != nil {
			respondError(w, err)
			return
		}
	}

	msg, err := h.messages.Send(r.Context(), senderID, convID, body.Content, body.MessageType)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, "the message was sent", map[string]any{
		"conversationId": convID,
		"data":           msg,
	})
}

func (h *ChatHandler) LoadMessages(w http.ResponseWriter, r *http.Request) {
	var body struct {
		ConversationID uuid.UUID `json:"conversationId"`
	}
	if err := decodeBody(r, &body); err != nil {
		respondError(w, err)
		return
	}

	views, err := h.messages.ListMessages(r.Context(), userIDFrom(r), body.ConversationID)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, "", views)
}

func (h *ChatHandler) LoadChatList(w http.ResponseWriter, r *http.Request) {
	entries, err := h.messages.ChatList(r.Context(), userIDFrom(r))
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, "", entries)
}

func (h *ChatHandler) GetUnreadCounts(w http.ResponseWriter, r *http.Request) {
	counts, err := h.messages.UnreadCounts(r.Context(), userIDFrom(r))
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, "", counts)
}

func (h *ChatHandler) MarkAsRead(w http.ResponseWriter, r *http.Request) {
	var body struct {
		ConversationID uuid.UUID `json:"conversationId"`
	}
	if err := decodeBody(r, &body); err != nil {
		respondError(w, err)
		return
	}
	if err := h.messages.MarkRead(r.Context(), userIDFrom(r), body.ConversationID); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, "conversation marked read", nil)
}

func (h *ChatHandler) DeleteForMe(w http.ResponseWriter, r *http.Request) {
	var body struct {
		MessageID uuid.UUID `json:"messageId"`
	}
	if err := decodeBody(r, &body); err != nil {
		respondError(w, err)
		return
	}
	if err := h.messages.DeleteForMe(r.Context(), userIDFrom(r), body.MessageID); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, "message hidden for you", nil)
}

func (h *ChatHandler) DeleteForEveryone(w http.ResponseWriter, r *http.Request) {
	var body struct {
		MessageID uuid.UUID `json:"messageId"`
	}
	if err := decodeBody(r, &body); err != nil {
		respondError(w, err)
		return
	}
	if err := h.messages.DeleteForEveryone(r.Context(), userIDFrom(r), body.MessageID); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, "message deleted for everyone", nil)
}
