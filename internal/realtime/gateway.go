package realtime

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/Ankit-Silwal/yapify-backend/internal/chat"
	"github.com/Ankit-Silwal/yapify-backend/internal/session"
	appErrors "github.com/Ankit-Silwal/yapify-backend/pkg/errors"
	"github.com/Ankit-Silwal/yapify-backend/pkg/logger"
)

const sessionCookieName = "sessionId"

// Gateway upgrades authenticated HTTP requests to websocket connections
// and routes events between clients and the chat usecases.
type Gateway struct {
	hub        *Hub
	sessions   *session.Manager
	membership chat.MembershipUsecase
	messages   chat.MessageUsecase
	logger     *logger.Logger

	upgrader websocket.Upgrader
}

func NewGateway(hub *Hub, sessions *session.Manager, membership chat.MembershipUsecase, messages chat.MessageUsecase, log *logger.Logger) *Gateway {
	return &Gateway{
		hub:        hub,
		sessions:   sessions,
		membership: membership,
		messages:   messages,
		logger:     log,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
	}
}

// ServeWS is the websocket endpoint. The session id comes from the
// sessionId cookie, with a query parameter fallback for clients that
// cannot send cookies on the upgrade request.
func (g *Gateway) ServeWS(w http.ResponseWriter, r *http.Request) {
	sessionID := ""
	if cookie, err := r.Cookie(sessionCookieName); err == nil {
		sessionID = cookie.Value
	}
	if sessionID == "" {
		sessionID = r.URL.Query().Get(sessionCookieName)
	}
	if sessionID == "" {
		http.Error(w, "authentication required", http.StatusUnauthorized)
		return
	}

	sess, err := g.sessions.Validate(r.Context(), sessionID)
	if err != nil {
		http.Error(w, "session expired or invalid", http.StatusUnauthorized)
		return
	}
	userID, err := uuid.Parse(sess.UserID)
	if err != nil {
		http.Error(w, "session expired or invalid", http.StatusUnauthorized)
		return
	}

	conn, err := g.upgrader.Upgrade(w, r, nil)
	if err != nil {
		g.logger.Warn("websocket upgrade failed", "err", err)
		return
	}

	client := newClient(userID, conn)
	g.hub.Subscribe(client, UserChannel(userID))

	// membership snapshot at connect; later joins go through
	// conversation:join which re-checks membership
	convIDs, err := g.membership.ListActiveConversationIDs(r.Context(), userID)
	if err != nil {
		g.logger.Error("failed to load conversation subscriptions", "userId", userID, "err", err)
	}
	for _, id := range convIDs {
		g.hub.Subscribe(client, ConversationChannel(id))
	}

	go client.writePump()
	go client.readPump(g)
}

func (g *Gateway) handle(c *Client, ev Event) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	switch ev.Type {
	case EventMessageSend:
		g.handleSend(ctx, c, ev.Data)
	case EventConversationJoin:
		g.handleJoin(ctx, c, ev.Data)
	case EventConversationMarkRead:
		g.handleMarkRead(ctx, c, ev.Data)
	default:
		g.sendError(c, "", "unknown event type: "+ev.Type)
	}
}

func (g *Gateway) handleSend(ctx context.Context, c *Client, data json.RawMessage) {
	var p SendPayload
	if err := json.Unmarshal(data, &p); err != nil {
		g.sendError(c, "", "malformed message:send payload")
		return
	}

	msg, err := g.messages.Send(ctx, c.userID, p.ConversationID, p.Content, p.MessageType)
	if err != nil {
		g.sendError(c, p.CorrelationID, reasonFor(err))
		return
	}

	ack, err := NewEvent(EventMessageAck, AckPayload{CorrelationID: p.CorrelationID, MessageID: msg.ID})
	if err == nil {
		c.Enqueue(ack)
	}

	broadcast, err := NewEvent(EventMessageNew, NewMessagePayload{
		ID:             msg.ID,
		ConversationID: msg.ConversationID,
		SenderID:       msg.SenderID,
		Content:        msg.Content,
		MessageType:    msg.MessageType,
		CreatedAt:      msg.CreatedAt,
	})
	if err == nil {
		g.hub.Broadcast(ConversationChannel(msg.ConversationID), broadcast)
	}
}

func (g *Gateway) handleJoin(ctx context.Context, c *Client, data json.RawMessage) {
	var p JoinPayload
	if err := json.Unmarshal(data, &p); err != nil {
		g.sendError(c, "", "malformed conversation:join payload")
		return
	}

	active, err := g.membership.IsActiveParticipant(ctx, p.ConversationID, c.userID)
	if err != nil {
		g.sendError(c, "", reasonFor(appErrors.ErrStorageFailure(err)))
		return
	}
	if !active {
		g.sendError(c, "", reasonFor(appErrors.ErrNotAParticipant))
		return
	}

	g.hub.Subscribe(c, ConversationChannel(p.ConversationID))
}

func (g *Gateway) handleMarkRead(ctx context.Context, c *Client, data json.RawMessage) {
	var p MarkReadPayload
	if err := json.Unmarshal(data, &p); err != nil {
		g.sendError(c, "", "malformed conversation:markRead payload")
		return
	}

	if err := g.messages.MarkRead(ctx, c.userID, p.ConversationID); err != nil {
		g.sendError(c, "", reasonFor(err))
		return
	}

	read, err := NewEvent(EventConversationRead, ReadPayload{
		ConversationID: p.ConversationID,
		UserID:         c.userID,
		ReadAt:         time.Now().UTC(),
	})
	if err == nil {
		g.hub.Broadcast(ConversationChannel(p.ConversationID), read)
	}
}

func (g *Gateway) sendError(c *Client, correlationID, reason string) {
	ev, err := NewEvent(EventMessageError, ErrorPayload{CorrelationID: correlationID, Reason: reason})
	if err != nil {
		return
	}
	c.Enqueue(ev)
}

func reasonFor(err error) string {
	return string(appErrors.CodeOf(err)) + ": " + err.Error()
}
