package realtime

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ankit-Silwal/yapify-backend/internal/chat/mocks"
	"github.com/Ankit-Silwal/yapify-backend/internal/chat/model"
	"github.com/Ankit-Silwal/yapify-backend/internal/session"
	appErrors "github.com/Ankit-Silwal/yapify-backend/pkg/errors"
)

type gatewayFixture struct {
	hub        *Hub
	sessions   *session.Manager
	membership *mocks.MockMembershipUsecase
	messages   *mocks.MockMessageUsecase
	server     *httptest.Server
}

// waits until the conversation channel has the expected number of
// subscribers; connect-time subscriptions happen after the handshake
func waitForSubscribers(t *testing.T, f *gatewayFixture, channel string, n int) {
	t.Helper()
	require.Eventually(t, func() bool {
		return f.hub.Subscribers(channel) >= n
	}, 2*time.Second, 10*time.Millisecond)
}

func newGatewayFixture(t *testing.T) *gatewayFixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	primary := session.NewMemoryStore(time.Minute)
	fallback := session.NewMemoryStore(time.Minute)
	t.Cleanup(primary.Close)
	t.Cleanup(fallback.Close)
	sessions := session.NewManager(primary, fallback, time.Hour, time.Minute, nil)
	t.Cleanup(sessions.Close)

	membership := mocks.NewMockMembershipUsecase(ctrl)
	messages := mocks.NewMockMessageUsecase(ctrl)

	hub := NewHub()
	gateway := NewGateway(hub, sessions, membership, messages, nil)
	server := httptest.NewServer(http.HandlerFunc(gateway.ServeWS))
	t.Cleanup(server.Close)

	return &gatewayFixture{
		hub:        hub,
		sessions:   sessions,
		membership: membership,
		messages:   messages,
		server:     server,
	}
}

func (f *gatewayFixture) dial(t *testing.T, sessionID string) *websocket.Conn {
	t.Helper()

	wsURL := "ws" + strings.TrimPrefix(f.server.URL, "http")
	header := http.Header{}
	if sessionID != "" {
		header.Set("Cookie", "sessionId="+sessionID)
	}
	conn, resp, err := websocket.DefaultDialer.Dial(wsURL, header)
	require.NoError(t, err)
	if resp != nil {
		resp.Body.Close()
	}
	t.Cleanup(func() { conn.Close() })
	return conn
}

func (f *gatewayFixture) login(t *testing.T, userID uuid.UUID) string {
	t.Helper()
	sid, err := f.sessions.Create(context.Background(), userID.String(), session.ClientMeta{IP: "127.0.0.1", UserAgent: "test"})
	require.NoError(t, err)
	return sid
}

func readEvent(t *testing.T, conn *websocket.Conn) Event {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	var ev Event
	require.NoError(t, conn.ReadJSON(&ev))
	return ev
}

func TestGateway_RejectsMissingSession(t *testing.T) {
	f := newGatewayFixture(t)

	wsURL := "ws" + strings.TrimPrefix(f.server.URL, "http")
	_, resp, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.Error(t, err)
	require.NotNil(t, resp)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestGateway_RejectsRevokedSession(t *testing.T) {
	f := newGatewayFixture(t)

	userID := uuid.New()
	sid := f.login(t, userID)
	require.NoError(t, f.sessions.Revoke(context.Background(), sid))

	wsURL := "ws" + strings.TrimPrefix(f.server.URL, "http")
	header := http.Header{}
	header.Set("Cookie", "sessionId="+sid)
	_, resp, err := websocket.DefaultDialer.Dial(wsURL, header)
	require.Error(t, err)
	require.NotNil(t, resp)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestGateway_SendAckAndBroadcast(t *testing.T) {
	f := newGatewayFixture(t)

	senderID := uuid.New()
	receiverID := uuid.New()
	convID := uuid.New()
	msgID := uuid.New()

	// both connections land in the conversation channel at connect
	f.membership.EXPECT().
		ListActiveConversationIDs(gomock.Any(), senderID).
		Return([]uuid.UUID{convID}, nil)
	f.membership.EXPECT().
		ListActiveConversationIDs(gomock.Any(), receiverID).
		Return([]uuid.UUID{convID}, nil)

	f.messages.EXPECT().
		Send(gomock.Any(), senderID, convID, "hello", "text").
		Return(&model.Message{
			ID:             msgID,
			ConversationID: convID,
			SenderID:       senderID,
			Content:        "hello",
			MessageType:    "text",
			CreatedAt:      time.Now(),
		}, nil)

	sender := f.dial(t, f.login(t, senderID))
	receiver := f.dial(t, f.login(t, receiverID))
	waitForSubscribers(t, f, ConversationChannel(convID), 2)

	send, err := NewEvent(EventMessageSend, SendPayload{
		ConversationID: convID,
		Content:        "hello",
		MessageType:    "text",
		CorrelationID:  "corr-1",
	})
	require.NoError(t, err)
	require.NoError(t, sender.WriteJSON(send))

	// origin gets the ack first, then the conversation broadcast
	ack := readEvent(t, sender)
	require.Equal(t, EventMessageAck, ack.Type)
	var ackPayload AckPayload
	require.NoError(t, json.Unmarshal(ack.Data, &ackPayload))
	assert.Equal(t, "corr-1", ackPayload.CorrelationID)
	assert.Equal(t, msgID, ackPayload.MessageID)

	broadcast := readEvent(t, receiver)
	require.Equal(t, EventMessageNew, broadcast.Type)
	var newPayload NewMessagePayload
	require.NoError(t, json.Unmarshal(broadcast.Data, &newPayload))
	assert.Equal(t, msgID, newPayload.ID)
	assert.Equal(t, senderID, newPayload.SenderID)
	assert.Equal(t, "hello", newPayload.Content)
}

func TestGateway_SendFailureStaysOnOrigin(t *testing.T) {
	f := newGatewayFixture(t)

	senderID := uuid.New()
	bystanderID := uuid.New()
	convID := uuid.New()

	f.membership.EXPECT().
		ListActiveConversationIDs(gomock.Any(), senderID).
		Return(nil, nil)
	f.membership.EXPECT().
		ListActiveConversationIDs(gomock.Any(), bystanderID).
		Return([]uuid.UUID{convID}, nil)

	f.messages.EXPECT().
		Send(gomock.Any(), senderID, convID, "hello", "text").
		Return(nil, appErrors.ErrNotAParticipant)

	sender := f.dial(t, f.login(t, senderID))
	bystander := f.dial(t, f.login(t, bystanderID))
	waitForSubscribers(t, f, ConversationChannel(convID), 1)

	send, err := NewEvent(EventMessageSend, SendPayload{
		ConversationID: convID,
		Content:        "hello",
		MessageType:    "text",
		CorrelationID:  "corr-2",
	})
	require.NoError(t, err)
	require.NoError(t, sender.WriteJSON(send))

	errEvent := readEvent(t, sender)
	require.Equal(t, EventMessageError, errEvent.Type)
	var errPayload ErrorPayload
	require.NoError(t, json.Unmarshal(errEvent.Data, &errPayload))
	assert.Equal(t, "corr-2", errPayload.CorrelationID)
	assert.Contains(t, errPayload.Reason, "PERMISSION_DENIED")

	// nothing leaks to the conversation channel
	require.NoError(t, bystander.SetReadDeadline(time.Now().Add(300*time.Millisecond)))
	var ev Event
	assert.Error(t, bystander.ReadJSON(&ev))
}

func TestGateway_JoinRevalidatesMembership(t *testing.T) {
	f := newGatewayFixture(t)

	userID := uuid.New()
	senderID := uuid.New()
	convID := uuid.New()

	t.Run("non-member is rejected", func(t *testing.T) {
		f.membership.EXPECT().
			ListActiveConversationIDs(gomock.Any(), userID).
			Return(nil, nil)
		f.membership.EXPECT().
			IsActiveParticipant(gomock.Any(), convID, userID).
			Return(false, nil)

		conn := f.dial(t, f.login(t, userID))

		join, err := NewEvent(EventConversationJoin, JoinPayload{ConversationID: convID})
		require.NoError(t, err)
		require.NoError(t, conn.WriteJSON(join))

		errEvent := readEvent(t, conn)
		require.Equal(t, EventMessageError, errEvent.Type)
		var errPayload ErrorPayload
		require.NoError(t, json.Unmarshal(errEvent.Data, &errPayload))
		assert.Contains(t, errPayload.Reason, "PERMISSION_DENIED")
	})

	t.Run("member joins and receives broadcasts", func(t *testing.T) {
		f.membership.EXPECT().
			ListActiveConversationIDs(gomock.Any(), userID).
			Return(nil, nil)
		f.membership.EXPECT().
			ListActiveConversationIDs(gomock.Any(), senderID).
			Return([]uuid.UUID{convID}, nil)
		f.membership.EXPECT().
			IsActiveParticipant(gomock.Any(), convID, userID).
			Return(true, nil)
		f.messages.EXPECT().
			Send(gomock.Any(), senderID, convID, "ping", "text").
			Return(&model.Message{ID: uuid.New(), ConversationID: convID, SenderID: senderID, Content: "ping", MessageType: "text"}, nil)

		joined := f.dial(t, f.login(t, userID))
		sender := f.dial(t, f.login(t, senderID))

		join, err := NewEvent(EventConversationJoin, JoinPayload{ConversationID: convID})
		require.NoError(t, err)
		require.NoError(t, joined.WriteJSON(join))

		// joining produces no reply; wait for the subscription to land
		waitForSubscribers(t, f, ConversationChannel(convID), 2)

		send, err := NewEvent(EventMessageSend, SendPayload{ConversationID: convID, Content: "ping", MessageType: "text"})
		require.NoError(t, err)
		require.NoError(t, sender.WriteJSON(send))

		got := readEvent(t, joined)
		assert.Equal(t, EventMessageNew, got.Type)
	})
}

func TestGateway_MarkReadBroadcastsReadEvent(t *testing.T) {
	f := newGatewayFixture(t)

	readerID := uuid.New()
	otherID := uuid.New()
	convID := uuid.New()

	f.membership.EXPECT().
		ListActiveConversationIDs(gomock.Any(), readerID).
		Return([]uuid.UUID{convID}, nil)
	f.membership.EXPECT().
		ListActiveConversationIDs(gomock.Any(), otherID).
		Return([]uuid.UUID{convID}, nil)

	f.messages.EXPECT().
		MarkRead(gomock.Any(), readerID, convID).
		Return(nil)

	reader := f.dial(t, f.login(t, readerID))
	other := f.dial(t, f.login(t, otherID))
	waitForSubscribers(t, f, ConversationChannel(convID), 2)

	markRead, err := NewEvent(EventConversationMarkRead, MarkReadPayload{ConversationID: convID})
	require.NoError(t, err)
	require.NoError(t, reader.WriteJSON(markRead))

	got := readEvent(t, other)
	require.Equal(t, EventConversationRead, got.Type)
	var payload ReadPayload
	require.NoError(t, json.Unmarshal(got.Data, &payload))
	assert.Equal(t, convID, payload.ConversationID)
	assert.Equal(t, readerID, payload.UserID)
	assert.False(t, payload.ReadAt.IsZero())
}
