package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	chatmocks "github.com/Ankit-Silwal/yapify-backend/internal/chat/mocks"
	"github.com/Ankit-Silwal/yapify-backend/internal/chat/model"
	"github.com/Ankit-Silwal/yapify-backend/internal/session"
	"github.com/Ankit-Silwal/yapify-backend/internal/user"
	usermocks "github.com/Ankit-Silwal/yapify-backend/internal/user/mocks"
	appErrors "github.com/Ankit-Silwal/yapify-backend/pkg/errors"
)

type apiFixture struct {
	sessions   *session.Manager
	accounts   *usermocks.MockUserUsecase
	membership *chatmocks.MockMembershipUsecase
	messages   *chatmocks.MockMessageUsecase
	router     http.Handler
}

func newAPIFixture(t *testing.T) *apiFixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	primary := session.NewMemoryStore(time.Minute)
	fallback := session.NewMemoryStore(time.Minute)
	t.Cleanup(primary.Close)
	t.Cleanup(fallback.Close)
	sessions := session.NewManager(primary, fallback, time.Hour, time.Minute, nil)
	t.Cleanup(sessions.Close)

	accounts := usermocks.NewMockUserUsecase(ctrl)
	membership := chatmocks.NewMockMembershipUsecase(ctrl)
	messages := chatmocks.NewMockMessageUsecase(ctrl)

	auth := NewAuthHandler(accounts, sessions, time.Hour, false, nil)
	chatH := NewChatHandler(membership, messages)

	router := NewRouter(auth, chatH, sessions, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusSwitchingProtocols)
	})

	return &apiFixture{
		sessions:   sessions,
		accounts:   accounts,
		membership: membership,
		messages:   messages,
		router:     router,
	}
}

func (f *apiFixture) login(t *testing.T, userID uuid.UUID) *http.Cookie {
	t.Helper()
	sid, err := f.sessions.Create(context.Background(), userID.String(), session.ClientMeta{})
	require.NoError(t, err)
	return &http.Cookie{Name: "sessionId", Value: sid}
}

func (f *apiFixture) do(t *testing.T, method, path string, body any, cookie *http.Cookie) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if cookie != nil {
		req.AddCookie(cookie)
	}

	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	return rec
}

func TestCheckSession(t *testing.T) {
	t.Run("no cookie", func(t *testing.T) {
		f := newAPIFixture(t)
		rec := f.do(t, http.MethodGet, "/auth/me", nil, nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("unknown session id", func(t *testing.T) {
		f := newAPIFixture(t)
		rec := f.do(t, http.MethodGet, "/auth/me", nil, &http.Cookie{Name: "sessionId", Value: "deadbeef"})
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("live session reaches the handler", func(t *testing.T) {
		f := newAPIFixture(t)
		userID := uuid.New()

		f.accounts.EXPECT().
			GetUserProfile(gomock.Any(), userID).
			Return(&user.UserDTO{ID: userID, Email: "ankit@example.com", Username: "ankit"}, nil)

		rec := f.do(t, http.MethodGet, "/auth/me", nil, f.login(t, userID))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "ankit@example.com")
	})
}

func TestAuthHandler_Register(t *testing.T) {
	t.Run("happy path - code never leaves the server", func(t *testing.T) {
		f := newAPIFixture(t)
		userID := uuid.New()

		f.accounts.EXPECT().
			Register(gomock.Any(), user.RegisterCommand{Email: "ankit@example.com", Username: "ankit", Password: "sup3rsecret"}).
			Return(&user.RegistrationDTO{
				User:             &user.UserDTO{ID: userID, Email: "ankit@example.com", Username: "ankit"},
				VerificationCode: "424242",
			}, nil)

		rec := f.do(t, http.MethodPost, "/auth/register", map[string]string{
			"email":           "ankit@example.com",
			"username":        "ankit",
			"password":        "sup3rsecret",
			"conformPassword": "sup3rsecret",
		}, nil)

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.NotContains(t, rec.Body.String(), "424242")
	})

	t.Run("sad path - password mismatch", func(t *testing.T) {
		f := newAPIFixture(t)

		rec := f.do(t, http.MethodPost, "/auth/register", map[string]string{
			"email":           "ankit@example.com",
			"username":        "ankit",
			"password":        "sup3rsecret",
			"conformPassword": "different",
		}, nil)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("sad path - email taken", func(t *testing.T) {
		f := newAPIFixture(t)

		f.accounts.EXPECT().
			Register(gomock.Any(), gomock.Any()).
			Return(nil, appErrors.ErrEmailTaken)

		rec := f.do(t, http.MethodPost, "/auth/register", map[string]string{
			"email":           "ankit@example.com",
			"username":        "ankit",
			"password":        "sup3rsecret",
			"conformPassword": "sup3rsecret",
		}, nil)

		assert.Equal(t, http.StatusConflict, rec.Code)
	})
}

func TestAuthHandler_Login(t *testing.T) {
	t.Run("happy path - session cookie set", func(t *testing.T) {
		f := newAPIFixture(t)
		userID := uuid.New()

		f.accounts.EXPECT().
			Login(gomock.Any(), gomock.Any()).
			Return(&user.AuthResultDTO{
				User:      &user.UserDTO{ID: userID, Email: "ankit@example.com"},
				SessionID: "abc123",
			}, nil)

		rec := f.do(t, http.MethodPost, "/auth/login", map[string]string{
			"email":    "ankit@example.com",
			"password": "sup3rsecret",
		}, nil)

		require.Equal(t, http.StatusOK, rec.Code)

		cookies := rec.Result().Cookies()
		require.Len(t, cookies, 1)
		assert.Equal(t, "sessionId", cookies[0].Name)
		assert.Equal(t, "abc123", cookies[0].Value)
		assert.True(t, cookies[0].HttpOnly)
	})

	t.Run("sad path - wrong password", func(t *testing.T) {
		f := newAPIFixture(t)

		f.accounts.EXPECT().
			Login(gomock.Any(), gomock.Any()).
			Return(nil, appErrors.ErrWrongPassword)

		rec := f.do(t, http.MethodPost, "/auth/login", map[string]string{
			"email":    "ankit@example.com",
			"password": "wrong",
		}, nil)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Empty(t, rec.Result().Cookies())
	})
}

func TestAuthHandler_Logout(t *testing.T) {
	f := newAPIFixture(t)
	userID := uuid.New()
	cookie := f.login(t, userID)

	rec := f.do(t, http.MethodPost, "/auth/logout", nil, cookie)
	require.Equal(t, http.StatusOK, rec.Code)

	// the session is gone; the same cookie no longer authenticates
	rec = f.do(t, http.MethodGet, "/auth/me", nil, cookie)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestChatHandler_SendMessage(t *testing.T) {
	t.Run("to an existing conversation", func(t *testing.T) {
		f := newAPIFixture(t)
		userID := uuid.New()
		convID := uuid.New()

		f.messages.EXPECT().
			Send(gomock.Any(), userID, convID, "hello", "text").
			Return(&model.Message{ID: uuid.New(), ConversationID: convID, SenderID: userID, Content: "hello", MessageType: "text"}, nil)

		rec := f.do(t, http.MethodPost, "/chat/send-message", map[string]any{
			"conversationId": convID,
			"content":        "hello",
			"messageType":    "text",
		}, f.login(t, userID))

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("to a receiver resolves the direct conversation", func(t *testing.T) {
		f := newAPIFixture(t)
		userID := uuid.New()
		receiverID := uuid.New()
		convID := uuid.New()

		g := f.membership.EXPECT()
		g.GetOrCreateDirectConversation(gomock.Any(), userID, receiverID).Return(convID, nil)
		f.messages.EXPECT().
			Send(gomock.Any(), userID, convID, "hi there", "text").
			Return(&model.Message{ID: uuid.New(), ConversationID: convID, SenderID: userID, Content: "hi there", MessageType: "text"}, nil)

		rec := f.do(t, http.MethodPost, "/chat/send-message", map[string]any{
			"receiverId":  receiverID,
			"content":     "hi there",
			"messageType": "text",
		}, f.login(t, userID))

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("neither conversation nor receiver", func(t *testing.T) {
		f := newAPIFixture(t)
		userID := uuid.New()

		rec := f.do(t, http.MethodPost, "/chat/send-message", map[string]any{
			"content": "hello",
		}, f.login(t, userID))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestChatHandler_LeaveGroup(t *testing.T) {
	f := newAPIFixture(t)
	userID := uuid.New()
	convID := uuid.New()

	f.membership.EXPECT().
		Leave(gomock.Any(), userID, convID).
		Return(appErrors.ErrLastAdmin)

	rec := f.do(t, http.MethodPost, "/chat/leave-group", map[string]any{
		"conversationId": convID,
	}, f.login(t, userID))

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "admin")
}

func TestChatHandler_KickFromGroup(t *testing.T) {
	f := newAPIFixture(t)
	userID := uuid.New()
	convID := uuid.New()
	targetID := uuid.New()

	f.membership.EXPECT().
		Kick(gomock.Any(), userID, convID, targetID).
		Return(appErrors.ErrAdminKickImmune)

	rec := f.do(t, http.MethodPost, "/chat/kick-from-group", map[string]any{
		"conversationId": convID,
		"userId":         targetID,
	}, f.login(t, userID))

	assert.Equal(t, http.StatusForbidden, rec.Code)
}
