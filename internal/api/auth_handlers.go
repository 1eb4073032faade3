package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/Ankit-Silwal/yapify-backend/internal/session"
	"github.com/Ankit-Silwal/yapify-backend/internal/user"
	appErrors "github.com/Ankit-Silwal/yapify-backend/pkg/errors"
	"github.com/Ankit-Silwal/yapify-backend/pkg/logger"
)

// AuthHandler exposes the account endpoints. Verification and reset
// codes are logged for delivery pickup, never returned in responses.
type AuthHandler struct {
	accounts   user.UserUsecase
	sessions   *session.Manager
	sessionTTL time.Duration
	secure     bool
	logger     *logger.Logger
}

func NewAuthHandler(accounts user.UserUsecase, sessions *session.Manager, sessionTTL time.Duration, secure bool, log *logger.Logger) *AuthHandler {
	return &AuthHandler{
		accounts:   accounts,
		sessions:   sessions,
		sessionTTL: sessionTTL,
		secure:     secure,
		logger:     log,
	}
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Email           string `json:"email"`
		Username        string `json:"username"`
		Password        string `json:"password"`
		ConformPassword string `json:"conformPassword"`
	}
	if err := decodeBody(r, &body); err != nil {
		respondError(w, err)
		return
	}
	if body.Password != body.ConformPassword {
		respondError(w, appErrors.InvalidArg("the passwords didn't match with each other"))
		return
	}

	dto, err := h.accounts.Register(r.Context(), user.RegisterCommand{
		Email:    body.Email,
		Username: body.Username,
		Password: body.Password,
	})
	if err != nil {
		respondError(w, err)
		return
	}

	// handed to the mailer; kept out of the response body
	h.logger.Info("verification code issued", "userId", dto.User.ID, "code", dto.VerificationCode)

	respondJSON(w, http.StatusCreated, "account created, verification code sent", dto.User)
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := decodeBody(r, &body); err != nil {
		respondError(w, err)
		return
	}

	res, err := h.accounts.Login(r.Context(), user.LoginCommand{
		Email:    body.Email,
		Password: body.Password,
		Meta: session.ClientMeta{
			IP:        clientIP(r),
			UserAgent: r.UserAgent(),
		},
	})
	if err != nil {
		respondError(w, err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    res.SessionID,
		Path:     "/",
		HttpOnly: true,
		Secure:   h.secure,
		SameSite: http.SameSiteStrictMode,
		MaxAge:   int(h.sessionTTL.Seconds()),
	})
	respondJSON(w, http.StatusOK, "successfully logged in", res.User)
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(sessionCookieName); err == nil {
		if err := h.sessions.Revoke(r.Context(), cookie.Value); err != nil {
			respondError(w, err)
			return
		}
	}
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		MaxAge:   -1,
	})
	respondJSON(w, http.StatusOK, "logged out", nil)
}

func (h *AuthHandler) VerifyOTP(w http.ResponseWriter, r *http.Request) {
	var body struct {
		OTP string `json:"otp"`
	}
	if err := decodeBody(r, &body); err != nil {
		respondError(w, err)
		return
	}

	if err := h.accounts.VerifyAccount(r.Context(), userIDFrom(r), body.OTP); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, "account verified", nil)
}

func (h *AuthHandler) ForgotPassword(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Email string `json:"email"`
	}
	if err := decodeBody(r, &body); err != nil {
		respondError(w, err)
		return
	}

	userID, code, err := h.accounts.ForgotPassword(r.Context(), body.Email)
	if err != nil {
		// do not reveal whether the email exists
		if appErrors.CodeOf(err) == appErrors.CodeNotFound {
			respondJSON(w, http.StatusOK, "if the account exists, a reset code was sent", nil)
			return
		}
		respondError(w, err)
		return
	}

	h.logger.Info("reset code issued", "userId", userID, "code", code)
	respondJSON(w, http.StatusOK, "if the account exists, a reset code was sent", map[string]any{"userId": userID})
}

func (h *AuthHandler) ResetPassword(w http.ResponseWriter, r *http.Request) {
	var body struct {
		UserID      uuid.UUID `json:"userId"`
		OTP         string    `json:"otp"`
		NewPassword string    `json:"newPassword"`
	}
	if err := decodeBody(r, &body); err != nil {
		respondError(w, err)
		return
	}

	if err := h.accounts.ResetPassword(r.Context(), body.UserID, body.OTP, body.NewPassword); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, "password updated, all sessions revoked", nil)
}

func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	dto, err := h.accounts.GetUserProfile(r.Context(), userIDFrom(r))
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, "", dto)
}

func (h *AuthHandler) SearchUsers(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("query")
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	found, err := h.accounts.SearchUsers(r.Context(), userIDFrom(r), query, limit)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, "", found)
}

func clientIP(r *http.Request) string {
	if ip := r.Header.Get("X-Forwarded-For"); ip != "" {
		return ip
	}
	return r.RemoteAddr
}
