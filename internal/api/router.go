package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/Ankit-Silwal/yapify-backend/internal/session"
)

// NewRouter assembles the HTTP surface: public auth endpoints, the
// session-guarded account and chat endpoints, and the websocket upgrade
// (which does its own session check during the handshake).
func NewRouter(auth *AuthHandler, chatH *ChatHandler, sessions *session.Manager, serveWS http.HandlerFunc) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	r.Route("/auth", func(r chi.Router) {
		r.Post("/register", auth.Register)
		r.Post("/login", auth.Login)
		r.Post("/forgot-password", auth.ForgotPassword)
		r.Post("/reset-password", auth.ResetPassword)

		r.Group(func(r chi.Router) {
			r.Use(CheckSession(sessions))
			r.Post("/verify-otp", auth.VerifyOTP)
			r.Post("/logout", auth.Logout)
			r.Get("/me", auth.Me)
		})
	})

	r.Group(func(r chi.Router) {
		r.Use(CheckSession(sessions))

		r.Get("/users/search", auth.SearchUsers)

		r.Route("/chat", func(r chi.Router) {
			r.Post("/create-group", chatH.CreateGroup)
			r.Post("/add-member", chatH.AddMember)
			r.Post("/remove-from-group", chatH.RemoveFromGroup)
			r.Post("/kick-from-group", chatH.KickFromGroup)
			r.Post("/give-admin", chatH.GiveAdmin)
			r.Post("/leave-group", chatH.LeaveGroup)

			r.Post("/send-message", chatH.SendMessage)
			r.Post("/load-message", chatH.LoadMessages)
			r.Post("/load-chat-list", chatH.LoadChatList)
			r.Post("/get-unread-count", chatH.GetUnreadCounts)
			r.Post("/mark-as-read", chatH.MarkAsRead)
			r.Post("/delete-for-me", chatH.DeleteForMe)
			r.Post("/delete-for-everyone", chatH.DeleteForEveryone)
		})
	})

	r.Get("/ws", serveWS)

	return r
}
