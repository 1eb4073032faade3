package errors

var (
	// Session / auth
	ErrAuthenticationRequired = Unauthorized("authentication required")
	ErrSessionExpired         = Unauthorized("session expired or invalid")

	// One-time codes. Expected user-facing outcomes, never system errors.
	ErrOtpExpired  = FailedPrecondition("code expired or never issued")
	ErrOtpMismatch = InvalidArg("submitted code does not match")

	// Membership
	ErrNotAParticipant     = Forbidden("not an active participant of this conversation")
	ErrRoleViolation       = Forbidden("operation requires the admin role")
	ErrLastAdmin           = FailedPrecondition("a group must keep at least one active admin")
	ErrAdminKickImmune     = Forbidden("active admins cannot be kicked")
	ErrParticipantNotFound = NotFound("participant not found or already removed")
	ErrConversationNotFound = NotFound("conversation not found")

	// Messages
	ErrMessageNotFound = NotFound("message not found or not owned by sender")

	// Accounts
	ErrUserNotFound  = NotFound("user not found")
	ErrEmailTaken    = AlreadyExists("email is already registered")
	ErrWrongPassword = Unauthorized("invalid email or password")
)

// ErrStorageFailure marks a transient backing-store failure. The whole
// transaction has been rolled back; the caller decides whether to retry.
func ErrStorageFailure(cause error) error {
	return Wrap(CodeUnavailable, "storage failure", cause)
}
