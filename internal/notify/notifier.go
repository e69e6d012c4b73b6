package notify

// Kind identifies a user-facing notification.
type Kind string

const (
	KindWelcome       Kind = "welcome"
	KindPasswordReset Kind = "password_reset"
)

// Notifier dispatches user-facing notifications. Calls return once the send
// is requested; delivery happens off the request path and a transport failure
// never fails the enclosing request.
type Notifier interface {
	SendWelcome(userID int64)
	SendPasswordReset(userID int64)
}
