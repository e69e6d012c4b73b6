package notify

import (
	"context"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/for-hk/linkup-auth/internal/platform/email"
	"github.com/for-hk/linkup-auth/internal/user"
)

const deliverTimeout = 30 * time.Second

// MailNotifier delivers notifications as HTML email. The recipient address is
// resolved from the user id at delivery time.
type MailNotifier struct {
	users     user.Service
	mailer    email.Mailer
	requested atomic.Int64
}

var _ Notifier = (*MailNotifier)(nil)

func NewMailNotifier(users user.Service, mailer email.Mailer) *MailNotifier {
	return &MailNotifier{
		users:  users,
		mailer: mailer,
	}
}

func (n *MailNotifier) SendWelcome(userID int64) {
	n.requested.Add(1)
	go n.deliver(userID, "Welcome to LinkUp", "welcome")
}

func (n *MailNotifier) SendPasswordReset(userID int64) {
	n.requested.Add(1)
	go n.deliver(userID, "Your password was reset", "reset_password")
}

// Requested reports the cumulative number of sends requested so far.
func (n *MailNotifier) Requested() int64 {
	return n.requested.Load()
}

func (n *MailNotifier) deliver(userID int64, subject, tmplName string) {
	ctx, cancel := context.WithTimeout(context.Background(), deliverTimeout)
	defer cancel()

	u, err := n.users.FindUser(ctx, userID)
	if err != nil {
		slog.Error("failed to resolve notification recipient", "user_id", userID, "reason", err)
		return
	}

	data := map[string]string{
		"Title":  subject,
		"Header": subject,
		"Name":   u.Name,
	}
	if err := n.mailer.SendHTML([]string{u.Email}, subject, tmplName, data); err != nil {
		slog.Error("failed to send notification email", "template", tmplName, "reason", err)
		return
	}
}
