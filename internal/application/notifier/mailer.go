// Package notifier delivers email mirrors of in-app notifications. Delivery
// happens after the workflow transaction commits and is best effort: a
// failed send is logged, never propagated.
package notifier

import (
	"context"

	"accountsforge/internal/domain/notification"
	"accountsforge/internal/domain/profile"
	"accountsforge/internal/shared/logger"
	"accountsforge/internal/shared/services/markdown"
)

// EmailSender is the outbound mail transport.
type EmailSender interface {
	Enabled() bool
	SendNotificationEmail(to, subject, htmlBody, plainBody string) error
}

type Mailer struct {
	profileRepo profile.Repository
	sender      EmailSender
	markdown    markdown.MarkdownService
	logger      logger.Interface
}

func NewMailer(
	profileRepo profile.Repository,
	sender EmailSender,
	markdownService markdown.MarkdownService,
	logger logger.Interface,
) *Mailer {
	return &Mailer{
		profileRepo: profileRepo,
		sender:      sender,
		markdown:    markdownService,
		logger:      logger,
	}
}

// Deliver mirrors the notification to the recipient's email address. The
// notification content is treated as markdown and sanitized before it is
// embedded in the HTML body.
func (m *Mailer) Deliver(ctx context.Context, n *notification.Notification) {
	if m.sender == nil || !m.sender.Enabled() {
		return
	}

	recipient, err := m.profileRepo.GetByID(ctx, n.RecipientID())
	if err != nil {
		m.logger.Warnw("skipping notification email, recipient lookup failed",
			"notification_id", n.ID(), "recipient_id", n.RecipientID(), "error", err)
		return
	}

	htmlBody, err := m.markdown.ToHTMLSanitized(n.Content())
	if err != nil {
		m.logger.Warnw("skipping notification email, render failed",
			"notification_id", n.ID(), "error", err)
		return
	}

	if err := m.sender.SendNotificationEmail(recipient.Email(), n.Title(), htmlBody, n.Content()); err != nil {
		m.logger.Warnw("failed to send notification email",
			"notification_id", n.ID(), "recipient_id", n.RecipientID(), "error", err)
	}
}
