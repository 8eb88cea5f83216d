package service

import (
	"context"
	"fmt"

	"attendra/internal/entity"
	"attendra/internal/repository"

	"github.com/resend/resend-go/v2"
)

// ReminderNotifier delivers guardian notifications as reminder rows in the
// guardian's inbox, and additionally by e-mail when a Resend API key is
// configured. The reminder row is written first so a mail outage never loses
// the notification entirely.
type ReminderNotifier struct {
	reminders repository.ReminderRepository
	clock     Clock

	emails *resend.Client
	from   string
}

func NewReminderNotifier(reminders repository.ReminderRepository, clock Clock) *ReminderNotifier {
	return &ReminderNotifier{reminders: reminders, clock: clock}
}

// EnableEmail turns on e-mail delivery through Resend.
func (n *ReminderNotifier) EnableEmail(apiKey, from string) {
	if apiKey == "" || from == "" {
		return
	}
	n.emails = resend.NewClient(apiKey)
	n.from = from
}

func (n *ReminderNotifier) NotifyAbsence(ctx context.Context, guardian, student *entity.User, session *entity.Session) error {
	title := fmt.Sprintf("Absence alert: %s", session.Name)
	body := fmt.Sprintf("%s was marked absent for %s on %s.", student.FullName, session.Name, session.Date)
	return n.deliver(ctx, guardian, title, body)
}

func (n *ReminderNotifier) NotifyPresence(ctx context.Context, guardian, student *entity.User, session *entity.Session) error {
	title := fmt.Sprintf("Attendance confirmed: %s", session.Name)
	body := fmt.Sprintf("%s checked in to %s on %s.", student.FullName, session.Name, session.Date)
	return n.deliver(ctx, guardian, title, body)
}

func (n *ReminderNotifier) deliver(ctx context.Context, guardian *entity.User, title, body string) error {
	reminder := &entity.Reminder{
		Title:        title,
		Description:  body,
		UserID:       guardian.ID,
		ReminderDate: n.clock.Now(),
	}
	if err := n.reminders.Create(ctx, reminder); err != nil {
		return err
	}

	if n.emails == nil {
		return nil
	}
	_, err := n.emails.Emails.SendWithContext(ctx, &resend.SendEmailRequest{
		From:    n.from,
		To:      []string{guardian.Email},
		Subject: title,
		Text:    body,
	})
	return err
}
