package notify

import (
	"context"
	"log/slog"

	"experience-booking/internal/usecase/shared"
)

type Notifier struct {
	dispatcher *TemplateDispatcher
	mailer     *Mailer
}

func NewNotifier(dispatcher *TemplateDispatcher, mailer *Mailer) *Notifier {
	return &Notifier{
		dispatcher: dispatcher,
		mailer:     mailer,
	}
}

func (n *Notifier) SendTemplateMessage(ctx context.Context, msg shared.TemplateMessage) error {
	if err := n.dispatcher.Dispatch(ctx, msg); err != nil {
		return err
	}
	slog.Debug("template message queued", "template", msg.Template)
	return nil
}

// SendEmail blocks on the SMTP round trip; the context only bounds waiting.
func (n *Notifier) SendEmail(ctx context.Context, email shared.Email) error {
	done := make(chan error, 1)
	go func() { done <- n.mailer.Send(email) }()

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}
