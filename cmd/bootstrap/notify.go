package bootstrap

import (
	"context"

	"experience-booking/internal/infra/notify"
	"experience-booking/internal/pkg/config"
	"experience-booking/internal/usecase/shared"

	"go.uber.org/fx"
)

// The broker dials lazily so the service starts while RabbitMQ is down;
// template messages fail and are logged until it comes back.
var NotifyModule = fx.Module("notify",
	fx.Provide(
		NewBroker,
		NewTemplateDispatcher,
		NewMailer,
		fx.Annotate(
			notify.NewNotifier,
			fx.As(new(shared.Notifier)),
		),
	),
)

func NewBroker(lc fx.Lifecycle, cfg config.Config) *notify.Broker {
	b := notify.NewBroker(cfg.AMQP)
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return b.Close()
		},
	})
	return b
}

func NewTemplateDispatcher(b *notify.Broker, cfg config.Config) *notify.TemplateDispatcher {
	return notify.NewTemplateDispatcher(b.OpenChannel, cfg.AMQP)
}

func NewMailer(cfg config.Config) *notify.Mailer {
	return notify.NewMailer(notify.NewDialer(cfg.SMTP), cfg.SMTP)
}
