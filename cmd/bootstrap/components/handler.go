package components

import (
	"experience-booking/internal/handler"
	"experience-booking/internal/handler/api"
	"experience-booking/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAvailabilityHandler,
		api.NewPricingHandler,
		api.NewBookingHandler,
		api.NewWizardHandler,
		middleware.NewAuthMiddleware,
		func(a *api.AvailabilityHandler, p *api.PricingHandler, b *api.BookingHandler, w *api.WizardHandler) handler.Handlers {
			return handler.Handlers{Availability: a, Pricing: p, Booking: b, Wizard: w}
		},
	),
	fx.Invoke(handler.NewRouter),
)
