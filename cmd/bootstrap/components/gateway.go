package components

import (
	"experience-booking/internal/infra/payment"
	"experience-booking/internal/pkg/config"
	"experience-booking/internal/usecase/shared"

	"go.uber.org/fx"
)

var GatewayModule = fx.Module("gateway",
	fx.Provide(
		fx.Annotate(
			NewChargeAuthority,
			fx.As(new(shared.ChargeAuthority)),
		),
	),
)

func NewChargeAuthority(cfg config.Config) *payment.GatewayAuthority {
	return payment.NewGatewayAuthority(cfg.Payment)
}
