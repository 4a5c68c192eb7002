package pricing

import "experience-booking/internal/domain/money"

// Commission figures are for settlement reporting only and are always
// recomputed from their inputs.
type Commission struct {
	PerVendor          money.Money
	Net                money.Money
	VendorOwesPlatform money.Money
}

type CommissionInput struct {
	BasePrice        money.Money
	B2BPrice         money.Money
	BookingAmount    money.Money
	ParticipantCount int
	Upfront          money.Money
}

func ComputeCommission(in CommissionInput) Commission {
	wholesale := in.B2BPrice.MulInt(in.ParticipantCount)
	net := in.BookingAmount.Sub(wholesale)
	return Commission{
		PerVendor:          in.BasePrice.Sub(in.B2BPrice),
		Net:                net,
		VendorOwesPlatform: net.Sub(in.Upfront),
	}
}
