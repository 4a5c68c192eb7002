package shared

import "context"

const (
	TemplateSingleLocation = "booking_confirmation_single_location"
	TemplateTwoLocations   = "booking_confirmation_two_locations"

	EmailBookingConfirmation = "booking_confirmation"
	EmailVendorBookingAlert  = "vendor_booking_alert"
)

type TemplateMessage struct {
	Template       string            `json:"template"`
	RecipientPhone string            `json:"recipientPhone"`
	Fields         map[string]string `json:"fields"`
}

type Email struct {
	Kind    string
	To      string
	Subject string
	Payload map[string]string
}

// Notifier delivery is fire-and-forget for callers; errors are reported so
// they can be logged and surfaced as warnings.
type Notifier interface {
	SendTemplateMessage(ctx context.Context, msg TemplateMessage) error
	SendEmail(ctx context.Context, email Email) error
}
