package notify

import (
	"bytes"
	"html/template"

	"experience-booking/internal/pkg/config"
	"experience-booking/internal/pkg/errs"
	"experience-booking/internal/usecase/shared"

	"gopkg.in/gomail.v2"
)

var ErrUnknownEmailKind = errs.New("unknown email kind")

const confirmationTemplate = `<p>Hi {{.Name}},</p>
<p>Your booking <strong>{{.BookingID}}</strong> for {{.Activity}} ({{.Experience}}) is confirmed.</p>
<table>
  <tr><td>Date</td><td>{{.Date}}</td></tr>
  <tr><td>Time</td><td>{{.Time}}</td></tr>
  <tr><td>Participants</td><td>{{.Participants}}</td></tr>
  <tr><td>Total</td><td>{{.Total}}</td></tr>
  <tr><td>Paid</td><td>{{.Paid}}</td></tr>
  <tr><td>Due on arrival</td><td>{{.Due}}</td></tr>
</table>
`

const vendorAlertTemplate = `<p>New booking <strong>{{.BookingID}}</strong> for {{.Activity}}.</p>
<table>
  <tr><td>Guest</td><td>{{.Name}} ({{.Email}}, {{.Phone}})</td></tr>
  <tr><td>Date</td><td>{{.Date}}</td></tr>
  <tr><td>Time</td><td>{{.Time}}</td></tr>
  <tr><td>Participants</td><td>{{.Participants}}</td></tr>
  <tr><td>Total</td><td>{{.Total}}</td></tr>
  <tr><td>Due on arrival</td><td>{{.Due}}</td></tr>
</table>
`

// Sender is satisfied by *gomail.Dialer.
type Sender interface {
	DialAndSend(m ...*gomail.Message) error
}

type Mailer struct {
	sender    Sender
	from      string
	templates map[string]*template.Template
}

func NewDialer(cfg config.SMTPConfig) *gomail.Dialer {
	return gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password)
}

func NewMailer(sender Sender, cfg config.SMTPConfig) *Mailer {
	return &Mailer{
		sender: sender,
		from:   cfg.From,
		templates: map[string]*template.Template{
			shared.EmailBookingConfirmation: template.Must(template.New(shared.EmailBookingConfirmation).Parse(confirmationTemplate)),
			shared.EmailVendorBookingAlert:  template.Must(template.New(shared.EmailVendorBookingAlert).Parse(vendorAlertTemplate)),
		},
	}
}

func (m *Mailer) Send(email shared.Email) error {
	tmpl, ok := m.templates[email.Kind]
	if !ok {
		return errs.Wrapf(ErrUnknownEmailKind, "kind %q", email.Kind)
	}

	var body bytes.Buffer
	if err := tmpl.Execute(&body, email.Payload); err != nil {
		return errs.Wrapf(err, "render %s email", email.Kind)
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", email.To)
	msg.SetHeader("Subject", email.Subject)
	msg.SetBody("text/html", body.String())

	if err := m.sender.DialAndSend(msg); err != nil {
		return errs.Wrapf(err, "send %s email", email.Kind)
	}
	return nil
}
