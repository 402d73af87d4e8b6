package gateway

import (
	"fmt"
	"html"
	"strings"

	"github.com/pkg/errors"
	gomail "gopkg.in/gomail.v2"

	"github.com/deliciosaph/deliciosa/internal/config"
	"github.com/deliciosaph/deliciosa/internal/domain"
)

// MailGateway relays new inquiries to the café's inbox over SMTP.
type MailGateway struct {
	dialer *gomail.Dialer
	from   string
	to     string
}

func NewMailGateway(conf config.SMTP) *MailGateway {
	return &MailGateway{
		dialer: gomail.NewDialer(conf.Host, conf.Port, conf.Username, conf.Password),
		from:   conf.Username,
		to:     conf.To,
	}
}

func (g *MailGateway) SendInquiry(inq domain.Inquiry) error {
	eventDate := inq.EventDate
	if eventDate == "" {
		eventDate = "Not specified"
	}

	m := gomail.NewMessage()
	m.SetAddressHeader("From", g.from, fmt.Sprintf("%s via Deliciosa", inq.Name))
	m.SetHeader("To", g.to)
	m.SetHeader("Reply-To", inq.Email)
	m.SetHeader("Subject", fmt.Sprintf("New Inquiry from %s - Deliciosa", inq.Name))

	var text strings.Builder
	text.WriteString("NEW INQUIRY RECEIVED\n\n")
	fmt.Fprintf(&text, "Name: %s\n", inq.Name)
	fmt.Fprintf(&text, "Email: %s\n", inq.Email)
	fmt.Fprintf(&text, "Phone: %s\n", inq.Phone)
	fmt.Fprintf(&text, "Event Date: %s\n\n", eventDate)
	fmt.Fprintf(&text, "Message:\n%s\n", inq.Message)
	m.SetBody("text/plain", text.String())

	m.AddAlternative("text/html", fmt.Sprintf(`
<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
  <h2 style="color: #78350f;">New Inquiry Received</h2>
  <hr style="border: 1px solid #eee;">
  <p><strong>Name:</strong> %s</p>
  <p><strong>Email:</strong> <a href="mailto:%s">%s</a></p>
  <p><strong>Phone:</strong> %s</p>
  <p><strong>Event Date:</strong> %s</p>
  <br/>
  <p><strong>Message:</strong></p>
  <div style="background-color: #f9fafb; padding: 15px; border-radius: 5px; white-space: pre-wrap;">%s</div>
</div>`,
		html.EscapeString(inq.Name),
		html.EscapeString(inq.Email),
		html.EscapeString(inq.Email),
		html.EscapeString(inq.Phone),
		html.EscapeString(eventDate),
		html.EscapeString(inq.Message),
	))

	if err := g.dialer.DialAndSend(m); err != nil {
		return errors.Wrap(err, "inquiry mail relay failed")
	}
	return nil
}
