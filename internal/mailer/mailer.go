package mailer

import "embed"

const (
	FromName                   = "Evently"
	maxRetries                 = 3
	UserWelcomeTemplate        = "user_welcome.tmpl"
	TicketConfirmationTemplate = "ticket_confirmation.tmpl"
)

//go:embed "templates"
var FS embed.FS

type Client interface {
	Send(templateFile, username, email string, data any) (int, error)
}
