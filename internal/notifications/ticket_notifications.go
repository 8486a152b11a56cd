package notifications

import (
	"context"
	"errors"
	"fmt"

	"github.com/9ssi7/exponent"
)

type TicketEvent string

const (
	TicketBooked        TicketEvent = "BOOKED"
	TicketPaymentFailed TicketEvent = "PAYMENT_FAILED"
)

// SendTicketNotification pushes a booking update to a single device token.
// Callers treat this as best-effort and only log failures.
func SendTicketNotification(ctx context.Context, push PushSender, pushToken string, event TicketEvent, eventName string) error {
	if pushToken == "" {
		return errors.New("no push token")
	}

	var title, body string
	switch event {
	case TicketBooked:
		title = "Ticket Booked"
		body = fmt.Sprintf("Your ticket for %s has been booked. Complete the M-Pesa prompt on your phone.", eventName)
	case TicketPaymentFailed:
		title = "Payment Failed"
		body = fmt.Sprintf("We could not start the payment for %s. Please try again.", eventName)
	default:
		title = "Ticket Update"
		body = fmt.Sprintf("Your ticket for %s has an update.", eventName)
	}

	token := exponent.Token(pushToken)
	msg := &exponent.Message{
		To:    []*exponent.Token{&token},
		Title: title,
		Body:  body,
		Data: map[string]string{
			"type":   "ticket",
			"event":  string(event),
			"screen": "my-events-screen",
		},
	}

	_, err := push.PublishSingle(ctx, msg)
	return err
}
