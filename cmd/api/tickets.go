package main

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"evently/internal/mailer"
	"evently/internal/mpesa"
	"evently/internal/notifications"
	"evently/internal/store"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type BookTicketPayload struct {
	Phone string `json:"phone" validate:"required,kenyanphone"`
}

// BookTicketResponse carries the gateway's customer-facing message plus a
// machine-readable error kind, so the app can branch without parsing the
// message text.
type BookTicketResponse struct {
	TicketID      int64  `json:"ticket_id"`
	Status        string `json:"status"`
	StatusMessage string `json:"status_message"`
	ErrorKind     string `json:"error_kind,omitempty"`
}

// bookTicketHandler godoc
//
//	@Summary		Book a ticket
//	@Description	Books a ticket for an event and starts an M-Pesa STK push on the payer's phone
//	@Tags			tickets
//	@Accept			json
//	@Produce		json
//	@Param			eventID	path		int					true	"Event ID"
//	@Param			payload	body		BookTicketPayload	true	"Payer phone number"
//	@Success		200		{object}	BookTicketResponse
//	@Failure		400		{object}	error
//	@Failure		404		{object}	error
//	@Failure		500		{object}	error
//	@Security		ApiKeyAuth
//	@Router			/events/{eventID}/tickets [post]
func (app *application) bookTicketHandler(w http.ResponseWriter, r *http.Request) {
	user := getUserFromContext(r)

	eventID, err := strconv.ParseInt(chi.URLParam(r, "eventID"), 10, 64)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	var payload BookTicketPayload
	if err := readJSON(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	event, err := app.store.Events.GetByID(r.Context(), eventID)
	if err != nil {
		switch err {
		case store.ErrNotFound:
			app.notFoundResponse(w, r, err)
		default:
			app.internalServerError(w, r, err)
		}
		return
	}

	accountRef := fmt.Sprintf("EVT-%d-%s", event.ID, uuid.New().String()[:8])

	ticket := &store.Ticket{
		EventID:    event.ID,
		UserID:     user.ID,
		UserEmail:  user.Email,
		Phone:      payload.Phone,
		Amount:     event.Price,
		AccountRef: accountRef,
		Status:     store.TicketPending,
	}
	if err := app.store.Tickets.Create(r.Context(), ticket); err != nil {
		app.internalServerError(w, r, err)
		return
	}

	_ = app.store.PaymentLogs.Insert(r.Context(), ticket.ID, "request", map[string]any{
		"phone":       payload.Phone,
		"amount":      event.Price,
		"account_ref": accountRef,
	})

	// The push runs on the request context: if the client disconnects, the
	// in-flight gateway call is cancelled with it.
	res, pushErr := app.mpesa.STKPush(r.Context(), payload.Phone, int(event.Price), accountRef, "Evently ticket: "+event.Name)
	if pushErr != nil {
		statusMessage := "Error: " + pushErr.Error()
		kind := ""
		var mErr *mpesa.Error
		if errors.As(pushErr, &mErr) {
			statusMessage = "Error: " + mErr.Detail
			kind = string(mErr.Kind)
		}

		app.logger.Errorw("stk push failed", "ticket_id", ticket.ID, "error", pushErr.Error())
		_ = app.store.PaymentLogs.Insert(r.Context(), ticket.ID, "error", map[string]any{
			"error": pushErr.Error(),
			"kind":  kind,
		})
		if err := app.store.Tickets.SetStatus(r.Context(), ticket.ID, store.TicketFailed, statusMessage); err != nil {
			app.logger.Errorw("failed to update ticket status", "ticket_id", ticket.ID, "error", err.Error())
		}

		app.notifyTicket(r, user, notifications.TicketPaymentFailed, event.Name)

		if err := app.jsonResponse(w, http.StatusOK, BookTicketResponse{
			TicketID:      ticket.ID,
			Status:        store.TicketFailed,
			StatusMessage: statusMessage,
			ErrorKind:     kind,
		}); err != nil {
			app.internalServerError(w, r, err)
		}
		return
	}

	_ = app.store.PaymentLogs.Insert(r.Context(), ticket.ID, "response", res)

	if err := app.store.Tickets.SetStatus(r.Context(), ticket.ID, store.TicketInitiated, res.CustomerMessage); err != nil {
		app.logger.Errorw("failed to update ticket status", "ticket_id", ticket.ID, "error", err.Error())
	}

	// Confirmation email and push are best-effort; the payment prompt is
	// already on the payer's phone.
	vars := struct {
		Username      string
		EventName     string
		Location      string
		EventDate     string
		Amount        int64
		StatusMessage string
	}{
		Username:      user.Name,
		EventName:     event.Name,
		Location:      event.Location,
		EventDate:     event.EventDate.Format("Mon, 02 Jan 2006 15:04"),
		Amount:        event.Price,
		StatusMessage: res.CustomerMessage,
	}
	if _, err := app.mailer.Send(mailer.TicketConfirmationTemplate, user.Name, user.Email, vars); err != nil {
		app.logger.Errorw("error sending ticket confirmation email", "ticket_id", ticket.ID, "error", err.Error())
	}

	app.notifyTicket(r, user, notifications.TicketBooked, event.Name)

	if err := app.jsonResponse(w, http.StatusOK, BookTicketResponse{
		TicketID:      ticket.ID,
		Status:        store.TicketInitiated,
		StatusMessage: res.CustomerMessage,
	}); err != nil {
		app.internalServerError(w, r, err)
	}
}

func (app *application) notifyTicket(r *http.Request, user *store.User, event notifications.TicketEvent, eventName string) {
	if !user.PushToken.Valid {
		return
	}
	if err := notifications.SendTicketNotification(r.Context(), app.push, user.PushToken.String, event, eventName); err != nil {
		app.logger.Warnw("push notification failed", "user_id", user.ID, "error", err.Error())
	}
}

// getUserTicketsHandler godoc
//
//	@Summary		List my tickets
//	@Description	Lists the current user's booked events
//	@Tags			tickets
//	@Produce		json
//	@Success		200	{array}		store.UserTicket
//	@Failure		500	{object}	error
//	@Security		ApiKeyAuth
//	@Router			/tickets [get]
func (app *application) getUserTicketsHandler(w http.ResponseWriter, r *http.Request) {
	user := getUserFromContext(r)

	tickets, err := app.store.Tickets.GetByUser(r.Context(), user.ID)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}
	if tickets == nil {
		tickets = []store.UserTicket{}
	}

	if err := app.jsonResponse(w, http.StatusOK, tickets); err != nil {
		app.internalServerError(w, r, err)
	}
}
