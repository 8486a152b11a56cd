package main

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"evently/internal/store"
)

func testUser() *store.User {
	return &store.User{
		ID:        7,
		Name:      "Wanjiru",
		Email:     "wanjiru@example.com",
		PushToken: sql.NullString{String: "ExponentPushToken[abc]", Valid: true},
	}
}

func seedEvent(t *testing.T, app *application) *store.Event {
	t.Helper()

	event := &store.Event{
		Name:      "Nairobi Jazz Night",
		Location:  "Uhuru Gardens",
		Price:     1500,
		EventDate: time.Date(2026, 10, 12, 19, 0, 0, 0, time.UTC),
	}
	if err := app.store.Events.Create(t.Context(), event); err != nil {
		t.Fatalf("seed event: %v", err)
	}
	return event
}

func bookTicket(t *testing.T, app *application, eventID, phone string) *httptest.ResponseRecorder {
	t.Helper()

	body, _ := json.Marshal(BookTicketPayload{Phone: phone})
	req := requestWithUser(t, http.MethodPost, "/v1/events/"+eventID+"/tickets",
		bytes.NewBuffer(body), testUser(), map[string]string{"eventID": eventID})
	rr := httptest.NewRecorder()
	app.bookTicketHandler(rr, req)
	return rr
}

func TestBookTicketSuccess(t *testing.T) {
	gateway, pushCalls := newFakeGateway(t,
		func(w http.ResponseWriter, _ *http.Request) {
			_ = json.NewEncoder(w).Encode(map[string]string{"access_token": "tok", "expires_in": "3600"})
		},
		func(w http.ResponseWriter, _ *http.Request) {
			_ = json.NewEncoder(w).Encode(map[string]string{
				"MerchantRequestID": "m-1",
				"CheckoutRequestID": "c-1",
				"ResponseCode":      "0",
				"CustomerMessage":   "Success. Request accepted for processing",
			})
		})
	app := newTestApplication(t, gateway)
	seedEvent(t, app)

	rr := bookTicket(t, app, "1", "0712345678")

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d: %s", rr.Code, http.StatusOK, rr.Body.String())
	}

	var res BookTicketResponse
	decodeData(t, rr.Body, &res)

	if res.Status != store.TicketInitiated {
		t.Errorf("status = %q, want %q", res.Status, store.TicketInitiated)
	}
	if res.StatusMessage != "Success. Request accepted for processing" {
		t.Errorf("status message = %q", res.StatusMessage)
	}
	if res.ErrorKind != "" {
		t.Errorf("error kind = %q, want empty", res.ErrorKind)
	}
	if got := pushCalls.Load(); got != 1 {
		t.Errorf("gateway push calls = %d, want 1", got)
	}

	tickets := app.store.Tickets.(*fakeTicketsStore)
	if len(tickets.created) != 1 {
		t.Fatalf("created %d tickets, want 1", len(tickets.created))
	}
	ticket := tickets.created[0]
	if ticket.Amount != 1500 {
		t.Errorf("ticket amount = %d, want 1500", ticket.Amount)
	}
	if !strings.HasPrefix(ticket.AccountRef, "EVT-1-") {
		t.Errorf("account ref = %q", ticket.AccountRef)
	}
	if change := tickets.statuses[ticket.ID]; change.status != store.TicketInitiated {
		t.Errorf("final ticket status = %q, want %q", change.status, store.TicketInitiated)
	}

	logs := app.store.PaymentLogs.(*fakePaymentLogsStore)
	var types []string
	for _, e := range logs.entries {
		types = append(types, e.logType)
	}
	if len(types) != 2 || types[0] != "request" || types[1] != "response" {
		t.Errorf("payment log types = %v, want [request response]", types)
	}

	if sent := app.mailer.(*fakeMailer).sent.Load(); sent != 1 {
		t.Errorf("confirmation emails = %d, want 1", sent)
	}
	if pushed := app.push.(*fakePushSender).published.Load(); pushed != 1 {
		t.Errorf("push notifications = %d, want 1", pushed)
	}
}

func TestBookTicketAuthFailureReportsErrorKind(t *testing.T) {
	gateway, pushCalls := newFakeGateway(t,
		func(w http.ResponseWriter, _ *http.Request) {
			http.Error(w, `{"errorMessage":"Invalid Authentication"}`, http.StatusUnauthorized)
		},
		func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusOK)
		})
	app := newTestApplication(t, gateway)
	seedEvent(t, app)

	rr := bookTicket(t, app, "1", "0712345678")

	// Initiation failures still answer 200; the outcome rides in the body.
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}

	var res BookTicketResponse
	decodeData(t, rr.Body, &res)

	if res.Status != store.TicketFailed {
		t.Errorf("status = %q, want %q", res.Status, store.TicketFailed)
	}
	if !strings.HasPrefix(res.StatusMessage, "Error: ") {
		t.Errorf("status message = %q, want Error: prefix", res.StatusMessage)
	}
	if res.ErrorKind != "auth" {
		t.Errorf("error kind = %q, want auth", res.ErrorKind)
	}
	if got := pushCalls.Load(); got != 0 {
		t.Errorf("gateway push calls = %d, want 0 after token failure", got)
	}

	tickets := app.store.Tickets.(*fakeTicketsStore)
	if len(tickets.created) != 1 {
		t.Fatalf("created %d tickets, want 1", len(tickets.created))
	}
	if change := tickets.statuses[tickets.created[0].ID]; change.status != store.TicketFailed {
		t.Errorf("final ticket status = %q, want %q", change.status, store.TicketFailed)
	}

	logs := app.store.PaymentLogs.(*fakePaymentLogsStore)
	if len(logs.entries) != 2 || logs.entries[1].logType != "error" {
		t.Errorf("payment log entries = %+v, want request then error", logs.entries)
	}
}

func TestBookTicketGatewayRejectionReportsErrorKind(t *testing.T) {
	gateway, _ := newFakeGateway(t,
		func(w http.ResponseWriter, _ *http.Request) {
			_ = json.NewEncoder(w).Encode(map[string]string{"access_token": "tok", "expires_in": "3600"})
		},
		func(w http.ResponseWriter, _ *http.Request) {
			http.Error(w, `{"errorMessage":"Merchant does not exist"}`, http.StatusBadRequest)
		})
	app := newTestApplication(t, gateway)
	seedEvent(t, app)

	rr := bookTicket(t, app, "1", "254712345678")

	var res BookTicketResponse
	decodeData(t, rr.Body, &res)

	if res.Status != store.TicketFailed {
		t.Errorf("status = %q, want %q", res.Status, store.TicketFailed)
	}
	if res.ErrorKind != "gateway" {
		t.Errorf("error kind = %q, want gateway", res.ErrorKind)
	}
}

func TestBookTicketUnknownEvent(t *testing.T) {
	app := newTestApplication(t, nil)

	rr := bookTicket(t, app, "99", "0712345678")

	if rr.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d", rr.Code, http.StatusNotFound)
	}
}

func TestBookTicketRejectsBadPhone(t *testing.T) {
	app := newTestApplication(t, nil)
	seedEvent(t, app)

	for _, phone := range []string{"12345", "07123", "+254712345678", "0812345678"} {
		rr := bookTicket(t, app, "1", phone)
		if rr.Code != http.StatusBadRequest {
			t.Errorf("phone %q: status = %d, want %d", phone, rr.Code, http.StatusBadRequest)
		}
	}
}
