package main

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"evently/internal/mpesa"
	"evently/internal/store"

	"github.com/9ssi7/exponent"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type fakeEventsStore struct {
	events map[int64]*store.Event
}

func (s *fakeEventsStore) Create(_ context.Context, e *store.Event) error {
	if s.events == nil {
		s.events = map[int64]*store.Event{}
	}
	e.ID = int64(len(s.events) + 1)
	s.events[e.ID] = e
	return nil
}

func (s *fakeEventsStore) GetByID(_ context.Context, id int64) (*store.Event, error) {
	e, ok := s.events[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return e, nil
}

func (s *fakeEventsStore) List(_ context.Context, _ string) ([]store.Event, error) {
	out := make([]store.Event, 0, len(s.events))
	for _, e := range s.events {
		out = append(out, *e)
	}
	return out, nil
}

func (s *fakeEventsStore) SetImageURL(_ context.Context, id int64, url string) error {
	e, ok := s.events[id]
	if !ok {
		return store.ErrNotFound
	}
	e.ImageURL.String = url
	e.ImageURL.Valid = true
	return nil
}

type statusChange struct {
	status  string
	message string
}

type fakeTicketsStore struct {
	created  []*store.Ticket
	statuses map[int64]statusChange
	nextID   int64
}

func (s *fakeTicketsStore) Create(_ context.Context, t *store.Ticket) error {
	s.nextID++
	t.ID = s.nextID
	s.created = append(s.created, t)
	return nil
}

func (s *fakeTicketsStore) GetByID(_ context.Context, id int64) (*store.Ticket, error) {
	for _, t := range s.created {
		if t.ID == id {
			return t, nil
		}
	}
	return nil, store.ErrNotFound
}

func (s *fakeTicketsStore) GetByUser(_ context.Context, _ int64) ([]store.UserTicket, error) {
	return nil, nil
}

func (s *fakeTicketsStore) SetStatus(_ context.Context, id int64, status, message string) error {
	if s.statuses == nil {
		s.statuses = map[int64]statusChange{}
	}
	s.statuses[id] = statusChange{status: status, message: message}
	return nil
}

type fakeCallbacksStore struct {
	records   []store.CallbackRecord
	insertErr error
}

func (s *fakeCallbacksStore) Insert(_ context.Context, rec *store.CallbackRecord) error {
	if s.insertErr != nil {
		return s.insertErr
	}
	rec.ID = int64(len(s.records) + 1)
	s.records = append(s.records, *rec)
	return nil
}

func (s *fakeCallbacksStore) List(_ context.Context, _ int) ([]store.CallbackRecord, error) {
	return s.records, nil
}

type paymentLogEntry struct {
	ticketID int64
	logType  string
}

type fakePaymentLogsStore struct {
	entries []paymentLogEntry
}

func (s *fakePaymentLogsStore) Insert(_ context.Context, ticketID int64, logType string, _ any) error {
	s.entries = append(s.entries, paymentLogEntry{ticketID: ticketID, logType: logType})
	return nil
}

type fakeMailer struct {
	sent atomic.Int64
}

func (m *fakeMailer) Send(_, _, _ string, _ any) (int, error) {
	m.sent.Add(1)
	return 250, nil
}

type fakePushSender struct {
	published atomic.Int64
}

func (p *fakePushSender) Publish(_ context.Context, msgs []*exponent.Message) ([]*exponent.MessageResponse, error) {
	p.published.Add(int64(len(msgs)))
	return nil, nil
}

func (p *fakePushSender) PublishSingle(_ context.Context, _ *exponent.Message) ([]*exponent.MessageResponse, error) {
	p.published.Add(1)
	return nil, nil
}

func newTestApplication(t *testing.T, gateway *mpesa.Client) *application {
	t.Helper()

	return &application{
		logger: zap.NewNop().Sugar(),
		store: store.Storage{
			Events:      &fakeEventsStore{events: map[int64]*store.Event{}},
			Tickets:     &fakeTicketsStore{},
			Callbacks:   &fakeCallbacksStore{},
			PaymentLogs: &fakePaymentLogsStore{},
		},
		mpesa:  gateway,
		mailer: &fakeMailer{},
		push:   &fakePushSender{},
	}
}

// newFakeGateway spins up a stub Daraja endpoint pair and returns a client
// pointed at it, plus a counter of push requests the stub has seen.
func newFakeGateway(t *testing.T, tokenHandler, pushHandler http.HandlerFunc) (*mpesa.Client, *atomic.Int64) {
	t.Helper()

	var pushCalls atomic.Int64
	mux := http.NewServeMux()
	mux.HandleFunc("/oauth/v1/generate", tokenHandler)
	mux.HandleFunc("/mpesa/stkpush/v1/processrequest", func(w http.ResponseWriter, r *http.Request) {
		pushCalls.Add(1)
		pushHandler(w, r)
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	client := mpesa.NewClient(mpesa.Config{
		ConsumerKey:    "key",
		ConsumerSecret: "secret",
		ShortCode:      "174379",
		Passkey:        "passkey",
		BaseURL:        srv.URL,
		CallbackURL:    "https://example.com/v1/payments/mpesa/callback",
	}, srv.Client())
	return client, &pushCalls
}

func requestWithUser(t *testing.T, method, target string, body io.Reader, user *store.User, params map[string]string) *http.Request {
	t.Helper()

	req := httptest.NewRequest(method, target, body)
	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	ctx := context.WithValue(req.Context(), chi.RouteCtxKey, rctx)
	if user != nil {
		ctx = context.WithValue(ctx, userCtx, user)
	}
	return req.WithContext(ctx)
}

func decodeData(t *testing.T, body io.Reader, dst any) {
	t.Helper()

	envelope := struct {
		Data json.RawMessage `json:"data"`
	}{}
	if err := json.NewDecoder(body).Decode(&envelope); err != nil {
		t.Fatalf("decode response envelope: %v", err)
	}
	if err := json.Unmarshal(envelope.Data, dst); err != nil {
		t.Fatalf("decode response data: %v", err)
	}
}
