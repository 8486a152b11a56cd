package store

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrNotFound          = errors.New("resource not found")
	ErrConflict          = errors.New("resource already exists")
	QueryTimeoutDuration = time.Second * 5
)

type Storage struct {
	Users interface {
		Create(context.Context, *User) error
		GetByID(context.Context, int64) (*User, error)
		GetByEmail(context.Context, string) (*User, error)
		UpdateProfile(context.Context, int64, map[string]interface{}) error
		SaveRefreshToken(context.Context, int64, string) error
		DeleteRefreshToken(context.Context, int64) error
		SavePushToken(context.Context, int64, string) error
	}
	Events interface {
		Create(context.Context, *Event) error
		GetByID(context.Context, int64) (*Event, error)
		List(context.Context, string) ([]Event, error)
		SetImageURL(context.Context, int64, string) error
	}
	Tickets interface {
		Create(context.Context, *Ticket) error
		GetByID(context.Context, int64) (*Ticket, error)
		GetByUser(context.Context, int64) ([]UserTicket, error)
		SetStatus(context.Context, int64, string, string) error
	}
	Callbacks interface {
		Insert(context.Context, *CallbackRecord) error
		List(context.Context, int) ([]CallbackRecord, error)
	}
	PaymentLogs interface {
		Insert(ctx context.Context, ticketID int64, logType string, payload any) error
	}
}

func NewStorage(db *pgxpool.Pool) Storage {
	return Storage{
		Users:       &UsersStore{db},
		Events:      &EventsStore{db},
		Tickets:     &TicketsStore{db},
		Callbacks:   &CallbacksStore{db},
		PaymentLogs: &PaymentLogsStore{db},
	}
}

func marshalPayload(payload any) []byte {
	if payload == nil {
		return nil
	}
	b, err := json.Marshal(payload)
	if err != nil {
		return nil
	}
	return b
}
