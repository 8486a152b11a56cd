package store

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Ticket statuses follow the gateway lifecycle: a ticket is created pending,
// then moved by the initiation result. There is no join key back to the
// asynchronous callback, so callbacks never move a ticket (see callbacks.go).
const (
	TicketPending   = "pending"
	TicketInitiated = "initiated"
	TicketFailed    = "failed"
)

type Ticket struct {
	ID              int64          `json:"id"`
	EventID         int64          `json:"event_id"`
	UserID          int64          `json:"user_id"`
	UserEmail       string         `json:"user_email"`
	Phone           string         `json:"phone"`
	Amount          int64          `json:"amount"`
	AccountRef      string         `json:"account_ref"`
	Status          string         `json:"status"`
	CustomerMessage sql.NullString `json:"customer_message" swaggertype:"string"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
}

// UserTicket is the view model for a user's booked events.
type UserTicket struct {
	TicketID        int64     `json:"ticket_id"`
	EventID         int64     `json:"event_id"`
	EventName       string    `json:"event_name"`
	Location        string    `json:"location"`
	Description     string    `json:"description"`
	EventDate       time.Time `json:"event_date"`
	ImageURL        *string   `json:"image_url"`
	Amount          int64     `json:"amount"`
	Status          string    `json:"status"`
	CustomerMessage *string   `json:"customer_message"`
	BookedAt        time.Time `json:"booked_at"`
}

type TicketsStore struct {
	db *pgxpool.Pool
}

func (s *TicketsStore) Create(ctx context.Context, t *Ticket) error {
	query := `
		INSERT INTO tickets (event_id, user_id, user_email, phone, amount, account_ref, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at`

	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	return s.db.QueryRow(
		ctx, query,
		t.EventID, t.UserID, t.UserEmail, t.Phone, t.Amount, t.AccountRef, t.Status,
	).Scan(&t.ID, &t.CreatedAt, &t.UpdatedAt)
}

func (s *TicketsStore) GetByID(ctx context.Context, ticketID int64) (*Ticket, error) {
	query := `
		SELECT id, event_id, user_id, user_email, phone, amount, account_ref, status, customer_message, created_at, updated_at
		FROM tickets WHERE id = $1`

	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	var t Ticket
	err := s.db.QueryRow(ctx, query, ticketID).Scan(
		&t.ID, &t.EventID, &t.UserID, &t.UserEmail, &t.Phone, &t.Amount,
		&t.AccountRef, &t.Status, &t.CustomerMessage, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &t, nil
}

func (s *TicketsStore) GetByUser(ctx context.Context, userID int64) ([]UserTicket, error) {
	query := `
		SELECT t.id, e.id, e.name, e.location, e.description, e.event_date, e.image_url,
		       t.amount, t.status, t.customer_message, t.created_at
		FROM tickets t
		JOIN events e ON e.id = t.event_id
		WHERE t.user_id = $1
		ORDER BY t.created_at DESC`

	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	rows, err := s.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tickets []UserTicket
	for rows.Next() {
		var t UserTicket
		if err := rows.Scan(
			&t.TicketID, &t.EventID, &t.EventName, &t.Location, &t.Description,
			&t.EventDate, &t.ImageURL, &t.Amount, &t.Status, &t.CustomerMessage, &t.BookedAt,
		); err != nil {
			return nil, err
		}
		tickets = append(tickets, t)
	}
	return tickets, rows.Err()
}

func (s *TicketsStore) SetStatus(ctx context.Context, ticketID int64, status, message string) error {
	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	_, err := s.db.Exec(ctx, `
		UPDATE tickets
		   SET status = $1, customer_message = $2, updated_at = NOW()
		 WHERE id = $3`, status, message, ticketID)
	return err
}
