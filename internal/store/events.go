package store

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Event struct {
	ID          int64          `json:"id"`
	Name        string         `json:"name"`
	Location    string         `json:"location"`
	Description string         `json:"description"`
	// Whole Kenyan shillings; the gateway does not deal in cents.
	Price     int64          `json:"price"`
	EventDate time.Time      `json:"event_date"`
	ImageURL  sql.NullString `json:"image_url" swaggertype:"string"`
	CreatedBy int64          `json:"created_by"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

type EventsStore struct {
	db *pgxpool.Pool
}

func (s *EventsStore) Create(ctx context.Context, event *Event) error {
	query := `
		INSERT INTO events (name, location, description, price, event_date, created_by)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at`

	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	return s.db.QueryRow(
		ctx, query,
		event.Name, event.Location, event.Description, event.Price, event.EventDate, event.CreatedBy,
	).Scan(&event.ID, &event.CreatedAt, &event.UpdatedAt)
}

func (s *EventsStore) GetByID(ctx context.Context, eventID int64) (*Event, error) {
	query := `
		SELECT id, name, location, description, price, event_date, image_url, created_by, created_at, updated_at
		FROM events WHERE id = $1`

	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	var e Event
	err := s.db.QueryRow(ctx, query, eventID).Scan(
		&e.ID, &e.Name, &e.Location, &e.Description, &e.Price, &e.EventDate,
		&e.ImageURL, &e.CreatedBy, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &e, nil
}

// List returns upcoming events, optionally filtered by a case-insensitive
// match on name or location.
func (s *EventsStore) List(ctx context.Context, search string) ([]Event, error) {
	query := `
		SELECT id, name, location, description, price, event_date, image_url, created_by, created_at, updated_at
		FROM events
		WHERE ($1 = '' OR name ILIKE '%' || $1 || '%' OR location ILIKE '%' || $1 || '%')
		ORDER BY event_date ASC`

	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	rows, err := s.db.Query(ctx, query, search)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []Event
	for rows.Next() {
		var e Event
		if err := rows.Scan(
			&e.ID, &e.Name, &e.Location, &e.Description, &e.Price, &e.EventDate,
			&e.ImageURL, &e.CreatedBy, &e.CreatedAt, &e.UpdatedAt,
		); err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

func (s *EventsStore) SetImageURL(ctx context.Context, eventID int64, url string) error {
	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	tag, err := s.db.Exec(ctx, `UPDATE events SET image_url = $1, updated_at = NOW() WHERE id = $2`, url, eventID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
