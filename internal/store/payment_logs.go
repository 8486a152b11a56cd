package store

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// PaymentLogsStore keeps a per-ticket trail of gateway traffic for support
// and debugging. Log types: request, response, error.
type PaymentLogsStore struct {
	db *pgxpool.Pool
}

func (s *PaymentLogsStore) Insert(ctx context.Context, ticketID int64, logType string, payload any) error {
	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	_, err := s.db.Exec(ctx, `
		INSERT INTO payment_logs (ticket_id, log_type, payload)
		VALUES ($1, $2, $3)`, ticketID, logType, marshalPayload(payload))
	if err != nil {
		return fmt.Errorf("insert payment_log: %w", err)
	}
	return nil
}
