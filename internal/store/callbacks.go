package store

import (
	"context"
	"encoding/json"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// CallbackRecord is an append-only row written when the gateway posts an
// asynchronous payment result. Nothing links it back to the ticket that
// triggered the push: the request-scoped CheckoutRequestID is stored here
// but never persisted alongside the ticket, so no join is attempted.
type CallbackRecord struct {
	ID                int64           `json:"id"`
	MerchantRequestID string          `json:"merchant_request_id"`
	CheckoutRequestID string          `json:"checkout_request_id"`
	ResultCode        int             `json:"result_code"`
	ResultDesc        string          `json:"result_desc"`
	Metadata          json.RawMessage `json:"metadata,omitempty"`
	ReceivedAt        time.Time       `json:"received_at"`
}

type CallbacksStore struct {
	db *pgxpool.Pool
}

func (s *CallbacksStore) Insert(ctx context.Context, rec *CallbackRecord) error {
	query := `
		INSERT INTO mpesa_callbacks (merchant_request_id, checkout_request_id, result_code, result_desc, metadata)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, received_at`

	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	return s.db.QueryRow(
		ctx, query,
		rec.MerchantRequestID, rec.CheckoutRequestID, rec.ResultCode, rec.ResultDesc, rec.Metadata,
	).Scan(&rec.ID, &rec.ReceivedAt)
}

func (s *CallbacksStore) List(ctx context.Context, limit int) ([]CallbackRecord, error) {
	if limit <= 0 {
		limit = 50
	}
	query := `
		SELECT id, merchant_request_id, checkout_request_id, result_code, result_desc, metadata, received_at
		FROM mpesa_callbacks
		ORDER BY received_at DESC
		LIMIT $1`

	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	rows, err := s.db.Query(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []CallbackRecord
	for rows.Next() {
		var rec CallbackRecord
		if err := rows.Scan(
			&rec.ID, &rec.MerchantRequestID, &rec.CheckoutRequestID,
			&rec.ResultCode, &rec.ResultDesc, &rec.Metadata, &rec.ReceivedAt,
		); err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}
