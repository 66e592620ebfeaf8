package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mywallet/wallet-system/internal/core/domain"
)

type RecordRepository struct {
	pool *pgxpool.Pool
}

func NewRecordRepository(pool *pgxpool.Pool) *RecordRepository {
	return &RecordRepository{pool: pool}
}

// ListByToken resolves the session and fetches the owner's records in a
// single query. The LEFT JOIN keeps exactly one row (all-NULL record side)
// for a live session with no history, which is how "empty ledger" is told
// apart from "no such session" (zero rows).
func (r *RecordRepository) ListByToken(ctx context.Context, token string) (*domain.Statement, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT u.name, rec.user_id, rec.date, rec.description, rec.value
		FROM sessions s
		JOIN users u ON u.id = s.user_id
		LEFT JOIN records rec ON rec.user_id = s.user_id
		WHERE s.token = $1
		ORDER BY rec.date DESC, rec.id DESC`,
		token,
	)
	if err != nil {
		return nil, fmt.Errorf("list records: %w", err)
	}
	defer rows.Close()

	statement := &domain.Statement{Records: []domain.Record{}}
	found := false
	for rows.Next() {
		var (
			userID      *int64
			date        *time.Time
			description *string
			value       *int64
		)
		if err := rows.Scan(&statement.OwnerName, &userID, &date, &description, &value); err != nil {
			return nil, fmt.Errorf("scan record: %w", err)
		}
		found = true
		if userID == nil {
			// the session's row from the LEFT JOIN; no record behind it
			continue
		}
		statement.Records = append(statement.Records, domain.Record{
			UserID:      *userID,
			Date:        *date,
			Description: *description,
			Value:       *value,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list records: %w", err)
	}
	if !found {
		return nil, domain.ErrSessionNotFound
	}
	return statement, nil
}

// InsertForToken inserts one record owned by the token's user, stamped with
// the database clock. The session lookup is part of the INSERT itself, so a
// token revoked before commit inserts nothing.
func (r *RecordRepository) InsertForToken(ctx context.Context, token, description string, value int64) error {
	ct, err := r.pool.Exec(ctx, `
		INSERT INTO records (user_id, date, description, value)
		SELECT s.user_id, now(), $2, $3
		FROM sessions s
		WHERE s.token = $1`,
		token, description, value,
	)
	if err != nil {
		return fmt.Errorf("insert record: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return domain.ErrSessionNotFound
	}
	return nil
}
