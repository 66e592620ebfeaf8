package ports

import (
	"context"

	"github.com/mywallet/wallet-system/internal/core/domain"
)

// RecordRepository persists ledger entries. Both operations resolve the
// bearer token inside the store call itself, so a session revoked between
// requests can never be read from or written for.
type RecordRepository interface {
	// ListByToken returns every record owned by the token's user, most
	// recent first, together with the owner's name. A token with no session
	// row yields domain.ErrSessionNotFound; a valid session with no records
	// yields an empty (non-nil) slice.
	ListByToken(ctx context.Context, token string) (*domain.Statement, error)
	// InsertForToken inserts one record, timestamped by the store, only if
	// the token still resolves to a session at insert time. An unresolvable
	// token yields domain.ErrSessionNotFound.
	InsertForToken(ctx context.Context, token, description string, value int64) error
}
