package ports

import (
	"context"

	"github.com/mywallet/wallet-system/internal/core/domain"
)

type RecordService interface {
	ListForToken(ctx context.Context, token string) (*domain.Statement, error)
	Create(ctx context.Context, token, description string, value int64) error
}
