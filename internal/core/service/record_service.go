package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/mywallet/wallet-system/internal/api/metrics"
	"github.com/mywallet/wallet-system/internal/core/domain"
	"github.com/mywallet/wallet-system/internal/core/ports"
)

type recordService struct {
	records ports.RecordRepository
	log     zerolog.Logger
}

// NewRecordService returns a RecordService implementation backed by the
// given repository.
func NewRecordService(records ports.RecordRepository, log zerolog.Logger) ports.RecordService {
	return &recordService{records: records, log: log}
}

// ListForToken resolves the token and returns the owner's statement, most
// recent record first. The token resolution happens inside the repository
// query itself, so there is no window between "is the session alive" and
// "read its records".
func (s *recordService) ListForToken(ctx context.Context, token string) (*domain.Statement, error) {
	statement, err := s.records.ListByToken(ctx, token)
	if err != nil {
		return nil, err
	}
	if statement.Records == nil {
		statement.Records = []domain.Record{}
	}
	return statement, nil
}

// Create inserts one record for the token's user, stamped with the store's
// current time. The insert is conditioned on the session still existing at
// commit time.
func (s *recordService) Create(ctx context.Context, token, description string, value int64) error {
	if err := s.records.InsertForToken(ctx, token, description, value); err != nil {
		return err
	}

	metrics.RecordsCreatedTotal.Inc()
	s.log.Debug().Int64("value", value).Msg("record created")
	return nil
}
