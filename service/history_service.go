package service

import (
	"context"
	"fmt"

	"github.com/phuslu/log"

	"fincalc/domain"
	"fincalc/repository"
)

// HistoryService reads and clears the calculation history.
type HistoryService struct {
	repo         repository.HistoryRepository
	logger       *log.Logger
	defaultLimit int
}

func NewHistoryService(repo repository.HistoryRepository, logger *log.Logger, defaultLimit int) *HistoryService {
	if repo == nil {
		repo = repository.NopHistoryRepository{}
	}
	return &HistoryService{repo: repo, logger: logger, defaultLimit: defaultLimit}
}

// List returns the newest records of the given kind (all kinds when empty).
// A limit of 0 uses the configured default.
func (s *HistoryService) List(ctx context.Context, kind domain.CalculationKind, limit int) ([]domain.HistoryRecord, error) {
	if limit == 0 {
		limit = s.defaultLimit
	}
	records, err := s.repo.List(ctx, kind, limit)
	if err != nil {
		return nil, fmt.Errorf("list history: %w", err)
	}
	return records, nil
}

func (s *HistoryService) Get(ctx context.Context, id string) (domain.HistoryRecord, error) {
	record, err := s.repo.Get(ctx, id)
	if err != nil {
		return domain.HistoryRecord{}, fmt.Errorf("get history record %s: %w", id, err)
	}
	return record, nil
}

func (s *HistoryService) Clear(ctx context.Context) error {
	if err := s.repo.Clear(ctx); err != nil {
		return fmt.Errorf("clear history: %w", err)
	}
	s.logger.Info().Msg("history cleared")
	return nil
}
