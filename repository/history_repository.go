package repository

import (
	"context"
	"errors"

	"fincalc/domain"
)

var ErrNotFound = errors.New("history record not found")

// HistoryRepository persists calculation history records.
type HistoryRepository interface {
	Save(ctx context.Context, record domain.HistoryRecord) error
	Get(ctx context.Context, id string) (domain.HistoryRecord, error)
	// List returns records newest first. An empty kind matches all kinds;
	// limit <= 0 means no limit.
	List(ctx context.Context, kind domain.CalculationKind, limit int) ([]domain.HistoryRecord, error)
	Clear(ctx context.Context) error
}

// NopHistoryRepository discards everything; used when history is disabled.
type NopHistoryRepository struct{}

func (NopHistoryRepository) Save(context.Context, domain.HistoryRecord) error { return nil }

func (NopHistoryRepository) Get(context.Context, string) (domain.HistoryRecord, error) {
	return domain.HistoryRecord{}, ErrNotFound
}

func (NopHistoryRepository) List(context.Context, domain.CalculationKind, int) ([]domain.HistoryRecord, error) {
	return nil, nil
}

func (NopHistoryRepository) Clear(context.Context) error { return nil }
