package repository

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/phuslu/log"
	"github.com/timshannon/badgerhold/v4"

	"fincalc/domain"
)

// BadgerHistoryRepository keeps history records in an embedded BadgerDB store.
type BadgerHistoryRepository struct {
	store  *badgerhold.Store
	logger *log.Logger
}

// NewBadgerHistoryRepository opens (or creates) the store at path.
func NewBadgerHistoryRepository(path string, logger *log.Logger) (*BadgerHistoryRepository, error) {
	if err := os.MkdirAll(path, 0755); err != nil {
		return nil, fmt.Errorf("failed to create history directory: %w", err)
	}

	options := badgerhold.DefaultOptions
	options.Dir = path
	options.ValueDir = path
	options.Logger = nil

	store, err := badgerhold.Open(options)
	if err != nil {
		return nil, fmt.Errorf("failed to open history store: %w", err)
	}

	logger.Debug().Str("path", path).Msg("history store opened")
	return &BadgerHistoryRepository{store: store, logger: logger}, nil
}

func (r *BadgerHistoryRepository) Save(ctx context.Context, record domain.HistoryRecord) error {
	if record.ID == "" {
		return fmt.Errorf("history record ID is required")
	}
	if record.CreatedUnix == 0 {
		record.CreatedUnix = record.CreatedAt.UnixNano()
	}
	if err := r.store.Upsert(record.ID, record); err != nil {
		return fmt.Errorf("failed to store history record: %w", err)
	}
	return nil
}

func (r *BadgerHistoryRepository) Get(ctx context.Context, id string) (domain.HistoryRecord, error) {
	var rec domain.HistoryRecord
	if err := r.store.Get(id, &rec); err != nil {
		if errors.Is(err, badgerhold.ErrNotFound) {
			return domain.HistoryRecord{}, ErrNotFound
		}
		return domain.HistoryRecord{}, fmt.Errorf("failed to get history record: %w", err)
	}
	return rec, nil
}

func (r *BadgerHistoryRepository) List(ctx context.Context, kind domain.CalculationKind, limit int) ([]domain.HistoryRecord, error) {
	query := badgerhold.Where("ID").Ne("")
	if kind != "" {
		query = query.And("Kind").Eq(kind)
	}
	query = query.SortBy("CreatedUnix").Reverse()
	if limit > 0 {
		query = query.Limit(limit)
	}

	var records []domain.HistoryRecord
	if err := r.store.Find(&records, query); err != nil {
		return nil, fmt.Errorf("failed to list history: %w", err)
	}
	return records, nil
}

func (r *BadgerHistoryRepository) Clear(ctx context.Context) error {
	if err := r.store.DeleteMatching(&domain.HistoryRecord{}, badgerhold.Where("ID").Ne("")); err != nil {
		return fmt.Errorf("failed to clear history: %w", err)
	}
	return nil
}

func (r *BadgerHistoryRepository) Close() error {
	if r.store != nil {
		return r.store.Close()
	}
	return nil
}
