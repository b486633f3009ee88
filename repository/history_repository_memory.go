package repository

import (
	"context"
	"sync"

	"fincalc/domain"
)

// HistoryRepositoryMemory is an in-memory implementation of HistoryRepository.
type HistoryRepositoryMemory struct {
	mu   sync.RWMutex
	data []domain.HistoryRecord
}

// NewHistoryRepositoryMemory creates a new in-memory history repository.
func NewHistoryRepositoryMemory() *HistoryRepositoryMemory {
	return &HistoryRepositoryMemory{
		data: []domain.HistoryRecord{},
	}
}

// Save appends the record; records arrive in creation order.
func (r *HistoryRepositoryMemory) Save(ctx context.Context, record domain.HistoryRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data = append(r.data, record)
	return nil
}

func (r *HistoryRepositoryMemory) Get(ctx context.Context, id string) (domain.HistoryRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, rec := range r.data {
		if rec.ID == id {
			return rec, nil
		}
	}
	return domain.HistoryRecord{}, ErrNotFound
}

func (r *HistoryRepositoryMemory) List(ctx context.Context, kind domain.CalculationKind, limit int) ([]domain.HistoryRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := []domain.HistoryRecord{}
	for i := len(r.data) - 1; i >= 0; i-- {
		if kind != "" && r.data[i].Kind != kind {
			continue
		}
		out = append(out, r.data[i])
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out, nil
}

func (r *HistoryRepositoryMemory) Clear(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data = []domain.HistoryRecord{}
	return nil
}
