package service

import (
	"context"
	"io"
	"sync"

	"github.com/phuslu/log"

	"fincalc/domain"
	"fincalc/repository"
)

// MockHistoryRepository records saved entries and can be made to fail.
type MockHistoryRepository struct {
	mu      sync.Mutex
	Records []domain.HistoryRecord
	SaveErr error
}

func (m *MockHistoryRepository) Save(ctx context.Context, record domain.HistoryRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.Records = append(m.Records, record)
	return nil
}

func (m *MockHistoryRepository) Get(ctx context.Context, id string) (domain.HistoryRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, r := range m.Records {
		if r.ID == id {
			return r, nil
		}
	}
	return domain.HistoryRecord{}, repository.ErrNotFound
}

func (m *MockHistoryRepository) List(ctx context.Context, kind domain.CalculationKind, limit int) ([]domain.HistoryRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []domain.HistoryRecord
	for i := len(m.Records) - 1; i >= 0; i-- {
		if kind != "" && m.Records[i].Kind != kind {
			continue
		}
		out = append(out, m.Records[i])
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out, nil
}

func (m *MockHistoryRepository) Clear(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Records = nil
	return nil
}

func testLogger() *log.Logger {
	return &log.Logger{Level: log.ErrorLevel, Writer: &log.IOWriter{Writer: io.Discard}}
}
