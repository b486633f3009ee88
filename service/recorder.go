package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
	"github.com/phuslu/log"

	"fincalc/domain"
	"fincalc/repository"
)

// ErrLimitExceeded is returned when an input is valid for the engine but
// outside what the application accepts.
var ErrLimitExceeded = errors.New("limit exceeded")

// ErrResultOutOfRange is returned when a result cannot be represented
// (it overflowed to infinity).
var ErrResultOutOfRange = errors.New("result out of range")

// recorder serves results from the cache and writes history records.
// Both side effects are best effort: failures are logged, never returned.
type recorder struct {
	repo   repository.HistoryRepository
	cache  repository.CacheRepository
	logger *log.Logger
	now    func() time.Time
}

func newRecorder(repo repository.HistoryRepository, cache repository.CacheRepository, logger *log.Logger) *recorder {
	if repo == nil {
		repo = repository.NopHistoryRepository{}
	}
	return &recorder{repo: repo, cache: cache, logger: logger, now: time.Now}
}

// calculate runs compute for input, going through the cache when possible,
// and records the calculation in history.
func calculate[In, Out any](ctx context.Context, r *recorder, kind domain.CalculationKind, input In, compute func() (Out, error)) (Out, error) {
	var zero Out

	inputJSON, err := json.Marshal(input)
	if err != nil {
		// NaN and Inf cannot be encoded; the engine rejects them.
		return compute()
	}
	key := cacheKey(kind, inputJSON)

	if r.cache != nil {
		if raw, ok := r.cache.Get(ctx, key); ok {
			var out Out
			if err := json.Unmarshal([]byte(raw), &out); err == nil {
				r.logger.Debug().Str("kind", string(kind)).Str("key", key).Msg("cache hit")
				r.save(ctx, kind, inputJSON, json.RawMessage(raw))
				return out, nil
			}
			r.logger.Warn().Str("key", key).Msg("ignoring unreadable cache entry")
		}
	}

	out, err := compute()
	if err != nil {
		return zero, err
	}

	outputJSON, err := json.Marshal(out)
	if err != nil {
		return zero, fmt.Errorf("%s: %w", kind, ErrResultOutOfRange)
	}

	if r.cache != nil {
		if err := r.cache.Set(ctx, key, string(outputJSON)); err != nil {
			r.logger.Warn().Err(err).Str("kind", string(kind)).Msg("failed to cache result")
		}
	}
	r.save(ctx, kind, inputJSON, outputJSON)

	r.logger.Debug().Str("kind", string(kind)).Str("key", key).Msg("calculated")
	return out, nil
}

func (r *recorder) save(ctx context.Context, kind domain.CalculationKind, input, output json.RawMessage) {
	now := r.now()
	record := domain.HistoryRecord{
		ID:          uuid.NewString(),
		Kind:        kind,
		Input:       input,
		Output:      output,
		CreatedAt:   now,
		CreatedUnix: now.UnixNano(),
	}
	// History is best effort; a failed save never fails the calculation.
	if err := r.repo.Save(ctx, record); err != nil {
		r.logger.Warn().Err(err).Str("kind", string(kind)).Msg("failed to save calculation history")
	}
}

func cacheKey(kind domain.CalculationKind, input []byte) string {
	return fmt.Sprintf("%s:%016x", kind, xxhash.Sum64(input))
}
