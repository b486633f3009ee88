package service

import (
	"context"
	"fmt"

	"github.com/phuslu/log"

	"fincalc/domain"
	"fincalc/engine"
	"fincalc/repository"
)

// SolverSettings configures the IRR solver.
type SolverSettings struct {
	Guess         float64 `json:"guess"`
	Tolerance     float64 `json:"tolerance"`
	MaxIterations int     `json:"max_iterations"`
}

// DefaultSolverSettings matches the engine defaults.
func DefaultSolverSettings() SolverSettings {
	return SolverSettings{
		Guess:         engine.DefaultIRRGuess,
		Tolerance:     engine.DefaultIRRTolerance,
		MaxIterations: engine.DefaultIRRMaxIterations,
	}
}

type CashFlowService struct {
	rec    *recorder
	solver SolverSettings
}

func NewCashFlowService(repo repository.HistoryRepository,
	cache repository.CacheRepository,
	logger *log.Logger,
	solver SolverSettings,
) *CashFlowService {
	return &CashFlowService{rec: newRecorder(repo, cache, logger), solver: solver}
}

// irrRequest is the cache and history key: solver settings change the answer.
type irrRequest struct {
	domain.IRRInput
	Solver SolverSettings `json:"solver"`
}

// IRR solves for the internal rate of return of the cash flows.
func (s *CashFlowService) IRR(ctx context.Context, in domain.IRRInput) (domain.IRRResult, error) {
	if len(in.CashFlows) > MaxCashFlows {
		return domain.IRRResult{}, fmt.Errorf("%w: more than %d cash flows", ErrLimitExceeded, MaxCashFlows)
	}

	req := irrRequest{IRRInput: in, Solver: s.solver}
	return calculate(ctx, s.rec, domain.KindIRR, req, func() (domain.IRRResult, error) {
		res, err := engine.InternalRateOfReturn(in.CashFlows,
			engine.WithGuess(s.solver.Guess),
			engine.WithTolerance(s.solver.Tolerance),
			engine.WithMaxIterations(s.solver.MaxIterations),
		)
		if err != nil {
			s.rec.logger.Debug().Err(err).Int("flows", len(in.CashFlows)).Msg("irr failed")
			return domain.IRRResult{}, err
		}
		res.IRR = roundTo(res.IRR, RateDecimals)
		return res, nil
	})
}

// NPV discounts the cash flows at in.RatePercent.
func (s *CashFlowService) NPV(ctx context.Context, in domain.NPVInput) (domain.NPVResult, error) {
	if len(in.CashFlows) > MaxCashFlows {
		return domain.NPVResult{}, fmt.Errorf("%w: more than %d cash flows", ErrLimitExceeded, MaxCashFlows)
	}

	return calculate(ctx, s.rec, domain.KindNPV, in, func() (domain.NPVResult, error) {
		npv, err := engine.NPV(in.RatePercent/100, in.CashFlows)
		if err != nil {
			return domain.NPVResult{}, err
		}
		return domain.NPVResult{NPV: roundTo2Decimals(npv)}, nil
	})
}
