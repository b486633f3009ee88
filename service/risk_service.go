package service

import (
	"context"
	"fmt"

	"github.com/phuslu/log"

	"fincalc/domain"
	"fincalc/engine"
	"fincalc/repository"
)

type RiskService struct {
	rec *recorder
}

func NewRiskService(repo repository.HistoryRepository,
	cache repository.CacheRepository,
	logger *log.Logger,
) *RiskService {
	return &RiskService{rec: newRecorder(repo, cache, logger)}
}

// ValueAtRisk computes parametric VaR. An untabulated confidence level is
// logged and priced with the 95% z-score.
func (s *RiskService) ValueAtRisk(ctx context.Context, p domain.VaRParameters) (domain.VaRResult, error) {
	if p.PortfolioValue > MaxPortfolioValue {
		return domain.VaRResult{}, fmt.Errorf("%w: portfolio value exceeds the maximum of %.2f", ErrLimitExceeded, MaxPortfolioValue)
	}

	return calculate(ctx, s.rec, domain.KindVaR, p, func() (domain.VaRResult, error) {
		res, err := engine.ParametricVaR(p)
		if err != nil {
			return domain.VaRResult{}, err
		}
		if res.ConfidenceFallback {
			s.rec.logger.Info().
				Float64("confidence", p.ConfidenceLevelPercent).
				Float64("z_score", res.ZScore).
				Msg("confidence level not tabulated, using 95% z-score")
		}
		res.VaRAmount = roundTo2Decimals(res.VaRAmount)
		return res, nil
	})
}
