package service

import (
	"context"

	"github.com/phuslu/log"

	"fincalc/domain"
	"fincalc/engine"
	"fincalc/repository"
)

type OptionService struct {
	rec *recorder
}

func NewOptionService(repo repository.HistoryRepository,
	cache repository.CacheRepository,
	logger *log.Logger,
) *OptionService {
	return &OptionService{rec: newRecorder(repo, cache, logger)}
}

// Price returns Black-Scholes prices and the Greeks of the selected option.
func (s *OptionService) Price(ctx context.Context, p domain.OptionParameters) (domain.OptionResult, error) {
	return calculate(ctx, s.rec, domain.KindOption, p, func() (domain.OptionResult, error) {
		price, err := engine.BlackScholesPrice(p)
		if err != nil {
			return domain.OptionResult{}, err
		}
		greeks, err := engine.OptionGreeks(p)
		if err != nil {
			return domain.OptionResult{}, err
		}

		return domain.OptionResult{
			Price: domain.OptionPrice{
				CallPrice:     roundTo(price.CallPrice, PriceDecimals),
				PutPrice:      roundTo(price.PutPrice, PriceDecimals),
				SelectedPrice: roundTo(price.SelectedPrice, PriceDecimals),
				OptionType:    price.OptionType,
				D1:            roundTo(price.D1, RateDecimals),
				D2:            roundTo(price.D2, RateDecimals),
			},
			Greeks: domain.Greeks{
				Delta: roundTo(greeks.Delta, RateDecimals),
				Gamma: roundTo(greeks.Gamma, RateDecimals),
				Vega:  roundTo(greeks.Vega, RateDecimals),
				Theta: roundTo(greeks.Theta, RateDecimals),
				Rho:   roundTo(greeks.Rho, RateDecimals),
			},
		}, nil
	})
}
