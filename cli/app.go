package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/phuslu/log"

	"fincalc/config"
	"fincalc/repository"
	"fincalc/service"
)

// App holds the configuration and the services shared by all commands.
type App struct {
	Config *config.Config
	Logger *log.Logger

	Loans       *service.LoanService
	Terms       *service.TermRecommendationService
	Payoff      *service.DebtPayoffService
	Investments *service.InvestmentService
	Options     *service.OptionService
	Risk        *service.RiskService
	CashFlows   *service.CashFlowService
	History     *service.HistoryService

	closers []func() error
}

// Open loads the configuration and wires the cache and history backends
// into the services. Log output goes to stderr.
func (a *App) Open(ctx context.Context, configPath string, stderr io.Writer) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	a.Config = cfg
	a.Logger = config.NewLogger(cfg.Logging, stderr)

	cache, err := a.openCache(ctx)
	if err != nil {
		return err
	}
	history, err := a.openHistory()
	if err != nil {
		return err
	}

	solver := service.SolverSettings{
		Guess:         cfg.IRR.Guess,
		Tolerance:     cfg.IRR.Tolerance,
		MaxIterations: cfg.IRR.MaxIterations,
	}

	a.Loans = service.NewLoanService(history, cache, a.Logger)
	a.Terms = service.NewTermRecommendationService(history, cache, a.Logger)
	a.Payoff = service.NewDebtPayoffService(history, cache, a.Logger)
	a.Investments = service.NewInvestmentService(history, cache, a.Logger)
	a.Options = service.NewOptionService(history, cache, a.Logger)
	a.Risk = service.NewRiskService(history, cache, a.Logger)
	a.CashFlows = service.NewCashFlowService(history, cache, a.Logger, solver)
	a.History = service.NewHistoryService(history, a.Logger, cfg.History.ListLimit)
	return nil
}

func (a *App) openCache(ctx context.Context) (repository.CacheRepository, error) {
	switch a.Config.Cache.Backend {
	case "memory":
		return repository.NewMockCache(), nil
	case "redis":
		ttl, err := a.Config.CacheTTL()
		if err != nil {
			return nil, err
		}
		cache := repository.NewRedisCache(repository.RedisOptions{
			Addr:     a.Config.Cache.RedisAddr,
			Password: a.Config.Cache.RedisPassword,
			DB:       a.Config.Cache.RedisDB,
			TTL:      ttl,
		})

		pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
		defer cancel()
		if err := cache.Ping(pingCtx); err != nil {
			a.Logger.Warn().Err(err).Str("addr", a.Config.Cache.RedisAddr).Msg("redis unavailable, caching disabled")
			_ = cache.Close()
			return nil, nil
		}
		a.closers = append(a.closers, cache.Close)
		return cache, nil
	default:
		return nil, nil
	}
}

func (a *App) openHistory() (repository.HistoryRepository, error) {
	switch a.Config.History.Backend {
	case "memory":
		return repository.NewHistoryRepositoryMemory(), nil
	case "badger":
		repo, err := repository.NewBadgerHistoryRepository(a.Config.History.Path, a.Logger)
		if err != nil {
			return nil, fmt.Errorf("open history store: %w", err)
		}
		a.closers = append(a.closers, repo.Close)
		return repo, nil
	default:
		return repository.NopHistoryRepository{}, nil
	}
}

// Close releases the backends opened by Open.
func (a *App) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil && a.Logger != nil {
			a.Logger.Warn().Err(err).Msg("failed to close backend")
		}
	}
	a.closers = nil
}
