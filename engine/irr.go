package engine

import (
	"math"

	"fincalc/domain"
)

const (
	DefaultIRRGuess         = 0.10
	DefaultIRRTolerance     = 1e-6
	DefaultIRRMaxIterations = 1000

	// minDerivative is the slope below which a Newton step is meaningless.
	minDerivative = 1e-12
)

type irrConfig struct {
	guess         float64
	tolerance     float64
	maxIterations int
}

// IRROption overrides a solver default.
type IRROption func(*irrConfig)

// WithGuess sets the starting rate (decimal).
func WithGuess(guess float64) IRROption {
	return func(c *irrConfig) { c.guess = guess }
}

// WithTolerance sets the step size below which the solver stops.
func WithTolerance(tolerance float64) IRROption {
	return func(c *irrConfig) { c.tolerance = tolerance }
}

// WithMaxIterations sets the iteration budget.
func WithMaxIterations(n int) IRROption {
	return func(c *irrConfig) { c.maxIterations = n }
}

// InternalRateOfReturn finds the rate r with NPV(r) = 0 by Newton-Raphson.
//
// The solver stops when |r_{k+1} - r_k| drops below the tolerance. It fails
// with a *ConvergenceError when the budget runs out, when NPV'(r) vanishes,
// or when an estimate leaves (-1, +inf).
func InternalRateOfReturn(flows domain.CashFlowSeries, opts ...IRROption) (domain.IRRResult, error) {
	const op = "internal rate of return"

	if err := check(op, domain.IRRInput{CashFlows: flows}); err != nil {
		return domain.IRRResult{}, err
	}
	if !signChange(flows) {
		return domain.IRRResult{}, invalid(op, "cash_flows", "must contain both positive and negative amounts")
	}

	cfg := irrConfig{
		guess:         DefaultIRRGuess,
		tolerance:     DefaultIRRTolerance,
		maxIterations: DefaultIRRMaxIterations,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if !finite(cfg.guess) || cfg.guess <= -1 {
		return domain.IRRResult{}, invalid(op, "guess", "must be a finite rate greater than -1")
	}
	if !finite(cfg.tolerance) || cfg.tolerance <= 0 {
		return domain.IRRResult{}, invalid(op, "tolerance", "must be greater than 0")
	}
	if cfg.maxIterations <= 0 {
		return domain.IRRResult{}, invalid(op, "max_iterations", "must be greater than 0")
	}

	rate := cfg.guess
	for iter := 1; iter <= cfg.maxIterations; iter++ {
		npv, deriv := npvAndDerivative(rate, flows)
		if math.Abs(deriv) < minDerivative {
			return domain.IRRResult{}, &ConvergenceError{Op: op, Iterations: iter, LastRate: rate, Reason: "derivative vanished"}
		}

		next := rate - npv/deriv
		if !finite(next) || next <= -1 {
			return domain.IRRResult{}, &ConvergenceError{Op: op, Iterations: iter, LastRate: rate, Reason: "estimate left the valid rate range"}
		}
		if math.Abs(next-rate) < cfg.tolerance {
			return domain.IRRResult{IRR: next, Iterations: iter}, nil
		}
		rate = next
	}

	return domain.IRRResult{}, &ConvergenceError{Op: op, Iterations: cfg.maxIterations, LastRate: rate, Reason: "iteration budget exhausted"}
}

// NPV discounts flows[i] by (1+rate)^i; rate is decimal.
func NPV(rate float64, flows domain.CashFlowSeries) (float64, error) {
	const op = "net present value"
	if len(flows) == 0 {
		return 0, invalid(op, "cash_flows", "must not be empty")
	}
	if !finite(rate) || rate <= -1 {
		return 0, invalid(op, "rate", "must be a finite rate greater than -1")
	}
	if !finite(flows...) {
		return 0, invalid(op, "cash_flows", "must be finite numbers")
	}
	npv, _ := npvAndDerivative(rate, flows)
	return npv, nil
}

// npvAndDerivative returns Σ c_i/(1+r)^i and Σ -i·c_i/(1+r)^(i+1).
func npvAndDerivative(rate float64, flows domain.CashFlowSeries) (float64, float64) {
	var npv, deriv float64
	for i, cf := range flows {
		disc := math.Pow(1+rate, float64(i))
		npv += cf / disc
		if i > 0 {
			deriv -= float64(i) * cf / (disc * (1 + rate))
		}
	}
	return npv, deriv
}

func signChange(flows domain.CashFlowSeries) bool {
	var pos, neg bool
	for _, cf := range flows {
		switch {
		case cf > 0:
			pos = true
		case cf < 0:
			neg = true
		}
	}
	return pos && neg
}
