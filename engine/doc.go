// Package engine holds the pure financial routines behind the calculators:
// time value of money, loans and amortization, debt payoff plans,
// projections, Black-Scholes, parametric VaR and IRR.
//
// Every function is stateless and safe for concurrent use. Inputs pass a
// single precondition layer (see validate.go); violations are returned as
// *InvalidInputError. The IRR solver and the payoff simulation report
// failure to finish as *ConvergenceError.
// Results are raw float64 values; rounding and formatting belong to callers.
package engine
