package service

import (
	"math"

	"github.com/shopspring/decimal"
)

// roundTo rounds half away from zero at the given number of decimals.
// Non-finite values are returned unchanged.
func roundTo(value float64, places int32) float64 {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return value
	}
	return decimal.NewFromFloat(value).Round(places).InexactFloat64()
}

// roundTo2Decimals rounds a monetary amount to cents.
func roundTo2Decimals(value float64) float64 {
	return roundTo(value, MoneyDecimals)
}
