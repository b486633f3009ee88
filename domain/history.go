package domain

import (
	"encoding/json"
	"time"
)

// CalculationKind names the calculation a history record belongs to.
type CalculationKind string

const (
	KindCompound      CalculationKind = "compound"
	KindContributions CalculationKind = "contributions"
	KindLoan          CalculationKind = "loan"
	KindAmortization  CalculationKind = "amortization"
	KindTerms         CalculationKind = "terms"
	KindInvestment    CalculationKind = "investment"
	KindRetirement    CalculationKind = "retirement"
	KindOption        CalculationKind = "option"
	KindVaR           CalculationKind = "var"
	KindIRR           CalculationKind = "irr"
	KindNPV           CalculationKind = "npv"
	KindPayoff        CalculationKind = "payoff"
)

// HistoryRecord is a persisted calculation: the engine input and output as plain data.
type HistoryRecord struct {
	ID        string          `json:"id"`
	Kind      CalculationKind `json:"kind"`
	Input     json.RawMessage `json:"input"`
	Output    json.RawMessage `json:"output"`
	CreatedAt time.Time       `json:"created_at"`
	// CreatedUnix mirrors CreatedAt for ordering in stores.
	CreatedUnix int64 `json:"-"`
}
