package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// CommissionStatus tracks a commission from forecast through payment. The
// closure workflow only ever creates forecasts.
type CommissionStatus string

const (
	CommissionForecast CommissionStatus = "FORECAST"
)

// Commission is one broker's earned share of a contract's commission pool.
type Commission struct {
	CommissionID    string           `json:"commissionID"` // Primary Key (UUID)
	OrganizationID  string           `json:"organizationID"`
	ContractID      string           `json:"contractID"`
	BrokerID        string           `json:"brokerID"`
	BaseValue       decimal.Decimal  `json:"baseValue"`  // Contract value the split was taken from
	Percentage      decimal.Decimal  `json:"percentage"` // This broker's slice of the commission pct
	CalculatedValue decimal.Decimal  `json:"calculatedValue"`
	Status          CommissionStatus `json:"status"`
	ForecastDate    time.Time        `json:"forecastDate"`
	Notes           string           `json:"notes"` // References the contract number
	AuditFields
}
