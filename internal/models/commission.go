package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// CommissionStatus tracks a commission from forecast through payment.
type CommissionStatus string

const (
	CommissionForecast CommissionStatus = "FORECAST"
)

// Commission maps to the commissions table.
type Commission struct {
	CommissionID    string
	OrganizationID  string
	ContractID      string
	BrokerID        string
	BaseValue       decimal.Decimal
	Percentage      decimal.Decimal
	CalculatedValue decimal.Decimal
	Status          CommissionStatus
	ForecastDate    time.Time
	Notes           string
	AuditFields
}
