package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// ContractStatus indicates the lifecycle state of a contract.
type ContractStatus string

const (
	ContractActive ContractStatus = "ACTIVE"
)

// Contract maps to the contracts table.
type Contract struct {
	ContractID           string
	OrganizationID       string
	ContractNumber       string
	ContractType         string
	Status               ContractStatus
	LeadID               string
	PropertyID           *string
	ClientName           string
	Value                decimal.Decimal
	DownPayment          decimal.Decimal
	InstallmentCount     int
	CommissionPercentage decimal.Decimal
	CommissionValue      decimal.Decimal
	PaymentTerms         string
	SignedAt             time.Time
	AuditFields
}

// ContractBroker maps to the contract_brokers link table.
type ContractBroker struct {
	ContractID string
	BrokerID   string
	Percentage decimal.Decimal
	AuditFields
}
