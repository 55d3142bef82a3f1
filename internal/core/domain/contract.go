package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ContractStatus indicates the lifecycle state of a contract.
type ContractStatus string

const (
	// ContractActive is the only status the closure workflow produces.
	// Completed/cancelled transitions are handled elsewhere.
	ContractActive ContractStatus = "ACTIVE"
)

// Contract is the durable record of a closed deal. It is immutable after
// creation as far as the closure workflow is concerned.
type Contract struct {
	ContractID           string          `json:"contractID"`     // Primary Key (UUID)
	OrganizationID       string          `json:"organizationID"` // FK -> organizations
	ContractNumber       string          `json:"contractNumber"` // CTR-<year>-<seq>, unique per organization
	ContractType         string          `json:"contractType"`   // e.g. "venda"
	Status               ContractStatus  `json:"status"`
	LeadID               string          `json:"leadID"`
	PropertyID           string          `json:"propertyID"` // Nullable
	ClientName           string          `json:"clientName"` // Snapshot of the lead name at closure
	Value                decimal.Decimal `json:"value"`
	DownPayment          decimal.Decimal `json:"downPayment"`
	InstallmentCount     int             `json:"installmentCount"`
	CommissionPercentage decimal.Decimal `json:"commissionPercentage"`
	CommissionValue      decimal.Decimal `json:"commissionValue"` // value * pct / 100
	PaymentTerms         string          `json:"paymentTerms"`    // Free text
	SignedAt             time.Time       `json:"signedAt"`
	AuditFields
}

// ContractBroker links a contract to a broker with that broker's share of the
// commission percentage. One row per broker per contract.
type ContractBroker struct {
	ContractID string          `json:"contractID"`
	BrokerID   string          `json:"brokerID"` // UserID of the broker
	Percentage decimal.Decimal `json:"percentage"`
	AuditFields
}
