package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// EntryDirection tells receivables apart from payables.
type EntryDirection string

const (
	Receivable EntryDirection = "RECEIVABLE"
	Payable    EntryDirection = "PAYABLE"
)

// EntryStatus indicates the settlement state of a financial entry.
type EntryStatus string

const (
	EntryPending EntryStatus = "PENDING"
)

// FinancialEntry maps to the financial_entries table.
type FinancialEntry struct {
	EntryID           string
	OrganizationID    string
	ContractID        *string
	LeadID            *string
	Direction         EntryDirection
	Category          string
	Description       string
	Amount            decimal.Decimal
	DueDate           time.Time
	Status            EntryStatus
	InstallmentNumber *int
	InstallmentTotal  *int
	AuditFields
}
