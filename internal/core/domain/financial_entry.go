package domain

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

// Ledger categories produced by the closure workflow. Category is free text in
// the store; these are the values this workflow writes.
const (
	CategoryDownPayment = "Entrada"
	CategoryInstallment = "Parcela"
	CategoryCommission  = "Comissão"
)

// FinancialEntry is a generic receivable or payable ledger line. The closure
// workflow creates them in batch for down payments, installments and the
// aggregate commission payable; they are never created standalone here.
type FinancialEntry struct {
	EntryID        string          `json:"entryID"`        // Primary Key (UUID)
	OrganizationID string          `json:"organizationID"` // FK -> organizations
	ContractID     string          `json:"contractID"`     // Nullable link
	LeadID         string          `json:"leadID"`         // Nullable link
	Direction      EntryDirection  `json:"direction"`
	Category       string          `json:"category"`
	Description    string          `json:"description"`
	Amount         decimal.Decimal `json:"amount"`
	DueDate        time.Time       `json:"dueDate"`
	Status         EntryStatus     `json:"status"`
	// InstallmentNumber is 0 for the down payment, 1..N for installments and
	// nil for the aggregate commission payable.
	InstallmentNumber *int `json:"installmentNumber"`
	InstallmentTotal  *int `json:"installmentTotal"`
	AuditFields
}
