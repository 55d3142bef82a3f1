package dto

import (
	"time"

	"github.com/imovelhub/crm_deals_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// FinancialEntryResponse defines the data returned for a financial entry.
type FinancialEntryResponse struct {
	EntryID           string          `json:"entryID"`
	Direction         string          `json:"direction"`
	Category          string          `json:"category"`
	Description       string          `json:"description"`
	Amount            decimal.Decimal `json:"amount"`
	DueDate           time.Time       `json:"dueDate"`
	Status            string          `json:"status"`
	InstallmentNumber *int            `json:"installmentNumber,omitempty"`
	InstallmentTotal  *int            `json:"installmentTotal,omitempty"`
}

// ContractResponse defines the data returned for a contract, including its
// financial entries when requested.
type ContractResponse struct {
	ContractID           string                   `json:"contractID"`
	ContractNumber       string                   `json:"contractNumber"`
	ContractType         string                   `json:"contractType"`
	Status               string                   `json:"status"`
	LeadID               string                   `json:"leadID"`
	PropertyID           string                   `json:"propertyID,omitempty"`
	ClientName           string                   `json:"clientName"`
	Value                decimal.Decimal          `json:"value"`
	DownPayment          decimal.Decimal          `json:"downPayment"`
	InstallmentCount     int                      `json:"installmentCount"`
	CommissionPercentage decimal.Decimal          `json:"commissionPercentage"`
	CommissionValue      decimal.Decimal          `json:"commissionValue"`
	PaymentTerms         string                   `json:"paymentTerms"`
	SignedAt             time.Time                `json:"signedAt"`
	CreatedAt            time.Time                `json:"createdAt"`
	CreatedBy            string                   `json:"createdBy"`
	Entries              []FinancialEntryResponse `json:"entries,omitempty"`
}

// ToFinancialEntryResponse converts a domain.FinancialEntry to its DTO.
func ToFinancialEntryResponse(e *domain.FinancialEntry) FinancialEntryResponse {
	return FinancialEntryResponse{
		EntryID:           e.EntryID,
		Direction:         string(e.Direction),
		Category:          e.Category,
		Description:       e.Description,
		Amount:            e.Amount,
		DueDate:           e.DueDate,
		Status:            string(e.Status),
		InstallmentNumber: e.InstallmentNumber,
		InstallmentTotal:  e.InstallmentTotal,
	}
}

// ToContractResponse converts a domain.Contract and its entries to a DTO.
func ToContractResponse(c *domain.Contract, entries []domain.FinancialEntry) ContractResponse {
	resp := ContractResponse{
		ContractID:           c.ContractID,
		ContractNumber:       c.ContractNumber,
		ContractType:         c.ContractType,
		Status:               string(c.Status),
		LeadID:               c.LeadID,
		PropertyID:           c.PropertyID,
		ClientName:           c.ClientName,
		Value:                c.Value,
		DownPayment:          c.DownPayment,
		InstallmentCount:     c.InstallmentCount,
		CommissionPercentage: c.CommissionPercentage,
		CommissionValue:      c.CommissionValue,
		PaymentTerms:         c.PaymentTerms,
		SignedAt:             c.SignedAt,
		CreatedAt:            c.CreatedAt,
		CreatedBy:            c.CreatedBy,
	}
	for i := range entries {
		resp.Entries = append(resp.Entries, ToFinancialEntryResponse(&entries[i]))
	}
	return resp
}
