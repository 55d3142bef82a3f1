package mapping

import (
	"github.com/imovelhub/crm_deals_app/internal/core/domain"
	"github.com/imovelhub/crm_deals_app/internal/models"
)

// ToModelFinancialEntry converts a domain FinancialEntry to its model.
func ToModelFinancialEntry(d domain.FinancialEntry) models.FinancialEntry {
	return models.FinancialEntry{
		EntryID:           d.EntryID,
		OrganizationID:    d.OrganizationID,
		ContractID:        strPtr(d.ContractID),
		LeadID:            strPtr(d.LeadID),
		Direction:         models.EntryDirection(d.Direction),
		Category:          d.Category,
		Description:       d.Description,
		Amount:            d.Amount,
		DueDate:           d.DueDate,
		Status:            models.EntryStatus(d.Status),
		InstallmentNumber: d.InstallmentNumber,
		InstallmentTotal:  d.InstallmentTotal,
		AuditFields:       ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainFinancialEntry converts a model FinancialEntry to its domain form.
func ToDomainFinancialEntry(m models.FinancialEntry) domain.FinancialEntry {
	return domain.FinancialEntry{
		EntryID:           m.EntryID,
		OrganizationID:    m.OrganizationID,
		ContractID:        strVal(m.ContractID),
		LeadID:            strVal(m.LeadID),
		Direction:         domain.EntryDirection(m.Direction),
		Category:          m.Category,
		Description:       m.Description,
		Amount:            m.Amount,
		DueDate:           m.DueDate,
		Status:            domain.EntryStatus(m.Status),
		InstallmentNumber: m.InstallmentNumber,
		InstallmentTotal:  m.InstallmentTotal,
		AuditFields:       ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainFinancialEntrySlice converts a slice of model entries.
func ToDomainFinancialEntrySlice(ms []models.FinancialEntry) []domain.FinancialEntry {
	ds := make([]domain.FinancialEntry, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainFinancialEntry(m)
	}
	return ds
}
