package mapping

import (
	"github.com/imovelhub/crm_deals_app/internal/core/domain"
	"github.com/imovelhub/crm_deals_app/internal/models"
)

// ToModelContract converts a domain Contract to a model Contract.
func ToModelContract(d domain.Contract) models.Contract {
	return models.Contract{
		ContractID:           d.ContractID,
		OrganizationID:       d.OrganizationID,
		ContractNumber:       d.ContractNumber,
		ContractType:         d.ContractType,
		Status:               models.ContractStatus(d.Status),
		LeadID:               d.LeadID,
		PropertyID:           strPtr(d.PropertyID),
		ClientName:           d.ClientName,
		Value:                d.Value,
		DownPayment:          d.DownPayment,
		InstallmentCount:     d.InstallmentCount,
		CommissionPercentage: d.CommissionPercentage,
		CommissionValue:      d.CommissionValue,
		PaymentTerms:         d.PaymentTerms,
		SignedAt:             d.SignedAt,
		AuditFields:          ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainContract converts a model Contract to a domain Contract.
func ToDomainContract(m models.Contract) domain.Contract {
	return domain.Contract{
		ContractID:           m.ContractID,
		OrganizationID:       m.OrganizationID,
		ContractNumber:       m.ContractNumber,
		ContractType:         m.ContractType,
		Status:               domain.ContractStatus(m.Status),
		LeadID:               m.LeadID,
		PropertyID:           strVal(m.PropertyID),
		ClientName:           m.ClientName,
		Value:                m.Value,
		DownPayment:          m.DownPayment,
		InstallmentCount:     m.InstallmentCount,
		CommissionPercentage: m.CommissionPercentage,
		CommissionValue:      m.CommissionValue,
		PaymentTerms:         m.PaymentTerms,
		SignedAt:             m.SignedAt,
		AuditFields:          ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelContractBroker converts a domain ContractBroker to its model.
func ToModelContractBroker(d domain.ContractBroker) models.ContractBroker {
	return models.ContractBroker{
		ContractID:  d.ContractID,
		BrokerID:    d.BrokerID,
		Percentage:  d.Percentage,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}
