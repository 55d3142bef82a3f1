package mapping

import (
	"github.com/imovelhub/crm_deals_app/internal/core/domain"
	"github.com/imovelhub/crm_deals_app/internal/models"
)

// ToModelCommission converts a domain Commission to its model.
func ToModelCommission(d domain.Commission) models.Commission {
	return models.Commission{
		CommissionID:    d.CommissionID,
		OrganizationID:  d.OrganizationID,
		ContractID:      d.ContractID,
		BrokerID:        d.BrokerID,
		BaseValue:       d.BaseValue,
		Percentage:      d.Percentage,
		CalculatedValue: d.CalculatedValue,
		Status:          models.CommissionStatus(d.Status),
		ForecastDate:    d.ForecastDate,
		Notes:           d.Notes,
		AuditFields:     ToModelAuditFields(d.AuditFields),
	}
}
