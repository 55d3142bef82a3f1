package mapping

import (
	"github.com/imovelhub/crm_deals_app/internal/core/domain"
	"github.com/imovelhub/crm_deals_app/internal/models"
)

// ToModelLead converts a domain Lead to a model Lead.
func ToModelLead(d domain.Lead) models.Lead {
	return models.Lead{
		LeadID:         d.LeadID,
		OrganizationID: d.OrganizationID,
		Name:           d.Name,
		AssignedUserID: strPtr(d.AssignedUserID),
		PropertyID:     strPtr(d.PropertyID),
		PipelineID:     strPtr(d.PipelineID),
		StageID:        strPtr(d.StageID),
		DealStatus:     models.DealStatus(d.DealStatus),
		WonAt:          d.WonAt,
		AuditFields:    ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainLead converts a model Lead to a domain Lead.
func ToDomainLead(m models.Lead) domain.Lead {
	return domain.Lead{
		LeadID:         m.LeadID,
		OrganizationID: m.OrganizationID,
		Name:           m.Name,
		AssignedUserID: strVal(m.AssignedUserID),
		PropertyID:     strVal(m.PropertyID),
		PipelineID:     strVal(m.PipelineID),
		StageID:        strVal(m.StageID),
		DealStatus:     domain.DealStatus(m.DealStatus),
		WonAt:          m.WonAt,
		AuditFields:    ToDomainAuditFields(m.AuditFields),
	}
}
