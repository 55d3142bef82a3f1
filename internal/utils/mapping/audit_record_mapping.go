package mapping

import (
	"github.com/imovelhub/crm_deals_app/internal/core/domain"
	"github.com/imovelhub/crm_deals_app/internal/models"
)

// ToModelAuditRecord converts a domain AuditRecord to its model.
func ToModelAuditRecord(d domain.AuditRecord) models.AuditRecord {
	return models.AuditRecord{
		AuditID:        d.AuditID,
		OrganizationID: d.OrganizationID,
		UserID:         d.UserID,
		Action:         d.Action,
		EntityType:     d.EntityType,
		EntityID:       d.EntityID,
		OldData:        []byte(d.OldData),
		NewData:        []byte(d.NewData),
		CreatedAt:      d.CreatedAt,
	}
}
