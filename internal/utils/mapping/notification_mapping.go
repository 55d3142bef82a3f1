package mapping

import (
	"github.com/imovelhub/crm_deals_app/internal/core/domain"
	"github.com/imovelhub/crm_deals_app/internal/models"
)

// ToModelNotification converts a domain Notification to its model.
func ToModelNotification(d domain.Notification) models.Notification {
	return models.Notification{
		NotificationID: d.NotificationID,
		OrganizationID: d.OrganizationID,
		UserID:         d.UserID,
		Title:          d.Title,
		Message:        d.Message,
		LeadID:         strPtr(d.LeadID),
		ReadAt:         d.ReadAt,
		AuditFields:    ToModelAuditFields(d.AuditFields),
	}
}
