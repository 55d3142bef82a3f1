package mapping

import (
	"github.com/imovelhub/crm_deals_app/internal/core/domain"
	"github.com/imovelhub/crm_deals_app/internal/models"
)

// ToModelAuditFields converts domain audit fields to model audit fields.
func ToModelAuditFields(d domain.AuditFields) models.AuditFields {
	return models.AuditFields{
		CreatedAt:     d.CreatedAt,
		CreatedBy:     d.CreatedBy,
		LastUpdatedAt: d.LastUpdatedAt,
		LastUpdatedBy: d.LastUpdatedBy,
	}
}

// ToDomainAuditFields converts model audit fields to domain audit fields.
func ToDomainAuditFields(m models.AuditFields) domain.AuditFields {
	return domain.AuditFields{
		CreatedAt:     m.CreatedAt,
		CreatedBy:     m.CreatedBy,
		LastUpdatedAt: m.LastUpdatedAt,
		LastUpdatedBy: m.LastUpdatedBy,
	}
}

// strPtr returns a pointer to s, or nil when s is empty. Used to map the
// domain's empty-string "absent" convention onto nullable columns.
func strPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// strVal dereferences p, returning "" for nil.
func strVal(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}
