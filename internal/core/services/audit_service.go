package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/imovelhub/crm_deals_app/internal/apperrors"
	"github.com/imovelhub/crm_deals_app/internal/core/domain"
	portsrepo "github.com/imovelhub/crm_deals_app/internal/core/ports/repositories"
	portssvc "github.com/imovelhub/crm_deals_app/internal/core/ports/services"
)

// auditLogService writes audit trail records. Callers are expected to treat
// its errors as best-effort: log and move on.
type auditLogService struct {
	auditRepo portsrepo.AuditRepositoryFacade
}

// NewAuditLogService creates a new audit logger service.
func NewAuditLogService(auditRepo portsrepo.AuditRepositoryFacade) portssvc.AuditLoggerSvc {
	return &auditLogService{auditRepo: auditRepo}
}

var _ portssvc.AuditLoggerSvc = (*auditLogService)(nil)

// Record persists one audit record describing a mutation.
func (s *auditLogService) Record(ctx context.Context, organizationID string, actorUserID string, action string, entityType string, entityID string, oldData any, newData any) error {
	record := domain.AuditRecord{
		AuditID:        uuid.NewString(),
		OrganizationID: organizationID,
		UserID:         actorUserID,
		Action:         action,
		EntityType:     entityType,
		EntityID:       entityID,
		CreatedAt:      time.Now().UTC(),
	}

	if oldData != nil {
		raw, err := json.Marshal(oldData)
		if err != nil {
			return fmt.Errorf("%w: failed to marshal audit old data: %v", apperrors.ErrInternal, err)
		}
		record.OldData = raw
	}
	if newData != nil {
		raw, err := json.Marshal(newData)
		if err != nil {
			return fmt.Errorf("%w: failed to marshal audit new data: %v", apperrors.ErrInternal, err)
		}
		record.NewData = raw
	}

	return s.auditRepo.SaveAuditRecord(ctx, record)
}
