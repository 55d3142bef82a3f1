package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/imovelhub/crm_deals_app/internal/apperrors"
	"github.com/imovelhub/crm_deals_app/internal/core/domain"
	portsrepo "github.com/imovelhub/crm_deals_app/internal/core/ports/repositories"
	portssvc "github.com/imovelhub/crm_deals_app/internal/core/ports/services"
	"github.com/imovelhub/crm_deals_app/internal/dto"
	"github.com/imovelhub/crm_deals_app/internal/middleware"
	"github.com/shopspring/decimal"
)

// defaultCommissionPercentage applies when the caller does not specify one.
const defaultCommissionPercentage = 5

// dealClosureService runs the deal closure workflow.
//
// Every persistence call is one round trip against the store with its own
// outcome; there is no enclosing transaction. The failure policy per step:
//
//   - lead fetch, number allocation, contract insert: fatal, nothing durable
//     remains (an allocated number may be lost; numbers need not be contiguous)
//   - schedule insert, commission artifacts, lead update: surfaced to the
//     caller, but the contract and any earlier writes stay committed
//   - audit record and stakeholder notification: logged, never surfaced
type dealClosureService struct {
	leadRepo       portsrepo.LeadRepositoryFacade
	contractRepo   portsrepo.ContractRepositoryFacade
	entryRepo      portsrepo.FinancialEntryRepositoryFacade
	commissionRepo portsrepo.CommissionRepositoryFacade
	sequenceSvc    portssvc.SequenceAllocatorSvc
	orgSvc         portssvc.OrganizationAuthorizerSvc
	auditSvc       portssvc.AuditLoggerSvc
	notifier       portssvc.StakeholderNotifier
	persistTimeout time.Duration
}

// NewDealClosureService creates a new deal closure service.
func NewDealClosureService(
	leadRepo portsrepo.LeadRepositoryFacade,
	contractRepo portsrepo.ContractRepositoryFacade,
	entryRepo portsrepo.FinancialEntryRepositoryFacade,
	commissionRepo portsrepo.CommissionRepositoryFacade,
	sequenceSvc portssvc.SequenceAllocatorSvc,
	orgSvc portssvc.OrganizationAuthorizerSvc,
	auditSvc portssvc.AuditLoggerSvc,
	notifier portssvc.StakeholderNotifier,
	persistTimeout time.Duration,
) portssvc.DealClosureSvcFacade {
	return &dealClosureService{
		leadRepo:       leadRepo,
		contractRepo:   contractRepo,
		entryRepo:      entryRepo,
		commissionRepo: commissionRepo,
		sequenceSvc:    sequenceSvc,
		orgSvc:         orgSvc,
		auditSvc:       auditSvc,
		notifier:       notifier,
		persistTimeout: persistTimeout,
	}
}

var _ portssvc.DealClosureSvcFacade = (*dealClosureService)(nil)

// persistCtx bounds a single persistence call. A timed-out call is treated
// exactly like that step's documented failure mode.
func (s *dealClosureService) persistCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.persistTimeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, s.persistTimeout)
}

// CloseDeal implements portssvc.DealCloserSvc.
func (s *dealClosureService) CloseDeal(ctx context.Context, organizationID string, leadID string, req dto.CloseDealRequest, closerUserID string) (*dto.CloseDealResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.orgSvc.AuthorizeUserAction(ctx, closerUserID, organizationID, domain.RoleMember); err != nil {
		logger.Warn("Authorization failed for CloseDeal", slog.String("user_id", closerUserID), slog.String("organization_id", organizationID), slog.String("error", err.Error()))
		return nil, err
	}

	// --- Input validation (no writes yet) ---
	if req.Value == nil || !req.Value.IsPositive() {
		return nil, fmt.Errorf("%w: contract value must be positive", apperrors.ErrValidation)
	}
	value := *req.Value
	installmentCount := 1
	if req.InstallmentCount != nil {
		installmentCount = *req.InstallmentCount
		if installmentCount < 1 {
			return nil, fmt.Errorf("%w: installment count must be at least 1", apperrors.ErrValidation)
		}
	}
	downPayment := decimal.Zero
	if req.DownPayment != nil {
		downPayment = *req.DownPayment
		if downPayment.IsNegative() {
			return nil, fmt.Errorf("%w: down payment cannot be negative", apperrors.ErrValidation)
		}
		if downPayment.GreaterThan(value) {
			return nil, fmt.Errorf("%w: down payment cannot exceed the contract value", apperrors.ErrValidation)
		}
	}
	commissionPct := decimal.NewFromInt(defaultCommissionPercentage)
	if req.CommissionPercentage != nil {
		commissionPct = *req.CommissionPercentage
		if commissionPct.IsNegative() {
			return nil, fmt.Errorf("%w: commission percentage cannot be negative", apperrors.ErrValidation)
		}
		// Percentage columns hold four decimal places; finer inputs would be
		// silently rounded on insert and break the split conservation sums.
		if !commissionPct.Equal(commissionPct.Round(4)) {
			return nil, fmt.Errorf("%w: commission percentage supports at most four decimal places", apperrors.ErrValidation)
		}
	}

	// --- Step 1: lead snapshot (fatal if missing) ---
	pctx, cancel := s.persistCtx(ctx)
	lead, err := s.leadRepo.FindLeadByID(pctx, leadID)
	cancel()
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to fetch lead for closure", slog.String("lead_id", leadID), slog.String("error", err.Error()))
		}
		return nil, fmt.Errorf("failed to fetch lead %s: %w", leadID, err)
	}
	if lead.OrganizationID != organizationID {
		logger.Warn("Lead belongs to a different organization", slog.String("lead_id", leadID), slog.String("lead_organization", lead.OrganizationID))
		return nil, apperrors.ErrNotFound // Obscure existence
	}
	if lead.DealStatus == domain.DealWon {
		return nil, fmt.Errorf("%w: lead %s is already closed as won", apperrors.ErrConflict, leadID)
	}

	// --- Step 2: allocate contract number (fatal) ---
	contractNumber, err := s.sequenceSvc.AllocateNext(ctx, organizationID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	signedAt := now
	if req.SignedAt != nil {
		signedAt = *req.SignedAt
	}
	audit := domain.AuditFields{
		CreatedAt:     now,
		CreatedBy:     closerUserID,
		LastUpdatedAt: now,
		LastUpdatedBy: closerUserID,
	}

	// --- Step 3: insert the contract (fatal; an allocated number is not
	// returned to the pool on failure) ---
	contract := domain.Contract{
		ContractID:           uuid.NewString(),
		OrganizationID:       organizationID,
		ContractNumber:       contractNumber,
		ContractType:         req.ContractType,
		Status:               domain.ContractActive,
		LeadID:               lead.LeadID,
		PropertyID:           lead.PropertyID,
		ClientName:           lead.Name,
		Value:                value,
		DownPayment:          downPayment,
		InstallmentCount:     installmentCount,
		CommissionPercentage: commissionPct,
		CommissionValue:      value.Mul(commissionPct).Div(oneHundred).Round(2),
		PaymentTerms:         req.PaymentTerms,
		SignedAt:             signedAt,
		AuditFields:          audit,
	}
	pctx, cancel = s.persistCtx(ctx)
	err = s.contractRepo.SaveContract(pctx, contract)
	cancel()
	if err != nil {
		logger.Error("Failed to insert contract", slog.String("contract_number", contractNumber), slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to create contract: %w", err)
	}

	logger = logger.With(slog.String("contract_id", contract.ContractID), slog.String("contract_number", contractNumber))

	// --- Step 4: payment schedule (surfaced, not rolled back) ---
	schedule, err := GenerateSchedule(value, downPayment, installmentCount, contractNumber, now)
	if err != nil {
		// Inputs were validated above, so this is unreachable in practice.
		return nil, err
	}
	for i := range schedule {
		s.stampEntry(&schedule[i], &contract, audit)
	}
	pctx, cancel = s.persistCtx(ctx)
	err = s.entryRepo.SaveEntries(pctx, schedule)
	cancel()
	if err != nil {
		// The contract now exists with zero financial entries; operators
		// monitor for exactly this condition.
		logger.Error("Contract created but schedule insert failed; contract has no financial entries", slog.String("error", err.Error()))
		return nil, fmt.Errorf("contract %s created but payment schedule could not be persisted: %w", contractNumber, err)
	}

	// --- Step 5: resolve the broker set ---
	brokerIDs := req.BrokerIDs
	if len(brokerIDs) == 0 && lead.AssignedUserID != "" {
		brokerIDs = []string{lead.AssignedUserID}
	}

	// --- Step 6: commission artifacts (surfaced, steps 3-4 stay committed) ---
	if len(brokerIDs) > 0 {
		if err := s.persistCommission(ctx, &contract, brokerIDs, commissionPct, now, audit); err != nil {
			logger.Error("Failed to persist commission artifacts", slog.String("error", err.Error()))
			return nil, fmt.Errorf("contract %s created but commission could not be persisted: %w", contractNumber, err)
		}
	}

	// --- Step 7: mark the lead won (surfaced) ---
	pctx, cancel = s.persistCtx(ctx)
	err = s.leadRepo.MarkLeadWon(pctx, lead.LeadID, now, closerUserID)
	cancel()
	if err != nil {
		logger.Error("Failed to mark lead as won", slog.String("lead_id", lead.LeadID), slog.String("error", err.Error()))
		return nil, fmt.Errorf("contract %s created but lead update failed: %w", contractNumber, err)
	}

	// --- Step 8: audit record (best-effort) ---
	if err := s.auditSvc.Record(ctx, organizationID, closerUserID, "deal.closed", "contract", contract.ContractID, nil, contract); err != nil {
		logger.Error("Failed to write audit record for closure", slog.String("error", err.Error()))
	}

	// --- Step 9: stakeholder notification, asynchronous to our return
	// (best-effort) ---
	notifyInput := dto.DealWonNotification{
		LeadID:         lead.LeadID,
		LeadName:       lead.Name,
		OrganizationID: organizationID,
		PipelineID:     lead.PipelineID,
		AssignedUserID: lead.AssignedUserID,
		Source:         "deal_closure",
	}
	notifyCtx := context.WithoutCancel(ctx)
	go func() {
		nctx, ncancel := context.WithTimeout(notifyCtx, 30*time.Second)
		defer ncancel()
		if err := s.notifier.NotifyDealWon(nctx, notifyInput); err != nil {
			logger.Error("Stakeholder notification failed", slog.String("lead_id", notifyInput.LeadID), slog.String("error", err.Error()))
		}
	}()

	logger.Info("Deal closed successfully", slog.String("lead_id", lead.LeadID), slog.Int("installments", installmentCount))
	return &dto.CloseDealResponse{
		ContractID:          contract.ContractID,
		ContractNumber:      contract.ContractNumber,
		InstallmentsCreated: installmentCount,
		DownPaymentCreated:  downPayment.IsPositive(),
	}, nil
}

// stampEntry fills the identifier, scoping and audit fields of a draft entry.
func (s *dealClosureService) stampEntry(entry *domain.FinancialEntry, contract *domain.Contract, audit domain.AuditFields) {
	entry.EntryID = uuid.NewString()
	entry.OrganizationID = contract.OrganizationID
	entry.ContractID = contract.ContractID
	entry.LeadID = contract.LeadID
	entry.AuditFields = audit
}

// persistCommission splits the commission and persists broker links,
// commission forecasts and the aggregate payable, in that order.
func (s *dealClosureService) persistCommission(ctx context.Context, contract *domain.Contract, brokerIDs []string, commissionPct decimal.Decimal, now time.Time, audit domain.AuditFields) error {
	split, err := SplitCommission(contract.Value, commissionPct, brokerIDs, contract.ContractNumber, now)
	if err != nil {
		return err
	}

	for i := range split.Brokers {
		split.Brokers[i].ContractID = contract.ContractID
		split.Brokers[i].AuditFields = audit
	}
	for i := range split.Commissions {
		split.Commissions[i].CommissionID = uuid.NewString()
		split.Commissions[i].OrganizationID = contract.OrganizationID
		split.Commissions[i].ContractID = contract.ContractID
		split.Commissions[i].AuditFields = audit
	}

	pctx, cancel := s.persistCtx(ctx)
	err = s.contractRepo.SaveContractBrokers(pctx, split.Brokers)
	cancel()
	if err != nil {
		return fmt.Errorf("failed to save contract brokers: %w", err)
	}

	pctx, cancel = s.persistCtx(ctx)
	err = s.commissionRepo.SaveCommissions(pctx, split.Commissions)
	cancel()
	if err != nil {
		return fmt.Errorf("failed to save commissions: %w", err)
	}

	if split.Payable != nil {
		s.stampEntry(split.Payable, contract, audit)
		pctx, cancel = s.persistCtx(ctx)
		err = s.entryRepo.SaveEntries(pctx, []domain.FinancialEntry{*split.Payable})
		cancel()
		if err != nil {
			return fmt.Errorf("failed to save commission payable: %w", err)
		}
	}

	return nil
}

// GetContractWithEntries implements portssvc.ContractReaderSvc.
func (s *dealClosureService) GetContractWithEntries(ctx context.Context, organizationID string, contractID string, requestingUserID string) (*dto.ContractResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.orgSvc.AuthorizeUserAction(ctx, requestingUserID, organizationID, domain.RoleReadOnly); err != nil {
		logger.Warn("Authorization failed for GetContractWithEntries", slog.String("user_id", requestingUserID), slog.String("organization_id", organizationID), slog.String("error", err.Error()))
		return nil, err
	}

	contract, err := s.contractRepo.FindContractByID(ctx, contractID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to find contract by ID", slog.String("contract_id", contractID), slog.String("error", err.Error()))
		}
		return nil, fmt.Errorf("failed to find contract %s: %w", contractID, err)
	}
	if contract.OrganizationID != organizationID {
		logger.Warn("Contract belongs to a different organization", slog.String("contract_id", contractID))
		return nil, apperrors.ErrNotFound
	}

	entries, err := s.entryRepo.FindEntriesByContractID(ctx, contractID)
	if err != nil {
		logger.Error("Failed to fetch entries for contract", slog.String("contract_id", contractID), slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to retrieve entries for contract %s: %w", contractID, err)
	}

	resp := dto.ToContractResponse(contract, entries)
	return &resp, nil
}
