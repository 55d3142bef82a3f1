package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/imovelhub/crm_deals_app/internal/apperrors"
	"github.com/imovelhub/crm_deals_app/internal/core/domain"
	portssvc "github.com/imovelhub/crm_deals_app/internal/core/ports/services"
	"github.com/imovelhub/crm_deals_app/internal/core/services"
	"github.com/imovelhub/crm_deals_app/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mocks for the closure workflow's collaborators ---

// MockLeadRepository is a mock type for the LeadRepositoryFacade interface
type MockLeadRepository struct {
	mock.Mock
}

func (m *MockLeadRepository) FindLeadByID(ctx context.Context, leadID string) (*domain.Lead, error) {
	args := m.Called(ctx, leadID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Lead), args.Error(1)
}

func (m *MockLeadRepository) MarkLeadWon(ctx context.Context, leadID string, wonAt time.Time, updatedBy string) error {
	args := m.Called(ctx, leadID, wonAt, updatedBy)
	return args.Error(0)
}

// MockContractRepository is a mock type for the ContractRepositoryFacade interface
type MockContractRepository struct {
	mock.Mock
}

func (m *MockContractRepository) FindContractByID(ctx context.Context, contractID string) (*domain.Contract, error) {
	args := m.Called(ctx, contractID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Contract), args.Error(1)
}

func (m *MockContractRepository) SaveContract(ctx context.Context, contract domain.Contract) error {
	args := m.Called(ctx, contract)
	return args.Error(0)
}

func (m *MockContractRepository) SaveContractBrokers(ctx context.Context, brokers []domain.ContractBroker) error {
	args := m.Called(ctx, brokers)
	return args.Error(0)
}

// MockFinancialEntryRepository is a mock type for the FinancialEntryRepositoryFacade interface
type MockFinancialEntryRepository struct {
	mock.Mock
}

func (m *MockFinancialEntryRepository) FindEntriesByContractID(ctx context.Context, contractID string) ([]domain.FinancialEntry, error) {
	args := m.Called(ctx, contractID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.FinancialEntry), args.Error(1)
}

func (m *MockFinancialEntryRepository) SaveEntries(ctx context.Context, entries []domain.FinancialEntry) error {
	args := m.Called(ctx, entries)
	return args.Error(0)
}

// MockCommissionRepository is a mock type for the CommissionRepositoryFacade interface
type MockCommissionRepository struct {
	mock.Mock
}

func (m *MockCommissionRepository) SaveCommissions(ctx context.Context, commissions []domain.Commission) error {
	args := m.Called(ctx, commissions)
	return args.Error(0)
}

// MockSequenceAllocator is a mock type for the SequenceAllocatorSvc interface
type MockSequenceAllocator struct {
	mock.Mock
}

func (m *MockSequenceAllocator) AllocateNext(ctx context.Context, organizationID string) (string, error) {
	args := m.Called(ctx, organizationID)
	return args.String(0), args.Error(1)
}

// MockOrganizationAuthorizer is a mock type for the OrganizationAuthorizerSvc interface
type MockOrganizationAuthorizer struct {
	mock.Mock
}

func (m *MockOrganizationAuthorizer) AuthorizeUserAction(ctx context.Context, userID string, organizationID string, requiredRole domain.OrganizationRole) error {
	args := m.Called(ctx, userID, organizationID, requiredRole)
	return args.Error(0)
}

// MockAuditLogger is a mock type for the AuditLoggerSvc interface
type MockAuditLogger struct {
	mock.Mock
}

func (m *MockAuditLogger) Record(ctx context.Context, organizationID string, actorUserID string, action string, entityType string, entityID string, oldData any, newData any) error {
	args := m.Called(ctx, organizationID, actorUserID, action, entityType, entityID, oldData, newData)
	return args.Error(0)
}

// MockStakeholderNotifier is a mock type for the StakeholderNotifier interface
type MockStakeholderNotifier struct {
	mock.Mock
}

func (m *MockStakeholderNotifier) NotifyDealWon(ctx context.Context, input dto.DealWonNotification) error {
	args := m.Called(ctx, input)
	return args.Error(0)
}

// --- Test Suite Setup ---

type DealClosureServiceTestSuite struct {
	suite.Suite
	leadRepo       *MockLeadRepository
	contractRepo   *MockContractRepository
	entryRepo      *MockFinancialEntryRepository
	commissionRepo *MockCommissionRepository
	sequenceSvc    *MockSequenceAllocator
	orgSvc         *MockOrganizationAuthorizer
	auditSvc       *MockAuditLogger
	notifier       *MockStakeholderNotifier
	service        portssvc.DealClosureSvcFacade

	orgID    string
	leadID   string
	closer   string
	assignee string
	lead     *domain.Lead
}

func (s *DealClosureServiceTestSuite) SetupTest() {
	s.leadRepo = new(MockLeadRepository)
	s.contractRepo = new(MockContractRepository)
	s.entryRepo = new(MockFinancialEntryRepository)
	s.commissionRepo = new(MockCommissionRepository)
	s.sequenceSvc = new(MockSequenceAllocator)
	s.orgSvc = new(MockOrganizationAuthorizer)
	s.auditSvc = new(MockAuditLogger)
	s.notifier = new(MockStakeholderNotifier)
	s.service = services.NewDealClosureService(
		s.leadRepo,
		s.contractRepo,
		s.entryRepo,
		s.commissionRepo,
		s.sequenceSvc,
		s.orgSvc,
		s.auditSvc,
		s.notifier,
		2*time.Second,
	)

	s.orgID = uuid.NewString()
	s.leadID = uuid.NewString()
	s.closer = uuid.NewString()
	s.assignee = uuid.NewString()
	s.lead = &domain.Lead{
		LeadID:         s.leadID,
		OrganizationID: s.orgID,
		Name:           "Maria Souza",
		AssignedUserID: s.assignee,
		PipelineID:     uuid.NewString(),
		DealStatus:     domain.DealOpen,
	}
}

func (s *DealClosureServiceTestSuite) authorizeMember() {
	s.orgSvc.On("AuthorizeUserAction", mock.Anything, s.closer, s.orgID, domain.RoleMember).Return(nil).Once()
}

// --- Test Cases ---

func (s *DealClosureServiceTestSuite) TestCloseDeal_Success() {
	ctx := context.Background()
	s.authorizeMember()
	s.leadRepo.On("FindLeadByID", mock.Anything, s.leadID).Return(s.lead, nil).Once()
	s.sequenceSvc.On("AllocateNext", mock.Anything, s.orgID).Return("CTR-2026-00042", nil).Once()

	var savedContract domain.Contract
	s.contractRepo.On("SaveContract", mock.Anything, mock.AnythingOfType("domain.Contract")).
		Run(func(args mock.Arguments) {
			savedContract = args.Get(1).(domain.Contract)
		}).Return(nil).Once()

	var entryBatches [][]domain.FinancialEntry
	s.entryRepo.On("SaveEntries", mock.Anything, mock.AnythingOfType("[]domain.FinancialEntry")).
		Run(func(args mock.Arguments) {
			entryBatches = append(entryBatches, args.Get(1).([]domain.FinancialEntry))
		}).Return(nil).Twice()

	var savedBrokers []domain.ContractBroker
	s.contractRepo.On("SaveContractBrokers", mock.Anything, mock.AnythingOfType("[]domain.ContractBroker")).
		Run(func(args mock.Arguments) {
			savedBrokers = args.Get(1).([]domain.ContractBroker)
		}).Return(nil).Once()

	var savedCommissions []domain.Commission
	s.commissionRepo.On("SaveCommissions", mock.Anything, mock.AnythingOfType("[]domain.Commission")).
		Run(func(args mock.Arguments) {
			savedCommissions = args.Get(1).([]domain.Commission)
		}).Return(nil).Once()

	s.leadRepo.On("MarkLeadWon", mock.Anything, s.leadID, mock.AnythingOfType("time.Time"), s.closer).Return(nil).Once()
	s.auditSvc.On("Record", mock.Anything, s.orgID, s.closer, "deal.closed", "contract", mock.AnythingOfType("string"), nil, mock.Anything).Return(nil).Once()

	notified := make(chan dto.DealWonNotification, 1)
	s.notifier.On("NotifyDealWon", mock.Anything, mock.AnythingOfType("dto.DealWonNotification")).
		Run(func(args mock.Arguments) {
			notified <- args.Get(1).(dto.DealWonNotification)
		}).Return(nil).Once()

	broker1 := uuid.NewString()
	broker2 := uuid.NewString()
	downPayment := d("30000")
	count := 3
	resp, err := s.service.CloseDeal(ctx, s.orgID, s.leadID, dto.CloseDealRequest{
		Value:            decPtr(d("300000")),
		DownPayment:      &downPayment,
		InstallmentCount: &count,
		BrokerIDs:        []string{broker1, broker2},
		ContractType:     "SALE",
	}, s.closer)

	s.Require().NoError(err)
	s.Require().NotNil(resp)
	s.Equal("CTR-2026-00042", resp.ContractNumber)
	s.Equal(savedContract.ContractID, resp.ContractID)
	s.Equal(3, resp.InstallmentsCreated)
	s.True(resp.DownPaymentCreated)

	// Contract snapshot: derived commission value uses the 5% default.
	s.Equal(s.lead.Name, savedContract.ClientName)
	s.Equal(domain.ContractActive, savedContract.Status)
	s.True(savedContract.CommissionValue.Equal(d("15000")))
	s.Equal(s.closer, savedContract.CreatedBy)

	// First entry batch is the schedule: down payment + 3 installments of 90000.
	s.Require().Len(entryBatches, 2)
	schedule := entryBatches[0]
	s.Require().Len(schedule, 4)
	s.Equal(domain.CategoryDownPayment, schedule[0].Category)
	for _, e := range schedule {
		s.Equal(savedContract.ContractID, e.ContractID)
		s.Equal(s.orgID, e.OrganizationID)
	}

	// Second batch is the aggregate commission payable.
	payable := entryBatches[1]
	s.Require().Len(payable, 1)
	s.Equal(domain.Payable, payable[0].Direction)
	s.True(payable[0].Amount.Equal(d("15000")))

	// Equal split across the two requested brokers.
	s.Require().Len(savedBrokers, 2)
	s.Require().Len(savedCommissions, 2)
	s.True(savedCommissions[0].CalculatedValue.Equal(d("7500")))
	s.True(savedCommissions[1].CalculatedValue.Equal(d("7500")))

	select {
	case input := <-notified:
		s.Equal(s.leadID, input.LeadID)
		s.Equal(s.assignee, input.AssignedUserID)
		s.Equal("deal_closure", input.Source)
	case <-time.After(2 * time.Second):
		s.Fail("notifier was not invoked")
	}

	s.leadRepo.AssertExpectations(s.T())
	s.contractRepo.AssertExpectations(s.T())
	s.entryRepo.AssertExpectations(s.T())
	s.commissionRepo.AssertExpectations(s.T())
}

func (s *DealClosureServiceTestSuite) TestCloseDeal_BrokerFallbackToAssignee() {
	ctx := context.Background()
	s.authorizeMember()
	s.leadRepo.On("FindLeadByID", mock.Anything, s.leadID).Return(s.lead, nil).Once()
	s.sequenceSvc.On("AllocateNext", mock.Anything, s.orgID).Return("CTR-2026-00043", nil).Once()
	s.contractRepo.On("SaveContract", mock.Anything, mock.Anything).Return(nil).Once()
	s.entryRepo.On("SaveEntries", mock.Anything, mock.Anything).Return(nil)

	var savedBrokers []domain.ContractBroker
	s.contractRepo.On("SaveContractBrokers", mock.Anything, mock.AnythingOfType("[]domain.ContractBroker")).
		Run(func(args mock.Arguments) {
			savedBrokers = args.Get(1).([]domain.ContractBroker)
		}).Return(nil).Once()
	s.commissionRepo.On("SaveCommissions", mock.Anything, mock.Anything).Return(nil).Once()
	s.leadRepo.On("MarkLeadWon", mock.Anything, s.leadID, mock.Anything, s.closer).Return(nil).Once()
	s.auditSvc.On("Record", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil).Once()
	s.notifier.On("NotifyDealWon", mock.Anything, mock.Anything).Return(nil).Maybe()

	_, err := s.service.CloseDeal(ctx, s.orgID, s.leadID, dto.CloseDealRequest{Value: decPtr(d("100000"))}, s.closer)

	s.Require().NoError(err)
	s.Require().Len(savedBrokers, 1)
	s.Equal(s.assignee, savedBrokers[0].BrokerID)
}

func (s *DealClosureServiceTestSuite) TestCloseDeal_NoBrokersSkipsCommission() {
	ctx := context.Background()
	s.lead.AssignedUserID = ""
	s.authorizeMember()
	s.leadRepo.On("FindLeadByID", mock.Anything, s.leadID).Return(s.lead, nil).Once()
	s.sequenceSvc.On("AllocateNext", mock.Anything, s.orgID).Return("CTR-2026-00044", nil).Once()
	s.contractRepo.On("SaveContract", mock.Anything, mock.Anything).Return(nil).Once()
	s.entryRepo.On("SaveEntries", mock.Anything, mock.Anything).Return(nil).Once()
	s.leadRepo.On("MarkLeadWon", mock.Anything, s.leadID, mock.Anything, s.closer).Return(nil).Once()
	s.auditSvc.On("Record", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil).Once()
	s.notifier.On("NotifyDealWon", mock.Anything, mock.Anything).Return(nil).Maybe()

	_, err := s.service.CloseDeal(ctx, s.orgID, s.leadID, dto.CloseDealRequest{Value: decPtr(d("100000"))}, s.closer)

	s.Require().NoError(err)
	s.contractRepo.AssertNotCalled(s.T(), "SaveContractBrokers", mock.Anything, mock.Anything)
	s.commissionRepo.AssertNotCalled(s.T(), "SaveCommissions", mock.Anything, mock.Anything)
}

func (s *DealClosureServiceTestSuite) TestCloseDeal_AuthorizationFailure() {
	s.orgSvc.On("AuthorizeUserAction", mock.Anything, s.closer, s.orgID, domain.RoleMember).Return(apperrors.ErrForbidden).Once()

	_, err := s.service.CloseDeal(context.Background(), s.orgID, s.leadID, dto.CloseDealRequest{Value: decPtr(d("100000"))}, s.closer)

	s.ErrorIs(err, apperrors.ErrForbidden)
	s.leadRepo.AssertNotCalled(s.T(), "FindLeadByID", mock.Anything, mock.Anything)
}

func (s *DealClosureServiceTestSuite) TestCloseDeal_ValidationRejectsBadInput() {
	cases := []dto.CloseDealRequest{
		{},
		{Value: decPtr(d("0"))},
		{Value: decPtr(d("-5"))},
		{Value: decPtr(d("100")), InstallmentCount: intPtrT(0)},
		{Value: decPtr(d("100")), DownPayment: decPtr(d("-1"))},
		{Value: decPtr(d("100")), DownPayment: decPtr(d("100.01"))},
		{Value: decPtr(d("100")), CommissionPercentage: decPtr(d("-2"))},
		{Value: decPtr(d("100")), CommissionPercentage: decPtr(d("2.00001"))},
	}

	for i, req := range cases {
		s.orgSvc.On("AuthorizeUserAction", mock.Anything, s.closer, s.orgID, domain.RoleMember).Return(nil).Once()
		_, err := s.service.CloseDeal(context.Background(), s.orgID, s.leadID, req, s.closer)
		s.ErrorIs(err, apperrors.ErrValidation, "case %d", i)
	}
	s.sequenceSvc.AssertNotCalled(s.T(), "AllocateNext", mock.Anything, mock.Anything)
}

func (s *DealClosureServiceTestSuite) TestCloseDeal_LeadNotFound() {
	s.authorizeMember()
	s.leadRepo.On("FindLeadByID", mock.Anything, s.leadID).Return(nil, apperrors.ErrNotFound).Once()

	_, err := s.service.CloseDeal(context.Background(), s.orgID, s.leadID, dto.CloseDealRequest{Value: decPtr(d("100"))}, s.closer)

	s.ErrorIs(err, apperrors.ErrNotFound)
	s.sequenceSvc.AssertNotCalled(s.T(), "AllocateNext", mock.Anything, mock.Anything)
}

func (s *DealClosureServiceTestSuite) TestCloseDeal_LeadInOtherOrganization() {
	s.authorizeMember()
	s.lead.OrganizationID = uuid.NewString()
	s.leadRepo.On("FindLeadByID", mock.Anything, s.leadID).Return(s.lead, nil).Once()

	_, err := s.service.CloseDeal(context.Background(), s.orgID, s.leadID, dto.CloseDealRequest{Value: decPtr(d("100"))}, s.closer)

	s.ErrorIs(err, apperrors.ErrNotFound)
}

func (s *DealClosureServiceTestSuite) TestCloseDeal_AlreadyWonLead() {
	s.authorizeMember()
	s.lead.DealStatus = domain.DealWon
	s.leadRepo.On("FindLeadByID", mock.Anything, s.leadID).Return(s.lead, nil).Once()

	_, err := s.service.CloseDeal(context.Background(), s.orgID, s.leadID, dto.CloseDealRequest{Value: decPtr(d("100"))}, s.closer)

	s.ErrorIs(err, apperrors.ErrConflict)
	s.sequenceSvc.AssertNotCalled(s.T(), "AllocateNext", mock.Anything, mock.Anything)
}

func (s *DealClosureServiceTestSuite) TestCloseDeal_SequenceFailureIsFatal() {
	s.authorizeMember()
	s.leadRepo.On("FindLeadByID", mock.Anything, s.leadID).Return(s.lead, nil).Once()
	s.sequenceSvc.On("AllocateNext", mock.Anything, s.orgID).Return("", assert.AnError).Once()

	_, err := s.service.CloseDeal(context.Background(), s.orgID, s.leadID, dto.CloseDealRequest{Value: decPtr(d("100"))}, s.closer)

	s.ErrorIs(err, assert.AnError)
	s.contractRepo.AssertNotCalled(s.T(), "SaveContract", mock.Anything, mock.Anything)
}

func (s *DealClosureServiceTestSuite) TestCloseDeal_ScheduleFailureSurfacedAfterContract() {
	s.authorizeMember()
	s.leadRepo.On("FindLeadByID", mock.Anything, s.leadID).Return(s.lead, nil).Once()
	s.sequenceSvc.On("AllocateNext", mock.Anything, s.orgID).Return("CTR-2026-00045", nil).Once()
	s.contractRepo.On("SaveContract", mock.Anything, mock.Anything).Return(nil).Once()
	s.entryRepo.On("SaveEntries", mock.Anything, mock.Anything).Return(assert.AnError).Once()

	_, err := s.service.CloseDeal(context.Background(), s.orgID, s.leadID, dto.CloseDealRequest{Value: decPtr(d("100"))}, s.closer)

	s.ErrorIs(err, assert.AnError)
	// The contract stays committed; nothing downstream runs.
	s.leadRepo.AssertNotCalled(s.T(), "MarkLeadWon", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	s.auditSvc.AssertNotCalled(s.T(), "Record", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (s *DealClosureServiceTestSuite) TestCloseDeal_MarkLeadWonFailureSurfaced() {
	s.lead.AssignedUserID = ""
	s.authorizeMember()
	s.leadRepo.On("FindLeadByID", mock.Anything, s.leadID).Return(s.lead, nil).Once()
	s.sequenceSvc.On("AllocateNext", mock.Anything, s.orgID).Return("CTR-2026-00046", nil).Once()
	s.contractRepo.On("SaveContract", mock.Anything, mock.Anything).Return(nil).Once()
	s.entryRepo.On("SaveEntries", mock.Anything, mock.Anything).Return(nil).Once()
	s.leadRepo.On("MarkLeadWon", mock.Anything, s.leadID, mock.Anything, s.closer).Return(assert.AnError).Once()

	_, err := s.service.CloseDeal(context.Background(), s.orgID, s.leadID, dto.CloseDealRequest{Value: decPtr(d("100"))}, s.closer)

	s.ErrorIs(err, assert.AnError)
	s.auditSvc.AssertNotCalled(s.T(), "Record", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (s *DealClosureServiceTestSuite) TestCloseDeal_AuditFailureDoesNotFailClosure() {
	s.lead.AssignedUserID = ""
	s.authorizeMember()
	s.leadRepo.On("FindLeadByID", mock.Anything, s.leadID).Return(s.lead, nil).Once()
	s.sequenceSvc.On("AllocateNext", mock.Anything, s.orgID).Return("CTR-2026-00047", nil).Once()
	s.contractRepo.On("SaveContract", mock.Anything, mock.Anything).Return(nil).Once()
	s.entryRepo.On("SaveEntries", mock.Anything, mock.Anything).Return(nil).Once()
	s.leadRepo.On("MarkLeadWon", mock.Anything, s.leadID, mock.Anything, s.closer).Return(nil).Once()
	s.auditSvc.On("Record", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(assert.AnError).Once()
	s.notifier.On("NotifyDealWon", mock.Anything, mock.Anything).Return(nil).Maybe()

	resp, err := s.service.CloseDeal(context.Background(), s.orgID, s.leadID, dto.CloseDealRequest{Value: decPtr(d("100"))}, s.closer)

	s.Require().NoError(err)
	s.NotNil(resp)
}

func (s *DealClosureServiceTestSuite) TestCloseDeal_NotifierFailureDoesNotFailClosure() {
	s.authorizeMember()
	s.leadRepo.On("FindLeadByID", mock.Anything, s.leadID).Return(s.lead, nil).Once()
	s.sequenceSvc.On("AllocateNext", mock.Anything, s.orgID).Return("CTR-2026-00048", nil).Once()
	s.contractRepo.On("SaveContract", mock.Anything, mock.Anything).Return(nil).Once()
	s.entryRepo.On("SaveEntries", mock.Anything, mock.Anything).Return(nil)
	s.contractRepo.On("SaveContractBrokers", mock.Anything, mock.Anything).Return(nil).Once()
	s.commissionRepo.On("SaveCommissions", mock.Anything, mock.Anything).Return(nil).Once()
	s.leadRepo.On("MarkLeadWon", mock.Anything, s.leadID, mock.Anything, s.closer).Return(nil).Once()
	s.auditSvc.On("Record", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil).Once()

	notified := make(chan struct{}, 1)
	s.notifier.On("NotifyDealWon", mock.Anything, mock.Anything).
		Run(func(mock.Arguments) { notified <- struct{}{} }).Return(assert.AnError).Once()

	resp, err := s.service.CloseDeal(context.Background(), s.orgID, s.leadID, dto.CloseDealRequest{Value: decPtr(d("100"))}, s.closer)

	s.Require().NoError(err)
	s.NotNil(resp)

	select {
	case <-notified:
	case <-time.After(2 * time.Second):
		s.Fail("notifier was not invoked")
	}
}

func (s *DealClosureServiceTestSuite) TestGetContractWithEntries_Success() {
	contractID := uuid.NewString()
	contract := &domain.Contract{
		ContractID:     contractID,
		OrganizationID: s.orgID,
		ContractNumber: "CTR-2026-00042",
		Status:         domain.ContractActive,
		Value:          d("300000"),
	}
	entries := []domain.FinancialEntry{
		{EntryID: uuid.NewString(), Category: domain.CategoryDownPayment, Amount: d("30000")},
		{EntryID: uuid.NewString(), Category: domain.CategoryInstallment, Amount: d("90000")},
	}

	s.orgSvc.On("AuthorizeUserAction", mock.Anything, s.closer, s.orgID, domain.RoleReadOnly).Return(nil).Once()
	s.contractRepo.On("FindContractByID", mock.Anything, contractID).Return(contract, nil).Once()
	s.entryRepo.On("FindEntriesByContractID", mock.Anything, contractID).Return(entries, nil).Once()

	resp, err := s.service.GetContractWithEntries(context.Background(), s.orgID, contractID, s.closer)

	s.Require().NoError(err)
	s.Equal("CTR-2026-00042", resp.ContractNumber)
	s.Len(resp.Entries, 2)
}

func (s *DealClosureServiceTestSuite) TestGetContractWithEntries_OtherOrganizationHidden() {
	contractID := uuid.NewString()
	contract := &domain.Contract{ContractID: contractID, OrganizationID: uuid.NewString()}

	s.orgSvc.On("AuthorizeUserAction", mock.Anything, s.closer, s.orgID, domain.RoleReadOnly).Return(nil).Once()
	s.contractRepo.On("FindContractByID", mock.Anything, contractID).Return(contract, nil).Once()

	_, err := s.service.GetContractWithEntries(context.Background(), s.orgID, contractID, s.closer)

	s.ErrorIs(err, apperrors.ErrNotFound)
	s.entryRepo.AssertNotCalled(s.T(), "FindEntriesByContractID", mock.Anything, mock.Anything)
}

func TestDealClosureServiceTestSuite(t *testing.T) {
	suite.Run(t, new(DealClosureServiceTestSuite))
}

func intPtrT(i int) *int {
	return &i
}

func decPtr(v decimal.Decimal) *decimal.Decimal {
	return &v
}
