package services

import (
	"fmt"
	"time"

	"github.com/imovelhub/crm_deals_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

var oneHundred = decimal.NewFromInt(100)

// CommissionSplitResult holds the artifacts of splitting a contract's
// commission across its brokers.
type CommissionSplitResult struct {
	Brokers     []domain.ContractBroker
	Commissions []domain.Commission
	// Payable is the single aggregate commission obligation. Nil when the
	// aggregate amount is zero.
	Payable *domain.FinancialEntry
}

// SplitCommission allocates a contract's commission equally across the given
// brokers and produces one aggregate payable obligation.
//
// The split is equal-only: each broker receives commissionPercentage/k, with
// the last broker absorbing the percentage and monetary rounding remainders
// so that sum(percentages) == commissionPercentage and
// sum(calculated values) == baseValue * commissionPercentage / 100 exactly.
// Shares are quantized to the scale they are stored at — percentages to four
// decimal places, monetary values to cents — so both sums still hold after a
// round trip through the database columns.
//
// An empty broker set yields an empty result; broker fallback rules live in
// the closure workflow.
func SplitCommission(baseValue, commissionPercentage decimal.Decimal, brokerIDs []string, contractNumber string, today time.Time) (*CommissionSplitResult, error) {
	result := &CommissionSplitResult{}
	if len(brokerIDs) == 0 {
		return result, nil
	}

	count := decimal.NewFromInt(int64(len(brokerIDs)))
	totalCommission := baseValue.Mul(commissionPercentage).Div(oneHundred).Round(2)
	perBrokerPct := commissionPercentage.Div(count).Round(4)
	perBrokerValue := totalCommission.Div(count).Round(2)

	allocatedPct := decimal.Zero
	allocatedValue := decimal.Zero
	for i, brokerID := range brokerIDs {
		sharePct := perBrokerPct
		shareValue := perBrokerValue
		if i == len(brokerIDs)-1 {
			// Last broker absorbs the remainders of both conservation sums.
			sharePct = commissionPercentage.Sub(allocatedPct)
			shareValue = totalCommission.Sub(allocatedValue)
		}
		allocatedPct = allocatedPct.Add(sharePct)
		allocatedValue = allocatedValue.Add(shareValue)

		result.Brokers = append(result.Brokers, domain.ContractBroker{
			BrokerID:   brokerID,
			Percentage: sharePct,
		})
		result.Commissions = append(result.Commissions, domain.Commission{
			BrokerID:        brokerID,
			BaseValue:       baseValue,
			Percentage:      sharePct,
			CalculatedValue: shareValue,
			Status:          domain.CommissionForecast,
			ForecastDate:    today,
			Notes:           fmt.Sprintf("Comissão referente ao contrato %s", contractNumber),
		})
	}

	// By construction the per-broker sum equals the independently computed
	// aggregate; a mismatch is a defect, never something to truncate away.
	if !allocatedValue.Equal(totalCommission) {
		return nil, fmt.Errorf("commission split mismatch: shares sum to %s, aggregate is %s", allocatedValue, totalCommission)
	}

	if !totalCommission.IsZero() {
		result.Payable = &domain.FinancialEntry{
			Direction:   domain.Payable,
			Category:    domain.CategoryCommission,
			Description: fmt.Sprintf("Comissão - Contrato %s", contractNumber),
			Amount:      totalCommission,
			DueDate:     today,
			Status:      domain.EntryPending,
		}
	}

	return result, nil
}
