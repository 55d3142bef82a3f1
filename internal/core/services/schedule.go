package services

import (
	"fmt"
	"time"

	"github.com/imovelhub/crm_deals_app/internal/apperrors"
	"github.com/imovelhub/crm_deals_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// GenerateSchedule produces the financial entry drafts for a contract's
// payment plan: an optional down-payment entry plus installmentCount
// installment entries whose amounts sum exactly to totalValue - downPayment.
//
// All installments except the last are (total-down)/count rounded to two
// decimals; the last installment absorbs the full rounding remainder, so
// downPayment + sum(installments) == totalValue to the cent.
//
// The returned drafts carry amounts, categories, descriptions and due dates;
// the caller fills in identifiers, organization scoping and audit fields.
func GenerateSchedule(totalValue, downPayment decimal.Decimal, installmentCount int, contractNumber string, today time.Time) ([]domain.FinancialEntry, error) {
	if installmentCount < 1 {
		return nil, fmt.Errorf("%w: installment count must be at least 1, got %d", apperrors.ErrValidation, installmentCount)
	}
	if downPayment.IsNegative() {
		return nil, fmt.Errorf("%w: down payment cannot be negative", apperrors.ErrValidation)
	}
	if downPayment.GreaterThan(totalValue) {
		return nil, fmt.Errorf("%w: down payment %s exceeds total value %s", apperrors.ErrValidation, downPayment, totalValue)
	}

	entries := make([]domain.FinancialEntry, 0, installmentCount+1)

	if downPayment.IsPositive() {
		entries = append(entries, domain.FinancialEntry{
			Direction:         domain.Receivable,
			Category:          domain.CategoryDownPayment,
			Description:       fmt.Sprintf("Entrada - Contrato %s", contractNumber),
			Amount:            downPayment,
			DueDate:           today,
			Status:            domain.EntryPending,
			InstallmentNumber: intPtr(0),
			InstallmentTotal:  intPtr(installmentCount),
		})
	}

	remaining := totalValue.Sub(downPayment)
	perInstallment := remaining.Div(decimal.NewFromInt(int64(installmentCount))).Round(2)
	// The last installment absorbs the rounding remainder, including negative drift.
	lastInstallment := remaining.Sub(perInstallment.Mul(decimal.NewFromInt(int64(installmentCount - 1))))

	for i := 1; i <= installmentCount; i++ {
		amount := perInstallment
		if i == installmentCount {
			amount = lastInstallment
		}
		entries = append(entries, domain.FinancialEntry{
			Direction:         domain.Receivable,
			Category:          domain.CategoryInstallment,
			Description:       fmt.Sprintf("Parcela %d/%d - Contrato %s", i, installmentCount, contractNumber),
			Amount:            amount,
			DueDate:           today.AddDate(0, i, 0),
			Status:            domain.EntryPending,
			InstallmentNumber: intPtr(i),
			InstallmentTotal:  intPtr(installmentCount),
		})
	}

	return entries, nil
}

func intPtr(i int) *int {
	return &i
}
