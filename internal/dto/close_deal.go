package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CloseDealRequest carries the caller-supplied parameters of a deal closure.
// Pointer fields keep "absent" and "zero" distinguishable; for Value that is
// what makes binding's required check reject a missing field at all, for the
// optional fields it is what lets the service apply the documented defaults.
type CloseDealRequest struct {
	Value                *decimal.Decimal `json:"value" binding:"required"`
	DownPayment          *decimal.Decimal `json:"downPayment"`
	InstallmentCount     *int             `json:"installmentCount"`
	CommissionPercentage *decimal.Decimal `json:"commissionPercentage"`
	BrokerIDs            []string         `json:"brokerIDs" binding:"omitempty,dive,uuid"`
	ContractType         string           `json:"contractType"`
	PaymentTerms         string           `json:"paymentTerms"`
	SignedAt             *time.Time       `json:"signedAt"`
}

// CloseDealResponse is returned to the caller on a fully successful closure.
type CloseDealResponse struct {
	ContractID          string `json:"contractID"`
	ContractNumber      string `json:"contractNumber"`
	InstallmentsCreated int    `json:"installmentsCreated"`
	DownPaymentCreated  bool   `json:"downPaymentCreated"`
}
