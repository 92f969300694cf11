package repoargs

import (
	"github.com/azuraxkenya/megaon/internal/domain"
	"github.com/shopspring/decimal"
)

type TransactionCreate struct {
	Code        string
	UserID      int64
	Kind        domain.TransactionKind
	Amount      decimal.Decimal
	Status      domain.TransactionStatus
	Description string
}

// EarningsDeltas инкременты агрегатов, применяемые вместе со вставкой записи журнала.
type EarningsDeltas struct {
	TotalEarned      decimal.Decimal
	ReferralEarnings decimal.Decimal
	TotalWithdrawn   decimal.Decimal
	PendingBalance   decimal.Decimal
}

type ConfigUpdate struct {
	ActivationFee     decimal.Decimal
	ReferralBonus     decimal.Decimal
	MinWithdrawal     decimal.Decimal
	BankName          string
	BankAccountNumber string
	BankAccountName   string
}
