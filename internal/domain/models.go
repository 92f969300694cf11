package domain

import (
	"github.com/shopspring/decimal"

	"time"
)

type User struct {
	ID                int64
	CreatedAt         time.Time
	UpdatedAt         time.Time
	Name              string
	Email             string
	Phone             string
	EncryptedPassword string
	IsActivated       bool
	IsAdmin           bool
	ReferralCode      string
	ReferredBy        string
	BankLinked        bool
	BankName          string
	BankAccountNumber string
	BankAccountName   string
	LastBonusDate     string
}

// Transaction запись журнала операций юзера. После создания запись неизменяема, за одним
// исключением: статус вывода средств переводится администратором из pending в completed/failed.
type Transaction struct {
	ID          int64
	CreatedAt   time.Time
	UpdatedAt   time.Time
	Code        string
	UserID      int64
	Kind        TransactionKind
	Amount      decimal.Decimal
	Status      TransactionStatus
	Description string
}

// AdminTransaction запись журнала вместе с именем владельца, для админского обзора.
type AdminTransaction struct {
	Transaction
	UserName string
}

// Earnings агрегаты заработка юзера. Обновляются инкрементально в одной БД-транзакции
// с записью журнала, поэтому PendingBalance всегда равен сумме всех Amount журнала.
type Earnings struct {
	UserID           int64
	UpdatedAt        time.Time
	TotalEarned      decimal.Decimal
	ReferralEarnings decimal.Decimal
	TotalWithdrawn   decimal.Decimal
	PendingBalance   decimal.Decimal
}

// PlatformConfig глобальные настройки платформы. Единственная запись, меняется только админом.
type PlatformConfig struct {
	UpdatedAt         time.Time
	ActivationFee     decimal.Decimal
	ReferralBonus     decimal.Decimal
	MinWithdrawal     decimal.Decimal
	BankName          string
	BankAccountNumber string
	BankAccountName   string
}
