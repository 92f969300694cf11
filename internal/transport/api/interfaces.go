package api

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/azuraxkenya/megaon/internal/domain"
	"github.com/azuraxkenya/megaon/internal/repository/repoargs"
	"github.com/azuraxkenya/megaon/internal/service"
	"github.com/azuraxkenya/megaon/internal/transport/activation"
)

// UserServicer интерфейс исключительно для моков.
type UserServicer interface {
	StartRegistration(ctx context.Context, args service.StartRegistrationArgs) error
	ConfirmRegistration(ctx context.Context, args service.ConfirmRegistrationArgs) (*domain.User, string, error)
	Login(ctx context.Context, args service.LoginUserArgs) (*domain.User, string, error)
	LinkBank(ctx context.Context, args service.LinkBankArgs) error
}

type LedgerServicer interface {
	Statement(ctx context.Context, userID int64) (*service.Statement, error)
	ClaimDailyBonus(ctx context.Context, userID int64, today string) (*domain.Transaction, error)
	Withdraw(ctx context.Context, userID int64, amount decimal.Decimal, method string) (*domain.Transaction, error)
	Withdrawals(ctx context.Context, userID int64) ([]domain.Transaction, error)
}

type ActivationManager interface {
	Start(ctx context.Context, userID int64) (activation.Snapshot, error)
	Confirm(userID int64) (activation.Snapshot, error)
	ReportMissing(userID int64) (activation.Snapshot, error)
	Retry(ctx context.Context, userID int64) (activation.Snapshot, error)
	Cancel(userID int64)
	Status(userID int64) (activation.Snapshot, error)
}

type PlatformServicer interface {
	GetConfig(ctx context.Context) (*domain.PlatformConfig, error)
	UpdateConfig(ctx context.Context, args repoargs.ConfigUpdate) (*domain.PlatformConfig, error)
	ListUsers(ctx context.Context) ([]domain.User, error)
	ListTransactions(ctx context.Context, limit uint) ([]domain.AdminTransaction, error)
	ReviewWithdrawal(ctx context.Context, id int64, approve bool) (*domain.Transaction, error)
}
