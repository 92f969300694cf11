package service

import (
	"context"

	"github.com/azuraxkenya/megaon/internal/domain"
	"github.com/azuraxkenya/megaon/internal/repository/repoargs"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

type PasswordHasher interface {
	HashPassword(password string) (string, error)
	ComparePassword(password string, hashedPassword string) bool
}

// OTPVerifier контракт внешнего сервиса одноразовых кодов.
type OTPVerifier interface {
	SendCode(ctx context.Context, destination string, channel domain.OTPChannel) error
	CheckCode(ctx context.Context, destination string, code string) (domain.OTPStatus, error)
}

type UserRepository interface {
	CreateUser(ctx context.Context, user repoargs.CreateUser) (*domain.User, error)
	FindByLogin(ctx context.Context, login string) (*domain.User, error)
	FindByID(ctx context.Context, id int64) (*domain.User, error)
	FindByReferralCode(ctx context.Context, code string) (*domain.User, error)
	ExistsByContact(ctx context.Context, phone, email string) (bool, error)
	MarkActivated(ctx context.Context, id int64) error
	SetLastBonusDate(ctx context.Context, id int64, date string) error
	UpdateBankDetails(ctx context.Context, args repoargs.UpdateBankDetails) error
	GetAll(ctx context.Context) ([]domain.User, error)
}

type TransactionRepository interface {
	Create(ctx context.Context, transaction repoargs.TransactionCreate) (*domain.Transaction, error)
	GetByUserID(ctx context.Context, userID int64) ([]domain.Transaction, error)
	GetByUserKind(ctx context.Context, userID int64, kind domain.TransactionKind) ([]domain.Transaction, error)
	HasCompleted(ctx context.Context, userID int64, kind domain.TransactionKind) (bool, error)
	UpdateWithdrawalStatus(
		ctx context.Context,
		id int64,
		status domain.TransactionStatus,
	) (*domain.Transaction, error)
	GetAllWithUsers(ctx context.Context, limit uint) ([]domain.AdminTransaction, error)
	GetEarnings(ctx context.Context, userID int64) (*domain.Earnings, error)
	InitEarnings(ctx context.Context, userID int64) (*domain.Earnings, error)
	ApplyEarnings(ctx context.Context, userID int64, deltas repoargs.EarningsDeltas) (*domain.Earnings, error)
}

type PlatformConfigRepository interface {
	Get(ctx context.Context) (*domain.PlatformConfig, error)
	Update(ctx context.Context, args repoargs.ConfigUpdate) (*domain.PlatformConfig, error)
}
