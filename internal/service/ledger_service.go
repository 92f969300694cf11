package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/azuraxkenya/megaon/internal/domain"
	"github.com/azuraxkenya/megaon/internal/repository/repoargs"
	"github.com/azuraxkenya/megaon/pkg/uow"
)

const (
	activationDescription    = "Megaon Activation Fee"
	dailyBonusDescription    = "Daily Activity Bonus"
	referralBonusDescription = "Referral Bonus: New Invite Joined"
)

// dailyBonusAmount фиксированная сумма ежедневного бонуса за активность.
var dailyBonusAmount = decimal.NewFromInt(20)

// LedgerService владеет журналом операций и снапшотом агрегатов юзера. Все мутации журнала
// проходят через recordTransaction: вставка записи и инкремент агрегатов выполняются в одной
// БД-транзакции, поэтому pending_balance всегда равен сумме всех записей журнала.
type LedgerService struct {
	uow       uow.UOW
	transRepo TransactionRepository
	userRepo  UserRepository
	confRepo  PlatformConfigRepository
}

func NewLedgerService(u uow.UOW) (*LedgerService, error) {
	transRepo, transRepoErr := uow.GetRepositoryAs[TransactionRepository](
		u, uow.RepositoryName(repoargs.TransactionRepoName))
	if transRepoErr != nil {
		return nil, transRepoErr
	}
	userRepo, userRepoErr := uow.GetRepositoryAs[UserRepository](u, uow.RepositoryName(repoargs.UserRepoName))
	if userRepoErr != nil {
		return nil, userRepoErr
	}
	confRepo, confRepoErr := uow.GetRepositoryAs[PlatformConfigRepository](
		u, uow.RepositoryName(repoargs.PlatformConfigRepoName))
	if confRepoErr != nil {
		return nil, confRepoErr
	}
	return &LedgerService{
		uow:       u,
		transRepo: transRepo,
		userRepo:  userRepo,
		confRepo:  confRepo,
	}, nil
}

type RecordTransactionArgs struct {
	UserID      int64
	Kind        domain.TransactionKind
	Amount      decimal.Decimal
	Description string
	// Status пустое значение означает статус по умолчанию: pending для выводов средств,
	// completed для всего остального.
	Status domain.TransactionStatus
}

// RecordTransaction добавляет запись в журнал юзера и обновляет агрегаты. Баланс здесь
// не проверяется: вызывающая сторона валидирует достаточность средств до вызова.
func (s *LedgerService) RecordTransaction(
	ctx context.Context,
	args RecordTransactionArgs,
) (*domain.Transaction, error) {
	var created *domain.Transaction
	txErr := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		repo, repoErr := uow.GetAs[TransactionRepository](tx, uow.RepositoryName(repoargs.TransactionRepoName))
		if repoErr != nil {
			return repoErr //nolint:wrapcheck
		}
		var recordErr error
		created, recordErr = recordTransaction(c, repo, args)
		return recordErr
	})
	if txErr != nil {
		return nil, fmt.Errorf("recording transaction: %w", txErr)
	}
	return created, nil
}

// recordTransaction вставляет запись журнала и применяет инкременты агрегатов через репозиторий,
// привязанный к текущей БД-транзакции.
func recordTransaction(
	ctx context.Context,
	repo TransactionRepository,
	args RecordTransactionArgs,
) (*domain.Transaction, error) {
	status := args.Status
	if status == "" {
		status = domain.StatusCompleted
		if args.Kind == domain.KindWithdrawal {
			status = domain.StatusPending
		}
	}

	code, codeErr := newTransactionCode()
	if codeErr != nil {
		return nil, codeErr
	}

	created, createErr := repo.Create(ctx, repoargs.TransactionCreate{
		Code:        code,
		UserID:      args.UserID,
		Kind:        args.Kind,
		Amount:      args.Amount,
		Status:      status,
		Description: args.Description,
	})
	if createErr != nil {
		return nil, createErr //nolint:wrapcheck
	}

	if _, applyErr := repo.ApplyEarnings(ctx, args.UserID, earningsDeltas(args.Kind, args.Amount)); applyErr != nil {
		return nil, applyErr //nolint:wrapcheck
	}
	return created, nil
}

// earningsDeltas вычисляет инкременты агрегатов для одной записи журнала:
//   - totalEarned растет только на положительные суммы;
//   - referralEarnings учитывает только referral записи;
//   - totalWithdrawn учитывает модуль суммы выводов, независимо от их статуса
//     (поведение унаследовано: Hold администратора агрегат не корректирует);
//   - pendingBalance меняется на сумму безусловно.
func earningsDeltas(kind domain.TransactionKind, amount decimal.Decimal) repoargs.EarningsDeltas {
	deltas := repoargs.EarningsDeltas{
		TotalEarned:      decimal.Zero,
		ReferralEarnings: decimal.Zero,
		TotalWithdrawn:   decimal.Zero,
		PendingBalance:   amount,
	}
	if amount.IsPositive() {
		deltas.TotalEarned = amount
	}
	if kind == domain.KindReferral {
		deltas.ReferralEarnings = amount
	}
	if kind == domain.KindWithdrawal {
		deltas.TotalWithdrawn = amount.Abs()
	}
	return deltas
}

// Statement снапшот агрегатов вместе с журналом, от новых записей к старым.
type Statement struct {
	Earnings     domain.Earnings
	Transactions []domain.Transaction
}

// Statement возвращает состояние счета юзера, инициализируя отсутствующие данные:
// нулевой снапшот для нового счета и стартовую запись об оплате активации для
// активированного юзера без таковой.
func (s *LedgerService) Statement(ctx context.Context, userID int64) (*Statement, error) {
	var statement Statement
	txErr := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		transRepo, transRepoErr := uow.GetAs[TransactionRepository](
			tx, uow.RepositoryName(repoargs.TransactionRepoName))
		if transRepoErr != nil {
			return transRepoErr //nolint:wrapcheck
		}
		userRepo, userRepoErr := uow.GetAs[UserRepository](tx, uow.RepositoryName(repoargs.UserRepoName))
		if userRepoErr != nil {
			return userRepoErr //nolint:wrapcheck
		}

		user, userErr := userRepo.FindByID(c, userID)
		if userErr != nil {
			return userErr //nolint:wrapcheck
		}

		if user.IsActivated {
			if seedErr := s.seedActivationFee(c, tx, transRepo, userID); seedErr != nil {
				return seedErr
			}
		}

		earnings, earningsErr := transRepo.GetEarnings(c, userID)
		if earningsErr != nil {
			if !errors.Is(earningsErr, domain.ErrRecordNotFound) {
				return earningsErr //nolint:wrapcheck
			}
			earnings, earningsErr = transRepo.InitEarnings(c, userID)
			if earningsErr != nil {
				return earningsErr //nolint:wrapcheck
			}
		}

		transactions, transErr := transRepo.GetByUserID(c, userID)
		if transErr != nil {
			return transErr //nolint:wrapcheck
		}

		statement = Statement{Earnings: *earnings, Transactions: transactions}
		return nil
	})
	if txErr != nil {
		return nil, fmt.Errorf("building statement: %w", txErr)
	}
	return &statement, nil
}

// seedActivationFee дописывает запись об оплате активации, если у активированного юзера
// ее еще нет в журнале.
func (s *LedgerService) seedActivationFee(
	ctx context.Context,
	tx uow.TX,
	transRepo TransactionRepository,
	userID int64,
) error {
	has, hasErr := transRepo.HasCompleted(ctx, userID, domain.KindActivation)
	if hasErr != nil {
		return hasErr //nolint:wrapcheck
	}
	if has {
		return nil
	}

	confRepo, confRepoErr := uow.GetAs[PlatformConfigRepository](
		tx, uow.RepositoryName(repoargs.PlatformConfigRepoName))
	if confRepoErr != nil {
		return confRepoErr //nolint:wrapcheck
	}
	conf, confErr := confRepo.Get(ctx)
	if confErr != nil {
		return confErr //nolint:wrapcheck
	}

	_, recordErr := recordTransaction(ctx, transRepo, RecordTransactionArgs{
		UserID:      userID,
		Kind:        domain.KindActivation,
		Amount:      conf.ActivationFee.Neg(),
		Description: activationDescription,
		Status:      domain.StatusCompleted,
	})
	return recordErr
}

// ClaimDailyBonus начисляет ежедневный бонус за активность. Гейт сверяет календарную дату
// последнего начисления со строкой today: во второй раз за день операция ничего не меняет
// и возвращает domain.ErrBonusAlreadyClaimed.
func (s *LedgerService) ClaimDailyBonus(
	ctx context.Context,
	userID int64,
	today string,
) (*domain.Transaction, error) {
	var created *domain.Transaction
	txErr := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		userRepo, userRepoErr := uow.GetAs[UserRepository](tx, uow.RepositoryName(repoargs.UserRepoName))
		if userRepoErr != nil {
			return userRepoErr //nolint:wrapcheck
		}
		transRepo, transRepoErr := uow.GetAs[TransactionRepository](
			tx, uow.RepositoryName(repoargs.TransactionRepoName))
		if transRepoErr != nil {
			return transRepoErr //nolint:wrapcheck
		}

		user, userErr := userRepo.FindByID(c, userID)
		if userErr != nil {
			return userErr //nolint:wrapcheck
		}
		if user.LastBonusDate == today {
			return domain.ErrBonusAlreadyClaimed
		}

		var recordErr error
		created, recordErr = recordTransaction(c, transRepo, RecordTransactionArgs{
			UserID:      userID,
			Kind:        domain.KindReferral,
			Amount:      dailyBonusAmount,
			Description: dailyBonusDescription,
			Status:      domain.StatusCompleted,
		})
		if recordErr != nil {
			return recordErr
		}

		return userRepo.SetLastBonusDate(c, userID, today) //nolint:wrapcheck
	})
	if txErr != nil {
		if errors.Is(txErr, domain.ErrBonusAlreadyClaimed) {
			return nil, domain.ErrBonusAlreadyClaimed
		}
		return nil, fmt.Errorf("claiming daily bonus: %w", txErr)
	}
	return created, nil
}

// Withdraw инициирует вывод средств. Частичных выводов нет: сумма меньше минимальной
// отклоняется с domain.ErrBelowMinWithdrawal, сумма больше баланса - с
// domain.ErrNotEnoughBalance, и ни одна из проверок ничего не мутирует.
// Принятая заявка попадает в журнал со статусом pending и отрицательной суммой.
func (s *LedgerService) Withdraw(
	ctx context.Context,
	userID int64,
	amount decimal.Decimal,
	method string,
) (*domain.Transaction, error) {
	var created *domain.Transaction
	txErr := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		confRepo, confRepoErr := uow.GetAs[PlatformConfigRepository](
			tx, uow.RepositoryName(repoargs.PlatformConfigRepoName))
		if confRepoErr != nil {
			return confRepoErr //nolint:wrapcheck
		}
		transRepo, transRepoErr := uow.GetAs[TransactionRepository](
			tx, uow.RepositoryName(repoargs.TransactionRepoName))
		if transRepoErr != nil {
			return transRepoErr //nolint:wrapcheck
		}

		conf, confErr := confRepo.Get(c)
		if confErr != nil {
			return confErr //nolint:wrapcheck
		}
		if amount.LessThan(conf.MinWithdrawal) {
			return domain.ErrBelowMinWithdrawal
		}

		earnings, earningsErr := transRepo.GetEarnings(c, userID)
		if earningsErr != nil {
			if !errors.Is(earningsErr, domain.ErrRecordNotFound) {
				return earningsErr //nolint:wrapcheck
			}
			earnings, earningsErr = transRepo.InitEarnings(c, userID)
			if earningsErr != nil {
				return earningsErr //nolint:wrapcheck
			}
		}
		if amount.GreaterThan(earnings.PendingBalance) {
			return domain.ErrNotEnoughBalance
		}

		var recordErr error
		created, recordErr = recordTransaction(c, transRepo, RecordTransactionArgs{
			UserID:      userID,
			Kind:        domain.KindWithdrawal,
			Amount:      amount.Neg(),
			Description: "Withdrawal to " + method,
		})
		return recordErr
	})
	if txErr != nil {
		if errors.Is(txErr, domain.ErrBelowMinWithdrawal) || errors.Is(txErr, domain.ErrNotEnoughBalance) {
			return nil, txErr
		}
		return nil, fmt.Errorf("requesting withdrawal: %w", txErr)
	}
	return created, nil
}

// Withdrawals возвращает заявки юзера на вывод средств, от новых к старым.
func (s *LedgerService) Withdrawals(ctx context.Context, userID int64) ([]domain.Transaction, error) {
	transactions, err := s.transRepo.GetByUserKind(ctx, userID, domain.KindWithdrawal)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return transactions, nil
}

// FinalizeActivation фиксирует успешную оплату активации: ровно одна activation запись
// на сумму -activationFee, однократный перевод флага is_activated и реферальный бонус
// пригласившему. Повторный вызов для активированного юзера возвращает
// domain.ErrAlreadyActivated и ничего не меняет.
func (s *LedgerService) FinalizeActivation(ctx context.Context, userID int64) error {
	txErr := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		userRepo, userRepoErr := uow.GetAs[UserRepository](tx, uow.RepositoryName(repoargs.UserRepoName))
		if userRepoErr != nil {
			return userRepoErr //nolint:wrapcheck
		}
		transRepo, transRepoErr := uow.GetAs[TransactionRepository](
			tx, uow.RepositoryName(repoargs.TransactionRepoName))
		if transRepoErr != nil {
			return transRepoErr //nolint:wrapcheck
		}
		confRepo, confRepoErr := uow.GetAs[PlatformConfigRepository](
			tx, uow.RepositoryName(repoargs.PlatformConfigRepoName))
		if confRepoErr != nil {
			return confRepoErr //nolint:wrapcheck
		}

		user, userErr := userRepo.FindByID(c, userID)
		if userErr != nil {
			return userErr //nolint:wrapcheck
		}
		if user.IsActivated {
			return domain.ErrAlreadyActivated
		}

		conf, confErr := confRepo.Get(c)
		if confErr != nil {
			return confErr //nolint:wrapcheck
		}

		if _, recordErr := recordTransaction(c, transRepo, RecordTransactionArgs{
			UserID:      userID,
			Kind:        domain.KindActivation,
			Amount:      conf.ActivationFee.Neg(),
			Description: activationDescription,
			Status:      domain.StatusCompleted,
		}); recordErr != nil {
			return recordErr
		}

		if markErr := userRepo.MarkActivated(c, userID); markErr != nil {
			return markErr //nolint:wrapcheck
		}

		return s.creditReferrer(c, userRepo, transRepo, user, conf.ReferralBonus)
	})
	if txErr != nil {
		if errors.Is(txErr, domain.ErrAlreadyActivated) {
			return domain.ErrAlreadyActivated
		}
		return fmt.Errorf("finalizing activation: %w", txErr)
	}
	return nil
}

// creditReferrer начисляет реферальный бонус пригласившему юзеру. Неизвестный или пустой
// реферальный код молча пропускается.
func (s *LedgerService) creditReferrer(
	ctx context.Context,
	userRepo UserRepository,
	transRepo TransactionRepository,
	activated *domain.User,
	bonus decimal.Decimal,
) error {
	if activated.ReferredBy == "" {
		return nil
	}
	referrer, referrerErr := userRepo.FindByReferralCode(ctx, activated.ReferredBy)
	if referrerErr != nil {
		if errors.Is(referrerErr, domain.ErrRecordNotFound) {
			return nil
		}
		return referrerErr //nolint:wrapcheck
	}
	if referrer.ID == activated.ID {
		return nil
	}

	_, recordErr := recordTransaction(ctx, transRepo, RecordTransactionArgs{
		UserID:      referrer.ID,
		Kind:        domain.KindReferral,
		Amount:      bonus,
		Description: referralBonusDescription,
		Status:      domain.StatusCompleted,
	})
	return recordErr
}

// User возвращает юзера по id. Используется платежной сессией активации.
func (s *LedgerService) User(ctx context.Context, id int64) (*domain.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return user, nil
}

// Config возвращает настройки платформы. Используется платежной сессией активации.
func (s *LedgerService) Config(ctx context.Context) (*domain.PlatformConfig, error) {
	conf, err := s.confRepo.Get(ctx)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return conf, nil
}
