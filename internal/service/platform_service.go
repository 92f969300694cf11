package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/azuraxkenya/megaon/internal/domain"
	"github.com/azuraxkenya/megaon/internal/repository/repoargs"
	"github.com/azuraxkenya/megaon/pkg/uow"
)

// PlatformService настройки платформы и админский обзор: юзеры, журнал, ревью выводов.
type PlatformService struct {
	uow       uow.UOW
	confRepo  PlatformConfigRepository
	userRepo  UserRepository
	transRepo TransactionRepository
}

func NewPlatformService(u uow.UOW) (*PlatformService, error) {
	confRepo, confRepoErr := uow.GetRepositoryAs[PlatformConfigRepository](
		u, uow.RepositoryName(repoargs.PlatformConfigRepoName))
	if confRepoErr != nil {
		return nil, confRepoErr
	}
	userRepo, userRepoErr := uow.GetRepositoryAs[UserRepository](u, uow.RepositoryName(repoargs.UserRepoName))
	if userRepoErr != nil {
		return nil, userRepoErr
	}
	transRepo, transRepoErr := uow.GetRepositoryAs[TransactionRepository](
		u, uow.RepositoryName(repoargs.TransactionRepoName))
	if transRepoErr != nil {
		return nil, transRepoErr
	}
	return &PlatformService{
		uow:       u,
		confRepo:  confRepo,
		userRepo:  userRepo,
		transRepo: transRepo,
	}, nil
}

func (p *PlatformService) GetConfig(ctx context.Context) (*domain.PlatformConfig, error) {
	conf, err := p.confRepo.Get(ctx)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return conf, nil
}

// UpdateConfig перезаписывает настройки платформы. Побеждает последняя запись: проверок
// конкурентных изменений нет, платформа рассчитана на одного администратора.
func (p *PlatformService) UpdateConfig(
	ctx context.Context,
	args repoargs.ConfigUpdate,
) (*domain.PlatformConfig, error) {
	conf, err := p.confRepo.Update(ctx, args)
	if err != nil {
		return nil, fmt.Errorf("updating platform config: %w", err)
	}
	return conf, nil
}

func (p *PlatformService) ListUsers(ctx context.Context) ([]domain.User, error) {
	users, err := p.userRepo.GetAll(ctx)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return users, nil
}

func (p *PlatformService) ListTransactions(ctx context.Context, limit uint) ([]domain.AdminTransaction, error) {
	transactions, err := p.transRepo.GetAllWithUsers(ctx, limit)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return transactions, nil
}

// ReviewWithdrawal завершает pending заявку на вывод: approve переводит статус в completed,
// отказ - в failed. Меняется только статус записи, агрегаты не трогаются: totalWithdrawn
// был учтен в момент создания заявки. Уже рассмотренная заявка возвращает
// domain.ErrTransactionFinalized.
func (p *PlatformService) ReviewWithdrawal(
	ctx context.Context,
	id int64,
	approve bool,
) (*domain.Transaction, error) {
	status := domain.StatusCompleted
	if !approve {
		status = domain.StatusFailed
	}
	transaction, err := p.transRepo.UpdateWithdrawalStatus(ctx, id, status)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return nil, domain.ErrTransactionFinalized
		}
		return nil, fmt.Errorf("reviewing withdrawal %d: %w", id, err)
	}
	return transaction, nil
}
