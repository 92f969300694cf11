package pgrepo

import (
	"context"

	"github.com/azuraxkenya/megaon/internal/domain"
	"github.com/azuraxkenya/megaon/internal/repository/repoargs"
	"github.com/azuraxkenya/megaon/pkg/uow"
)

const configColumns = `updated_at, activation_fee, referral_bonus, min_withdrawal,
	bank_name, bank_account_number, bank_account_name`

// PlatformConfigRepository работает с единственной строкой настроек платформы.
// Строка создается миграцией, поэтому Get всегда находит запись.
type PlatformConfigRepository struct {
	db uow.DBTX
}

func NewPlatformConfigRepository(db uow.DBTX) *PlatformConfigRepository {
	return &PlatformConfigRepository{db: db}
}

func (p *PlatformConfigRepository) Get(ctx context.Context) (*domain.PlatformConfig, error) {
	row := p.db.QueryRow(ctx, `SELECT `+configColumns+` FROM platform_config WHERE id = 1`)
	conf, err := scanConfig(row)
	if err != nil {
		return nil, convertErr(err, "getting platform config")
	}
	return conf, nil
}

// Update перезаписывает настройки целиком. Последняя запись выигрывает, проверок
// конкурентных изменений нет.
func (p *PlatformConfigRepository) Update(
	ctx context.Context,
	args repoargs.ConfigUpdate,
) (*domain.PlatformConfig, error) {
	row := p.db.QueryRow(ctx, `
		UPDATE platform_config SET activation_fee = $1, referral_bonus = $2, min_withdrawal = $3,
			bank_name = $4, bank_account_number = $5, bank_account_name = $6, updated_at = now()
		WHERE id = 1
		RETURNING `+configColumns,
		args.ActivationFee, args.ReferralBonus, args.MinWithdrawal,
		args.BankName, args.BankAccountNumber, args.BankAccountName,
	)
	conf, err := scanConfig(row)
	if err != nil {
		return nil, convertErr(err, "updating platform config")
	}
	return conf, nil
}

func scanConfig(row rowScanner) (*domain.PlatformConfig, error) {
	var conf domain.PlatformConfig
	err := row.Scan(
		&conf.UpdatedAt, &conf.ActivationFee, &conf.ReferralBonus, &conf.MinWithdrawal,
		&conf.BankName, &conf.BankAccountNumber, &conf.BankAccountName,
	)
	if err != nil {
		return nil, err
	}
	return &conf, nil
}
