package pgrepo

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/azuraxkenya/megaon/internal/domain"
	"github.com/azuraxkenya/megaon/internal/repository/repoargs"
	"github.com/azuraxkenya/megaon/pkg/uow"
)

const userColumns = `id, created_at, updated_at, name, email, phone, encrypted_password,
	is_activated, is_admin, referral_code, referred_by, bank_linked,
	bank_name, bank_account_number, bank_account_name, last_bonus_date`

type UserRepository struct {
	db uow.DBTX
}

func NewUserRepository(db uow.DBTX) *UserRepository {
	return &UserRepository{db: db}
}

// CreateUser создает юзера в базе данных. В случае конфликта телефона/почты/реферального кода
// возвращает ошибку domain.ErrDuplicateKey, во всех других случаях - domain.ErrUnknown.
func (u *UserRepository) CreateUser(ctx context.Context, user repoargs.CreateUser) (*domain.User, error) {
	row := u.db.QueryRow(ctx, `
		INSERT INTO users (name, email, phone, encrypted_password, referral_code, referred_by, is_admin)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING `+userColumns,
		user.Name, user.Email, user.Phone, user.Password, user.ReferralCode, user.ReferredBy, user.IsAdmin,
	)
	dbUser, err := scanUser(row)
	if err != nil {
		return nil, convertErr(err, "creating user")
	}
	return dbUser, nil
}

// FindByLogin ищет юзера по телефону или почте. Возвращает domain.ErrRecordNotFound если
// запись не найдена.
func (u *UserRepository) FindByLogin(ctx context.Context, login string) (*domain.User, error) {
	row := u.db.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE phone = $1 OR email = $1`, login)
	dbUser, err := scanUser(row)
	if err != nil {
		return nil, convertErr(err, "finding user by login %s", login)
	}
	return dbUser, nil
}

func (u *UserRepository) FindByID(ctx context.Context, id int64) (*domain.User, error) {
	row := u.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
	dbUser, err := scanUser(row)
	if err != nil {
		return nil, convertErr(err, "finding user by id %d", id)
	}
	return dbUser, nil
}

func (u *UserRepository) FindByReferralCode(ctx context.Context, code string) (*domain.User, error) {
	row := u.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE referral_code = $1`, code)
	dbUser, err := scanUser(row)
	if err != nil {
		return nil, convertErr(err, "finding user by referral code %s", code)
	}
	return dbUser, nil
}

// ExistsByContact проверяет наличие юзера с указанным телефоном или почтой.
func (u *UserRepository) ExistsByContact(ctx context.Context, phone, email string) (bool, error) {
	var exists bool
	err := u.db.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM users WHERE phone = $1 OR email = $2)`, phone, email).
		Scan(&exists)
	if err != nil {
		return false, convertErr(err, "checking user contact existence")
	}
	return exists, nil
}

// MarkActivated однократно переводит флаг активации false -> true. Повторная активация
// не находит строк и возвращает domain.ErrRecordNotFound.
func (u *UserRepository) MarkActivated(ctx context.Context, id int64) error {
	tag, err := u.db.Exec(ctx,
		`UPDATE users SET is_activated = TRUE, updated_at = now() WHERE id = $1 AND is_activated = FALSE`, id)
	if err != nil {
		return convertErr(err, "marking user %d activated", id)
	}
	if tag.RowsAffected() == 0 {
		// юзер либо не существует, либо уже активирован.
		return convertErr(pgx.ErrNoRows, "marking user %d activated", id)
	}
	return nil
}

func (u *UserRepository) SetLastBonusDate(ctx context.Context, id int64, date string) error {
	_, err := u.db.Exec(ctx,
		`UPDATE users SET last_bonus_date = $2, updated_at = now() WHERE id = $1`, id, date)
	return convertErr(err, "setting last bonus date for user %d", id)
}

func (u *UserRepository) UpdateBankDetails(ctx context.Context, args repoargs.UpdateBankDetails) error {
	_, err := u.db.Exec(ctx, `
		UPDATE users SET bank_linked = TRUE, bank_name = $2, bank_account_number = $3,
			bank_account_name = $4, updated_at = now()
		WHERE id = $1`,
		args.UserID, args.BankName, args.AccountNumber, args.AccountName)
	return convertErr(err, "updating bank details for user %d", args.UserID)
}

// GetAll возвращает всех юзеров отсортированных по дате регистрации по убыванию.
func (u *UserRepository) GetAll(ctx context.Context) ([]domain.User, error) {
	rows, err := u.db.Query(ctx, `SELECT `+userColumns+` FROM users ORDER BY created_at DESC`)
	if err != nil {
		return nil, convertErr(err, "getting all users")
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		user, scanErr := scanUser(rows)
		if scanErr != nil {
			return nil, convertErr(scanErr, "scanning user")
		}
		users = append(users, *user)
	}
	return users, convertErr(rows.Err(), "getting all users")
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (*domain.User, error) {
	var user domain.User
	err := row.Scan(
		&user.ID, &user.CreatedAt, &user.UpdatedAt, &user.Name, &user.Email, &user.Phone,
		&user.EncryptedPassword, &user.IsActivated, &user.IsAdmin, &user.ReferralCode,
		&user.ReferredBy, &user.BankLinked, &user.BankName, &user.BankAccountNumber,
		&user.BankAccountName, &user.LastBonusDate,
	)
	if err != nil {
		return nil, err
	}
	return &user, nil
}
