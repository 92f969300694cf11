package pgrepo

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/azuraxkenya/megaon/internal/domain"
	"github.com/azuraxkenya/megaon/internal/repository/repoargs"
	"github.com/azuraxkenya/megaon/pkg/uow"
)

const transactionColumns = `id, created_at, updated_at, code, user_id, kind, amount, status, description`

type TransactionRepository struct {
	db uow.DBTX
}

func NewTransactionRepository(db uow.DBTX) *TransactionRepository {
	return &TransactionRepository{db: db}
}

// Create добавляет запись в журнал. Журнал append-only: обновлений и удалений записей
// на этом уровне нет, кроме UpdateWithdrawalStatus.
func (t *TransactionRepository) Create(
	ctx context.Context,
	transaction repoargs.TransactionCreate,
) (*domain.Transaction, error) {
	row := t.db.QueryRow(ctx, `
		INSERT INTO transactions (code, user_id, kind, amount, status, description)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING `+transactionColumns,
		transaction.Code, transaction.UserID, transaction.Kind, transaction.Amount,
		transaction.Status, transaction.Description,
	)
	dbTransaction, err := scanTransaction(row)
	if err != nil {
		return nil, convertErr(err, "creating transaction")
	}
	return dbTransaction, nil
}

// GetByUserID возвращает журнал юзера, отсортированный от новых записей к старым.
func (t *TransactionRepository) GetByUserID(ctx context.Context, userID int64) ([]domain.Transaction, error) {
	rows, err := t.db.Query(ctx,
		`SELECT `+transactionColumns+` FROM transactions WHERE user_id = $1 ORDER BY created_at DESC, id DESC`,
		userID)
	if err != nil {
		return nil, convertErr(err, "getting transactions for user %d", userID)
	}
	return collectTransactions(rows)
}

// GetByUserKind возвращает записи журнала юзера указанного вида, от новых к старым.
func (t *TransactionRepository) GetByUserKind(
	ctx context.Context,
	userID int64,
	kind domain.TransactionKind,
) ([]domain.Transaction, error) {
	rows, err := t.db.Query(ctx, `
		SELECT `+transactionColumns+` FROM transactions
		WHERE user_id = $1 AND kind = $2 ORDER BY created_at DESC, id DESC`,
		userID, kind)
	if err != nil {
		return nil, convertErr(err, "getting %s transactions for user %d", kind, userID)
	}
	return collectTransactions(rows)
}

// HasCompleted проверяет наличие завершенной записи указанного вида у юзера.
func (t *TransactionRepository) HasCompleted(
	ctx context.Context,
	userID int64,
	kind domain.TransactionKind,
) (bool, error) {
	var exists bool
	err := t.db.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM transactions WHERE user_id = $1 AND kind = $2 AND status = 'completed'
		)`, userID, kind).Scan(&exists)
	if err != nil {
		return false, convertErr(err, "checking %s transaction for user %d", kind, userID)
	}
	return exists, nil
}

// UpdateWithdrawalStatus переводит pending вывод средств в новый статус. Сумма, вид и код
// записи не меняются. Если запись не pending или не вывод средств, вернется
// domain.ErrRecordNotFound.
func (t *TransactionRepository) UpdateWithdrawalStatus(
	ctx context.Context,
	id int64,
	status domain.TransactionStatus,
) (*domain.Transaction, error) {
	row := t.db.QueryRow(ctx, `
		UPDATE transactions SET status = $2, updated_at = now()
		WHERE id = $1 AND kind = 'withdrawal' AND status = 'pending'
		RETURNING `+transactionColumns,
		id, status)
	dbTransaction, err := scanTransaction(row)
	if err != nil {
		return nil, convertErr(err, "updating withdrawal %d status", id)
	}
	return dbTransaction, nil
}

// GetAllWithUsers возвращает записи журнала всех юзеров вместе с их именами,
// от новых к старым. Используется админским обзором.
func (t *TransactionRepository) GetAllWithUsers(ctx context.Context, limit uint) ([]domain.AdminTransaction, error) {
	limitArg, limitErr := safeConvertUintToInt32(limit)
	if limitErr != nil {
		return nil, convertErr(limitErr, "getting all transactions")
	}
	rows, err := t.db.Query(ctx, `
		SELECT t.id, t.created_at, t.updated_at, t.code, t.user_id, t.kind, t.amount, t.status,
			t.description, u.name
		FROM transactions t JOIN users u ON u.id = t.user_id
		ORDER BY t.created_at DESC, t.id DESC
		LIMIT $1`, limitArg)
	if err != nil {
		return nil, convertErr(err, "getting all transactions")
	}
	defer rows.Close()

	var transactions []domain.AdminTransaction
	for rows.Next() {
		var item domain.AdminTransaction
		scanErr := rows.Scan(
			&item.ID, &item.CreatedAt, &item.UpdatedAt, &item.Code, &item.UserID, &item.Kind,
			&item.Amount, &item.Status, &item.Description, &item.UserName,
		)
		if scanErr != nil {
			return nil, convertErr(scanErr, "scanning transaction")
		}
		transactions = append(transactions, item)
	}
	return transactions, convertErr(rows.Err(), "getting all transactions")
}

// GetEarnings возвращает снапшот агрегатов юзера или domain.ErrRecordNotFound.
func (t *TransactionRepository) GetEarnings(ctx context.Context, userID int64) (*domain.Earnings, error) {
	var e domain.Earnings
	err := t.db.QueryRow(ctx, `
		SELECT user_id, updated_at, total_earned, referral_earnings, total_withdrawn, pending_balance
		FROM user_earnings WHERE user_id = $1`, userID).
		Scan(&e.UserID, &e.UpdatedAt, &e.TotalEarned, &e.ReferralEarnings, &e.TotalWithdrawn, &e.PendingBalance)
	if err != nil {
		return nil, convertErr(err, "getting earnings for user %d", userID)
	}
	return &e, nil
}

// InitEarnings инициализирует нулевой снапшот агрегатов, если его еще нет.
func (t *TransactionRepository) InitEarnings(ctx context.Context, userID int64) (*domain.Earnings, error) {
	_, err := t.db.Exec(ctx,
		`INSERT INTO user_earnings (user_id) VALUES ($1) ON CONFLICT (user_id) DO NOTHING`, userID)
	if err != nil {
		return nil, convertErr(err, "initializing earnings for user %d", userID)
	}
	return t.GetEarnings(ctx, userID)
}

// ApplyEarnings применяет инкременты к снапшоту агрегатов юзера, создавая строку при
// необходимости. Вызывается в одной БД-транзакции со вставкой записи журнала.
func (t *TransactionRepository) ApplyEarnings(
	ctx context.Context,
	userID int64,
	deltas repoargs.EarningsDeltas,
) (*domain.Earnings, error) {
	var e domain.Earnings
	err := t.db.QueryRow(ctx, `
		INSERT INTO user_earnings (user_id, total_earned, referral_earnings, total_withdrawn, pending_balance)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (user_id) DO UPDATE SET
			total_earned = user_earnings.total_earned + EXCLUDED.total_earned,
			referral_earnings = user_earnings.referral_earnings + EXCLUDED.referral_earnings,
			total_withdrawn = user_earnings.total_withdrawn + EXCLUDED.total_withdrawn,
			pending_balance = user_earnings.pending_balance + EXCLUDED.pending_balance,
			updated_at = now()
		RETURNING user_id, updated_at, total_earned, referral_earnings, total_withdrawn, pending_balance`,
		userID, deltas.TotalEarned, deltas.ReferralEarnings, deltas.TotalWithdrawn, deltas.PendingBalance).
		Scan(&e.UserID, &e.UpdatedAt, &e.TotalEarned, &e.ReferralEarnings, &e.TotalWithdrawn, &e.PendingBalance)
	if err != nil {
		return nil, convertErr(err, "applying earnings for user %d", userID)
	}
	return &e, nil
}

func scanTransaction(row rowScanner) (*domain.Transaction, error) {
	var transaction domain.Transaction
	err := row.Scan(
		&transaction.ID, &transaction.CreatedAt, &transaction.UpdatedAt, &transaction.Code,
		&transaction.UserID, &transaction.Kind, &transaction.Amount, &transaction.Status,
		&transaction.Description,
	)
	if err != nil {
		return nil, err
	}
	return &transaction, nil
}

func collectTransactions(rows pgx.Rows) ([]domain.Transaction, error) {
	defer rows.Close()

	var transactions []domain.Transaction
	for rows.Next() {
		transaction, scanErr := scanTransaction(rows)
		if scanErr != nil {
			return nil, convertErr(scanErr, "scanning transaction")
		}
		transactions = append(transactions, *transaction)
	}
	return transactions, convertErr(rows.Err(), "collecting transactions")
}
