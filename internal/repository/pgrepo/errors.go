package pgrepo

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/azuraxkenya/megaon/internal/domain"
)

// код postgres для нарушения уникального ограничения
const uniqueViolationCode = "23505"

// convertErr нормализует ошибку хранилища к бизнес-ошибкам domain: pgx.ErrNoRows
// превращается в domain.ErrRecordNotFound, нарушение уникальности - в
// domain.ErrDuplicateKey, все остальное - в domain.ErrUnknown с исходным текстом.
func convertErr(err error, format string, formatArgs ...any) error {
	if err == nil {
		return nil
	}

	msg := fmt.Sprintf(format, formatArgs...)

	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("[repository/%s] %w", msg, domain.ErrRecordNotFound)
	}

	errType := domain.ErrUnknown
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
		errType = domain.ErrDuplicateKey
	}

	return fmt.Errorf("[repository/%s] %w: %s", msg, errType, err.Error())
}
