package domain

import (
	"errors"
	"fmt"
)

var (
	ErrRecordNotFound    = errors.New("record not found")
	ErrPasswordMissMatch = errors.New("password mismatch")
	ErrDuplicateKey      = errors.New("duplicate key")
	ErrUnknown           = errors.New("unknown error")

	ErrNotEnoughBalance     = errors.New("not enough balance")
	ErrBelowMinWithdrawal   = errors.New("below minimum withdrawal")
	ErrBonusAlreadyClaimed  = errors.New("already claimed today")
	ErrAlreadyActivated     = errors.New("account already activated")
	ErrActivationInProgress = errors.New("activation already in progress")
	ErrNoActivationSession  = errors.New("no activation session")
	ErrOTPRejected          = errors.New("verification code rejected")
	ErrTransactionFinalized = errors.New("transaction already finalized")
)

type DuplicateUserError struct {
	Phone string
	Email string
}

func NewDuplicateUserError(phone, email string) error {
	return &DuplicateUserError{Phone: phone, Email: email}
}

func (e *DuplicateUserError) Error() string {
	return fmt.Sprintf("user with phone %s or email %s already exists", e.Phone, e.Email)
}
