package service

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

const base36Alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

const (
	transactionCodeLength = 10
	referralCodeLength    = 7
)

// randomBase36 генерирует случайную base36 строку длины n на crypto/rand.
func randomBase36(n int) (string, error) {
	buf := make([]byte, n)
	max := big.NewInt(int64(len(base36Alphabet)))
	for i := range buf {
		idx, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", fmt.Errorf("generating random code: %s", err.Error())
		}
		buf[i] = base36Alphabet[idx.Int64()]
	}
	return string(buf), nil
}

// newTransactionCode генерирует код записи журнала вида TXN-XXXXXXXXXX.
func newTransactionCode() (string, error) {
	code, err := randomBase36(transactionCodeLength)
	if err != nil {
		return "", err
	}
	return "TXN-" + code, nil
}

// newReferralCode генерирует реферальный код юзера.
func newReferralCode() (string, error) {
	return randomBase36(referralCodeLength)
}
