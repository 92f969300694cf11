package psswd

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Hasher bcrypt обертка. Нулевой cost означает bcrypt.DefaultCost.
type Hasher struct {
	cost int
}

func New() Hasher {
	return Hasher{cost: bcrypt.DefaultCost}
}

func (h Hasher) HashPassword(password string) (string, error) {
	cost := h.cost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", fmt.Errorf("hashing password: %s", err.Error())
	}
	return string(bytes), nil
}

func (h Hasher) ComparePassword(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}
