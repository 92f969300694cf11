package uow

import "errors"

var (
	ErrRepositoryNotRegistered     = errors.New("uow: repository is not registered")
	ErrRepositoryAlreadyRegistered = errors.New("uow: repository is already registered")
	ErrInvalidRepositoryType       = errors.New("uow: unexpected repository type")
)
