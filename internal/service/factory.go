package service

import (
	"fmt"

	"github.com/azuraxkenya/megaon/internal/service/psswd"
	"github.com/azuraxkenya/megaon/pkg/uow"
)

type AppServices struct {
	UserService     *UserService
	LedgerService   *LedgerService
	PlatformService *PlatformService
}

func Factory(unitOfWork uow.UOW, verifier OTPVerifier, jwtSecret []byte) (*AppServices, error) {
	userService, userServiceErr := NewUserService(unitOfWork, verifier, psswd.New(), jwtSecret)
	if userServiceErr != nil {
		return nil, fmt.Errorf("service factory: %s", userServiceErr.Error())
	}

	ledgerService, ledgerServiceErr := NewLedgerService(unitOfWork)
	if ledgerServiceErr != nil {
		return nil, fmt.Errorf("service factory: %s", ledgerServiceErr.Error())
	}

	platformService, platformServiceErr := NewPlatformService(unitOfWork)
	if platformServiceErr != nil {
		return nil, fmt.Errorf("service factory: %s", platformServiceErr.Error())
	}

	return &AppServices{
		UserService:     userService,
		LedgerService:   ledgerService,
		PlatformService: platformService,
	}, nil
}
