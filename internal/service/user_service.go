package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/azuraxkenya/megaon/internal/domain"
	"github.com/azuraxkenya/megaon/internal/repository/repoargs"
	"github.com/azuraxkenya/megaon/internal/service/tokens"
	"github.com/azuraxkenya/megaon/pkg/uow"
)

const JWTTokenExpire = 1 * time.Hour

type UserService struct {
	uow            uow.UOW
	userRepo       UserRepository
	verifier       OTPVerifier
	hasher         PasswordHasher
	jwtTokenSecret []byte
}

func NewUserService(
	u uow.UOW,
	verifier OTPVerifier,
	hasher PasswordHasher,
	jwtTokenSecret []byte,
) (*UserService, error) {
	userRepo, userRepoErr := uow.GetRepositoryAs[UserRepository](u, uow.RepositoryName(repoargs.UserRepoName))
	if userRepoErr != nil {
		return nil, userRepoErr
	}
	return &UserService{
		uow:            u,
		userRepo:       userRepo,
		verifier:       verifier,
		hasher:         hasher,
		jwtTokenSecret: jwtTokenSecret,
	}, nil
}

type StartRegistrationArgs struct {
	Name    string
	Email   string
	Phone   string
	Channel domain.OTPChannel
}

// StartRegistration проверяет уникальность контактов и просит внешний сервис отправить
// одноразовый код на выбранный канал. Юзер на этом шаге еще не создается.
func (s *UserService) StartRegistration(ctx context.Context, args StartRegistrationArgs) error {
	exists, existsErr := s.userRepo.ExistsByContact(ctx, args.Phone, args.Email)
	if existsErr != nil {
		return fmt.Errorf("starting registration: %w", existsErr)
	}
	if exists {
		return domain.NewDuplicateUserError(args.Phone, args.Email)
	}

	destination := args.Phone
	if args.Channel == domain.ChannelEmail {
		destination = args.Email
	}
	if sendErr := s.verifier.SendCode(ctx, destination, args.Channel); sendErr != nil {
		return fmt.Errorf("starting registration: %w", sendErr)
	}
	return nil
}

type ConfirmRegistrationArgs struct {
	Name       string
	Email      string
	Phone      string
	Password   string
	Channel    domain.OTPChannel
	Code       string
	ReferredBy string
}

// ConfirmRegistration сверяет одноразовый код и создает юзера. Возвращает 3 значения:
// созданный юзер, jwt токен и ошибку. Не подтвержденный код возвращает domain.ErrOTPRejected.
func (s *UserService) ConfirmRegistration(
	ctx context.Context,
	args ConfirmRegistrationArgs,
) (*domain.User, string, error) {
	destination := args.Phone
	if args.Channel == domain.ChannelEmail {
		destination = args.Email
	}
	status, checkErr := s.verifier.CheckCode(ctx, destination, args.Code)
	if checkErr != nil {
		return nil, "", fmt.Errorf("confirming registration: %w", checkErr)
	}
	if status != domain.OTPApproved {
		return nil, "", domain.ErrOTPRejected
	}

	password, hashErr := s.hasher.HashPassword(args.Password)
	if hashErr != nil {
		return nil, "", fmt.Errorf("confirming registration: %s", hashErr.Error())
	}
	referralCode, codeErr := newReferralCode()
	if codeErr != nil {
		return nil, "", fmt.Errorf("confirming registration: %s", codeErr.Error())
	}

	var user *domain.User
	var token string
	txErr := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		userRepo, userRepoErr := uow.GetAs[UserRepository](tx, uow.RepositoryName(repoargs.UserRepoName))
		if userRepoErr != nil {
			return userRepoErr //nolint:wrapcheck
		}

		var userErr error
		user, userErr = userRepo.CreateUser(c, repoargs.CreateUser{
			Name:         args.Name,
			Email:        args.Email,
			Phone:        args.Phone,
			Password:     password,
			ReferralCode: referralCode,
			ReferredBy:   args.ReferredBy,
		})
		if userErr != nil {
			return userErr //nolint:wrapcheck
		}

		var tokenErr error
		token, tokenErr = tokens.GenerateUserJWT(user.ID, user.IsAdmin, JWTTokenExpire, s.jwtTokenSecret)
		return tokenErr //nolint:wrapcheck
	})
	if txErr != nil {
		if errors.Is(txErr, domain.ErrDuplicateKey) {
			return nil, "", domain.NewDuplicateUserError(args.Phone, args.Email)
		}
		return nil, "", fmt.Errorf("confirming registration: %w", txErr)
	}
	return user, token, nil
}

type LoginUserArgs struct {
	Login    string
	Password string
}

// Login аутентифицирует по паре логин (телефон или почта) / пароль. Возвращает 3 значения:
// юзер, jwt токен и ошибку.
func (s *UserService) Login(ctx context.Context, args LoginUserArgs) (*domain.User, string, error) {
	user, findErr := s.userRepo.FindByLogin(ctx, args.Login)
	if findErr != nil {
		return nil, "", findErr //nolint:wrapcheck
	}

	if !s.hasher.ComparePassword(args.Password, user.EncryptedPassword) {
		return nil, "", domain.ErrPasswordMissMatch
	}

	token, tokenErr := tokens.GenerateUserJWT(user.ID, user.IsAdmin, JWTTokenExpire, s.jwtTokenSecret)
	if tokenErr != nil {
		return nil, "", fmt.Errorf("logging in: %s", tokenErr.Error())
	}
	return user, token, nil
}

type LinkBankArgs struct {
	UserID        int64
	BankName      string
	AccountNumber string
	AccountName   string
}

// LinkBank привязывает банковские реквизиты для вывода средств.
func (s *UserService) LinkBank(ctx context.Context, args LinkBankArgs) error {
	err := s.userRepo.UpdateBankDetails(ctx, repoargs.UpdateBankDetails{
		UserID:        args.UserID,
		BankName:      args.BankName,
		AccountNumber: args.AccountNumber,
		AccountName:   args.AccountName,
	})
	if err != nil {
		return fmt.Errorf("linking bank: %w", err)
	}
	return nil
}
