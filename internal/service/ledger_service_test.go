package service

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/azuraxkenya/megaon/internal/domain"
	"github.com/azuraxkenya/megaon/internal/repository/repoargs"
	"github.com/azuraxkenya/megaon/internal/service/mocks"
	"github.com/azuraxkenya/megaon/pkg/uow"
	uowmocks "github.com/azuraxkenya/megaon/pkg/uow/mocks"
)

type LedgerServiceTestSuite struct {
	suite.Suite
	mockCtrl      *gomock.Controller
	mockUOW       *uowmocks.MockUOW
	mockTX        *uowmocks.MockTX
	mockTransRepo *mocks.MockTransactionRepository
	mockUserRepo  *mocks.MockUserRepository
	mockConfRepo  *mocks.MockPlatformConfigRepository
	service       *LedgerService
}

func TestLedgerServiceSuite(t *testing.T) {
	suite.Run(t, new(LedgerServiceTestSuite))
}

func (s *LedgerServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockUOW = uowmocks.NewMockUOW(s.mockCtrl)
	s.mockTX = uowmocks.NewMockTX(s.mockCtrl)
	s.mockTransRepo = mocks.NewMockTransactionRepository(s.mockCtrl)
	s.mockUserRepo = mocks.NewMockUserRepository(s.mockCtrl)
	s.mockConfRepo = mocks.NewMockPlatformConfigRepository(s.mockCtrl)

	s.mockUOW.EXPECT().
		GetRepository(uow.RepositoryName(repoargs.TransactionRepoName)).
		Return(s.mockTransRepo, nil).AnyTimes()
	s.mockUOW.EXPECT().
		GetRepository(uow.RepositoryName(repoargs.UserRepoName)).
		Return(s.mockUserRepo, nil).AnyTimes()
	s.mockUOW.EXPECT().
		GetRepository(uow.RepositoryName(repoargs.PlatformConfigRepoName)).
		Return(s.mockConfRepo, nil).AnyTimes()

	s.mockTX.EXPECT().
		Get(uow.RepositoryName(repoargs.TransactionRepoName)).
		Return(s.mockTransRepo, nil).AnyTimes()
	s.mockTX.EXPECT().
		Get(uow.RepositoryName(repoargs.UserRepoName)).
		Return(s.mockUserRepo, nil).AnyTimes()
	s.mockTX.EXPECT().
		Get(uow.RepositoryName(repoargs.PlatformConfigRepoName)).
		Return(s.mockConfRepo, nil).AnyTimes()

	s.mockUOW.EXPECT().Do(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, fn func(context.Context, uow.TX) error) error {
			return fn(s.T().Context(), s.mockTX)
		},
	).AnyTimes()

	var err error
	s.service, err = NewLedgerService(s.mockUOW)
	s.Require().NoError(err)
}

func (s *LedgerServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

// TestEarningsDeltas проверяет инкременты агрегатов для каждой разновидности записи журнала.
func (s *LedgerServiceTestSuite) TestEarningsDeltas() {
	cases := []struct {
		name          string
		kind          domain.TransactionKind
		amount        decimal.Decimal
		wantEarned    decimal.Decimal
		wantReferral  decimal.Decimal
		wantWithdrawn decimal.Decimal
		wantPending   decimal.Decimal
	}{
		{
			name:          "referral bonus",
			kind:          domain.KindReferral,
			amount:        decimal.NewFromInt(500),
			wantEarned:    decimal.NewFromInt(500),
			wantReferral:  decimal.NewFromInt(500),
			wantWithdrawn: decimal.Zero,
			wantPending:   decimal.NewFromInt(500),
		}, {
			name:          "withdrawal",
			kind:          domain.KindWithdrawal,
			amount:        decimal.NewFromInt(-250),
			wantEarned:    decimal.Zero,
			wantReferral:  decimal.Zero,
			wantWithdrawn: decimal.NewFromInt(250),
			wantPending:   decimal.NewFromInt(-250),
		}, {
			name:          "activation fee",
			kind:          domain.KindActivation,
			amount:        decimal.NewFromInt(-100),
			wantEarned:    decimal.Zero,
			wantReferral:  decimal.Zero,
			wantWithdrawn: decimal.Zero,
			wantPending:   decimal.NewFromInt(-100),
		},
	}

	for _, t := range cases {
		s.Run(t.name, func() {
			deltas := earningsDeltas(t.kind, t.amount)
			s.True(t.wantEarned.Equal(deltas.TotalEarned), "TotalEarned")
			s.True(t.wantReferral.Equal(deltas.ReferralEarnings), "ReferralEarnings")
			s.True(t.wantWithdrawn.Equal(deltas.TotalWithdrawn), "TotalWithdrawn")
			s.True(t.wantPending.Equal(deltas.PendingBalance), "PendingBalance")
		})
	}
}

func (s *LedgerServiceTestSuite) TestRecordTransaction_DefaultStatuses() {
	var userID int64 = 1

	// вывод средств без явного статуса получает pending
	s.mockTransRepo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, args repoargs.TransactionCreate) (*domain.Transaction, error) {
			s.Equal(domain.StatusPending, args.Status)
			s.NotEmpty(args.Code)
			return &domain.Transaction{ID: 1, Code: args.Code, Status: args.Status}, nil
		})
	s.mockTransRepo.EXPECT().
		ApplyEarnings(gomock.Any(), userID, gomock.Any()).
		Return(&domain.Earnings{}, nil)

	_, err := s.service.RecordTransaction(s.T().Context(), RecordTransactionArgs{
		UserID: userID,
		Kind:   domain.KindWithdrawal,
		Amount: decimal.NewFromInt(-300),
	})
	s.Require().NoError(err)

	// все остальное без явного статуса получает completed
	s.mockTransRepo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, args repoargs.TransactionCreate) (*domain.Transaction, error) {
			s.Equal(domain.StatusCompleted, args.Status)
			return &domain.Transaction{ID: 2, Code: args.Code, Status: args.Status}, nil
		})
	s.mockTransRepo.EXPECT().
		ApplyEarnings(gomock.Any(), userID, gomock.Any()).
		Return(&domain.Earnings{}, nil)

	_, err = s.service.RecordTransaction(s.T().Context(), RecordTransactionArgs{
		UserID: userID,
		Kind:   domain.KindReferral,
		Amount: decimal.NewFromInt(20),
	})
	s.Require().NoError(err)
}

func (s *LedgerServiceTestSuite) TestStatement_InitializesMissingEarnings() {
	var userID int64 = 1

	s.mockUserRepo.EXPECT().
		FindByID(gomock.Any(), userID).
		Return(&domain.User{ID: userID, IsActivated: false}, nil)
	s.mockTransRepo.EXPECT().
		GetEarnings(gomock.Any(), userID).
		Return(nil, domain.ErrRecordNotFound)
	s.mockTransRepo.EXPECT().
		InitEarnings(gomock.Any(), userID).
		Return(&domain.Earnings{UserID: userID}, nil)
	s.mockTransRepo.EXPECT().
		GetByUserID(gomock.Any(), userID).
		Return([]domain.Transaction{}, nil)

	statement, err := s.service.Statement(s.T().Context(), userID)
	s.Require().NoError(err)
	s.Equal(userID, statement.Earnings.UserID)
	s.Empty(statement.Transactions)
}

// TestStatement_SeedsActivationFee активированный юзер без записи об оплате активации
// получает ее при первом чтении счета.
func (s *LedgerServiceTestSuite) TestStatement_SeedsActivationFee() {
	var userID int64 = 1
	fee := decimal.NewFromInt(100)

	s.mockUserRepo.EXPECT().
		FindByID(gomock.Any(), userID).
		Return(&domain.User{ID: userID, IsActivated: true}, nil)
	s.mockTransRepo.EXPECT().
		HasCompleted(gomock.Any(), userID, domain.KindActivation).
		Return(false, nil)
	s.mockConfRepo.EXPECT().
		Get(gomock.Any()).
		Return(&domain.PlatformConfig{ActivationFee: fee}, nil)
	s.mockTransRepo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, args repoargs.TransactionCreate) (*domain.Transaction, error) {
			s.Equal(domain.KindActivation, args.Kind)
			s.True(fee.Neg().Equal(args.Amount))
			return &domain.Transaction{ID: 1}, nil
		})
	s.mockTransRepo.EXPECT().
		ApplyEarnings(gomock.Any(), userID, gomock.Any()).
		Return(&domain.Earnings{}, nil)
	s.mockTransRepo.EXPECT().
		GetEarnings(gomock.Any(), userID).
		Return(&domain.Earnings{UserID: userID, PendingBalance: fee.Neg()}, nil)
	s.mockTransRepo.EXPECT().
		GetByUserID(gomock.Any(), userID).
		Return([]domain.Transaction{{ID: 1}}, nil)

	statement, err := s.service.Statement(s.T().Context(), userID)
	s.Require().NoError(err)
	s.Len(statement.Transactions, 1)
}

func (s *LedgerServiceTestSuite) TestClaimDailyBonus() {
	var userID int64 = 1
	today := "2025-06-15"

	s.mockUserRepo.EXPECT().
		FindByID(gomock.Any(), userID).
		Return(&domain.User{ID: userID, LastBonusDate: "2025-06-14"}, nil)
	s.mockTransRepo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, args repoargs.TransactionCreate) (*domain.Transaction, error) {
			s.Equal(domain.KindReferral, args.Kind)
			s.True(dailyBonusAmount.Equal(args.Amount))
			return &domain.Transaction{ID: 1, Amount: args.Amount}, nil
		})
	s.mockTransRepo.EXPECT().
		ApplyEarnings(gomock.Any(), userID, gomock.Any()).
		Return(&domain.Earnings{}, nil)
	s.mockUserRepo.EXPECT().
		SetLastBonusDate(gomock.Any(), userID, today).
		Return(nil)

	created, err := s.service.ClaimDailyBonus(s.T().Context(), userID, today)
	s.Require().NoError(err)
	s.True(dailyBonusAmount.Equal(created.Amount))
}

// TestClaimDailyBonus_SameDay повторная попытка в тот же день ничего не мутирует.
func (s *LedgerServiceTestSuite) TestClaimDailyBonus_SameDay() {
	var userID int64 = 1
	today := "2025-06-15"

	s.mockUserRepo.EXPECT().
		FindByID(gomock.Any(), userID).
		Return(&domain.User{ID: userID, LastBonusDate: today}, nil)

	_, err := s.service.ClaimDailyBonus(s.T().Context(), userID, today)
	s.Require().ErrorIs(err, domain.ErrBonusAlreadyClaimed)
}

func (s *LedgerServiceTestSuite) TestWithdraw() {
	var userID int64 = 1
	conf := &domain.PlatformConfig{MinWithdrawal: decimal.NewFromInt(200)}

	s.mockConfRepo.EXPECT().Get(gomock.Any()).Return(conf, nil).AnyTimes()

	s.Run("below minimum", func() {
		_, err := s.service.Withdraw(s.T().Context(), userID, decimal.NewFromInt(199), "M-Pesa")
		s.Require().ErrorIs(err, domain.ErrBelowMinWithdrawal)
	})

	s.Run("not enough balance", func() {
		s.mockTransRepo.EXPECT().
			GetEarnings(gomock.Any(), userID).
			Return(&domain.Earnings{PendingBalance: decimal.NewFromInt(100)}, nil)

		_, err := s.service.Withdraw(s.T().Context(), userID, decimal.NewFromInt(250), "M-Pesa")
		s.Require().ErrorIs(err, domain.ErrNotEnoughBalance)
	})

	s.Run("accepted", func() {
		s.mockTransRepo.EXPECT().
			GetEarnings(gomock.Any(), userID).
			Return(&domain.Earnings{PendingBalance: decimal.NewFromInt(500)}, nil)
		s.mockTransRepo.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, args repoargs.TransactionCreate) (*domain.Transaction, error) {
				s.Equal(domain.KindWithdrawal, args.Kind)
				s.Equal(domain.StatusPending, args.Status)
				s.True(decimal.NewFromInt(-250).Equal(args.Amount))
				s.Equal("Withdrawal to M-Pesa", args.Description)
				return &domain.Transaction{ID: 1, Status: args.Status, Amount: args.Amount}, nil
			})
		s.mockTransRepo.EXPECT().
			ApplyEarnings(gomock.Any(), userID, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ int64, deltas repoargs.EarningsDeltas) (*domain.Earnings, error) {
				// totalWithdrawn учитывается сразу при создании заявки, до решения админа
				s.True(decimal.NewFromInt(250).Equal(deltas.TotalWithdrawn))
				s.True(decimal.NewFromInt(-250).Equal(deltas.PendingBalance))
				return &domain.Earnings{}, nil
			})

		created, err := s.service.Withdraw(s.T().Context(), userID, decimal.NewFromInt(250), "M-Pesa")
		s.Require().NoError(err)
		s.Equal(domain.StatusPending, created.Status)
	})
}

func (s *LedgerServiceTestSuite) TestFinalizeActivation() {
	var userID int64 = 1
	conf := &domain.PlatformConfig{
		ActivationFee: decimal.NewFromInt(100),
		ReferralBonus: decimal.NewFromInt(500),
	}
	referrer := &domain.User{ID: 7, ReferralCode: "AB12CD3"}

	s.mockUserRepo.EXPECT().
		FindByID(gomock.Any(), userID).
		Return(&domain.User{ID: userID, ReferredBy: "AB12CD3"}, nil)
	s.mockConfRepo.EXPECT().Get(gomock.Any()).Return(conf, nil)

	// запись об оплате активации
	s.mockTransRepo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, args repoargs.TransactionCreate) (*domain.Transaction, error) {
			s.Equal(domain.KindActivation, args.Kind)
			s.True(conf.ActivationFee.Neg().Equal(args.Amount))
			s.Equal(domain.StatusCompleted, args.Status)
			return &domain.Transaction{ID: 1}, nil
		})
	s.mockTransRepo.EXPECT().
		ApplyEarnings(gomock.Any(), userID, gomock.Any()).
		Return(&domain.Earnings{}, nil)

	s.mockUserRepo.EXPECT().MarkActivated(gomock.Any(), userID).Return(nil)

	// реферальный бонус пригласившему
	s.mockUserRepo.EXPECT().
		FindByReferralCode(gomock.Any(), "AB12CD3").
		Return(referrer, nil)
	s.mockTransRepo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, args repoargs.TransactionCreate) (*domain.Transaction, error) {
			s.Equal(referrer.ID, args.UserID)
			s.Equal(domain.KindReferral, args.Kind)
			s.True(conf.ReferralBonus.Equal(args.Amount))
			return &domain.Transaction{ID: 2}, nil
		})
	s.mockTransRepo.EXPECT().
		ApplyEarnings(gomock.Any(), referrer.ID, gomock.Any()).
		Return(&domain.Earnings{}, nil)

	err := s.service.FinalizeActivation(s.T().Context(), userID)
	s.Require().NoError(err)
}

func (s *LedgerServiceTestSuite) TestFinalizeActivation_AlreadyActivated() {
	var userID int64 = 1

	s.mockUserRepo.EXPECT().
		FindByID(gomock.Any(), userID).
		Return(&domain.User{ID: userID, IsActivated: true}, nil)

	err := s.service.FinalizeActivation(s.T().Context(), userID)
	s.Require().ErrorIs(err, domain.ErrAlreadyActivated)
}

// TestFinalizeActivation_UnknownReferrer неизвестный реферальный код молча пропускается.
func (s *LedgerServiceTestSuite) TestFinalizeActivation_UnknownReferrer() {
	var userID int64 = 1

	s.mockUserRepo.EXPECT().
		FindByID(gomock.Any(), userID).
		Return(&domain.User{ID: userID, ReferredBy: "GHOST00"}, nil)
	s.mockConfRepo.EXPECT().
		Get(gomock.Any()).
		Return(&domain.PlatformConfig{ActivationFee: decimal.NewFromInt(100)}, nil)
	s.mockTransRepo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		Return(&domain.Transaction{ID: 1}, nil)
	s.mockTransRepo.EXPECT().
		ApplyEarnings(gomock.Any(), userID, gomock.Any()).
		Return(&domain.Earnings{}, nil)
	s.mockUserRepo.EXPECT().MarkActivated(gomock.Any(), userID).Return(nil)
	s.mockUserRepo.EXPECT().
		FindByReferralCode(gomock.Any(), "GHOST00").
		Return(nil, domain.ErrRecordNotFound)

	err := s.service.FinalizeActivation(s.T().Context(), userID)
	s.Require().NoError(err)
}

func (s *LedgerServiceTestSuite) TestWithdrawals() {
	var userID int64 = 1

	s.mockTransRepo.EXPECT().
		GetByUserKind(gomock.Any(), userID, domain.KindWithdrawal).
		Return([]domain.Transaction{{ID: 1, Kind: domain.KindWithdrawal}}, nil)

	transactions, err := s.service.Withdrawals(s.T().Context(), userID)
	s.Require().NoError(err)
	s.Len(transactions, 1)
}
