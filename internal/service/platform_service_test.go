package service

import (
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

type PlatformServiceTestSuite struct {
	suite.Suite
	mockUOW       *uowmocks.MockUOW
	mockConfRepo  *mocks.MockPlatformConfigRepository
	mockUserRepo  *mocks.MockUserRepository
	mockTransRepo *mocks.MockTransactionRepository
	service       *PlatformService
}

func TestPlatformServiceSuite(t *testing.T) {
	suite.Run(t, new(PlatformServiceTestSuite))
}

func (s *PlatformServiceTestSuite) SetupTest() {
	mockCtrl := gomock.NewController(s.T())
	s.mockUOW = uowmocks.NewMockUOW(mockCtrl)
	s.mockConfRepo = mocks.NewMockPlatformConfigRepository(mockCtrl)
	s.mockUserRepo = mocks.NewMockUserRepository(mockCtrl)
	s.mockTransRepo = mocks.NewMockTransactionRepository(mockCtrl)

	s.mockUOW.EXPECT().
		GetRepository(uow.RepositoryName(repoargs.PlatformConfigRepoName)).
		Return(s.mockConfRepo, nil).AnyTimes()
	s.mockUOW.EXPECT().
		GetRepository(uow.RepositoryName(repoargs.UserRepoName)).
		Return(s.mockUserRepo, nil).AnyTimes()
	s.mockUOW.EXPECT().
		GetRepository(uow.RepositoryName(repoargs.TransactionRepoName)).
		Return(s.mockTransRepo, nil).AnyTimes()

	service, servErr := NewPlatformService(s.mockUOW)
	s.Require().NoError(servErr)
	s.service = service
}

func (s *PlatformServiceTestSuite) TestUpdateConfig() {
	args := repoargs.ConfigUpdate{
		ActivationFee:     decimal.NewFromInt(150),
		ReferralBonus:     decimal.NewFromInt(600),
		MinWithdrawal:     decimal.NewFromInt(250),
		BankName:          "Co-operative Bank",
		BankAccountNumber: "01100099887766",
		BankAccountName:   "Megaon Ltd",
	}

	s.mockConfRepo.EXPECT().
		Update(gomock.Any(), args).
		Return(&domain.PlatformConfig{
			ActivationFee: args.ActivationFee,
			ReferralBonus: args.ReferralBonus,
			MinWithdrawal: args.MinWithdrawal,
		}, nil)

	conf, err := s.service.UpdateConfig(s.T().Context(), args)
	s.Require().NoError(err)
	s.True(args.ActivationFee.Equal(conf.ActivationFee))
}

func (s *PlatformServiceTestSuite) TestListTransactions() {
	s.mockTransRepo.EXPECT().
		GetAllWithUsers(gomock.Any(), uint(50)).
		Return([]domain.AdminTransaction{
			{Transaction: domain.Transaction{ID: 1}, UserName: "Jane"},
		}, nil)

	transactions, err := s.service.ListTransactions(s.T().Context(), 50)
	s.Require().NoError(err)
	s.Len(transactions, 1)
}

func (s *PlatformServiceTestSuite) TestReviewWithdrawal() {
	cases := []struct {
		name       string
		id         int64
		approve    bool
		wantStatus domain.TransactionStatus
	}{
		{name: "approved", id: 7, approve: true, wantStatus: domain.StatusCompleted},
		{name: "rejected", id: 8, approve: false, wantStatus: domain.StatusFailed},
	}

	for _, t := range cases {
		s.Run(t.name, func() {
			s.mockTransRepo.EXPECT().
				UpdateWithdrawalStatus(gomock.Any(), t.id, t.wantStatus).
				Return(&domain.Transaction{ID: t.id, Status: t.wantStatus}, nil)

			transaction, err := s.service.ReviewWithdrawal(s.T().Context(), t.id, t.approve)
			s.Require().NoError(err)
			s.Equal(t.wantStatus, transaction.Status)
		})
	}
}

// TestReviewWithdrawal_Finalized повторное ревью pending заявку уже не находит.
func (s *PlatformServiceTestSuite) TestReviewWithdrawal_Finalized() {
	s.mockTransRepo.EXPECT().
		UpdateWithdrawalStatus(gomock.Any(), int64(7), domain.StatusCompleted).
		Return(nil, domain.ErrRecordNotFound)

	_, err := s.service.ReviewWithdrawal(s.T().Context(), 7, true)
	s.Require().ErrorIs(err, domain.ErrTransactionFinalized)
}
