package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/azuraxkenya/megaon/internal/domain"
	"github.com/azuraxkenya/megaon/internal/logger"
	"github.com/azuraxkenya/megaon/internal/service"
	"github.com/azuraxkenya/megaon/internal/service/tokens"
	"github.com/azuraxkenya/megaon/internal/transport/api/mocks"
	"github.com/azuraxkenya/megaon/internal/transport/api/testutils"
)

type LedgerHandlerTestSuite struct {
	suite.Suite
	router            *gin.Engine
	mockLedgerService *mocks.MockLedgerServicer
	mockUserService   *mocks.MockUserServicer
	jwtSecret         []byte
	userToken         string
	userID            int64
}

func TestLedgerHandlerSuite(t *testing.T) {
	suite.Run(t, new(LedgerHandlerTestSuite))
}

func (s *LedgerHandlerTestSuite) SetupTest() {
	mockCtrl := gomock.NewController(s.T())
	defer mockCtrl.Finish()

	s.mockLedgerService = mocks.NewMockLedgerServicer(mockCtrl)
	s.mockUserService = mocks.NewMockUserServicer(mockCtrl)
	s.jwtSecret = []byte("super secret key")
	s.userID = 1

	token, tokenErr := tokens.GenerateUserJWT(s.userID, false, time.Hour, s.jwtSecret)
	s.Require().NoError(tokenErr)
	s.userToken = token

	s.router = New(RouterArgs{
		Logger:        logger.New(os.Stdout),
		LedgerService: s.mockLedgerService,
		UserService:   s.mockUserService,
		JWTSecretKey:  s.jwtSecret,
	})
}

func (s *LedgerHandlerTestSuite) TestEarnings() {
	s.mockLedgerService.EXPECT().
		Statement(gomock.Any(), s.userID).
		Return(&service.Statement{
			Earnings: domain.Earnings{
				UserID:           s.userID,
				TotalEarned:      decimal.NewFromInt(520),
				ReferralEarnings: decimal.NewFromInt(500),
				TotalWithdrawn:   decimal.NewFromInt(0),
				PendingBalance:   decimal.NewFromInt(420),
			},
		}, nil)

	res, err := testutils.MakeRequest(testutils.RequestArgs{
		Router: s.router,
		Method: http.MethodGet,
		URL:    RouteGroup + EarningsRoute,
	}, testutils.WithBearer(s.userToken))
	s.Require().NoError(err)
	defer func() { s.Require().NoError(res.Body.Close()) }()

	s.Require().Equal(http.StatusOK, res.StatusCode)

	var body EarningsResponse
	s.Require().NoError(json.NewDecoder(res.Body).Decode(&body))
	s.InDelta(520, body.TotalEarned, 0.001)
	s.InDelta(500, body.ReferralEarnings, 0.001)
	s.InDelta(420, body.PendingBalance, 0.001)
}

func (s *LedgerHandlerTestSuite) TestEarnings_Unauthorized() {
	res, err := testutils.MakeRequest(testutils.RequestArgs{
		Router: s.router,
		Method: http.MethodGet,
		URL:    RouteGroup + EarningsRoute,
	})
	s.Require().NoError(err)
	defer func() { s.Require().NoError(res.Body.Close()) }()

	s.Equal(http.StatusUnauthorized, res.StatusCode)
}

func (s *LedgerHandlerTestSuite) TestTransactions() {
	s.mockLedgerService.EXPECT().
		Statement(gomock.Any(), s.userID).
		Return(&service.Statement{
			Transactions: []domain.Transaction{
				{
					ID:          2,
					Code:        "TXN-AAAA111122",
					UserID:      s.userID,
					Kind:        domain.KindReferral,
					Amount:      decimal.NewFromInt(20),
					Status:      domain.StatusCompleted,
					Description: "Daily Activity Bonus",
					CreatedAt:   time.Now(),
				}, {
					ID:          1,
					Code:        "TXN-BBBB333344",
					UserID:      s.userID,
					Kind:        domain.KindActivation,
					Amount:      decimal.NewFromInt(-100),
					Status:      domain.StatusCompleted,
					Description: "Megaon Activation Fee",
					CreatedAt:   time.Now().Add(-time.Hour),
				},
			},
		}, nil)

	res, err := testutils.MakeRequest(testutils.RequestArgs{
		Router: s.router,
		Method: http.MethodGet,
		URL:    RouteGroup + TransactionsRoute,
	}, testutils.WithBearer(s.userToken))
	s.Require().NoError(err)
	defer func() { s.Require().NoError(res.Body.Close()) }()

	s.Require().Equal(http.StatusOK, res.StatusCode)

	var body []TransactionResponseItem
	s.Require().NoError(json.NewDecoder(res.Body).Decode(&body))
	s.Require().Len(body, 2)
	s.Equal("TXN-AAAA111122", body[0].Code)
	s.Equal("referral", body[0].Kind)
	s.InDelta(-100, body[1].Amount, 0.001)
}

func (s *LedgerHandlerTestSuite) TestClaimBonus() {
	today := time.Now().Format(time.DateOnly)
	s.mockLedgerService.EXPECT().
		ClaimDailyBonus(gomock.Any(), s.userID, today).
		Return(&domain.Transaction{
			Code:   "TXN-CCCC555566",
			Amount: decimal.NewFromInt(20),
		}, nil)

	res, err := testutils.MakeRequest(testutils.RequestArgs{
		Router: s.router,
		Method: http.MethodPost,
		URL:    RouteGroup + BonusRoute,
	}, testutils.WithBearer(s.userToken))
	s.Require().NoError(err)
	defer func() { s.Require().NoError(res.Body.Close()) }()

	s.Equal(http.StatusOK, res.StatusCode)
}

func (s *LedgerHandlerTestSuite) TestClaimBonus_AlreadyClaimed() {
	s.mockLedgerService.EXPECT().
		ClaimDailyBonus(gomock.Any(), s.userID, gomock.Any()).
		Return(nil, domain.ErrBonusAlreadyClaimed)

	res, err := testutils.MakeRequest(testutils.RequestArgs{
		Router: s.router,
		Method: http.MethodPost,
		URL:    RouteGroup + BonusRoute,
	}, testutils.WithBearer(s.userToken))
	s.Require().NoError(err)
	defer func() { s.Require().NoError(res.Body.Close()) }()

	s.Equal(http.StatusConflict, res.StatusCode)
}

func (s *LedgerHandlerTestSuite) TestWithdraw() {
	amount := decimal.NewFromInt(250)

	s.mockLedgerService.EXPECT().
		Withdraw(gomock.Any(), s.userID, amount, "M-Pesa").
		Return(&domain.Transaction{
			Code:   "TXN-DDDD777788",
			Status: domain.StatusPending,
		}, nil)

	payload, marshalErr := json.Marshal(WithdrawParams{Amount: amount, Method: "M-Pesa"})
	s.Require().NoError(marshalErr)

	res, err := testutils.MakeRequest(testutils.RequestArgs{
		Router: s.router,
		Method: http.MethodPost,
		URL:    RouteGroup + BalanceWithdrawRoute,
		Body:   bytes.NewReader(payload),
	}, testutils.WithBearer(s.userToken), testutils.WithHeader("Content-Type", "application/json"))
	s.Require().NoError(err)
	defer func() { s.Require().NoError(res.Body.Close()) }()

	s.Equal(http.StatusOK, res.StatusCode)
}

func (s *LedgerHandlerTestSuite) TestWithdraw_Errors() {
	cases := []struct {
		name       string
		serviceErr error
		wantStatus int
	}{
		{name: "below minimum", serviceErr: domain.ErrBelowMinWithdrawal, wantStatus: http.StatusUnprocessableEntity},
		{name: "not enough balance", serviceErr: domain.ErrNotEnoughBalance, wantStatus: http.StatusPaymentRequired},
	}

	for _, t := range cases {
		s.Run(t.name, func() {
			s.mockLedgerService.EXPECT().
				Withdraw(gomock.Any(), s.userID, gomock.Any(), gomock.Any()).
				Return(nil, t.serviceErr)

			payload, marshalErr := json.Marshal(WithdrawParams{
				Amount: decimal.NewFromInt(100),
				Method: "M-Pesa",
			})
			s.Require().NoError(marshalErr)

			res, err := testutils.MakeRequest(testutils.RequestArgs{
				Router: s.router,
				Method: http.MethodPost,
				URL:    RouteGroup + BalanceWithdrawRoute,
				Body:   bytes.NewReader(payload),
			}, testutils.WithBearer(s.userToken), testutils.WithHeader("Content-Type", "application/json"))
			s.Require().NoError(err)
			defer func() { s.Require().NoError(res.Body.Close()) }()

			s.Equal(t.wantStatus, res.StatusCode)
		})
	}
}

func (s *LedgerHandlerTestSuite) TestLinkBank() {
	s.mockUserService.EXPECT().
		LinkBank(gomock.Any(), service.LinkBankArgs{
			UserID:        s.userID,
			BankName:      "Equity Bank",
			AccountNumber: "0123456789",
			AccountName:   "JOHN DOE",
		}).
		Return(nil)

	payload, marshalErr := json.Marshal(LinkBankParams{
		BankName:      "Equity Bank",
		AccountNumber: "0123456789",
		AccountName:   "JOHN DOE",
	})
	s.Require().NoError(marshalErr)

	res, err := testutils.MakeRequest(testutils.RequestArgs{
		Router: s.router,
		Method: http.MethodPut,
		URL:    RouteGroup + BankRoute,
		Body:   bytes.NewReader(payload),
	}, testutils.WithBearer(s.userToken), testutils.WithHeader("Content-Type", "application/json"))
	s.Require().NoError(err)
	defer func() { s.Require().NoError(res.Body.Close()) }()

	s.Equal(http.StatusOK, res.StatusCode)
}
