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
	"github.com/azuraxkenya/megaon/internal/repository/repoargs"
	"github.com/azuraxkenya/megaon/internal/service/tokens"
	"github.com/azuraxkenya/megaon/internal/transport/api/mocks"
	"github.com/azuraxkenya/megaon/internal/transport/api/testutils"
)

type AdminHandlerTestSuite struct {
	suite.Suite
	router              *gin.Engine
	mockPlatformService *mocks.MockPlatformServicer
	jwtSecret           []byte
	adminToken          string
	userToken           string
}

func TestAdminHandlerSuite(t *testing.T) {
	suite.Run(t, new(AdminHandlerTestSuite))
}

func (s *AdminHandlerTestSuite) SetupTest() {
	mockCtrl := gomock.NewController(s.T())
	defer mockCtrl.Finish()

	s.mockPlatformService = mocks.NewMockPlatformServicer(mockCtrl)
	s.jwtSecret = []byte("super secret key")

	adminToken, adminErr := tokens.GenerateUserJWT(100, true, time.Hour, s.jwtSecret)
	s.Require().NoError(adminErr)
	s.adminToken = adminToken

	userToken, userErr := tokens.GenerateUserJWT(1, false, time.Hour, s.jwtSecret)
	s.Require().NoError(userErr)
	s.userToken = userToken

	s.router = New(RouterArgs{
		Logger:          logger.New(os.Stdout),
		PlatformService: s.mockPlatformService,
		JWTSecretKey:    s.jwtSecret,
	})
}

func (s *AdminHandlerTestSuite) TestGetConfig() {
	s.mockPlatformService.EXPECT().
		GetConfig(gomock.Any()).
		Return(&domain.PlatformConfig{
			ActivationFee:     decimal.NewFromInt(100),
			ReferralBonus:     decimal.NewFromInt(500),
			MinWithdrawal:     decimal.NewFromInt(200),
			BankName:          "Co-operative Bank (Paybill 400200)",
			BankAccountNumber: "01102301315001",
			BankAccountName:   "MEGAON ACTIVATION REVENUE",
		}, nil)

	res, err := testutils.MakeRequest(testutils.RequestArgs{
		Router: s.router,
		Method: http.MethodGet,
		URL:    RouteGroup + AdminRouteGroup + AdminConfigRoute,
	}, testutils.WithBearer(s.adminToken))
	s.Require().NoError(err)
	defer func() { s.Require().NoError(res.Body.Close()) }()

	s.Require().Equal(http.StatusOK, res.StatusCode)

	var body ConfigResponse
	s.Require().NoError(json.NewDecoder(res.Body).Decode(&body))
	s.InDelta(100, body.ActivationFee, 0.001)
	s.Equal("01102301315001", body.BankAccountNumber)
}

// TestGetConfig_Forbidden обычный юзер не проходит AdminRequired.
func (s *AdminHandlerTestSuite) TestGetConfig_Forbidden() {
	res, err := testutils.MakeRequest(testutils.RequestArgs{
		Router: s.router,
		Method: http.MethodGet,
		URL:    RouteGroup + AdminRouteGroup + AdminConfigRoute,
	}, testutils.WithBearer(s.userToken))
	s.Require().NoError(err)
	defer func() { s.Require().NoError(res.Body.Close()) }()

	s.Equal(http.StatusForbidden, res.StatusCode)
}

func (s *AdminHandlerTestSuite) TestUpdateConfig() {
	update := repoargs.ConfigUpdate{
		ActivationFee:     decimal.NewFromInt(150),
		ReferralBonus:     decimal.NewFromInt(600),
		MinWithdrawal:     decimal.NewFromInt(250),
		BankName:          "Equity Bank",
		BankAccountNumber: "0123456789",
		BankAccountName:   "MEGAON LTD",
	}

	s.mockPlatformService.EXPECT().
		UpdateConfig(gomock.Any(), update).
		Return(&domain.PlatformConfig{
			ActivationFee:     update.ActivationFee,
			ReferralBonus:     update.ReferralBonus,
			MinWithdrawal:     update.MinWithdrawal,
			BankName:          update.BankName,
			BankAccountNumber: update.BankAccountNumber,
			BankAccountName:   update.BankAccountName,
		}, nil)

	payload, marshalErr := json.Marshal(ConfigUpdateParams{
		ActivationFee:     update.ActivationFee,
		ReferralBonus:     update.ReferralBonus,
		MinWithdrawal:     update.MinWithdrawal,
		BankName:          update.BankName,
		BankAccountNumber: update.BankAccountNumber,
		BankAccountName:   update.BankAccountName,
	})
	s.Require().NoError(marshalErr)

	res, err := testutils.MakeRequest(testutils.RequestArgs{
		Router: s.router,
		Method: http.MethodPut,
		URL:    RouteGroup + AdminRouteGroup + AdminConfigRoute,
		Body:   bytes.NewReader(payload),
	}, testutils.WithBearer(s.adminToken), testutils.WithHeader("Content-Type", "application/json"))
	s.Require().NoError(err)
	defer func() { s.Require().NoError(res.Body.Close()) }()

	s.Equal(http.StatusOK, res.StatusCode)
}

func (s *AdminHandlerTestSuite) TestUpdateConfig_NonPositiveAmount() {
	payload, marshalErr := json.Marshal(ConfigUpdateParams{
		ActivationFee:     decimal.NewFromInt(-5),
		ReferralBonus:     decimal.NewFromInt(600),
		MinWithdrawal:     decimal.NewFromInt(250),
		BankName:          "Equity Bank",
		BankAccountNumber: "0123456789",
		BankAccountName:   "MEGAON LTD",
	})
	s.Require().NoError(marshalErr)

	res, err := testutils.MakeRequest(testutils.RequestArgs{
		Router: s.router,
		Method: http.MethodPut,
		URL:    RouteGroup + AdminRouteGroup + AdminConfigRoute,
		Body:   bytes.NewReader(payload),
	}, testutils.WithBearer(s.adminToken), testutils.WithHeader("Content-Type", "application/json"))
	s.Require().NoError(err)
	defer func() { s.Require().NoError(res.Body.Close()) }()

	s.Equal(http.StatusUnprocessableEntity, res.StatusCode)
}

func (s *AdminHandlerTestSuite) TestTransactions() {
	s.mockPlatformService.EXPECT().
		ListTransactions(gomock.Any(), uint(10)).
		Return([]domain.AdminTransaction{
			{
				Transaction: domain.Transaction{
					Code:   "TXN-AAAA111122",
					Kind:   domain.KindWithdrawal,
					Amount: decimal.NewFromInt(-250),
					Status: domain.StatusPending,
				},
				UserName: "John Doe",
			},
		}, nil)

	res, err := testutils.MakeRequest(testutils.RequestArgs{
		Router: s.router,
		Method: http.MethodGet,
		URL:    RouteGroup + AdminRouteGroup + AdminTransactionsRoute + "?limit=10",
	}, testutils.WithBearer(s.adminToken))
	s.Require().NoError(err)
	defer func() { s.Require().NoError(res.Body.Close()) }()

	s.Require().Equal(http.StatusOK, res.StatusCode)

	var body []AdminTransactionResponseItem
	s.Require().NoError(json.NewDecoder(res.Body).Decode(&body))
	s.Require().Len(body, 1)
	s.Equal("John Doe", body[0].UserName)
}

func (s *AdminHandlerTestSuite) TestReviewWithdrawal() {
	cases := []struct {
		name       string
		approve    bool
		serviceErr error
		wantStatus int
	}{
		{name: "approved", approve: true, wantStatus: http.StatusOK},
		{name: "rejected", approve: false, wantStatus: http.StatusOK},
		{name: "already reviewed", approve: true, serviceErr: domain.ErrTransactionFinalized, wantStatus: http.StatusConflict},
	}

	for _, t := range cases {
		s.Run(t.name, func() {
			if t.serviceErr != nil {
				s.mockPlatformService.EXPECT().
					ReviewWithdrawal(gomock.Any(), int64(7), t.approve).
					Return(nil, t.serviceErr)
			} else {
				status := domain.StatusCompleted
				if !t.approve {
					status = domain.StatusFailed
				}
				s.mockPlatformService.EXPECT().
					ReviewWithdrawal(gomock.Any(), int64(7), t.approve).
					Return(&domain.Transaction{ID: 7, Status: status}, nil)
			}

			payload, marshalErr := json.Marshal(ReviewWithdrawalParams{Approve: t.approve})
			s.Require().NoError(marshalErr)

			res, err := testutils.MakeRequest(testutils.RequestArgs{
				Router: s.router,
				Method: http.MethodPost,
				URL:    RouteGroup + AdminRouteGroup + "/withdrawals/7",
				Body:   bytes.NewReader(payload),
			}, testutils.WithBearer(s.adminToken), testutils.WithHeader("Content-Type", "application/json"))
			s.Require().NoError(err)
			defer func() { s.Require().NoError(res.Body.Close()) }()

			s.Equal(t.wantStatus, res.StatusCode)
		})
	}
}
