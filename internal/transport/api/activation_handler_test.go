package api

import (
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"

	"github.com/azuraxkenya/megaon/internal/domain"
	"github.com/azuraxkenya/megaon/internal/logger"
	"github.com/azuraxkenya/megaon/internal/service/tokens"
	"github.com/azuraxkenya/megaon/internal/transport/activation"
	"github.com/azuraxkenya/megaon/internal/transport/api/mocks"
	"github.com/azuraxkenya/megaon/internal/transport/api/testutils"
)

type ActivationHandlerTestSuite struct {
	suite.Suite
	router    *gin.Engine
	mockMgr   *mocks.MockActivationManager
	jwtSecret []byte
	userToken string
	userID    int64
}

func TestActivationHandlerSuite(t *testing.T) {
	suite.Run(t, new(ActivationHandlerTestSuite))
}

func (s *ActivationHandlerTestSuite) SetupTest() {
	mockCtrl := gomock.NewController(s.T())
	defer mockCtrl.Finish()

	s.mockMgr = mocks.NewMockActivationManager(mockCtrl)
	s.jwtSecret = []byte("super secret key")
	s.userID = 1

	token, tokenErr := tokens.GenerateUserJWT(s.userID, false, time.Hour, s.jwtSecret)
	s.Require().NoError(tokenErr)
	s.userToken = token

	s.router = New(RouterArgs{
		Logger:        logger.New(os.Stdout),
		ActivationMgr: s.mockMgr,
		JWTSecretKey:  s.jwtSecret,
	})
}

func (s *ActivationHandlerTestSuite) TestStart() {
	s.mockMgr.EXPECT().
		Start(gomock.Any(), s.userID).
		Return(activation.Snapshot{
			Step:              domain.StepAwaitingConf,
			CheckoutRequestID: "ws_CO_1",
			Deadline:          time.Now().Add(time.Minute),
		}, nil)

	res, err := testutils.MakeRequest(testutils.RequestArgs{
		Router: s.router,
		Method: http.MethodPost,
		URL:    RouteGroup + ActivationRoute,
	}, testutils.WithBearer(s.userToken))
	s.Require().NoError(err)
	defer func() { s.Require().NoError(res.Body.Close()) }()

	s.Equal(http.StatusOK, res.StatusCode)
}

func (s *ActivationHandlerTestSuite) TestStart_Errors() {
	cases := []struct {
		name       string
		mgrErr     error
		wantStatus int
	}{
		{name: "already activated", mgrErr: domain.ErrAlreadyActivated, wantStatus: http.StatusConflict},
		{name: "in progress", mgrErr: domain.ErrActivationInProgress, wantStatus: http.StatusConflict},
	}

	for _, t := range cases {
		s.Run(t.name, func() {
			s.mockMgr.EXPECT().
				Start(gomock.Any(), s.userID).
				Return(activation.Snapshot{}, t.mgrErr)

			res, err := testutils.MakeRequest(testutils.RequestArgs{
				Router: s.router,
				Method: http.MethodPost,
				URL:    RouteGroup + ActivationRoute,
			}, testutils.WithBearer(s.userToken))
			s.Require().NoError(err)
			defer func() { s.Require().NoError(res.Body.Close()) }()

			s.Equal(t.wantStatus, res.StatusCode)
		})
	}
}

func (s *ActivationHandlerTestSuite) TestStatus_NoSession() {
	s.mockMgr.EXPECT().
		Status(s.userID).
		Return(activation.Snapshot{}, domain.ErrNoActivationSession)

	res, err := testutils.MakeRequest(testutils.RequestArgs{
		Router: s.router,
		Method: http.MethodGet,
		URL:    RouteGroup + ActivationRoute,
	}, testutils.WithBearer(s.userToken))
	s.Require().NoError(err)
	defer func() { s.Require().NoError(res.Body.Close()) }()

	s.Equal(http.StatusNotFound, res.StatusCode)
}

func (s *ActivationHandlerTestSuite) TestConfirm() {
	s.mockMgr.EXPECT().
		Confirm(s.userID).
		Return(activation.Snapshot{Step: domain.StepVerifying}, nil)

	res, err := testutils.MakeRequest(testutils.RequestArgs{
		Router: s.router,
		Method: http.MethodPost,
		URL:    RouteGroup + ActivationConfirm,
	}, testutils.WithBearer(s.userToken))
	s.Require().NoError(err)
	defer func() { s.Require().NoError(res.Body.Close()) }()

	s.Equal(http.StatusOK, res.StatusCode)
}

func (s *ActivationHandlerTestSuite) TestReportMissing() {
	s.mockMgr.EXPECT().
		ReportMissing(s.userID).
		Return(activation.Snapshot{Step: domain.StepFailed, Message: "payment prompt not received"}, nil)

	res, err := testutils.MakeRequest(testutils.RequestArgs{
		Router: s.router,
		Method: http.MethodPost,
		URL:    RouteGroup + ActivationReport,
	}, testutils.WithBearer(s.userToken))
	s.Require().NoError(err)
	defer func() { s.Require().NoError(res.Body.Close()) }()

	s.Equal(http.StatusOK, res.StatusCode)
}

func (s *ActivationHandlerTestSuite) TestRetry() {
	s.mockMgr.EXPECT().
		Retry(gomock.Any(), s.userID).
		Return(activation.Snapshot{Step: domain.StepAwaitingConf, CheckoutRequestID: "ws_CO_2"}, nil)

	res, err := testutils.MakeRequest(testutils.RequestArgs{
		Router: s.router,
		Method: http.MethodPost,
		URL:    RouteGroup + ActivationRetry,
	}, testutils.WithBearer(s.userToken))
	s.Require().NoError(err)
	defer func() { s.Require().NoError(res.Body.Close()) }()

	s.Equal(http.StatusOK, res.StatusCode)
}

func (s *ActivationHandlerTestSuite) TestCancel() {
	s.mockMgr.EXPECT().Cancel(s.userID)

	res, err := testutils.MakeRequest(testutils.RequestArgs{
		Router: s.router,
		Method: http.MethodDelete,
		URL:    RouteGroup + ActivationRoute,
	}, testutils.WithBearer(s.userToken))
	s.Require().NoError(err)
	defer func() { s.Require().NoError(res.Body.Close()) }()

	s.Equal(http.StatusNoContent, res.StatusCode)
}
