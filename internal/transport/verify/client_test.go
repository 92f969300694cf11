package verify

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/azuraxkenya/megaon/internal/domain"
)

type ClientTestSuite struct {
	suite.Suite
	server *httptest.Server
}

func TestClientSuite(t *testing.T) {
	suite.Run(t, new(ClientTestSuite))
}

func (s *ClientTestSuite) TearDownTest() {
	if s.server != nil {
		s.server.Close()
	}
}

func (s *ClientTestSuite) TestSendCode() {
	s.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.Equal(RouteSendCode, r.URL.Path)

		var req map[string]any
		s.Require().NoError(json.NewDecoder(r.Body).Decode(&req))
		s.Equal("+254700000001", req["To"])
		s.Equal("sms", req["Channel"])

		w.Header().Set("Content-Type", "application/json")
		s.Require().NoError(json.NewEncoder(w).Encode(verificationResponse{Status: "pending"}))
	}))

	client := New(s.server.URL)
	err := client.SendCode(s.T().Context(), "+254700000001", domain.ChannelSMS)

	s.NoError(err)
}

func (s *ClientTestSuite) TestSendCode_ServerError() {
	s.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))

	client := New(s.server.URL)
	err := client.SendCode(s.T().Context(), "+254700000001", domain.ChannelSMS)

	var statusCodeError *StatusCodeError
	s.Require().ErrorAs(err, &statusCodeError)
	s.Equal(http.StatusBadGateway, statusCodeError.Code)
}

func (s *ClientTestSuite) TestCheckCode() {
	type tcase struct {
		name       string
		respStatus string
		wantStatus domain.OTPStatus
	}

	cases := []tcase{
		{name: "approved", respStatus: "approved", wantStatus: domain.OTPApproved},
		{name: "expired", respStatus: "expired", wantStatus: domain.OTPExpired},
		{name: "wrong code stays pending", respStatus: "pending", wantStatus: domain.OTPPending},
	}

	var current *tcase
	s.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.Equal(RouteCheckCode, r.URL.Path)

		var req map[string]any
		s.Require().NoError(json.NewDecoder(r.Body).Decode(&req))
		s.Equal("123456", req["Code"])

		w.Header().Set("Content-Type", "application/json")
		s.Require().NoError(json.NewEncoder(w).Encode(verificationResponse{Status: current.respStatus}))
	}))

	client := New(s.server.URL)

	for _, t := range cases {
		s.Run(t.name, func() {
			current = &t
			status, err := client.CheckCode(s.T().Context(), "+254700000001", "123456")

			s.Require().NoError(err)
			s.Equal(t.wantStatus, status)
		})
	}
}
