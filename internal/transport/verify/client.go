// Package verify реализует HTTP клиент сервиса одноразовых кодов подтверждения
// (SMS или email) при регистрации.
package verify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/pkg/errors"

	"github.com/azuraxkenya/megaon/internal/domain"
)

const (
	RouteSendCode  = "/v2/verifications"
	RouteCheckCode = "/v2/verification-checks"
)

type sendRequest struct {
	To      string `json:"To"`
	Channel string `json:"Channel"`
}

type checkRequest struct {
	To   string `json:"To"`
	Code string `json:"Code"`
}

type verificationResponse struct {
	Status string `json:"Status"`
}

type HTTPClient struct {
	baseURL    string
	httpClient *http.Client
}

func New(baseURL string) HTTPClient {
	return HTTPClient{
		baseURL:    baseURL,
		httpClient: http.DefaultClient,
	}
}

// SendCode запрашивает отправку одноразового кода на указанный контакт.
func (c HTTPClient) SendCode(ctx context.Context, to string, channel domain.OTPChannel) error {
	var response verificationResponse
	err := c.postJSON(ctx, RouteSendCode, sendRequest{To: to, Channel: string(channel)}, &response)
	if err != nil {
		return errors.Wrap(err, "send verification code")
	}
	return nil
}

// CheckCode проверяет введенный пользователем код и возвращает статус проверки.
func (c HTTPClient) CheckCode(ctx context.Context, to string, code string) (domain.OTPStatus, error) {
	var response verificationResponse
	err := c.postJSON(ctx, RouteCheckCode, checkRequest{To: to, Code: code}, &response)
	if err != nil {
		return "", errors.Wrap(err, "check verification code")
	}

	switch response.Status {
	case string(domain.OTPApproved):
		return domain.OTPApproved, nil
	case string(domain.OTPExpired):
		return domain.OTPExpired, nil
	default:
		return domain.OTPPending, nil
	}
}

//nolint:nonamedreturns
func (c HTTPClient) postJSON(ctx context.Context, route string, payload any, out any) (err error) {
	body, marshalErr := json.Marshal(payload)
	if marshalErr != nil {
		return errors.Wrap(marshalErr, "marshal request")
	}

	req, reqErr := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+route, bytes.NewReader(body))
	if reqErr != nil {
		return errors.Wrap(reqErr, "create request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, doErr := c.httpClient.Do(req)
	if doErr != nil {
		return errors.Wrap(doErr, "do request")
	}

	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			err = errors.Wrap(closeErr, "close response body")
		}
	}()

	if resp.StatusCode != http.StatusOK {
		return NewStatusCodeError(resp.StatusCode)
	}

	raw, readErr := io.ReadAll(resp.Body)
	if readErr != nil {
		return errors.Wrap(readErr, "read response body")
	}
	if unmarshalErr := json.Unmarshal(raw, out); unmarshalErr != nil {
		return errors.Wrap(unmarshalErr, "unmarshal response")
	}
	return nil
}

type StatusCodeError struct {
	Code int
}

func NewStatusCodeError(code int) *StatusCodeError {
	return &StatusCodeError{Code: code}
}

func (e *StatusCodeError) Error() string {
	return fmt.Sprintf("Unexpected status code %d", e.Code)
}
