// Package daraja реализует HTTP клиент платежного шлюза мобильных денег:
// инициация STK push и опрос статуса оплаты.
package daraja

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

const (
	RouteStkPush  = "/mpesa/stkpush/v1/processrequest"
	RouteStkQuery = "/mpesa/stkpushquery/v1/query"
)

// resultCodeSuccess код успешного завершения оплаты в ответе шлюза.
const resultCodeSuccess = 0

type pushRequest struct {
	PhoneNumber      string          `json:"PhoneNumber"`
	Amount           decimal.Decimal `json:"Amount"`
	AccountReference string          `json:"AccountReference"`
}

type PushResponse struct {
	MerchantRequestID   string `json:"MerchantRequestID"`
	CheckoutRequestID   string `json:"CheckoutRequestID"`
	ResponseCode        string `json:"ResponseCode"`
	ResponseDescription string `json:"ResponseDescription"`
	CustomerMessage     string `json:"CustomerMessage"`
}

type queryRequest struct {
	CheckoutRequestID string `json:"CheckoutRequestID"`
}

type StatusResponse struct {
	ResultCode int    `json:"ResultCode"`
	ResultDesc string `json:"ResultDesc"`
}

// Completed сообщает, подтвердил ли шлюз оплату. Любой другой код результата означает
// "еще не завершено" и трактуется вызывающей стороной как повод для следующего опроса.
func (s *StatusResponse) Completed() bool {
	return s.ResultCode == resultCodeSuccess
}

// HTTPClient является реализацией интерфейса Client для HTTP запросов к платежному шлюзу.
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

// InitiateStkPush просит шлюз отправить PIN промпт на телефон плательщика. Возвращает
// ответ с опорным CheckoutRequestID для последующего опроса статуса.
func (c HTTPClient) InitiateStkPush(
	ctx context.Context,
	phone string,
	amount decimal.Decimal,
	reference string,
) (*PushResponse, error) {
	var response PushResponse
	err := c.postJSON(ctx, RouteStkPush, pushRequest{
		PhoneNumber:      phone,
		Amount:           amount,
		AccountReference: reference,
	}, &response)
	if err != nil {
		return nil, errors.Wrap(err, "initiate stk push")
	}
	return &response, nil
}

// QueryStatus опрашивает статус ранее инициированной оплаты по CheckoutRequestID.
func (c HTTPClient) QueryStatus(ctx context.Context, checkoutID string) (*StatusResponse, error) {
	var response StatusResponse
	err := c.postJSON(ctx, RouteStkQuery, queryRequest{CheckoutRequestID: checkoutID}, &response)
	if err != nil {
		return nil, errors.Wrap(err, "query stk status")
	}
	return &response, nil
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
