package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/dberezin/bankcli/internal/client/models"
	"github.com/dberezin/bankcli/internal/logging"
)

// Endpoint paths of the remote banking API.
const (
	pathLogin           = "/user/login"
	pathRegister        = "/user/register"
	pathFetchUser       = "/user/fetch-user-details"
	pathUpdateUser      = "/user/update-user-details"
	pathGetName         = "/user/get-name"
	pathCheckBalance    = "/user/check-balance"
	pathTransferFund    = "/user/transfer-fund"
	pathCredit          = "/user/credit"
	pathDebit           = "/user/debit"
	pathTransactionList = "/transaction/transaction-list"
)

// TokenSource yields the current bearer token, or "" when none exists.
// The credential repository satisfies this.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

// HTTPClient implements Client over plain HTTP/JSON. A zero timeout is
// deliberate: no operation carries a deadline beyond transport defaults.
type HTTPClient struct {
	baseURL string
	http    *http.Client
	tokens  TokenSource
	log     logging.Logger
}

func NewHTTPClient(baseURL string, tokens TokenSource, log logging.Logger) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{},
		tokens:  tokens,
		log:     log,
	}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type accountRequest struct {
	AccountNum string `json:"accountNum"`
}

type transferRequest struct {
	ToAccount string `json:"toAccount"`
	Amount    int64  `json:"amount"`
}

type amountRequest struct {
	AccountNum string `json:"accountNum"`
	Amount     int64  `json:"amount"`
}

func (c *HTTPClient) Login(ctx context.Context, email, password string) (string, error) {
	var token string
	err := c.do(ctx, http.MethodPost, pathLogin, loginRequest{Email: email, Password: password}, &token)
	if err != nil {
		return "", err
	}
	return token, nil
}

func (c *HTTPClient) Register(ctx context.Context, reg models.Registration) error {
	return c.do(ctx, http.MethodPost, pathRegister, reg, nil)
}

func (c *HTTPClient) FetchUserDetails(ctx context.Context) (*models.UserProfile, error) {
	var profile models.UserProfile
	if err := c.do(ctx, http.MethodGet, pathFetchUser, nil, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

func (c *HTTPClient) UpdateUserDetails(ctx context.Context, upd models.ProfileUpdate) (*models.UserProfile, error) {
	var profile models.UserProfile
	if err := c.do(ctx, http.MethodPost, pathUpdateUser, upd, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

func (c *HTTPClient) FetchUserName(ctx context.Context) (string, error) {
	var name string
	if err := c.do(ctx, http.MethodGet, pathGetName, nil, &name); err != nil {
		return "", err
	}
	return name, nil
}

func (c *HTTPClient) CheckBalance(ctx context.Context) (int64, error) {
	var balance int64
	if err := c.do(ctx, http.MethodPost, pathCheckBalance, nil, &balance); err != nil {
		return 0, err
	}
	return balance, nil
}

func (c *HTTPClient) FetchTransactions(ctx context.Context, accountNum string) ([]models.Transaction, error) {
	var list []models.Transaction
	if err := c.do(ctx, http.MethodPost, pathTransactionList, accountRequest{AccountNum: accountNum}, &list); err != nil {
		return nil, err
	}
	return list, nil
}

func (c *HTTPClient) TransferFunds(ctx context.Context, toAccount string, amount int64) (string, error) {
	var receipt string
	if err := c.do(ctx, http.MethodPost, pathTransferFund, transferRequest{ToAccount: toAccount, Amount: amount}, &receipt); err != nil {
		return "", err
	}
	return receipt, nil
}

func (c *HTTPClient) CreditAccount(ctx context.Context, accountNum string, amount int64) (string, error) {
	var receipt string
	if err := c.do(ctx, http.MethodPost, pathCredit, amountRequest{AccountNum: accountNum, Amount: amount}, &receipt); err != nil {
		return "", err
	}
	return receipt, nil
}

func (c *HTTPClient) DebitAccount(ctx context.Context, accountNum string, amount int64) (string, error) {
	var receipt string
	if err := c.do(ctx, http.MethodPost, pathDebit, amountRequest{AccountNum: accountNum, Amount: amount}, &receipt); err != nil {
		return "", err
	}
	return receipt, nil
}

// do performs one request attempt and normalizes every failure shape:
//   - request could not be built or serialized: status 0, underlying message;
//   - request sent but no response arrived: status 0, "No response..." message;
//   - non-2xx response: the HTTP status plus the response body;
//   - 2xx response with an undecodable body: the HTTP status plus a
//     malformed-response message.
//
// On success the body is decoded into out (skipped when out is nil). A
// *string out accepts both a JSON string and a plain-text body, since the
// server answers token and receipt endpoints with raw text.
func (c *HTTPClient) do(ctx context.Context, method, path string, body any, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return sendFailure(err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return sendFailure(err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-Id", uuid.NewString())

	if c.tokens != nil {
		token, err := c.tokens.Token(ctx)
		if err != nil {
			c.log.Warn(ctx, "failed to read stored credential", "error", err)
		} else if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return noResponse()
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return noResponse()
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return rejection(resp.StatusCode, data)
	}

	if out == nil {
		return nil
	}

	if s, ok := out.(*string); ok {
		if err := json.Unmarshal(data, s); err != nil {
			*s = strings.TrimSpace(string(data))
		}
		return nil
	}

	if err := json.Unmarshal(data, out); err != nil {
		c.log.Warn(ctx, "failed to decode response body", "path", path, "error", err)
		return badResponse(resp.StatusCode)
	}
	return nil
}
