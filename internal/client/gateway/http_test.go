package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dberezin/bankcli/internal/client/models"
	"github.com/dberezin/bankcli/internal/logging"
)

// staticTokens is a TokenSource with a fixed answer.
type staticTokens struct {
	token string
	err   error
}

func (s *staticTokens) Token(ctx context.Context) (string, error) { return s.token, s.err }

func testLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func newClient(t *testing.T, srv *httptest.Server, token string) *HTTPClient {
	t.Helper()
	return NewHTTPClient(srv.URL, &staticTokens{token: token}, testLogger())
}

func TestLogin_PlainTextToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/user/login", r.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Equal(t, "a@b.c", body["email"])
		require.Equal(t, "secret", body["password"])

		fmt.Fprint(w, "tok-123")
	}))
	defer srv.Close()

	c := newClient(t, srv, "")
	token, err := c.Login(context.Background(), "a@b.c", "secret")
	require.NoError(t, err)
	require.Equal(t, "tok-123", token)
}

func TestDo_AttachesBearerAndRequestID(t *testing.T) {
	var gotAuth, gotReqID string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotReqID = r.Header.Get("X-Request-Id")
		fmt.Fprint(w, "42")
	}))
	defer srv.Close()

	c := newClient(t, srv, "tok-xyz")
	_, err := c.CheckBalance(context.Background())
	require.NoError(t, err)
	require.Equal(t, "Bearer tok-xyz", gotAuth)
	require.NotEmpty(t, gotReqID)
}

func TestDo_NoTokenMeansNoAuthHeader(t *testing.T) {
	var gotAuth string
	seen := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		seen = true
		fmt.Fprint(w, "0")
	}))
	defer srv.Close()

	c := newClient(t, srv, "")
	_, err := c.CheckBalance(context.Background())
	require.NoError(t, err)
	require.True(t, seen)
	require.Empty(t, gotAuth)
}

func TestDo_RejectionCarriesStatusAndBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		fmt.Fprint(w, "Invalid credentials")
	}))
	defer srv.Close()

	c := newClient(t, srv, "")
	_, err := c.Login(context.Background(), "a@b.c", "wrong")
	require.Error(t, err)

	apiErr, ok := AsAPIError(err)
	require.True(t, ok)
	require.Equal(t, http.StatusUnauthorized, apiErr.Status)
	require.Equal(t, "Invalid credentials", apiErr.Message)
	require.False(t, apiErr.Transport())
}

func TestDo_RejectionWithEmptyBodyUsesFallbackMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := newClient(t, srv, "")
	_, err := c.FetchUserDetails(context.Background())

	apiErr, ok := AsAPIError(err)
	require.True(t, ok)
	require.Equal(t, http.StatusInternalServerError, apiErr.Status)
	require.Equal(t, "An error occurred", apiErr.Message)
}

func TestDo_NoResponseYieldsStatusZero(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // nothing is listening anymore

	c := NewHTTPClient(srv.URL, &staticTokens{}, testLogger())
	_, err := c.CheckBalance(context.Background())

	apiErr, ok := AsAPIError(err)
	require.True(t, ok)
	require.Equal(t, 0, apiErr.Status)
	require.Equal(t, "No response from server. Please check your connection.", apiErr.Message)
	require.True(t, apiErr.Transport())
}

func TestDo_UndecodableSuccessBodyKeepsResponseStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"broken`)
	}))
	defer srv.Close()

	c := newClient(t, srv, "tok")
	_, err := c.FetchTransactions(context.Background(), "1234567890")

	apiErr, ok := AsAPIError(err)
	require.True(t, ok)
	require.Equal(t, http.StatusOK, apiErr.Status, "a response arrived, so this is not a transport failure")
	require.Equal(t, "Malformed response from server.", apiErr.Message)
	require.False(t, apiErr.Transport())
}

func TestFetchTransactions_DecodesList(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/transaction/transaction-list", r.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Equal(t, "1234567890", body["accountNum"])

		fmt.Fprint(w, `[
			{"id":2,"accountNum":"1234567890","amount":200,"transactionType":"CREDIT","timeStamp":"2025-06-02T10:00:00Z"},
			{"id":1,"accountNum":"1234567890","amount":50,"transactionType":"DEBIT","timeStamp":"2025-06-01T10:00:00Z"}
		]`)
	}))
	defer srv.Close()

	c := newClient(t, srv, "tok")
	list, err := c.FetchTransactions(context.Background(), "1234567890")
	require.NoError(t, err)
	require.Len(t, list, 2)
	require.Equal(t, int64(2), list[0].ID)
	require.Equal(t, models.TransactionCredit, list[0].Type)
	require.Equal(t, int64(200), list[0].Amount)
	require.Equal(t, models.TransactionDebit, list[1].Type)
}

func TestTransferFunds_SendsBodyAndReturnsReceipt(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/user/transfer-fund", r.URL.Path)

		var body struct {
			ToAccount string `json:"toAccount"`
			Amount    int64  `json:"amount"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Equal(t, "987", body.ToAccount)
		require.Equal(t, int64(150), body.Amount)

		fmt.Fprint(w, "Fund transferred successfully")
	}))
	defer srv.Close()

	c := newClient(t, srv, "tok")
	receipt, err := c.TransferFunds(context.Background(), "987", 150)
	require.NoError(t, err)
	require.Equal(t, "Fund transferred successfully", receipt)
}

func TestUpdateUserDetails_ReturnsProfile(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		data, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		// only the supplied field is sent
		require.JSONEq(t, `{"phoneNum":"555"}`, string(data))

		fmt.Fprint(w, `{"firstName":"Ada","lastName":"L","email":"a@b.c","phoneNum":"555","accountNum":"1"}`)
	}))
	defer srv.Close()

	phone := "555"
	c := newClient(t, srv, "tok")
	profile, err := c.UpdateUserDetails(context.Background(), models.ProfileUpdate{PhoneNum: &phone})
	require.NoError(t, err)
	require.Equal(t, "555", profile.PhoneNum)
	require.Equal(t, "Ada", profile.FirstName)
}

func TestAsAPIError_NonAPIError(t *testing.T) {
	_, ok := AsAPIError(errors.New("plain"))
	require.False(t, ok)
}
