// Package gateway is the single chokepoint for all calls to the remote
// banking API. It attaches the bearer credential to outgoing requests and
// normalizes every failure into *APIError.
package gateway

import (
	"context"

	"github.com/dberezin/bankcli/internal/client/models"
)

// Client is the remote banking API surface consumed by the rest of the
// client. Every method performs a single request attempt; all failures are
// reported as *APIError.
type Client interface {
	// Login exchanges credentials for a bearer token.
	Login(ctx context.Context, email, password string) (string, error)

	// Register creates a new user. It does not establish a session.
	Register(ctx context.Context, reg models.Registration) error

	// FetchUserDetails returns the profile of the authenticated user.
	FetchUserDetails(ctx context.Context) (*models.UserProfile, error)

	// UpdateUserDetails applies a partial profile update and returns the
	// resulting profile. Absent fields are left untouched server-side.
	UpdateUserDetails(ctx context.Context, upd models.ProfileUpdate) (*models.UserProfile, error)

	// FetchUserName returns the authenticated user's display name.
	FetchUserName(ctx context.Context) (string, error)

	// CheckBalance returns the current balance in minor units.
	CheckBalance(ctx context.Context) (int64, error)

	// FetchTransactions returns the transactions of the given account,
	// most recent first (server-defined ordering).
	FetchTransactions(ctx context.Context, accountNum string) ([]models.Transaction, error)

	// TransferFunds moves amount minor units to another account and returns
	// the server's receipt. Business validation is the server's job; callers
	// run client-side checks beforehand.
	TransferFunds(ctx context.Context, toAccount string, amount int64) (string, error)

	// CreditAccount deposits amount minor units into an account.
	CreditAccount(ctx context.Context, accountNum string, amount int64) (string, error)

	// DebitAccount withdraws amount minor units from an account.
	DebitAccount(ctx context.Context, accountNum string, amount int64) (string, error)
}
