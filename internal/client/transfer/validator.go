// Package transfer holds the client-side business-rule checks applied to a
// transfer request before it is handed to the gateway. These are advisory
// checks only: the remote service stays the authority on limits, account
// existence and sufficient funds.
package transfer

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

var (
	ErrMissingFields = errors.New("destination account and amount are required")
	ErrInvalidAmount = errors.New("amount must be a number greater than 0")
	ErrOwnAccount    = errors.New("cannot transfer funds to your own account")
)

// Request is a validated transfer, alive only for one submit cycle.
type Request struct {
	ToAccount string
	Amount    int64
}

// ParseAmount converts the user's decimal amount text into minor units:
// "10.50" -> 1050, "10.5" -> 1050, "10" -> 1000. At most two fraction digits
// are accepted; precision below the minor unit, non-numeric input and values
// not strictly greater than zero are rejected. Digits are parsed directly
// rather than through a float, so large amounts do not lose precision.
func ParseAmount(text string) (int64, error) {
	text = strings.TrimSpace(text)

	intPart, fracPart, _ := strings.Cut(text, ".")
	if intPart == "" && fracPart == "" {
		return 0, ErrInvalidAmount
	}
	if len(fracPart) > 2 {
		return 0, ErrInvalidAmount
	}
	for _, r := range intPart + fracPart {
		if r < '0' || r > '9' {
			return 0, ErrInvalidAmount
		}
	}

	var major int64
	if intPart != "" {
		v, err := strconv.ParseInt(intPart, 10, 64)
		if err != nil {
			return 0, ErrInvalidAmount
		}
		major = v
	}

	var frac int64
	if fracPart != "" {
		if len(fracPart) == 1 {
			fracPart += "0"
		}
		v, err := strconv.ParseInt(fracPart, 10, 64)
		if err != nil {
			return 0, ErrInvalidAmount
		}
		frac = v
	}

	if major > (math.MaxInt64-frac)/100 {
		return 0, ErrInvalidAmount
	}
	amount := major*100 + frac
	if amount <= 0 {
		return 0, ErrInvalidAmount
	}
	return amount, nil
}

// Validate runs the ordered checks, short-circuiting on the first failure:
//
//  1. destination and amount are both present;
//  2. the amount parses to a positive decimal with at most two fraction digits;
//  3. the destination is not the user's own account.
//
// A failing check never reaches the network.
func Validate(toAccount, amountText, ownAccount string) (Request, error) {
	toAccount = strings.TrimSpace(toAccount)
	amountText = strings.TrimSpace(amountText)

	if toAccount == "" || amountText == "" {
		return Request{}, ErrMissingFields
	}

	amount, err := ParseAmount(amountText)
	if err != nil {
		return Request{}, err
	}

	if toAccount == ownAccount {
		return Request{}, ErrOwnAccount
	}

	return Request{ToAccount: toAccount, Amount: amount}, nil
}
