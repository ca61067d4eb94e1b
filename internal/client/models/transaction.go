package models

import (
	"fmt"
	"time"
)

// TransactionType classifies a ledger movement from the account's point of view.
type TransactionType string

const (
	TransactionCredit TransactionType = "CREDIT"
	TransactionDebit  TransactionType = "DEBIT"
)

// Transaction is one ledger movement as returned by the server.
// Amount is a positive value in minor currency units. Transactions are
// immutable once received; ordering is server-defined, most recent first.
type Transaction struct {
	ID         int64           `json:"id"`
	AccountNum string          `json:"accountNum"`
	Amount     int64           `json:"amount"`
	Type       TransactionType `json:"transactionType"`
	Timestamp  time.Time       `json:"timeStamp"`
}

// FormatMinorUnits renders an amount in minor units as its decimal form:
// 1050 -> "10.50". This is the representation shown on screens and matched
// by the history search.
func FormatMinorUnits(v int64) string {
	return fmt.Sprintf("%d.%02d", v/100, v%100)
}

// AmountText returns the decimal form of the transaction's amount, the
// representation the history search matches against.
func (t Transaction) AmountText() string {
	return FormatMinorUnits(t.Amount)
}
