package cli

import (
	"context"
	"os"

	"github.com/dberezin/bankcli/internal/client/transfer"
)

// Deposit credits the user's own account with the prompted amount.
func (a *App) Deposit(ctx context.Context) error {
	return a.moveFunds(ctx, "deposit", a.gw.CreditAccount)
}

// Withdraw debits the user's own account with the prompted amount.
func (a *App) Withdraw(ctx context.Context) error {
	return a.moveFunds(ctx, "withdraw", a.gw.DebitAccount)
}

func (a *App) moveFunds(ctx context.Context, verb string, op func(context.Context, string, int64) (string, error)) error {
	if !a.allowProtected() {
		return nil
	}

	st := a.session.State()
	if st.User == nil {
		printlnFn("Profile not loaded yet, account number unknown.")
		return nil
	}

	amountText, err := getSimpleText(a.reader, "Enter amount to "+verb, os.Stdout)
	if err != nil {
		return err
	}

	amount, err := transfer.ParseAmount(amountText)
	if err != nil {
		printlnFn("Error:", err.Error())
		return err
	}

	receipt, err := op(ctx, st.User.AccountNum, amount)
	if err != nil {
		a.reportError(err)
		return err
	}

	printlnFn("Done:", receipt)
	return nil
}
