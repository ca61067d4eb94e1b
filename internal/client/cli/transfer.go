package cli

import (
	"context"
	"os"

	"github.com/dberezin/bankcli/internal/client/transfer"
)

// Transfer prompts for a destination and amount, validates the request
// client-side, and submits it. A failed validation never reaches the network;
// a failed transfer leaves local state unchanged.
func (a *App) Transfer(ctx context.Context) error {
	if !a.allowProtected() {
		return nil
	}

	st := a.session.State()
	own := ""
	if st.User != nil {
		own = st.User.AccountNum
	}

	toAccount, err := getSimpleText(a.reader, "Enter recipient account number", os.Stdout)
	if err != nil {
		return err
	}
	amountText, err := getSimpleText(a.reader, "Enter amount", os.Stdout)
	if err != nil {
		return err
	}

	req, err := transfer.Validate(toAccount, amountText, own)
	if err != nil {
		printlnFn("Error:", err.Error())
		return err
	}

	receipt, err := a.gw.TransferFunds(ctx, req.ToAccount, req.Amount)
	if err != nil {
		a.reportError(err)
		return err
	}

	printlnFn("Transfer successful:", receipt)
	return nil
}
