package cli

import (
	"context"
	"fmt"

	"github.com/dberezin/bankcli/internal/client/models"
	"github.com/dberezin/bankcli/internal/client/txview"
)

func formatAmount(v int64) string {
	return models.FormatMinorUnits(v)
}

func signedAmount(t models.Transaction) string {
	if t.Type == models.TransactionCredit {
		return "+" + formatAmount(t.Amount)
	}
	return "-" + formatAmount(t.Amount)
}

// Dashboard shows the balance, the income/expense tiles over the five most
// recent transactions, and the recent transaction list itself.
func (a *App) Dashboard(ctx context.Context) error {
	if !a.allowProtected() {
		return nil
	}

	balance, err := a.gw.CheckBalance(ctx)
	if err != nil {
		a.reportError(err)
		return err
	}

	st := a.session.State()

	printlnFn("=== Dashboard ===")
	if st.User != nil {
		printlnFn("Account:", st.User.AccountNum)
	}
	printlnFn("Current balance:", formatAmount(balance))

	if st.User == nil {
		// Profile fetch failed right after login; the account number is
		// unknown, so there is no transaction list to show yet.
		name, err := a.gw.FetchUserName(ctx)
		if err == nil && name != "" {
			printlnFn("Hello,", name)
		}
		printlnFn("Profile not loaded yet, transactions unavailable.")
		return nil
	}

	list, err := a.gw.FetchTransactions(ctx, st.User.AccountNum)
	if err != nil {
		a.reportError(err)
		return err
	}

	income, expenses := txview.Summary(list)
	printlnFn("Income (last 5): ", formatAmount(income))
	printlnFn("Expenses (last 5):", formatAmount(expenses))

	recent := txview.Recent(list)
	if len(recent) == 0 {
		printlnFn("No recent transactions found.")
		return nil
	}

	printlnFn("Recent transactions:")
	for _, t := range recent {
		printlnFn(fmt.Sprintf("  %s  %-6s  %12s  %s",
			t.Timestamp.Format("2006-01-02 15:04"), t.Type, signedAmount(t), t.AccountNum))
	}
	return nil
}
