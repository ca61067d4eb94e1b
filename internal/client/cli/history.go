package cli

import (
	"context"
	"fmt"

	"github.com/dberezin/bankcli/internal/client/txview"
)

// History shows the full transaction list, optionally filtered by type and
// searched by amount text: history [all|credit|debit] [term].
func (a *App) History(ctx context.Context, args []string) error {
	if !a.allowProtected() {
		return nil
	}

	st := a.session.State()
	if st.User == nil {
		printlnFn("Profile not loaded yet, transactions unavailable.")
		return nil
	}

	filter := txview.FilterAll
	term := ""
	if len(args) > 0 {
		filter = txview.ParseFilter(args[0])
	}
	if len(args) > 1 {
		term = args[1]
	}

	list, err := a.gw.FetchTransactions(ctx, st.User.AccountNum)
	if err != nil {
		a.reportError(err)
		return err
	}

	shown := txview.Apply(list, filter, term)
	if len(shown) == 0 {
		printlnFn("No transactions found. Try changing your filters or search criteria.")
		return nil
	}

	printlnFn(fmt.Sprintf("%d of %d transactions:", len(shown), len(list)))
	for _, t := range shown {
		printlnFn(fmt.Sprintf("  #%d  %s  %-6s  %12s",
			t.ID, t.Timestamp.Format("2006-01-02 15:04"), t.Type, signedAmount(t)))
	}
	return nil
}
