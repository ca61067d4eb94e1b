package cli

import (
	"context"
)

// Status reports the session phase and, when a token is stored, its
// display-only claims. The token stays authoritative on the server side;
// nothing here validates it.
func (a *App) Status(ctx context.Context) error {
	st := a.session.State()
	printlnFn("Session phase:", string(st.Phase()))

	if st.User != nil {
		printlnFn("User:", st.User.FullName(), "<"+st.User.Email+">")
	}

	if !st.Authenticated {
		return nil
	}

	token, err := a.session.TokenInfo(ctx)
	if err != nil {
		return nil
	}
	if token.Subject != "" {
		printlnFn("Token subject:", token.Subject)
	}
	if !token.ExpiresAt.IsZero() {
		printlnFn("Token expires:", token.ExpiresAt.Format("2006-01-02 15:04:05"))
	}
	return nil
}
