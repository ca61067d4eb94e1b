package cli

import (
	"github.com/dberezin/bankcli/internal/client/gateway"
	"github.com/dberezin/bankcli/internal/client/guard"
)

// allowProtected asks the route guard whether a protected screen may render.
// A deferred decision (startup restoration still in flight) renders nothing
// rather than bouncing an already-authenticated user to the login prompt.
func (a *App) allowProtected() bool {
	switch guard.Check(a.session.State()) {
	case guard.DecisionAllow:
		return true
	case guard.DecisionDefer:
		printlnFn("Restoring session, try again in a moment.")
		return false
	default:
		printlnFn("Please login first (command: login).")
		return false
	}
}

// reportError surfaces a failure to the user. Gateway failures show the
// normalized message as-is; local state is left unchanged by callers.
func (a *App) reportError(err error) {
	if apiErr, ok := gateway.AsAPIError(err); ok {
		printlnFn("Error:", apiErr.Message)
		return
	}
	printlnFn("Error:", err.Error())
}
