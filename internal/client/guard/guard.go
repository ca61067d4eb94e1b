// Package guard decides whether navigation into a protected view is allowed.
package guard

import "github.com/dberezin/bankcli/internal/client/session"

// Decision is the guard's verdict for a protected-view request.
type Decision int

const (
	// DecisionDefer: startup restoration is still in flight; render nothing
	// yet rather than flash-redirecting an already-authenticated user.
	DecisionDefer Decision = iota
	// DecisionAllow: the view may be shown.
	DecisionAllow
	// DecisionRedirectLogin: send the user to the login view.
	DecisionRedirectLogin
)

func (d Decision) String() string {
	switch d {
	case DecisionDefer:
		return "defer"
	case DecisionAllow:
		return "allow"
	default:
		return "redirect-login"
	}
}

// Check maps the current session state to a decision. Pure.
func Check(s session.State) Decision {
	if s.Loading {
		return DecisionDefer
	}
	if s.Authenticated {
		return DecisionAllow
	}
	return DecisionRedirectLogin
}
