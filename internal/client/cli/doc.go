// Package cli implements the interactive terminal client: a REPL that drives
// the session manager and the banking gateway, with one command per screen
// (dashboard, history, transfer, profile, ...). Protected screens consult the
// route guard before rendering.
package cli
