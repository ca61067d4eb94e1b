package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Dashboard(ctx context.Context) error
	History(ctx context.Context, args []string) error
	Transfer(ctx context.Context) error
	Deposit(ctx context.Context) error
	Withdraw(ctx context.Context) error
	Profile(ctx context.Context) error
	UpdateProfile(ctx context.Context) error
	Status(ctx context.Context) error
}

// runREPL starts a read-eval-print loop for the banking CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Commands:
//
//	Not logged in:
//	  - help           - show available commands
//	  - register       - create an account
//	  - login          - authenticate
//	  - status         - show session state
//	  - exit | quit    - leave the program
//
//	Logged in:
//	  - dashboard      - balance, recent transactions, income/expense tiles
//	  - history        - full transaction list: history [all|credit|debit] [term]
//	  - transfer       - send funds to another account
//	  - deposit        - credit own account
//	  - withdraw       - debit own account
//	  - profile        - show profile details
//	  - update         - update email / phone / password
//	  - status         - show session state
//	  - logout         - log out
//	  - exit | quit    - leave the program
//
// Any errors returned by command handlers are ignored here; handlers report
// their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("bank %s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: dashboard, history, transfer, deposit, withdraw, profile, update, status, logout, exit")
			} else {
				printlnFn("Available commands: register, login, status, exit")
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "d", "dashboard":
			_ = a.Dashboard(ctx)

		case "h", "history":
			_ = a.History(ctx, args)

		case "t", "transfer":
			_ = a.Transfer(ctx)

		case "deposit":
			_ = a.Deposit(ctx)

		case "withdraw":
			_ = a.Withdraw(ctx)

		case "p", "profile":
			_ = a.Profile(ctx)

		case "update":
			_ = a.UpdateProfile(ctx)

		case "status":
			_ = a.Status(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
