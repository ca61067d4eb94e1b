package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// captureOutput redirects printlnFn into a slice for the duration of the test.
func captureOutput(t *testing.T) *[]string {
	t.Helper()
	orig := printlnFn
	lines := &[]string{}
	printlnFn = func(args ...any) (int, error) {
		*lines = append(*lines, strings.TrimRight(fmt.Sprintln(args...), "\n"))
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = orig })
	return lines
}

type fakeExec struct {
	loggedIn    bool
	calls       []string
	historyArgs []string
}

func (f *fakeExec) record(name string) error {
	f.calls = append(f.calls, name)
	return nil
}

func (f *fakeExec) isLoggedIn() bool                    { return f.loggedIn }
func (f *fakeExec) Register(context.Context) error      { return f.record("register") }
func (f *fakeExec) Login(context.Context) error         { return f.record("login") }
func (f *fakeExec) Logout(context.Context) error        { return f.record("logout") }
func (f *fakeExec) Dashboard(context.Context) error     { return f.record("dashboard") }
func (f *fakeExec) Transfer(context.Context) error      { return f.record("transfer") }
func (f *fakeExec) Deposit(context.Context) error       { return f.record("deposit") }
func (f *fakeExec) Withdraw(context.Context) error      { return f.record("withdraw") }
func (f *fakeExec) Profile(context.Context) error       { return f.record("profile") }
func (f *fakeExec) UpdateProfile(context.Context) error { return f.record("update") }
func (f *fakeExec) Status(context.Context) error        { return f.record("status") }

func (f *fakeExec) History(_ context.Context, args []string) error {
	f.historyArgs = args
	return f.record("history")
}

func runScript(t *testing.T, f *fakeExec, script string) []string {
	t.Helper()
	lines := captureOutput(t)
	scanner := bufio.NewScanner(strings.NewReader(script))
	runREPL(context.Background(), f, func() string { return "" }, scanner)
	return *lines
}

func TestRunREPL_Dispatch(t *testing.T) {
	f := &fakeExec{loggedIn: true}

	out := runScript(t, f, "login\ndashboard\nhistory credit 10\nlogout\nexit\n")

	assert.Equal(t, []string{"login", "dashboard", "history", "logout"}, f.calls)
	assert.Equal(t, []string{"credit", "10"}, f.historyArgs)
	require.NotEmpty(t, out)
	assert.Equal(t, "Bye!", out[len(out)-1])
}

func TestRunREPL_Aliases(t *testing.T) {
	f := &fakeExec{loggedIn: true}

	runScript(t, f, "d\nh\nt\np\nquit\n")

	assert.Equal(t, []string{"dashboard", "history", "transfer", "profile"}, f.calls)
	assert.Empty(t, f.historyArgs)
}

func TestRunREPL_UnknownCommand(t *testing.T) {
	f := &fakeExec{}

	out := runScript(t, f, "frobnicate\nexit\n")

	assert.Empty(t, f.calls)
	assert.Contains(t, out, "Unknown command: frobnicate")
}

func TestRunREPL_EmptyLinesIgnored(t *testing.T) {
	f := &fakeExec{}

	out := runScript(t, f, "\n   \nstatus\nexit\n")

	assert.Equal(t, []string{"status"}, f.calls)
	assert.NotContains(t, strings.Join(out, "\n"), "Unknown command")
}

func TestRunREPL_ExitsOnEOF(t *testing.T) {
	f := &fakeExec{}

	out := runScript(t, f, "status\n")

	assert.Equal(t, []string{"status"}, f.calls)
	// no "Bye!" on EOF, the loop just ends
	assert.NotContains(t, out, "Bye!")
}

func TestRunREPL_HelpDependsOnSession(t *testing.T) {
	anon := runScript(t, &fakeExec{loggedIn: false}, "help\nexit\n")
	authed := runScript(t, &fakeExec{loggedIn: true}, "help\nexit\n")

	assert.Contains(t, strings.Join(anon, "\n"), "register, login")
	assert.Contains(t, strings.Join(authed, "\n"), "dashboard, history, transfer")
}

func TestRunREPL_PromptUsesStatus(t *testing.T) {
	lines := captureOutput(t)
	scanner := bufio.NewScanner(strings.NewReader("exit\n"))
	runREPL(context.Background(), &fakeExec{}, func() string { return "(Jane Doe)" }, scanner)

	require.NotEmpty(t, *lines)
	assert.Contains(t, (*lines)[0], "bank (Jane Doe)> ")
}
