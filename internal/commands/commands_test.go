package commands_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spendlog-dev/spendlog/internal/commands"
	"github.com/spendlog-dev/spendlog/internal/config"
	"github.com/spendlog-dev/spendlog/internal/importlog"
	"github.com/spendlog-dev/spendlog/internal/ledger"
)

// env is a scratch directory holding the config and the store for one test.
type env struct {
	dir   string
	store string
}

func newEnv(t *testing.T) *env {
	t.Helper()
	dir := t.TempDir()
	return &env{dir: dir, store: filepath.Join(dir, "transactions.csv")}
}

func (e *env) path(name string) string {
	return filepath.Join(e.dir, name)
}

// run executes the CLI in-process with stdin set to in.
func (e *env) run(t *testing.T, in string, args ...string) (string, error) {
	t.Helper()
	cmd := commands.NewRootCommand()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetIn(strings.NewReader(in))
	cmd.SetArgs(append([]string{"--config", e.path("spendlog.yaml"), "--store", e.store}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func (e *env) mustRun(t *testing.T, args ...string) string {
	t.Helper()
	out, err := e.run(t, "", args...)
	require.NoError(t, err, "spendlog %s", strings.Join(args, " "))
	return out
}

func (e *env) seed(t *testing.T) {
	t.Helper()
	e.mustRun(t, "add", "--date", "2025-01-10", "--category", "Food", "--amount", "10", "--description", "Lunch")
	e.mustRun(t, "add", "--date", "2025-01-11", "--category", "Food", "--amount", "20", "--description", "Groceries")
	e.mustRun(t, "add", "--date", "2025-01-12", "--category", "Transport", "--amount", "5", "--description", "Bus")
}

func TestInit_CreatesThenFinds(t *testing.T) {
	e := newEnv(t)

	out := e.mustRun(t, "init")
	assert.Contains(t, out, "Created new transactions file: "+e.store)

	data, err := os.ReadFile(e.store)
	require.NoError(t, err)
	assert.Equal(t, ledger.Header+"\n", string(data))

	out = e.mustRun(t, "init")
	assert.Contains(t, out, "Found existing transactions file: "+e.store)
}

func TestInit_WriteConfig(t *testing.T) {
	e := newEnv(t)

	out := e.mustRun(t, "init", "--write-config")
	assert.Contains(t, out, "Wrote config file: "+e.path("spendlog.yaml"))

	cfg, err := config.Load(e.path("spendlog.yaml"))
	require.NoError(t, err)
	assert.Equal(t, e.store, cfg.Store.Path)
	assert.Equal(t, config.Default().Categories, cfg.Categories)

	out = e.mustRun(t, "init", "--write-config")
	assert.Contains(t, out, "Config file already exists")
}

func TestAdd_Defaults(t *testing.T) {
	e := newEnv(t)
	e.mustRun(t, "add", "--date", "2025-02-01", "--amount", "12.5")

	data, err := os.ReadFile(e.store)
	require.NoError(t, err)
	assert.Equal(t, ledger.Header+"\n2025-02-01,Other,12.5,No description\n", string(data))
}

func TestAdd_RejectsBadInput(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"zero amount", []string{"--amount", "0"}},
		{"negative amount", []string{"--amount", "-3"}},
		{"text amount", []string{"--amount", "abc"}},
		{"bad date", []string{"--amount", "3", "--date", "01/02/2025"}},
		{"missing amount", []string{"--category", "Food"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newEnv(t)
			_, err := e.run(t, "", append([]string{"add"}, tt.args...)...)
			require.Error(t, err)
			_, statErr := os.Stat(e.store)
			assert.True(t, os.IsNotExist(statErr), "nothing should be written")
		})
	}
}

func TestAdd_CategoryHint(t *testing.T) {
	e := newEnv(t)
	out := e.mustRun(t, "add", "--amount", "4", "--category", "Fod")
	assert.Contains(t, out, `Did you mean "Food"? Keeping "Fod".`)
}

func TestList(t *testing.T) {
	e := newEnv(t)
	assert.Contains(t, e.mustRun(t, "list"), "No transactions found.")

	e.seed(t)
	out := e.mustRun(t, "list")
	assert.Contains(t, out, "2025-01-11")
	assert.Contains(t, out, "$20.00")
	assert.Contains(t, out, "Total transactions: 3")
}

func TestSummary(t *testing.T) {
	e := newEnv(t)
	e.seed(t)

	out := e.mustRun(t, "summary")
	assert.Contains(t, out, "Total Spending: $35.00")
	assert.Contains(t, out, "Top Category: Food")
	assert.Contains(t, out, "85.7%")
	assert.Less(t, strings.Index(out, "Food"), strings.Index(out, "Transport"))
}

func TestAdvise(t *testing.T) {
	e := newEnv(t)
	e.seed(t)

	out := e.mustRun(t, "advise")
	assert.Contains(t, out, "Your dominant spending category: Food")
	assert.Contains(t, out, "1. Cook at home more often")
}

func TestChart(t *testing.T) {
	e := newEnv(t)
	e.seed(t)

	pdf := e.path(filepath.Join("out", "chart.pdf"))
	out := e.mustRun(t, "chart", "--out", pdf)
	assert.Contains(t, out, "Chart saved as: "+pdf)

	data, err := os.ReadFile(pdf)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF-")))
}

func TestExport(t *testing.T) {
	e := newEnv(t)
	e.seed(t)

	xlsx := e.path("spending.xlsx")
	out := e.mustRun(t, "export", "--out", xlsx)
	assert.Contains(t, out, "Exported 3 transactions to "+xlsx)

	info, err := os.Stat(xlsx)
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}

func TestImport_Chase(t *testing.T) {
	e := newEnv(t)
	src := e.path("chase.csv")
	csv := "Details,Posting Date,Description,Amount,Type,Balance,Check or Slip #\n" +
		"DEBIT,01/03/2025,WHOLE FOODS MARKET,-54.20,DEBIT_CARD,1945.80,\n" +
		"CREDIT,01/15/2025,PAYROLL,2500.00,ACH_CREDIT,4445.80,\n" +
		"DEBIT,01/18/2025,\"CINEMA, PLEX\",-15.00,DEBIT_CARD,4430.80,\n"
	require.NoError(t, os.WriteFile(src, []byte(csv), 0o644))

	out := e.mustRun(t, "import", src, "--category", "Imported")
	assert.Contains(t, out, "Imported 2 transactions")
	assert.Contains(t, out, "(1 skipped)")

	data, err := os.ReadFile(e.store)
	require.NoError(t, err)
	assert.Equal(t, ledger.Header+"\n"+
		"2025-01-03,Imported,54.2,WHOLE FOODS MARKET\n"+
		"2025-01-18,Imported,15,\"CINEMA, PLEX\"\n", string(data))

	_, err = e.run(t, "", "import", src)
	require.ErrorIs(t, err, importlog.ErrAlreadyImported)

	out = e.mustRun(t, "import", src, "--force")
	assert.Contains(t, out, "Imported 2 transactions")

	entries, err := importlog.ForStore(e.store).Read()
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "chase.csv", entries[0].File)
	assert.Equal(t, 1, entries[0].Skipped)
}

func TestImport_UnknownFormat(t *testing.T) {
	e := newEnv(t)
	src := e.path("bank.csv")
	require.NoError(t, os.WriteFile(src, []byte("x\n"), 0o644))

	_, err := e.run(t, "", "import", src, "--format", "ofx")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "chase, generic")
}

func TestCorruptStore(t *testing.T) {
	e := newEnv(t)
	require.NoError(t, os.WriteFile(e.store, []byte(ledger.Header+"\n2025-01-01,Food,lots,x\n"), 0o644))

	_, err := e.run(t, "", "summary")
	var pe *ledger.ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, 2, pe.Row)
}

func TestConfigFile(t *testing.T) {
	e := newEnv(t)
	store := e.path("from-config.csv")
	cfg := "store:\n  path: " + store + "\ncategories: [Groceries, Rent]\n"
	require.NoError(t, os.WriteFile(e.path("spendlog.yaml"), []byte(cfg), 0o644))

	cmd := commands.NewRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"--config", e.path("spendlog.yaml"), "add", "--amount", "9", "--category", "Grocries"})
	require.NoError(t, cmd.Execute())

	assert.Contains(t, out.String(), `Did you mean "Groceries"?`)
	_, err := os.Stat(store)
	assert.NoError(t, err, "store path comes from the config file")
}

func TestMenu(t *testing.T) {
	e := newEnv(t)
	e.seed(t)

	out, err := e.run(t, "3\n\n6\n")
	require.NoError(t, err)
	assert.Contains(t, out, "Found existing transactions file")
	assert.Contains(t, out, "Total Spending: $35.00")
	assert.Contains(t, out, "Thank you for using spendlog!")

	out, err = e.run(t, "", "menu")
	require.NoError(t, err, "EOF ends the menu")
	assert.Contains(t, out, "PERSONAL FINANCE TRACKER")
}

func TestVersion(t *testing.T) {
	e := newEnv(t)
	out := e.mustRun(t, "--version")
	assert.Contains(t, out, "dev (commit: none")
}
