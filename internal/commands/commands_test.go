package commands

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cleared-dev/spliit/internal/config"
)

// isolate runs the test in an empty directory with SPLIIT_* cleared.
func isolate(t *testing.T) {
	t.Helper()
	for _, k := range []string{config.EnvGroupID, config.EnvBaseURL, config.EnvTimeout, config.EnvMaxPages, config.EnvLogLevel} {
		t.Setenv(k, "")
	}
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })
}

func runSpliit(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := NewRootCommand()
	cmd.SetArgs(args)
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	err := cmd.Execute()
	return out.String(), err
}

const groupResponse = `[{"result":{"data":{"json":{"group":{"id":"g1","name":"Trip","currency":"R$","participants":[{"id":"p1","name":"John"},{"id":"p2","name":"Jane"}]}}}}},{"result":{"data":{"json":{}}}}]`

const expensesResponse = `[{"result":{"data":{"json":{"hasMore":false,"expenses":[
 {"id":"e1","title":"Dinner","amount":5000,"category":{"id":8,"grouping":"Food and Drink","name":"Dining Out"},
  "paidBy":{"id":"p1","name":"John"},"paidFor":[{"participant":{"id":"p1","name":"John"},"shares":1},{"participant":{"id":"p2","name":"Jane"},"shares":1}],
  "expenseDate":"2024-11-14T00:00:00.000Z","createdAt":"2024-11-14T22:26:58.244Z","splitMode":"EVENLY","isReimbursement":false},
 {"id":"e2","title":"Taxi","amount":1250,"category":{"id":35,"grouping":"Transportation","name":"Taxi"},
  "paidBy":{"id":"p2","name":"Jane"},"paidFor":[{"participant":{"id":"p2","name":"Jane"},"shares":1}],
  "expenseDate":"2024-11-13T00:00:00.000Z","createdAt":"2024-11-13T10:00:00.000Z","splitMode":"EVENLY","isReimbursement":false}
]}}}}]`

type fakeServer struct {
	*httptest.Server
	created []map[string]any
}

func newFakeServer(t *testing.T) *fakeServer {
	f := &fakeServer{}
	f.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case strings.HasSuffix(r.URL.Path, "/groups.get,groups.getDetails"):
			_, _ = io.WriteString(w, groupResponse)
		case strings.HasSuffix(r.URL.Path, "/groups.expenses.list"):
			_, _ = io.WriteString(w, expensesResponse)
		case strings.HasSuffix(r.URL.Path, "/groups.expenses.create"):
			var body map[string]any
			_ = json.NewDecoder(r.Body).Decode(&body)
			f.created = append(f.created, body)
			_, _ = io.WriteString(w, `[{"result":{"data":{"json":{"expenseId":"new"}}}}]`)
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(f.Close)
	return f
}

func (f *fakeServer) args(args ...string) []string {
	return append([]string{"--group", "g1", "--base-url", f.URL + "/api/trpc", "--log-level", "error"}, args...)
}

func createdForm(t *testing.T, body map[string]any) map[string]any {
	t.Helper()
	slot, ok := body["0"].(map[string]any)
	require.True(t, ok)
	return slot["json"].(map[string]any)["expenseFormValues"].(map[string]any)
}

func TestGroup(t *testing.T) {
	isolate(t)
	f := newFakeServer(t)

	out, err := runSpliit(t, f.args("group")...)
	require.NoError(t, err)
	assert.Contains(t, out, "Trip (R$)")
	assert.Contains(t, out, "John")
	assert.Contains(t, out, "p2")
}

func TestParticipants_SortedByName(t *testing.T) {
	isolate(t)
	f := newFakeServer(t)

	out, err := runSpliit(t, f.args("participants")...)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "Jane"))
	assert.True(t, strings.HasSuffix(lines[0], "p2"))
	assert.True(t, strings.HasPrefix(lines[1], "John"))
}

func TestExpenses_Table(t *testing.T) {
	isolate(t)
	f := newFakeServer(t)

	out, err := runSpliit(t, f.args("expenses")...)
	require.NoError(t, err)
	assert.Contains(t, out, "DATE")
	assert.Contains(t, out, "Food and Drink/Dining Out")
	assert.Contains(t, out, "50.00")
	assert.Contains(t, out, "12.50")
	assert.Contains(t, out, "John:1;Jane:1")
}

func TestExpenses_LimitAndCSV(t *testing.T) {
	isolate(t)
	f := newFakeServer(t)

	out, err := runSpliit(t, f.args("expenses", "--limit", "1", "--csv")...)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2, "header plus one expense")
	assert.True(t, strings.HasPrefix(lines[1], "e1,2024-11-14,Dinner,"))
}

func TestExpenses_MissingGroup(t *testing.T) {
	isolate(t)

	_, err := runSpliit(t, "expenses")
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrMissingGroupID)
}

func TestExpenses_GroupFromConfigFile(t *testing.T) {
	isolate(t)
	f := newFakeServer(t)
	cfg := fmt.Sprintf("group_id: g1\nbase_url: %s/api/trpc\nlog_level: error\n", f.URL)
	require.NoError(t, os.WriteFile(config.DefaultPath, []byte(cfg), 0o644))

	out, err := runSpliit(t, "expenses", "--limit", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "Taxi")
}

func TestAdd(t *testing.T) {
	isolate(t)
	f := newFakeServer(t)

	out, err := runSpliit(t, f.args("add",
		"--title", "Dinner",
		"--paid-by", "John",
		"--for", "John:50", "--for", "Jane:50",
		"--amount", "50.00",
		"--category", "Food and Drink/Dining Out")...)
	require.NoError(t, err)
	assert.Contains(t, out, `Added "Dinner"`)

	require.Len(t, f.created, 1)
	form := createdForm(t, f.created[0])
	assert.Equal(t, float64(5000), form["amount"])
	assert.Equal(t, float64(8), form["category"])
	assert.Equal(t, "p1", form["paidBy"])
	assert.Equal(t, []any{
		map[string]any{"participant": "p1", "shares": float64(50)},
		map[string]any{"participant": "p2", "shares": float64(50)},
	}, form["paidFor"])
}

func TestAdd_DefaultsToEveryone(t *testing.T) {
	isolate(t)
	f := newFakeServer(t)

	_, err := runSpliit(t, f.args("add", "--title", "Snacks", "--paid-by", "Jane", "--amount", "3")...)
	require.NoError(t, err)

	form := createdForm(t, f.created[0])
	assert.Equal(t, float64(0), form["category"])
	assert.Equal(t, []any{
		map[string]any{"participant": "p2", "shares": float64(1)},
		map[string]any{"participant": "p1", "shares": float64(1)},
	}, form["paidFor"])
}

func TestAdd_DryRun(t *testing.T) {
	isolate(t)
	f := newFakeServer(t)

	out, err := runSpliit(t, f.args("add", "--title", "Taxi", "--paid-by", "p2", "--amount", "12.5", "--category", "Taxi", "--dry-run")...)
	require.NoError(t, err)
	assert.Empty(t, f.created, "dry run sends nothing")

	var body map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &body))
	form := createdForm(t, body)
	assert.Equal(t, float64(1250), form["amount"])
	assert.Equal(t, float64(35), form["category"])
}

func TestAdd_Errors(t *testing.T) {
	isolate(t)
	f := newFakeServer(t)

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"unknown payer", []string{"--paid-by", "Bob", "--amount", "1"}, `unknown participant "Bob"`},
		{"bad amount", []string{"--paid-by", "John", "--amount", "1.234"}, "two decimal places"},
		{"bad category", []string{"--paid-by", "John", "--amount", "1", "--category", "Yachts"}, "unknown category"},
		{"bad shares", []string{"--paid-by", "John", "--amount", "1", "--for", "Jane:x"}, "parsing shares"},
		{"zero shares", []string{"--paid-by", "John", "--amount", "1", "--for", "Jane:0"}, "non-positive shares"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := append([]string{"add", "--title", "X"}, tt.args...)
			_, err := runSpliit(t, f.args(args...)...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
	assert.Empty(t, f.created)
}

func TestAdd_RequiresFlags(t *testing.T) {
	isolate(t)
	_, err := runSpliit(t, "add", "--title", "X")
	require.Error(t, err)
}

func TestCategories(t *testing.T) {
	out, err := runSpliit(t, "categories")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Len(t, lines, 43)
	assert.Contains(t, lines[8], "Dining Out")
	assert.True(t, strings.HasPrefix(lines[8], "8 "))
}

func TestConfigInit(t *testing.T) {
	isolate(t)

	out, err := runSpliit(t, "--group", "g42", "config", "init")
	require.NoError(t, err)
	assert.Contains(t, out, "Wrote "+config.DefaultPath)

	cfg, err := config.Load(config.DefaultPath)
	require.NoError(t, err)
	assert.Equal(t, "g42", cfg.GroupID)

	_, err = runSpliit(t, "config", "init")
	require.Error(t, err, "refuses to overwrite")
	assert.Contains(t, err.Error(), "already exists")

	_, err = runSpliit(t, "config", "init", "--force")
	require.NoError(t, err)
}

func TestConfigInit_CustomPath(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "custom.yaml")

	_, err := runSpliit(t, "config", "init", path)
	require.NoError(t, err)
	_, err = os.Stat(path)
	require.NoError(t, err)
}

func TestConfigInit_UsesConfigFlag(t *testing.T) {
	isolate(t)

	_, err := runSpliit(t, "--config", "team.yaml", "--group", "g7", "config", "init")
	require.NoError(t, err)

	cfg, err := config.Load("team.yaml")
	require.NoError(t, err)
	assert.Equal(t, "g7", cfg.GroupID)
	_, err = os.Stat(config.DefaultPath)
	assert.ErrorIs(t, err, os.ErrNotExist)

	out, err := runSpliit(t, "--config", "team.yaml", "config", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "group_id: g7")
}

func TestConfigShow_EnvOverridesFile(t *testing.T) {
	isolate(t)
	require.NoError(t, os.WriteFile(config.DefaultPath, []byte("group_id: file-group\n"), 0o644))
	t.Setenv(config.EnvGroupID, "env-group")

	out, err := runSpliit(t, "config", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "group_id: env-group")
	assert.Contains(t, out, "max_pages: 1000")

	out, err = runSpliit(t, "--group", "flag-group", "config", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "group_id: flag-group")
}
