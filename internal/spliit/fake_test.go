package spliit

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/cleared-dev/spliit/internal/model"
)

// fakeSpliit is an in-process stand-in for the Spliit tRPC API.
type fakeSpliit struct {
	t *testing.T

	groupJSON string
	expenses  []model.Expense
	pageSize  int

	omitNextCursor bool
	alwaysMore     bool
	failWith       int

	cursors []int
	created []map[string]any
}

func newFake(t *testing.T) *fakeSpliit {
	return &fakeSpliit{
		t:         t,
		groupJSON: `{"id":"g1","name":"Trip","currency":"R$","participants":[{"id":"p1","name":"John"},{"id":"p2","name":"Jane"}]}`,
		pageSize:  10,
	}
}

func (f *fakeSpliit) start() (*Client, *httptest.Server) {
	srv := httptest.NewServer(http.HandlerFunc(f.serve))
	f.t.Cleanup(srv.Close)

	c, err := New(Options{
		GroupID:    "g1",
		BaseURL:    srv.URL + "/api/trpc",
		HTTPClient: srv.Client(),
		Now: func() time.Time {
			return time.Date(2024, 11, 14, 22, 26, 58, 244_000_000, time.UTC)
		},
	})
	require.NoError(f.t, err)
	return c, srv
}

func (f *fakeSpliit) serve(w http.ResponseWriter, r *http.Request) {
	if f.failWith != 0 {
		w.WriteHeader(f.failWith)
		_, _ = io.WriteString(w, `[{"error":{"json":{"message":"fake failure"}}}]`)
		return
	}

	switch strings.TrimPrefix(r.URL.Path, "/api/trpc/") {
	case "groups.get,groups.getDetails":
		fmt.Fprintf(w, `[{"result":{"data":{"json":{"group":%s}}}},{"result":{"data":{"json":{}}}}]`, f.groupJSON)

	case "groups.expenses.list":
		var input map[string]struct {
			JSON listArgs `json:"json"`
		}
		require.NoError(f.t, json.Unmarshal([]byte(r.URL.Query().Get("input")), &input))
		cursor := input["0"].JSON.Cursor
		f.cursors = append(f.cursors, cursor)

		end := min(cursor+f.pageSize, len(f.expenses))
		var page []model.Expense
		if cursor < len(f.expenses) {
			page = f.expenses[cursor:end]
		}
		payload := map[string]any{
			"expenses": append([]model.Expense{}, page...),
			"hasMore":  f.alwaysMore || end < len(f.expenses),
		}
		if !f.omitNextCursor {
			payload["nextCursor"] = end
		}
		writeResult(f.t, w, payload)

	case "groups.expenses.create":
		var body map[string]any
		require.NoError(f.t, json.NewDecoder(r.Body).Decode(&body))
		f.created = append(f.created, body)
		writeResult(f.t, w, map[string]any{"expenseId": "new1"})

	default:
		http.NotFound(w, r)
	}
}

func writeResult(t *testing.T, w io.Writer, payload any) {
	data, err := json.Marshal([]any{map[string]any{"result": map[string]any{"data": map[string]any{"json": payload}}}})
	require.NoError(t, err)
	_, _ = w.Write(data)
}

func makeExpenses(n int) []model.Expense {
	out := make([]model.Expense, n)
	for i := range out {
		out[i] = model.Expense{
			ID:        fmt.Sprintf("e%d", i),
			Title:     fmt.Sprintf("Expense %d", i),
			Amount:    model.Cents(100 * (i + 1)),
			Category:  model.Category{ID: 8, Grouping: "Food and Drink", Name: "Dining Out"},
			PaidBy:    model.Participant{ID: "p1", Name: "John"},
			SplitMode: model.SplitEvenly,
		}
	}
	return out
}

func ids(expenses []model.Expense) []string {
	out := make([]string, len(expenses))
	for i, e := range expenses {
		out[i] = e.ID
	}
	return out
}
