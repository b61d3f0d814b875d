package spliit

import (
	"context"
	"errors"
	"fmt"

	"github.com/cleared-dev/spliit/internal/model"
	"github.com/cleared-dev/spliit/internal/trpc"
)

const procListExpenses = "groups.expenses.list"

// cursorStep advances the cursor when the server omits nextCursor.
const cursorStep = 10

// ErrPageLimit is returned when Expenses reaches its page cap while the server
// still reports more data.
var ErrPageLimit = errors.New("spliit: expense page limit reached")

// ListOptions controls Expenses.
type ListOptions struct {
	// Limit is the maximum number of expenses to return; <= 0 means all.
	Limit int
	// MaxPages overrides the client's page cap when > 0.
	MaxPages int
}

type listArgs struct {
	GroupID string `json:"groupId"`
	Cursor  int    `json:"cursor"`
}

type pagePayload struct {
	Expenses   *[]model.Expense `json:"expenses"`
	HasMore    bool             `json:"hasMore"`
	NextCursor *int             `json:"nextCursor"`
}

// Page fetches a single page of expenses starting at cursor.
func (c *Client) Page(ctx context.Context, cursor int) (model.Page, error) {
	var payload pagePayload
	args := listArgs{GroupID: c.groupID, Cursor: cursor}
	if err := c.rpc.Query(ctx, procListExpenses, trpc.NewBatch(trpc.Call{JSON: args}), &payload); err != nil {
		return model.Page{}, err
	}
	if payload.Expenses == nil {
		return model.Page{}, &trpc.MalformedResponseError{Procedure: procListExpenses, Reason: "missing expenses"}
	}
	return model.Page{
		Expenses:   *payload.Expenses,
		HasMore:    payload.HasMore,
		NextCursor: payload.NextCursor,
	}, nil
}

// Expenses returns the group's expenses in server order, following pages
// until the server reports no more data or opts.Limit is reached. Fetching
// stops as soon as the limit is met. The loop is bounded by the page cap and
// by ctx.
func (c *Client) Expenses(ctx context.Context, opts ListOptions) ([]model.Expense, error) {
	maxPages := c.maxPages
	if opts.MaxPages > 0 {
		maxPages = opts.MaxPages
	}

	var all []model.Expense
	cursor := 0
	for pages := 0; ; pages++ {
		if pages >= maxPages {
			return nil, fmt.Errorf("%w after %d pages (%d expenses)", ErrPageLimit, pages, len(all))
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		page, err := c.Page(ctx, cursor)
		if err != nil {
			return nil, fmt.Errorf("fetching expenses at cursor %d: %w", cursor, err)
		}
		all = append(all, page.Expenses...)
		c.logger.DebugContext(ctx, "fetched expense page",
			"cursor", cursor, "count", len(page.Expenses), "total", len(all), "has_more", page.HasMore)

		if opts.Limit > 0 && len(all) >= opts.Limit {
			return all[:opts.Limit], nil
		}
		if !page.HasMore {
			return all, nil
		}

		if page.NextCursor != nil {
			cursor = *page.NextCursor
		} else {
			cursor += cursorStep
		}
	}
}
