package spliit

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/cleared-dev/spliit/internal/categories"
	"github.com/cleared-dev/spliit/internal/model"
	"github.com/cleared-dev/spliit/internal/trpc"
)

const procCreateExpense = "groups.expenses.create"

// ErrInvalidExpense is returned by AddExpense before any request is made
// when the parameters cannot describe a valid expense.
var ErrInvalidExpense = errors.New("spliit: invalid expense")

// AddExpenseParams holds the fields of a new expense.
type AddExpenseParams struct {
	Title string
	// PaidBy is the payer's participant ID.
	PaidBy string
	// PaidFor lists payees with integer share weights; the amount is split
	// proportionally to the weights.
	PaidFor []model.Share
	Amount  model.Cents
	// Category is a categories ID; the zero value is Uncategorized/General.
	Category int
}

// Validate reports every problem with p, joined into one error wrapping
// ErrInvalidExpense.
func (p AddExpenseParams) Validate() error {
	var problems []string
	if strings.TrimSpace(p.Title) == "" {
		problems = append(problems, "title is empty")
	}
	if p.PaidBy == "" {
		problems = append(problems, "payer is empty")
	}
	// Negative amounts record refunds and income.
	if p.Amount == 0 {
		problems = append(problems, "amount is zero")
	}
	if len(p.PaidFor) == 0 {
		problems = append(problems, "no payees")
	}
	for i, s := range p.PaidFor {
		if s.ParticipantID == "" {
			problems = append(problems, fmt.Sprintf("payee %d has no participant", i))
		}
		if s.Shares <= 0 {
			problems = append(problems, fmt.Sprintf("payee %d has non-positive shares %d", i, s.Shares))
		}
	}
	if !categories.Exists(p.Category) {
		problems = append(problems, fmt.Sprintf("unknown category %d", p.Category))
	}
	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidExpense, strings.Join(problems, "; "))
	}
	return nil
}

type paidForEntry struct {
	Participant string `json:"participant"`
	Shares      int    `json:"shares"`
}

type expenseFormValues struct {
	ExpenseDate                 string          `json:"expenseDate"`
	Title                       string          `json:"title"`
	Category                    int             `json:"category"`
	Amount                      model.Cents     `json:"amount"`
	PaidBy                      string          `json:"paidBy"`
	PaidFor                     []paidForEntry  `json:"paidFor"`
	SplitMode                   model.SplitMode `json:"splitMode"`
	SaveDefaultSplittingOptions bool            `json:"saveDefaultSplittingOptions"`
	IsReimbursement             bool            `json:"isReimbursement"`
	Documents                   []any           `json:"documents"`
	Notes                       string          `json:"notes"`
}

type createArgs struct {
	GroupID           string            `json:"groupId"`
	ExpenseFormValues expenseFormValues `json:"expenseFormValues"`
	ParticipantID     string            `json:"participantId"`
}

// FormatExpensePayload builds the batched body for groups.expenses.create,
// stamping the expense date from now.
func FormatExpensePayload(groupID string, p AddExpenseParams, now time.Time) trpc.Batch {
	paidFor := make([]paidForEntry, len(p.PaidFor))
	for i, s := range p.PaidFor {
		paidFor[i] = paidForEntry{Participant: s.ParticipantID, Shares: s.Shares}
	}

	args := createArgs{
		GroupID: groupID,
		ExpenseFormValues: expenseFormValues{
			ExpenseDate: FormatTimestamp(now),
			Title:       p.Title,
			Category:    p.Category,
			Amount:      p.Amount,
			PaidBy:      p.PaidBy,
			PaidFor:     paidFor,
			SplitMode:   model.SplitEvenly,
			Documents:   []any{},
		},
		// The server expects this literal when no acting participant is known.
		ParticipantID: "None",
	}
	meta := &trpc.Meta{Values: map[string][]string{
		"expenseFormValues.expenseDate": {"Date"},
	}}
	return trpc.NewBatch(trpc.Call{JSON: args, Meta: meta})
}

// AddExpense creates one expense dated now and returns the server's raw
// acknowledgment body.
func (c *Client) AddExpense(ctx context.Context, p AddExpenseParams) (string, error) {
	if err := p.Validate(); err != nil {
		return "", err
	}

	body, err := c.rpc.Mutate(ctx, procCreateExpense, FormatExpensePayload(c.groupID, p, c.now()))
	if err != nil {
		return "", fmt.Errorf("creating expense %q: %w", p.Title, err)
	}
	c.logger.InfoContext(ctx, "expense created", "title", p.Title, "amount_cents", int64(p.Amount), "category", p.Category)
	return string(body), nil
}
