package model

import (
	"strconv"
	"strings"
	"time"
)

// SplitMode is the policy dividing an expense amount among payees.
type SplitMode string

const (
	SplitEvenly       SplitMode = "EVENLY"
	SplitByShares     SplitMode = "BY_SHARES"
	SplitByPercentage SplitMode = "BY_PERCENTAGE"
	SplitByAmount     SplitMode = "BY_AMOUNT"
)

// Share is a (participant ID, share weight) pair used when creating an expense.
type Share struct {
	ParticipantID string
	Shares        int
}

// ExpenseShare is one payee of an existing expense.
type ExpenseShare struct {
	Participant Participant `json:"participant"`
	Shares      int         `json:"shares"`
}

// Expense is a single recorded transaction with a payer and one or more payees.
type Expense struct {
	ID              string         `json:"id"`
	Title           string         `json:"title"`
	Amount          Cents          `json:"amount"`
	Category        Category       `json:"category"`
	PaidBy          Participant    `json:"paidBy"`
	PaidFor         []ExpenseShare `json:"paidFor"`
	ExpenseDate     time.Time      `json:"expenseDate"`
	CreatedAt       time.Time      `json:"createdAt"`
	SplitMode       SplitMode      `json:"splitMode"`
	IsReimbursement bool           `json:"isReimbursement"`
}

// PaidForSummary renders payees as "name:shares;name:shares".
func (e Expense) PaidForSummary() string {
	parts := make([]string, len(e.PaidFor))
	for i, s := range e.PaidFor {
		parts[i] = s.Participant.Name + ":" + strconv.Itoa(s.Shares)
	}
	return strings.Join(parts, ";")
}

// Page is one page of the expense list as returned by the server.
type Page struct {
	Expenses   []Expense `json:"expenses"`
	HasMore    bool      `json:"hasMore"`
	NextCursor *int      `json:"nextCursor"`
}
