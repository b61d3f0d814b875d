// Package export writes expenses in flat file formats.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/cleared-dev/spliit/internal/model"
)

// Header is the CSV header written by WriteExpenses.
const Header = "id,date,title,category,amount,paid_by,paid_for,split_mode,is_reimbursement,created_at"

const (
	numFields    = 10
	dateFormat   = "2006-01-02"
	colID        = 0
	colDate      = 1
	colTitle     = 2
	colCategory  = 3
	colAmount    = 4
	colPaidBy    = 5
	colPaidFor   = 6
	colSplitMode = 7
	colReimburse = 8
	colCreatedAt = 9
)

// WriteExpenses writes a header row followed by one row per expense.
func WriteExpenses(w io.Writer, expenses []model.Expense) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(strings.Split(Header, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, e := range expenses {
		if err := cw.Write(MarshalExpense(e)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// MarshalExpense converts an Expense to a CSV row.
func MarshalExpense(e model.Expense) []string {
	row := make([]string, numFields)
	row[colID] = e.ID
	if !e.ExpenseDate.IsZero() {
		row[colDate] = e.ExpenseDate.UTC().Format(dateFormat)
	}
	row[colTitle] = e.Title
	row[colCategory] = e.Category.String()
	row[colAmount] = e.Amount.String()
	row[colPaidBy] = e.PaidBy.Name
	row[colPaidFor] = e.PaidForSummary()
	row[colSplitMode] = string(e.SplitMode)
	row[colReimburse] = strconv.FormatBool(e.IsReimbursement)
	if !e.CreatedAt.IsZero() {
		row[colCreatedAt] = e.CreatedAt.UTC().Format(time.RFC3339)
	}
	return row
}
