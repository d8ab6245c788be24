// Package report renders the account summary shown by the shell and the
// list command.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/teller-dev/teller/internal/model"
)

const (
	rule       = "------------------------------------"
	timeLayout = "Mon Jan 02 15:04:05 MST 2006"
)

// WriteSummary prints every account followed by its transaction table.
func WriteSummary(w io.Writer, accounts []*model.Account) error {
	if len(accounts) == 0 {
		_, err := fmt.Fprintln(w, "No accounts to display.")
		return err
	}

	ew := &errWriter{w: w}
	ew.printf("\n---------- SUMMARY ----------\n")
	for _, acct := range accounts {
		writeAccount(ew, acct)
	}
	return ew.err
}

func writeAccount(ew *errWriter, acct *model.Account) {
	ew.printf("Customer Name: %s\n", acct.CustomerName)
	ew.printf("Account ID: %d\n", acct.ID)
	ew.printf("Account Type: %s\n", acct.Kind)
	ew.printf("Interest Rate: %s%%\n", formatRate(acct.AnnualInterestRate))
	ew.printf("Monthly Interest: $%s\n", acct.MonthlyInterest().StringFixed(2))
	ew.printf("Current Balance: $%s\n", acct.Balance().StringFixed(2))

	ew.printf("Transactions:\n")
	ew.printf("%-6s %-11s %-16s %-28s %s\n", "Type", "Amount", "Balance After", "Date", "Description")
	for _, t := range acct.Transactions() {
		ew.printf("%-6s $%-10s $%-15s %-28s %s\n",
			t.Kind(),
			t.Amount().StringFixed(2),
			t.BalanceAfter().StringFixed(2),
			t.Date().Format(timeLayout),
			t.Description())
	}
	ew.printf("%s\n", rule)
}

// formatRate prints a rate with trailing zeros dropped but at least one
// fraction digit: 6 -> "6.0", 1.50 -> "1.5", 1.25 -> "1.25".
func formatRate(d decimal.Decimal) string {
	s := d.String()
	if !strings.Contains(s, ".") {
		return d.StringFixed(1)
	}
	return s
}

// errWriter keeps the first write error so the report body stays readable.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) printf(format string, args ...any) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintf(ew.w, format, args...)
}
