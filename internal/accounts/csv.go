package accounts

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/teller-dev/teller/internal/id"
	"github.com/teller-dev/teller/internal/model"
)

const (
	numFields  = 5
	colKind    = 0
	colID      = 1
	colName    = 2
	colBalance = 3
	colRate    = 4

	fieldSep = ","
	nameSep  = ";"
)

// errShortRecord marks a line with fewer than numFields fields.
var errShortRecord = errors.New("short record")

// ReadAccounts reads the accounts file format, one account per line.
// Blank and short lines are skipped; a bad number fails the whole read.
func ReadAccounts(r io.Reader) ([]*model.Account, error) {
	br := bufio.NewReader(r)
	var accounts []*model.Account
	for lineNo := 1; ; lineNo++ {
		raw, readErr := br.ReadString('\n')
		if readErr != nil && !errors.Is(readErr, io.EOF) {
			return nil, fmt.Errorf("reading accounts: %w", readErr)
		}

		if line := strings.TrimSpace(raw); line != "" {
			acct, err := UnmarshalAccount(line)
			switch {
			case errors.Is(err, errShortRecord):
			case err != nil:
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			default:
				accounts = append(accounts, acct)
			}
		}

		if readErr != nil {
			return accounts, nil
		}
	}
}

// WriteAccounts writes one line per account, no header.
func WriteAccounts(w io.Writer, accounts []*model.Account) error {
	bw := bufio.NewWriter(w)
	for i, acct := range accounts {
		if _, err := fmt.Fprintln(bw, MarshalAccount(acct)); err != nil {
			return fmt.Errorf("writing account %d: %w", i, err)
		}
	}
	return bw.Flush()
}

// MarshalAccount converts an Account to a line (without the newline).
// Commas in the customer name become semicolons.
func MarshalAccount(acct *model.Account) string {
	row := make([]string, numFields)
	row[colKind] = acct.Kind.String()
	row[colID] = id.FormatAccountID(acct.ID)
	row[colName] = strings.ReplaceAll(acct.CustomerName, fieldSep, nameSep)
	row[colBalance] = acct.Balance().StringFixed(2)
	row[colRate] = acct.AnnualInterestRate.StringFixed(2)
	return strings.Join(row, fieldSep)
}

// UnmarshalAccount converts a line back to an Account. Every semicolon in the
// name is turned into a comma, so names that held semicolons come back changed.
// Fields past the fifth are ignored. Trailing empty fields do not count, so a
// line cut short after a comma is a short record.
func UnmarshalAccount(line string) (*model.Account, error) {
	record := strings.Split(line, fieldSep)
	for len(record) > 0 && record[len(record)-1] == "" {
		record = record[:len(record)-1]
	}
	if len(record) < numFields {
		return nil, fmt.Errorf("expected %d fields, got %d: %w", numFields, len(record), errShortRecord)
	}

	acctID, err := id.ParseAccountID(record[colID])
	if err != nil {
		return nil, err
	}

	balance, err := decimal.NewFromString(strings.TrimSpace(record[colBalance]))
	if err != nil {
		return nil, fmt.Errorf("parsing balance %q: %w", record[colBalance], err)
	}

	rate, err := decimal.NewFromString(strings.TrimSpace(record[colRate]))
	if err != nil {
		return nil, fmt.Errorf("parsing interest rate %q: %w", record[colRate], err)
	}

	name := strings.ReplaceAll(record[colName], nameSep, fieldSep)
	acct := model.NewAccount(model.ParseKind(record[colKind]), name, acctID, balance)
	acct.AnnualInterestRate = rate
	return acct, nil
}
