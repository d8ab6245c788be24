package auditlog

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/teller-dev/teller/internal/id"
)

// Outcome records how an audited action ended.
type Outcome string

const (
	OutcomeOK       Outcome = "ok"
	OutcomeDeclined Outcome = "declined"
	OutcomeNotFound Outcome = "not-found"
	OutcomeError    Outcome = "error"
)

// Entry is one row in the audit log.
type Entry struct {
	Timestamp time.Time
	ID        string
	Action    string
	AccountID int
	Amount    decimal.Decimal
	Outcome   Outcome
	Details   string
}

// NewEntry returns an entry stamped with the current time and a fresh ID.
func NewEntry(action string, accountID int, amount decimal.Decimal, outcome Outcome, details string) Entry {
	return Entry{
		Timestamp: time.Now().UTC(),
		ID:        id.NewTransactionID(),
		Action:    action,
		AccountID: accountID,
		Amount:    amount,
		Outcome:   outcome,
		Details:   details,
	}
}

// Header is the CSV header for the audit log.
const Header = "timestamp,id,action,account_id,amount,outcome,details"

const (
	numFields    = 7
	colTimestamp = 0
	colID        = 1
	colAction    = 2
	colAccountID = 3
	colAmount    = 4
	colOutcome   = 5
	colDetails   = 6
)

// MarshalEntry converts an Entry to a CSV row.
func MarshalEntry(e Entry) []string {
	row := make([]string, numFields)
	row[colTimestamp] = e.Timestamp.Format(time.RFC3339)
	row[colID] = e.ID
	row[colAction] = e.Action
	row[colAccountID] = strconv.Itoa(e.AccountID)
	if !e.Amount.IsZero() {
		row[colAmount] = e.Amount.StringFixed(2)
	}
	row[colOutcome] = string(e.Outcome)
	row[colDetails] = e.Details
	return row
}

// UnmarshalEntry converts a CSV row to an Entry.
func UnmarshalEntry(record []string) (Entry, error) {
	if len(record) != numFields {
		return Entry{}, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}

	ts, err := time.Parse(time.RFC3339, record[colTimestamp])
	if err != nil {
		return Entry{}, fmt.Errorf("parsing timestamp %q: %w", record[colTimestamp], err)
	}

	accountID, err := strconv.Atoi(record[colAccountID])
	if err != nil {
		return Entry{}, fmt.Errorf("parsing account_id %q: %w", record[colAccountID], err)
	}

	var amount decimal.Decimal
	if record[colAmount] != "" {
		amount, err = decimal.NewFromString(record[colAmount])
		if err != nil {
			return Entry{}, fmt.Errorf("parsing amount %q: %w", record[colAmount], err)
		}
	}

	return Entry{
		Timestamp: ts,
		ID:        record[colID],
		Action:    record[colAction],
		AccountID: accountID,
		Amount:    amount,
		Outcome:   Outcome(record[colOutcome]),
		Details:   record[colDetails],
	}, nil
}

// Append writes entries to the log at path, creating the file, its directory
// and the header if needed.
func Append(path string, entries []Entry) (err error) {
	if len(entries) == 0 {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating audit log dir: %w", err)
	}

	needsHeader := false
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		needsHeader = true
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("opening audit log: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing audit log: %w", cerr)
		}
	}()

	cw := csv.NewWriter(f)

	if needsHeader {
		if err := cw.Write(strings.Split(Header, ",")); err != nil {
			return fmt.Errorf("writing header: %w", err)
		}
	}

	for i, e := range entries {
		if err := cw.Write(MarshalEntry(e)); err != nil {
			return fmt.Errorf("writing entry %d: %w", i, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// Read returns all entries from the log at path.
// Returns an empty slice if the file does not exist.
func Read(path string) ([]Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("opening audit log: %w", err)
	}
	defer f.Close()

	return readEntries(f)
}

func readEntries(r io.Reader) ([]Entry, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading audit log CSV: %w", err)
	}

	if len(records) <= 1 {
		return nil, nil
	}

	var entries []Entry
	for i, rec := range records[1:] {
		e, err := UnmarshalEntry(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		entries = append(entries, e)
	}
	return entries, nil
}
