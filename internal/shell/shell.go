// Package shell implements the menu-driven console front end over an
// accounts.Store. Every failure is reported to the operator and the menu is
// shown again; nothing short of closed input ends a session.
package shell

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/teller-dev/teller/internal/accounts"
	"github.com/teller-dev/teller/internal/auditlog"
	"github.com/teller-dev/teller/internal/model"
)

const (
	choiceCreateSavings = iota + 1
	choiceCreateChecking
	choiceDeposit
	choiceWithdraw
	choiceLoad
	choiceSummary
	choiceExit
)

// Options configures a Shell.
type Options struct {
	DataFile    string
	LoadOnStart bool
	SaveOnExit  bool
	Logger      *slog.Logger
}

// Shell drives one interactive session.
type Shell struct {
	store *accounts.Store
	in    *bufio.Scanner
	out   io.Writer
	opts  Options
	log   *slog.Logger
	audit []auditlog.Entry
}

// New creates a Shell reading commands from in and writing to out.
func New(store *accounts.Store, in io.Reader, out io.Writer, opts Options) *Shell {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Shell{
		store: store,
		in:    bufio.NewScanner(in),
		out:   out,
		opts:  opts,
		log:   logger,
	}
}

// AuditLog returns the actions recorded during the session.
func (s *Shell) AuditLog() []auditlog.Entry {
	return s.audit
}

// Run shows the menu until the operator exits or input ends. Either way the
// exit path runs, saving the store if configured. The returned error is only
// ever an input read failure.
func (s *Shell) Run() error {
	if s.opts.LoadOnStart {
		s.load()
	}

	for {
		s.printMenu()
		line, err := s.prompt("Enter your choice: ")
		if err != nil {
			s.exit()
			return s.inputErr(err)
		}

		choice, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil {
			s.println("Invalid input. Please enter a number 1-7.")
			continue
		}

		switch choice {
		case choiceCreateSavings:
			err = s.createAccount(model.KindSavings)
		case choiceCreateChecking:
			err = s.createAccount(model.KindChecking)
		case choiceDeposit:
			err = s.deposit()
		case choiceWithdraw:
			err = s.withdraw()
		case choiceLoad:
			s.load()
		case choiceSummary:
			s.summary()
		case choiceExit:
			s.exit()
			return nil
		default:
			s.println("Invalid choice. Please try again.")
		}

		if err != nil {
			s.exit()
			return s.inputErr(err)
		}
	}
}

func (s *Shell) inputErr(err error) error {
	if errors.Is(err, io.EOF) {
		return nil
	}
	return fmt.Errorf("reading input: %w", err)
}

func (s *Shell) printMenu() {
	s.println("")
	s.println("Bank Account System")
	s.println("1. Create Savings Account")
	s.println("2. Create Checking Account")
	s.println("3. Deposit")
	s.println("4. Withdraw")
	s.println("5. Get Accounts from File")
	s.println("6. View Summary")
	s.println("7. Exit")
}

// prompt writes label and reads one line. It returns io.EOF once input is
// exhausted.
func (s *Shell) prompt(label string) (string, error) {
	fmt.Fprint(s.out, label)
	if !s.in.Scan() {
		if err := s.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return s.in.Text(), nil
}

func (s *Shell) println(msg string) {
	fmt.Fprintln(s.out, msg)
}

func (s *Shell) printf(format string, args ...any) {
	fmt.Fprintf(s.out, format, args...)
}

func (s *Shell) record(action string, accountID int, amount decimal.Decimal, outcome auditlog.Outcome, details string) {
	s.audit = append(s.audit, auditlog.NewEntry(action, accountID, amount, outcome, details))
}
