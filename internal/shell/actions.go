package shell

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/teller-dev/teller/internal/auditlog"
	"github.com/teller-dev/teller/internal/id"
	"github.com/teller-dev/teller/internal/model"
	"github.com/teller-dev/teller/internal/report"
)

// errInvalid means the operator typed something unusable and was already told.
var errInvalid = errors.New("invalid input")

func (s *Shell) createAccount(kind model.Kind) error {
	name, err := s.prompt("Enter customer name: ")
	if err != nil {
		return err
	}
	acctID, err := s.promptAccountID("Enter account ID (int): ")
	if err != nil {
		return ignoreInvalid(err)
	}
	balance, err := s.promptAmount("Enter initial balance: ")
	if err != nil {
		return ignoreInvalid(err)
	}
	rate, err := s.promptAmount("Enter annual interest rate (e.g. 1.5 for 1.5%): ")
	if err != nil {
		return ignoreInvalid(err)
	}

	s.store.Create(kind, name, acctID, balance, rate)
	s.record("create", acctID, balance, auditlog.OutcomeOK, kind.String())
	s.printf("%s account created successfully!\n", kind)
	return nil
}

func (s *Shell) deposit() error {
	if s.store.Len() == 0 {
		s.println("No accounts available. Please create an account first.")
		return nil
	}

	acctID, err := s.promptAccountID("Enter account ID to deposit into: ")
	if err != nil {
		return ignoreInvalid(err)
	}
	if _, ok := s.store.Get(acctID); !ok {
		s.record("deposit", acctID, decimal.Zero, auditlog.OutcomeNotFound, "")
		s.println("Account not found.")
		return nil
	}
	amount, err := s.promptAmount("Enter deposit amount: ")
	if err != nil {
		return ignoreInvalid(err)
	}
	desc, err := s.prompt("Enter deposit description: ")
	if err != nil {
		return err
	}

	if _, err := s.store.Deposit(acctID, amount, desc); err != nil {
		s.record("deposit", acctID, amount, auditlog.OutcomeError, err.Error())
		s.printf("Deposit failed: %v\n", err)
		return nil
	}
	s.record("deposit", acctID, amount, auditlog.OutcomeOK, desc)
	s.println("Deposit successful.")
	return nil
}

func (s *Shell) withdraw() error {
	if s.store.Len() == 0 {
		s.println("No accounts available. Please create an account first.")
		return nil
	}

	acctID, err := s.promptAccountID("Enter account ID to withdraw from: ")
	if err != nil {
		return ignoreInvalid(err)
	}
	if _, ok := s.store.Get(acctID); !ok {
		s.record("withdraw", acctID, decimal.Zero, auditlog.OutcomeNotFound, "")
		s.println("Account not found.")
		return nil
	}
	amount, err := s.promptAmount("Enter withdrawal amount: ")
	if err != nil {
		return ignoreInvalid(err)
	}
	desc, err := s.prompt("Enter withdrawal description: ")
	if err != nil {
		return err
	}

	_, err = s.store.Withdraw(acctID, amount, desc)
	switch {
	case err == nil:
		s.record("withdraw", acctID, amount, auditlog.OutcomeOK, desc)
		s.println("Withdrawal successful.")
	case model.IsDeclined(err):
		s.record("withdraw", acctID, amount, auditlog.OutcomeDeclined, err.Error())
		s.println(DeclineMessage(err))
	default:
		s.record("withdraw", acctID, amount, auditlog.OutcomeError, err.Error())
		s.printf("Withdrawal failed: %v\n", err)
	}
	return nil
}

func (s *Shell) load() {
	loaded, err := s.store.Load(s.opts.DataFile)
	switch {
	case err != nil:
		s.record("load", 0, decimal.Zero, auditlog.OutcomeError, err.Error())
		s.printf("Error loading accounts: %v\n", err)
	case !loaded:
		s.println("No file found to load accounts.")
	default:
		s.record("load", 0, decimal.Zero, auditlog.OutcomeOK, s.opts.DataFile)
		s.printf("Accounts loaded from file: %s\n", s.opts.DataFile)
	}
}

func (s *Shell) summary() {
	if err := report.WriteSummary(s.out, s.store.All()); err != nil {
		s.log.Warn("writing summary", "error", err)
	}
}

func (s *Shell) exit() {
	if !s.opts.SaveOnExit {
		s.println("Exiting.")
		return
	}
	if err := s.store.Save(s.opts.DataFile); err != nil {
		s.record("save", 0, decimal.Zero, auditlog.OutcomeError, err.Error())
		s.printf("Error saving accounts: %v\n", err)
		s.println("Exiting.")
		return
	}
	s.record("save", 0, decimal.Zero, auditlog.OutcomeOK, s.opts.DataFile)
	s.printf("Accounts saved to file: %s\n", s.opts.DataFile)
	s.println("Exiting. Accounts have been saved.")
}

func (s *Shell) promptAccountID(label string) (int, error) {
	line, err := s.prompt(label)
	if err != nil {
		return 0, err
	}
	n, err := id.ParseAccountID(line)
	if err != nil {
		s.println("Invalid account ID. Please enter a whole number.")
		return 0, errInvalid
	}
	return n, nil
}

func (s *Shell) promptAmount(label string) (decimal.Decimal, error) {
	line, err := s.prompt(label)
	if err != nil {
		return decimal.Zero, err
	}
	amount, err := decimal.NewFromString(strings.TrimSpace(line))
	if err != nil {
		s.println("Invalid amount. Please enter a number such as 12.50.")
		return decimal.Zero, errInvalid
	}
	return amount, nil
}

// ignoreInvalid swallows errInvalid so the menu is shown again; input errors
// pass through and end the session.
func ignoreInvalid(err error) error {
	if errors.Is(err, errInvalid) {
		return nil
	}
	return err
}

// DeclineMessage turns a declined withdrawal into the operator-facing line.
func DeclineMessage(err error) string {
	switch {
	case errors.Is(err, model.ErrOverdraftLimit):
		return "Withdrawal declined. Overdraft limit exceeded."
	case errors.Is(err, model.ErrSavingsOverdrawn):
		return "Withdrawal declined. Savings cannot be overdrawn."
	case errors.Is(err, model.ErrInsufficientFunds):
		return "Insufficient funds for withdrawal."
	default:
		return err.Error()
	}
}
