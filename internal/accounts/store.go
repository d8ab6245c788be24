package accounts

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/shopspring/decimal"

	"github.com/teller-dev/teller/internal/model"
)

// ErrAccountNotFound is returned when no account carries the requested ID.
var ErrAccountNotFound = errors.New("account not found")

// Store is the in-memory collection of accounts, kept in insertion order.
// Account IDs are not required to be unique; lookups return the first match.
// A Store is not safe for concurrent use.
type Store struct {
	accounts []*model.Account
	logger   *slog.Logger
}

// NewStore creates an empty Store. A nil logger discards log output.
func NewStore(logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Store{logger: logger}
}

// Create opens a new account and appends it to the store.
func (s *Store) Create(kind model.Kind, name string, id int, initialBalance, rate decimal.Decimal) *model.Account {
	acct := model.NewAccount(kind, name, id, initialBalance)
	acct.AnnualInterestRate = rate
	s.Add(acct)
	return acct
}

// Add appends an existing account.
func (s *Store) Add(acct *model.Account) {
	s.accounts = append(s.accounts, acct)
	s.logger.Debug("account added", "account_id", acct.ID, "kind", acct.Kind.String())
}

// All returns a snapshot of the accounts in insertion order.
func (s *Store) All() []*model.Account {
	out := make([]*model.Account, len(s.accounts))
	copy(out, s.accounts)
	return out
}

// Len returns the number of accounts.
func (s *Store) Len() int {
	return len(s.accounts)
}

// Get returns the first account with the given ID.
func (s *Store) Get(id int) (*model.Account, bool) {
	for _, a := range s.accounts {
		if a.ID == id {
			return a, true
		}
	}
	return nil, false
}

// FindByID is Get with an error for the missing case.
func (s *Store) FindByID(id int) (*model.Account, error) {
	a, ok := s.Get(id)
	if !ok {
		return nil, fmt.Errorf("account %d: %w", id, ErrAccountNotFound)
	}
	return a, nil
}

// Deposit credits the account with the given ID.
func (s *Store) Deposit(id int, amount decimal.Decimal, description string) (model.Transaction, error) {
	a, err := s.FindByID(id)
	if err != nil {
		return model.Transaction{}, err
	}
	txn := a.Deposit(amount, description)
	s.logger.Info("deposit", "account_id", id, "amount", amount.StringFixed(2), "balance", a.Balance().StringFixed(2))
	return txn, nil
}

// Withdraw debits the account with the given ID subject to its kind's policy.
func (s *Store) Withdraw(id int, amount decimal.Decimal, description string) (model.Transaction, error) {
	a, err := s.FindByID(id)
	if err != nil {
		return model.Transaction{}, err
	}
	txn, err := a.Withdraw(amount, description)
	if err != nil {
		s.logger.Info("withdrawal declined", "account_id", id, "amount", amount.StringFixed(2), "reason", err.Error())
		return model.Transaction{}, err
	}
	s.logger.Info("withdrawal", "account_id", id, "amount", amount.StringFixed(2), "balance", a.Balance().StringFixed(2))
	return txn, nil
}

// Load replaces the store's contents with the accounts in path. It reports
// false with no error when path does not exist, leaving the store as it was.
// On a read error the store is also left as it was.
func (s *Store) Load(path string) (bool, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		s.logger.Info("no accounts file to load", "path", path)
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("opening accounts file: %w", err)
	}
	defer f.Close()

	accts, err := ReadAccounts(f)
	if err != nil {
		return false, fmt.Errorf("reading accounts file %s: %w", path, err)
	}
	s.accounts = accts
	s.logger.Info("accounts loaded", "path", path, "count", len(accts))
	return true, nil
}

// Save writes every account to path, replacing any existing file.
// Transaction history is not persisted.
func (s *Store) Save(path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating accounts dir: %w", err)
		}
	}

	tmp := path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("creating accounts file: %w", err)
	}

	if err := WriteAccounts(f, s.accounts); err != nil {
		f.Close()
		os.Remove(tmp)
		return fmt.Errorf("writing accounts file: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("closing accounts file: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("replacing accounts file: %w", err)
	}

	s.logger.Info("accounts saved", "path", path, "count", len(s.accounts))
	return nil
}
