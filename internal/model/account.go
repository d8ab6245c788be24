package model

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Kind selects the withdrawal policy of an account.
type Kind int

const (
	KindPlain Kind = iota
	KindChecking
	KindSavings
)

// DefaultCustomerName names an account built by NewDefaultAccount.
const DefaultCustomerName = "NoName"

// OverdraftLimit is the lowest balance a checking account may reach.
var OverdraftLimit = decimal.NewFromInt(-200)

var (
	hundred = decimal.NewFromInt(100)
	twelve  = decimal.NewFromInt(12)
)

// String returns the canonical name written to the accounts file.
func (k Kind) String() string {
	switch k {
	case KindChecking:
		return "Checking"
	case KindSavings:
		return "Savings"
	default:
		return "BankAccount"
	}
}

// ParseKind matches s case-insensitively against the canonical names.
// Anything unrecognised is a plain account.
func ParseKind(s string) Kind {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "checking":
		return KindChecking
	case "savings":
		return KindSavings
	default:
		return KindPlain
	}
}

// checkWithdrawal returns nil if an account of kind k holding balance may pay
// out amount, or the reason it may not.
func (k Kind) checkWithdrawal(balance, amount decimal.Decimal) error {
	newBalance := balance.Sub(amount)
	switch k {
	case KindChecking:
		if newBalance.LessThan(OverdraftLimit) {
			return ErrOverdraftLimit
		}
	case KindSavings:
		if newBalance.IsNegative() {
			return ErrSavingsOverdrawn
		}
	default:
		if balance.LessThan(amount) {
			return ErrInsufficientFunds
		}
	}
	return nil
}

// Account is a customer account with an append-only transaction log.
// The last logged balance always equals Balance().
type Account struct {
	ID                 int
	CustomerName       string
	Kind               Kind
	AnnualInterestRate decimal.Decimal // percent, e.g. 1.5 for 1.5%
	Created            time.Time

	balance      decimal.Decimal
	transactions []Transaction
}

// NewDefaultAccount returns a plain account with ID 0, zero balance and
// DefaultCustomerName.
func NewDefaultAccount() *Account {
	return NewAccount(KindPlain, DefaultCustomerName, 0, decimal.Zero)
}

// NewAccount opens an account with an opening balance that is not logged as
// a transaction. The name is kept as given, even when empty.
func NewAccount(kind Kind, name string, id int, initialBalance decimal.Decimal) *Account {
	return &Account{
		ID:           id,
		CustomerName: name,
		Kind:         kind,
		Created:      time.Now(),
		balance:      initialBalance,
	}
}

// Balance returns the current balance.
func (a *Account) Balance() decimal.Decimal { return a.balance }

// Transactions returns a copy of the transaction log, oldest first.
func (a *Account) Transactions() []Transaction {
	out := make([]Transaction, len(a.transactions))
	copy(out, a.transactions)
	return out
}

// Deposit adds amount to the balance. The amount is not checked for sign.
func (a *Account) Deposit(amount decimal.Decimal, description string) Transaction {
	a.balance = a.balance.Add(amount)
	return a.record(Deposit, amount, description)
}

// Withdraw removes amount from the balance if the account kind allows it.
// A declined withdrawal changes nothing and returns an error matching one of
// ErrInsufficientFunds, ErrOverdraftLimit or ErrSavingsOverdrawn.
func (a *Account) Withdraw(amount decimal.Decimal, description string) (Transaction, error) {
	if err := a.Kind.checkWithdrawal(a.balance, amount); err != nil {
		return Transaction{}, fmt.Errorf("account %d: %w", a.ID, err)
	}
	a.balance = a.balance.Sub(amount)
	return a.record(Withdrawal, amount, description), nil
}

// MonthlyInterestRate returns the monthly rate as a fraction, not a percentage.
// 1.5 (percent per year) gives 0.00125.
func (a *Account) MonthlyInterestRate() decimal.Decimal {
	return a.AnnualInterestRate.Div(hundred).Div(twelve)
}

// MonthlyInterest returns one month of interest on the current balance.
func (a *Account) MonthlyInterest() decimal.Decimal {
	return a.balance.Mul(a.MonthlyInterestRate())
}

func (a *Account) record(kind TransactionKind, amount decimal.Decimal, description string) Transaction {
	t := NewTransaction(kind, amount, a.balance, description)
	a.transactions = append(a.transactions, t)
	return t
}
