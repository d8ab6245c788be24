package model

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/teller-dev/teller/internal/id"
)

// TransactionKind distinguishes deposits from withdrawals.
type TransactionKind byte

const (
	Deposit    TransactionKind = 'D'
	Withdrawal TransactionKind = 'W'
)

// String returns the single-letter code used in reports.
func (k TransactionKind) String() string { return string(rune(k)) }

// Transaction is one balance-changing event on an account.
// It is never modified after construction.
type Transaction struct {
	id           string
	date         time.Time
	kind         TransactionKind
	amount       decimal.Decimal
	balanceAfter decimal.Decimal
	description  string
}

// NewTransaction stamps the current time on a transaction. No validation is
// performed on the amount.
func NewTransaction(kind TransactionKind, amount, balanceAfter decimal.Decimal, description string) Transaction {
	return Transaction{
		id:           id.NewTransactionID(),
		date:         time.Now(),
		kind:         kind,
		amount:       amount,
		balanceAfter: balanceAfter,
		description:  description,
	}
}

func (t Transaction) ID() string                    { return t.id }
func (t Transaction) Date() time.Time               { return t.date }
func (t Transaction) Kind() TransactionKind         { return t.kind }
func (t Transaction) Amount() decimal.Decimal       { return t.amount }
func (t Transaction) BalanceAfter() decimal.Decimal { return t.balanceAfter }
func (t Transaction) Description() string           { return t.description }
