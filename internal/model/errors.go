package model

import "errors"

// Withdrawal decline reasons. A decline leaves the account untouched.
var (
	ErrInsufficientFunds = errors.New("insufficient funds for withdrawal")
	ErrOverdraftLimit    = errors.New("withdrawal declined: overdraft limit exceeded")
	ErrSavingsOverdrawn  = errors.New("withdrawal declined: savings cannot be overdrawn")
)

// IsDeclined reports whether err is a withdrawal refused by account policy.
func IsDeclined(err error) bool {
	return errors.Is(err, ErrInsufficientFunds) ||
		errors.Is(err, ErrOverdraftLimit) ||
		errors.Is(err, ErrSavingsOverdrawn)
}
