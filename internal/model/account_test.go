package model

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestParseKind(t *testing.T) {
	tests := []struct {
		input string
		want  Kind
	}{
		{"Checking", KindChecking},
		{"checking", KindChecking},
		{"CHECKING", KindChecking},
		{"Savings", KindSavings},
		{"sAvInGs", KindSavings},
		{"BankAccount", KindPlain},
		{"bankaccount", KindPlain},
		{"Brokerage", KindPlain},
		{"", KindPlain},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseKind(tt.input), "ParseKind(%q)", tt.input)
	}
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "BankAccount", KindPlain.String())
	assert.Equal(t, "Checking", KindChecking.String())
	assert.Equal(t, "Savings", KindSavings.String())
}

func TestNewDefaultAccount(t *testing.T) {
	acct := NewDefaultAccount()
	assert.Equal(t, DefaultCustomerName, acct.CustomerName)
	assert.Equal(t, KindPlain, acct.Kind)
	assert.Equal(t, 0, acct.ID)
	assert.True(t, acct.Balance().IsZero())
	assert.True(t, acct.AnnualInterestRate.IsZero())
	assert.Empty(t, acct.Transactions())
	assert.False(t, acct.Created.IsZero())
}

func TestNewAccount_KeepsEmptyName(t *testing.T) {
	acct := NewAccount(KindSavings, "", 3, decimal.Zero)
	assert.Equal(t, "", acct.CustomerName)
}

func TestDeposit(t *testing.T) {
	acct := NewAccount(KindSavings, "Jane Doe", 1, d("100.00"))

	txn := acct.Deposit(d("25.50"), "paycheck")
	assert.True(t, d("125.50").Equal(acct.Balance()))
	assert.Equal(t, Deposit, txn.Kind())
	assert.True(t, d("25.50").Equal(txn.Amount()))
	assert.Equal(t, "paycheck", txn.Description())
	assert.NotEmpty(t, txn.ID())

	txns := acct.Transactions()
	require.Len(t, txns, 1)
	assert.True(t, acct.Balance().Equal(txns[0].BalanceAfter()))
}

func TestDeposit_NegativeAmountAccepted(t *testing.T) {
	// Amounts are not validated: a negative deposit lowers the balance.
	acct := NewAccount(KindPlain, "Jane Doe", 1, d("100"))
	acct.Deposit(d("-30"), "reversal")
	assert.True(t, d("70").Equal(acct.Balance()))
	require.Len(t, acct.Transactions(), 1)
}

func TestWithdraw_Policies(t *testing.T) {
	tests := []struct {
		name    string
		kind    Kind
		balance string
		amount  string
		want    string // balance afterwards
		wantErr error
	}{
		{"plain exact", KindPlain, "100", "100", "0", nil},
		{"plain under", KindPlain, "100", "40", "60", nil},
		{"plain over", KindPlain, "100", "100.01", "100", ErrInsufficientFunds},
		{"checking into overdraft", KindChecking, "50", "200", "-150", nil},
		{"checking to limit", KindChecking, "50", "250", "-200", nil},
		{"checking past limit", KindChecking, "50", "260", "50", ErrOverdraftLimit},
		{"checking already overdrawn", KindChecking, "-200", "0.01", "-200", ErrOverdraftLimit},
		{"savings to zero", KindSavings, "100", "100", "0", nil},
		{"savings over", KindSavings, "100", "100.01", "100", ErrSavingsOverdrawn},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			acct := NewAccount(tt.kind, "Test", 7, d(tt.balance))
			txn, err := acct.Withdraw(d(tt.amount), "atm")

			assert.True(t, d(tt.want).Equal(acct.Balance()), "balance = %s, want %s", acct.Balance(), tt.want)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.True(t, IsDeclined(err))
				assert.Empty(t, acct.Transactions(), "declined withdrawal must not be logged")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, Withdrawal, txn.Kind())
			txns := acct.Transactions()
			require.Len(t, txns, 1)
			assert.True(t, acct.Balance().Equal(txns[0].BalanceAfter()))
		})
	}
}

func TestWithdraw_DeclineMessageNamesAccount(t *testing.T) {
	acct := NewAccount(KindSavings, "Test", 42, d("10"))
	_, err := acct.Withdraw(d("20"), "")
	require.Error(t, err)
	assert.Equal(t, "account 42: withdrawal declined: savings cannot be overdrawn", err.Error())
}

func TestTransactionLogOrder(t *testing.T) {
	acct := NewAccount(KindChecking, "Test", 1, d("0"))
	acct.Deposit(d("10"), "one")
	_, err := acct.Withdraw(d("100"), "two")
	require.NoError(t, err)
	acct.Deposit(d("5"), "three")

	txns := acct.Transactions()
	require.Len(t, txns, 3)
	assert.Equal(t, "one", txns[0].Description())
	assert.Equal(t, "two", txns[1].Description())
	assert.Equal(t, "three", txns[2].Description())
	for i := 1; i < len(txns); i++ {
		assert.False(t, txns[i].Date().Before(txns[i-1].Date()))
	}
	assert.True(t, d("-85").Equal(txns[2].BalanceAfter()))
	assert.True(t, acct.Balance().Equal(txns[2].BalanceAfter()))
}

func TestTransactionsReturnsCopy(t *testing.T) {
	acct := NewAccount(KindPlain, "Test", 1, d("0"))
	acct.Deposit(d("1"), "")
	txns := acct.Transactions()
	txns[0] = Transaction{}
	assert.Equal(t, Deposit, acct.Transactions()[0].Kind())
}

func TestMonthlyInterest(t *testing.T) {
	acct := NewAccount(KindSavings, "Test", 1, d("1200.00"))
	acct.AnnualInterestRate = d("6.0")

	assert.True(t, d("0.005").Equal(acct.MonthlyInterestRate()))
	assert.Equal(t, "6.00", acct.MonthlyInterest().StringFixed(2))
}

func TestMonthlyInterestRate_Fraction(t *testing.T) {
	acct := NewAccount(KindPlain, "Test", 1, decimal.Zero)
	acct.AnnualInterestRate = d("1.5")
	assert.True(t, d("0.00125").Equal(acct.MonthlyInterestRate()))
	assert.True(t, acct.MonthlyInterest().IsZero())
}

func TestTransactionKindString(t *testing.T) {
	assert.Equal(t, "D", Deposit.String())
	assert.Equal(t, "W", Withdrawal.String())
}
