package report

import (
	"bytes"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teller-dev/teller/internal/model"
)

func TestWriteSummary_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteSummary(&buf, nil))
	assert.Equal(t, "No accounts to display.\n", buf.String())
}

func TestWriteSummary(t *testing.T) {
	acct := model.NewAccount(model.KindSavings, "Jane Doe", 5, decimal.RequireFromString("1200"))
	acct.AnnualInterestRate = decimal.RequireFromString("6")
	acct.Deposit(decimal.RequireFromString("50"), "paycheck")
	_, err := acct.Withdraw(decimal.RequireFromString("50"), "groceries")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteSummary(&buf, []*model.Account{acct}))
	out := buf.String()

	assert.Contains(t, out, "---------- SUMMARY ----------")
	assert.Contains(t, out, "Customer Name: Jane Doe\n")
	assert.Contains(t, out, "Account ID: 5\n")
	assert.Contains(t, out, "Account Type: Savings\n")
	assert.Contains(t, out, "Interest Rate: 6.0%\n")
	assert.Contains(t, out, "Monthly Interest: $6.00\n")
	assert.Contains(t, out, "Current Balance: $1200.00\n")
	assert.Contains(t, out, "D      $50.00      $1250.00")
	assert.Contains(t, out, "W      $50.00      $1200.00")
	assert.Contains(t, out, "paycheck")
	assert.Contains(t, out, "groceries")
	assert.Contains(t, out, rule)
}

func TestFormatRate(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"6", "6.0"},
		{"6.00", "6.0"},
		{"0", "0.0"},
		{"1.50", "1.5"},
		{"1.25", "1.25"},
		{"-2", "-2.0"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, formatRate(decimal.RequireFromString(tt.in)), tt.in)
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("broken pipe") }

func TestWriteSummary_WriteError(t *testing.T) {
	acct := model.NewAccount(model.KindPlain, "A", 1, decimal.Zero)
	err := WriteSummary(failingWriter{}, []*model.Account{acct})
	assert.EqualError(t, err, "broken pipe")
}
