package commands

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/teller-dev/teller/internal/accounts"
	"github.com/teller-dev/teller/internal/auditlog"
	"github.com/teller-dev/teller/internal/id"
	"github.com/teller-dev/teller/internal/model"
	"github.com/teller-dev/teller/internal/report"
)

func newCreateCommand(a *app) *cobra.Command {
	var kind, name, balance, rate string
	var acctID int

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Open an account and save it to the accounts file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			initial, err := parseAmount("balance", balance)
			if err != nil {
				return err
			}
			annual, err := parseAmount("rate", rate)
			if err != nil {
				return err
			}
			return a.runCreate(cmd, model.ParseKind(kind), name, acctID, initial, annual)
		},
	}

	cmd.Flags().StringVar(&kind, "kind", "savings", "account kind: savings, checking or bankaccount")
	cmd.Flags().StringVar(&name, "name", "", "customer name (required)")
	cmd.Flags().IntVar(&acctID, "id", 0, "account ID (required)")
	cmd.Flags().StringVar(&balance, "balance", "0", "initial balance")
	cmd.Flags().StringVar(&rate, "rate", "0", "annual interest rate in percent")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("id")

	return cmd
}

func (a *app) runCreate(cmd *cobra.Command, kind model.Kind, name string, acctID int, balance, rate decimal.Decimal) error {
	store, err := a.loadStore()
	if err != nil {
		return err
	}

	store.Create(kind, name, acctID, balance, rate)
	if err := store.Save(a.cfg.Data.File); err != nil {
		a.writeAudit([]auditlog.Entry{auditlog.NewEntry("create", acctID, balance, auditlog.OutcomeError, err.Error())})
		return err
	}
	a.writeAudit([]auditlog.Entry{auditlog.NewEntry("create", acctID, balance, auditlog.OutcomeOK, kind.String())})
	a.printf(cmd, "%s account %d created for %s.\n", kind, acctID, name)
	return nil
}

func newDepositCommand(a *app) *cobra.Command {
	var desc string

	cmd := &cobra.Command{
		Use:   "deposit <account-id> <amount>",
		Short: "Deposit into an account",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			acctID, amount, err := parseMovement(args)
			if err != nil {
				return err
			}
			return a.runMovement(cmd, "deposit", acctID, amount, func(s *accounts.Store) (model.Transaction, error) {
				return s.Deposit(acctID, amount, desc)
			})
		},
	}
	cmd.Flags().StringVar(&desc, "desc", "", "description")
	return cmd
}

func newWithdrawCommand(a *app) *cobra.Command {
	var desc string

	cmd := &cobra.Command{
		Use:   "withdraw <account-id> <amount>",
		Short: "Withdraw from an account",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			acctID, amount, err := parseMovement(args)
			if err != nil {
				return err
			}
			return a.runMovement(cmd, "withdraw", acctID, amount, func(s *accounts.Store) (model.Transaction, error) {
				return s.Withdraw(acctID, amount, desc)
			})
		},
	}
	cmd.Flags().StringVar(&desc, "desc", "", "description")
	return cmd
}

// runMovement loads the accounts file, applies op, and saves the file only if
// op succeeded.
func (a *app) runMovement(cmd *cobra.Command, action string, acctID int, amount decimal.Decimal, op func(*accounts.Store) (model.Transaction, error)) error {
	store, err := a.loadStore()
	if err != nil {
		return err
	}

	txn, err := op(store)
	if err != nil {
		a.writeAudit([]auditlog.Entry{auditlog.NewEntry(action, acctID, amount, outcomeOf(err), err.Error())})
		return err
	}
	if err := store.Save(a.cfg.Data.File); err != nil {
		a.writeAudit([]auditlog.Entry{auditlog.NewEntry(action, acctID, amount, auditlog.OutcomeError, err.Error())})
		return err
	}
	a.writeAudit([]auditlog.Entry{auditlog.NewEntry(action, acctID, amount, auditlog.OutcomeOK, txn.Description())})

	verb, prep := "Deposited", "into"
	if txn.Kind() == model.Withdrawal {
		verb, prep = "Withdrew", "from"
	}
	a.printf(cmd, "%s %s %s account %d. Balance: %s\n",
		verb, txn.Amount().StringFixed(2), prep, acctID, txn.BalanceAfter().StringFixed(2))
	return nil
}

func newListCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Print a summary of every account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := a.loadStore()
			if err != nil {
				return err
			}
			return report.WriteSummary(cmd.OutOrStdout(), store.All())
		},
	}
}

func outcomeOf(err error) auditlog.Outcome {
	switch {
	case model.IsDeclined(err):
		return auditlog.OutcomeDeclined
	case errors.Is(err, accounts.ErrAccountNotFound):
		return auditlog.OutcomeNotFound
	default:
		return auditlog.OutcomeError
	}
}

func parseMovement(args []string) (int, decimal.Decimal, error) {
	acctID, err := id.ParseAccountID(args[0])
	if err != nil {
		return 0, decimal.Zero, err
	}
	amount, err := parseAmount("amount", args[1])
	if err != nil {
		return 0, decimal.Zero, err
	}
	return acctID, amount, nil
}

func parseAmount(field, s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("parsing %s %q: %w", field, s, err)
	}
	return d, nil
}
