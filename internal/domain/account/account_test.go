package account

import (
	"testing"
	"time"

	"github.com/minibank-ledger/internal/domain/customer"
	"github.com/minibank-ledger/internal/domain/ledger"
	"github.com/minibank-ledger/internal/domain/shared"
	"github.com/minibank-ledger/internal/platform/clock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testAccount(t *testing.T) (*Account, *clock.Fixed) {
	t.Helper()
	fixed := clock.NewFixed(time.Date(2023, 10, 1, 12, 0, 0, 0, time.UTC))
	owner := &customer.Customer{ID: 1, Name: "Ana", TaxID: "11111111111"}
	return New("1001", owner, fixed), fixed
}

func TestNew(t *testing.T) {
	acc, _ := testAccount(t)

	assert.Equal(t, "1001", acc.Number())
	assert.Equal(t, "11111111111", acc.Owner().TaxID)
	assert.Equal(t, int64(0), acc.Balance())
	assert.Empty(t, acc.Statement())
}

func TestAccount_Deposit(t *testing.T) {
	t.Run("SuccessfulDeposit", func(t *testing.T) {
		acc, fixed := testAccount(t)

		err := acc.Deposit(2000, "deposit")

		require.NoError(t, err)
		assert.Equal(t, int64(2000), acc.Balance())

		history := acc.Statement()
		require.Len(t, history, 1)
		assert.Equal(t, shared.TransactionTypeDeposit, history[0].Type)
		assert.Equal(t, int64(2000), history[0].Amount)
		assert.Equal(t, "deposit", history[0].Description)
		assert.Empty(t, history[0].SourceAccount)
		assert.Equal(t, "1001", history[0].DestinationAccount)
		assert.Equal(t, fixed.Instant, history[0].Timestamp)
	})

	t.Run("RejectsZeroAmount", func(t *testing.T) {
		acc, _ := testAccount(t)

		err := acc.Deposit(0, "deposit")

		assert.ErrorIs(t, err, shared.ErrInvalidAmount)
		assert.Equal(t, int64(0), acc.Balance())
		assert.Empty(t, acc.Statement())
	})

	t.Run("RejectsNegativeAmount", func(t *testing.T) {
		acc, _ := testAccount(t)

		err := acc.Deposit(-500, "deposit")

		assert.ErrorIs(t, err, shared.ErrInvalidAmount)
		assert.Equal(t, int64(0), acc.Balance())
		assert.Empty(t, acc.Statement())
	})
}

func TestAccount_Withdraw(t *testing.T) {
	t.Run("SuccessfulWithdrawal", func(t *testing.T) {
		acc, _ := testAccount(t)
		require.NoError(t, acc.Deposit(10000, "deposit"))

		err := acc.Withdraw(3000, "withdrawal")

		require.NoError(t, err)
		assert.Equal(t, int64(7000), acc.Balance())

		history := acc.Statement()
		require.Len(t, history, 2)
		assert.Equal(t, shared.TransactionTypeWithdrawal, history[1].Type)
		assert.Equal(t, int64(3000), history[1].Amount)
		assert.Equal(t, "1001", history[1].SourceAccount)
		assert.Empty(t, history[1].DestinationAccount)
	})

	t.Run("RejectsNonPositiveAmount", func(t *testing.T) {
		acc, _ := testAccount(t)
		require.NoError(t, acc.Deposit(10000, "deposit"))

		assert.ErrorIs(t, acc.Withdraw(0, "withdrawal"), shared.ErrInvalidAmount)
		assert.ErrorIs(t, acc.Withdraw(-100, "withdrawal"), shared.ErrInvalidAmount)
		assert.Equal(t, int64(10000), acc.Balance())
		assert.Len(t, acc.Statement(), 1)
	})

	t.Run("RejectsInsufficientBalance", func(t *testing.T) {
		acc, _ := testAccount(t)
		require.NoError(t, acc.Deposit(7000, "deposit"))

		err := acc.Withdraw(100000, "withdrawal")

		assert.ErrorIs(t, err, shared.ErrInsufficientBalance)
		assert.Equal(t, int64(7000), acc.Balance(), "balance must be unchanged after a failed withdrawal")
		assert.Len(t, acc.Statement(), 1)
	})

	t.Run("AllowsWithdrawingFullBalance", func(t *testing.T) {
		acc, _ := testAccount(t)
		require.NoError(t, acc.Deposit(5000, "deposit"))

		require.NoError(t, acc.Withdraw(5000, "withdrawal"))
		assert.Equal(t, int64(0), acc.Balance())
	})
}

func TestAccount_Append(t *testing.T) {
	acc, fixed := testAccount(t)
	require.NoError(t, acc.Deposit(10000, "deposit"))

	tx := ledger.NewTransfer(fixed.Instant, 2500, "transfer", "1003", "1001")
	acc.Append(tx)

	// Append records history without touching the balance
	assert.Equal(t, int64(10000), acc.Balance())

	history := acc.Statement()
	require.Len(t, history, 2)
	assert.Equal(t, tx, history[1])
}

func TestAccount_StatementOrdering(t *testing.T) {
	acc, _ := testAccount(t)

	require.NoError(t, acc.Deposit(100, "deposit"))
	require.NoError(t, acc.Deposit(200, "deposit"))
	require.NoError(t, acc.Withdraw(50, "withdrawal"))
	require.NoError(t, acc.Deposit(300, "deposit"))

	history := acc.Statement()
	require.Len(t, history, 4)
	assert.Equal(t, []int64{100, 200, 50, 300}, []int64{
		history[0].Amount, history[1].Amount, history[2].Amount, history[3].Amount,
	})
}

func TestAccount_StatementReturnsCopy(t *testing.T) {
	acc, _ := testAccount(t)
	require.NoError(t, acc.Deposit(100, "deposit"))

	first := acc.Statement()
	first[0].Amount = 999999

	assert.Equal(t, int64(100), acc.Statement()[0].Amount, "mutating the returned slice must not affect the history")
}
