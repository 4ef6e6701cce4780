package handler

import (
	"testing"

	"github.com/minibank-ledger/internal/domain/account"
	"github.com/minibank-ledger/internal/domain/customer"
	"github.com/minibank-ledger/internal/domain/ledger"
	"github.com/minibank-ledger/internal/service"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// newTestAccount builds an account with the given balance for handler tests
func newTestAccount(t *testing.T, number string, owner *customer.Customer, balance int64) *account.Account {
	t.Helper()
	acc := account.New(number, owner, fixedClock())
	if balance > 0 {
		require.NoError(t, acc.Deposit(balance, "deposit"))
	}
	return acc
}

type MockLedgerService struct {
	mock.Mock
}

func (m *MockLedgerService) CreateCustomer(name, taxID string) *customer.Customer {
	args := m.Called(name, taxID)
	return args.Get(0).(*customer.Customer)
}

func (m *MockLedgerService) OpenAccount(taxID string) (*account.Account, error) {
	args := m.Called(taxID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*account.Account), args.Error(1)
}

func (m *MockLedgerService) Deposit(accountNumber string, value float64) error {
	args := m.Called(accountNumber, value)
	return args.Error(0)
}

func (m *MockLedgerService) Withdraw(accountNumber string, value float64) error {
	args := m.Called(accountNumber, value)
	return args.Error(0)
}

func (m *MockLedgerService) Transfer(sourceNumber, destinationNumber string, value float64) error {
	args := m.Called(sourceNumber, destinationNumber, value)
	return args.Error(0)
}

func (m *MockLedgerService) FindAccount(accountNumber string) (*account.Account, error) {
	args := m.Called(accountNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*account.Account), args.Error(1)
}

func (m *MockLedgerService) ListCustomersWithAccounts() []service.CustomerAccounts {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]service.CustomerAccounts)
}

func (m *MockLedgerService) Statement(accountNumber string) ([]ledger.Transaction, error) {
	args := m.Called(accountNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]ledger.Transaction), args.Error(1)
}
