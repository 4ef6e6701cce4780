package service

import (
	"fmt"

	"github.com/minibank-ledger/internal/domain/account"
	"github.com/minibank-ledger/internal/domain/customer"
	"github.com/minibank-ledger/internal/domain/ledger"
	"github.com/minibank-ledger/internal/domain/money"
	"github.com/minibank-ledger/internal/domain/shared"
)

// LedgerServiceImpl implements the LedgerService interface
type LedgerServiceImpl struct {
	customers customer.Directory
	accounts  account.Directory
	converter money.Converter
	clock     shared.Clock
}

// NewLedgerService creates a new ledger service
func NewLedgerService(customers customer.Directory, accounts account.Directory, converter money.Converter, clock shared.Clock) LedgerService {
	return &LedgerServiceImpl{
		customers: customers,
		accounts:  accounts,
		converter: converter,
		clock:     clock,
	}
}

// CreateCustomer registers a customer, delegating the idempotency guarantee
// to the customer directory
func (s *LedgerServiceImpl) CreateCustomer(name, taxID string) *customer.Customer {
	return s.customers.Add(name, taxID)
}

// OpenAccount creates a new account for the customer with the given tax id,
// drawing a fresh number from the account directory
func (s *LedgerServiceImpl) OpenAccount(taxID string) (*account.Account, error) {
	owner := s.customers.GetByTaxID(taxID)
	if owner == nil {
		return nil, customer.ErrCustomerNotFound{TaxID: taxID}
	}
	number := s.accounts.NextNumber()
	return s.accounts.Add(number, owner), nil
}

// Deposit converts the decimal value to minor units and credits the account
func (s *LedgerServiceImpl) Deposit(accountNumber string, value float64) error {
	acc, err := s.findAccount(accountNumber)
	if err != nil {
		return err
	}
	amount, err := s.converter.ToMinorUnits(value)
	if err != nil {
		return err
	}
	return acc.Deposit(amount, "deposit")
}

// Withdraw converts the decimal value to minor units and debits the account
func (s *LedgerServiceImpl) Withdraw(accountNumber string, value float64) error {
	acc, err := s.findAccount(accountNumber)
	if err != nil {
		return err
	}
	amount, err := s.converter.ToMinorUnits(value)
	if err != nil {
		return err
	}
	return acc.Withdraw(amount, "withdrawal")
}

// Transfer debits the source account, credits the destination account, and
// appends one shared transfer record to both histories. A failed debit
// aborts the operation before any state changes; once the debit succeeds the
// credit cannot fail, because the destination has already been resolved and
// the amount validated positive.
func (s *LedgerServiceImpl) Transfer(sourceNumber, destinationNumber string, value float64) error {
	if sourceNumber == destinationNumber {
		return fmt.Errorf("source and destination accounts are identical: %w", shared.ErrInvalidAmount)
	}

	amount, err := s.converter.ToMinorUnits(value)
	if err != nil {
		return err
	}

	src, err := s.findAccount(sourceNumber)
	if err != nil {
		return err
	}
	dst, err := s.findAccount(destinationNumber)
	if err != nil {
		return err
	}

	if err := src.Withdraw(amount, "transfer to "+destinationNumber); err != nil {
		return err
	}
	if err := dst.Deposit(amount, "transfer from "+sourceNumber); err != nil {
		return err
	}

	tx := ledger.NewTransfer(s.clock.Now(), amount, "transfer", sourceNumber, destinationNumber)
	src.Append(tx)
	dst.Append(tx)
	return nil
}

// FindAccount resolves an account by number
func (s *LedgerServiceImpl) FindAccount(accountNumber string) (*account.Account, error) {
	return s.findAccount(accountNumber)
}

// ListCustomersWithAccounts returns one entry per known customer, paired
// with that customer's accounts
func (s *LedgerServiceImpl) ListCustomersWithAccounts() []CustomerAccounts {
	customers := s.customers.All()
	out := make([]CustomerAccounts, 0, len(customers))
	for _, c := range customers {
		out = append(out, CustomerAccounts{
			Customer: c,
			Accounts: s.accounts.ByCustomer(c.TaxID),
		})
	}
	return out
}

// Statement returns the account's full transaction history
func (s *LedgerServiceImpl) Statement(accountNumber string) ([]ledger.Transaction, error) {
	acc, err := s.findAccount(accountNumber)
	if err != nil {
		return nil, err
	}
	return acc.Statement(), nil
}

// findAccount resolves an account number against the directory
func (s *LedgerServiceImpl) findAccount(number string) (*account.Account, error) {
	acc := s.accounts.Find(number)
	if acc == nil {
		return nil, account.ErrAccountNotFound{Number: number}
	}
	return acc, nil
}
