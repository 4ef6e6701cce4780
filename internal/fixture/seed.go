// Package fixture seeds a ledger with a fixed sequence of customers,
// accounts, and movements. It exercises every engine operation and is used
// by the console demo and by tests; it is not part of the engine's contract.
package fixture

import (
	"fmt"

	"github.com/minibank-ledger/internal/service"
)

// SeedDemoData creates three customers with one account each, makes an
// initial deposit into every account, transfers from Carla to Ana, and
// withdraws from Bruno. It returns the three account numbers in customer
// order (Ana, Bruno, Carla).
func SeedDemoData(svc service.LedgerService) ([]string, error) {
	ana := svc.CreateCustomer("Ana", "11111111111")
	bruno := svc.CreateCustomer("Bruno", "22222222222")
	carla := svc.CreateCustomer("Carla", "33333333333")

	numbers := make([]string, 0, 3)
	for _, taxID := range []string{ana.TaxID, bruno.TaxID, carla.TaxID} {
		acc, err := svc.OpenAccount(taxID)
		if err != nil {
			return nil, fmt.Errorf("failed to open account for %s: %w", taxID, err)
		}
		numbers = append(numbers, acc.Number())
	}

	steps := []struct {
		name string
		run  func() error
	}{
		{"deposit Ana", func() error { return svc.Deposit(numbers[0], 1500.00) }},
		{"deposit Bruno", func() error { return svc.Deposit(numbers[1], 800.00) }},
		{"deposit Carla", func() error { return svc.Deposit(numbers[2], 2500.00) }},
		{"transfer Carla to Ana", func() error { return svc.Transfer(numbers[2], numbers[0], 300.00) }},
		{"withdraw Bruno", func() error { return svc.Withdraw(numbers[1], 100.00) }},
	}
	for _, step := range steps {
		if err := step.run(); err != nil {
			return nil, fmt.Errorf("seed step %q failed: %w", step.name, err)
		}
	}

	return numbers, nil
}
