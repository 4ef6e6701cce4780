// Command demo seeds a fresh in-memory ledger with the demonstration
// fixture and prints every customer with their account balances, followed by
// the first account's statement.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/minibank-ledger/internal/data/memory"
	"github.com/minibank-ledger/internal/domain/money"
	"github.com/minibank-ledger/internal/fixture"
	"github.com/minibank-ledger/internal/platform/clock"
	"github.com/minibank-ledger/internal/service"
)

func main() {
	systemClock := clock.NewSystem()
	customers := memory.NewCustomerDirectory()
	accounts := memory.NewAccountDirectory(systemClock, memory.DefaultFirstAccountNumber)
	svc := service.NewLedgerService(customers, accounts, money.NewMinorUnitConverter(), systemClock)

	numbers, err := fixture.SeedDemoData(svc)
	if err != nil {
		fmt.Printf("Failed to seed demonstration data: %v\n", err)
		os.Exit(1)
	}

	for _, entry := range svc.ListCustomersWithAccounts() {
		balances := make([]string, 0, len(entry.Accounts))
		for _, acc := range entry.Accounts {
			balances = append(balances, acc.Number()+":"+money.Format(acc.Balance()))
		}
		fmt.Printf("%d %s %s -> [%s]\n", entry.Customer.ID, entry.Customer.Name, entry.Customer.TaxID, strings.Join(balances, ", "))
	}

	statement, err := svc.Statement(numbers[0])
	if err != nil {
		fmt.Printf("Failed to fetch statement: %v\n", err)
		os.Exit(1)
	}
	for _, tx := range statement {
		fmt.Printf("%s %s %s %s\n", numbers[0], tx.Type, money.Format(tx.Amount), tx.Description)
	}
}
