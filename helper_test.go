package famfin

import (
	"time"

	"github.com/etnz/famfin/date"
)

// jan15 is the reference day of most engine tests.
var jan15 = date.New(2025, time.January, 15)

// account is a helper for tests to create a reporting currency account.
func account(id string, typ AccountType, balance float64) Account {
	return Account{ID: id, Name: id, Type: typ, Balance: balance, Currency: ReportingCurrency}
}

// income is a helper for tests to create an income on an account.
func income(id string, amount float64, day, accountID string) Transaction {
	return Transaction{ID: id, Type: Income, Amount: amount, Date: day, AccountID: accountID}
}

// expense is a helper for tests to create an expense on an account.
func expense(id string, amount float64, day, accountID string) Transaction {
	return Transaction{ID: id, Type: Expense, Amount: amount, Date: day, AccountID: accountID}
}

// transfer is a helper for tests to create a transfer between two accounts.
func transfer(id string, amount float64, day, from, to string) Transaction {
	return Transaction{ID: id, Type: Transfer, Amount: amount, Date: day, AccountID: from, DestinationAccountID: to}
}
