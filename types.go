package famfin

import (
	"strings"

	"github.com/etnz/famfin/date"
)

// AccountType is the kind of holding an Account represents.
type AccountType string

const (
	Checking   AccountType = "CHECKING"
	Savings    AccountType = "SAVINGS"
	Cash       AccountType = "CASH"
	CreditCard AccountType = "CREDIT_CARD"
	Investment AccountType = "INVESTMENT"
)

// Valid reports whether t is a known account type.
func (t AccountType) Valid() bool {
	switch t {
	case Checking, Savings, Cash, CreditCard, Investment:
		return true
	}
	return false
}

// IsLiquidity reports whether the account type holds spendable money
// (checking, savings or cash).
func (t AccountType) IsLiquidity() bool {
	return t == Checking || t == Savings || t == Cash
}

// ParseAccountType returns the account type named s (case insensitive), as is when unknown.
func ParseAccountType(s string) AccountType {
	return AccountType(strings.ToUpper(strings.TrimSpace(s)))
}

// TransactionType is the direction of a Transaction.
type TransactionType string

const (
	Income   TransactionType = "INCOME"
	Expense  TransactionType = "EXPENSE"
	Transfer TransactionType = "TRANSFER"
)

// Valid reports whether t is a known transaction type.
func (t TransactionType) Valid() bool {
	return t == Income || t == Expense || t == Transfer
}

// ParseTransactionType returns the transaction type named s (case insensitive), as is when unknown.
func ParseTransactionType(s string) TransactionType {
	return TransactionType(strings.ToUpper(strings.TrimSpace(s)))
}

// Me is the payer id of the user owning the data.
const Me = "me"

// Account is a holding of money. The core never mutates accounts.
type Account struct {
	ID             string      `json:"id"`
	Name           string      `json:"name"`
	Type           AccountType `json:"type"`
	Balance        float64     `json:"balance"`
	InitialBalance float64     `json:"initialBalance"`
	Currency       string      `json:"currency,omitempty"`
	ClosingDay     int         `json:"closingDay,omitempty"` // credit cards only, 1..31
	DueDay         int         `json:"dueDay,omitempty"`     // credit cards only, 1..31
}

// CurrencyCode returns the account currency, the reporting currency when unset.
func (a Account) CurrencyCode() string { return normalizeCurrency(a.Currency) }

// SafeBalance returns the balance, 0 when it is not a finite number.
func (a Account) SafeBalance() float64 { return ToSafeNumber(a.Balance) }

// BalanceInBRL returns the balance converted to the reporting currency.
func (a Account) BalanceInBRL() float64 { return SafeCurrencyConversion(a.Balance, a.CurrencyCode()) }

// Split is the share of a shared expense owed by another member.
type Split struct {
	MemberID       string  `json:"memberId"`
	Percentage     float64 `json:"percentage,omitempty"`
	AssignedAmount float64 `json:"assignedAmount"`
	IsSettled      bool    `json:"isSettled,omitempty"`
}

// Transaction is a single monetary event. Amount is never signed, the
// direction comes from Type and IsRefund.
type Transaction struct {
	ID                   string          `json:"id"`
	Description          string          `json:"description,omitempty"`
	Amount               float64         `json:"amount"`
	Type                 TransactionType `json:"type"`
	Date                 string          `json:"date"`
	AccountID            string          `json:"accountId,omitempty"`
	DestinationAccountID string          `json:"destinationAccountId,omitempty"`
	DestinationAmount    float64         `json:"destinationAmount,omitempty"`
	Category             string          `json:"category,omitempty"`
	Currency             string          `json:"currency,omitempty"`
	Deleted              bool            `json:"deleted,omitempty"`
	IsRefund             bool            `json:"isRefund,omitempty"`
	IsShared             bool            `json:"isShared,omitempty"`
	PayerID              string          `json:"payerId,omitempty"`
	SharedWith           []Split         `json:"sharedWith,omitempty"`
	IsSettled            bool            `json:"isSettled,omitempty"`
	EnableNotification   bool            `json:"enableNotification,omitempty"`
	NotificationDate     string          `json:"notificationDate,omitempty"`
	TripID               string          `json:"tripId,omitempty"`
	IsInstallment        bool            `json:"isInstallment,omitempty"`
	CurrentInstallment   int             `json:"currentInstallment,omitempty"`
	TotalInstallments    int             `json:"totalInstallments,omitempty"`
	IsPendingInvoice     bool            `json:"isPendingInvoice,omitempty"`
	ExchangeRate         float64         `json:"exchangeRate,omitempty"`
	SourceTransactionID  string          `json:"sourceTransactionId,omitempty"`
}

// Day returns the transaction date, false when it cannot be parsed.
func (t Transaction) Day() (date.Date, bool) {
	d, err := date.Parse(t.Date)
	return d, err == nil
}

// SafeAmount returns the amount, 0 when not a finite number.
func (t Transaction) SafeAmount() float64 { return ToSafeNumber(t.Amount) }

// IAmPayer reports whether the user paid the transaction (no payer means the user).
func (t Transaction) IAmPayer() bool { return t.PayerID == "" || t.PayerID == Me }

// IsMirror reports whether t is a read-only copy of another user's transaction.
func (t Transaction) IsMirror() bool { return t.SourceTransactionID != "" }

// HasSplits reports whether t carries at least one split.
func (t Transaction) HasSplits() bool { return len(t.SharedWith) > 0 }

// IsSharedExpense reports whether t is an expense shared with others: marked
// shared, split, or paid by someone else.
func (t Transaction) IsSharedExpense() bool {
	return t.Type == Expense && (t.IsShared || t.HasSplits() || !t.IAmPayer())
}

// Trip groups transactions of a journey, possibly in a foreign currency.
type Trip struct {
	ID       string `json:"id"`
	Name     string `json:"name,omitempty"`
	Currency string `json:"currency,omitempty"`
}

// accountIndex indexes accounts by id.
type accountIndex map[string]Account

func indexAccounts(accounts []Account) accountIndex {
	idx := make(accountIndex, len(accounts))
	for _, a := range accounts {
		if a.ID != "" {
			idx[a.ID] = a
		}
	}
	return idx
}

// currencyOf resolves a transaction currency: its own, then its account's, then BRL.
func (idx accountIndex) currencyOf(t Transaction) string {
	if t.Currency != "" {
		return normalizeCurrency(t.Currency)
	}
	if a, ok := idx[t.AccountID]; ok {
		return a.CurrencyCode()
	}
	return ReportingCurrency
}

// isLiquidity reports whether id refers to a known liquidity account.
func (idx accountIndex) isLiquidity(id string) bool {
	a, ok := idx[id]
	return ok && a.Type.IsLiquidity()
}

// toBRL converts a transaction amount to the reporting currency, honouring
// an explicit exchange rate for foreign amounts.
func (idx accountIndex) toBRL(t Transaction, amount float64) float64 {
	cur := idx.currencyOf(t)
	if cur != ReportingCurrency && ToSafeNumber(t.ExchangeRate) > 0 {
		return ToSafeNumber(ToSafeNumber(amount) * t.ExchangeRate)
	}
	return SafeCurrencyConversion(amount, cur)
}
