package famfin

import (
	"fmt"
	"math"
)

// Validation is the outcome of validating a record: the list of problems
// found and a sanitized copy of the record that is always safe to compute with.
type Validation[T any] struct {
	IsValid   bool     `json:"isValid"`
	Errors    []string `json:"errors,omitempty"`
	Sanitized T        `json:"sanitized"`
}

// problems collects validation errors.
type problems []string

func (p *problems) addf(format string, args ...any) { *p = append(*p, fmt.Sprintf(format, args...)) }

func validation[T any](p problems, sanitized T) Validation[T] {
	return Validation[T]{IsValid: len(p) == 0, Errors: p, Sanitized: sanitized}
}

// checkCurrency records a currency code the rate table cannot convert,
// telling ISO 4217 codes without a rate apart from malformed codes.
func checkCurrency(code string, p *problems) {
	switch {
	case IsKnownCurrency(code):
	case IsISOCurrency(code):
		p.addf("no conversion rate for currency %q", code)
	default:
		p.addf("unknown currency %q", code)
	}
}

// validDay reports whether d is a day of month, 0 meaning unset.
func validDay(d int) bool { return d >= 0 && d <= 31 }

// ValidateAccount checks an account and returns a sanitized copy: the balance
// is made finite, an unknown type becomes CHECKING and the currency defaults
// to the reporting currency. The input is never modified.
func ValidateAccount(a Account) Validation[Account] {
	var p problems
	s := a

	if a.ID == "" {
		p.addf("missing id")
	}
	if a.Name == "" {
		p.addf("missing name")
	}
	if !isFinite(a.Balance) {
		p.addf("balance is not a finite number: %v", a.Balance)
		s.Balance = 0
	}
	if !isFinite(a.InitialBalance) {
		p.addf("initial balance is not a finite number: %v", a.InitialBalance)
		s.InitialBalance = 0
	}
	if !a.Type.Valid() {
		p.addf("unknown account type %q", a.Type)
		s.Type = Checking
	}
	checkCurrency(a.Currency, &p)
	s.Currency = a.CurrencyCode()
	if !validDay(a.ClosingDay) {
		p.addf("closing day %d is not in 1..31", a.ClosingDay)
		s.ClosingDay = 0
	}
	if !validDay(a.DueDay) {
		p.addf("due day %d is not in 1..31", a.DueDay)
		s.DueDay = 0
	}
	return validation(p, s)
}

// ValidateTransaction checks a transaction and returns a sanitized copy. The
// input is never modified.
func ValidateTransaction(t Transaction) Validation[Transaction] {
	var p problems
	s := t

	if t.ID == "" {
		p.addf("missing id")
	}
	switch {
	case !isFinite(t.Amount):
		p.addf("amount is not a finite number: %v", t.Amount)
		s.Amount = 0
	case t.Amount < 0:
		p.addf("amount must not be negative: %v", t.Amount)
		s.Amount = math.Abs(t.Amount)
	}
	if !t.Type.Valid() {
		p.addf("unknown transaction type %q", t.Type)
		s.Type = Expense
	}
	if _, ok := t.Day(); !ok {
		p.addf("invalid date %q", t.Date)
	}
	if t.NotificationDate != "" {
		if _, ok := (Transaction{Date: t.NotificationDate}).Day(); !ok {
			p.addf("invalid notification date %q", t.NotificationDate)
		}
	}
	if t.AccountID == "" && !(t.IsShared && !t.IAmPayer()) && !t.IsMirror() {
		p.addf("missing account id")
	}
	if t.Currency != "" {
		checkCurrency(t.Currency, &p)
	}

	if t.Type == Transfer {
		switch {
		case t.DestinationAccountID == "":
			p.addf("transfer without destination account")
		case t.DestinationAccountID == t.AccountID:
			p.addf("transfer from and to the same account %q", t.AccountID)
		}
	}
	if !isFinite(t.DestinationAmount) || t.DestinationAmount < 0 {
		p.addf("destination amount is not a positive number: %v", t.DestinationAmount)
		s.DestinationAmount = 0
	}
	if !isFinite(t.ExchangeRate) || t.ExchangeRate < 0 {
		p.addf("exchange rate is not a positive number: %v", t.ExchangeRate)
		s.ExchangeRate = 0
	}

	validateSplits(t, &s, &p)

	if t.IsInstallment {
		if t.TotalInstallments < 1 {
			p.addf("installment without a total count")
		} else if t.CurrentInstallment < 1 || t.CurrentInstallment > t.TotalInstallments {
			p.addf("installment %d is not in 1..%d", t.CurrentInstallment, t.TotalInstallments)
		}
	}
	return validation(p, s)
}

func validateSplits(t Transaction, s *Transaction, p *problems) {
	if !t.HasSplits() {
		return
	}
	s.SharedWith = make([]Split, len(t.SharedWith))
	percentages := 0.0
	for i, sp := range t.SharedWith {
		if !isFinite(sp.AssignedAmount) || sp.AssignedAmount < 0 {
			p.addf("split %d assigned amount is not a positive number: %v", i, sp.AssignedAmount)
			sp.AssignedAmount = math.Abs(ToSafeNumber(sp.AssignedAmount))
		}
		if sp.Percentage < 0 || sp.Percentage > 100 {
			p.addf("split %d percentage %v is not in 0..100", i, sp.Percentage)
		}
		if sp.MemberID == "" {
			p.addf("split %d without member", i)
		}
		percentages += ToSafeNumber(sp.Percentage)
		s.SharedWith[i] = sp
	}
	if percentages > 100 {
		p.addf("split percentages add up to %v%%", percentages)
	}
	if total := SplitsTotal(*s); total > s.SafeAmount() {
		p.addf("shared splits total %v exceeds amount %v", total, s.SafeAmount())
	}
}

// ParseAccount decodes and validates a raw account record.
func ParseAccount(raw Raw) Validation[Account] { return ValidateAccount(DecodeAccount(raw)) }

// ParseTransaction decodes and validates a raw transaction record.
func ParseTransaction(raw Raw) Validation[Transaction] {
	return ValidateTransaction(DecodeTransaction(raw))
}
