package famfin

// SanitizeAccounts returns a copy of accounts whose numeric fields are finite.
// No account is dropped and the order is kept. A nil slice gives an empty one.
func SanitizeAccounts(accounts []Account) []Account {
	res := make([]Account, len(accounts))
	for i, a := range accounts {
		a.Balance = ToSafeNumber(a.Balance)
		a.InitialBalance = ToSafeNumber(a.InitialBalance)
		res[i] = a
	}
	return res
}

// SanitizeTransactions returns a copy of transactions whose numeric fields are
// finite. No transaction is dropped and the order is kept. Split slices are
// copied, the input is never shared.
func SanitizeTransactions(transactions []Transaction) []Transaction {
	res := make([]Transaction, len(transactions))
	for i, t := range transactions {
		t.Amount = ToSafeNumber(t.Amount)
		t.DestinationAmount = ToSafeNumber(t.DestinationAmount)
		t.ExchangeRate = ToSafeNumber(t.ExchangeRate)
		if t.SharedWith != nil {
			splits := make([]Split, len(t.SharedWith))
			for j, s := range t.SharedWith {
				s.AssignedAmount = ToSafeNumber(s.AssignedAmount)
				s.Percentage = ToSafeNumber(s.Percentage)
				splits[j] = s
			}
			t.SharedWith = splits
		}
		res[i] = t
	}
	return res
}
