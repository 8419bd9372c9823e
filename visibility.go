package famfin

// IsUnpaidDebt reports whether someone else paid t and the user has not paid
// them back yet. Such a debt is economically inert until settled.
func IsUnpaidDebt(t Transaction) bool {
	return !t.IAmPayer() && !t.IsSettled
}

// isPendingSharedRecord reports whether t is a shared record paid by someone else.
func isPendingSharedRecord(t Transaction) bool { return t.IsShared && !t.IAmPayer() }

// ShouldShowTransaction reports whether t belongs to any general view.
//
// Deleted transactions, unsettled imported invoices, unpaid debts and orphans
// (no account, unless shared by someone else) are hidden.
func ShouldShowTransaction(t Transaction) bool {
	switch {
	case t.Deleted:
		return false
	case t.IsPendingInvoice && !t.IsSettled:
		return false
	case IsUnpaidDebt(t):
		return false
	case t.AccountID == "" && !isPendingSharedRecord(t):
		return false
	}
	return true
}

// IsForeignTransaction reports whether t is not in the reporting currency:
// its own currency, or the currency of its source or destination account.
func IsForeignTransaction(t Transaction, accounts []Account) bool {
	return indexAccounts(accounts).isForeign(t)
}

func (idx accountIndex) isForeign(t Transaction) bool {
	if t.Currency != "" && normalizeCurrency(t.Currency) != ReportingCurrency {
		return true
	}
	for _, id := range []string{t.AccountID, t.DestinationAccountID} {
		if a, ok := idx[id]; ok && a.CurrencyCode() != ReportingCurrency {
			return true
		}
	}
	return false
}

// FilterDashboardTransactions keeps the transactions of the reporting currency
// dashboard: not deleted, not foreign, and when linked to a known trip, only
// if the trip is in the reporting currency.
func FilterDashboardTransactions(transactions []Transaction, accounts []Account, trips []Trip) []Transaction {
	idx := indexAccounts(accounts)
	tripCurrency := make(map[string]string, len(trips))
	for _, trip := range trips {
		tripCurrency[trip.ID] = normalizeCurrency(trip.Currency)
	}
	res := make([]Transaction, 0, len(transactions))
	for _, t := range transactions {
		if t.Deleted || idx.isForeign(t) {
			continue
		}
		if cur, ok := tripCurrency[t.TripID]; t.TripID != "" && ok && cur != ReportingCurrency {
			continue
		}
		res = append(res, t)
	}
	return res
}
