package famfin

// NetWorth is the cash-basis worth of the reporting currency accounts:
// liquidity balances minus credit card balances (always a liability).
// Investments, receivables and payables are excluded.
func NetWorth(accounts []Account) float64 {
	total := BRL(0)
	for _, a := range accounts {
		if a.CurrencyCode() != ReportingCurrency {
			continue
		}
		switch {
		case a.Type.IsLiquidity():
			total = total.Add(BRL(a.SafeBalance()))
		case a.Type == CreditCard:
			total = total.Sub(BRL(a.SafeBalance()).Abs())
		}
	}
	return total.Float()
}
