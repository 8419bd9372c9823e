package famfin

import "github.com/etnz/famfin/date"

// DefaultSparklineDays is the length of a sparkline when none is given.
const DefaultSparklineDays = 7

// Sparkline returns, for each of the last 'days' days ending today, the sum of
// the raw amounts of visible transactions of type typ.
//
// TODO(product): amounts are neither converted to BRL nor resolved to their
// effective value, unlike every other aggregate; confirm whether this is wanted.
func Sparkline(transactions []Transaction, typ TransactionType, today date.Date, days int) []float64 {
	if days <= 0 {
		days = DefaultSparklineDays
	}
	window := date.LastDays(today, days)
	var h date.History[float64]
	for _, t := range transactions {
		if t.Type != typ || !ShouldShowTransaction(t) {
			continue
		}
		day, ok := t.Day()
		if !ok || !window.Contains(day) {
			continue
		}
		h.AppendAdd(day, t.SafeAmount())
	}
	res := h.Over(window)
	for i, v := range res {
		res[i] = Round(v, Precision)
	}
	return res
}
