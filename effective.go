package famfin

import "math"

// splitAmount is the amount assigned by a split, negative amounts counting as 0.
func splitAmount(s Split) float64 { return math.Max(0, ToSafeNumber(s.AssignedAmount)) }

// SplitsTotal returns the sum of the amounts assigned to other members.
func SplitsTotal(t Transaction) float64 {
	amounts := make([]float64, len(t.SharedWith))
	for i, s := range t.SharedWith {
		amounts[i] = splitAmount(s)
	}
	return SafeSum(amounts)
}

// UnsettledSplitsTotal returns the sum of the amounts other members still owe.
func UnsettledSplitsTotal(t Transaction) float64 {
	var amounts []float64
	for _, s := range t.SharedWith {
		if !s.IsSettled {
			amounts = append(amounts, splitAmount(s))
		}
	}
	return SafeSum(amounts)
}

// IsSplitCorrupted reports whether the splits add up to more than the amount.
func IsSplitCorrupted(t Transaction) bool {
	return SplitsTotal(t) > math.Abs(t.SafeAmount())
}

// EffectiveValue returns what t really cost the user once shared splits are
// taken into account. It is never negative and never above the amount.
//
// Non shared transactions and non expenses cost their amount. When the splits
// exceed the amount the record is corrupted and the full amount is returned.
func EffectiveValue(t Transaction) float64 {
	amount := math.Abs(t.SafeAmount())
	if !t.IsSharedExpense() {
		return amount
	}
	splits := SplitsTotal(t)
	if splits > amount {
		return amount
	}
	// Whether the user fronted the money (and gets the others' shares back) or
	// someone else paid (and the user owes their own share), the cost is the
	// part not assigned to others.
	return clamp(Round(amount-splits, Precision), 0, amount)
}

// monthlyExpenseValue is the expense value used by monthly totals: when the
// user paid, only the shares still owed by others are deducted.
func monthlyExpenseValue(t Transaction) float64 {
	amount := math.Abs(t.SafeAmount())
	if !t.IsSharedExpense() {
		return amount
	}
	if !t.IAmPayer() {
		return EffectiveValue(t)
	}
	if IsSplitCorrupted(t) {
		return amount
	}
	return clamp(Round(amount-UnsettledSplitsTotal(t), Precision), 0, amount)
}

// clamp bounds v to [lo, hi].
func clamp(v, lo, hi float64) float64 { return math.Min(hi, math.Max(lo, v)) }
