package famfin

import (
	"math"
	"testing"
)

func TestEffectiveValue(t *testing.T) {
	testCases := []struct {
		name string
		tx   Transaction
		want float64
	}{
		{
			name: "not shared",
			tx:   Transaction{Type: Expense, Amount: 100},
			want: 100,
		},
		{
			name: "income is never shared",
			tx:   Transaction{Type: Income, Amount: 100, IsShared: true, SharedWith: []Split{{AssignedAmount: 40}}},
			want: 100,
		},
		{
			name: "I paid, split",
			tx:   Transaction{Type: Expense, Amount: 100, PayerID: Me, SharedWith: []Split{{AssignedAmount: 40}}},
			want: 60,
		},
		{
			name: "friend paid, split",
			tx:   Transaction{Type: Expense, Amount: 100, PayerID: "friend", SharedWith: []Split{{AssignedAmount: 40}}},
			want: 60,
		},
		{
			name: "friend paid, no split",
			tx:   Transaction{Type: Expense, Amount: 95, PayerID: "friend", IsShared: true},
			want: 95,
		},
		{
			name: "settled splits still count",
			tx:   Transaction{Type: Expense, Amount: 100, IsShared: true, SharedWith: []Split{{AssignedAmount: 30, IsSettled: true}, {AssignedAmount: 20}}},
			want: 50,
		},
		{
			name: "corrupted splits give the full amount",
			tx:   Transaction{Type: Expense, Amount: 100, SharedWith: []Split{{AssignedAmount: 80}, {AssignedAmount: 70}}},
			want: 100,
		},
		{
			name: "splits equal to the amount",
			tx:   Transaction{Type: Expense, Amount: 100, SharedWith: []Split{{AssignedAmount: 100}}},
			want: 0,
		},
		{
			name: "NaN amount",
			tx:   Transaction{Type: Expense, Amount: math.NaN(), SharedWith: []Split{{AssignedAmount: 10}}},
			want: 0,
		},
		{
			name: "NaN split",
			tx:   Transaction{Type: Expense, Amount: 100, SharedWith: []Split{{AssignedAmount: math.NaN()}, {AssignedAmount: 25}}},
			want: 75,
		},
		{
			name: "negative split counts as nothing",
			tx:   Transaction{Type: Expense, Amount: 100, PayerID: Me, SharedWith: []Split{{AssignedAmount: -50}}},
			want: 100,
		},
		{
			name: "negative split next to a valid one",
			tx:   Transaction{Type: Expense, Amount: 100, PayerID: Me, SharedWith: []Split{{AssignedAmount: -50}, {AssignedAmount: 30}}},
			want: 70,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := EffectiveValue(tc.tx)
			if got != tc.want {
				t.Errorf("EffectiveValue() = %v, want %v", got, tc.want)
			}
			if amount := math.Abs(tc.tx.SafeAmount()); got < 0 || got > amount {
				t.Errorf("EffectiveValue() = %v, not in [0, %v]", got, amount)
			}
		})
	}
}

func TestIsSplitCorrupted(t *testing.T) {
	tx := Transaction{Type: Expense, Amount: 100, SharedWith: []Split{{AssignedAmount: 60}, {AssignedAmount: 50}}}
	if !IsSplitCorrupted(tx) {
		t.Error("IsSplitCorrupted() = false, want true")
	}
	tx.SharedWith[1].AssignedAmount = 40
	if IsSplitCorrupted(tx) {
		t.Error("IsSplitCorrupted() = true, want false")
	}
	if got := UnsettledSplitsTotal(Transaction{SharedWith: []Split{{AssignedAmount: 10, IsSettled: true}, {AssignedAmount: 5}}}); got != 5 {
		t.Errorf("UnsettledSplitsTotal() = %v, want 5", got)
	}
	if got := SplitsTotal(Transaction{SharedWith: []Split{{AssignedAmount: -50}, {AssignedAmount: 5}}}); got != 5 {
		t.Errorf("SplitsTotal() with a negative split = %v, want 5", got)
	}
}
