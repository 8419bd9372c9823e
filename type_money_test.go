package famfin

import (
	"math"
	"testing"
)

func TestMoney_String(t *testing.T) {
	testCases := []struct {
		m    Money
		want string
	}{
		{m: BRL(1234.56), want: "R$1.234,56"},
		{m: BRL(-1234.56), want: "-R$1.234,56"},
		{m: BRL(0), want: "R$0,00"},
		{m: M(10.0, "USD"), want: "$10.00"},
		{m: M(math.NaN(), "BRL"), want: "R$0,00"},
	}
	for _, tc := range testCases {
		t.Run(tc.want, func(t *testing.T) {
			if got := tc.m.String(); got != tc.want {
				t.Errorf("String() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestMoney_SignedString(t *testing.T) {
	if got := BRL(0).SignedString(); got != "-" {
		t.Errorf("SignedString(0) = %q, want %q", got, "-")
	}
	if got := BRL(5).SignedString(); got != "+R$5,00" {
		t.Errorf("SignedString(5) = %q, want %q", got, "+R$5,00")
	}
	if got := BRL(-5).SignedString(); got != "-R$5,00" {
		t.Errorf("SignedString(-5) = %q, want %q", got, "-R$5,00")
	}
}

func TestMoney_Arithmetic(t *testing.T) {
	sum := BRL(10).Add(M(2.0, "USD"))
	if !sum.Equal(BRL(20)) {
		t.Errorf("BRL(10)+USD(2) = %v, want R$20,00", sum)
	}
	if got := BRL(10).Sub(BRL(15)); got.IsPositive() || got.Float() != -5 {
		t.Errorf("BRL(10)-BRL(15) = %v, want -5", got)
	}
	if got := M(2.0, "USD").In("BRL").Float(); got != 10 {
		t.Errorf("USD(2).In(BRL) = %v, want 10", got)
	}
	if got := BRL(math.MaxFloat64).Add(BRL(math.MaxFloat64)).Float(); got != math.MaxFloat64 {
		t.Errorf("MaxFloat64+MaxFloat64 = %v, want MaxFloat64", got)
	}
	if got := BRL(-math.MaxFloat64).Sub(BRL(math.MaxFloat64)).Float(); got != -math.MaxFloat64 {
		t.Errorf("-MaxFloat64-MaxFloat64 = %v, want -MaxFloat64", got)
	}
	if got := BRL(-3).Abs().Float(); got != 3 {
		t.Errorf("Abs(-3) = %v, want 3", got)
	}
	if got := M(1, "").Currency(); got != ReportingCurrency {
		t.Errorf("Currency() = %q, want %q", got, ReportingCurrency)
	}
}
