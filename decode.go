package famfin

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Raw is an untyped record as received from the backend.
type Raw = map[string]any

// rawString returns v as a string: strings as is, numbers formatted, anything else empty.
func rawString(v any) string {
	switch x := v.(type) {
	case string:
		return strings.TrimSpace(x)
	case json.Number:
		return x.String()
	case float64:
		if !isFinite(x) {
			return ""
		}
		return strconv.FormatFloat(x, 'f', -1, 64)
	case int, int64:
		return fmt.Sprint(x)
	default:
		return ""
	}
}

// rawNumber returns v as a float64. Absent values give 'missing', present but
// non numeric values give NaN so that validation can flag them.
func rawNumber(v any, present bool, missing float64) float64 {
	if !present || v == nil {
		return missing
	}
	f, ok := toNumber(v)
	if !ok {
		return math.NaN()
	}
	return f
}

// rawInt returns v as an int, 0 when not numeric.
func rawInt(v any) int {
	f := ToSafeNumber(v)
	if f > math.MaxInt32 || f < math.MinInt32 {
		return 0
	}
	return int(f)
}

// rawBool accepts booleans, "true"/"false" strings and numbers.
func rawBool(v any) bool {
	switch x := v.(type) {
	case bool:
		return x
	case string:
		b, _ := strconv.ParseBool(strings.TrimSpace(x))
		return b
	default:
		return ToSafeNumber(v) != 0
	}
}

func field(raw Raw, key string) (any, bool) {
	v, ok := raw[key]
	return v, ok
}

// DecodeAccount converts a raw record into an Account without validating it.
// A missing balance, or a field that should be numeric but is not, is decoded
// as NaN.
func DecodeAccount(raw Raw) Account {
	if raw == nil {
		return Account{Balance: math.NaN()}
	}
	balance, hasBalance := field(raw, "balance")
	initial, hasInitial := field(raw, "initialBalance")
	return Account{
		ID:             rawString(raw["id"]),
		Name:           rawString(raw["name"]),
		Type:           ParseAccountType(rawString(raw["type"])),
		Balance:        rawNumber(balance, hasBalance, math.NaN()),
		InitialBalance: rawNumber(initial, hasInitial, 0),
		Currency:       strings.ToUpper(rawString(raw["currency"])),
		ClosingDay:     rawInt(raw["closingDay"]),
		DueDay:         rawInt(raw["dueDay"]),
	}
}

// DecodeTransaction converts a raw record into a Transaction without validating it.
func DecodeTransaction(raw Raw) Transaction {
	if raw == nil {
		return Transaction{Amount: math.NaN()}
	}
	amount, hasAmount := field(raw, "amount")
	dest, hasDest := field(raw, "destinationAmount")
	rate, hasRate := field(raw, "exchangeRate")
	t := Transaction{
		ID:                   rawString(raw["id"]),
		Description:          rawString(raw["description"]),
		Amount:               rawNumber(amount, hasAmount, math.NaN()),
		Type:                 ParseTransactionType(rawString(raw["type"])),
		Date:                 rawString(raw["date"]),
		AccountID:            rawString(raw["accountId"]),
		DestinationAccountID: rawString(raw["destinationAccountId"]),
		DestinationAmount:    rawNumber(dest, hasDest, 0),
		Category:             rawString(raw["category"]),
		Currency:             strings.ToUpper(rawString(raw["currency"])),
		Deleted:              rawBool(raw["deleted"]),
		IsRefund:             rawBool(raw["isRefund"]),
		IsShared:             rawBool(raw["isShared"]),
		PayerID:              rawString(raw["payerId"]),
		IsSettled:            rawBool(raw["isSettled"]),
		EnableNotification:   rawBool(raw["enableNotification"]),
		NotificationDate:     rawString(raw["notificationDate"]),
		TripID:               rawString(raw["tripId"]),
		IsInstallment:        rawBool(raw["isInstallment"]),
		CurrentInstallment:   rawInt(raw["currentInstallment"]),
		TotalInstallments:    rawInt(raw["totalInstallments"]),
		IsPendingInvoice:     rawBool(raw["isPendingInvoice"]),
		ExchangeRate:         rawNumber(rate, hasRate, 0),
		SourceTransactionID:  rawString(raw["sourceTransactionId"]),
	}
	if splits, ok := raw["sharedWith"].([]any); ok {
		for _, s := range splits {
			m, ok := s.(map[string]any)
			if !ok {
				continue
			}
			assigned, hasAssigned := field(m, "assignedAmount")
			t.SharedWith = append(t.SharedWith, Split{
				MemberID:       rawString(m["memberId"]),
				Percentage:     ToSafeNumber(m["percentage"]),
				AssignedAmount: rawNumber(assigned, hasAssigned, 0),
				IsSettled:      rawBool(m["isSettled"]),
			})
		}
	}
	return t
}

// DecodeTrip converts a raw record into a Trip.
func DecodeTrip(raw Raw) Trip {
	return Trip{
		ID:       rawString(raw["id"]),
		Name:     rawString(raw["name"]),
		Currency: strings.ToUpper(rawString(raw["currency"])),
	}
}
