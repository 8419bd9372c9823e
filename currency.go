package famfin

import (
	"strings"

	"github.com/Rhymond/go-money"
)

// ReportingCurrency is the currency every dashboard aggregate is normalized to.
const ReportingCurrency = "BRL"

// rates maps a currency code to the number of BRL one unit is worth.
// It is a static snapshot, there is no live market data.
var rates = map[string]float64{
	"BRL": 1,
	"USD": 5.0,
	"EUR": 5.5,
	"GBP": 6.4,
	"CHF": 5.8,
	"CAD": 3.7,
	"AUD": 3.3,
	"JPY": 0.034,
	"CNY": 0.70,
	"MXN": 0.29,
	"ARS": 0.0055,
	"CLP": 0.0055,
	"COP": 0.0013,
	"UYU": 0.13,
	"PYG": 0.00068,
	"PEN": 1.35,
}

// normalizeCurrency trims and upper-cases a currency code, empty meaning the reporting currency.
func normalizeCurrency(code string) string {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return ReportingCurrency
	}
	return code
}

// Rate returns the BRL multiplier of a currency code. Unknown codes are
// treated as BRL (multiplier 1) and reported with ok=false.
func Rate(code string) (rate float64, ok bool) {
	rate, ok = rates[normalizeCurrency(code)]
	if !ok {
		return 1, false
	}
	return rate, true
}

// IsKnownCurrency reports whether code has a conversion rate. A code that is a
// valid ISO 4217 currency but absent from the rate table is still unknown.
func IsKnownCurrency(code string) bool {
	_, ok := Rate(code)
	return ok
}

// IsISOCurrency reports whether code is an ISO 4217 currency code.
func IsISOCurrency(code string) bool {
	return money.GetCurrency(normalizeCurrency(code)) != nil
}

// ConvertToBRL converts amount expressed in 'code' to BRL.
func ConvertToBRL(amount any, code string) float64 {
	rate, _ := Rate(code)
	return ToSafeNumber(amount) * rate
}

// SafeCurrencyConversion converts amount to BRL, returning the unconverted
// amount if the conversion fails.
func SafeCurrencyConversion(amount any, code string) float64 {
	safe := ToSafeNumber(amount)
	return SafeOperation(func() (float64, error) {
		v := ConvertToBRL(safe, code)
		if !isFinite(v) {
			return 0, errorf("currency conversion", "%v %s is not convertible", safe, code)
		}
		return v, nil
	}, safe)
}

// Convert converts amount from one currency to another through BRL.
func Convert(amount float64, from, to string) float64 {
	from, to = normalizeCurrency(from), normalizeCurrency(to)
	if from == to {
		return ToSafeNumber(amount)
	}
	r, _ := Rate(to)
	return ToSafeNumber(ConvertToBRL(amount, from) / r)
}
