package famfin

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Precision is the number of decimal places kept by sums and projections.
const Precision = 2

// isFinite reports whether f is neither NaN nor infinite.
func isFinite(f float64) bool { return !math.IsNaN(f) && !math.IsInf(f, 0) }

// ToSafeNumber converts any value into a finite float64.
//
// Strings are parsed, numbers are kept when finite, booleans become 1 or 0.
// Anything else (nil, objects, slices, unparseable or non-finite values)
// yields the fallback, 0 by default. The result is never NaN nor infinite.
func ToSafeNumber(value any, fallback ...float64) float64 {
	fb := 0.0
	if len(fallback) > 0 && isFinite(fallback[0]) {
		fb = fallback[0]
	}
	f, ok := toNumber(value)
	if !ok || !isFinite(f) {
		return fb
	}
	return f
}

// toNumber converts value into a float64, ok is false when it is not numeric at all.
// The result may be non-finite.
func toNumber(value any) (float64, bool) {
	switch v := value.(type) {
	case nil:
		return 0, false
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int8:
		return float64(v), true
	case int16:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint:
		return float64(v), true
	case uint8:
		return float64(v), true
	case uint16:
		return float64(v), true
	case uint32:
		return float64(v), true
	case uint64:
		return float64(v), true
	case bool:
		if v {
			return 1, true
		}
		return 0, true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		return f, err == nil
	case json.Number:
		f, err := v.Float64()
		return f, err == nil
	case decimal.Decimal:
		return v.InexactFloat64(), true
	case *float64:
		if v == nil {
			return 0, false
		}
		return *v, true
	default:
		return 0, false
	}
}

// SafeSum adds values converted with ToSafeNumber. The accumulation is exact
// and the result is rounded to Precision decimal places.
func SafeSum[T any](values []T) float64 {
	sum := decimal.Zero
	for _, v := range values {
		sum = sum.Add(decimal.NewFromFloat(ToSafeNumber(v)))
	}
	return toFloat(sum.Round(Precision))
}

// toFloat converts d into a finite float64. Values beyond the float64 range
// saturate to ±math.MaxFloat64.
func toFloat(d decimal.Decimal) float64 {
	f := d.InexactFloat64()
	switch {
	case math.IsInf(f, 1):
		return math.MaxFloat64
	case math.IsInf(f, -1):
		return -math.MaxFloat64
	case math.IsNaN(f):
		return 0
	}
	return f
}

// IsSaturated reports whether f reached the bound of the float64 range.
func IsSaturated(f float64) bool { return math.Abs(f) == math.MaxFloat64 }

// SafeAverage returns the average of values, 0 for an empty list.
func SafeAverage[T any](values []T) float64 {
	if len(values) == 0 {
		return 0
	}
	return SafeSum(values) / float64(len(values))
}

// SafePercentage returns part/total*100, or 0 when total is 0. It may be negative.
func SafePercentage(part, total any) float64 {
	t := ToSafeNumber(total)
	if t == 0 {
		return 0
	}
	return ToSafeNumber(ToSafeNumber(part) / t * 100)
}

// Round rounds value half away from zero to the given number of decimal places.
// Non-finite values round to 0.
func Round(value float64, places int32) float64 {
	if !isFinite(value) {
		return 0
	}
	return toFloat(decimal.NewFromFloat(value).Round(places))
}

// SafeOperation runs fn and returns its result, or fallback when fn returns an
// error, panics, or returns a non-finite float64.
func SafeOperation[T any](fn func() (T, error), fallback T) (result T) {
	defer func() {
		if r := recover(); r != nil {
			result = fallback
		}
	}()
	res, err := fn()
	if err != nil {
		return fallback
	}
	if f, ok := any(res).(float64); ok && !isFinite(f) {
		return fallback
	}
	return res
}

// errorf is used by helpers passed to SafeOperation to describe their failure.
func errorf(context, format string, args ...any) error {
	return fmt.Errorf("%s: %s", context, fmt.Sprintf(format, args...))
}
