package telemetry

import (
	"fmt"
	"maps"
	"math"
	"reflect"
	"regexp"
	"slices"
)

// Redacted replaces the value of sensitive input fields.
const Redacted = "[REDACTED]"

const (
	maxFields = 10 // fields kept per logged object
	maxItems  = 10 // slices longer than this are summarised
	maxDepth  = 3
)

var sensitiveKey = regexp.MustCompile(`(?i)password|secret|token`)

// SanitizeInputs returns a copy of inputs safe to log: sensitive keys are
// redacted, objects are capped to a fixed number of fields (sorted by key) and
// long slices are replaced by a short summary.
func SanitizeInputs(inputs map[string]any) map[string]any {
	if inputs == nil {
		return nil
	}
	return sanitizeMap(inputs, 0)
}

func sanitizeMap(m map[string]any, depth int) map[string]any {
	keys := slices.Sorted(maps.Keys(m))
	res := make(map[string]any, min(len(keys), maxFields+1))
	for i, k := range keys {
		if i == maxFields {
			res["_truncated"] = len(keys) - maxFields
			break
		}
		if sensitiveKey.MatchString(k) {
			res[k] = Redacted
			continue
		}
		res[k] = sanitizeValue(m[k], depth+1)
	}
	return res
}

func sanitizeValue(v any, depth int) any {
	switch x := v.(type) {
	case nil, string, bool, int, int64:
		return x
	case float64:
		return loggableFloat(x)
	case float32:
		return loggableFloat(float64(x))
	case map[string]any:
		if depth >= maxDepth {
			return fmt.Sprintf("{%d fields}", len(x))
		}
		return sanitizeMap(x, depth)
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		if rv.Len() > maxItems || depth >= maxDepth {
			return fmt.Sprintf("[%d items]", rv.Len())
		}
		res := make([]any, rv.Len())
		for i := range res {
			res[i] = sanitizeValue(rv.Index(i).Interface(), depth+1)
		}
		return res
	}
	return fmt.Sprintf("%v", v)
}

// loggableFloat keeps non-finite values readable once encoded.
func loggableFloat(f float64) any {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return fmt.Sprint(f)
	}
	return f
}

// inputProblems lists the reasons an input set looks suspicious: nil values,
// non-finite numbers, or slices containing non-finite numbers.
func inputProblems(inputs map[string]any) []string {
	var problems []string
	for _, k := range slices.Sorted(maps.Keys(inputs)) {
		v := inputs[k]
		if v == nil {
			problems = append(problems, fmt.Sprintf("input %q is null", k))
			continue
		}
		rv := reflect.ValueOf(v)
		switch rv.Kind() {
		case reflect.Pointer, reflect.Map, reflect.Interface:
			if rv.IsNil() {
				problems = append(problems, fmt.Sprintf("input %q is null", k))
			}
		case reflect.Float32, reflect.Float64:
			if !finite(rv.Float()) {
				problems = append(problems, fmt.Sprintf("input %q is not a finite number: %v", k, v))
			}
		case reflect.Slice, reflect.Array:
			for i := 0; i < rv.Len(); i++ {
				e := rv.Index(i)
				if e.Kind() == reflect.Interface && !e.IsNil() {
					e = e.Elem()
				}
				if (e.Kind() == reflect.Float32 || e.Kind() == reflect.Float64) && !finite(e.Float()) {
					problems = append(problems, fmt.Sprintf("input %q contains a non finite number at %d", k, i))
					break
				}
			}
		}
	}
	return problems
}

func finite(f float64) bool { return !math.IsNaN(f) && !math.IsInf(f, 0) }
