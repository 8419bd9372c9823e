package telemetry

import (
	"fmt"
	"math"
	"reflect"
	"time"
)

// DetectNaN reports whether result holds a NaN anywhere (numbers, slices,
// arrays, maps, struct fields, pointers). Infinity is not NaN. When found, a
// HIGH severity NaN_DETECTED error is recorded.
func (t *Telemetry) DetectNaN(result any, source, operation string, inputs map[string]any) bool {
	path, found := findNaN(reflect.ValueOf(result), "result", 0)
	if !found {
		return false
	}
	t.LogError(NaNDetected, source, operation, inputs,
		fmt.Sprintf("NaN detected in %s", path), High,
		map[string]any{"path": path})
	return true
}

const maxNaNDepth = 16

func findNaN(v reflect.Value, path string, depth int) (string, bool) {
	if !v.IsValid() || depth > maxNaNDepth {
		return "", false
	}
	switch v.Kind() {
	case reflect.Float32, reflect.Float64:
		return path, math.IsNaN(v.Float())
	case reflect.Complex64, reflect.Complex128:
		c := v.Complex()
		return path, math.IsNaN(real(c)) || math.IsNaN(imag(c))
	case reflect.Pointer, reflect.Interface:
		if v.IsNil() {
			return "", false
		}
		return findNaN(v.Elem(), path, depth+1)
	case reflect.Slice, reflect.Array:
		for i := 0; i < v.Len(); i++ {
			if p, ok := findNaN(v.Index(i), fmt.Sprintf("%s[%d]", path, i), depth+1); ok {
				return p, true
			}
		}
	case reflect.Map:
		iter := v.MapRange()
		for iter.Next() {
			if p, ok := findNaN(iter.Value(), fmt.Sprintf("%s[%v]", path, iter.Key()), depth+1); ok {
				return p, true
			}
		}
	case reflect.Struct:
		typ := v.Type()
		for i := 0; i < v.NumField(); i++ {
			if p, ok := findNaN(v.Field(i), path+"."+typ.Field(i).Name, depth+1); ok {
				return p, true
			}
		}
	}
	return "", false
}

// Metadata describes how an operation went.
type Metadata struct {
	InputsValidated bool          `json:"inputsValidated"` // false when an input looked suspicious
	FallbacksUsed   int           `json:"fallbacksUsed"`
	CalculationTime time.Duration `json:"calculationTime"`
}

// Outcome is the result of Calculate. Result always holds a usable value:
// the operation's own result on success, the fallback otherwise.
type Outcome[T any] struct {
	Success  bool     `json:"success"`
	Result   T        `json:"result"`
	Errors   []string `json:"errors,omitempty"`
	Warnings []string `json:"warnings,omitempty"`
	Metadata Metadata `json:"metadata"`
}

// Calculate runs operation under t's supervision.
//
// Suspicious inputs are logged as warnings and the operation still runs. A
// panic or a NaN in the result is logged and replaced by fallback. Every call
// counts toward the health report error rate.
func Calculate[T any](t *Telemetry, source, operation string, inputs map[string]any, fallback T, fn func() T) Outcome[T] {
	start := time.Now()
	out := Outcome[T]{Result: fallback}

	problems := inputProblems(inputs)
	out.Metadata.InputsValidated = len(problems) == 0
	for _, p := range problems {
		out.Warnings = append(out.Warnings, p)
		t.LogError(InvalidInput, source, operation, inputs, p, Medium)
	}

	result, err := run(fn)
	switch {
	case err != nil:
		out.Errors = append(out.Errors, err.Error())
		t.LogError(CalculationFailed, source, operation, inputs, err.Error(), High)
	case t.DetectNaN(result, source, operation, inputs):
		out.Errors = append(out.Errors, "result contains NaN")
	default:
		out.Success = true
		out.Result = result
	}
	if !out.Success {
		out.Metadata.FallbacksUsed = 1
	}
	t.count(out.Success)
	out.Metadata.CalculationTime = time.Since(start)
	return out
}

// run calls fn converting a panic into an error.
func run[T any](fn func() T) (result T, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("operation panicked: %v", r)
		}
	}()
	if fn == nil {
		return result, fmt.Errorf("no operation to run")
	}
	return fn(), nil
}
