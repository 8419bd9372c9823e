package telemetry

import (
	"cmp"
	"math"
	"slices"
	"time"
)

// SourceCount is the number of errors attributed to a source.
type SourceCount struct {
	Source string `json:"source"`
	Count  int    `json:"count"`
}

// HealthReport summarises the errors recorded over a period.
type HealthReport struct {
	PeriodHours      float64            `json:"periodHours"`
	TotalErrors      int                `json:"totalErrors"`
	ByType           map[ErrorType]int  `json:"byType"`
	BySeverity       map[Severity]int   `json:"bySeverity"`
	BySource         map[string]int     `json:"bySource"`
	Operations       int                `json:"operations"`
	Successes        int                `json:"successes"`
	ErrorRate        float64            `json:"errorRate"`        // percent of failed operations
	DataQualityScore float64            `json:"dataQualityScore"` // 0..100
	TopErrorSources  []SourceCount      `json:"topErrorSources"`
	Recommendations  []string           `json:"recommendations"`
	RecentErrors     []CalculationError `json:"recentErrors,omitempty"`
}

const (
	topSources   = 5
	recentErrors = 10
)

// Recommendations emitted by HealthReport.
const (
	RecommendNaN        = "NaN values detected: review the math operations and the sanitization of their inputs."
	RecommendErrorRate  = "Error rate above 10%: review the validation of incoming data."
	RecommendCorruption = "Data corruption detected: check shared expense splits and imported records."
	RecommendInput      = "Invalid inputs detected: some records were replaced by safe defaults."
	RecommendCritical   = "Critical errors recorded: investigate immediately."
	RecommendHealthy    = "No issues detected."
)

// HealthReport builds a report of the errors recorded in the last periodHours
// (a non positive period covers the whole buffer).
func (t *Telemetry) HealthReport(periodHours float64) HealthReport {
	t.mu.Lock()
	errs := slices.Clone(t.errors)
	ops, ok := t.operations, t.successes
	t.mu.Unlock()

	r := HealthReport{
		PeriodHours: periodHours,
		ByType:      map[ErrorType]int{},
		BySeverity:  map[Severity]int{},
		BySource:    map[string]int{},
		Operations:  ops,
		Successes:   ok,
	}
	if periodHours > 0 {
		since := t.now().Add(-time.Duration(periodHours * float64(time.Hour)))
		errs = slices.DeleteFunc(errs, func(e CalculationError) bool { return e.Timestamp.Before(since) })
	}
	r.TotalErrors = len(errs)
	for _, e := range errs {
		r.ByType[e.Type]++
		r.BySeverity[e.Severity]++
		r.BySource[e.Source]++
	}

	if ops > 0 {
		r.ErrorRate = float64(ops-ok) / float64(ops) * 100
	}
	r.DataQualityScore = math.Max(0, 100-r.ErrorRate*2)

	r.TopErrorSources = make([]SourceCount, 0, len(r.BySource))
	for src, n := range r.BySource {
		r.TopErrorSources = append(r.TopErrorSources, SourceCount{Source: src, Count: n})
	}
	slices.SortFunc(r.TopErrorSources, func(a, b SourceCount) int {
		if c := cmp.Compare(b.Count, a.Count); c != 0 {
			return c
		}
		return cmp.Compare(a.Source, b.Source)
	})
	if len(r.TopErrorSources) > topSources {
		r.TopErrorSources = r.TopErrorSources[:topSources]
	}

	if n := len(errs); n > recentErrors {
		errs = errs[n-recentErrors:]
	}
	r.RecentErrors = errs
	r.Recommendations = recommend(r)
	return r
}

func recommend(r HealthReport) []string {
	var res []string
	if r.ByType[NaNDetected] > 0 {
		res = append(res, RecommendNaN)
	}
	if r.ErrorRate > 10 {
		res = append(res, RecommendErrorRate)
	}
	if r.ByType[DataCorruption] > 0 {
		res = append(res, RecommendCorruption)
	}
	if r.ByType[InvalidInput] > 0 {
		res = append(res, RecommendInput)
	}
	if r.BySeverity[Critical] > 0 {
		res = append(res, RecommendCritical)
	}
	if len(res) == 0 {
		res = append(res, RecommendHealthy)
	}
	return res
}
