package date

import "iter"

// Range represents a range of dates, boundaries included.
type Range struct{ From, To Date }

// NewRange returns the period range containing d.
func NewRange(d Date, period Period) Range {
	return Range{From: d.StartOf(period), To: d.EndOf(period)}
}

// LastDays returns the range of the n days ending on 'to' (included).
func LastDays(to Date, n int) Range {
	if n < 1 {
		n = 1
	}
	return Range{From: to.Add(1 - n), To: to}
}

// Contains return true date is included in the range (boundaries included)
func (r Range) Contains(date Date) bool { return !date.Before(r.From) && !date.After(r.To) }

// Days iterates over every day of the range in chronological order.
func (r Range) Days() iter.Seq[Date] {
	return func(yield func(Date) bool) {
		for d := r.From; !d.After(r.To); d = d.Add(1) {
			if !yield(d) {
				return
			}
		}
	}
}

// Months iterates over the first day of every month overlapping the range.
func (r Range) Months() iter.Seq[Date] {
	return func(yield func(Date) bool) {
		for d := r.From.StartOf(Monthly); !d.After(r.To); d = d.AddMonth(1) {
			if !yield(d) {
				return
			}
		}
	}
}
