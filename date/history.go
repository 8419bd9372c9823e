package date

import "slices"

// History stores a chronological series of values, each associated with a specific day.
// Days are unique and the series is always sorted.
type History[T float64 | int] struct {
	days   []Date
	values []T
}

// search returns the index of day, or where it would be inserted.
func (h *History[T]) search(day Date) (int, bool) {
	return slices.BinarySearchFunc(h.days, day, func(d, t Date) int {
		switch {
		case d.After(t):
			return 1
		case d.Before(t):
			return -1
		}
		return 0
	})
}

// AppendAdd adds q to the value at 'on', creating the point if needed.
func (h *History[T]) AppendAdd(on Date, q T) *History[T] {
	i, found := h.search(on)
	if found {
		h.values[i] += q
		return h
	}
	h.days = slices.Insert(h.days, i, on)
	h.values = slices.Insert(h.values, i, q)
	return h
}

// Get returns the value at 'day' and true or zero value and false.
func (h *History[T]) Get(day Date) (T, bool) {
	if i, found := h.search(day); found {
		return h.values[i], true
	}
	var zero T
	return zero, false
}

// Over returns one value per day of r, zero for days without a point.
func (h *History[T]) Over(r Range) []T {
	res := make([]T, 0, r.From.DaysUntil(r.To)+1)
	for d := range r.Days() {
		v, _ := h.Get(d)
		res = append(res, v)
	}
	return res
}
