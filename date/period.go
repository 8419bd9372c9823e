package date

import "fmt"

// Period is a calendar period used to build date windows.
type Period int

func (p Period) String() string {
	switch p {
	case Daily:
		return "daily"
	case Monthly:
		return "monthly"
	case Yearly:
		return "yearly"
	default:
		return fmt.Sprintf("period(%d)", int(p))
	}
}

const (
	Daily Period = iota
	Monthly
	Yearly
)
