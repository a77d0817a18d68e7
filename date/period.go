package date

import "fmt"

// Period is a standard calendar period.
type Period int

const (
	Daily Period = iota
	// Weekly is an ISO week, Monday to Sunday.
	Weekly
	Monthly
	Yearly
)

func (p Period) String() string {
	switch p {
	case Daily:
		return "daily"
	case Weekly:
		return "weekly"
	case Monthly:
		return "monthly"
	case Yearly:
		return "yearly"
	default:
		return fmt.Sprintf("Period(%d)", int(p))
	}
}
