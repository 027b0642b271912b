package dashboard

import (
	"fmt"
	"time"
)

type Period string

const (
	Period7Days  Period = "7d"
	Period30Days Period = "30d"
	PeriodAll    Period = "all"
	PeriodCustom Period = "custom"
)

const (
	DefaultPeriod = Period30Days

	dayStartLayout = "2006-01-02T00:00:00"
	dayEndLayout   = "2006-01-02T23:59:59"
	dateLayout     = "2006-01-02"
)

func ParsePeriod(s string) (Period, error) {
	switch p := Period(s); p {
	case "":
		return DefaultPeriod, nil
	case Period7Days, Period30Days, PeriodAll, PeriodCustom:
		return p, nil
	default:
		return "", fmt.Errorf("unknown period %q", s)
	}
}

// Query holds the stats query parameters; empty values are not sent.
type Query struct {
	StartDate string
	EndDate   string
}

// Query computes the stats window ending at now. A custom period needs both
// from and to; otherwise it is treated like "all".
func (p Period) Query(now time.Time, from, to string) (Query, error) {
	switch p {
	case Period7Days:
		return Query{StartDate: now.AddDate(0, 0, -7).Format(dayStartLayout)}, nil
	case Period30Days:
		return Query{StartDate: now.AddDate(0, 0, -30).Format(dayStartLayout)}, nil
	case PeriodCustom:
		if from == "" || to == "" {
			return Query{}, nil
		}
		start, err := time.Parse(dateLayout, from)
		if err != nil {
			return Query{}, fmt.Errorf("invalid startDate: %w", err)
		}
		end, err := time.Parse(dateLayout, to)
		if err != nil {
			return Query{}, fmt.Errorf("invalid endDate: %w", err)
		}
		if end.Before(start) {
			return Query{}, fmt.Errorf("endDate %s is before startDate %s", to, from)
		}
		return Query{StartDate: start.Format(dayStartLayout), EndDate: end.Format(dayEndLayout)}, nil
	default:
		return Query{}, nil
	}
}
