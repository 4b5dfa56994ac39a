package stats

import (
	"fmt"
	"strconv"
	"strings"
)

// Period is a named trailing window of calendar days
type Period struct {
	Days  int
	Name  string // short identifier accepted on the command line
	Label string
}

// LookbackPeriods are the offsets offered for "N days ago" lookups.
var LookbackPeriods = []Period{
	{Days: 1, Name: "yesterday", Label: "Yesterday"},
	{Days: 3, Name: "3days", Label: "3 days ago"},
	{Days: 7, Name: "week", Label: "1 week ago"},
	{Days: 30, Name: "month", Label: "1 month ago"},
	{Days: 90, Name: "3months", Label: "3 months ago"},
	{Days: 180, Name: "halfyear", Label: "6 months ago"},
	{Days: 365, Name: "year", Label: "1 year ago"},
}

// RangePeriods are the windows offered for range statistics.
var RangePeriods = []Period{
	{Days: 7, Name: "week", Label: "1 week"},
	{Days: 30, Name: "month", Label: "1 month"},
	{Days: 90, Name: "3months", Label: "3 months"},
	{Days: 365, Name: "year", Label: "1 year"},
}

// ParseLookback resolves a day count or name against LookbackPeriods.
func ParseLookback(s string) (Period, error) {
	return parsePeriod(s, LookbackPeriods)
}

// ParseRange resolves a day count or name against RangePeriods.
func ParseRange(s string) (Period, error) {
	return parsePeriod(s, RangePeriods)
}

// FindPeriod returns the period with the given day count.
func FindPeriod(days int, periods []Period) (Period, bool) {
	for _, p := range periods {
		if p.Days == days {
			return p, true
		}
	}
	return Period{}, false
}

func parsePeriod(s string, periods []Period) (Period, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if days, err := strconv.Atoi(s); err == nil {
		if p, ok := FindPeriod(days, periods); ok {
			return p, nil
		}
		return Period{}, fmt.Errorf("unsupported period %d days (choose one of %s)", days, periodList(periods))
	}
	for _, p := range periods {
		if p.Name == s {
			return p, nil
		}
	}
	return Period{}, fmt.Errorf("unknown period %q (choose one of %s)", s, periodList(periods))
}

func periodList(periods []Period) string {
	names := make([]string, 0, len(periods))
	for _, p := range periods {
		names = append(names, fmt.Sprintf("%d/%s", p.Days, p.Name))
	}
	return strings.Join(names, ", ")
}
