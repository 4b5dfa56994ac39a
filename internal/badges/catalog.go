package badges

import "github.com/julianstephens/microdiary/internal/models"

// Metric is the figure a badge threshold is compared against
type Metric string

const (
	MetricStreak Metric = "streak"
	MetricTotal  Metric = "total"
)

// Definition describes one achievement in the catalog
type Definition struct {
	Type        models.BadgeType
	Metric      Metric
	Threshold   int
	Title       string
	Description string
}

// Catalog lists every badge. The order only matters for display.
var Catalog = []Definition{
	{Type: models.Badge7Days, Metric: MetricStreak, Threshold: 7, Title: "1 week", Description: "Write 7 days in a row"},
	{Type: models.Badge30Days, Metric: MetricStreak, Threshold: 30, Title: "1 month", Description: "Write 30 days in a row"},
	{Type: models.Badge100Days, Metric: MetricStreak, Threshold: 100, Title: "100 days", Description: "Write 100 days in a row"},
	{Type: models.BadgeTotal50, Metric: MetricTotal, Threshold: 50, Title: "50 entries", Description: "Write 50 entries in total"},
	{Type: models.BadgeTotal100, Metric: MetricTotal, Threshold: 100, Title: "100 entries", Description: "Write 100 entries in total"},
	{Type: models.BadgeTotal365, Metric: MetricTotal, Threshold: 365, Title: "1 year", Description: "Write 365 entries in total"},
}

// Lookup returns the catalog definition for a badge type.
func Lookup(t models.BadgeType) (Definition, bool) {
	for _, d := range Catalog {
		if d.Type == t {
			return d, true
		}
	}
	return Definition{}, false
}

func (d Definition) value(streak, total int) int {
	if d.Metric == MetricStreak {
		return streak
	}
	return total
}

// Met reports whether the condition holds for the given figures.
func (d Definition) Met(streak, total int) bool {
	return d.value(streak, total) >= d.Threshold
}

// Progress returns how far along the condition is, in [0, 1].
func (d Definition) Progress(streak, total int) float64 {
	if d.Threshold <= 0 {
		return 1
	}
	p := float64(d.value(streak, total)) / float64(d.Threshold)
	if p > 1 {
		return 1
	}
	if p < 0 {
		return 0
	}
	return p
}
