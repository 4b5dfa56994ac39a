package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/julianstephens/microdiary/internal/badges"
	"github.com/julianstephens/microdiary/internal/constants"
	"github.com/julianstephens/microdiary/internal/models"
	"github.com/julianstephens/microdiary/internal/stats"
)

var sparkLevels = []rune("▁▂▃▄▅▆▇█")

// FormatDay renders an entry date, or "(no date)".
func FormatDay(t time.Time) string {
	if t.IsZero() {
		return "(no date)"
	}
	return t.Format("2006-01-02 Mon")
}

// FormatEntry renders one entry as a single line.
func FormatEntry(e models.Entry) string {
	edited := ""
	if e.IsEdited {
		edited = " (edited)"
	}
	return fmt.Sprintf("%s  %3d  %s%s", FormatDay(e.Date), e.SatisfactionScore, e.Text, edited)
}

// ScoreBar renders a satisfaction score as a fixed-width bar.
func ScoreBar(score, width int) string {
	if width <= 0 {
		return ""
	}
	if score < constants.MinSatisfaction {
		score = constants.MinSatisfaction
	}
	if score > constants.MaxSatisfaction {
		score = constants.MaxSatisfaction
	}
	filled := score * width / constants.MaxSatisfaction
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}

// Sparkline renders a dense series, with a gap for days without an entry.
func Sparkline(series []stats.Point) string {
	var b strings.Builder
	for _, p := range series {
		if !p.HasEntry {
			b.WriteRune('·')
			continue
		}
		idx := p.Score * (len(sparkLevels) - 1) / constants.MaxSatisfaction
		if idx < 0 {
			idx = 0
		}
		if idx >= len(sparkLevels) {
			idx = len(sparkLevels) - 1
		}
		b.WriteRune(sparkLevels[idx])
	}
	return b.String()
}

// FormatBadge renders a badge status with its earned age or progress.
func FormatBadge(s badges.Status, now time.Time) string {
	if s.Earned {
		return fmt.Sprintf("🏅 %-12s %s (earned %s)", s.Title, s.Description, humanize.RelTime(s.EarnedAt, now, "ago", "from now"))
	}
	return fmt.Sprintf("   %-12s %s (%d%%)", s.Title, s.Description, int(s.Progress*100))
}

// PeriodName returns the label of a known period, or "N days".
func PeriodName(days int, periods []stats.Period) string {
	if p, ok := stats.FindPeriod(days, periods); ok {
		return p.Label
	}
	return fmt.Sprintf("%d days", days)
}

// ShortID returns the first 8 characters of an entry ID.
func ShortID(id string) string {
	if len(id) <= 8 {
		return id
	}
	return id[:8]
}
