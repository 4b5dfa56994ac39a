package access

import (
	"time"

	"github.com/julianstephens/microdiary/internal/models"
	"github.com/julianstephens/microdiary/internal/utils"
)

// CanEdit reports whether an entry dated entryDate may be edited at now.
// Today's entry is always editable; any other day, or a dateless entry, needs the entitlement.
func CanEdit(entryDate, now time.Time, entitled bool) bool {
	if entitled {
		return true
	}
	return !entryDate.IsZero() && utils.IsSameDay(entryDate, now)
}

// Policy gates features on an entitlement source
type Policy struct {
	Entitlement Entitlement
}

func NewPolicy(e Entitlement) Policy {
	return Policy{Entitlement: e}
}

func (p Policy) premium() bool {
	return p.Entitlement != nil && p.Entitlement.Premium()
}

// CanEdit applies CanEdit to an entry using the policy's entitlement.
func (p Policy) CanEdit(entry models.Entry, now time.Time) bool {
	return CanEdit(entry.Date, now, p.premium())
}

// CanSearch reports whether full-text search of past records is unlocked.
func (p Policy) CanSearch() bool {
	return p.premium()
}

// CanSortBySatisfaction reports whether records may be ordered by score.
func (p Policy) CanSortBySatisfaction() bool {
	return p.premium()
}

// Premium exposes the underlying flag for display.
func (p Policy) Premium() bool {
	return p.premium()
}
