package errors

import (
	stderrors "errors"
	"fmt"
	"os"

	"github.com/julianstephens/microdiary/internal/journal"
	"github.com/julianstephens/microdiary/internal/keyring"
	"github.com/julianstephens/microdiary/internal/logger"
)

// hints pairs errors a user can act on with the next step to take.
// The first match wins, so more specific errors go first.
var hints = []struct {
	target error
	hint   string
}{
	{journal.ErrEntryExists, "use 'microdiary edit' to change today's entry"},
	{journal.ErrNotEditable, "today's entry is always editable; past and undated entries unlock with 'microdiary premium activate <license>'"},
	{journal.ErrPremiumRequired, "run 'microdiary premium activate <license>' to unlock it"},
	{journal.ErrEntryNotFound, "run 'microdiary list' to see entry IDs"},
	{keyring.ErrKeyringUnavailable, "pass --config or set MICRODIARY_DB_CONNECTION instead"},
}

// Hint returns the suggested next step for err, or "" when there is none.
func Hint(err error) string {
	if err == nil {
		return ""
	}
	for _, h := range hints {
		if stderrors.Is(err, h.target) {
			return h.hint
		}
	}
	return ""
}

// Format renders err with the "Error: " prefix, followed by a hint line when one applies
func Format(err error) string {
	if err == nil {
		return ""
	}
	msg := fmt.Sprintf("Error: %v", err)
	if hint := Hint(err); hint != "" {
		msg += "\nHint: " + hint
	}
	return msg
}

// Fatal logs an error and exits the program with exit code 1
func Fatal(err error) {
	if err != nil {
		logger.Error("Command execution failed", "error", err)
		fmt.Fprintln(os.Stderr, Format(err))
		os.Exit(1)
	}
}
