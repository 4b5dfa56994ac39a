package access

import (
	"errors"

	"github.com/julianstephens/microdiary/internal/keyring"
	"github.com/julianstephens/microdiary/internal/logger"
)

// Entitlement is the read-only premium flag supplied by the host
type Entitlement interface {
	Premium() bool
}

// Static is a fixed entitlement, used for configuration overrides and tests
type Static bool

func (s Static) Premium() bool {
	return bool(s)
}

// KeyringEntitlement is premium when a license key is stored in the OS keyring
type KeyringEntitlement struct {
	lookup func() (string, error)
}

func NewKeyringEntitlement() KeyringEntitlement {
	return KeyringEntitlement{lookup: keyring.GetLicense}
}

func (k KeyringEntitlement) Premium() bool {
	if k.lookup == nil {
		return false
	}
	license, err := k.lookup()
	if err != nil {
		if !errors.Is(err, keyring.ErrNotFound) {
			logger.Warn("Failed to read license from keyring", "error", err)
		}
		return false
	}
	return license != ""
}

type anyOf []Entitlement

// Any is premium when at least one source is.
func Any(sources ...Entitlement) Entitlement {
	return anyOf(sources)
}

func (a anyOf) Premium() bool {
	for _, e := range a {
		if e != nil && e.Premium() {
			return true
		}
	}
	return false
}
