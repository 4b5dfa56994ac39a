package keyring

import (
	"errors"
	"testing"

	"github.com/zalando/go-keyring"
)

func TestConnectionStringRoundTrip(t *testing.T) {
	keyring.MockInit()

	if _, err := GetConnectionString(); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound before set, got %v", err)
	}

	conn := "postgres://diary@localhost:5432/microdiary"
	if err := SetConnectionString(conn); err != nil {
		t.Fatalf("SetConnectionString failed: %v", err)
	}
	got, err := GetConnectionString()
	if err != nil {
		t.Fatalf("GetConnectionString failed: %v", err)
	}
	if got != conn {
		t.Errorf("expected %q, got %q", conn, got)
	}

	if err := DeleteConnectionString(); err != nil {
		t.Fatalf("DeleteConnectionString failed: %v", err)
	}
	if err := DeleteConnectionString(); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound on second delete, got %v", err)
	}
}

func TestLicenseRoundTrip(t *testing.T) {
	keyring.MockInit()

	if err := SetLicense("  "); err == nil {
		t.Error("expected error for blank license")
	}
	if err := SetLicense("MD-1234"); err != nil {
		t.Fatalf("SetLicense failed: %v", err)
	}
	got, err := GetLicense()
	if err != nil || got != "MD-1234" {
		t.Errorf("GetLicense() = %q, %v", got, err)
	}
	if err := DeleteLicense(); err != nil {
		t.Fatalf("DeleteLicense failed: %v", err)
	}
	if _, err := GetLicense(); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestIsAvailableWithMock(t *testing.T) {
	keyring.MockInit()
	if !IsAvailable() {
		t.Error("expected mock keyring to be available")
	}
}

func TestUnavailableKeyring(t *testing.T) {
	keyring.MockInitWithError(errors.New("no dbus session"))
	t.Cleanup(keyring.MockInit)

	if _, err := GetLicense(); !errors.Is(err, ErrKeyringUnavailable) {
		t.Errorf("expected ErrKeyringUnavailable, got %v", err)
	}
	if IsAvailable() {
		t.Error("expected keyring to be reported unavailable")
	}
}
