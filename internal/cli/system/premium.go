package system

import (
	"errors"
	"fmt"
	"strings"

	"github.com/julianstephens/microdiary/internal/cli"
	"github.com/julianstephens/microdiary/internal/keyring"
)

// PremiumStatusCmd shows whether premium features are unlocked and why
type PremiumStatusCmd struct{}

func (cmd *PremiumStatusCmd) Run(ctx *cli.Context) error {
	policy := ctx.Journal.Policy()
	if policy.Premium() {
		fmt.Println("✓ Premium is active")
	} else {
		fmt.Println("Premium is not active")
	}

	if ctx.Config.Premium {
		fmt.Println("  Enabled by MICRODIARY_PREMIUM")
	}
	if _, err := keyring.GetLicense(); err == nil {
		fmt.Println("  License key stored in OS keyring")
	} else if !errors.Is(err, keyring.ErrNotFound) {
		fmt.Printf("  Could not read OS keyring: %v\n", err)
	}

	fmt.Println()
	fmt.Printf("  Edit past entries:      %s\n", yesNo(policy.Premium()))
	fmt.Printf("  Search records:         %s\n", yesNo(policy.CanSearch()))
	fmt.Printf("  Sort by satisfaction:   %s\n", yesNo(policy.CanSortBySatisfaction()))
	return nil
}

// PremiumActivateCmd stores a license key in the OS keyring
type PremiumActivateCmd struct {
	License string `arg:"" help:"License key."`
}

func (cmd *PremiumActivateCmd) Run(ctx *cli.Context) error {
	license := strings.TrimSpace(cmd.License)
	if license == "" {
		return errors.New("license key cannot be empty")
	}
	if err := keyring.SetLicense(license); err != nil {
		return err
	}
	fmt.Println("✓ Premium activated")
	return nil
}

// PremiumDeactivateCmd removes the stored license key
type PremiumDeactivateCmd struct{}

func (cmd *PremiumDeactivateCmd) Run(ctx *cli.Context) error {
	if err := keyring.DeleteLicense(); err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return errors.New("no license key stored")
		}
		return err
	}
	fmt.Println("✓ Premium deactivated")
	return nil
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
