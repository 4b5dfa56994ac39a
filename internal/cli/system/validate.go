package system

import (
	"fmt"

	"github.com/julianstephens/microdiary/internal/cli"
	"github.com/julianstephens/microdiary/internal/validation"
)

type ValidateCmd struct {
	Strict bool `help:"Exit with an error when problems are found."`
}

func (cmd *ValidateCmd) Run(ctx *cli.Context) error {
	result, err := validateStore(ctx)
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println(result.FormatReport())

	if cmd.Strict && result.HasConflicts() {
		return fmt.Errorf("%d problem(s) found", len(result.Conflicts))
	}
	return nil
}

func validateStore(ctx *cli.Context) (validation.ValidationResult, error) {
	validator := validation.New()

	fmt.Println("Validating entries...")
	entries, err := ctx.Store.GetAllEntries()
	if err != nil {
		return validation.ValidationResult{}, fmt.Errorf("failed to load entries: %w", err)
	}
	entryResult := validator.ValidateEntries(entries)

	fmt.Println("Validating badges...")
	badges, err := ctx.Store.GetAllBadges()
	if err != nil {
		return validation.ValidationResult{}, fmt.Errorf("failed to load badges: %w", err)
	}
	badgeResult := validator.ValidateBadges(badges)

	return validation.ValidationResult{
		Conflicts: append(entryResult.Conflicts, badgeResult.Conflicts...),
	}, nil
}
