package domain

import "github.com/fournil-tools/fournil/pkg/filteropts"

// OptionsSource selects where filter dropdown choices come from.
type OptionsSource string

const (
	// OptionsFromResults derives choices from the rows currently loaded, so
	// options shrink with the active filters. This matches the historical
	// behavior of the dashboard.
	OptionsFromResults OptionsSource = "results"
	// OptionsFromCatalog serves choices from the preloaded reference data,
	// independent of the active filters.
	OptionsFromCatalog OptionsSource = "catalog"
)

// SaleFilterOptions holds the selectable values for each sales dimension.
type SaleFilterOptions struct {
	Types    []filteropts.Option
	Articles []filteropts.Option
	Agents   []filteropts.Option
}

// ProductionFilterOptions holds the selectable values for each production dimension.
type ProductionFilterOptions struct {
	Articles []filteropts.Option
	Agents   []filteropts.Option
}
