package engine

import "errors"

// Pipeline precondition and configuration errors. Operations invoked out of
// order fail fast with one of these rather than running on empty state.
var (
	ErrMarketNotBuilt     = errors.New("housing market not built")
	ErrPopulationNotBuilt = errors.New("consumer population not built")
	ErrSavingsNotComputed = errors.New("consumer savings not computed")
	ErrAlreadyBuilt       = errors.New("pipeline stage already completed")
	ErrAlreadyCleared     = errors.New("market already cleared")
	ErrEmptyPopulation    = errors.New("consumer population is empty")
	ErrEmptyInventory     = errors.New("house inventory is empty")
)
