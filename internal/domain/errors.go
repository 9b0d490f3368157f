package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// ErrMsgInvalidItem covers structural misuse: a zero-value or unnamed
	// item, an unrecognized rarity, or a non-positive count.
	ErrMsgInvalidItem = "invalid item"

	// ErrMsgInsufficientItems covers business-rule failures: not enough
	// stock to fuel a requested upgrade.
	ErrMsgInsufficientItems = "insufficient items"
)

// Common domain errors
// Wrap these with fmt.Errorf("context: %w", domain.ErrXxx) so callers can
// distinguish the two kinds with errors.Is while reading the embedded detail.
var (
	ErrInvalidItem       = errors.New(ErrMsgInvalidItem)
	ErrInsufficientItems = errors.New(ErrMsgInsufficientItems)
)
