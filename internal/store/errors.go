package store

import "errors"

var (
	// ErrNotFound means a single-item lookup had no match.
	ErrNotFound = errors.New("item not found")

	// ErrNoItemsAvailable means a multi-item lookup had no matches. Empty
	// result sets are reported as errors, not empty slices; callers that
	// tolerate absence check for this explicitly.
	ErrNoItemsAvailable = errors.New("no items available")

	// ErrFieldNotFound means a filter referenced a field the entity does
	// not expose.
	ErrFieldNotFound = errors.New("field not found")

	// ErrInvalidArgument means a filter value did not parse under the
	// field's comparison mode.
	ErrInvalidArgument = errors.New("invalid argument")

	ErrUnableToAddItem    = errors.New("unable to add item")
	ErrUnableToUpdateItem = errors.New("unable to update item")
)
