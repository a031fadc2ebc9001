package vim

import "errors"

// These errors indicate client-side failures of the helper layer itself.
// Errors returned by the remote session pass through wrapped, so callers
// can still match them with errors.Is/errors.As.
var (
	// ErrNotFound indicates the managed object was not present in the
	// inventory (e.g. InventoryPath on a reference the retrieval did not
	// return).
	ErrNotFound = errors.New("managed object not found")

	// ErrIncompleteResult indicates the collector returned a response the
	// helper could not interpret (e.g. a property with an unexpected
	// concrete type).
	ErrIncompleteResult = errors.New("incomplete collector result")
)
