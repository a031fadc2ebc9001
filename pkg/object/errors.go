package object

import "errors"

// ErrInvalidArgument indicates a constructor or parser precondition was
// violated: an empty datastore name, a missing reference, an inconsistent
// capacity/free-space pair, or a malformed path string.
//
// Every failure in this package is a programming or input error. Retrying
// without changing the input will fail again, so callers should treat the
// error as fatal for the operation.
//
// Usage Pattern:
//
//	p, err := object.ParseDatastorePath(raw)
//	if err != nil {
//	    if errors.Is(err, object.ErrInvalidArgument) {
//	        return fmt.Errorf("bad datastore path from inventory: %w", err)
//	    }
//	    return err
//	}
var ErrInvalidArgument = errors.New("invalid argument")
