// Package vim provides client-side helpers for querying a vSphere-style
// inventory service through its property collector: filter spec builders,
// property retrieval with lazy paging, inventory path resolution, and
// extension registration.
//
// The remote session is abstracted behind the Client interface. This package
// never opens connections itself; callers inject a Client implementation
// (a real transport, or the in-memory simulator in pkg/vim/simulator) and
// all helpers operate through it.
package vim

import (
	"context"

	"github.com/marmos91/vimkit/pkg/vim/types"
)

// Client is the remote RPC session this package operates through.
//
// Implementations own transport, session, and authentication concerns.
// All methods must be safe for concurrent use.
type Client interface {
	// ServiceContent returns the session's well-known service entry points.
	ServiceContent() types.ServiceContent

	// RetrievePropertiesEx starts a property retrieval and returns the
	// first page. A nil result means nothing matched. A non-empty token on
	// the result identifies a server-side cursor holding further pages.
	RetrievePropertiesEx(ctx context.Context, specSet []types.PropertyFilterSpec, opts types.RetrieveOptions) (*types.RetrieveResult, error)

	// ContinueRetrievePropertiesEx returns the next page of the cursor
	// identified by token.
	ContinueRetrievePropertiesEx(ctx context.Context, token string) (*types.RetrieveResult, error)

	// CancelRetrievePropertiesEx releases the cursor identified by token
	// without fetching the remaining pages.
	CancelRetrievePropertiesEx(ctx context.Context, token string) error

	// FindExtension looks up a registered extension by key. A nil result
	// means no extension with that key exists.
	FindExtension(ctx context.Context, key string) (*types.Extension, error)

	// RegisterExtension registers a new extension with the platform.
	RegisterExtension(ctx context.Context, extension types.Extension) error
}
