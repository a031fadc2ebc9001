package vim

import (
	"context"
	"fmt"
	"time"

	"github.com/marmos91/vimkit/internal/logger"
	"github.com/marmos91/vimkit/pkg/object"
	"github.com/marmos91/vimkit/pkg/vim/types"
)

// DefaultPageSize is the page bound used when no explicit page size is
// configured on the property client.
const DefaultPageSize = 100

// PropertyClient wraps an injected Client with the common property
// collector operations: retrieving all objects of a type, fetching object
// properties, resolving inventory paths, and assembling datastore handles.
//
// A PropertyClient is immutable after construction and safe for concurrent
// use as long as the underlying Client is.
type PropertyClient struct {
	client   Client
	pageSize int32
	metrics  CollectorMetrics
}

// PropertyClientOption customizes a PropertyClient.
type PropertyClientOption func(*PropertyClient)

// WithPageSize bounds the number of objects per retrieved page.
func WithPageSize(size int32) PropertyClientOption {
	return func(c *PropertyClient) {
		c.pageSize = size
	}
}

// WithMetrics injects collector traffic instrumentation.
func WithMetrics(metrics CollectorMetrics) PropertyClientOption {
	return func(c *PropertyClient) {
		if metrics != nil {
			c.metrics = metrics
		}
	}
}

// NewPropertyClient builds a PropertyClient operating through the given
// session. Fails when client is nil.
func NewPropertyClient(client Client, opts ...PropertyClientOption) (*PropertyClient, error) {
	if client == nil {
		return nil, fmt.Errorf("%w: client cannot be nil", object.ErrInvalidArgument)
	}

	propertyClient := &PropertyClient{
		client:   client,
		pageSize: DefaultPageSize,
		metrics:  noopMetrics{},
	}
	for _, opt := range opts {
		opt(propertyClient)
	}
	if propertyClient.pageSize <= 0 {
		propertyClient.pageSize = DefaultPageSize
	}
	return propertyClient, nil
}

// Version returns the remote platform's dot-separated version string.
func (c *PropertyClient) Version() string {
	return c.client.ServiceContent().About.Version
}

// RetrieveObjects prepares a retrieval of every object of the given managed
// object class reachable from the inventory root, collecting the named
// properties (or the object name when properties is empty, or every
// property when all is set).
//
// The retrieval is lazy: no remote call happens until the first Next on the
// returned ResultSet.
func (c *PropertyClient) RetrieveObjects(kind string, properties []string, all bool) *ResultSet {
	serviceContent := c.client.ServiceContent()
	objectSpec := NewObjectSpec(serviceContent.RootFolder, RecursiveTraversalSpec())
	propertySpec := NewPropertySpec(kind, properties, all)
	filterSpec := NewPropertyFilterSpec(
		[]types.PropertySpec{propertySpec},
		[]types.ObjectSpec{objectSpec},
	)

	return &ResultSet{
		client:  c.client,
		metrics: c.metrics,
		spec:    filterSpec,
		opts:    types.RetrieveOptions{MaxObjects: c.pageSize},
	}
}

// ObjectProperties fetches the named properties of a single managed object.
// With an empty property list every property is fetched. The server-side
// cursor, if any remains after the first page, is cancelled before
// returning, matching single-object retrieval semantics.
//
// Fails with object.ErrInvalidArgument when ref is unset.
func (c *PropertyClient) ObjectProperties(ctx context.Context, ref types.ManagedObjectReference, properties []string) ([]types.ObjectContent, error) {
	if ref.IsZero() {
		return nil, fmt.Errorf("%w: managed object reference cannot be empty", object.ErrInvalidArgument)
	}

	all := len(properties) == 0
	filterSpec := NewPropertyFilterSpec(
		[]types.PropertySpec{NewPropertySpec(ref.Type, properties, all)},
		[]types.ObjectSpec{NewObjectSpec(ref)},
	)

	start := time.Now()
	result, err := c.client.RetrievePropertiesEx(ctx,
		[]types.PropertyFilterSpec{filterSpec},
		types.RetrieveOptions{MaxObjects: 1},
	)
	objects := 0
	if result != nil {
		objects = len(result.Objects)
	}
	c.metrics.ObservePage("retrieve", objects, time.Since(start), err)
	if err != nil {
		return nil, fmt.Errorf("retrieve properties of %s: %w", ref, err)
	}
	if result == nil {
		return nil, nil
	}

	if result.Token != "" {
		c.metrics.ObserveCancel()
		if err := c.client.CancelRetrievePropertiesEx(ctx, result.Token); err != nil {
			return nil, fmt.Errorf("cancel retrieval for %s: %w", ref, err)
		}
	}
	return result.Objects, nil
}

// ObjectProperty fetches a single property of a managed object. The boolean
// reports whether the server provided a value at all, distinguishing an
// absent property from a present property whose value is nil.
func (c *PropertyClient) ObjectProperty(ctx context.Context, ref types.ManagedObjectReference, name string) (any, bool, error) {
	contents, err := c.ObjectProperties(ctx, ref, []string{name})
	if err != nil {
		return nil, false, err
	}
	for _, content := range contents {
		if value, ok := content.Property(name); ok {
			return value, true, nil
		}
	}
	return nil, false, nil
}

// ResultSet pages through a property retrieval on demand.
//
// The first Next issues the initial retrieval; each further Next pulls the
// next page from the server-side cursor. When a ResultSet is abandoned
// before exhaustion, Cancel must be called to release the cursor.
//
// A ResultSet is not safe for concurrent use.
type ResultSet struct {
	client  Client
	metrics CollectorMetrics
	spec    types.PropertyFilterSpec
	opts    types.RetrieveOptions

	started bool
	done    bool
	token   string
}

// Next returns the next page of objects, or (nil, nil) once the retrieval
// is exhausted. After an error the ResultSet is done; the cursor, if any,
// is left to the server's session cleanup.
func (r *ResultSet) Next(ctx context.Context) ([]types.ObjectContent, error) {
	if r.done {
		return nil, nil
	}

	var (
		result    *types.RetrieveResult
		err       error
		operation string
	)
	start := time.Now()
	if !r.started {
		operation = "retrieve"
		result, err = r.client.RetrievePropertiesEx(ctx, []types.PropertyFilterSpec{r.spec}, r.opts)
		r.started = true
	} else {
		operation = "continue"
		result, err = r.client.ContinueRetrievePropertiesEx(ctx, r.token)
	}

	objects := 0
	if result != nil {
		objects = len(result.Objects)
	}
	r.metrics.ObservePage(operation, objects, time.Since(start), err)

	if err != nil {
		r.done = true
		r.token = ""
		return nil, fmt.Errorf("%s properties: %w", operation, err)
	}
	if result == nil {
		// Nothing matched the filter.
		r.done = true
		return nil, nil
	}

	r.token = result.Token
	if r.token == "" {
		r.done = true
		if len(result.Objects) == 0 {
			return nil, nil
		}
	}
	logger.Debug("retrieved page: %d objects (token=%q)", len(result.Objects), r.token)
	return result.Objects, nil
}

// Cancel releases the server-side cursor if one is outstanding. It is
// idempotent and a no-op on an exhausted or never-started ResultSet.
func (r *ResultSet) Cancel(ctx context.Context) error {
	token := r.token
	r.token = ""
	r.done = true
	if token == "" {
		return nil
	}
	r.metrics.ObserveCancel()
	if err := r.client.CancelRetrievePropertiesEx(ctx, token); err != nil {
		return fmt.Errorf("cancel retrieval: %w", err)
	}
	return nil
}
