package vim

import (
	"context"
	"fmt"
	"time"

	"github.com/marmos91/vimkit/pkg/object"
	"github.com/marmos91/vimkit/pkg/vim/types"
)

// Defaults applied to extension registrations that leave the descriptive
// fields empty.
const (
	defaultExtensionLabel   = "vimkit"
	defaultExtensionSummary = "vimkit managed services"
	defaultExtensionVersion = "1.0"
)

// ExtensionSpec describes an extension registration.
type ExtensionSpec struct {
	// Key uniquely identifies the extension on the platform
	Key string

	// EntityType is the managed entity type the extension declares
	EntityType string

	// Label, Summary and Version are descriptive; empty fields fall back
	// to the vimkit defaults
	Label   string
	Summary string
	Version string
}

// FindExtension looks up a registered extension by key. A nil result means
// no extension with that key is registered.
func (c *PropertyClient) FindExtension(ctx context.Context, key string) (*types.Extension, error) {
	if key == "" {
		return nil, fmt.Errorf("%w: extension key cannot be empty", object.ErrInvalidArgument)
	}
	extension, err := c.client.FindExtension(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("find extension %q: %w", key, err)
	}
	return extension, nil
}

// RegisterExtension registers a new extension, filling descriptive defaults
// and stamping the heartbeat with the current time.
func (c *PropertyClient) RegisterExtension(ctx context.Context, spec ExtensionSpec) error {
	if spec.Key == "" {
		return fmt.Errorf("%w: extension key cannot be empty", object.ErrInvalidArgument)
	}
	if spec.Label == "" {
		spec.Label = defaultExtensionLabel
	}
	if spec.Summary == "" {
		spec.Summary = defaultExtensionSummary
	}
	if spec.Version == "" {
		spec.Version = defaultExtensionVersion
	}

	extension := types.Extension{
		Key:     spec.Key,
		Version: spec.Version,
		Description: types.Description{
			Label:   spec.Label,
			Summary: spec.Summary,
		},
		LastHeartbeatTime: time.Now().UTC(),
	}
	if spec.EntityType != "" {
		extension.ManagedEntityInfo = []types.ExtManagedEntityInfo{{Type: spec.EntityType}}
	}

	if err := c.client.RegisterExtension(ctx, extension); err != nil {
		return fmt.Errorf("register extension %q: %w", spec.Key, err)
	}
	return nil
}
