package vim

import (
	"context"
	"fmt"

	"github.com/marmos91/vimkit/internal/logger"
	"github.com/marmos91/vimkit/pkg/object"
	"github.com/marmos91/vimkit/pkg/vim/types"
)

// Datastore property paths collected when assembling object.Datastore
// handles.
var datastoreProperties = []string{"name", "summary.capacity", "summary.freeSpace"}

// Datastores retrieves every datastore in the inventory and assembles
// object.Datastore handles from the collected name and summary properties.
// Capacity and free space stay absent on the handle when the server did not
// report them.
func (c *PropertyClient) Datastores(ctx context.Context) ([]*object.Datastore, error) {
	results := c.RetrieveObjects("Datastore", datastoreProperties, false)

	var datastores []*object.Datastore
	for {
		batch, err := results.Next(ctx)
		if err != nil {
			return nil, err
		}
		if batch == nil {
			return datastores, nil
		}
		for _, content := range batch {
			datastore, err := datastoreFromContent(content)
			if err != nil {
				if cancelErr := results.Cancel(ctx); cancelErr != nil {
					logger.Warn("cancel retrieval after assembly failure: %v", cancelErr)
				}
				return nil, err
			}
			datastores = append(datastores, datastore)
		}
	}
}

// datastoreFromContent builds an object.Datastore from one collected
// ObjectContent row.
func datastoreFromContent(content types.ObjectContent) (*object.Datastore, error) {
	nameValue, ok := content.Property("name")
	if !ok {
		return nil, fmt.Errorf("%w: datastore %s has no name property", ErrIncompleteResult, content.Obj)
	}
	name, ok := nameValue.(string)
	if !ok {
		return nil, fmt.Errorf("%w: datastore %s name is %T, want string", ErrIncompleteResult, content.Obj, nameValue)
	}

	capacity, err := optionalInt64(content, "summary.capacity")
	if err != nil {
		return nil, err
	}
	freeSpace, err := optionalInt64(content, "summary.freeSpace")
	if err != nil {
		return nil, err
	}

	datastore, err := object.NewDatastore(content.Obj, name, capacity, freeSpace)
	if err != nil {
		return nil, fmt.Errorf("assemble datastore %s: %w", content.Obj, err)
	}
	return datastore, nil
}

// optionalInt64 extracts an integer property, returning nil when the server
// did not report it.
func optionalInt64(content types.ObjectContent, name string) (*int64, error) {
	value, ok := content.Property(name)
	if !ok {
		return nil, nil
	}
	switch v := value.(type) {
	case int64:
		return &v, nil
	case int32:
		converted := int64(v)
		return &converted, nil
	case int:
		converted := int64(v)
		return &converted, nil
	default:
		return nil, fmt.Errorf("%w: property %s of %s is %T, want integer", ErrIncompleteResult, name, content.Obj, value)
	}
}
