package vim

import (
	"context"
	"fmt"
	"strings"

	"github.com/marmos91/vimkit/pkg/object"
	"github.com/marmos91/vimkit/pkg/vim/types"
)

// inventoryEntity is one row of a parent-chain retrieval.
type inventoryEntity struct {
	name      string
	parent    types.ManagedObjectReference
	hasParent bool
}

// InventoryPath resolves the slash-separated inventory path of a managed
// entity: the names of its ancestors from just below the inventory root
// down to the entity itself. The root folder never appears in the path, so
// an entity directly under the root resolves to its own name.
//
// The resolution retrieves the name and parent of every ancestor in one
// paged traversal, then walks the parent chain by reference. Fails with
// ErrNotFound when the entity is not part of the inventory.
func (c *PropertyClient) InventoryPath(ctx context.Context, ref types.ManagedObjectReference) (string, error) {
	if ref.IsZero() {
		return "", fmt.Errorf("%w: managed object reference cannot be empty", object.ErrInvalidArgument)
	}

	parentHop := NewTraversalSpec("ParentTraversalSpec", "ManagedEntity", "parent", false,
		NewSelectionSpec("ParentTraversalSpec"))
	filterSpec := NewPropertyFilterSpec(
		[]types.PropertySpec{NewPropertySpec("ManagedEntity", []string{"name", "parent"}, false)},
		[]types.ObjectSpec{NewObjectSpec(ref, parentHop)},
	)

	results := &ResultSet{
		client:  c.client,
		metrics: c.metrics,
		spec:    filterSpec,
		opts:    types.RetrieveOptions{MaxObjects: c.pageSize},
	}

	entities := make(map[types.ManagedObjectReference]inventoryEntity)
	for {
		batch, err := results.Next(ctx)
		if err != nil {
			return "", err
		}
		if batch == nil {
			break
		}
		for _, content := range batch {
			entity, err := entityFromContent(content)
			if err != nil {
				return "", err
			}
			entities[content.Obj] = entity
		}
	}

	if _, ok := entities[ref]; !ok {
		return "", fmt.Errorf("%w: %s", ErrNotFound, ref)
	}

	// Walk the parent chain by reference. Matching by reference rather
	// than by name keeps entities with repeated names unambiguous.
	var segments []string
	current := ref
	for i := 0; i < len(entities); i++ {
		entity, ok := entities[current]
		if !ok {
			break
		}
		if !entity.hasParent {
			// The inventory root; it is excluded from the path.
			break
		}
		segments = append(segments, entity.name)
		current = entity.parent
	}

	// Reverse into root-to-entity order.
	for i, j := 0, len(segments)-1; i < j; i, j = i+1, j-1 {
		segments[i], segments[j] = segments[j], segments[i]
	}
	return strings.Join(segments, "/"), nil
}

// entityFromContent extracts the name and parent reference of one retrieved
// managed entity. A missing parent property marks the inventory root.
func entityFromContent(content types.ObjectContent) (inventoryEntity, error) {
	entity := inventoryEntity{}

	nameValue, ok := content.Property("name")
	if !ok {
		return entity, fmt.Errorf("%w: entity %s has no name property", ErrIncompleteResult, content.Obj)
	}
	name, ok := nameValue.(string)
	if !ok {
		return entity, fmt.Errorf("%w: entity %s name is %T, want string", ErrIncompleteResult, content.Obj, nameValue)
	}
	entity.name = name

	parentValue, ok := content.Property("parent")
	if !ok {
		return entity, nil
	}
	parent, ok := parentValue.(types.ManagedObjectReference)
	if !ok {
		return entity, fmt.Errorf("%w: entity %s parent is %T, want reference", ErrIncompleteResult, content.Obj, parentValue)
	}
	entity.parent = parent
	entity.hasParent = true
	return entity, nil
}
