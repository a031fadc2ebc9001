// Package simulator provides an in-memory vim.Client implementation backed
// by a small inventory graph.
//
// The simulator honors the property collector contract the helpers in
// pkg/vim rely on: kind-filtered traversal from the root folder,
// parent-chain traversal, property selection, page splitting with opaque
// continuation tokens, and token cancellation. It exists for tests and for
// running the CLI without a live platform; it implements no wire protocol.
package simulator

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/marmos91/vimkit/pkg/vim/types"
)

// Calls counts the RPC-level operations the simulator served. Tests use it
// to assert paging laziness and cursor cleanup.
type Calls struct {
	Retrieve int
	Continue int
	Cancel   int
}

type entity struct {
	ref        types.ManagedObjectReference
	properties map[string]any
}

// Client is an in-memory vim.Client. Safe for concurrent use.
type Client struct {
	mu             sync.Mutex
	serviceContent types.ServiceContent
	entities       map[types.ManagedObjectReference]*entity
	order          []types.ManagedObjectReference
	cursors        map[string][][]types.ObjectContent
	extensions     map[string]types.Extension
	kindCounts     map[string]int
	calls          Calls
}

// New builds an empty simulator holding only the inventory root folder.
func New() *Client {
	client := &Client{
		entities:   make(map[types.ManagedObjectReference]*entity),
		cursors:    make(map[string][][]types.ObjectContent),
		extensions: make(map[string]types.Extension),
		kindCounts: make(map[string]int),
	}

	root := client.addEntity("Folder", "Datacenters", nil, nil)
	client.serviceContent = types.ServiceContent{
		RootFolder:        root,
		PropertyCollector: types.NewReference("PropertyCollector", "propertyCollector"),
		ExtensionManager:  types.NewReference("ExtensionManager", "ExtensionManager"),
		About: types.AboutInfo{
			Name:     "vimkit simulator",
			FullName: "vimkit inventory simulator",
			Version:  "8.0.2",
		},
	}
	return client
}

// RootFolder returns the inventory root reference.
func (c *Client) RootFolder() types.ManagedObjectReference {
	return c.serviceContent.RootFolder
}

// Calls returns a snapshot of the served operation counts.
func (c *Client) Calls() Calls {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.calls
}

// AddEntity adds a managed entity of the given kind under parent and
// returns its reference. The name and parent become retrievable properties;
// extra properties merge on top.
func (c *Client) AddEntity(kind, name string, parent types.ManagedObjectReference, properties map[string]any) types.ManagedObjectReference {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.addEntity(kind, name, &parent, properties)
}

func (c *Client) addEntity(kind, name string, parent *types.ManagedObjectReference, properties map[string]any) types.ManagedObjectReference {
	c.kindCounts[kind]++
	ref := types.NewReference(kind, fmt.Sprintf("%s-%d", strings.ToLower(kind), c.kindCounts[kind]))

	props := map[string]any{"name": name}
	if parent != nil {
		props["parent"] = *parent
	}
	for key, value := range properties {
		props[key] = value
	}

	c.entities[ref] = &entity{ref: ref, properties: props}
	c.order = append(c.order, ref)
	return ref
}

// ServiceContent implements vim.Client.
func (c *Client) ServiceContent() types.ServiceContent {
	return c.serviceContent
}

// RetrievePropertiesEx implements vim.Client. Only the first filter spec is
// interpreted, which is all the pkg/vim helpers ever send.
func (c *Client) RetrievePropertiesEx(ctx context.Context, specSet []types.PropertyFilterSpec, opts types.RetrieveOptions) (*types.RetrieveResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.calls.Retrieve++

	if len(specSet) == 0 || len(specSet[0].PropSet) == 0 || len(specSet[0].ObjectSet) == 0 {
		return nil, fmt.Errorf("simulator: empty filter spec")
	}
	propSpec := specSet[0].PropSet[0]
	objectSpec := specSet[0].ObjectSet[0]

	var contents []types.ObjectContent
	for _, target := range c.selectEntities(objectSpec, propSpec.Type) {
		contents = append(contents, c.collect(target, propSpec))
	}
	if len(contents) == 0 {
		return nil, nil
	}

	pages := splitPages(contents, opts.MaxObjects)
	result := &types.RetrieveResult{Objects: pages[0]}
	if len(pages) > 1 {
		token := uuid.NewString()
		c.cursors[token] = pages[1:]
		result.Token = token
	}
	return result, nil
}

// ContinueRetrievePropertiesEx implements vim.Client.
func (c *Client) ContinueRetrievePropertiesEx(ctx context.Context, token string) (*types.RetrieveResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.calls.Continue++

	pages, ok := c.cursors[token]
	if !ok {
		return nil, fmt.Errorf("simulator: invalid retrieval token %q", token)
	}

	result := &types.RetrieveResult{Objects: pages[0]}
	if len(pages) > 1 {
		c.cursors[token] = pages[1:]
		result.Token = token
	} else {
		delete(c.cursors, token)
	}
	return result, nil
}

// CancelRetrievePropertiesEx implements vim.Client.
func (c *Client) CancelRetrievePropertiesEx(ctx context.Context, token string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.calls.Cancel++

	if _, ok := c.cursors[token]; !ok {
		return fmt.Errorf("simulator: invalid retrieval token %q", token)
	}
	delete(c.cursors, token)
	return nil
}

// FindExtension implements vim.Client.
func (c *Client) FindExtension(ctx context.Context, key string) (*types.Extension, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	extension, ok := c.extensions[key]
	if !ok {
		return nil, nil
	}
	return &extension, nil
}

// RegisterExtension implements vim.Client.
func (c *Client) RegisterExtension(ctx context.Context, extension types.Extension) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.extensions[extension.Key]; ok {
		return fmt.Errorf("simulator: extension %q already registered", extension.Key)
	}
	c.extensions[extension.Key] = extension
	return nil
}

// selectEntities resolves an object spec to the targeted entities.
//
// Three shapes cover everything the helpers send: no select set targets the
// single starting object; a parent-hop traversal targets the object and its
// transitive parents; anything else is treated as the recursive inventory
// traversal, targeting every entity of the requested kind.
func (c *Client) selectEntities(spec types.ObjectSpec, kind string) []*entity {
	if len(spec.SelectSet) == 0 {
		if target, ok := c.entities[spec.Obj]; ok {
			return []*entity{target}
		}
		return nil
	}

	if traversal, ok := spec.SelectSet[0].(*types.TraversalSpec); ok && traversal.Path == "parent" {
		return c.parentChain(spec.Obj)
	}

	var matched []*entity
	for _, ref := range c.order {
		if matchesKind(ref.Type, kind) {
			matched = append(matched, c.entities[ref])
		}
	}
	return matched
}

// parentChain returns the entity and its transitive parents, as the parent
// traversal would visit them.
func (c *Client) parentChain(ref types.ManagedObjectReference) []*entity {
	var chain []*entity
	seen := make(map[types.ManagedObjectReference]bool)
	for {
		target, ok := c.entities[ref]
		if !ok || seen[ref] {
			return chain
		}
		seen[ref] = true
		chain = append(chain, target)

		parent, ok := target.properties["parent"].(types.ManagedObjectReference)
		if !ok {
			return chain
		}
		ref = parent
	}
}

// matchesKind applies the property spec's type filter. ManagedEntity is the
// base class of every inventory object.
func matchesKind(entityKind, specKind string) bool {
	return specKind == "ManagedEntity" || specKind == entityKind
}

// collect assembles the ObjectContent for one entity under a property spec.
// Requested properties the entity does not carry are omitted from the
// result, mirroring how the collector reports absent values.
func (c *Client) collect(target *entity, spec types.PropertySpec) types.ObjectContent {
	content := types.ObjectContent{Obj: target.ref}
	if spec.All {
		for name, value := range target.properties {
			content.PropSet = append(content.PropSet, types.DynamicProperty{Name: name, Val: value})
		}
		return content
	}
	for _, name := range spec.PathSet {
		if value, ok := target.properties[name]; ok {
			content.PropSet = append(content.PropSet, types.DynamicProperty{Name: name, Val: value})
		}
	}
	return content
}

// splitPages chunks contents into pages of at most maxObjects entries.
// A non-positive bound yields a single page.
func splitPages(contents []types.ObjectContent, maxObjects int32) [][]types.ObjectContent {
	if maxObjects <= 0 {
		return [][]types.ObjectContent{contents}
	}
	size := int(maxObjects)
	var pages [][]types.ObjectContent
	for start := 0; start < len(contents); start += size {
		end := min(start+size, len(contents))
		pages = append(pages, contents[start:end])
	}
	return pages
}
