// Package types defines the wire-shaped value types exchanged with a
// vSphere-style inventory service: managed object references, property
// collector filter specs, retrieval results, and extension records.
//
// These types mirror the shapes the remote API expects, but they are plain
// Go structs with no transport concerns. Building and sending the actual RPC
// messages is the job of a vim.Client implementation.
package types

import "time"

// ManagedObjectReference identifies a remote inventory entity.
//
// A reference is an explicit (type, value) pair. The value is opaque to
// clients; the type names the managed object class on the server side
// (e.g. "Datastore", "VirtualMachine", "Folder").
type ManagedObjectReference struct {
	// Type is the managed object class name
	Type string

	// Value is the server-assigned opaque identifier
	Value string
}

// NewReference builds a managed object reference from a class name and an
// opaque identifier.
func NewReference(kind, value string) ManagedObjectReference {
	return ManagedObjectReference{Type: kind, Value: value}
}

// IsZero reports whether the reference is unset.
func (r ManagedObjectReference) IsZero() bool {
	return r.Type == "" && r.Value == ""
}

func (r ManagedObjectReference) String() string {
	return r.Type + ":" + r.Value
}

// ============================================================================
// Property Collector Filter Specs
// ============================================================================
//
// These structures describe which objects to visit and which of their
// properties to fetch. They are assembled client-side (see pkg/vim spec
// builders) and sent as a unit in RetrievePropertiesEx calls.

// SelectionSpec names a traversal rule so it can be referenced recursively
// from another rule's select set.
type SelectionSpec struct {
	// Name identifies the rule within a filter spec
	Name string
}

// GetSelectionSpec returns the embedded selection spec.
func (s *SelectionSpec) GetSelectionSpec() *SelectionSpec {
	return s
}

// BaseSelectionSpec is implemented by SelectionSpec and TraversalSpec, the
// two rule kinds a select set may contain.
type BaseSelectionSpec interface {
	GetSelectionSpec() *SelectionSpec
}

// TraversalSpec describes one hop through the inventory graph: starting from
// objects of Type, follow the property named Path and continue with the
// rules in SelectSet.
type TraversalSpec struct {
	SelectionSpec

	// Type is the managed object class the hop starts from
	Type string

	// Path is the property to follow (e.g. "childEntity", "parent")
	Path string

	// Skip excludes the objects reached by this hop from the result set
	// while still traversing through them
	Skip bool

	// SelectSet lists the rules applied to the objects reached by this hop
	SelectSet []BaseSelectionSpec
}

// PropertySpec selects which properties to collect for objects of one class.
type PropertySpec struct {
	// Type is the managed object class this spec applies to
	Type string

	// All requests every property of the object, ignoring PathSet
	All bool

	// PathSet lists the property paths to collect
	PathSet []string
}

// ObjectSpec identifies the starting object of a traversal.
type ObjectSpec struct {
	// Obj is the root of the traversal
	Obj ManagedObjectReference

	// Skip excludes the starting object itself from the result set
	Skip bool

	// SelectSet lists the traversal rules applied from Obj
	SelectSet []BaseSelectionSpec
}

// PropertyFilterSpec combines object selection and property selection into
// one retrievable unit.
type PropertyFilterSpec struct {
	PropSet   []PropertySpec
	ObjectSet []ObjectSpec
}

// RetrieveOptions bounds a single RetrievePropertiesEx page.
type RetrieveOptions struct {
	// MaxObjects is the maximum number of objects returned in one page.
	// Zero or negative means the server default.
	MaxObjects int32
}

// ============================================================================
// Retrieval Results
// ============================================================================

// DynamicProperty is one collected property of a managed object.
type DynamicProperty struct {
	// Name is the property path that was collected
	Name string

	// Val is the property value; its concrete type depends on the property
	Val any
}

// ObjectContent holds the collected properties of a single managed object.
type ObjectContent struct {
	// Obj is the object the properties belong to
	Obj ManagedObjectReference

	// PropSet lists the collected properties. A requested property the
	// server has no value for is simply absent from the set.
	PropSet []DynamicProperty
}

// Property returns the value of the named property and whether the server
// reported it at all. A property can be present with a nil value; the
// boolean distinguishes that case from "not reported".
func (c ObjectContent) Property(name string) (any, bool) {
	for _, prop := range c.PropSet {
		if prop.Name == name {
			return prop.Val, true
		}
	}
	return nil, false
}

// RetrieveResult is one page of a property retrieval.
type RetrieveResult struct {
	// Token continues the retrieval on the server-side cursor. Empty when
	// this is the last page.
	Token string

	// Objects holds this page's results
	Objects []ObjectContent
}

// ============================================================================
// Extensions and Service Content
// ============================================================================

// Description is a human-readable label/summary pair.
type Description struct {
	Label   string
	Summary string
}

// ExtManagedEntityInfo declares an entity type managed by an extension.
type ExtManagedEntityInfo struct {
	Type string
}

// Extension is a client registration record on the remote platform.
type Extension struct {
	Key               string
	Version           string
	Description       Description
	ManagedEntityInfo []ExtManagedEntityInfo
	LastHeartbeatTime time.Time
}

// AboutInfo describes the remote platform build.
type AboutInfo struct {
	Name     string
	FullName string
	Version  string
}

// ServiceContent exposes the well-known service entry points of a session.
type ServiceContent struct {
	// RootFolder is the root of the inventory hierarchy
	RootFolder ManagedObjectReference

	// PropertyCollector serves property retrieval for this session
	PropertyCollector ManagedObjectReference

	// ExtensionManager serves extension registration for this session
	ExtensionManager ManagedObjectReference

	// About describes the remote platform
	About AboutInfo
}

// HTTPServiceRequestSpec describes an HTTP request to be proxied through the
// session manager (ticketed file transfers).
type HTTPServiceRequestSpec struct {
	// Method is the HTTP method (GET, POST, PUT)
	Method string

	// URL is the target of the request
	URL string
}
