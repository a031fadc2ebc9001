// Package object provides value types for working with a remote
// virtualization inventory: datastores and datastore paths.
//
// All types in this package are immutable values with no remote effects.
// They are constructed from data an inventory query already returned (see
// pkg/vim) and can be built, parsed, and compared without holding a live
// session.
package object

import (
	"fmt"

	"github.com/marmos91/vimkit/pkg/vim/types"
)

// Datastore identifies a named storage volume, optionally carrying the
// capacity and free-space figures reported by the inventory.
//
// A Datastore pairs the volume's managed object reference with its unique
// name so callers can keep both together. It also acts as a factory for
// paths rooted at the volume (see BuildPath).
//
// Instances are immutable after construction. Concurrent reads from
// multiple goroutines are safe without locking.
type Datastore struct {
	ref       types.ManagedObjectReference
	name      string
	capacity  *int64
	freeSpace *int64
}

// NewDatastore builds a Datastore from an inventory reference and name.
//
// capacity and freeSpace are optional byte counts; pass nil when the
// inventory did not report them. Construction fails with ErrInvalidArgument
// when:
//   - ref is unset or name is empty
//   - freeSpace is set without capacity
//   - either figure is negative, or capacity is smaller than freeSpace
func NewDatastore(ref types.ManagedObjectReference, name string, capacity, freeSpace *int64) (*Datastore, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: datastore name cannot be empty", ErrInvalidArgument)
	}
	if ref.IsZero() {
		return nil, fmt.Errorf("%w: datastore reference cannot be empty", ErrInvalidArgument)
	}
	if freeSpace != nil && capacity == nil {
		return nil, fmt.Errorf("%w: free space requires capacity", ErrInvalidArgument)
	}
	if capacity != nil && *capacity < 0 {
		return nil, fmt.Errorf("%w: capacity cannot be negative", ErrInvalidArgument)
	}
	if freeSpace != nil && *freeSpace < 0 {
		return nil, fmt.Errorf("%w: free space cannot be negative", ErrInvalidArgument)
	}
	if capacity != nil && freeSpace != nil && *capacity < *freeSpace {
		return nil, fmt.Errorf("%w: capacity is smaller than free space", ErrInvalidArgument)
	}

	ds := &Datastore{
		ref:  ref,
		name: name,
	}
	if capacity != nil {
		value := *capacity
		ds.capacity = &value
	}
	if freeSpace != nil {
		value := *freeSpace
		ds.freeSpace = &value
	}
	return ds, nil
}

// Ref returns the datastore's managed object reference.
func (d *Datastore) Ref() types.ManagedObjectReference {
	return d.ref
}

// Name returns the datastore's unique volume name.
func (d *Datastore) Name() string {
	return d.name
}

// Capacity returns the capacity in bytes and whether it was reported.
func (d *Datastore) Capacity() (int64, bool) {
	if d.capacity == nil {
		return 0, false
	}
	return *d.capacity, true
}

// FreeSpace returns the free space in bytes and whether it was reported.
func (d *Datastore) FreeSpace() (int64, bool) {
	if d.freeSpace == nil {
		return 0, false
	}
	return *d.freeSpace, true
}

// BuildPath constructs a DatastorePath rooted at this datastore, with the
// given components joined under the volume root. With no components the
// result is the volume root itself.
func (d *Datastore) BuildPath(components ...string) DatastorePath {
	// The name was validated at construction, so this cannot fail.
	return DatastorePath{
		datastoreName: d.name,
		relPath:       joinRelPath(components...),
	}
}

func (d *Datastore) String() string {
	return "[" + d.name + "]"
}
