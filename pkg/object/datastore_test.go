package object

import (
	"testing"

	"github.com/marmos91/vimkit/pkg/vim/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func int64Ptr(v int64) *int64 {
	return &v
}

func TestNewDatastore_Valid(t *testing.T) {
	ref := types.NewReference("Datastore", "datastore-1")

	ds, err := NewDatastore(ref, "ds1", int64Ptr(100), int64Ptr(40))
	require.NoError(t, err)

	assert.Equal(t, ref, ds.Ref())
	assert.Equal(t, "ds1", ds.Name())

	capacity, ok := ds.Capacity()
	require.True(t, ok)
	assert.Equal(t, int64(100), capacity)

	freeSpace, ok := ds.FreeSpace()
	require.True(t, ok)
	assert.Equal(t, int64(40), freeSpace)

	assert.Equal(t, "[ds1]", ds.String())
}

func TestNewDatastore_NoUsage(t *testing.T) {
	ds, err := NewDatastore(types.NewReference("Datastore", "datastore-1"), "ds1", nil, nil)
	require.NoError(t, err)

	_, ok := ds.Capacity()
	assert.False(t, ok, "capacity should be absent")
	_, ok = ds.FreeSpace()
	assert.False(t, ok, "free space should be absent")
}

func TestNewDatastore_Validation(t *testing.T) {
	ref := types.NewReference("Datastore", "datastore-1")

	tests := []struct {
		name      string
		ref       types.ManagedObjectReference
		dsName    string
		capacity  *int64
		freeSpace *int64
	}{
		{
			name:   "empty name",
			ref:    ref,
			dsName: "",
		},
		{
			name:   "empty reference",
			ref:    types.ManagedObjectReference{},
			dsName: "ds1",
		},
		{
			name:      "free space without capacity",
			ref:       ref,
			dsName:    "ds1",
			freeSpace: int64Ptr(100),
		},
		{
			name:      "capacity smaller than free space",
			ref:       ref,
			dsName:    "ds1",
			capacity:  int64Ptr(10),
			freeSpace: int64Ptr(100),
		},
		{
			name:     "negative capacity",
			ref:      ref,
			dsName:   "ds1",
			capacity: int64Ptr(-1),
		},
		{
			name:      "negative free space",
			ref:       ref,
			dsName:    "ds1",
			capacity:  int64Ptr(10),
			freeSpace: int64Ptr(-1),
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewDatastore(tc.ref, tc.dsName, tc.capacity, tc.freeSpace)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidArgument)
		})
	}
}

func TestDatastore_BuildPath(t *testing.T) {
	ds, err := NewDatastore(types.NewReference("Datastore", "datastore-1"), "ds1", nil, nil)
	require.NoError(t, err)

	assert.Equal(t, "[ds1]", ds.BuildPath().String())
	assert.Equal(t, "[ds1] a/b/c.vmdk", ds.BuildPath("a", "b", "c.vmdk").String())
	assert.Equal(t, "ds1", ds.BuildPath("a").Datastore())
}
