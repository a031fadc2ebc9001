package simulator

import (
	"context"
	"testing"

	"github.com/marmos91/vimkit/pkg/vim/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func retrieveAllDatastores(t *testing.T, sim *Client, maxObjects int32) *types.RetrieveResult {
	t.Helper()

	filter := types.PropertyFilterSpec{
		PropSet: []types.PropertySpec{{Type: "Datastore", PathSet: []string{"name"}}},
		ObjectSet: []types.ObjectSpec{{
			Obj:       sim.RootFolder(),
			SelectSet: []types.BaseSelectionSpec{&types.TraversalSpec{SelectionSpec: types.SelectionSpec{Name: "visitFolders"}, Type: "Folder", Path: "childEntity"}},
		}},
	}
	result, err := sim.RetrievePropertiesEx(context.Background(),
		[]types.PropertyFilterSpec{filter},
		types.RetrieveOptions{MaxObjects: maxObjects},
	)
	require.NoError(t, err)
	return result
}

func TestTokenLifecycle(t *testing.T) {
	sim := New()
	datacenter := sim.AddEntity("Datacenter", "dc1", sim.RootFolder(), nil)
	for _, name := range []string{"a", "b", "c"} {
		sim.AddEntity("Datastore", name, datacenter, nil)
	}
	ctx := context.Background()

	result := retrieveAllDatastores(t, sim, 2)
	require.NotNil(t, result)
	assert.Len(t, result.Objects, 2)
	require.NotEmpty(t, result.Token)

	next, err := sim.ContinueRetrievePropertiesEx(ctx, result.Token)
	require.NoError(t, err)
	assert.Len(t, next.Objects, 1)
	assert.Empty(t, next.Token, "last page carries no token")

	// The cursor is gone once exhausted.
	_, err = sim.ContinueRetrievePropertiesEx(ctx, result.Token)
	require.Error(t, err)
}

func TestCancelInvalidatesToken(t *testing.T) {
	sim := New()
	datacenter := sim.AddEntity("Datacenter", "dc1", sim.RootFolder(), nil)
	for _, name := range []string{"a", "b", "c"} {
		sim.AddEntity("Datastore", name, datacenter, nil)
	}
	ctx := context.Background()

	result := retrieveAllDatastores(t, sim, 1)
	require.NotEmpty(t, result.Token)

	require.NoError(t, sim.CancelRetrievePropertiesEx(ctx, result.Token))

	_, err := sim.ContinueRetrievePropertiesEx(ctx, result.Token)
	require.Error(t, err)

	require.Error(t, sim.CancelRetrievePropertiesEx(ctx, "bogus-token"))
}

func TestRetrieve_NoMatches(t *testing.T) {
	sim := New()

	result := retrieveAllDatastores(t, sim, 10)
	assert.Nil(t, result, "no datastores in an empty inventory")
}

func TestRetrieve_ContextCancelled(t *testing.T) {
	sim := New()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := sim.RetrievePropertiesEx(ctx, nil, types.RetrieveOptions{})
	require.Error(t, err)
}
