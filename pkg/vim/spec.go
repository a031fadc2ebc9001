package vim

import "github.com/marmos91/vimkit/pkg/vim/types"

// NewSelectionSpec builds a selection spec referencing the traversal rule
// with the given name.
func NewSelectionSpec(name string) *types.SelectionSpec {
	return &types.SelectionSpec{Name: name}
}

// NewTraversalSpec builds one traversal hop: from objects of kind, follow
// the property named path, then apply the rules in selectSet to whatever the
// hop reaches.
func NewTraversalSpec(name, kind, path string, skip bool, selectSet ...types.BaseSelectionSpec) *types.TraversalSpec {
	return &types.TraversalSpec{
		SelectionSpec: types.SelectionSpec{Name: name},
		Type:          kind,
		Path:          path,
		Skip:          skip,
		SelectSet:     selectSet,
	}
}

// NewPropertySpec selects the properties to collect for objects of kind.
// With all set the path set is ignored by the server; with an empty path
// set the spec defaults to collecting the object name.
func NewPropertySpec(kind string, pathSet []string, all bool) types.PropertySpec {
	if len(pathSet) == 0 {
		pathSet = []string{"name"}
	}
	return types.PropertySpec{
		Type:    kind,
		All:     all,
		PathSet: pathSet,
	}
}

// NewObjectSpec roots a traversal at obj. The object itself is included in
// the result set; selectSet drives traversal beyond it.
func NewObjectSpec(obj types.ManagedObjectReference, selectSet ...types.BaseSelectionSpec) types.ObjectSpec {
	return types.ObjectSpec{
		Obj:       obj,
		Skip:      false,
		SelectSet: selectSet,
	}
}

// NewPropertyFilterSpec combines property and object specs into one
// retrievable filter.
func NewPropertyFilterSpec(propSet []types.PropertySpec, objectSet []types.ObjectSpec) types.PropertyFilterSpec {
	return types.PropertyFilterSpec{
		PropSet:   propSet,
		ObjectSet: objectSet,
	}
}

// RecursiveTraversalSpec builds the traversal rule set that visits the whole
// inventory hierarchy starting from a folder: folders recurse into child
// entities, datacenters expand into their host/vm/network folders, compute
// resources into hosts, datastores and resource pools, and resource pools
// into nested pools and virtual machines.
//
// The rule names are part of the request wire format; the cross-references
// between hops (via selection specs) rely on them.
func RecursiveTraversalSpec() *types.TraversalSpec {
	visitFolders := NewSelectionSpec("visitFolders")

	// Next hop from Datacenter
	dcToHostFolder := NewTraversalSpec("dc_to_hf", "Datacenter", "hostFolder", false, visitFolders)
	dcToVMFolder := NewTraversalSpec("dc_to_vmf", "Datacenter", "vmFolder", false, visitFolders)
	dcToNetworkFolder := NewTraversalSpec("dc_to_netf", "Datacenter", "networkFolder", false, visitFolders)

	// Next hop from HostSystem
	hostToVM := NewTraversalSpec("h_to_vm", "HostSystem", "vm", false, visitFolders)

	// Next hop from ComputeResource
	crToHost := NewTraversalSpec("cr_to_h", "ComputeResource", "host", false)
	crToDatastore := NewTraversalSpec("cr_to_ds", "ComputeResource", "datastore", false)

	rpToRP := NewSelectionSpec("rp_to_rp")
	rpToVM := NewSelectionSpec("rp_to_vm")

	crToResourcePool := NewTraversalSpec("cr_to_rp", "ComputeResource", "resourcePool", false, rpToRP, rpToVM)

	// Next hop from ClusterComputeResource
	clusterToHost := NewTraversalSpec("ccr_to_h", "ClusterComputeResource", "host", false)
	clusterToDatastore := NewTraversalSpec("ccr_to_ds", "ClusterComputeResource", "datastore", false)
	clusterToResourcePool := NewTraversalSpec("ccr_to_rp", "ClusterComputeResource", "resourcePool", false, rpToRP, rpToVM)

	// Next hop from ResourcePool
	poolToPool := NewTraversalSpec("rp_to_rp", "ResourcePool", "resourcePool", false, rpToRP, rpToVM)
	poolToVM := NewTraversalSpec("rp_to_vm", "ResourcePool", "vm", false, rpToRP, rpToVM)

	return NewTraversalSpec("visitFolders", "Folder", "childEntity", false,
		visitFolders,
		hostToVM,
		dcToHostFolder,
		dcToVMFolder,
		dcToNetworkFolder,
		crToDatastore,
		crToHost,
		crToResourcePool,
		clusterToHost,
		clusterToDatastore,
		clusterToResourcePool,
		poolToPool,
		poolToVM,
	)
}

// NewHTTPServiceRequestSpec describes an HTTP request to be ticketed by the
// session manager.
func NewHTTPServiceRequestSpec(method, url string) types.HTTPServiceRequestSpec {
	return types.HTTPServiceRequestSpec{
		Method: method,
		URL:    url,
	}
}
