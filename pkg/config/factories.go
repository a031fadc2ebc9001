package config

import (
	"fmt"

	"github.com/marmos91/vimkit/internal/logger"
	"github.com/marmos91/vimkit/pkg/vim"
	"github.com/marmos91/vimkit/pkg/vim/simulator"
	"github.com/mitchellh/mapstructure"
)

// CreateClient creates an inventory session based on configuration.
//
// The Type field selects the implementation; the matching type-specific
// section is decoded and passed to its constructor.
//
// Supported types:
//   - "simulator": in-memory inventory (pkg/vim/simulator), seeded from the
//     simulator section
//   - "soap": a live endpoint; not bundled, callers inject their own
//     vim.Client implementation instead
func CreateClient(cfg *ClientConfig) (vim.Client, error) {
	switch cfg.Type {
	case "simulator":
		return createSimulatorClient(cfg.Simulator)
	case "soap":
		return nil, fmt.Errorf("soap client is not bundled - inject your own vim.Client implementation (see pkg/vim)")
	default:
		return nil, fmt.Errorf("unknown client type: %q", cfg.Type)
	}
}

// createSimulatorClient seeds an in-memory inventory from configuration.
func createSimulatorClient(options map[string]any) (vim.Client, error) {
	type DatastoreSeed struct {
		Name      string `mapstructure:"name"`
		Capacity  int64  `mapstructure:"capacity"`
		FreeSpace int64  `mapstructure:"free_space"`
	}
	type SimulatorConfig struct {
		Datacenter string          `mapstructure:"datacenter"`
		Datastores []DatastoreSeed `mapstructure:"datastores"`
	}

	var seed SimulatorConfig
	if err := mapstructure.Decode(options, &seed); err != nil {
		return nil, fmt.Errorf("failed to decode simulator config: %w", err)
	}
	if seed.Datacenter == "" {
		seed.Datacenter = "dc1"
	}

	client := simulator.New()
	datacenter := client.AddEntity("Datacenter", seed.Datacenter, client.RootFolder(), nil)
	for i, datastore := range seed.Datastores {
		if datastore.Name == "" {
			return nil, fmt.Errorf("simulator: datastores[%d]: name is required", i)
		}
		if datastore.Capacity < datastore.FreeSpace {
			return nil, fmt.Errorf("simulator: datastores[%d]: capacity is smaller than free space", i)
		}
		client.AddEntity("Datastore", datastore.Name, datacenter, map[string]any{
			"summary.capacity":  datastore.Capacity,
			"summary.freeSpace": datastore.FreeSpace,
		})
	}

	logger.Debug("seeded simulator inventory: datacenter=%s datastores=%d",
		seed.Datacenter, len(seed.Datastores))
	return client, nil
}
