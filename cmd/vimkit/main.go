// Command vimkit is a small inspection tool around the vimkit library:
// it parses and joins datastore path strings and lists the datastores of
// the configured inventory session.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/marmos91/vimkit/internal/logger"
	"github.com/marmos91/vimkit/pkg/config"
	"github.com/marmos91/vimkit/pkg/metrics"
	"github.com/marmos91/vimkit/pkg/object"
	"github.com/marmos91/vimkit/pkg/vim"
)

const version = "0.1.0"

func main() {
	configPath := flag.String("config", "", "Path to config file (default: "+config.GetDefaultConfigPath()+")")
	logLevel := flag.String("log-level", "", "Override log level (DEBUG, INFO, WARN, ERROR)")
	showVersion := flag.Bool("version", false, "Print version and exit")
	flag.Usage = usage
	flag.Parse()

	if *showVersion {
		fmt.Printf("vimkit %s\n", version)
		return
	}

	if err := run(*configPath, *logLevel, flag.Args()); err != nil {
		fmt.Fprintf(os.Stderr, "vimkit: %v\n", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintf(flag.CommandLine.Output(), `Usage: vimkit [flags] <command> [args]

Commands:
  parse <path>...              Parse datastore path strings and print their components
  join <path> <component>...   Join components onto a datastore path
  datastores                   List datastores of the configured inventory session
  version                      Print the remote platform version

Flags:
`)
	flag.PrintDefaults()
}

func run(configPath, logLevel string, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	if logLevel == "" {
		logLevel = cfg.Logging.Level
	}
	logger.SetLevel(logLevel)

	if cfg.Metrics.Enabled {
		metrics.InitRegistry()
	}

	if len(args) == 0 {
		flag.Usage()
		return fmt.Errorf("missing command")
	}

	switch args[0] {
	case "parse":
		return runParse(args[1:])
	case "join":
		return runJoin(args[1:])
	case "datastores":
		return runDatastores(cfg)
	case "version":
		return runVersion(cfg)
	default:
		return fmt.Errorf("unknown command: %q", args[0])
	}
}

func runParse(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("parse: at least one path argument is required")
	}
	for _, raw := range args {
		path, err := object.ParseDatastorePath(raw)
		if err != nil {
			return err
		}
		fmt.Printf("%s\n", path)
		fmt.Printf("  datastore: %s\n", path.Datastore())
		fmt.Printf("  rel_path:  %s\n", path.RelPath())
		fmt.Printf("  dirname:   %s\n", path.Dirname())
		fmt.Printf("  basename:  %s\n", path.Basename())
		fmt.Printf("  parent:    %s\n", path.Parent())
	}
	return nil
}

func runJoin(args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("join: a path and at least one component are required")
	}
	path, err := object.ParseDatastorePath(args[0])
	if err != nil {
		return err
	}
	fmt.Println(path.Join(args[1:]...))
	return nil
}

func runDatastores(cfg *config.Config) error {
	client, err := newPropertyClient(cfg)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Client.RequestTimeout)
	defer cancel()

	datastores, err := client.Datastores(ctx)
	if err != nil {
		return err
	}
	for _, datastore := range datastores {
		line := datastore.String()
		if capacity, ok := datastore.Capacity(); ok {
			free, _ := datastore.FreeSpace()
			line += fmt.Sprintf(" capacity=%d free=%d", capacity, free)
		}
		fmt.Println(line)
	}
	logger.Info("listed %d datastores", len(datastores))
	return nil
}

func runVersion(cfg *config.Config) error {
	client, err := newPropertyClient(cfg)
	if err != nil {
		return err
	}
	fmt.Println(client.Version())
	return nil
}

func newPropertyClient(cfg *config.Config) (*vim.PropertyClient, error) {
	session, err := config.CreateClient(&cfg.Client)
	if err != nil {
		return nil, err
	}

	opts := []vim.PropertyClientOption{vim.WithPageSize(int32(cfg.Client.PageSize))}
	if cfg.Metrics.Enabled {
		opts = append(opts, vim.WithMetrics(metrics.NewCollectorMetrics()))
	}
	return vim.NewPropertyClient(session, opts...)
}
