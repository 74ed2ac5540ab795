/*
Copyright 2026 The packet-networking Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// packet-networking reads a host metadata document and writes the matching
// network configuration files into a root filesystem.
package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/mmlb/packethost-packet-networking/pkg/build"
	"github.com/mmlb/packethost-packet-networking/pkg/distros"
	"github.com/mmlb/packethost-packet-networking/pkg/metadata"
	"github.com/mmlb/packethost-packet-networking/pkg/network"
	"github.com/mmlb/packethost-packet-networking/pkg/network/sysfs"
)

// Version of packet-networking
var Version = "edge"

type options struct {
	metadataFile string
	rootfs       string
	resolvers    []string
	verbosity    int
}

func main() {
	opts := options{}

	cmd := &cobra.Command{
		Use:     "packet-networking",
		Short:   "Generate network configuration files from host metadata",
		Version: Version,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true

			return run(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.metadataFile, "metadata-file", "M", "-", "Metadata file to read, \"-\" for stdin")
	cmd.Flags().StringVarP(&opts.rootfs, "rootfs", "o", "/", "Root filesystem to write configuration into")
	cmd.Flags().StringSliceVarP(&opts.resolvers, "resolvers", "n", nil, "Resolvers to use instead of the defaults")
	cmd.Flags().IntVarP(&opts.verbosity, "verbosity", "v", 0, "Verbosity level (0=info, 1=debug, -1=errors only)")

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, opts options) error {
	log := setupLogger(opts.verbosity)
	log.Info("packet-networking", "version", Version, "rootfs", opts.rootfs)

	doc, err := metadata.ParseFile(opts.metadataFile, cmd.InOrStdin())
	if err != nil {
		log.Error(err, "Failed to read metadata")

		return err
	}

	phys, err := sysfs.Discover()
	if err != nil {
		log.Error(err, "Failed to discover network interfaces")

		return err
	}

	registry := build.NewRegistry()
	if err := distros.Register(registry); err != nil {
		log.Error(err, "Failed to register distro builders")

		return err
	}

	var modelOpts []network.ModelOption
	if len(opts.resolvers) > 0 {
		modelOpts = append(modelOpts, network.WithResolvers(opts.resolvers...))
	}

	builder := build.New(
		build.WithLogger(log),
		build.WithRegistry(registry),
		build.WithPhysicalInterfaces(phys),
		build.WithModelOptions(modelOpts...),
	)
	builder.SetMetadata(doc)

	ctx := cmd.Context()

	if err := builder.Initialize(ctx); err != nil {
		log.Error(err, "Failed to build the network model")

		return err
	}

	rendered, err := builder.Run(ctx, opts.rootfs)
	if err != nil {
		log.Error(err, "Failed to generate network configuration")

		return err
	}

	for _, path := range rendered.Paths() {
		log.V(1).Info("Wrote configuration file", "path", path)
	}

	log.Info("Network configuration generated", "files", len(rendered))

	return nil
}
