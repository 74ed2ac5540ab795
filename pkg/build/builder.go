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

// Package build composes per-distro task sets, renders them against the
// network model, and materializes the result into a root filesystem.
package build

import (
	"context"

	"github.com/go-logr/logr"

	"github.com/mmlb/packethost-packet-networking/pkg/hooks"
	"github.com/mmlb/packethost-packet-networking/pkg/metadata"
	"github.com/mmlb/packethost-packet-networking/pkg/network"
)

// Builder orchestrates one provisioning run: metadata in, configuration
// files under the target root out.
type Builder struct {
	log      logr.Logger
	registry *Registry
	hooks    *hooks.Registry

	metadata *metadata.Document
	physical []network.PhysicalInterface
	resolver []network.ModelOption

	// Network is the derived model, available after Initialize. Resolvers
	// may be reassigned on it up until Run renders the templates.
	Network *network.Model

	initialized bool
}

type Option func(*Builder)

func WithLogger(log logr.Logger) Option {
	return func(b *Builder) { b.log = log }
}

func WithRegistry(registry *Registry) Option {
	return func(b *Builder) { b.registry = registry }
}

func WithHooks(registry *hooks.Registry) Option {
	return func(b *Builder) { b.hooks = registry }
}

// WithPhysicalInterfaces supplies the discovered host interfaces. Discovery
// itself lives outside this package (see pkg/network/sysfs).
func WithPhysicalInterfaces(phys []network.PhysicalInterface) Option {
	return func(b *Builder) { b.physical = phys }
}

// WithModelOptions forwards options to the network model construction.
func WithModelOptions(opts ...network.ModelOption) Option {
	return func(b *Builder) { b.resolver = opts }
}

func New(opts ...Option) *Builder {
	b := &Builder{
		log:      logr.Discard(),
		registry: NewRegistry(),
		hooks:    hooks.NewRegistry(),
	}

	for _, opt := range opts {
		opt(b)
	}

	return b
}

// SetMetadata installs the parsed metadata document.
func (b *Builder) SetMetadata(doc *metadata.Document) {
	b.metadata = doc
	b.initialized = false
}

// Metadata returns the installed document, nil before SetMetadata.
func (b *Builder) Metadata() *metadata.Document {
	return b.metadata
}

// Initialize builds the network model from the metadata document and the
// discovered physical interfaces, then triggers the "initialized" hook.
func (b *Builder) Initialize(ctx context.Context) error {
	b.initialized = false

	if b.metadata == nil {
		return ErrNoMetadata
	}

	model, err := network.NewModel(b.log, b.metadata, b.physical, b.resolver...)
	if err != nil {
		return err
	}

	b.Network = model
	b.initialized = true

	return b.hooks.Trigger(ctx, hooks.Initialized, b)
}

// Run looks up the distro builder for the document's operating system,
// builds and renders its task set, and writes the result under rootfs.
// The "generated" hook fires after a successful write.
func (b *Builder) Run(ctx context.Context, rootfs string) (RenderedSet, error) {
	if !b.initialized {
		return nil, ErrNotInitialized
	}

	osinfo := b.metadata.OperatingSystem

	factory, err := b.registry.Lookup(osinfo.Distro)
	if err != nil {
		return nil, err
	}

	env := &Env{
		Metadata: b.metadata,
		Network:  b.Network,
		Log:      b.log,
	}

	plan := NewPlan(env, factory())

	if _, err := plan.Build(); err != nil {
		return nil, err
	}

	rendered, err := plan.Run(rootfs)
	if err != nil {
		return nil, err
	}

	if err := b.hooks.Trigger(ctx, hooks.Generated, b); err != nil {
		return nil, err
	}

	return rendered, nil
}
