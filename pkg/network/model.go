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

// Package network derives a queryable network model from provider metadata
// and the interfaces actually discovered on the host.
package network

import (
	"net"

	"github.com/go-logr/logr"
	"github.com/pkg/errors"

	"github.com/mmlb/packethost-packet-networking/pkg/metadata"
)

const DefaultLinkAggregation = "bonded"

var (
	// DefaultPrivateSubnets is the address space routed via the private
	// gateway unless the metadata document overrides it.
	DefaultPrivateSubnets = []string{"10.0.0.0/8"}

	// DefaultResolvers are the facility anycast resolvers.
	DefaultResolvers = []string{"147.75.207.207", "147.75.207.208"}
)

// Model aggregates everything the distro builders consume. It is built once
// per provisioning run; only Resolvers may be reassigned afterwards, to
// support late binding from a post-generation hook.
type Model struct {
	Bonding            metadata.Bonding
	Interfaces         []Interface
	PhysicalInterfaces []PhysicalInterface
	Bonds              map[string][]Interface
	BondLabels         []string
	Addresses          AddressCollection
	Resolvers          []string
	PrivateSubnets     []string
}

type ModelOption func(*Model)

// WithResolvers overrides the default resolver list.
func WithResolvers(resolvers ...string) ModelOption {
	return func(m *Model) { m.Resolvers = resolvers }
}

// WithPrivateSubnets overrides the default private subnet list. A
// metadata-supplied list still wins over this option.
func WithPrivateSubnets(subnets ...string) ModelOption {
	return func(m *Model) { m.PrivateSubnets = subnets }
}

// NewModel reconciles the metadata document against the discovered physical
// interfaces and assembles the model used by every builder.
func NewModel(log logr.Logger, doc *metadata.Document, phys []PhysicalInterface, opts ...ModelOption) (*Model, error) {
	m := &Model{
		Resolvers:      append([]string{}, DefaultResolvers...),
		PrivateSubnets: append([]string{}, DefaultPrivateSubnets...),
	}

	for _, opt := range opts {
		opt(m)
	}

	if len(doc.PrivateSubnets) > 0 {
		m.PrivateSubnets = doc.PrivateSubnets
	}

	for _, subnet := range m.PrivateSubnets {
		if _, _, err := net.ParseCIDR(subnet); err != nil {
			return nil, errors.Wrapf(err, "invalid private subnet %q", subnet)
		}
	}

	m.Bonding = doc.Network.Bonding
	if m.Bonding.LinkAggregation == "" {
		m.Bonding.LinkAggregation = DefaultLinkAggregation
	}

	ifaces, err := Reconcile(log, doc.Network.Interfaces, phys)
	if err != nil {
		return nil, err
	}

	m.Interfaces = ifaces
	m.PhysicalInterfaces = phys
	m.Bonds, m.BondLabels = Bonds(ifaces)
	m.Addresses = NewAddressCollection(doc.Network.Addresses)

	return m, nil
}
