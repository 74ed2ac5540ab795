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

// Package metatest builds metadata documents for tests. The address values
// mirror what the provisioning API hands out for a typical two-NIC host.
package metatest

import (
	"github.com/google/uuid"

	"github.com/mmlb/packethost-packet-networking/pkg/metadata"
	"github.com/mmlb/packethost-packet-networking/pkg/network"
)

type Option func(*metadata.Document)

func WithDistro(distro, version string) Option {
	return func(doc *metadata.Document) {
		doc.OperatingSystem.Distro = distro
		doc.OperatingSystem.Version = version
	}
}

func WithLinkAggregation(mode string) Option {
	return func(doc *metadata.Document) {
		doc.Network.Bonding.LinkAggregation = mode
	}
}

func WithBondingMode(mode int) Option {
	return func(doc *metadata.Document) {
		doc.Network.Bonding.Mode = mode
	}
}

func WithPrivateSubnets(subnets ...string) Option {
	return func(doc *metadata.Document) {
		doc.PrivateSubnets = subnets
	}
}

// WithoutPublicAddresses drops every public address, leaving a
// private-only host.
func WithoutPublicAddresses() Option {
	return func(doc *metadata.Document) {
		kept := doc.Network.Addresses[:0]
		for _, addr := range doc.Network.Addresses {
			if !addr.Public {
				kept = append(kept, addr)
			}
		}

		doc.Network.Addresses = kept
	}
}

// WithoutIPv6Addresses drops every IPv6 address.
func WithoutIPv6Addresses() Option {
	return func(doc *metadata.Document) {
		kept := doc.Network.Addresses[:0]
		for _, addr := range doc.Network.Addresses {
			if addr.AddressFamily != 6 {
				kept = append(kept, addr)
			}
		}

		doc.Network.Addresses = kept
	}
}

func WithAddresses(addrs ...metadata.Address) Option {
	return func(doc *metadata.Document) {
		doc.Network.Addresses = addrs
	}
}

func WithInterfaces(ifaces ...metadata.Interface) Option {
	return func(doc *metadata.Document) {
		doc.Network.Interfaces = ifaces
	}
}

// Document returns a bonded two-interface metadata document carrying a
// management public IPv4, a management private IPv4, and a management
// public IPv6, in that order.
func Document(opts ...Option) *metadata.Document {
	doc := &metadata.Document{
		Hostname: "metatest-host",
		ID:       uuid.NewString(),
		Plan:     "c3.small.x86",
		OperatingSystem: metadata.OperatingSystem{
			Distro:  "ubuntu",
			Version: "18.04",
		},
		Network: metadata.Network{
			Bonding: metadata.Bonding{
				Mode:            4,
				LinkAggregation: "bonded",
			},
			Interfaces: []metadata.Interface{
				{Name: "eth0", MAC: "aa:bb:cc:dd:ee:00", Bond: "bond0"},
				{Name: "eth1", MAC: "aa:bb:cc:dd:ee:01", Bond: "bond0"},
			},
			Addresses: []metadata.Address{
				{
					Address:       "147.75.78.3",
					AddressFamily: 4,
					CIDR:          31,
					Netmask:       "255.255.255.254",
					Network:       "147.75.78.2",
					Gateway:       "147.75.78.2",
					Management:    true,
					Public:        true,
				},
				{
					Address:       "10.80.0.3",
					AddressFamily: 4,
					CIDR:          31,
					Netmask:       "255.255.255.254",
					Network:       "10.80.0.2",
					Gateway:       "10.80.0.2",
					Management:    true,
					Public:        false,
				},
				{
					Address:       "2604:1380:1:9d00::1",
					AddressFamily: 6,
					CIDR:          127,
					Netmask:       "ffff:ffff:ffff:ffff:ffff:ffff:ffff:fffe",
					Network:       "2604:1380:1:9d00::",
					Gateway:       "2604:1380:1:9d00::",
					Management:    true,
					Public:        true,
				},
			},
		},
	}

	for _, opt := range opts {
		opt(doc)
	}

	return doc
}

// PhysicalInterfaces returns host NICs matching the default document's MACs.
func PhysicalInterfaces() []network.PhysicalInterface {
	return []network.PhysicalInterface{
		{Name: "enp0", MAC: "aa:bb:cc:dd:ee:00", Driver: "mlx5_core", BusID: "0000:01:00.0"},
		{Name: "enp1", MAC: "aa:bb:cc:dd:ee:01", Driver: "mlx5_core", BusID: "0000:01:00.1"},
	}
}
