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

package build

import (
	"github.com/go-logr/logr"
	"github.com/samber/lo"

	"github.com/mmlb/packethost-packet-networking/pkg/metadata"
	"github.com/mmlb/packethost-packet-networking/pkg/network"
)

// Env is the slice of builder state handed to distro and network builders:
// the typed metadata document and the derived network model. Builders only
// ever consume these named fields; there is no fallthrough into the raw
// metadata.
type Env struct {
	Metadata *metadata.Document
	Network  *network.Model
	Log      logr.Logger
}

// IPv4Pub narrows to the management public IPv4 addresses.
func (e *Env) IPv4Pub() network.AddressCollection {
	return e.Network.Addresses.Management().Public().IPv4()
}

// IPv4Priv narrows to the management private IPv4 addresses.
func (e *Env) IPv4Priv() network.AddressCollection {
	return e.Network.Addresses.Management().Private().IPv4()
}

// IPv6Pub narrows to the management public IPv6 addresses.
func (e *Env) IPv6Pub() network.AddressCollection {
	return e.Network.Addresses.Management().Public().IPv6()
}

// Context assembles the base template context shared by every task. The
// whole tree is map-shaped so strict rendering can flag unbound names.
// Absent first-addresses are carried as nil: conditional blocks skip them
// cleanly, while a stray field access fails the render.
func (e *Env) Context() map[string]any {
	ifaces := lo.Map(e.Network.Interfaces, func(i network.Interface, _ int) map[string]any {
		return ifaceContext(i)
	})

	bonds := map[string]any{}
	for label, members := range e.Network.Bonds {
		bonds[label] = lo.Map(members, func(i network.Interface, _ int) map[string]any {
			return ifaceContext(i)
		})
	}

	addresses := lo.Map(e.Network.Addresses, func(a network.Address, _ int) map[string]any {
		return addressContext(&a)
	})

	var iface0 map[string]any
	if len(ifaces) > 0 {
		iface0 = ifaces[0]
	}

	return map[string]any{
		"hostname":   e.Metadata.Hostname,
		"iface0":     iface0,
		"interfaces": ifaces,
		"ip4pub":     optionalAddress(e.IPv4Pub().First()),
		"ip4priv":    optionalAddress(e.IPv4Priv().First()),
		"ip6pub":     optionalAddress(e.IPv6Pub().First()),
		"net": map[string]any{
			"bonding": map[string]any{
				"mode":             e.Network.Bonding.Mode,
				"link_aggregation": e.Network.Bonding.LinkAggregation,
			},
			"interfaces":      ifaces,
			"bonds":           bonds,
			"addresses":       addresses,
			"resolvers":       e.Network.Resolvers,
			"private_subnets": e.Network.PrivateSubnets,
		},
		"osinfo": map[string]any{
			"distro":  e.Metadata.OperatingSystem.Distro,
			"version": e.Metadata.OperatingSystem.Version,
		},
		"private_subnets": e.Network.PrivateSubnets,
		"resolvers":       e.Network.Resolvers,
	}
}

func ifaceContext(i network.Interface) map[string]any {
	return map[string]any{
		"name":   i.Name,
		"mac":    i.MAC,
		"bond":   i.Bond,
		"driver": i.Driver,
		"bus_id": i.BusID,
	}
}

func addressContext(a *network.Address) map[string]any {
	return map[string]any{
		"address":        a.Address,
		"address_family": a.AddressFamily,
		"cidr":           a.CIDR,
		"netmask":        a.Netmask,
		"network":        a.Network,
		"gateway":        a.Gateway,
		"management":     a.Management,
		"public":         a.Public,
	}
}

// optionalAddress is the rendering-time shape of Present|Absent: an absent
// address is an untyped nil that conditionals treat as false.
func optionalAddress(a *network.Address) any {
	if a == nil {
		return nil
	}

	return addressContext(a)
}
