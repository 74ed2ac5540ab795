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

package network

import (
	"github.com/samber/lo"

	"github.com/mmlb/packethost-packet-networking/pkg/metadata"
)

// Address is an assigned address record as supplied by the metadata document.
type Address = metadata.Address

// AddressCollection is an ordered set of addresses narrowed by chained
// predicates, e.g. Management().Public().IPv4(). Every narrowing step
// returns a fresh collection; the parent is never mutated.
type AddressCollection []Address

// NewAddressCollection classifies a flat list of address records. No
// validation happens here; netmask, network and gateway are passed through
// exactly as the provider supplied them.
func NewAddressCollection(addrs []Address) AddressCollection {
	return AddressCollection(addrs)
}

// Management narrows to addresses used for control-plane traffic.
func (c AddressCollection) Management() AddressCollection {
	return c.where(func(a Address) bool { return a.Management })
}

// Public narrows to globally routable addresses.
func (c AddressCollection) Public() AddressCollection {
	return c.where(func(a Address) bool { return a.Public })
}

// Private narrows to addresses that are not globally routable.
func (c AddressCollection) Private() AddressCollection {
	return c.where(func(a Address) bool { return !a.Public })
}

// IPv4 narrows to family-4 addresses.
func (c AddressCollection) IPv4() AddressCollection {
	return c.where(func(a Address) bool { return a.AddressFamily == 4 })
}

// IPv6 narrows to family-6 addresses.
func (c AddressCollection) IPv6() AddressCollection {
	return c.where(func(a Address) bool { return a.AddressFamily == 6 })
}

// First returns the first matching address, or nil when the collection is
// empty. Callers hand the nil straight to the template layer, where it
// renders as undefined rather than faulting.
func (c AddressCollection) First() *Address {
	if len(c) == 0 {
		return nil
	}

	addr := c[0]

	return &addr
}

func (c AddressCollection) where(pred func(Address) bool) AddressCollection {
	return AddressCollection(lo.Filter(c, func(a Address, _ int) bool { return pred(a) }))
}
