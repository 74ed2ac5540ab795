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

package network_test

import (
	"strconv"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmlb/packethost-packet-networking/pkg/network"
)

// One address per (management, public, family) combination, each with a
// distinct literal so assertions can pick them apart.
func testAddresses() network.AddressCollection {
	return network.NewAddressCollection([]network.Address{
		{Address: "147.75.78.3", AddressFamily: 4, Management: true, Public: true},
		{Address: "10.80.0.3", AddressFamily: 4, Management: true, Public: false},
		{Address: "2604:1380:1:9d00::1", AddressFamily: 6, Management: true, Public: true},
		{Address: "147.75.40.1", AddressFamily: 4, Management: false, Public: true},
		{Address: "10.90.0.1", AddressFamily: 4, Management: false, Public: false},
		{Address: "2604:1380:2:5e00::1", AddressFamily: 6, Management: false, Public: true},
	})
}

func TestAddressCollectionNarrowing(t *testing.T) {
	assert := assert.New(t)

	addrs := testAddresses()

	tests := []struct {
		name   string
		narrow func() network.AddressCollection
		want   []string
	}{
		{
			"ManagementPublicIPv4",
			func() network.AddressCollection { return addrs.Management().Public().IPv4() },
			[]string{"147.75.78.3"},
		},
		{
			"ManagementPrivateIPv4",
			func() network.AddressCollection { return addrs.Management().Private().IPv4() },
			[]string{"10.80.0.3"},
		},
		{
			"ManagementPublicIPv6",
			func() network.AddressCollection { return addrs.Management().Public().IPv6() },
			[]string{"2604:1380:1:9d00::1"},
		},
		{
			"Public",
			func() network.AddressCollection { return addrs.Public() },
			[]string{"147.75.78.3", "2604:1380:1:9d00::1", "147.75.40.1", "2604:1380:2:5e00::1"},
		},
		{
			"Private",
			func() network.AddressCollection { return addrs.Private() },
			[]string{"10.80.0.3", "10.90.0.1"},
		},
		{
			"IPv6Private",
			func() network.AddressCollection { return addrs.IPv6().Private() },
			nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.narrow()

			addresses := make([]string, 0, len(got))
			for _, a := range got {
				addresses = append(addresses, a.Address)
			}

			if tt.want == nil {
				assert.Empty(addresses)
			} else {
				assert.Equal(tt.want, addresses)
			}
		})
	}
}

func TestAddressCollectionPredicateOrder(t *testing.T) {
	assert := assert.New(t)

	addrs := testAddresses()

	assert.Equal(addrs.Management().Public().IPv4(), addrs.IPv4().Public().Management())
	assert.Equal(addrs.Private().Management(), addrs.Management().Private())
	assert.Equal(addrs.Public().IPv6(), addrs.IPv6().Public())
}

func TestAddressCollectionDoesNotMutate(t *testing.T) {
	assert := assert.New(t)

	addrs := testAddresses()
	before := len(addrs)

	_ = addrs.Management().Public().IPv4()
	_ = addrs.Private()

	assert.Len(addrs, before)
	assert.Equal(testAddresses(), addrs)
}

func TestAddressCollectionFirst(t *testing.T) {
	assert := assert.New(t)

	addrs := testAddresses()

	first := addrs.Management().Public().IPv4().First()
	require.NotNil(t, first)
	assert.Equal("147.75.78.3", first.Address)

	// First returns a copy, not a view into the collection.
	first.Address = "changed"
	assert.Equal("147.75.78.3", addrs.Management().Public().IPv4().First().Address)

	assert.Nil(addrs.IPv6().Private().First())
	assert.Nil(network.NewAddressCollection(nil).First())
}

func genAddress() gopter.Gen {
	return gopter.CombineGens(
		gen.Bool(),
		gen.Bool(),
		gen.OneConstOf(4, 6),
		gen.IntRange(0, 255),
	).Map(func(values []any) network.Address {
		return network.Address{
			Address:       "10.0.0." + strconv.Itoa(values[3].(int)),
			AddressFamily: values[2].(int),
			Management:    values[0].(bool),
			Public:        values[1].(bool),
		}
	})
}

func TestAddressCollectionProperties(t *testing.T) {
	params := gopter.DefaultTestParameters()
	params.MinSuccessfulTests = 200

	properties := gopter.NewProperties(params)

	properties.Property("narrowing commutes", prop.ForAll(
		func(addrs []network.Address) bool {
			c := network.NewAddressCollection(addrs)

			lhs := c.Management().Public().IPv4()
			rhs := c.IPv4().Public().Management()

			if len(lhs) != len(rhs) {
				return false
			}

			for i := range lhs {
				if lhs[i] != rhs[i] {
					return false
				}
			}

			return true
		},
		gen.SliceOf(genAddress()),
	))

	properties.Property("narrowing never grows", prop.ForAll(
		func(addrs []network.Address) bool {
			c := network.NewAddressCollection(addrs)

			return len(c.Public()) <= len(c) &&
				len(c.Public().IPv4()) <= len(c.Public()) &&
				len(c.Private())+len(c.Public()) == len(c)
		},
		gen.SliceOf(genAddress()),
	))

	properties.TestingRun(t)
}
