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

package alpine_test

import (
	"testing"

	"github.com/go-logr/logr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmlb/packethost-packet-networking/pkg/build"
	"github.com/mmlb/packethost-packet-networking/pkg/distros/alpine"
	"github.com/mmlb/packethost-packet-networking/pkg/metadata/metatest"
	"github.com/mmlb/packethost-packet-networking/pkg/network"
)

func render(t *testing.T, opts ...metatest.Option) build.RenderedSet {
	t.Helper()

	doc := metatest.Document(opts...)

	model, err := network.NewModel(logr.Discard(), doc, metatest.PhysicalInterfaces())
	require.NoError(t, err)

	env := &build.Env{Metadata: doc, Network: model, Log: logr.Discard()}
	plan := build.NewPlan(env, alpine.Factory())

	_, err = plan.Build()
	require.NoError(t, err)

	rendered, err := plan.Render()
	require.NoError(t, err)

	return rendered
}

func TestAlpineBonded(t *testing.T) {
	assert := assert.New(t)

	rendered := render(t, metatest.WithDistro("alpine", "3.11"))

	assert.Equal([]string{
		"etc/hostname",
		"etc/hosts",
		"etc/modules",
		"etc/network/interfaces",
		"etc/resolv.conf",
	}, rendered.Paths())

	assert.Equal(`auto lo
iface lo inet loopback

auto enp0
iface enp0 inet manual
    bond-master bond0

auto enp1
iface enp1 inet manual
    bond-master bond0

auto bond0
iface bond0 inet static
    address 147.75.78.3
    netmask 255.255.255.254
    gateway 147.75.78.2
    bond-mode 4
    bond-miimon 100
    bond-downdelay 200
    bond-updelay 200
    bond-xmit-hash-policy layer3+4
    bond-slaves enp0 enp1

iface bond0 inet6 static
    address 2604:1380:1:9d00::1
    netmask 127
    gateway 2604:1380:1:9d00::

auto bond0:0
iface bond0:0 inet static
    address 10.80.0.3
    netmask 255.255.255.254
    post-up route add -net 10.0.0.0/8 gw 10.80.0.2
    post-down route del -net 10.0.0.0/8 gw 10.80.0.2
`, rendered["etc/network/interfaces"].Content)

	assert.Equal("bonding\n", rendered["etc/modules"].Content)
	assert.Equal("a", rendered["etc/modules"].FileMode)
}

func TestAlpineIndividualPrivateOnly(t *testing.T) {
	assert := assert.New(t)

	rendered := render(t,
		metatest.WithDistro("alpine", "3.11"),
		metatest.WithLinkAggregation("individual"),
		metatest.WithoutPublicAddresses(),
	)

	assert.NotContains(rendered, "etc/modules")

	assert.Equal(`auto lo
iface lo inet loopback

auto enp0
iface enp0 inet static
    address 10.80.0.3
    netmask 255.255.255.254
    gateway 10.80.0.2
`, rendered["etc/network/interfaces"].Content)
}
