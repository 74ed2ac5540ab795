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

package redhat_test

import (
	"testing"

	"github.com/go-logr/logr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmlb/packethost-packet-networking/pkg/build"
	"github.com/mmlb/packethost-packet-networking/pkg/distros/redhat"
	"github.com/mmlb/packethost-packet-networking/pkg/metadata/metatest"
	"github.com/mmlb/packethost-packet-networking/pkg/network"
)

func render(t *testing.T, opts ...metatest.Option) build.RenderedSet {
	t.Helper()

	doc := metatest.Document(opts...)

	model, err := network.NewModel(logr.Discard(), doc, metatest.PhysicalInterfaces())
	require.NoError(t, err)

	env := &build.Env{Metadata: doc, Network: model, Log: logr.Discard()}
	plan := build.NewPlan(env, redhat.Factory())

	_, err = plan.Build()
	require.NoError(t, err)

	rendered, err := plan.Render()
	require.NoError(t, err)

	return rendered
}

func TestRHELBonded(t *testing.T) {
	assert := assert.New(t)

	rendered := render(t, metatest.WithDistro("rhel", "8"))

	assert.Equal([]string{
		"etc/hostname",
		"etc/hosts",
		"etc/modprobe.d/bonding.conf",
		"etc/resolv.conf",
		"etc/sysconfig/network",
		"etc/sysconfig/network-scripts/ifcfg-bond0",
		"etc/sysconfig/network-scripts/ifcfg-bond0:0",
		"etc/sysconfig/network-scripts/route-bond0",
	}, rendered.Paths())

	assert.Equal(`NETWORKING=yes
HOSTNAME=metatest-host
GATEWAY=147.75.78.2
GATEWAYDEV=bond0
NOZEROCONF=yes
`, rendered["etc/sysconfig/network"].Content)

	assert.Equal(`alias bond0 bonding
options bond0 mode=4 miimon=100 downdelay=200 updelay=200 xmit_hash_policy=layer3+4 lacp_rate=1
`, rendered["etc/modprobe.d/bonding.conf"].Content)

	assert.Equal(`DEVICE=bond0
NAME=bond0
IPADDR=147.75.78.3
NETMASK=255.255.255.254
GATEWAY=147.75.78.2
BOOTPROTO=none
ONBOOT=yes
USERCTL=no
TYPE=Bond
BONDING_OPTS="mode=4 miimon=100 downdelay=200 updelay=200"

IPV6INIT=yes
IPV6ADDR=2604:1380:1:9d00::1/127
IPV6_DEFAULTGW=2604:1380:1:9d00::
DNS1=147.75.207.207
DNS2=147.75.207.208
`, rendered["etc/sysconfig/network-scripts/ifcfg-bond0"].Content)

	assert.Equal(`DEVICE=bond0:0
NAME=bond0:0
IPADDR=10.80.0.3
NETMASK=255.255.255.254
GATEWAY=10.80.0.2
BOOTPROTO=none
ONBOOT=yes
USERCTL=no
DNS1=147.75.207.207
DNS2=147.75.207.208
`, rendered["etc/sysconfig/network-scripts/ifcfg-bond0:0"].Content)

	assert.Equal("10.0.0.0/8 via 10.80.0.2 dev bond0:0\n",
		rendered["etc/sysconfig/network-scripts/route-bond0"].Content)
}

func TestRHELBondedPrivateOnly(t *testing.T) {
	assert := assert.New(t)

	rendered := render(t,
		metatest.WithDistro("rhel", "8"),
		metatest.WithoutPublicAddresses(),
	)

	// The private address sits on bond0 directly, so no alias and no route
	// file exist.
	assert.NotContains(rendered, "etc/sysconfig/network-scripts/ifcfg-bond0:0")
	assert.NotContains(rendered, "etc/sysconfig/network-scripts/route-bond0")

	assert.Equal(`DEVICE=bond0
NAME=bond0
IPADDR=10.80.0.3
NETMASK=255.255.255.254
GATEWAY=10.80.0.2
BOOTPROTO=none
ONBOOT=yes
USERCTL=no
TYPE=Bond
BONDING_OPTS="mode=4 miimon=100 downdelay=200 updelay=200"

DNS1=147.75.207.207
DNS2=147.75.207.208
`, rendered["etc/sysconfig/network-scripts/ifcfg-bond0"].Content)

	assert.Equal(`NETWORKING=yes
HOSTNAME=metatest-host
GATEWAY=10.80.0.2
GATEWAYDEV=bond0
NOZEROCONF=yes
`, rendered["etc/sysconfig/network"].Content)
}

func TestFedoraIndividual(t *testing.T) {
	assert := assert.New(t)

	rendered := render(t,
		metatest.WithDistro("fedora", "31"),
		metatest.WithLinkAggregation("individual"),
	)

	assert.NotContains(rendered, "etc/modprobe.d/bonding.conf")
	assert.NotContains(rendered, "etc/sysconfig/network-scripts/ifcfg-bond0")

	assert.Equal(`DEVICE=enp0
NAME=enp0
IPADDR=147.75.78.3
NETMASK=255.255.255.254
GATEWAY=147.75.78.2
BOOTPROTO=none
ONBOOT=yes
USERCTL=no

IPV6INIT=yes
IPV6ADDR=2604:1380:1:9d00::1/127
IPV6_DEFAULTGW=2604:1380:1:9d00::
DNS1=147.75.207.207
DNS2=147.75.207.208
`, rendered["etc/sysconfig/network-scripts/ifcfg-enp0"].Content)

	assert.Equal(`DEVICE=enp0:0
NAME=enp0:0
IPADDR=10.80.0.3
NETMASK=255.255.255.254
GATEWAY=10.80.0.2
BOOTPROTO=none
ONBOOT=yes
USERCTL=no
DNS1=147.75.207.207
DNS2=147.75.207.208
`, rendered["etc/sysconfig/network-scripts/ifcfg-enp0:0"].Content)

	assert.Equal("10.0.0.0/8 via 10.80.0.2 dev enp0:0\n",
		rendered["etc/sysconfig/network-scripts/route-enp0"].Content)

	// GATEWAYDEV follows the topology.
	assert.Contains(rendered["etc/sysconfig/network"].Content, "GATEWAYDEV=enp0\n")
}

func TestRHELHostsAndResolvers(t *testing.T) {
	assert := assert.New(t)

	rendered := render(t, metatest.WithDistro("centos", "7"))

	assert.Equal(`127.0.0.1   localhost localhost.localdomain localhost4 localhost4.localdomain4
::1         localhost localhost.localdomain localhost6 localhost6.localdomain6
`, rendered["etc/hosts"].Content)

	assert.Equal("nameserver 147.75.207.207\nnameserver 147.75.207.208\n", rendered["etc/resolv.conf"].Content)
	assert.Equal("metatest-host\n", rendered["etc/hostname"].Content)
}
