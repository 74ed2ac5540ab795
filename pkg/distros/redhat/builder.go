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

// Package redhat generates sysconfig-style network configuration for the
// Red Hat family.
package redhat

import (
	"github.com/mmlb/packethost-packet-networking/pkg/build"
)

var Distros = []string{
	"redhatenterpriseserver",
	"redhatenterprise",
	"rhel",
	"centos",
	"scientificcernslc",
	"fedora",
}

type Builder struct{}

func Factory() build.DistroBuilder {
	return Builder{}
}

func (Builder) NetworkBuilders() []build.NetworkBuilder {
	return []build.NetworkBuilder{BondedNetwork{}, IndividualNetwork{}}
}

func (Builder) BuildTasks(env *build.Env) (build.TaskSet, error) {
	// GATEWAYDEV names the device carrying the default route, which is
	// topology-dependent.
	gatewaydev := "bond0"
	if env.Network.Bonding.LinkAggregation == "individual" {
		gatewaydev = env.Network.Interfaces[0].Name
	}

	return build.TaskSet{
		"etc/hostname":    {Template: hostnameTemplate},
		"etc/hosts":       {Template: hostsTemplate},
		"etc/resolv.conf": {Template: resolvConfTemplate},
		"etc/sysconfig/network": {
			Template: sysconfigNetworkTemplate,
			Context:  map[string]any{"gatewaydev": gatewaydev},
		},
	}, nil
}
