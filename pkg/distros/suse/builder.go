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

// Package suse generates wicked-style sysconfig network configuration for
// the SUSE family.
package suse

import (
	"github.com/mmlb/packethost-packet-networking/pkg/build"
)

var Distros = []string{"opensuse", "opensuseproject", "suselinux", "sles"}

type Builder struct{}

func Factory() build.DistroBuilder {
	return Builder{}
}

func (Builder) NetworkBuilders() []build.NetworkBuilder {
	return []build.NetworkBuilder{BondedNetwork{}, IndividualNetwork{}}
}

func (Builder) BuildTasks(env *build.Env) (build.TaskSet, error) {
	return build.TaskSet{
		"etc/HOSTNAME":    {Template: hostnameTemplate},
		"etc/hosts":       {Template: hostsTemplate},
		"etc/resolv.conf": {Template: resolvConfTemplate},
	}, nil
}

// BondedNetwork writes the bond0 ifcfg file, one hotplug stub per slave,
// and the routes file pointing the default route at bond0.
type BondedNetwork struct{}

func (BondedNetwork) Name() string {
	return "bonded"
}

func (BondedNetwork) Build(env *build.Env) (build.TaskSet, error) {
	if env.Network.Bonding.LinkAggregation != "bonded" {
		return nil, nil
	}

	tasks := build.TaskSet{
		"etc/sysconfig/network/ifcfg-bond0": {Template: bondConfigTemplate},
		"etc/sysconfig/network/routes": {
			Template: routesTemplate,
			Context:  map[string]any{"device": "bond0"},
		},
	}

	for _, iface := range env.Network.Interfaces {
		tasks["etc/sysconfig/network/ifcfg-"+iface.Name] = &build.Task{
			Template: slaveConfigTemplate,
		}
	}

	return tasks, nil
}

type IndividualNetwork struct{}

func (IndividualNetwork) Name() string {
	return "individual"
}

func (IndividualNetwork) Build(env *build.Env) (build.TaskSet, error) {
	if env.Network.Bonding.LinkAggregation != "individual" {
		return nil, nil
	}

	device := env.Network.Interfaces[0].Name

	return build.TaskSet{
		"etc/sysconfig/network/ifcfg-" + device: {Template: ifaceConfigTemplate},
		"etc/sysconfig/network/routes": {
			Template: routesTemplate,
			Context:  map[string]any{"device": device},
		},
	}, nil
}
