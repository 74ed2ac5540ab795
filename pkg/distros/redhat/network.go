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

package redhat

import (
	"github.com/mmlb/packethost-packet-networking/pkg/build"
)

// BondedNetwork writes the bond0 ifcfg files plus the bonding module
// options. When a public address is present the private management address
// becomes a bond0:0 alias with routes for the private subnets.
type BondedNetwork struct{}

func (BondedNetwork) Name() string {
	return "bonded"
}

func (BondedNetwork) Build(env *build.Env) (build.TaskSet, error) {
	if env.Network.Bonding.LinkAggregation != "bonded" {
		return nil, nil
	}

	tasks := build.TaskSet{
		"etc/modprobe.d/bonding.conf":               {Template: modprobeBondingTemplate},
		"etc/sysconfig/network-scripts/ifcfg-bond0": {Template: bondConfigTemplate},
	}

	addAliasTasks(env, tasks, "bond0")

	return tasks, nil
}

// IndividualNetwork writes the ifcfg files for the first interface alone.
type IndividualNetwork struct{}

func (IndividualNetwork) Name() string {
	return "individual"
}

func (IndividualNetwork) Build(env *build.Env) (build.TaskSet, error) {
	if env.Network.Bonding.LinkAggregation != "individual" {
		return nil, nil
	}

	device := env.Network.Interfaces[0].Name

	tasks := build.TaskSet{
		"etc/sysconfig/network-scripts/ifcfg-" + device: {Template: ifaceConfigTemplate},
	}

	addAliasTasks(env, tasks, device)

	return tasks, nil
}

// addAliasTasks adds the :0 alias and private route files when the host
// carries both a public and a private management address. Private-only
// hosts configure the private address on the device itself, so no alias
// exists to hang routes off.
func addAliasTasks(env *build.Env, tasks build.TaskSet, device string) {
	if env.IPv4Pub().First() == nil || env.IPv4Priv().First() == nil {
		return
	}

	alias := device + ":0"

	tasks["etc/sysconfig/network-scripts/ifcfg-"+alias] = &build.Task{
		Template: aliasConfigTemplate,
		Context:  map[string]any{"device": alias},
	}

	tasks["etc/sysconfig/network-scripts/route-"+device] = &build.Task{
		Template: routeTemplate,
		Context:  map[string]any{"device": alias},
	}
}
