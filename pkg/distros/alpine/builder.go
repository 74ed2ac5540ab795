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

// Package alpine generates busybox-ifupdown network configuration for
// Alpine Linux.
package alpine

import (
	"github.com/mmlb/packethost-packet-networking/pkg/build"
)

var Distros = []string{"alpine"}

type Builder struct{}

func Factory() build.DistroBuilder {
	return Builder{}
}

func (Builder) NetworkBuilders() []build.NetworkBuilder {
	return []build.NetworkBuilder{BondedNetwork{}, IndividualNetwork{}}
}

func (Builder) BuildTasks(env *build.Env) (build.TaskSet, error) {
	return build.TaskSet{
		"etc/hostname":    {Template: hostnameTemplate},
		"etc/hosts":       {Template: hostsTemplate},
		"etc/resolv.conf": {Template: resolvConfTemplate},
	}, nil
}

// BondedNetwork writes /etc/network/interfaces for a bonded host and makes
// sure the bonding module loads at boot.
type BondedNetwork struct{}

func (BondedNetwork) Name() string {
	return "bonded"
}

func (BondedNetwork) Build(env *build.Env) (build.TaskSet, error) {
	if env.Network.Bonding.LinkAggregation != "bonded" {
		return nil, nil
	}

	return build.TaskSet{
		"etc/network/interfaces": {Template: bondedInterfacesTemplate},
		"etc/modules":            {Template: etcModulesTemplate, FileMode: "a"},
	}, nil
}

type IndividualNetwork struct{}

func (IndividualNetwork) Name() string {
	return "individual"
}

func (IndividualNetwork) Build(env *build.Env) (build.TaskSet, error) {
	if env.Network.Bonding.LinkAggregation != "individual" {
		return nil, nil
	}

	return build.TaskSet{
		"etc/network/interfaces": {Template: individualInterfacesTemplate},
	}, nil
}
