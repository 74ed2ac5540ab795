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

package debian

import (
	"github.com/mmlb/packethost-packet-networking/pkg/build"
)

// BondedNetwork writes /etc/network/interfaces for hosts whose interfaces
// are aggregated into bond0, plus the module load needed at boot.
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

// IndividualNetwork writes /etc/network/interfaces for hosts configured on
// the first interface alone.
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
