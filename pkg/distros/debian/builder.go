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

// Package debian generates ifupdown-style network configuration for Debian
// and Ubuntu systems.
package debian

import (
	"strconv"
	"strings"

	"github.com/mmlb/packethost-packet-networking/pkg/build"
	"github.com/mmlb/packethost-packet-networking/pkg/metadata"
)

// Distros are the distro names claimed by this builder.
var Distros = []string{"debian", "ubuntu"}

type Builder struct{}

func Factory() build.DistroBuilder {
	return Builder{}
}

func (Builder) NetworkBuilders() []build.NetworkBuilder {
	return []build.NetworkBuilder{BondedNetwork{}, IndividualNetwork{}}
}

func (Builder) BuildTasks(env *build.Env) (build.TaskSet, error) {
	tasks := build.TaskSet{
		"etc/hostname": {Template: hostnameTemplate},
		"etc/hosts":    {Template: hostsTemplate},
		"etc/udev/rules.d/70-persistent-net.rules": {Template: udevRulesTemplate},
	}

	if usesSystemdResolved(env.Metadata.OperatingSystem) {
		tasks["etc/systemd/resolved.conf"] = &build.Task{Template: resolvedConfTemplate}
	} else {
		tasks["etc/resolv.conf"] = &build.Task{Template: resolvConfTemplate}
	}

	return tasks, nil
}

// Ubuntu 20.04 and later hand /etc/resolv.conf to systemd-resolved, so the
// resolver list goes into resolved.conf instead.
func usesSystemdResolved(os metadata.OperatingSystem) bool {
	if !strings.EqualFold(os.Distro, "ubuntu") {
		return false
	}

	major, _, _ := strings.Cut(os.Version, ".")

	v, err := strconv.Atoi(major)
	if err != nil {
		return false
	}

	return v >= 20
}
