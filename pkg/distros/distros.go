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

// Package distros wires every distro builder into a registry. Registration
// is an explicit call at process startup, never an import side effect.
package distros

import (
	"github.com/mmlb/packethost-packet-networking/pkg/build"
	"github.com/mmlb/packethost-packet-networking/pkg/distros/alpine"
	"github.com/mmlb/packethost-packet-networking/pkg/distros/debian"
	"github.com/mmlb/packethost-packet-networking/pkg/distros/redhat"
	"github.com/mmlb/packethost-packet-networking/pkg/distros/suse"
)

// Register claims every supported distro name in the given registry.
func Register(r *build.Registry) error {
	if err := r.Register(alpine.Factory, alpine.Distros...); err != nil {
		return err
	}

	if err := r.Register(debian.Factory, debian.Distros...); err != nil {
		return err
	}

	if err := r.Register(redhat.Factory, redhat.Distros...); err != nil {
		return err
	}

	return r.Register(suse.Factory, suse.Distros...)
}
