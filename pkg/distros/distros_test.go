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

package distros_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmlb/packethost-packet-networking/pkg/build"
	"github.com/mmlb/packethost-packet-networking/pkg/distros"
)

func TestRegister(t *testing.T) {
	assert := assert.New(t)

	registry := build.NewRegistry()
	require.NoError(t, distros.Register(registry))

	known := []string{
		"alpine",
		"debian",
		"ubuntu",
		"Ubuntu",
		"rhel",
		"centos",
		"fedora",
		"redhatenterpriseserver",
		"scientificcernslc",
		"opensuse",
		"sles",
	}

	for _, distro := range known {
		factory, err := registry.Lookup(distro)
		require.NoError(t, err, distro)
		assert.NotNil(factory(), distro)
	}

	_, err := registry.Lookup("plan9")
	lookupErr := &build.LookupError{}
	require.ErrorAs(t, err, &lookupErr)
}

func TestRegisterTwice(t *testing.T) {
	assert := assert.New(t)

	registry := build.NewRegistry()
	require.NoError(t, distros.Register(registry))
	assert.Error(distros.Register(registry))
}
