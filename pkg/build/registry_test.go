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

package build_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmlb/packethost-packet-networking/pkg/build"
)

func TestRegistryLookup(t *testing.T) {
	assert := assert.New(t)

	registry := build.NewRegistry()

	debianLike := stubDistro{tasks: build.TaskSet{"etc/debian": {Template: "debian"}}}
	fallback := stubDistro{tasks: build.TaskSet{"etc/fallback": {Template: "fallback"}}}

	require.NoError(t, registry.Register(func() build.DistroBuilder { return debianLike }, "ubuntu", "debian"))
	require.NoError(t, registry.RegisterCatchAll(func() build.DistroBuilder { return fallback }))

	tests := []struct {
		name   string
		distro string
		want   build.DistroBuilder
	}{
		{"ExactMatch", "ubuntu", debianLike},
		{"CaseInsensitive", "Ubuntu", debianLike},
		{"CatchAll", "fedora", fallback},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			factory, err := registry.Lookup(tt.distro)
			require.NoError(t, err)
			assert.Equal(tt.want, factory())
		})
	}
}

func TestRegistryLookupMiss(t *testing.T) {
	assert := assert.New(t)

	registry := build.NewRegistry()
	require.NoError(t, registry.Register(func() build.DistroBuilder { return stubDistro{} }, "ubuntu"))

	_, err := registry.Lookup("fedora")
	require.Error(t, err)

	lookupErr := &build.LookupError{}
	require.ErrorAs(t, err, &lookupErr)
	assert.Equal("fedora", lookupErr.Distro)
}

func TestRegistryDuplicates(t *testing.T) {
	assert := assert.New(t)

	registry := build.NewRegistry()
	factory := func() build.DistroBuilder { return stubDistro{} }

	require.NoError(t, registry.Register(factory, "ubuntu"))
	assert.Error(registry.Register(factory, "Ubuntu"))
	assert.Error(registry.Register(factory))

	require.NoError(t, registry.RegisterCatchAll(factory))
	assert.Error(registry.RegisterCatchAll(factory))
}
