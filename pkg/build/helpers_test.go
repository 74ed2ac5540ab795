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

	"github.com/go-logr/logr"
	"github.com/stretchr/testify/require"

	"github.com/mmlb/packethost-packet-networking/pkg/build"
	"github.com/mmlb/packethost-packet-networking/pkg/metadata/metatest"
	"github.com/mmlb/packethost-packet-networking/pkg/network"
)

func newEnv(t *testing.T, opts ...metatest.Option) *build.Env {
	t.Helper()

	doc := metatest.Document(opts...)

	model, err := network.NewModel(logr.Discard(), doc, metatest.PhysicalInterfaces())
	require.NoError(t, err)

	return &build.Env{
		Metadata: doc,
		Network:  model,
		Log:      logr.Discard(),
	}
}

type stubNetwork struct {
	name  string
	tasks build.TaskSet
	err   error
}

func (s stubNetwork) Name() string {
	return s.name
}

func (s stubNetwork) Build(*build.Env) (build.TaskSet, error) {
	return s.tasks, s.err
}

type stubDistro struct {
	tasks build.TaskSet
	nets  []build.NetworkBuilder
}

func (s stubDistro) BuildTasks(*build.Env) (build.TaskSet, error) {
	return s.tasks, nil
}

func (s stubDistro) NetworkBuilders() []build.NetworkBuilder {
	return s.nets
}
