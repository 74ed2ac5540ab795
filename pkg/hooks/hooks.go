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

// Package hooks dispatches named lifecycle hooks. The core only triggers
// hooks; loading and registering them belongs to the embedding program.
package hooks

import (
	"context"

	"go.uber.org/multierr"
)

// Hook names triggered by the build orchestrator.
const (
	Initialized = "initialized"
	Generated   = "generated"
)

// Func is a single hook callable. The payload is the triggering builder.
type Func func(ctx context.Context, payload any) error

// Registry maps hook names to callables. Not safe for concurrent use;
// provisioning runs are single-threaded.
type Registry struct {
	hooks map[string][]Func
}

func NewRegistry() *Registry {
	return &Registry{hooks: map[string][]Func{}}
}

// Register appends fn to the named hook.
func (r *Registry) Register(name string, fn Func) {
	r.hooks[name] = append(r.hooks[name], fn)
}

// Trigger invokes every callable registered under name, in registration
// order. All callables run even when earlier ones fail; errors are
// aggregated. Triggering an unregistered name is a no-op.
func (r *Registry) Trigger(ctx context.Context, name string, payload any) error {
	var err error

	for _, fn := range r.hooks[name] {
		err = multierr.Append(err, fn(ctx, payload))
	}

	return err
}
