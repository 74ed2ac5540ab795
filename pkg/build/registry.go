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

package build

import (
	"strings"

	"github.com/pkg/errors"
)

// Factory constructs a fresh distro builder for one provisioning run.
type Factory func() DistroBuilder

// Registry maps distro names to builder factories. Registration is
// explicit and happens at process startup; duplicate claims are rejected
// outright so lookup never depends on registration order.
type Registry struct {
	byDistro map[string]Factory
	catchAll Factory
}

func NewRegistry() *Registry {
	return &Registry{byDistro: map[string]Factory{}}
}

// Register claims the given distro names for factory. Names match
// case-insensitively on lookup.
func (r *Registry) Register(factory Factory, distros ...string) error {
	if len(distros) == 0 {
		return errors.New("register requires at least one distro name")
	}

	for _, distro := range distros {
		name := strings.ToLower(distro)
		if _, ok := r.byDistro[name]; ok {
			return errors.Errorf("distro %q is already registered", name)
		}

		r.byDistro[name] = factory
	}

	return nil
}

// RegisterCatchAll installs the fallback used when no distro-specific
// builder matches. Only one catch-all may be registered.
func (r *Registry) RegisterCatchAll(factory Factory) error {
	if r.catchAll != nil {
		return errors.New("a catch-all builder is already registered")
	}

	r.catchAll = factory

	return nil
}

// Lookup resolves a distro name to a builder factory, falling back to the
// catch-all. A miss with no catch-all is a *LookupError.
func (r *Registry) Lookup(distro string) (Factory, error) {
	if factory, ok := r.byDistro[strings.ToLower(distro)]; ok {
		return factory, nil
	}

	if r.catchAll != nil {
		return r.catchAll, nil
	}

	return nil, &LookupError{Distro: distro}
}
