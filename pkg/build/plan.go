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
	"os"

	"github.com/pkg/errors"
)

// DistroBuilder contributes the distro-wide tasks (hostname, hosts,
// resolvers, udev rules) and names the network topology builders that
// produce the actual interface configuration.
type DistroBuilder interface {
	BuildTasks(env *Env) (TaskSet, error)
	NetworkBuilders() []NetworkBuilder
}

// NetworkBuilder contributes the tasks for one network topology. A builder
// that does not apply to the current model returns an empty set.
type NetworkBuilder interface {
	Name() string
	Build(env *Env) (TaskSet, error)
}

// Plan is the composed task hierarchy for one distro builder over one
// network model. It moves strictly through build, render, materialize.
type Plan struct {
	env    *Env
	distro DistroBuilder

	tasks    TaskSet
	netTasks []TaskSet

	built           bool
	hasNetworkTasks bool
}

func NewPlan(env *Env, distro DistroBuilder) *Plan {
	return &Plan{env: env, distro: distro}
}

// Build populates the distro builder's own tasks, then every network
// builder's, each against the same model. It reports whether any tasks
// exist anywhere in the hierarchy.
func (p *Plan) Build() (bool, error) {
	tasks, err := p.distro.BuildTasks(p.env)
	if err != nil {
		return false, err
	}

	p.tasks = tasks
	p.env.Log.V(1).Info("discovered distro tasks", "count", len(tasks))

	for _, nb := range p.distro.NetworkBuilders() {
		nbTasks, err := nb.Build(p.env)
		if err != nil {
			return false, errors.Wrapf(err, "building %s network tasks", nb.Name())
		}

		p.netTasks = append(p.netTasks, nbTasks)

		if len(nbTasks) > 0 {
			p.env.Log.V(1).Info("discovered network tasks", "builder", nb.Name(), "count", len(nbTasks))
			p.hasNetworkTasks = true
		}
	}

	p.built = true

	return len(p.AllTasks()) > 0, nil
}

// AllTasks unions the distro tasks with every network builder's tasks,
// later builders overriding same-path entries from earlier ones.
func (p *Plan) AllTasks() TaskSet {
	all := TaskSet{}
	all.Merge(p.tasks)

	for _, ts := range p.netTasks {
		all.Merge(ts)
	}

	return all
}

// Render expands every task template against the shared context. When no
// network builder contributed any tasks the whole render is withheld:
// writing hostname files while the interface configuration is missing
// would leave the host unreachable with no breadcrumb.
func (p *Plan) Render() (RenderedSet, error) {
	if !p.built {
		return nil, errors.New("plan must be built before rendering")
	}

	if !p.hasNetworkTasks {
		p.env.Log.Error(nil, "no network builder tasks discovered")

		return RenderedSet{}, nil
	}

	all := p.AllTasks()
	rendered := RenderedSet{}

	for _, path := range all.Paths() {
		task := all[path]

		p.env.Log.V(1).Info("rendering task", "task", path)

		if task == nil {
			rendered[path] = nil

			continue
		}

		body := task.Template
		if task.TemplatePath != "" {
			data, err := os.ReadFile(task.TemplatePath)
			if err != nil {
				return nil, errors.Wrapf(err, "reading template for task %q", path)
			}

			body = string(data)
		}

		ctx := p.env.Context()
		for k, v := range task.Context {
			ctx[k] = v
		}

		content, err := renderTemplate(path, Dedent(body), ctx)
		if err != nil {
			// Surface the full document and template before propagating so
			// the operator can reproduce the failure offline.
			p.env.Log.Error(err, "task render failed", "task", path, "template", body)
			p.env.Log.Info("metadata document at time of failure", "metadata", p.env.Metadata.Dump())

			return nil, err
		}

		rendered[path] = &Rendered{
			Content:  content,
			FileMode: task.FileMode,
			Mode:     task.Mode,
		}
	}

	return rendered, nil
}

// Run renders the plan and writes the result into the target root.
// The rendered set is returned either way for callers that want to log it.
func (p *Plan) Run(rootfs string) (RenderedSet, error) {
	rendered, err := p.Render()
	if err != nil {
		return nil, err
	}

	if len(rendered) == 0 {
		return rendered, nil
	}

	if err := Materialize(p.env.Log, rootfs, rendered); err != nil {
		return nil, err
	}

	return rendered, nil
}
