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
	"io/fs"
	"sort"
)

// Task produces one output file. The zero FileMode means truncate ("w");
// "a" appends. Mode, when non-zero, is applied to the written file.
// Context entries are merged over the builder context, task keys winning.
type Task struct {
	Template     string
	TemplatePath string
	Context      map[string]any
	FileMode     string
	Mode         fs.FileMode
}

// TaskSet maps an output path, relative to the target root, to the task
// that produces it. A nil task means the file must not exist.
type TaskSet map[string]*Task

// Merge copies other's entries over ts, later sets overriding earlier
// same-path entries.
func (ts TaskSet) Merge(other TaskSet) {
	for path, task := range other {
		ts[path] = task
	}
}

// Paths returns the task paths in sorted order for deterministic
// rendering and materialization.
func (ts TaskSet) Paths() []string {
	paths := make([]string, 0, len(ts))
	for path := range ts {
		paths = append(paths, path)
	}

	sort.Strings(paths)

	return paths
}

// Rendered is a task after template expansion. A nil *Rendered in a
// RenderedSet means "ensure absent".
type Rendered struct {
	Content  string
	FileMode string
	Mode     fs.FileMode
}

type RenderedSet map[string]*Rendered

func (rs RenderedSet) Paths() []string {
	paths := make([]string, 0, len(rs))
	for path := range rs {
		paths = append(paths, path)
	}

	sort.Strings(paths)

	return paths
}
