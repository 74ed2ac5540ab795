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
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrNoMetadata is returned when Initialize runs before a metadata
	// document has been set.
	ErrNoMetadata = errors.New("metadata must be loaded before calling initialize")

	// ErrNotInitialized is returned when Run is called before Initialize.
	ErrNotInitialized = errors.New("builder must be initialized before calling run")
)

// LookupError reports that no distro builder claimed the distro and no
// catch-all was registered.
type LookupError struct {
	Distro string
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("no builders found for distro %q", e.Distro)
}

// UndefinedError reports a template that referenced an unbound variable.
// The task path and full template body are carried so the failing template
// can be reproduced from the error alone.
type UndefinedError struct {
	Path     string
	Template string
	Err      error
}

func (e *UndefinedError) Error() string {
	return fmt.Sprintf("undefined variable while rendering task %q: %v", e.Path, e.Err)
}

func (e *UndefinedError) Unwrap() error {
	return e.Err
}
