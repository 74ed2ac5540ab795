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
	"path/filepath"

	securejoin "github.com/cyphar/filepath-securejoin"
	"github.com/go-logr/logr"
	"github.com/pkg/errors"
)

// Materialize writes a rendered task set into the target root filesystem.
// Existing symlink chains under the root are followed to the real
// destination, without ever escaping the root. Writes are not atomic across
// the set; reruns converge state. I/O errors propagate untouched so the
// provisioning orchestrator owns the retry policy.
func Materialize(log logr.Logger, rootfs string, rendered RenderedSet) error {
	for _, relpath := range rendered.Paths() {
		content := rendered[relpath]

		log.V(1).Info("processing task", "task", relpath)

		if content == nil {
			// Remove the link itself, never the link target.
			target := filepath.Join(rootfs, relpath)
			if _, err := os.Lstat(target); err != nil {
				log.V(1).Info("skipped removing, path doesn't exist", "path", target)

				continue
			}

			log.Info("removing", "path", target)

			if err := os.Remove(target); err != nil {
				return errors.Wrapf(err, "removing %q", target)
			}

			continue
		}

		target, err := securejoin.SecureJoin(rootfs, relpath)
		if err != nil {
			return errors.Wrapf(err, "resolving %q under %q", relpath, rootfs)
		}

		if dir := filepath.Dir(target); dir != "" {
			if _, err := os.Lstat(dir); err != nil {
				log.V(1).Info("making directory", "path", dir)

				if err := os.MkdirAll(dir, 0o755); err != nil {
					return errors.Wrapf(err, "creating %q", dir)
				}
			}
		}

		flags := os.O_WRONLY | os.O_CREATE
		if content.FileMode == "a" {
			flags |= os.O_APPEND
		} else {
			flags |= os.O_TRUNC
		}

		log.V(1).Info("writing content", "path", target)

		f, err := os.OpenFile(target, flags, 0o644)
		if err != nil {
			return errors.Wrapf(err, "opening %q", target)
		}

		if _, err := f.WriteString(content.Content); err != nil {
			f.Close()

			return errors.Wrapf(err, "writing %q", target)
		}

		if err := f.Close(); err != nil {
			return errors.Wrapf(err, "closing %q", target)
		}

		if content.Mode != 0 {
			if err := os.Chmod(target, content.Mode); err != nil {
				return errors.Wrapf(err, "setting mode on %q", target)
			}
		}
	}

	return nil
}
