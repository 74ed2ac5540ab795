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

package network

import (
	"fmt"
	"strings"

	"github.com/go-logr/logr"

	"github.com/mmlb/packethost-packet-networking/pkg/metadata"
)

// PhysicalInterface is a network device as discovered on the host.
type PhysicalInterface struct {
	Name   string
	MAC    string
	Driver string
	BusID  string
}

// Interface is a metadata interface merged with the physical device it was
// matched to. Name and device attributes come from the physical side, the
// bond label from the metadata side.
type Interface struct {
	Name   string
	MAC    string
	Bond   string
	Driver string
	BusID  string
}

// ReconciliationError reports that no metadata interface matched any
// physical interface. Both lists ride along for operator diagnostics.
type ReconciliationError struct {
	Metadata []metadata.Interface
	Physical []PhysicalInterface
}

func (e *ReconciliationError) Error() string {
	return fmt.Sprintf("no interfaces matched ones provided from metadata (metadata: %d, physical: %d)",
		len(e.Metadata), len(e.Physical))
}

// Reconcile matches metadata interfaces to physical interfaces by MAC,
// case-insensitively. The result preserves metadata order so that templates
// can rely on stable index-based references. Metadata interfaces without a
// physical match are skipped; zero matches overall is fatal.
func Reconcile(log logr.Logger, meta []metadata.Interface, phys []PhysicalInterface) ([]Interface, error) {
	matched := make([]Interface, 0, len(meta))

	for _, m := range meta {
		found := false

		for _, p := range phys {
			if !strings.EqualFold(m.MAC, p.MAC) {
				continue
			}

			matched = append(matched, Interface{
				Name:   p.Name,
				MAC:    strings.ToLower(p.MAC),
				Bond:   m.Bond,
				Driver: p.Driver,
				BusID:  p.BusID,
			})
			found = true

			break
		}

		if !found {
			log.Info("metadata interface has no physical match", "name", m.Name, "mac", m.MAC)
		}
	}

	if len(matched) == 0 {
		log.V(1).Info("interface reconciliation failed", "metadata", meta, "physical", phys)

		return nil, &ReconciliationError{Metadata: meta, Physical: phys}
	}

	return matched, nil
}

// Bonds groups reconciled interfaces by bond label, preserving encounter
// order both across labels and within each group. Interfaces without a
// bond label are left out.
func Bonds(ifaces []Interface) (map[string][]Interface, []string) {
	bonds := map[string][]Interface{}
	labels := []string{}

	for _, iface := range ifaces {
		if iface.Bond == "" {
			continue
		}

		if _, ok := bonds[iface.Bond]; !ok {
			labels = append(labels, iface.Bond)
		}

		bonds[iface.Bond] = append(bonds[iface.Bond], iface)
	}

	return bonds, labels
}
