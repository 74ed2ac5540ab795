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

// Package sysfs discovers physical network interfaces from /sys/class/net.
package sysfs

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"

	"github.com/mmlb/packethost-packet-networking/pkg/network"
)

const classNet = "/sys/class/net"

// Discover lists the host's physical network interfaces in sysfs order.
// Devices without a backing bus device (loopback, bridges, bonds, veth)
// are skipped.
func Discover() ([]network.PhysicalInterface, error) {
	return DiscoverAt(classNet)
}

// DiscoverAt is Discover against an alternate sysfs root.
func DiscoverAt(root string) ([]network.PhysicalInterface, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s", root)
	}

	ifaces := make([]network.PhysicalInterface, 0, len(entries))

	for _, entry := range entries {
		name := entry.Name()
		devPath := filepath.Join(root, name, "device")

		if _, err := os.Stat(devPath); err != nil {
			// Virtual device, nothing to reconcile against.
			continue
		}

		mac, err := readLine(filepath.Join(root, name, "address"))
		if err != nil || mac == "" {
			continue
		}

		iface := network.PhysicalInterface{
			Name: name,
			MAC:  strings.ToLower(mac),
		}

		if uevent, err := os.ReadFile(filepath.Join(devPath, "uevent")); err == nil {
			for _, line := range strings.Split(string(uevent), "\n") {
				if v, ok := strings.CutPrefix(line, "DRIVER="); ok {
					iface.Driver = v
				}

				if v, ok := strings.CutPrefix(line, "PCI_SLOT_NAME="); ok {
					iface.BusID = v
				}
			}
		}

		ifaces = append(ifaces, iface)
	}

	return ifaces, nil
}

func readLine(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(string(data)), nil
}
