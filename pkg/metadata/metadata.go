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

// Package metadata decodes the provider-supplied metadata document that
// describes the desired network configuration for a host.
package metadata

import (
	"bytes"
	"encoding/json"
	"io"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"

	"gopkg.in/yaml.v3"
)

// Document is the provider metadata for a single host. Unknown keys are
// tolerated; the raw decoded form is kept around for diagnostics.
type Document struct {
	Hostname        string          `json:"hostname"         yaml:"hostname"         validate:"required"`
	ID              string          `json:"id"               yaml:"id"`
	Plan            string          `json:"plan"             yaml:"plan"`
	OperatingSystem OperatingSystem `json:"operating_system" yaml:"operating_system"`
	Network         Network         `json:"network"          yaml:"network"`
	PrivateSubnets  []string        `json:"private_subnets"  yaml:"private_subnets"  validate:"omitempty,dive,cidr"`

	raw map[string]any
}

type OperatingSystem struct {
	Distro  string `json:"distro"  yaml:"distro"  validate:"required"`
	Version string `json:"version" yaml:"version"`
}

type Network struct {
	Bonding    Bonding     `json:"bonding"    yaml:"bonding"`
	Interfaces []Interface `json:"interfaces" yaml:"interfaces" validate:"dive"`
	Addresses  []Address   `json:"addresses"  yaml:"addresses"  validate:"dive"`
}

// Bonding is the host-wide bonding policy. LinkAggregation selects the
// network topology ("bonded" or "individual") and defaults to "bonded".
type Bonding struct {
	Mode            int    `json:"mode"             yaml:"mode"`
	LinkAggregation string `json:"link_aggregation" yaml:"link_aggregation" validate:"omitempty,oneof=bonded individual"`
}

// Interface is a declarative interface record. Name is the metadata-side
// logical label, not necessarily the name the kernel assigned.
type Interface struct {
	Name string `json:"name" yaml:"name"`
	MAC  string `json:"mac"  yaml:"mac"  validate:"required,mac"`
	Bond string `json:"bond" yaml:"bond"`
}

// Address carries netmask/network pre-computed by the provider; nothing here
// is ever recomputed locally.
type Address struct {
	Address       string `json:"address"        yaml:"address"        validate:"required,ip"`
	AddressFamily int    `json:"address_family" yaml:"address_family" validate:"oneof=4 6"`
	CIDR          int    `json:"cidr"           yaml:"cidr"`
	Netmask       string `json:"netmask"        yaml:"netmask"`
	Network       string `json:"network"        yaml:"network"`
	Gateway       string `json:"gateway"        yaml:"gateway"`
	Management    bool   `json:"management"     yaml:"management"`
	Public        bool   `json:"public"         yaml:"public"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Parse decodes and validates a metadata document. The provider API speaks
// JSON; YAML is accepted for hand-written fixtures.
func Parse(data []byte) (*Document, error) {
	doc := &Document{}
	raw := map[string]any{}

	if looksLikeJSON(data) {
		if err := json.Unmarshal(data, doc); err != nil {
			return nil, errors.Wrap(err, "decoding metadata")
		}

		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, errors.Wrap(err, "decoding metadata")
		}
	} else {
		if err := yaml.Unmarshal(data, doc); err != nil {
			return nil, errors.Wrap(err, "decoding metadata")
		}

		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, errors.Wrap(err, "decoding metadata")
		}
	}

	doc.raw = raw

	if err := validate.Struct(doc); err != nil {
		return nil, errors.Wrap(err, "validating metadata")
	}

	return doc, nil
}

// ParseFile reads a metadata document from path, or from r when path is "-".
func ParseFile(path string, r io.Reader) (*Document, error) {
	var (
		data []byte
		err  error
	)

	if path == "-" {
		data, err = io.ReadAll(r)
	} else {
		data, err = os.ReadFile(path)
	}

	if err != nil {
		return nil, errors.Wrap(err, "reading metadata")
	}

	return Parse(data)
}

// Raw returns the document as decoded, unknown keys included.
func (d *Document) Raw() map[string]any {
	return d.raw
}

// Dump renders the raw document as indented JSON for error diagnostics.
func (d *Document) Dump() string {
	out, err := json.MarshalIndent(d.raw, "", "  ")
	if err != nil {
		return ""
	}

	return string(out)
}

func looksLikeJSON(data []byte) bool {
	trimmed := bytes.TrimLeft(data, " \t\r\n")

	return len(trimmed) > 0 && (trimmed[0] == '{' || trimmed[0] == '[')
}
