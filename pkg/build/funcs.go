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
	"bytes"
	"fmt"
	"net"
	"reflect"
	"strings"

	gocidr "github.com/apparentlymart/go-cidr/cidr"

	"gopkg.in/yaml.v3"
)

var genericMap = map[string]any{
	"default": defaultFunc,
	"empty":   empty,
	"toYaml":  toYaml,

	// String functions:
	"indent":  indent,
	"nindent": nindent,
	"quote":   quote,
	"upper":   strings.ToUpper,
	"lower":   strings.ToLower,
	"trim":    strings.TrimSpace,
	"replace": func(o, n, s string) string { return strings.ReplaceAll(s, o, n) },
	"join":    func(sep string, elems []string) string { return strings.Join(elems, sep) },

	// Network functions:
	"cidrhost":  cidrhost, // cidrhost "10.12.112.0/20" 16 -> 10.12.112.16
	"cidrslaac": slaac,    // "2001:db8:1::/64" | slaac "00:1a:2b:3c:4d:5e" -> 2001:db8:1::21a:2bff:fe3c:4d5e

	"generated_header": GeneratedHeader,
}

// GeneratedHeader is the comment banner stamped into generated files that
// operators are allowed to edit.
func GeneratedHeader() string {
	return "# This file was automatically generated by packet-networking"
}

func genericFuncMap() map[string]any {
	gfm := make(map[string]any, len(genericMap))
	for k, v := range genericMap {
		gfm[k] = v
	}

	return gfm
}

// Checks whether `given` is set, and returns default if not set.
func defaultFunc(d any, given ...any) any {
	if empty(given) || empty(given[0]) {
		return d
	}

	return given[0]
}

// empty returns true if the given value has the zero value for its type.
func empty(given any) bool {
	g := reflect.ValueOf(given)

	return !g.IsValid() || g.IsZero()
}

func strval(v any) string {
	switch v := v.(type) {
	case string:
		return v
	case []byte:
		return string(v)
	case error:
		return v.Error()
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprintf("%v", v)
	}
}

// quote returns a string representation of the given values, quoted.
func quote(str ...any) string {
	out := make([]string, 0, len(str))
	for _, s := range str {
		if s != nil {
			out = append(out, fmt.Sprintf("%q", strval(s)))
		}
	}

	return strings.Join(out, " ")
}

func indent(spaces int, v string) string {
	pad := strings.Repeat(" ", spaces)

	return pad + strings.ReplaceAll(v, "\n", "\n"+pad)
}

func nindent(spaces int, v string) string {
	return "\n" + indent(spaces, v)
}

// toYaml returns the YAML encoding of the given value.
func toYaml(v any) string {
	var output bytes.Buffer

	encoder := yaml.NewEncoder(&output)
	encoder.SetIndent(2)

	if err := encoder.Encode(v); err != nil {
		return ""
	}

	return strings.TrimSuffix(output.String(), "\n")
}

// cidrhost returns the IP address of the given host number in the given CIDR.
func cidrhost(cidr string, hostnum ...int) (string, error) {
	ip, ipnet, err := net.ParseCIDR(cidr)
	if err != nil {
		return "", err
	}

	if len(hostnum) == 0 {
		return ip.String(), nil
	}

	ip, err = gocidr.Host(ipnet, hostnum[0])
	if err != nil {
		return "", err
	}

	return ip.String(), nil
}

// slaac returns the SLAAC address for the given MAC address in the given
// IPv6 CIDR.
func slaac(mac string, cidr string) (string, error) {
	_, ipnet, err := net.ParseCIDR(cidr)
	if err != nil {
		return "", err
	}

	hw, err := net.ParseMAC(mac)
	if err != nil {
		return "", err
	}

	ones, _ := ipnet.Mask.Size()
	if ones > 112 {
		return "", fmt.Errorf("slaac generator requires a mask of /64 to /112")
	}

	eui64 := make(net.IP, net.IPv6len)
	copy(eui64, ipnet.IP.To16())

	copy(eui64[8:11], hw[0:3])
	copy(eui64[13:16], hw[3:6])
	eui64[11] = 0xFF
	eui64[12] = 0xFE
	eui64[8] ^= 0x02

	l := ones / 8
	for i := 15; i >= l; i-- {
		ipnet.IP[i] = eui64[i]
	}

	return ipnet.String(), nil
}
