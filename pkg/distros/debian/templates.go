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

package debian

const bondedInterfacesTemplate = `auto lo
iface lo inet loopback
{{ range $i, $iface := .interfaces }}
auto {{ $iface.name }}
iface {{ $iface.name }} inet manual
{{- if $i }}
    pre-up sleep 4
{{- end }}
    bond-master bond0
{{ end }}
auto bond0
iface bond0 inet static
{{- if .ip4pub }}
    address {{ .ip4pub.address }}
    netmask {{ .ip4pub.netmask }}
    gateway {{ .ip4pub.gateway }}
{{- else }}
    address {{ .ip4priv.address }}
    netmask {{ .ip4priv.netmask }}
    gateway {{ .ip4priv.gateway }}
{{- end }}
    dns-nameservers{{ range .resolvers }} {{ . }}{{ end }}

    bond-downdelay 200
    bond-miimon 100
    bond-mode {{ .net.bonding.mode }}
    bond-updelay 200
    bond-xmit_hash_policy layer3+4
    bond-lacp-rate 1
    bond-slaves{{ range .interfaces }} {{ .name }}{{ end }}
{{- if .ip6pub }}

iface bond0 inet6 static
    address {{ .ip6pub.address }}
    netmask {{ .ip6pub.cidr }}
    gateway {{ .ip6pub.gateway }}
{{- end }}
{{- if and .ip4pub .ip4priv }}

auto bond0:0
iface bond0:0 inet static
    address {{ .ip4priv.address }}
    netmask {{ .ip4priv.netmask }}
{{- range .private_subnets }}
    post-up route add -net {{ . }} gw {{ $.ip4priv.gateway }}
    post-down route del -net {{ . }} gw {{ $.ip4priv.gateway }}
{{- end }}
{{- end }}
`

const individualInterfacesTemplate = `auto lo
iface lo inet loopback

auto {{ .iface0.name }}
iface {{ .iface0.name }} inet static
{{- if .ip4pub }}
    address {{ .ip4pub.address }}
    netmask {{ .ip4pub.netmask }}
    gateway {{ .ip4pub.gateway }}
{{- else }}
    address {{ .ip4priv.address }}
    netmask {{ .ip4priv.netmask }}
    gateway {{ .ip4priv.gateway }}
{{- end }}
    dns-nameservers{{ range .resolvers }} {{ . }}{{ end }}
{{- if .ip6pub }}

iface {{ .iface0.name }} inet6 static
    address {{ .ip6pub.address }}
    netmask {{ .ip6pub.cidr }}
    gateway {{ .ip6pub.gateway }}
{{- end }}
{{- if and .ip4pub .ip4priv }}

auto {{ .iface0.name }}:0
iface {{ .iface0.name }}:0 inet static
    address {{ .ip4priv.address }}
    netmask {{ .ip4priv.netmask }}
{{- range .private_subnets }}
    post-up route add -net {{ . }} gw {{ $.ip4priv.gateway }}
    post-down route del -net {{ . }} gw {{ $.ip4priv.gateway }}
{{- end }}
{{- end }}
`

const etcModulesTemplate = `bonding
`

const resolvConfTemplate = `{{ range .resolvers }}nameserver {{ . }}
{{ end }}`

const resolvedConfTemplate = `[Resolve]
DNS={{ join " " .resolvers }}
`

const hostnameTemplate = `{{ .hostname }}
`

const hostsTemplate = `127.0.0.1	localhost	{{ .hostname }}

# The following lines are desirable for IPv6 capable hosts
::1	localhost ip6-localhost ip6-loopback
ff02::1	ip6-allnodes
ff02::2	ip6-allrouters
`

const udevRulesTemplate = `{{ generated_header }}
#
# You can modify it, as long as you keep each rule on a single
# line, and change only the value of the NAME= key.
{{ range .interfaces }}
# PCI device (custom name provided by external tool to mimic Predictable Network Interface Names)
SUBSYSTEM=="net", ACTION=="add", DRIVERS=="?*", ATTR{address}=="{{ .mac }}", ATTR{dev_id}=="0x0", ATTR{type}=="1", NAME="{{ .name }}"
{{ end }}`
