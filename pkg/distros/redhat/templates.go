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

package redhat

const sysconfigNetworkTemplate = `NETWORKING=yes
HOSTNAME={{ .hostname }}
{{ if .ip4pub -}}
GATEWAY={{ .ip4pub.gateway }}
{{ else -}}
GATEWAY={{ .ip4priv.gateway }}
{{ end -}}
GATEWAYDEV={{ .gatewaydev }}
NOZEROCONF=yes
`

const modprobeBondingTemplate = `alias bond0 bonding
options bond0 mode={{ .net.bonding.mode }} miimon=100 downdelay=200 updelay=200 xmit_hash_policy=layer3+4 lacp_rate=1
`

const bondConfigTemplate = `DEVICE=bond0
NAME=bond0
{{ if .ip4pub -}}
IPADDR={{ .ip4pub.address }}
NETMASK={{ .ip4pub.netmask }}
GATEWAY={{ .ip4pub.gateway }}
{{ else -}}
IPADDR={{ .ip4priv.address }}
NETMASK={{ .ip4priv.netmask }}
GATEWAY={{ .ip4priv.gateway }}
{{ end -}}
BOOTPROTO=none
ONBOOT=yes
USERCTL=no
TYPE=Bond
BONDING_OPTS="mode={{ .net.bonding.mode }} miimon=100 downdelay=200 updelay=200"

{{ if .ip6pub -}}
IPV6INIT=yes
IPV6ADDR={{ .ip6pub.address }}/{{ .ip6pub.cidr }}
IPV6_DEFAULTGW={{ .ip6pub.gateway }}
{{ end -}}
DNS1={{ index .resolvers 0 }}
DNS2={{ index .resolvers 1 }}
`

const ifaceConfigTemplate = `DEVICE={{ .iface0.name }}
NAME={{ .iface0.name }}
{{ if .ip4pub -}}
IPADDR={{ .ip4pub.address }}
NETMASK={{ .ip4pub.netmask }}
GATEWAY={{ .ip4pub.gateway }}
{{ else -}}
IPADDR={{ .ip4priv.address }}
NETMASK={{ .ip4priv.netmask }}
GATEWAY={{ .ip4priv.gateway }}
{{ end -}}
BOOTPROTO=none
ONBOOT=yes
USERCTL=no

{{ if .ip6pub -}}
IPV6INIT=yes
IPV6ADDR={{ .ip6pub.address }}/{{ .ip6pub.cidr }}
IPV6_DEFAULTGW={{ .ip6pub.gateway }}
{{ end -}}
DNS1={{ index .resolvers 0 }}
DNS2={{ index .resolvers 1 }}
`

const aliasConfigTemplate = `DEVICE={{ .device }}
NAME={{ .device }}
IPADDR={{ .ip4priv.address }}
NETMASK={{ .ip4priv.netmask }}
GATEWAY={{ .ip4priv.gateway }}
BOOTPROTO=none
ONBOOT=yes
USERCTL=no
DNS1={{ index .resolvers 0 }}
DNS2={{ index .resolvers 1 }}
`

const routeTemplate = `{{ range .private_subnets }}{{ . }} via {{ $.ip4priv.gateway }} dev {{ $.device }}
{{ end }}`

const resolvConfTemplate = `{{ range .resolvers }}nameserver {{ . }}
{{ end }}`

const hostnameTemplate = `{{ .hostname }}
`

const hostsTemplate = `127.0.0.1   localhost localhost.localdomain localhost4 localhost4.localdomain4
::1         localhost localhost.localdomain localhost6 localhost6.localdomain6
`
