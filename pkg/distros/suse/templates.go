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

package suse

const bondConfigTemplate = `STARTMODE='onboot'
BOOTPROTO='static'
{{ if .ip4pub -}}
IPADDR='{{ .ip4pub.address }}/{{ .ip4pub.cidr }}'
{{ else -}}
IPADDR='{{ .ip4priv.address }}/{{ .ip4priv.cidr }}'
{{ end -}}
{{ if .ip6pub -}}
IPADDR_V6='{{ .ip6pub.address }}/{{ .ip6pub.cidr }}'
{{ end -}}
{{ if and .ip4pub .ip4priv -}}
IPADDR_0='{{ .ip4priv.address }}/{{ .ip4priv.cidr }}'
LABEL_0='0'
{{ end -}}
BONDING_MASTER='yes'
BONDING_MODULE_OPTS='mode={{ .net.bonding.mode }} miimon=100 downdelay=200 updelay=200'
{{ range $i, $iface := .interfaces -}}
BONDING_SLAVE_{{ $i }}='{{ $iface.name }}'
{{ end -}}
`

const slaveConfigTemplate = `STARTMODE='hotplug'
BOOTPROTO='none'
`

const ifaceConfigTemplate = `STARTMODE='onboot'
BOOTPROTO='static'
{{ if .ip4pub -}}
IPADDR='{{ .ip4pub.address }}/{{ .ip4pub.cidr }}'
{{ else -}}
IPADDR='{{ .ip4priv.address }}/{{ .ip4priv.cidr }}'
{{ end -}}
{{ if .ip6pub -}}
IPADDR_V6='{{ .ip6pub.address }}/{{ .ip6pub.cidr }}'
{{ end -}}
{{ if and .ip4pub .ip4priv -}}
IPADDR_0='{{ .ip4priv.address }}/{{ .ip4priv.cidr }}'
LABEL_0='0'
{{ end -}}
`

const routesTemplate = `{{ if .ip4pub -}}
default {{ .ip4pub.gateway }} - {{ .device }}
{{ else -}}
default {{ .ip4priv.gateway }} - {{ .device }}
{{ end -}}
{{ if and .ip4pub .ip4priv -}}
{{ range .private_subnets -}}
{{ . }} {{ $.ip4priv.gateway }} - {{ $.device }}
{{ end -}}
{{ end -}}
`

const resolvConfTemplate = `{{ range .resolvers }}nameserver {{ . }}
{{ end }}`

const hostnameTemplate = `{{ .hostname }}
`

const hostsTemplate = `127.0.0.1	localhost	{{ .hostname }}
::1	localhost ipv6-localhost ipv6-loopback
`
