package render

// DefaultTemplateName is the bundled template used when no explicit
// template name is given.
const DefaultTemplateName = "prometheus_alert_rules_to_zbx_template.tmpl"

var bundledTemplates = map[string]string{
	DefaultTemplateName: zbxTemplateSource,
}

// zbxTemplateSource emits a Zabbix configuration export document. Object
// UUIDs derive from object names via toUUID4, so re-running the
// generator updates templates in place instead of duplicating them.
// Every value goes through toJson, so quotes in service or host names
// cannot break the document.
const zbxTemplateSource = `{{- $zabbix := .zabbix -}}
{{- $service := get $zabbix "template" "" -}}
{{- $templateName := printf "templ_module_promt_%s" $service -}}
{{- $groupName := "Templates/Prometheus" -}}
{
  "zabbix_export": {
    "version": {{ toJson zbxExportVersion }},
    "date": {{ toJson (dateTime "2006-01-02T15:04:05Z") }},
    "template_groups": [
      {
        "uuid": {{ toJson (toUUID4 $groupName) }},
        "name": {{ toJson $groupName }}
      }
    ],
    "templates": [
      {
        "uuid": {{ toJson (toUUID4 $templateName) }},
        "template": {{ toJson $templateName }},
        "name": {{ toJson (get $zabbix "name" $templateName) }},
        "groups": [
          {
            "name": {{ toJson $groupName }}
          }
        ],
        "macros": {{ toJson (get $zabbix "macros" (list)) }},
        "tags": {{ toJson (get $zabbix "tags" (list)) }}
      }
    ]
{{- $hosts := get $zabbix "hosts" (list) }}
{{- if $hosts }},
    "hosts": [
{{- range $i, $host := $hosts }}
      {{- if $i }},{{ end }}
      {
        "host": {{ toJson (get $host "host_name" "") }},
        "name": {{ toJson (get $host "visible_name" (get $host "host_name" "")) }},
        "status": {{ toJson (get $host "status" "enabled") }},
        "proxy": {{ toJson (get $host "proxy" "") }},
        "groups": {{ toJson (get $host "host_groups" (list)) }},
        "templates": {{ toJson (get $host "link_templates" (list)) }},
        "macros": {{ toJson (get $host "macros" (list)) }}
      }
{{- end }}
    ]
{{- end }}
  }
}
`
