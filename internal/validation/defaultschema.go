package validation

// defaultSchema is the bundled structural schema for the unified
// configuration format. Callers can substitute their own document via
// NewConfigValidator's schemaPath argument; only the top-level
// required list and property kinds are read from it, the deeper shape
// checks live in schema.go.
const defaultSchema = `---
$schema: https://json-schema.org/draft-07/schema#
title: Promabbix unified alert configuration
description: >-
  A single document carrying Prometheus-style recording/alerting rule
  groups, the Zabbix target description, and optional wiki
  documentation for the declared alerts.
type: object
required:
  - groups
  - zabbix
properties:
  groups:
    type: array
    description: Prometheus-style recording and alerting rule groups.
    items:
      type: object
      required:
        - name
        - rules
      properties:
        name:
          type: string
          enum:
            - recording_rules
            - alerting_rules
        rules:
          type: array
          items:
            type: object
            required:
              - expr
            properties:
              record:
                type: string
              alert:
                type: string
              expr:
                type: string
              for:
                type: string
              labels:
                type: object
                properties:
                  __zbx_priority:
                    type: string
                    enum: [INFO, WARNING, AVERAGE, HIGH, DISASTER]
              annotations:
                type: object
  zabbix:
    type: object
    description: Zabbix template target description.
    required:
      - template
    properties:
      template:
        type: string
      name:
        type: string
      labels:
        type: object
      lld_filters:
        type: object
        properties:
          filter:
            type: object
            properties:
              evaltype:
                type: string
                enum: [AND, OR]
              conditions:
                type: array
                items:
                  type: object
                  properties:
                    formulaid:
                      type: string
                      pattern: "^[A-Z]$"
                    macro:
                      type: string
                    value:
                      type: string
      macros:
        type: array
        items:
          type: object
      tags:
        type: array
        items:
          type: object
      hosts:
        type: array
        items:
          type: object
          required:
            - host_name
            - host_groups
            - link_templates
          properties:
            host_name:
              type: string
            visible_name:
              type: string
            host_groups:
              type: array
            link_templates:
              type: array
            status:
              type: string
              enum: [enabled, disabled]
            state:
              type: string
              enum: [present, absent]
            proxy:
              type: string
            macros:
              type: array
  prometheus:
    type: object
    description: Prometheus API access and label conversion settings.
  promabbix:
    type: object
    description: Generator behavior overrides.
  wiki:
    type: object
    description: Wiki templates and the alert knowledgebase.
`
