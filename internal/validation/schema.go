package validation

import (
	"fmt"
	"regexp"
	"slices"
	"sort"
	"strings"
)

// SchemaValidator checks structural conformance of a configuration:
// required fields, property kinds, enum values, and patterns. The
// top-level required list and property kinds are read from the schema
// document; the deeper groups/zabbix shape checks encode the unified
// format directly.
type SchemaValidator struct {
	schema map[string]any
}

func NewSchemaValidator(schema map[string]any) *SchemaValidator {
	return &SchemaValidator{schema: schema}
}

// Validate collects every structural violation in data. It never stops
// at the first problem, so configuration authors see all errors in one
// pass. An empty result means the configuration is structurally valid.
func (v *SchemaValidator) Validate(data map[string]any) []*Error {
	var errs []*Error
	errs = append(errs, v.checkRequiredFields(data)...)
	errs = append(errs, v.checkPropertyKinds(data)...)
	errs = append(errs, checkGroups(data)...)
	errs = append(errs, checkZabbix(data)...)
	return errs
}

func (v *SchemaValidator) checkRequiredFields(data map[string]any) []*Error {
	var errs []*Error
	for _, field := range asSlice(v.schema["required"]) {
		name := asString(field)
		if name == "" {
			continue
		}
		if _, ok := data[name]; !ok {
			errs = append(errs, requiredError("root", name))
		}
	}
	return errs
}

func (v *SchemaValidator) checkPropertyKinds(data map[string]any) []*Error {
	var errs []*Error
	properties := asMap(v.schema["properties"])
	names := make([]string, 0, len(properties))
	for name := range properties {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		value, ok := data[name]
		if !ok {
			continue
		}
		kind := asString(asMap(properties[name])["type"])
		if kind == "" || matchesKind(value, kind) {
			continue
		}
		errs = append(errs, kindError(name, name, kind))
	}
	return errs
}

func matchesKind(value any, kind string) bool {
	switch kind {
	case "array":
		return asSlice(value) != nil
	case "object":
		return asMap(value) != nil
	case "string":
		_, ok := value.(string)
		return ok
	default:
		return true
	}
}

var zbxPriorities = []string{"INFO", "WARNING", "AVERAGE", "HIGH", "DISASTER"}

func checkGroups(data map[string]any) []*Error {
	groups := asSlice(data["groups"])
	if groups == nil {
		// Absence and kind mismatches are reported by the schema-driven checks.
		return nil
	}

	var errs []*Error
	for i, g := range groups {
		groupPath := fmt.Sprintf("groups[%d]", i)
		group := asMap(g)
		if group == nil {
			errs = append(errs, kindError(groupPath, groupPath, "object"))
			continue
		}

		name, hasName := group["name"]
		if !hasName {
			errs = append(errs, requiredError(groupPath, "name"))
		}
		rules, hasRules := group["rules"]
		if !hasRules {
			errs = append(errs, requiredError(groupPath, "rules"))
		}

		groupName := asString(name)
		if hasName && groupName != GroupRecordingRules && groupName != GroupAlertingRules {
			errs = append(errs, enumError(groupPath+".name", name, []string{GroupRecordingRules, GroupAlertingRules}))
		}

		if hasRules {
			ruleList := asSlice(rules)
			if ruleList == nil {
				errs = append(errs, kindError(groupPath+".rules", "rules", "array"))
				continue
			}
			errs = append(errs, checkRules(groupPath, groupName, ruleList)...)
		}
	}
	return errs
}

func checkRules(groupPath, groupName string, rules []any) []*Error {
	var errs []*Error
	for j, r := range rules {
		rulePath := fmt.Sprintf("%s.rules[%d]", groupPath, j)
		rule := asMap(r)
		if rule == nil {
			errs = append(errs, kindError(rulePath, fmt.Sprintf("rules[%d]", j), "object"))
			continue
		}

		switch groupName {
		case GroupRecordingRules:
			if _, ok := rule["record"]; !ok {
				errs = append(errs, requiredError(rulePath, "record"))
			}
		case GroupAlertingRules:
			if _, ok := rule["alert"]; !ok {
				errs = append(errs, requiredError(rulePath, "alert"))
			}
		}
		if _, ok := rule["expr"]; !ok {
			errs = append(errs, requiredError(rulePath, "expr"))
		}

		labels := asMap(rule["labels"])
		if priority, ok := labels["__zbx_priority"]; ok && !slices.Contains(zbxPriorities, asString(priority)) {
			errs = append(errs, enumError(rulePath+".labels.__zbx_priority", priority, zbxPriorities))
		}
	}
	return errs
}

var (
	hostRequiredFields = []string{"host_name", "host_groups", "link_templates"}
	hostStatusValues   = []string{"enabled", "disabled"}
	hostStateValues    = []string{"present", "absent"}
	evalTypes          = []string{"AND", "OR"}
	formulaIDPattern   = regexp.MustCompile(`^[A-Z]$`)
)

func checkZabbix(data map[string]any) []*Error {
	raw, ok := data["zabbix"]
	if !ok {
		return nil
	}
	zabbix := asMap(raw)
	if zabbix == nil {
		// Kind mismatch is reported by the schema-driven checks.
		return nil
	}

	var errs []*Error
	if _, ok := zabbix["template"]; !ok {
		errs = append(errs, requiredError("zabbix", "template"))
	}
	errs = append(errs, checkHosts(zabbix)...)
	errs = append(errs, checkLLDFilters(zabbix)...)
	return errs
}

func checkHosts(zabbix map[string]any) []*Error {
	raw, ok := zabbix["hosts"]
	if !ok {
		return nil
	}
	hosts := asSlice(raw)
	if hosts == nil {
		return []*Error{kindError("zabbix.hosts", "hosts", "array")}
	}

	var errs []*Error
	for i, h := range hosts {
		hostPath := fmt.Sprintf("zabbix.hosts[%d]", i)
		host := asMap(h)
		if host == nil {
			errs = append(errs, kindError(hostPath, fmt.Sprintf("hosts[%d]", i), "object"))
			continue
		}

		// visible_name stays optional so configs written before it
		// existed keep validating.
		for _, field := range hostRequiredFields {
			if _, ok := host[field]; !ok {
				errs = append(errs, requiredError(hostPath, field))
			}
		}
		if status, ok := host["status"]; ok && !slices.Contains(hostStatusValues, asString(status)) {
			errs = append(errs, enumError(hostPath+".status", status, hostStatusValues))
		}
		if state, ok := host["state"]; ok && !slices.Contains(hostStateValues, asString(state)) {
			errs = append(errs, enumError(hostPath+".state", state, hostStateValues))
		}
	}
	return errs
}

func checkLLDFilters(zabbix map[string]any) []*Error {
	filter := asMap(dig(zabbix["lld_filters"], "filter"))
	if filter == nil {
		return nil
	}

	var errs []*Error
	if evaltype, ok := filter["evaltype"]; ok && !slices.Contains(evalTypes, asString(evaltype)) {
		errs = append(errs, enumError("zabbix.lld_filters.filter.evaltype", evaltype, evalTypes))
	}
	for i, c := range asSlice(filter["conditions"]) {
		condition := asMap(c)
		if condition == nil {
			continue
		}
		formulaid, ok := condition["formulaid"]
		if !ok {
			continue
		}
		if !formulaIDPattern.MatchString(asString(formulaid)) {
			path := fmt.Sprintf("zabbix.lld_filters.filter.conditions[%d].formulaid", i)
			errs = append(errs, patternError(path, formulaid, "^[A-Z]$"))
		}
	}
	return errs
}

// The error constructors keep the message register of JSON Schema
// violations so reports stay familiar to authors coming from
// jsonschema-based tooling.

func requiredError(path, field string) *Error {
	return newError(
		fmt.Sprintf("'%s' is a required property", field),
		path,
		"Add the required field: "+field,
	)
}

func kindError(path, field, kind string) *Error {
	return newError(
		fmt.Sprintf("'%s' is not of type '%s'", field, kind),
		path,
		"Change value to type: "+kind,
	)
}

func enumError(path string, value any, allowed []string) *Error {
	quoted := make([]string, len(allowed))
	for i, a := range allowed {
		quoted[i] = "'" + a + "'"
	}
	return newError(
		fmt.Sprintf("%s is not one of [%s]", scalarRepr(value), strings.Join(quoted, ", ")),
		path,
		"Use one of the allowed values: "+strings.Join(allowed, ", "),
	)
}

func patternError(path string, value any, pattern string) *Error {
	return newError(
		fmt.Sprintf("%s does not match '%s'", scalarRepr(value), pattern),
		path,
		"Value must match pattern: "+pattern,
	)
}

func scalarRepr(value any) string {
	if s, ok := value.(string); ok {
		return "'" + s + "'"
	}
	return fmt.Sprintf("%v", value)
}
