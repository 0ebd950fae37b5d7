package validation

import (
	"github.com/wrike/promabbix/internal/util"
)

// Group names recognized in the unified configuration format.
const (
	GroupRecordingRules = "recording_rules"
	GroupAlertingRules  = "alerting_rules"
)

// The analyzer functions extract facts from a parsed configuration
// tree. They never mutate their input, and a missing key at any level
// means "no data", not an error.

// ExtractAlertNames collects the alert names declared in alerting_rules
// groups. Rules without an alert name are skipped; whether that is
// legal is the schema checker's concern.
func ExtractAlertNames(groups []any) util.Set[string] {
	names := util.NewSet[string]()
	for _, g := range alertingGroups(groups) {
		for _, r := range asSlice(asMap(g)["rules"]) {
			_ = names.Add(asString(asMap(r)["alert"]))
		}
	}
	return names
}

// ExtractWikiAlertNames collects the alert names documented under
// wiki.knowledgebase.alerts.alertings.
func ExtractWikiAlertNames(wiki map[string]any) util.Set[string] {
	names := util.NewSet[string]()
	for name := range asMap(dig(wiki, "knowledgebase", "alerts", "alertings")) {
		_ = names.Add(name)
	}
	return names
}

// HasAlertingRules reports whether at least one alerting_rules group
// contains a rule with a non-empty alert name.
func HasAlertingRules(config map[string]any) bool {
	for _, g := range alertingGroups(asSlice(config["groups"])) {
		for _, r := range asSlice(asMap(g)["rules"]) {
			if asString(asMap(r)["alert"]) != "" {
				return true
			}
		}
	}
	return false
}

// HasWikiKnowledgebase reports whether the configuration carries a
// non-empty wiki.knowledgebase.alerts.alertings mapping.
func HasWikiKnowledgebase(config map[string]any) bool {
	return len(asMap(dig(config["wiki"], "knowledgebase", "alerts", "alertings"))) > 0
}

func alertingGroups(groups []any) []any {
	return util.FilterSlice(groups, func(g any) bool {
		return asString(asMap(g)["name"]) == GroupAlertingRules
	})
}

// asMap returns v as a mapping, or nil when it is anything else.
func asMap(v any) map[string]any {
	m, _ := v.(map[string]any)
	return m
}

// asSlice returns v as a sequence, or nil when it is anything else.
func asSlice(v any) []any {
	s, _ := v.([]any)
	return s
}

// asString returns v as a string, or "" when it is anything else.
func asString(v any) string {
	s, _ := v.(string)
	return s
}

// dig walks nested mappings along keys and returns the value at the
// end of the chain, or nil as soon as any level is absent or not a
// mapping.
func dig(v any, keys ...string) any {
	current := v
	for _, key := range keys {
		node := asMap(current)
		if node == nil {
			return nil
		}
		current = node[key]
	}
	return current
}
