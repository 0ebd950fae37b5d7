package render

import (
	"crypto/md5"
	"encoding/json"
	"fmt"
	"path/filepath"
	"regexp"
	"text/template"
	"time"

	"github.com/wrike/promabbix/internal/util"
)

// FuncMap returns the helper functions available to templates. Regex
// helpers take the pattern first so values can be piped in.
func FuncMap() template.FuncMap {
	return template.FuncMap{
		"basename":     filepath.Base,
		"dirname":      filepath.Dir,
		"dateTime":     dateTime,
		"get":          mapGet,
		"isJson":       isJSON,
		"list":         list,
		"regexFindAll": regexFindAll,
		"regexReplace": regexReplace,
		"regexSearch":  regexSearch,
		"toJson":       toJSON,
		"toNiceJson":   toNiceJSON,
		"toUUID4":      toUUID4,
		"toYaml":       toYAML,
	}
}

// dateTime formats the current time in UTC, so layouts with a literal
// Z designator stay truthful.
func dateTime(layout string) string {
	return time.Now().UTC().Format(layout)
}

// mapGet looks up key in a mapping and returns fallback when the key
// is absent or holds nil.
func mapGet(m any, key string, fallback any) any {
	mapping, ok := m.(map[string]any)
	if !ok {
		return fallback
	}
	value, ok := mapping[key]
	if !ok || value == nil {
		return fallback
	}
	return value
}

func isJSON(v any) bool {
	switch value := v.(type) {
	case string:
		return json.Valid([]byte(value))
	case map[string]any, []any:
		return true
	default:
		return false
	}
}

func list(items ...any) []any {
	return items
}

func regexFindAll(pattern, value string) ([]string, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, err
	}
	return re.FindAllString(value, -1), nil
}

func regexReplace(pattern, replacement, value string) (string, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return "", err
	}
	return re.ReplaceAllString(value, replacement), nil
}

func regexSearch(pattern, value string) (bool, error) {
	return regexp.MatchString(pattern, value)
}

func toJSON(v any) (string, error) {
	out, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

func toNiceJSON(v any) (string, error) {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// toUUID4 derives a stable UUIDv4-shaped identifier from a name, so
// regenerated templates keep the same Zabbix object UUIDs.
func toUUID4(value string) string {
	sum := md5.Sum([]byte(value))
	sum[6] = (sum[6] & 0x0f) | 0x40
	sum[8] = (sum[8] & 0x3f) | 0x80
	return fmt.Sprintf("%x-%x-%x-%x-%x", sum[0:4], sum[4:6], sum[6:8], sum[8:10], sum[10:16])
}

func toYAML(v any) (string, error) {
	return util.YamlStrRepr(v, 2)
}
