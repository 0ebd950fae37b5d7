package util

import (
	"strings"

	"gopkg.in/yaml.v3"
)

// YamlStrRepr renders v as a YAML document with the given indent width.
func YamlStrRepr(v interface{}, indent int) (string, error) {
	var b strings.Builder
	encoder := yaml.NewEncoder(&b)
	encoder.SetIndent(indent)
	if err := encoder.Encode(v); err != nil {
		return "", err
	}
	if err := encoder.Close(); err != nil {
		return "", err
	}
	return b.String(), nil
}
