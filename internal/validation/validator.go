package validation

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// ConfigValidator ties the structural and cross-reference phases
// together. The schema document is loaded once at construction and
// never mutated afterwards, so one instance is safe to share between
// goroutines.
type ConfigValidator struct {
	schemaPath string
	schema     map[string]any
}

// NewConfigValidator loads the schema document from schemaPath, or the
// bundled unified schema when schemaPath is empty. A missing or
// unparsable schema file fails here, not on the first validate call.
func NewConfigValidator(schemaPath string) (*ConfigValidator, error) {
	schema, err := loadSchema(schemaPath)
	if err != nil {
		return nil, err
	}
	return &ConfigValidator{schemaPath: schemaPath, schema: schema}, nil
}

func loadSchema(schemaPath string) (map[string]any, error) {
	raw := []byte(defaultSchema)
	if schemaPath != "" {
		var err error
		raw, err = os.ReadFile(schemaPath)
		if err != nil {
			if os.IsNotExist(err) {
				return nil, newError(
					"Schema file not found: "+schemaPath,
					"",
					"Ensure the unified schema file exists at the expected path",
				)
			}
			return nil, err
		}
	}

	// YAML is a superset of JSON, so one parse covers both formats.
	var schema map[string]any
	if err := yaml.Unmarshal(raw, &schema); err != nil {
		return nil, newError(
			fmt.Sprintf("Invalid format in schema file: %v", err),
			schemaPath,
			"Check the schema file for valid YAML or JSON syntax",
		)
	}
	if schema == nil {
		return nil, newError(
			"Invalid format in schema file: document is not a mapping",
			schemaPath,
			"Check the schema file for valid YAML or JSON syntax",
		)
	}
	return schema, nil
}

// ValidateConfig checks config structurally and then, when both the
// alerting rules and the wiki knowledgebase are present, relationally.
// A nil return means the configuration passed both phases; any failure
// comes back as a single *Error carrying every problem found.
func (v *ConfigValidator) ValidateConfig(config map[string]any) error {
	if err := v.ValidateSchema(config); err != nil {
		return err
	}
	if !v.ShouldValidateCrossReferences(config) {
		return nil
	}
	return v.ValidateCrossReferences(config)
}

// ValidateSchema runs the structural phase, folding multiple
// violations into one error.
func (v *ConfigValidator) ValidateSchema(config map[string]any) error {
	errs := NewSchemaValidator(v.schema).Validate(config)
	return combineErrors(errs,
		"Multiple validation errors found:",
		"Error",
		"Fix all validation errors to proceed")
}

// ValidateCrossReferences runs the relational phase regardless of the
// opt-in gate; callers that want gating use ShouldValidateCrossReferences
// first, the way ValidateConfig does.
func (v *ConfigValidator) ValidateCrossReferences(config map[string]any) error {
	crossRef := NewCrossReferenceValidator()
	var errs []*Error
	errs = append(errs, crossRef.ValidateAlertWikiConsistency(config)...)
	errs = append(errs, crossRef.ValidateTemplateReferences(config)...)
	errs = append(errs, crossRef.ValidateMacroConsistency(config)...)
	return combineErrors(errs,
		"Multiple cross-reference validation errors found:",
		"Cross-reference error",
		"Fix all cross-reference errors to proceed")
}

// ShouldValidateCrossReferences reports whether the relational phase
// applies: it needs both alerting rules and a wiki knowledgebase to
// compare.
func (v *ConfigValidator) ShouldValidateCrossReferences(config map[string]any) bool {
	return HasAlertingRules(config) && HasWikiKnowledgebase(config)
}

// combineErrors implements the single-vs-multiple aggregation rule: a
// lone error is returned as-is, two or more are folded into one error
// whose message embeds each inner rendering, numbered.
func combineErrors(errs []*Error, header, label, suggestion string) error {
	switch len(errs) {
	case 0:
		return nil
	case 1:
		return errs[0]
	}

	rendered := make([]string, len(errs))
	for i, e := range errs {
		rendered[i] = fmt.Sprintf("%s %d: %s", label, i+1, e.FormatMessage())
	}
	return &Error{
		Message:     header + "\n" + strings.Join(rendered, "\n\n"),
		Suggestions: []string{suggestion},
	}
}
