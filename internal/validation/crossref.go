package validation

import (
	"strings"

	"github.com/wrike/promabbix/internal/util"
)

// CrossReferenceValidator checks consistency between independently
// authored sections of one configuration document.
type CrossReferenceValidator struct{}

func NewCrossReferenceValidator() *CrossReferenceValidator {
	return &CrossReferenceValidator{}
}

// ValidateAlertWikiConsistency reports alerts that are declared in the
// rule groups but have no entry under wiki.knowledgebase.alerts.alertings.
// Documentation with no matching alert is tolerated, so deprecated or
// forthcoming alerts can keep their knowledgebase pages.
func (v *CrossReferenceValidator) ValidateAlertWikiConsistency(config map[string]any) []*Error {
	if !v.ShouldValidateWikiConsistency(config) {
		return nil
	}

	alertNames := ExtractAlertNames(asSlice(config["groups"]))
	wikiNames := ExtractWikiAlertNames(asMap(config["wiki"]))

	missing := alertNames.Difference(wikiNames)
	if missing.IsEmpty() {
		return nil
	}
	return []*Error{newError(
		"Alerts missing wiki documentation: "+strings.Join(util.SortedValues(missing), ", "),
		"wiki.knowledgebase.alerts.alertings",
		"Add documentation for each alert in the wiki.knowledgebase.alerts.alertings section",
		"Ensure alert names match exactly between groups and wiki sections",
	)}
}

// ValidateTemplateReferences is an extension point for checking that
// host link_templates agree with the declared template name. It
// currently reports nothing.
func (v *CrossReferenceValidator) ValidateTemplateReferences(_ map[string]any) []*Error {
	return nil
}

// ValidateMacroConsistency is an extension point for checking that
// macros referenced in expressions are defined. It currently reports
// nothing.
func (v *CrossReferenceValidator) ValidateMacroConsistency(_ map[string]any) []*Error {
	return nil
}

// ShouldValidateWikiConsistency reports whether both sides of the
// alert/wiki reference exist. A configuration that documents nothing
// is valid on its own; the check only applies once both sections are
// present.
func (v *CrossReferenceValidator) ShouldValidateWikiConsistency(config map[string]any) bool {
	return HasAlertingRules(config) && HasWikiKnowledgebase(config)
}
