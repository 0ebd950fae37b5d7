package validation

import "strings"

// Error is the structured failure produced by configuration validation.
// Path points at the offending node in dotted/bracket notation
// (e.g. "groups[0].rules[1].record") and Suggestions carry remediation
// hints that are safe to show to configuration authors.
type Error struct {
	Message     string
	Path        string
	Suggestions []string
}

func (e *Error) Error() string {
	return e.FormatMessage()
}

// FormatMessage renders the message together with the field path and
// suggestions, one block per line:
//
//	<message>
//	Path: <path>
//	Suggestions:
//	  - <suggestion>
func (e *Error) FormatMessage() string {
	parts := []string{e.Message}
	if e.Path != "" {
		parts = append(parts, "Path: "+e.Path)
	}
	if len(e.Suggestions) > 0 {
		parts = append(parts, "Suggestions:")
		for _, suggestion := range e.Suggestions {
			parts = append(parts, "  - "+suggestion)
		}
	}
	return strings.Join(parts, "\n")
}

func newError(message, path string, suggestions ...string) *Error {
	return &Error{Message: message, Path: path, Suggestions: suggestions}
}
