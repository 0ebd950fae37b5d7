package validation

import "testing"

func TestErrorFormatMessage(t *testing.T) {
	testCases := []struct {
		name string
		err  *Error
		want string
	}{
		{
			name: "MessageOnly",
			err:  &Error{Message: "Something is wrong"},
			want: "Something is wrong",
		},
		{
			name: "MessageWithPath",
			err:  &Error{Message: "'zabbix' is a required property", Path: "root"},
			want: "'zabbix' is a required property\nPath: root",
		},
		{
			name: "MessageWithSuggestions",
			err: &Error{
				Message:     "Value out of range",
				Suggestions: []string{"Use a smaller value"},
			},
			want: "Value out of range\nSuggestions:\n  - Use a smaller value",
		},
		{
			name: "FullError",
			err: &Error{
				Message:     "'expr' is a required property",
				Path:        "groups[0].rules[1]",
				Suggestions: []string{"Add the required field: expr", "Check the rule definition"},
			},
			want: "'expr' is a required property\n" +
				"Path: groups[0].rules[1]\n" +
				"Suggestions:\n" +
				"  - Add the required field: expr\n" +
				"  - Check the rule definition",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.err.FormatMessage(); got != tc.want {
				t.Errorf("FormatMessage() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestErrorImplementsError(t *testing.T) {
	err := &Error{
		Message: "'groups' is a required property",
		Path:    "root",
	}
	if err.Error() != err.FormatMessage() {
		t.Errorf("Error() = %q, want the FormatMessage rendering %q", err.Error(), err.FormatMessage())
	}
}
